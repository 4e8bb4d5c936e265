package queue

import (
	"context"
	"testing"
	"time"

	"github.com/casemine/casemine/ent"
	"github.com/casemine/casemine/ent/job"
	"github.com/casemine/casemine/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolStartRecoversExpiredLeases(t *testing.T) {
	jobs, client, cfg := queueEnv(t)
	ctx := context.Background()

	enqueued, err := jobs.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{})
	require.NoError(t, err)

	// Simulate a crashed replica: lease the job with an already-expired
	// lease so the startup scan sees an orphan.
	_, err = jobs.Lease(ctx, "dead-pod-worker-0", -time.Second)
	require.NoError(t, err)

	pool := NewWorkerPool("pod-a", jobs, cfg, &fakeDispatcher{})
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	assert.Eventually(t, func() bool {
		got, err := client.Job.Get(ctx, enqueued.ID)
		return err == nil && got.Status == job.StatusDone
	}, 5*time.Second, 20*time.Millisecond)

	health := pool.Health()
	assert.GreaterOrEqual(t, health.OrphansRecovered, 1)
	assert.False(t, health.LastOrphanScan.IsZero())
}

func TestPoolStartIsIdempotent(t *testing.T) {
	jobs, _, cfg := queueEnv(t)

	pool := NewWorkerPool("pod-a", jobs, cfg, &fakeDispatcher{})
	require.NoError(t, pool.Start(context.Background()))
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	health := pool.Health()
	assert.Equal(t, cfg.WorkerCount, health.TotalWorkers)
}

func TestPoolHealthReportsQueueDepth(t *testing.T) {
	jobs, _, cfg := queueEnv(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := jobs.Enqueue(ctx, job.TypeMaybeRespond, "g1", models.MaybeRespondPayload{})
		require.NoError(t, err)
	}

	// Pool never started: no workers, so the queue stays full.
	pool := NewWorkerPool("pod-a", jobs, cfg, &fakeDispatcher{})
	health := pool.Health()
	assert.Equal(t, 4, health.QueueDepth)
	assert.True(t, health.DBReachable)
	assert.False(t, health.IsHealthy, "a pool with zero workers is not healthy")
	assert.Equal(t, "pod-a", health.PodID)
}

func TestPoolStopIsGraceful(t *testing.T) {
	jobs, client, cfg := queueEnv(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	d := &fakeDispatcher{fn: func(context.Context, *ent.Job) error {
		close(started)
		<-release
		return nil
	}}

	enqueued, err := jobs.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{})
	require.NoError(t, err)

	pool := NewWorkerPool("pod-a", jobs, cfg, d)
	require.NoError(t, pool.Start(ctx))

	<-started
	go func() {
		time.Sleep(50 * time.Millisecond)
		close(release)
	}()
	pool.Stop() // must wait for the in-flight job

	got, err := client.Job.Get(ctx, enqueued.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusDone, got.Status)
}
