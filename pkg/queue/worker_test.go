package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/casemine/casemine/ent"
	"github.com/casemine/casemine/ent/job"
	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/models"
	"github.com/casemine/casemine/pkg/services"
	testdb "github.com/casemine/casemine/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDispatcher struct {
	fn    func(ctx context.Context, j *ent.Job) error
	calls int
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, j *ent.Job) error {
	f.calls++
	if f.fn != nil {
		return f.fn(ctx, j)
	}
	return nil
}

func queueEnv(t *testing.T) (*services.JobService, *ent.Client, *config.QueueConfig) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := config.DefaultQueueConfig()
	cfg.MaxAttempts = 2
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.RetryBackoff = time.Millisecond
	return services.NewJobService(client.Client, cfg.MaxAttempts), client.Client, cfg
}

func TestProcessNextCompletesJob(t *testing.T) {
	jobs, client, cfg := queueEnv(t)
	ctx := context.Background()

	enqueued, err := jobs.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{GroupID: "g1", MessageID: "m1"})
	require.NoError(t, err)

	d := &fakeDispatcher{}
	w := NewWorker("w1", jobs, d, cfg)
	require.NoError(t, w.processNext(ctx))
	assert.Equal(t, 1, d.calls)

	got, err := client.Job.Get(ctx, enqueued.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusDone, got.Status)
}

func TestProcessNextRetriesThenFailsTerminally(t *testing.T) {
	jobs, client, cfg := queueEnv(t)
	ctx := context.Background()

	enqueued, err := jobs.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{})
	require.NoError(t, err)

	d := &fakeDispatcher{fn: func(context.Context, *ent.Job) error {
		return errors.New("store hiccup")
	}}
	w := NewWorker("w1", jobs, d, cfg)

	// first attempt reschedules with backoff
	require.NoError(t, w.processNext(ctx))
	got, err := client.Job.Get(ctx, enqueued.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, got.Status)
	assert.Equal(t, 1, got.Attempts)

	time.Sleep(5 * time.Millisecond) // let the backoff window pass

	// second attempt hits the cap
	require.NoError(t, w.processNext(ctx))
	got, err = client.Job.Get(ctx, enqueued.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, got.Status)
	assert.Equal(t, 2, got.Attempts)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "store hiccup")
}

func TestProcessNextTerminalErrorFailsImmediately(t *testing.T) {
	jobs, client, cfg := queueEnv(t)
	ctx := context.Background()

	enqueued, err := jobs.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{})
	require.NoError(t, err)

	d := &fakeDispatcher{fn: func(context.Context, *ent.Job) error {
		return Terminal(errors.New("payload is garbage"))
	}}
	w := NewWorker("w1", jobs, d, cfg)
	require.NoError(t, w.processNext(ctx))

	got, err := client.Job.Get(ctx, enqueued.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, got.Status)
	assert.Equal(t, 1, got.Attempts)
}

func TestProcessNextReportsEmptyQueue(t *testing.T) {
	jobs, _, cfg := queueEnv(t)
	w := NewWorker("w1", jobs, &fakeDispatcher{}, cfg)
	err := w.processNext(context.Background())
	assert.ErrorIs(t, err, services.ErrNoJobsAvailable)
}

func TestWorkerLoopDrainsQueue(t *testing.T) {
	jobs, client, cfg := queueEnv(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := jobs.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{})
		require.NoError(t, err)
	}

	w := NewWorker("w1", jobs, &fakeDispatcher{}, cfg)
	w.Start(ctx)
	defer w.Stop()

	assert.Eventually(t, func() bool {
		n, err := client.Job.Query().Where(job.StatusEQ(job.StatusDone)).Count(ctx)
		return err == nil && n == 3
	}, 5*time.Second, 20*time.Millisecond)
}

func TestRouterRejectsMalformedPayloadTerminally(t *testing.T) {
	// Decode failures never reach a handler, so a bare router is enough.
	r := &Router{}
	err := r.Dispatch(context.Background(), &ent.Job{
		Type:    job.TypeBufferUpdate,
		Payload: []byte("{broken"),
	})
	require.Error(t, err)
	var terminal *TerminalError
	assert.True(t, errors.As(err, &terminal))
}

func TestRouterRejectsUnknownJobType(t *testing.T) {
	r := &Router{}
	err := r.Dispatch(context.Background(), &ent.Job{Type: "sweep_floor"})
	require.Error(t, err)
	var terminal *TerminalError
	assert.True(t, errors.As(err, &terminal))
	assert.Contains(t, err.Error(), "sweep_floor")
}

func TestMalformedPayloadFailsJobWithoutRetry(t *testing.T) {
	jobs, client, cfg := queueEnv(t)
	ctx := context.Background()

	enqueued, err := jobs.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{})
	require.NoError(t, err)
	require.NoError(t, client.Job.UpdateOneID(enqueued.ID).SetPayload([]byte("{broken")).Exec(ctx))

	d := &fakeDispatcher{fn: func(ctx context.Context, j *ent.Job) error {
		return (&Router{}).Dispatch(ctx, j)
	}}
	w := NewWorker("w1", jobs, d, cfg)
	require.NoError(t, w.processNext(ctx))

	got, err := client.Job.Get(ctx, enqueued.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, got.Status)
	assert.Equal(t, 1, got.Attempts)
}
