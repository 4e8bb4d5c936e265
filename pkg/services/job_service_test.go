package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/casemine/casemine/ent/job"
	"github.com/casemine/casemine/pkg/models"
	testdb "github.com/casemine/casemine/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnqueueAndLeaseFIFO(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, 3)
	ctx := context.Background()

	j1, err := svc.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{GroupID: "g1", MessageID: "m1"})
	require.NoError(t, err)
	_, err = svc.Enqueue(ctx, job.TypeMaybeRespond, "g1", models.MaybeRespondPayload{GroupID: "g1", MessageID: "m1"})
	require.NoError(t, err)

	leased, err := svc.Lease(ctx, "w1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, j1.ID, leased.ID)
	assert.Equal(t, job.StatusInProgress, leased.Status)
	assert.Equal(t, 1, leased.Attempts)
	require.NotNil(t, leased.WorkerID)
	assert.Equal(t, "w1", *leased.WorkerID)
	require.NotNil(t, leased.LeaseExpiresAt)

	var payload models.BufferUpdatePayload
	require.NoError(t, json.Unmarshal(leased.Payload, &payload))
	assert.Equal(t, "m1", payload.MessageID)

	// second lease takes the next job; third finds nothing
	_, err = svc.Lease(ctx, "w2", time.Minute)
	require.NoError(t, err)
	_, err = svc.Lease(ctx, "w3", time.Minute)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestCompleteJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, 3)
	ctx := context.Background()

	_, err := svc.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{})
	require.NoError(t, err)
	leased, err := svc.Lease(ctx, "w1", time.Minute)
	require.NoError(t, err)

	require.NoError(t, svc.Complete(ctx, leased.ID))
	got, err := client.Job.Get(ctx, leased.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusDone, got.Status)
	assert.Nil(t, got.LeaseExpiresAt)

	// completing a job that is no longer in progress is reported
	assert.ErrorIs(t, svc.Complete(ctx, leased.ID), ErrNotFound)
}

func TestFailRetriesWithBackoffThenTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, 2)
	ctx := context.Background()

	_, err := svc.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{})
	require.NoError(t, err)

	// attempt 1 fails transiently: back to pending with backoff
	leased, err := svc.Lease(ctx, "w1", time.Minute)
	require.NoError(t, err)
	require.NoError(t, svc.Fail(ctx, leased.ID, "llm unavailable", false, 0))

	got, err := client.Job.Get(ctx, leased.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "llm unavailable", *got.ErrorMessage)

	// attempt 2 fails: attempts cap reached, terminal
	leased, err = svc.Lease(ctx, "w1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, leased.Attempts)
	require.NoError(t, svc.Fail(ctx, leased.ID, "still down", false, 0))

	got, err = client.Job.Get(ctx, leased.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, got.Status)
}

func TestFailTerminalImmediately(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, 5)
	ctx := context.Background()

	_, err := svc.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{})
	require.NoError(t, err)
	leased, err := svc.Lease(ctx, "w1", time.Minute)
	require.NoError(t, err)

	require.NoError(t, svc.Fail(ctx, leased.ID, "corrupt payload", true, 0))
	got, err := client.Job.Get(ctx, leased.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, got.Status)
}

func TestBackoffDelaysVisibility(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, 5)
	ctx := context.Background()

	_, err := svc.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{})
	require.NoError(t, err)
	leased, err := svc.Lease(ctx, "w1", time.Minute)
	require.NoError(t, err)

	require.NoError(t, svc.Fail(ctx, leased.ID, "transient", false, time.Hour))

	// pending but not yet visible
	_, err = svc.Lease(ctx, "w1", time.Minute)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestCancelOnlyPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, 3)
	ctx := context.Background()

	j, err := svc.Enqueue(ctx, job.TypeHistoryLink, "g1", models.HistoryLinkPayload{Token: "t"})
	require.NoError(t, err)

	ok, err := svc.Cancel(ctx, j.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// cancelled jobs are not leasable and cannot be cancelled again
	_, err = svc.Lease(ctx, "w1", time.Minute)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
	ok, err = svc.Cancel(ctx, j.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCancelPendingByType(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, 3)
	ctx := context.Background()

	_, err := svc.Enqueue(ctx, job.TypeHistoryLink, "g1", models.HistoryLinkPayload{})
	require.NoError(t, err)
	keep, err := svc.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{})
	require.NoError(t, err)

	n, err := svc.CancelPendingByType(ctx, job.TypeHistoryLink, "g1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	leased, err := svc.Lease(ctx, "w1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, keep.ID, leased.ID)
}

func TestRecoverExpiredLeases(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, 3)
	ctx := context.Background()

	_, err := svc.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{})
	require.NoError(t, err)

	// lease with an already-expired lease duration
	leased, err := svc.Lease(ctx, "w1", -time.Second)
	require.NoError(t, err)

	n, err := svc.RecoverExpiredLeases(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// job is claimable again; attempts keep counting
	again, err := svc.Lease(ctx, "w2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, leased.ID, again.ID)
	assert.Equal(t, 2, again.Attempts)
}

func TestDeleteFinishedJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, 3)
	ctx := context.Background()

	j, err := svc.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{})
	require.NoError(t, err)
	leased, err := svc.Lease(ctx, "w1", time.Minute)
	require.NoError(t, err)
	require.NoError(t, svc.Complete(ctx, leased.ID))

	// too recent to collect
	n, err := svc.DeleteFinishedJobs(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = client.DB().ExecContext(ctx,
		"UPDATE jobs SET updated_at = now() - interval '2 days' WHERE job_id = $1", j.ID)
	require.NoError(t, err)

	n, err = svc.DeleteFinishedJobs(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPendingCount(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{})
		require.NoError(t, err)
	}
	n, err := svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
