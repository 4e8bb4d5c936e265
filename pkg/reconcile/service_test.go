package reconcile

import (
	"context"
	"testing"
	"time"

	"github.com/casemine/casemine/ent"
	"github.com/casemine/casemine/ent/job"
	"github.com/casemine/casemine/ent/supportcase"
	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/index"
	"github.com/casemine/casemine/pkg/llm/llmtest"
	"github.com/casemine/casemine/pkg/models"
	"github.com/casemine/casemine/pkg/services"
	testdb "github.com/casemine/casemine/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reconcileEnv struct {
	svc    *Service
	client *ent.Client
	cases  *services.CaseService
	admins *services.AdminService
	jobs   *services.JobService
	idx    *index.Provider
}

func newReconcileEnv(t *testing.T) *reconcileEnv {
	t.Helper()
	client := testdb.NewTestClient(t)

	idx, err := index.NewProvider(&config.IndexConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	retention := config.DefaultRetentionConfig()
	pipeline := config.DefaultPipelineConfig()
	cases := services.NewCaseService(client.Client)
	admins := services.NewAdminService(client.Client)
	jobs := services.NewJobService(client.Client, 3)

	return &reconcileEnv{
		svc:    NewService(retention, pipeline, cases, admins, jobs, &llmtest.Embedder{}, idx),
		client: client.Client,
		cases:  cases,
		admins: admins,
		jobs:   jobs,
		idx:    idx,
	}
}

func (e *reconcileEnv) seedCase(t *testing.T, status string, solution string) *ent.SupportCase {
	t.Helper()
	c, err := e.cases.CreateCase(context.Background(), "g1", models.CaseFields{
		ProblemTitle:    "X-500 duplex jam",
		ProblemSummary:  "Printer jams on duplex",
		SolutionSummary: solution,
	}, status, []float32{1, 0, 0}, []models.EvidenceRef{{MessageID: "m1", TS: 1000}})
	require.NoError(t, err)
	return c
}

func TestExpiresStaleOpenCases(t *testing.T) {
	env := newReconcileEnv(t)
	ctx := context.Background()

	stale := env.seedCase(t, "open", "")
	fresh := env.seedCase(t, "open", "")

	past := time.Now().Add(-30 * 24 * time.Hour)
	require.NoError(t, env.client.SupportCase.UpdateOneID(stale.ID).SetUpdatedAt(past).Exec(ctx))

	env.svc.RunAll(ctx)

	got, err := env.cases.GetCase(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, supportcase.StatusArchived, got.Status)

	got, err = env.cases.GetCase(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, supportcase.StatusOpen, got.Status)
}

func TestReupsertsFlaggedCaseMissingFromIndex(t *testing.T) {
	env := newReconcileEnv(t)
	ctx := context.Background()

	c := env.seedCase(t, "solved", "Update firmware")
	require.NoError(t, env.cases.MarkInIndex(ctx, c.ID))
	require.False(t, env.idx.Has(c.ID), "index starts empty")

	env.svc.RunAll(ctx)

	assert.True(t, env.idx.Has(c.ID))
}

func TestDeletesStrayIndexEntries(t *testing.T) {
	env := newReconcileEnv(t)
	ctx := context.Background()

	// An index entry whose case row was deleted (or never flagged).
	require.NoError(t, env.idx.Upsert(ctx, index.Entry{
		CaseID:  "ghost1",
		GroupID: "g1",
		Title:   "gone",
		Vector:  []float32{1, 0, 0},
	}))

	env.svc.RunAll(ctx)

	assert.False(t, env.idx.Has("ghost1"))
}

func TestIndexRepairIsConvergent(t *testing.T) {
	env := newReconcileEnv(t)
	ctx := context.Background()

	c := env.seedCase(t, "solved", "Update firmware")
	require.NoError(t, env.cases.MarkInIndex(ctx, c.ID))

	env.svc.RunAll(ctx)
	env.svc.RunAll(ctx)

	assert.True(t, env.idx.Has(c.ID))
	assert.Equal(t, []string{c.ID}, env.idx.ListIDs())
}

func TestDeletesExpiredTokens(t *testing.T) {
	env := newReconcileEnv(t)
	ctx := context.Background()

	dead, err := env.admins.CreateToken(ctx, "admin1", "g1", -time.Minute)
	require.NoError(t, err)
	alive, err := env.admins.CreateToken(ctx, "admin1", "g1", time.Hour)
	require.NoError(t, err)

	env.svc.RunAll(ctx)

	n, err := env.client.HistoryToken.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = env.client.HistoryToken.Get(ctx, alive.ID)
	assert.NoError(t, err)
	_, err = env.client.HistoryToken.Get(ctx, dead.ID)
	assert.Error(t, err)
	assert.True(t, ent.IsNotFound(err))
}

func TestDeletesFinishedJobsPastRetention(t *testing.T) {
	env := newReconcileEnv(t)
	ctx := context.Background()

	finished, err := env.jobs.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{})
	require.NoError(t, err)
	leased, err := env.jobs.Lease(ctx, "w1", time.Minute)
	require.NoError(t, err)
	require.NoError(t, env.jobs.Complete(ctx, leased.ID))

	pending, err := env.jobs.Enqueue(ctx, job.TypeBufferUpdate, "g1", models.BufferUpdatePayload{})
	require.NoError(t, err)

	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, env.client.Job.UpdateOneID(finished.ID).SetUpdatedAt(past).Exec(ctx))

	env.svc.RunAll(ctx)

	_, err = env.client.Job.Get(ctx, finished.ID)
	assert.True(t, ent.IsNotFound(err))
	_, err = env.client.Job.Get(ctx, pending.ID)
	assert.NoError(t, err)
}

func TestStartStopLifecycle(t *testing.T) {
	env := newReconcileEnv(t)

	env.svc.Start(context.Background())
	env.svc.Start(context.Background()) // duplicate start is a no-op
	env.svc.Stop()
}
