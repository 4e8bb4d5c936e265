package services

import (
	"context"
	"testing"
	"time"

	"github.com/casemine/casemine/ent/supportcase"
	"github.com/casemine/casemine/pkg/models"
	testdb "github.com/casemine/casemine/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(title string) models.CaseFields {
	return models.CaseFields{
		ProblemTitle:   title,
		ProblemSummary: "problem of " + title,
		Tags:           []string{"net"},
	}
}

func solvedFields(title string) models.CaseFields {
	f := fields(title)
	f.SolutionSummary = "solution of " + title
	return f
}

func refs(ids ...string) []models.EvidenceRef {
	out := make([]models.EvidenceRef, len(ids))
	for i, id := range ids {
		out[i] = models.EvidenceRef{MessageID: id, TS: int64((i + 1) * 1000)}
	}
	return out
}

func TestCreateCaseWithEvidence(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCaseService(client.Client)
	ctx := context.Background()

	c, err := svc.CreateCase(ctx, "g1", solvedFields("vpn"), "solved", []float32{1, 0}, refs("m1", "m2", "m3"))
	require.NoError(t, err)
	assert.Equal(t, supportcase.StatusSolved, c.Status)

	ev, err := svc.Evidence(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, ev, 3)
	assert.Equal(t, "m1", ev[0].MessageID)
	assert.Equal(t, 0, ev[0].Position)
	assert.Equal(t, "m3", ev[2].MessageID)
}

func TestCreateCaseSolvedRequiresSolution(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCaseService(client.Client)

	_, err := svc.CreateCase(context.Background(), "g1", fields("vpn"), "solved", nil, nil)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateCase(context.Background(), "g1", fields("vpn"), "archived", nil, nil)
	require.Error(t, err)
}

func TestFindSimilarCase(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCaseService(client.Client)
	ctx := context.Background()

	c1, err := svc.CreateCase(ctx, "g1", fields("vpn"), "open", []float32{1, 0, 0}, refs("m1"))
	require.NoError(t, err)
	_, err = svc.CreateCase(ctx, "g1", fields("printer"), "open", []float32{0, 1, 0}, refs("m2"))
	require.NoError(t, err)

	// near-duplicate of c1
	hit, err := svc.FindSimilarCase(ctx, "g1", []float32{0.99, 0.05, 0}, 0.9, "")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, c1.ID, hit.ID)

	// below threshold
	hit, err = svc.FindSimilarCase(ctx, "g1", []float32{0.5, 0.5, 0.7}, 0.95, "")
	require.NoError(t, err)
	assert.Nil(t, hit)

	// other groups never match
	hit, err = svc.FindSimilarCase(ctx, "g2", []float32{1, 0, 0}, 0.9, "")
	require.NoError(t, err)
	assert.Nil(t, hit)
}

func TestFindSimilarCaseTieBreaks(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCaseService(client.Client)
	ctx := context.Background()

	// identical embeddings; ca has more evidence
	ca, err := svc.CreateCase(ctx, "g1", fields("a"), "open", []float32{1, 0}, refs("m1", "m2"))
	require.NoError(t, err)
	_, err = svc.CreateCase(ctx, "g1", fields("b"), "open", []float32{1, 0}, refs("m3"))
	require.NoError(t, err)

	hit, err := svc.FindSimilarCase(ctx, "g1", []float32{1, 0}, 0.9, "")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, ca.ID, hit.ID)
}

func TestFindSimilarCaseIgnoresArchived(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCaseService(client.Client)
	ctx := context.Background()

	c, err := svc.CreateCase(ctx, "g1", fields("vpn"), "open", []float32{1, 0}, nil)
	require.NoError(t, err)
	require.NoError(t, svc.ArchiveCase(ctx, c.ID))

	hit, err := svc.FindSimilarCase(ctx, "g1", []float32{1, 0}, 0.9, "")
	require.NoError(t, err)
	assert.Nil(t, hit)
}

func TestMergeCase(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCaseService(client.Client)
	ctx := context.Background()

	c, err := svc.CreateCase(ctx, "g1", fields("vpn"), "open", []float32{1, 0}, refs("m1", "m2"))
	require.NoError(t, err)
	originalCreated := c.CreatedAt

	merged, err := svc.MergeCase(ctx, c.ID, models.CaseFields{
		ProblemTitle:    "vpn drops on corporate network", // strictly longer, replaces
		ProblemSummary:  "short",                          // shorter, kept as-is
		SolutionSummary: "restart the tunnel daemon",
		Tags:            []string{"net", "vpn"},
	}, []models.EvidenceRef{
		{MessageID: "m2", TS: 2000}, // duplicate, ignored
		{MessageID: "m9", TS: 9000},
		{MessageID: "m4", TS: 4000},
	})
	require.NoError(t, err)

	assert.Equal(t, "vpn drops on corporate network", merged.ProblemTitle)
	assert.Equal(t, "problem of vpn", merged.ProblemSummary)
	assert.Equal(t, "restart the tunnel daemon", merged.SolutionSummary)
	assert.ElementsMatch(t, []string{"net", "vpn"}, merged.Tags)
	assert.Equal(t, originalCreated.UnixMilli(), merged.CreatedAt.UnixMilli())

	// union preserves existing order, appends new evidence by timestamp
	ev, err := svc.Evidence(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, ev, 4)
	assert.Equal(t, "m1", ev[0].MessageID)
	assert.Equal(t, "m2", ev[1].MessageID)
	assert.Equal(t, "m4", ev[2].MessageID)
	assert.Equal(t, "m9", ev[3].MessageID)
}

func TestPromoteSolved(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCaseService(client.Client)
	ctx := context.Background()

	c, err := svc.CreateCase(ctx, "g1", fields("drone"), "open", nil, nil)
	require.NoError(t, err)

	_, err = svc.PromoteSolved(ctx, c.ID, "")
	require.Error(t, err)

	promoted, err := svc.PromoteSolved(ctx, c.ID, "disable GPS and compass")
	require.NoError(t, err)
	assert.Equal(t, supportcase.StatusSolved, promoted.Status)
	assert.Equal(t, "disable GPS and compass", promoted.SolutionSummary)
}

func TestConfirmCasesByEvidenceTS(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCaseService(client.Client)
	ctx := context.Background()

	c1, err := svc.CreateCase(ctx, "g1", fields("a"), "open", nil,
		[]models.EvidenceRef{{MessageID: "m1", TS: 1000}})
	require.NoError(t, err)
	c2, err := svc.CreateCase(ctx, "g1", fields("b"), "open", nil,
		[]models.EvidenceRef{{MessageID: "m2", TS: 2000}})
	require.NoError(t, err)

	affected, err := svc.ConfirmCasesByEvidenceTS(ctx, "g1", 1000, "👍")
	require.NoError(t, err)
	require.Len(t, affected, 1)
	assert.Equal(t, c1.ID, affected[0].ID)
	assert.Equal(t, supportcase.StatusSolved, affected[0].Status)
	require.NotNil(t, affected[0].ClosedEmoji)
	assert.Equal(t, "👍", *affected[0].ClosedEmoji)

	// c2 untouched
	got, err := svc.GetCase(ctx, c2.ID)
	require.NoError(t, err)
	assert.Equal(t, supportcase.StatusOpen, got.Status)

	// a ts tied to no case confirms nothing
	affected, err = svc.ConfirmCasesByEvidenceTS(ctx, "g1", 9999, "👍")
	require.NoError(t, err)
	assert.Empty(t, affected)
}

func TestExpireOldOpenCases(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCaseService(client.Client)
	ctx := context.Background()

	stale, err := svc.CreateCase(ctx, "g1", fields("stale"), "open", nil, nil)
	require.NoError(t, err)
	fresh, err := svc.CreateCase(ctx, "g1", fields("fresh"), "open", nil, nil)
	require.NoError(t, err)

	// backdate the stale case past the TTL
	_, err = client.DB().ExecContext(ctx,
		"UPDATE support_cases SET updated_at = now() - interval '30 days' WHERE case_id = $1", stale.ID)
	require.NoError(t, err)

	n, err := svc.ExpireOldOpenCases(ctx, 14*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := svc.GetCase(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, supportcase.StatusArchived, got.Status)
	got, err = svc.GetCase(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, supportcase.StatusOpen, got.Status)
}

func TestCaseDetailJoinsEvidenceMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	caseSvc := NewCaseService(client.Client)
	msgSvc := NewMessageService(client.Client)
	ctx := context.Background()

	m := inbound("g1", "m1", 1000, "How do I reset X?")
	m.SenderName = "Olena"
	m.ImagePaths = []string{"g1/m1/0.jpg"}
	_, err := msgSvc.InsertRawMessage(ctx, m, false)
	require.NoError(t, err)

	c, err := caseSvc.CreateCase(ctx, "g1", solvedFields("reset"), "solved", nil,
		[]models.EvidenceRef{{MessageID: "m1", TS: 1000}})
	require.NoError(t, err)

	detail, err := caseSvc.CaseDetail(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, detail.CaseID)
	assert.Equal(t, "solved", detail.Status)
	require.Len(t, detail.Evidence, 1)
	assert.Equal(t, "How do I reset X?", detail.Evidence[0].ContentText)
	assert.Equal(t, "Olena", detail.Evidence[0].SenderName)
	assert.Equal(t, []string{"g1/m1/0.jpg"}, detail.Evidence[0].Images)
}

func TestDeleteGroupCasesCascadesEvidence(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCaseService(client.Client)
	ctx := context.Background()

	c, err := svc.CreateCase(ctx, "g1", fields("a"), "open", nil, refs("m1"))
	require.NoError(t, err)

	ids, err := svc.DeleteGroupCases(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID}, ids)

	_, err = svc.GetCase(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	ev, err := svc.Evidence(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, ev)
}
