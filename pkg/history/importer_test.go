package history

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/casemine/casemine/ent/supportcase"
	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/index"
	"github.com/casemine/casemine/pkg/llm"
	"github.com/casemine/casemine/pkg/llm/llmtest"
	"github.com/casemine/casemine/pkg/models"
	"github.com/casemine/casemine/pkg/services"
	"github.com/casemine/casemine/pkg/transport"
	testdb "github.com/casemine/casemine/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	dms         []directMessage
	unreachable bool
}

type directMessage struct {
	AdminID    string
	Text       string
	Attachment []byte
}

func (f *fakeTransport) Listen(ctx context.Context) (<-chan transport.Event, error) {
	ch := make(chan transport.Event)
	close(ch)
	return ch, nil
}

func (f *fakeTransport) SendGroupText(_ context.Context, _, _, _ string, _ []string) (bool, error) {
	return true, nil
}

func (f *fakeTransport) SendDirectText(_ context.Context, adminID, text string, attachment []byte) (bool, error) {
	if f.unreachable {
		return false, nil
	}
	f.dms = append(f.dms, directMessage{AdminID: adminID, Text: text, Attachment: attachment})
	return true, nil
}

func (f *fakeTransport) ListGroups(_ context.Context) ([]transport.Group, error) {
	return nil, nil
}

func (f *fakeTransport) MentionToken(recipientID string) string {
	return "<@" + recipientID + ">"
}

var _ transport.Transport = (*fakeTransport)(nil)

type importerEnv struct {
	importer *Importer
	admins   *services.AdminService
	cases    *services.CaseService
	gateway  *llmtest.Gateway
	idx      *index.Provider
	sender   *fakeTransport
	cfg      *config.Config
}

func newImporterEnv(t *testing.T) *importerEnv {
	t.Helper()
	client := testdb.NewTestClient(t)

	idx, err := index.NewProvider(&config.IndexConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	gw := &llmtest.Gateway{}
	sender := &fakeTransport{}
	cfg := &config.Config{
		Pipeline:  config.DefaultPipelineConfig(),
		Queue:     config.DefaultQueueConfig(),
		Retention: config.DefaultRetentionConfig(),
		History:   config.DefaultHistoryConfig(),
		Images:    config.DefaultImageConfig(),
	}

	admins := services.NewAdminService(client.Client)
	cases := services.NewCaseService(client.Client)

	return &importerEnv{
		importer: NewImporter(admins, cases, gw, &llmtest.Embedder{}, idx, sender, cfg),
		admins:   admins,
		cases:    cases,
		gateway:  gw,
		idx:      idx,
		sender:   sender,
		cfg:      cfg,
	}
}

func (e *importerEnv) mintToken(t *testing.T, adminID, groupID string) string {
	t.Helper()
	tok, err := e.admins.CreateToken(context.Background(), adminID, groupID, time.Hour)
	require.NoError(t, err)
	return tok.ID
}

const caseBlock = "a1b2c3 ts=1000 msg_id=h1 reactions=0\nprinter jams on duplex\n\n" +
	"d4e5f6 ts=2000 msg_id=h2 reactions=2\nfixed by firmware 2.1"

func solvedStructurer(_ context.Context, _ string) (*llm.StructuredCase, error) {
	return &llm.StructuredCase{
		Keep:            true,
		Status:          "solved",
		ProblemTitle:    "X-500 duplex jam",
		ProblemSummary:  "Printer jams on duplex",
		SolutionSummary: "Update firmware to 2.1",
	}, nil
}

func TestImportCreatesCaseWithEvidenceAndLink(t *testing.T) {
	env := newImporterEnv(t)
	ctx := context.Background()
	token := env.mintToken(t, "admin1", "g1")
	env.gateway.StructureCaseFn = solvedStructurer

	res, err := env.importer.ImportCases(ctx, models.HistoryCasesRequest{
		Token: token,
		Cases: []models.HistoryCaseBlock{{CaseBlock: caseBlock, ReactionEmoji: "\U0001F44D"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Zero(t, res.Merged)

	// bootstrap completion links the admin to the group
	admins, err := env.admins.AdminsForGroup(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin1"}, admins)

	cases, err := env.cases.RecentSolvedCases(ctx, "g1", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, cases, 1)
	c := cases[0]
	assert.Equal(t, supportcase.StatusSolved, c.Status)
	require.NotNil(t, c.ClosedEmoji)
	assert.Equal(t, "\U0001F44D", *c.ClosedEmoji)
	assert.True(t, c.InIndex)
	assert.True(t, env.idx.Has(c.ID))

	evidence, err := env.cases.Evidence(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, evidence, 2)
	assert.Equal(t, "h1", evidence[0].MessageID)
	assert.Equal(t, "h2", evidence[1].MessageID)
}

func TestImportMergesNearDuplicate(t *testing.T) {
	env := newImporterEnv(t)
	ctx := context.Background()

	existing, err := env.cases.CreateCase(ctx, "g1", models.CaseFields{
		ProblemTitle:    "X-500 duplex jam",
		ProblemSummary:  "Printer jams on duplex",
		SolutionSummary: "Update firmware",
	}, "solved", []float32{1, 0, 0}, nil)
	require.NoError(t, err)

	token := env.mintToken(t, "admin1", "g1")
	env.gateway.StructureCaseFn = solvedStructurer

	// the fake embedder's fallback vector equals the existing embedding
	res, err := env.importer.ImportCases(ctx, models.HistoryCasesRequest{
		Token: token,
		Cases: []models.HistoryCaseBlock{{CaseBlock: caseBlock}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Merged)
	assert.Zero(t, res.Imported)

	evidence, err := env.cases.Evidence(ctx, existing.ID)
	require.NoError(t, err)
	assert.Len(t, evidence, 2)
}

func TestImportTokenIsSingleUse(t *testing.T) {
	env := newImporterEnv(t)
	ctx := context.Background()
	token := env.mintToken(t, "admin1", "g1")

	_, err := env.importer.ImportCases(ctx, models.HistoryCasesRequest{Token: token})
	require.NoError(t, err)

	_, err = env.importer.ImportCases(ctx, models.HistoryCasesRequest{Token: token})
	assert.ErrorIs(t, err, services.ErrTokenUnusable)
}

func TestImportSkipsUnparseableAndDiscardedBlocks(t *testing.T) {
	env := newImporterEnv(t)
	ctx := context.Background()
	token := env.mintToken(t, "admin1", "g1")

	calls := 0
	env.gateway.StructureCaseFn = func(_ context.Context, _ string) (*llm.StructuredCase, error) {
		calls++
		if calls == 1 {
			return nil, &llm.ParseError{Call: "structure_case", Raw: "garbage"}
		}
		return &llm.StructuredCase{Keep: false}, nil
	}

	res, err := env.importer.ImportCases(ctx, models.HistoryCasesRequest{
		Token: token,
		Cases: []models.HistoryCaseBlock{
			{CaseBlock: caseBlock},
			{CaseBlock: caseBlock},
			{CaseBlock: "no headers here"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Skipped)
	assert.Zero(t, res.Imported)
}

func TestRelayQRSendsDM(t *testing.T) {
	env := newImporterEnv(t)
	ctx := context.Background()
	token := env.mintToken(t, "admin1", "g1")

	qr := []byte{0x89, 'P', 'N', 'G'}
	require.NoError(t, env.importer.RelayQR(ctx, token, qr))
	require.Len(t, env.sender.dms, 1)
	assert.Equal(t, "admin1", env.sender.dms[0].AdminID)
	assert.Equal(t, qr, env.sender.dms[0].Attachment)

	// the token survives the relay; only the import consumes it
	_, err := env.admins.PeekToken(ctx, token)
	require.NoError(t, err)
}

func TestHandleHistoryLinkPostsToCollaborator(t *testing.T) {
	env := newImporterEnv(t)
	ctx := context.Background()
	token := env.mintToken(t, "admin1", "g1")

	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sessions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()
	env.cfg.History.CollaboratorURL = srv.URL

	require.NoError(t, env.importer.HandleHistoryLink(ctx, models.HistoryLinkPayload{
		Token: token, AdminID: "admin1", GroupID: "g1",
	}))
	assert.Equal(t, token, got["token"])
	assert.Equal(t, "g1", got["group_id"])
}

func TestHandleHistoryLinkSkipsDeadToken(t *testing.T) {
	env := newImporterEnv(t)
	ctx := context.Background()

	// unknown token: the admin restarted the flow
	require.NoError(t, env.importer.HandleHistoryLink(ctx, models.HistoryLinkPayload{
		Token: "gone", AdminID: "admin1", GroupID: "g1",
	}))
}
