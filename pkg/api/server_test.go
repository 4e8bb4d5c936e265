package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casemine/casemine/ent"
	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/history"
	"github.com/casemine/casemine/pkg/index"
	"github.com/casemine/casemine/pkg/llm"
	"github.com/casemine/casemine/pkg/llm/llmtest"
	"github.com/casemine/casemine/pkg/models"
	"github.com/casemine/casemine/pkg/queue"
	"github.com/casemine/casemine/pkg/services"
	"github.com/casemine/casemine/pkg/transport"
	testdb "github.com/casemine/casemine/test/database"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeTransport struct {
	dms []directMessage
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

type serverEnv struct {
	srv     *Server
	router  *gin.Engine
	cases   *services.CaseService
	admins  *services.AdminService
	gateway *llmtest.Gateway
	sender  *fakeTransport
	cfg     *config.Config
}

func newServerEnv(t *testing.T) *serverEnv {
	t.Helper()
	client := testdb.NewTestClient(t)

	idx, err := index.NewProvider(&config.IndexConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	cfg := &config.Config{
		Pipeline:  config.DefaultPipelineConfig(),
		Queue:     config.DefaultQueueConfig(),
		Retention: config.DefaultRetentionConfig(),
		History:   config.DefaultHistoryConfig(),
		Images:    config.DefaultImageConfig(),
		Server:    config.DefaultServerConfig(),
	}
	cfg.Images.RootDir = ""

	cases := services.NewCaseService(client.Client)
	admins := services.NewAdminService(client.Client)
	jobs := services.NewJobService(client.Client, cfg.Queue.MaxAttempts)
	gw := &llmtest.Gateway{}
	sender := &fakeTransport{}

	importer := history.NewImporter(admins, cases, gw, &llmtest.Embedder{}, idx, sender, cfg)
	pool := queue.NewWorkerPool("pod-test", jobs, cfg.Queue, &noopDispatcher{})

	srv := NewServer(cases, admins, pool, importer, idx, cfg)
	return &serverEnv{
		srv:     srv,
		router:  srv.Router(),
		cases:   cases,
		admins:  admins,
		gateway: gw,
		sender:  sender,
		cfg:     cfg,
	}
}

type noopDispatcher struct{}

func (*noopDispatcher) Dispatch(context.Context, *ent.Job) error { return nil }

func (e *serverEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestHealthUnhealthyWithoutWorkers(t *testing.T) {
	env := newServerEnv(t)

	w := env.do(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Status       string           `json:"status"`
		Pool         queue.PoolHealth `json:"pool"`
		IndexEntries int              `json:"index_entries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body.Status)
	assert.False(t, body.Pool.IsHealthy)
	assert.Equal(t, "pod-test", body.Pool.PodID)
	assert.Zero(t, body.Pool.TotalWorkers)
	assert.Zero(t, body.IndexEntries)
}

func TestGetCaseDetail(t *testing.T) {
	env := newServerEnv(t)
	ctx := context.Background()

	c, err := env.cases.CreateCase(ctx, "g1", models.CaseFields{
		ProblemTitle:    "X-500 duplex jam",
		ProblemSummary:  "Printer jams on duplex",
		SolutionSummary: "Update firmware",
	}, "solved", nil, []models.EvidenceRef{{MessageID: "m1", TS: 1000}})
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/api/cases/"+c.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail models.CaseDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "X-500 duplex jam", detail.ProblemTitle)
	assert.Equal(t, "solved", detail.Status)
}

func TestGetCaseNotFound(t *testing.T) {
	env := newServerEnv(t)
	w := env.do(t, http.MethodGet, "/api/cases/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLinkTokenRequiresBinding(t *testing.T) {
	env := newServerEnv(t)

	w := env.do(t, http.MethodPost, "/history/link-token", models.LinkTokenRequest{
		AdminID: "admin1",
		GroupID: "g1",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLinkTokenForBoundAdmin(t *testing.T) {
	env := newServerEnv(t)
	require.NoError(t, env.admins.CreateLink(context.Background(), "admin1", "g1"))

	w := env.do(t, http.MethodPost, "/history/link-token", models.LinkTokenRequest{
		AdminID: "admin1",
		GroupID: "g1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LinkTokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestLinkTokenDuringPendingBinding(t *testing.T) {
	env := newServerEnv(t)
	ctx := context.Background()

	_, err := env.admins.CreateSession(ctx, "admin1", "en")
	require.NoError(t, err)
	require.NoError(t, env.admins.BeginQRScan(ctx, "admin1", "g1", "Support Team", "tok"))

	w := env.do(t, http.MethodPost, "/history/link-token", models.LinkTokenRequest{
		AdminID: "admin1",
		GroupID: "g1",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQRReadyRelaysToAdminDM(t *testing.T) {
	env := newServerEnv(t)
	ctx := context.Background()

	tok, err := env.admins.CreateToken(ctx, "admin1", "g1", time.Hour)
	require.NoError(t, err)

	png := []byte{0x89, 'P', 'N', 'G'}
	w := env.do(t, http.MethodPost, "/history/qr-ready", models.QRReadyRequest{
		Token:       tok.ID,
		QRPNGBase64: base64.StdEncoding.EncodeToString(png),
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	require.Len(t, env.sender.dms, 1)
	assert.Equal(t, "admin1", env.sender.dms[0].AdminID)
	assert.Equal(t, png, env.sender.dms[0].Attachment)
}

func TestQRReadyRejectsBadBase64(t *testing.T) {
	env := newServerEnv(t)
	w := env.do(t, http.MethodPost, "/history/qr-ready", models.QRReadyRequest{
		Token:       "whatever",
		QRPNGBase64: "not base64!!",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQRReadyRejectsDeadToken(t *testing.T) {
	env := newServerEnv(t)
	w := env.do(t, http.MethodPost, "/history/qr-ready", models.QRReadyRequest{
		Token:       "unknown",
		QRPNGBase64: base64.StdEncoding.EncodeToString([]byte("x")),
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestImportCasesEndpoint(t *testing.T) {
	env := newServerEnv(t)
	ctx := context.Background()

	tok, err := env.admins.CreateToken(ctx, "admin1", "g1", time.Hour)
	require.NoError(t, err)
	env.gateway.StructureCaseFn = func(context.Context, string) (*llm.StructuredCase, error) {
		return &llm.StructuredCase{
			Keep:            true,
			Status:          "solved",
			ProblemTitle:    "X-500 duplex jam",
			ProblemSummary:  "Printer jams on duplex",
			SolutionSummary: "Update firmware",
		}, nil
	}

	body := models.HistoryCasesRequest{
		Token: tok.ID,
		Cases: []models.HistoryCaseBlock{{
			CaseBlock: "a1b2c3 ts=1000 msg_id=h1 reactions=0\nprinter jams on duplex",
		}},
	}

	w := env.do(t, http.MethodPost, "/history/cases", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HistoryCasesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Imported)

	// the token burns on first use
	w = env.do(t, http.MethodPost, "/history/cases", body)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStaticServesEvidenceImages(t *testing.T) {
	env := newServerEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shot.png"), []byte("png-bytes"), 0o644))
	env.cfg.Images.RootDir = dir
	env.router = env.srv.Router() // rebuild with static serving enabled

	w := env.do(t, http.MethodGet, "/static/shot.png", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png-bytes", w.Body.String())

	w = env.do(t, http.MethodGet, "/static/..%2fshot.png", nil)
	assert.NotEqual(t, http.StatusOK, w.Code)
}
