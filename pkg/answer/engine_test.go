package answer

import (
	"context"
	"testing"

	"github.com/casemine/casemine/ent/adminsession"
	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/database"
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

// fakeTransport records outgoing group messages.
type fakeTransport struct {
	sent        []sentMessage
	unreachable bool
}

type sentMessage struct {
	GroupID string
	Text    string
	QuoteID string
}

func (f *fakeTransport) Listen(ctx context.Context) (<-chan transport.Event, error) {
	ch := make(chan transport.Event)
	close(ch)
	return ch, nil
}

func (f *fakeTransport) SendGroupText(_ context.Context, groupID, text, quoteMessageID string, _ []string) (bool, error) {
	if f.unreachable {
		return false, nil
	}
	f.sent = append(f.sent, sentMessage{GroupID: groupID, Text: text, QuoteID: quoteMessageID})
	return true, nil
}

func (f *fakeTransport) SendDirectText(_ context.Context, _, _ string, _ []byte) (bool, error) {
	return true, nil
}

func (f *fakeTransport) ListGroups(_ context.Context) ([]transport.Group, error) {
	return nil, nil
}

func (f *fakeTransport) MentionToken(recipientID string) string {
	return "<@" + recipientID + ">"
}

var _ transport.Transport = (*fakeTransport)(nil)

type engineEnv struct {
	engine   *Engine
	messages *services.MessageService
	cases    *services.CaseService
	admins   *services.AdminService
	gateway  *llmtest.Gateway
	embedder *llmtest.Embedder
	idx      *index.Provider
	sender   *fakeTransport
	locker   *database.GroupLocker
}

func newEngineEnv(t *testing.T) *engineEnv {
	t.Helper()
	client := testdb.NewTestClient(t)

	idx, err := index.NewProvider(&config.IndexConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	gw := &llmtest.Gateway{}
	emb := &llmtest.Embedder{Vectors: map[string][]float32{}}
	sender := &fakeTransport{}

	cfg := &config.Config{
		Pipeline: config.DefaultPipelineConfig(),
		Queue:    config.DefaultQueueConfig(),
		Images:   config.DefaultImageConfig(),
	}
	cfg.Pipeline.PublicBaseURL = "https://cases.example.com"

	messages := services.NewMessageService(client.Client)
	cases := services.NewCaseService(client.Client)
	admins := services.NewAdminService(client.Client)
	locker := database.NewGroupLocker(client.DB())

	return &engineEnv{
		engine:   NewEngine(messages, cases, admins, gw, emb, idx, sender, locker, cfg),
		messages: messages,
		cases:    cases,
		admins:   admins,
		gateway:  gw,
		embedder: emb,
		idx:      idx,
		sender:   sender,
		locker:   locker,
	}
}

func (e *engineEnv) linkAdmin(t *testing.T, adminID, groupID string) {
	t.Helper()
	ctx := context.Background()
	_, err := e.admins.CreateSession(ctx, adminID, adminsession.LangEn)
	require.NoError(t, err)
	require.NoError(t, e.admins.CreateLink(ctx, adminID, groupID))
}

func (e *engineEnv) storeMessage(t *testing.T, groupID, messageID string, ts int64, text string) {
	t.Helper()
	_, err := e.messages.InsertRawMessage(context.Background(), models.InboundMessage{
		GroupID:   groupID,
		MessageID: messageID,
		TS:        ts,
		Sender:    "a1b2c3",
		Text:      text,
	}, false)
	require.NoError(t, err)
}

func (e *engineEnv) respond(t *testing.T, groupID, messageID string) {
	t.Helper()
	require.NoError(t, e.engine.HandleMaybeRespond(context.Background(), models.MaybeRespondPayload{
		GroupID: groupID, MessageID: messageID,
	}))
}

func openGate(g *llmtest.Gateway) {
	g.GateClassifyFn = func(_ context.Context, _, _ string, _ []llm.ImageInput) (*llm.GateResult, error) {
		return &llm.GateResult{Consider: true, Tag: llm.TagNewQuestion}, nil
	}
}

func TestGateSilencesNoise(t *testing.T) {
	env := newEngineEnv(t)
	env.linkAdmin(t, "admin1", "grp1")
	env.storeMessage(t, "grp1", "m1", 1_000, "👍")

	// default fake gate: consider=false
	env.respond(t, "grp1", "m1")
	assert.Empty(t, env.sender.sent)
}

func TestNoAdminsMeansSilence(t *testing.T) {
	env := newEngineEnv(t)
	env.storeMessage(t, "grp1", "m1", 1_000, "how do I fix the printer?")
	openGate(env.gateway)

	env.respond(t, "grp1", "m1")
	assert.Empty(t, env.sender.sent)
}

func TestNoContextTagsAdmins(t *testing.T) {
	env := newEngineEnv(t)
	env.linkAdmin(t, "admin1", "grp1")
	env.linkAdmin(t, "admin2", "grp1")
	env.storeMessage(t, "grp1", "m1", 1_000, "anyone seen this error before?")
	openGate(env.gateway)

	env.respond(t, "grp1", "m1")
	require.Len(t, env.sender.sent, 1)
	msg := env.sender.sent[0]
	assert.Equal(t, "m1", msg.QuoteID)
	assert.Contains(t, msg.Text, "<@admin1>")
	assert.Contains(t, msg.Text, "<@admin2>")
	assert.NotContains(t, msg.Text, TagAdminSentinel)
}

func TestSolvedContextSynthesizesWithLink(t *testing.T) {
	env := newEngineEnv(t)
	ctx := context.Background()
	env.linkAdmin(t, "admin1", "grp1")

	c, err := env.cases.CreateCase(ctx, "grp1", models.CaseFields{
		ProblemTitle:    "X-500 duplex jam",
		ProblemSummary:  "Printer jams on duplex",
		SolutionSummary: "Update firmware to 2.1",
	}, "solved", []float32{1, 0, 0}, nil)
	require.NoError(t, err)
	require.NoError(t, env.idx.Upsert(ctx, index.Entry{
		CaseID: c.ID, GroupID: "grp1", Title: c.ProblemTitle,
		Solution: c.SolutionSummary, Vector: []float32{1, 0, 0},
	}))

	env.storeMessage(t, "grp1", "m1", 1_000, "printer jams when printing both sides")
	env.embedder.Vectors["printer jams when printing both sides"] = []float32{0.98, 0.2, 0}
	openGate(env.gateway)

	var gotContext string
	env.gateway.SynthesizeAnswerFn = func(_ context.Context, _, retrieved string, lang config.Language) (string, error) {
		gotContext = retrieved
		assert.Equal(t, config.LanguageEN, lang)
		return "Update the firmware to 2.1, see https://cases.example.com/cases/" + c.ID, nil
	}

	env.respond(t, "grp1", "m1")
	require.Len(t, env.sender.sent, 1)
	assert.Contains(t, env.sender.sent[0].Text, "/cases/"+c.ID)
	assert.Contains(t, gotContext, "Update firmware to 2.1")
	assert.Contains(t, gotContext, "https://cases.example.com/cases/"+c.ID)
}

func TestOpenContextAlwaysTagsAdmins(t *testing.T) {
	env := newEngineEnv(t)
	ctx := context.Background()
	env.linkAdmin(t, "admin1", "grp1")

	_, err := env.cases.CreateCase(ctx, "grp1", models.CaseFields{
		ProblemTitle:   "VPN drops hourly",
		ProblemSummary: "VPN disconnects on the hour",
	}, "open", []float32{0, 1, 0}, nil)
	require.NoError(t, err)

	env.storeMessage(t, "grp1", "m1", 1_000, "is the vpn thing known?")
	openGate(env.gateway)
	env.gateway.SynthesizeAnswerFn = func(_ context.Context, _, retrieved string, _ config.Language) (string, error) {
		assert.Contains(t, retrieved, "Open cases")
		return "This is already tracked.", nil
	}

	env.respond(t, "grp1", "m1")
	require.Len(t, env.sender.sent, 1)
	assert.Contains(t, env.sender.sent[0].Text, "This is already tracked.")
	assert.Contains(t, env.sender.sent[0].Text, "<@admin1>")
}

func TestBotMentionBypassesGate(t *testing.T) {
	env := newEngineEnv(t)
	env.linkAdmin(t, "admin1", "grp1")
	env.storeMessage(t, "grp1", "m1", 1_000, "@casemine are you alive?")

	// gate is never called: the default fake would silence the message
	env.respond(t, "grp1", "m1")
	require.Len(t, env.sender.sent, 1)
}

func TestReplyIsIdempotentPerMessage(t *testing.T) {
	env := newEngineEnv(t)
	env.linkAdmin(t, "admin1", "grp1")
	env.storeMessage(t, "grp1", "m1", 1_000, "question?")
	openGate(env.gateway)

	env.respond(t, "grp1", "m1")
	env.respond(t, "grp1", "m1")
	assert.Len(t, env.sender.sent, 1)
}

func TestEmptyOrBotMessagesAreSilent(t *testing.T) {
	env := newEngineEnv(t)
	env.linkAdmin(t, "admin1", "grp1")
	openGate(env.gateway)

	env.storeMessage(t, "grp1", "m1", 1_000, "   ")
	env.respond(t, "grp1", "m1")

	// unknown messages are a benign no-op too
	env.respond(t, "grp1", "missing")
	assert.Empty(t, env.sender.sent)
}

func TestGateParseFailureStaysSilent(t *testing.T) {
	env := newEngineEnv(t)
	env.linkAdmin(t, "admin1", "grp1")
	env.storeMessage(t, "grp1", "m1", 1_000, "question?")
	env.gateway.GateClassifyFn = func(_ context.Context, _, _ string, _ []llm.ImageInput) (*llm.GateResult, error) {
		return nil, &llm.ParseError{Call: "gate_classify", Raw: "garbage"}
	}

	env.respond(t, "grp1", "m1")
	assert.Empty(t, env.sender.sent)
}

func TestStaleIndexHitFallsThrough(t *testing.T) {
	env := newEngineEnv(t)
	ctx := context.Background()
	env.linkAdmin(t, "admin1", "grp1")

	// index entry with no backing store row
	require.NoError(t, env.idx.Upsert(ctx, index.Entry{
		CaseID: "ghost", GroupID: "grp1", Title: "gone",
		Solution: "gone", Vector: []float32{1, 0, 0},
	}))
	env.storeMessage(t, "grp1", "m1", 1_000, "question?")
	openGate(env.gateway)

	env.respond(t, "grp1", "m1")
	require.Len(t, env.sender.sent, 1)
	assert.Contains(t, env.sender.sent[0].Text, "<@admin1>")
}

func TestSetDocsCommandIsAppliedNotAnswered(t *testing.T) {
	env := newEngineEnv(t)
	ctx := context.Background()
	env.linkAdmin(t, "admin1", "grp1")
	env.storeMessage(t, "grp1", "m1", 1_000, "/setdocs https://wiki.example.com/faq https://wiki.example.com/setup")
	env.gateway.GateClassifyFn = func(_ context.Context, _, _ string, _ []llm.ImageInput) (*llm.GateResult, error) {
		t.Fatal("commands must not reach the gate")
		return nil, nil
	}

	env.respond(t, "grp1", "m1")
	assert.Empty(t, env.sender.sent)

	urls, err := env.messages.DocURLs(ctx, "grp1")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://wiki.example.com/faq", "https://wiki.example.com/setup"}, urls)

	// with nothing retrieved, the fallback now points at the stored docs
	openGate(env.gateway)
	env.storeMessage(t, "grp1", "m2", 2_000, "where is the onboarding guide?")
	env.respond(t, "grp1", "m2")
	require.Len(t, env.sender.sent, 1)
	assert.Contains(t, env.sender.sent[0].Text, "https://wiki.example.com/faq")
	assert.Contains(t, env.sender.sent[0].Text, "<@admin1>")
}

func TestUnknownSlashPrefixFlowsToGate(t *testing.T) {
	env := newEngineEnv(t)
	env.linkAdmin(t, "admin1", "grp1")
	env.storeMessage(t, "grp1", "m1", 1_000, "/weather for tomorrow?")
	openGate(env.gateway)

	env.respond(t, "grp1", "m1")
	require.Len(t, env.sender.sent, 1)
	assert.Contains(t, env.sender.sent[0].Text, "<@admin1>")
}

func TestResponseDefersWhileGroupLocked(t *testing.T) {
	env := newEngineEnv(t)
	ctx := context.Background()
	env.linkAdmin(t, "admin1", "grp1")
	env.storeMessage(t, "grp1", "m1", 1_000, "question?")
	openGate(env.gateway)

	held, err := env.locker.Acquire(ctx, "grp1")
	require.NoError(t, err)

	// extraction holds the group; the response job fails and retries
	err = env.engine.HandleMaybeRespond(ctx, models.MaybeRespondPayload{
		GroupID: "grp1", MessageID: "m1",
	})
	assert.Error(t, err)
	assert.Empty(t, env.sender.sent)

	require.NoError(t, held.Release(ctx))
	env.respond(t, "grp1", "m1")
	assert.Len(t, env.sender.sent, 1)
}
