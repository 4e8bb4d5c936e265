package extract

import (
	"context"
	"testing"

	"github.com/casemine/casemine/ent"
	"github.com/casemine/casemine/ent/supportcase"
	"github.com/casemine/casemine/pkg/buffer"
	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/database"
	"github.com/casemine/casemine/pkg/index"
	"github.com/casemine/casemine/pkg/llm"
	"github.com/casemine/casemine/pkg/llm/llmtest"
	"github.com/casemine/casemine/pkg/models"
	"github.com/casemine/casemine/pkg/services"
	testdb "github.com/casemine/casemine/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type extractorEnv struct {
	extractor *Extractor
	messages  *services.MessageService
	cases     *services.CaseService
	gateway   *llmtest.Gateway
	embedder  *llmtest.Embedder
	idx       *index.Provider
	client    *database.Client
}

func newExtractorEnv(t *testing.T) *extractorEnv {
	t.Helper()
	client := testdb.NewTestClient(t)

	idx, err := index.NewProvider(&config.IndexConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	gw := &llmtest.Gateway{}
	emb := &llmtest.Embedder{Vectors: map[string][]float32{}}

	cfg := &config.Config{
		Pipeline: config.DefaultPipelineConfig(),
		Queue:    config.DefaultQueueConfig(),
		Images:   config.DefaultImageConfig(),
	}

	messages := services.NewMessageService(client.Client)
	cases := services.NewCaseService(client.Client)
	locker := database.NewGroupLocker(client.DB())

	return &extractorEnv{
		extractor: NewExtractor(messages, cases, gw, emb, idx, locker, cfg),
		messages:  messages,
		cases:     cases,
		gateway:   gw,
		embedder:  emb,
		idx:       idx,
		client:    client,
	}
}

// ingest stores a message and runs its buffer update.
func (e *extractorEnv) ingest(t *testing.T, groupID, messageID string, ts int64, text string) {
	t.Helper()
	ctx := context.Background()
	_, err := e.messages.InsertRawMessage(ctx, models.InboundMessage{
		GroupID:   groupID,
		MessageID: messageID,
		TS:        ts,
		Sender:    "a1b2c3",
		Text:      text,
	}, false)
	require.NoError(t, err)
	require.NoError(t, e.extractor.HandleBufferUpdate(ctx, models.BufferUpdatePayload{
		GroupID: groupID, MessageID: messageID,
	}))
}

func (e *extractorEnv) groupCases(t *testing.T, groupID string) []*ent.SupportCase {
	t.Helper()
	rows, err := e.client.Client.SupportCase.Query().
		Where(supportcase.GroupID(groupID)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func TestSolvedCaseEndToEnd(t *testing.T) {
	env := newExtractorEnv(t)
	ctx := context.Background()

	env.ingest(t, "g1", "m1", 1_000, "printer X-500 jams on duplex")
	env.ingest(t, "g1", "m2", 2_000, "same here, every time")

	// the third message completes the conversation: extract one solved span
	env.gateway.ExtractCaseSpansFn = func(_ context.Context, numbered string, n int) ([]buffer.Span, error) {
		require.Equal(t, 3, n)
		assert.Contains(t, numbered, "### MSG idx=0")
		return []buffer.Span{{Start: 0, End: 2}}, nil
	}
	env.gateway.StructureCaseFn = func(_ context.Context, caseText string) (*llm.StructuredCase, error) {
		assert.Contains(t, caseText, "printer X-500")
		return &llm.StructuredCase{
			Keep:            true,
			Status:          "solved",
			ProblemTitle:    "X-500 duplex jam",
			ProblemSummary:  "Printer jams when printing duplex",
			SolutionSummary: "Update firmware to 2.1",
			Tags:            []string{"printer"},
		}, nil
	}
	env.ingest(t, "g1", "m3", 3_000, "fixed it: firmware 2.1")

	cases := env.groupCases(t, "g1")
	require.Len(t, cases, 1)
	c := cases[0]
	assert.Equal(t, supportcase.StatusSolved, c.Status)
	assert.Equal(t, "Update firmware to 2.1", c.SolutionSummary)
	assert.True(t, c.InIndex)
	assert.True(t, env.idx.Has(c.ID))

	evidence, err := env.cases.Evidence(ctx, c.ID)
	require.NoError(t, err)
	ids := make([]string, len(evidence))
	for i, ev := range evidence {
		ids[i] = ev.MessageID
	}
	assert.Equal(t, []string{"m1", "m2", "m3"}, ids)

	// the accepted span left the buffer
	buf, err := env.messages.GetBuffer(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, buf)
}

func TestOpenCaseResolvedDynamically(t *testing.T) {
	env := newExtractorEnv(t)
	ctx := context.Background()

	env.gateway.ExtractCaseSpansFn = func(_ context.Context, _ string, _ int) ([]buffer.Span, error) {
		return []buffer.Span{{Start: 0, End: 0}}, nil
	}
	env.gateway.StructureCaseFn = func(_ context.Context, _ string) (*llm.StructuredCase, error) {
		return &llm.StructuredCase{
			Keep:           true,
			Status:         "open",
			ProblemTitle:   "VPN drops hourly",
			ProblemSummary: "VPN disconnects every hour on the hour",
		}, nil
	}
	env.ingest(t, "g1", "m1", 1_000, "vpn keeps dropping every hour")

	cases := env.groupCases(t, "g1")
	require.Len(t, cases, 1)
	assert.Equal(t, supportcase.StatusOpen, cases[0].Status)
	assert.False(t, cases[0].InIndex)

	// open spans stay in the buffer
	buf, err := env.messages.GetBuffer(ctx, "g1")
	require.NoError(t, err)
	assert.Contains(t, buf, "msg_id=m1")

	// a later message carries the answer; phase 1 finds nothing, phase 2 does
	env.gateway.ExtractCaseSpansFn = nil
	env.gateway.StructureCaseFn = nil
	env.gateway.CheckResolvedFn = func(_ context.Context, title, _, bufText string) (*llm.ResolutionResult, error) {
		assert.Equal(t, "VPN drops hourly", title)
		assert.Contains(t, bufText, "keepalive")
		return &llm.ResolutionResult{Resolved: true, SolutionSummary: "Enable keepalive in the client"}, nil
	}
	env.ingest(t, "g1", "m2", 2_000, "set the keepalive option, fixed for me")

	c, err := env.cases.GetCase(ctx, cases[0].ID)
	require.NoError(t, err)
	assert.Equal(t, supportcase.StatusSolved, c.Status)
	assert.Equal(t, "Enable keepalive in the client", c.SolutionSummary)
	assert.True(t, c.InIndex)
	assert.True(t, env.idx.Has(c.ID))
}

func TestDuplicateReportMergesIntoExistingCase(t *testing.T) {
	env := newExtractorEnv(t)
	ctx := context.Background()

	// both reports embed to (nearly) the same vector
	env.embedder.Vectors[DedupText("X-500 duplex jam", "Printer jams on duplex")] = []float32{1, 0, 0}
	env.embedder.Vectors[DedupText("Duplex jam on X-500", "The X-500 jams duplex pages")] = []float32{0.99, 0.14, 0}

	env.gateway.ExtractCaseSpansFn = func(_ context.Context, _ string, _ int) ([]buffer.Span, error) {
		return []buffer.Span{{Start: 0, End: 0}}, nil
	}
	env.gateway.StructureCaseFn = func(_ context.Context, _ string) (*llm.StructuredCase, error) {
		return &llm.StructuredCase{
			Keep:            true,
			Status:          "solved",
			ProblemTitle:    "X-500 duplex jam",
			ProblemSummary:  "Printer jams on duplex",
			SolutionSummary: "Update firmware",
		}, nil
	}
	env.ingest(t, "g1", "m1", 1_000, "printer jams duplex, firmware update fixed it")

	cases := env.groupCases(t, "g1")
	require.Len(t, cases, 1)
	first := cases[0]

	env.gateway.StructureCaseFn = func(_ context.Context, _ string) (*llm.StructuredCase, error) {
		return &llm.StructuredCase{
			Keep:           true,
			Status:         "open",
			ProblemTitle:   "Duplex jam on X-500",
			ProblemSummary: "The X-500 jams duplex pages",
		}, nil
	}
	env.ingest(t, "g1", "m2", 2_000, "my X-500 jams on duplex too")

	// no second case; the report merged into the existing one
	cases = env.groupCases(t, "g1")
	require.Len(t, cases, 1)
	assert.Equal(t, first.ID, cases[0].ID)
	assert.Equal(t, supportcase.StatusSolved, cases[0].Status)

	evidence, err := env.cases.Evidence(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, evidence, 2)
	assert.Equal(t, "m1", evidence[0].MessageID)
	assert.Equal(t, "m2", evidence[1].MessageID)
}

func TestOverlappingSpansRejectedEntirely(t *testing.T) {
	env := newExtractorEnv(t)
	ctx := context.Background()

	for i, text := range []string{"a", "b", "c", "d", "e"} {
		env.ingest(t, "g1", "m"+text, int64((i+1)*1000), text)
	}
	before, err := env.messages.GetBuffer(ctx, "g1")
	require.NoError(t, err)

	structured := 0
	env.gateway.ExtractCaseSpansFn = func(_ context.Context, _ string, _ int) ([]buffer.Span, error) {
		return []buffer.Span{{Start: 0, End: 3}, {Start: 2, End: 5}}, nil
	}
	env.gateway.StructureCaseFn = func(_ context.Context, _ string) (*llm.StructuredCase, error) {
		structured++
		return &llm.StructuredCase{Keep: true, Status: "solved", ProblemTitle: "x", ProblemSummary: "y", SolutionSummary: "z"}, nil
	}
	env.ingest(t, "g1", "mf", 6_000, "f")

	// the whole span set is rejected: no cases, no structuring calls
	assert.Zero(t, structured)
	assert.Empty(t, env.groupCases(t, "g1"))

	after, err := env.messages.GetBuffer(ctx, "g1")
	require.NoError(t, err)
	assert.Contains(t, after, before[:len(before)-1])
}

func TestReplayedBufferUpdateAppendsOnce(t *testing.T) {
	env := newExtractorEnv(t)
	ctx := context.Background()

	env.ingest(t, "g1", "m1", 1_000, "printer is jammed")

	// a recovered lease delivers the same job a second time
	require.NoError(t, env.extractor.HandleBufferUpdate(ctx, models.BufferUpdatePayload{
		GroupID: "g1", MessageID: "m1",
	}))

	buf, err := env.messages.GetBuffer(ctx, "g1")
	require.NoError(t, err)
	blocks := buffer.ParseToBlocks(buf)
	require.Len(t, blocks, 1)
	assert.Equal(t, "m1", blocks[0].MessageID)
}

func TestUnsortedSpansRejectedEntirely(t *testing.T) {
	env := newExtractorEnv(t)
	ctx := context.Background()

	for i, text := range []string{"a", "b", "c", "d"} {
		env.ingest(t, "g1", "m"+text, int64((i+1)*1000), text)
	}

	structured := 0
	env.gateway.ExtractCaseSpansFn = func(_ context.Context, _ string, _ int) ([]buffer.Span, error) {
		return []buffer.Span{{Start: 2, End: 3}, {Start: 0, End: 1}}, nil
	}
	env.gateway.StructureCaseFn = func(_ context.Context, _ string) (*llm.StructuredCase, error) {
		structured++
		return &llm.StructuredCase{Keep: true, Status: "solved", ProblemTitle: "x", ProblemSummary: "y", SolutionSummary: "z"}, nil
	}
	env.ingest(t, "g1", "me", 5_000, "e")

	// out-of-order spans are never normalized into an acceptable set
	assert.Zero(t, structured)
	assert.Empty(t, env.groupCases(t, "g1"))

	buf, err := env.messages.GetBuffer(ctx, "g1")
	require.NoError(t, err)
	assert.Contains(t, buf, "msg_id=ma")
	assert.Contains(t, buf, "msg_id=me")
}

func TestParseFailureSkipsPhaseWithoutTouchingBuffer(t *testing.T) {
	env := newExtractorEnv(t)
	ctx := context.Background()

	env.gateway.ExtractCaseSpansFn = func(_ context.Context, _ string, _ int) ([]buffer.Span, error) {
		return nil, &llm.ParseError{Call: "extract_spans", Raw: "not json"}
	}
	env.ingest(t, "g1", "m1", 1_000, "hello")

	assert.Empty(t, env.groupCases(t, "g1"))
	buf, err := env.messages.GetBuffer(ctx, "g1")
	require.NoError(t, err)
	assert.Contains(t, buf, "msg_id=m1")
}

func TestDiscardedSpanCreatesNothing(t *testing.T) {
	env := newExtractorEnv(t)

	env.gateway.ExtractCaseSpansFn = func(_ context.Context, _ string, _ int) ([]buffer.Span, error) {
		return []buffer.Span{{Start: 0, End: 0}}, nil
	}
	// the structurer decides the span is chatter
	env.gateway.StructureCaseFn = func(_ context.Context, _ string) (*llm.StructuredCase, error) {
		return &llm.StructuredCase{Keep: false}, nil
	}
	env.ingest(t, "g1", "m1", 1_000, "lol")

	assert.Empty(t, env.groupCases(t, "g1"))
}

func TestResolvedCaseMergesIntoSolvedPeer(t *testing.T) {
	env := newExtractorEnv(t)
	ctx := context.Background()

	// seed a solved case and an open near-duplicate directly
	solvedVec := []float32{1, 0, 0}
	solved, err := env.cases.CreateCase(ctx, "g1", models.CaseFields{
		ProblemTitle:    "Wifi drops in meeting room",
		ProblemSummary:  "AP loses clients in room 4",
		SolutionSummary: "Replace the AP",
	}, "solved", solvedVec, nil)
	require.NoError(t, err)

	openVec := []float32{0.99, 0.14, 0}
	open, err := env.cases.CreateCase(ctx, "g1", models.CaseFields{
		ProblemTitle:   "Room 4 wifi unstable",
		ProblemSummary: "Clients drop in room 4",
	}, "open", openVec, []models.EvidenceRef{{MessageID: "m0", TS: 500}})
	require.NoError(t, err)

	env.gateway.CheckResolvedFn = func(_ context.Context, title, _, _ string) (*llm.ResolutionResult, error) {
		if title == "Room 4 wifi unstable" {
			return &llm.ResolutionResult{Resolved: true, SolutionSummary: "Replace the AP in room 4"}, nil
		}
		return &llm.ResolutionResult{}, nil
	}
	env.ingest(t, "g1", "m1", 1_000, "replaced the AP, all good now")

	// the open case merged into its solved peer and was archived
	archived, err := env.cases.GetCase(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, supportcase.StatusArchived, archived.Status)

	target, err := env.cases.GetCase(ctx, solved.ID)
	require.NoError(t, err)
	assert.Equal(t, supportcase.StatusSolved, target.Status)

	evidence, err := env.cases.Evidence(ctx, solved.ID)
	require.NoError(t, err)
	require.Len(t, evidence, 1)
	assert.Equal(t, "m0", evidence[0].MessageID)
}

func TestIndexDocumentRendering(t *testing.T) {
	doc := IndexDocument(&ent.SupportCase{
		ProblemTitle:    "X-500 duplex jam",
		ProblemSummary:  "Printer jams on duplex",
		SolutionSummary: "Update firmware",
		Tags:            []string{"printer", "hardware"},
	})
	assert.Equal(t, "[SOLVED] X-500 duplex jam\nProblem: Printer jams on duplex\nSolution: Update firmware\ntags: printer, hardware", doc)
}
