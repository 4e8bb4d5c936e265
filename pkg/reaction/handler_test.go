package reaction

import (
	"context"
	"testing"

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

type handlerEnv struct {
	handler  *Handler
	messages *services.MessageService
	cases    *services.CaseService
	idx      *index.Provider
}

func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()
	client := testdb.NewTestClient(t)

	idx, err := index.NewProvider(&config.IndexConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	cfg := &config.Config{
		Pipeline: config.DefaultPipelineConfig(),
		Queue:    config.DefaultQueueConfig(),
		Images:   config.DefaultImageConfig(),
	}
	messages := services.NewMessageService(client.Client)
	cases := services.NewCaseService(client.Client)

	return &handlerEnv{
		handler:  NewHandler(messages, cases, &llmtest.Embedder{}, idx, cfg),
		messages: messages,
		cases:    cases,
		idx:      idx,
	}
}

func reactionAdd(groupID string, ts int64, emoji string) models.InboundReaction {
	return models.InboundReaction{
		GroupID:      groupID,
		TargetTS:     ts,
		TargetAuthor: "author1",
		Sender:       "sender1",
		Emoji:        emoji,
	}
}

func TestPositiveReactionSolvesCase(t *testing.T) {
	env := newHandlerEnv(t)
	ctx := context.Background()

	c, err := env.cases.CreateCase(ctx, "g1", models.CaseFields{
		ProblemTitle:    "X-500 duplex jam",
		ProblemSummary:  "Printer jams on duplex",
		SolutionSummary: "Update firmware",
	}, "open", []float32{1, 0, 0}, []models.EvidenceRef{{MessageID: "m1", TS: 1000}})
	require.NoError(t, err)

	require.NoError(t, env.handler.HandleReaction(ctx, reactionAdd("g1", 1000, "\U0001F44D")))

	got, err := env.cases.GetCase(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, supportcase.StatusSolved, got.Status)
	require.NotNil(t, got.ClosedEmoji)
	assert.Equal(t, "\U0001F44D", *got.ClosedEmoji)
	assert.True(t, got.InIndex)
	assert.True(t, env.idx.Has(c.ID))
}

func TestConfirmedCaseWithoutSolutionStaysOutOfIndex(t *testing.T) {
	env := newHandlerEnv(t)
	ctx := context.Background()

	c, err := env.cases.CreateCase(ctx, "g1", models.CaseFields{
		ProblemTitle:   "VPN drops hourly",
		ProblemSummary: "VPN disconnects",
	}, "open", []float32{1, 0, 0}, []models.EvidenceRef{{MessageID: "m1", TS: 1000}})
	require.NoError(t, err)

	require.NoError(t, env.handler.HandleReaction(ctx, reactionAdd("g1", 1000, "❤️")))

	got, err := env.cases.GetCase(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, supportcase.StatusSolved, got.Status)
	assert.Empty(t, got.SolutionSummary)
	assert.False(t, got.InIndex)
	assert.False(t, env.idx.Has(c.ID))
}

func TestNonPositiveEmojiConfirmsNothing(t *testing.T) {
	env := newHandlerEnv(t)
	ctx := context.Background()

	c, err := env.cases.CreateCase(ctx, "g1", models.CaseFields{
		ProblemTitle:   "t",
		ProblemSummary: "p",
	}, "open", nil, []models.EvidenceRef{{MessageID: "m1", TS: 1000}})
	require.NoError(t, err)

	require.NoError(t, env.handler.HandleReaction(ctx, reactionAdd("g1", 1000, "\U0001F914")))

	got, err := env.cases.GetCase(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, supportcase.StatusOpen, got.Status)
}

func TestReactionOnUnrelatedMessageIsStoredOnly(t *testing.T) {
	env := newHandlerEnv(t)
	ctx := context.Background()

	require.NoError(t, env.handler.HandleReaction(ctx, reactionAdd("g1", 9999, "\U0001F44D")))

	count, err := env.messages.CountPositiveReactions(ctx, "g1", 9999)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRemoveDoesNotUnsolve(t *testing.T) {
	env := newHandlerEnv(t)
	ctx := context.Background()

	c, err := env.cases.CreateCase(ctx, "g1", models.CaseFields{
		ProblemTitle:    "t",
		ProblemSummary:  "p",
		SolutionSummary: "s",
	}, "open", nil, []models.EvidenceRef{{MessageID: "m1", TS: 1000}})
	require.NoError(t, err)

	add := reactionAdd("g1", 1000, "\U0001F44D")
	require.NoError(t, env.handler.HandleReaction(ctx, add))

	remove := add
	remove.IsRemove = true
	require.NoError(t, env.handler.HandleReaction(ctx, remove))

	got, err := env.cases.GetCase(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, supportcase.StatusSolved, got.Status)

	count, err := env.messages.CountPositiveReactions(ctx, "g1", 1000)
	require.NoError(t, err)
	assert.Zero(t, count)
}
