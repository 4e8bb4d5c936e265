package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/casemine/casemine/ent/job"
	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/llm"
	"github.com/casemine/casemine/pkg/llm/llmtest"
	"github.com/casemine/casemine/pkg/models"
	"github.com/casemine/casemine/pkg/services"
	testdb "github.com/casemine/casemine/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ingestorEnv struct {
	ingestor *Ingestor
	messages *services.MessageService
	jobs     *services.JobService
	gateway  *llmtest.Gateway
	cfg      *config.Config
}

func newIngestorEnv(t *testing.T) *ingestorEnv {
	t.Helper()
	client := testdb.NewTestClient(t)

	gw := &llmtest.Gateway{}
	cfg := &config.Config{
		Pipeline: config.DefaultPipelineConfig(),
		Queue:    config.DefaultQueueConfig(),
		Images:   config.DefaultImageConfig(),
	}
	cfg.Images.RootDir = t.TempDir()

	messages := services.NewMessageService(client.Client)
	jobs := services.NewJobService(client.Client, cfg.Queue.MaxAttempts)

	return &ingestorEnv{
		ingestor: NewIngestor(messages, jobs, gw, cfg),
		messages: messages,
		jobs:     jobs,
		gateway:  gw,
		cfg:      cfg,
	}
}

func inbound(msgID, text string) models.InboundMessage {
	return models.InboundMessage{
		GroupID:   "g1",
		MessageID: msgID,
		TS:        1000,
		Sender:    "sender1",
		Text:      text,
	}
}

func (e *ingestorEnv) jobTypes(t *testing.T) []job.Type {
	t.Helper()
	var types []job.Type
	for {
		j, err := e.jobs.Lease(context.Background(), "w1", 0)
		if errors.Is(err, services.ErrNoJobsAvailable) {
			return types
		}
		require.NoError(t, err)
		types = append(types, j.Type)
	}
}

func TestIngestEnqueuesBothJobs(t *testing.T) {
	env := newIngestorEnv(t)

	require.NoError(t, env.ingestor.Ingest(context.Background(), inbound("m1", "printer is jammed")))

	types := env.jobTypes(t)
	assert.ElementsMatch(t, []job.Type{job.TypeBufferUpdate, job.TypeMaybeRespond}, types)
}

func TestIngestIsIdempotentPerMessage(t *testing.T) {
	env := newIngestorEnv(t)
	ctx := context.Background()

	m := inbound("m1", "printer is jammed")
	require.NoError(t, env.ingestor.Ingest(ctx, m))
	require.NoError(t, env.ingestor.Ingest(ctx, m))

	// the duplicate enqueues nothing
	assert.Len(t, env.jobTypes(t), 2)
}

func TestBotMessagesSkipResponseJob(t *testing.T) {
	env := newIngestorEnv(t)
	env.cfg.Pipeline.BotSenderHash = "bot-hash"

	m := inbound("m1", "here is your answer")
	m.Sender = "bot-hash"
	require.NoError(t, env.ingestor.Ingest(context.Background(), m))

	types := env.jobTypes(t)
	assert.Equal(t, []job.Type{job.TypeBufferUpdate}, types)
}

func TestHighWatermarkDefersResponseJob(t *testing.T) {
	env := newIngestorEnv(t)
	env.cfg.Queue.HighWatermark = 1

	ctx := context.Background()
	require.NoError(t, env.ingestor.Ingest(ctx, inbound("m1", "first question")))
	// queue depth is now >= 1, so m2 gets no response job
	require.NoError(t, env.ingestor.Ingest(ctx, inbound("m2", "second question")))

	respond := 0
	for _, typ := range env.jobTypes(t) {
		if typ == job.TypeMaybeRespond {
			respond++
		}
	}
	assert.Equal(t, 1, respond)
}

func TestImageOCRAppendsFacts(t *testing.T) {
	env := newIngestorEnv(t)
	ctx := context.Background()

	path := filepath.Join(env.cfg.Images.RootDir, "error.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o644))
	env.gateway.ImageToTextFn = func(_ context.Context, img llm.ImageInput, _ string) (*llm.ImageFacts, error) {
		assert.Equal(t, "image/png", img.MIME)
		return &llm.ImageFacts{Observations: []string{"error E502 on panel"}}, nil
	}

	m := inbound("m1", "got this on the screen")
	m.ImagePaths = []string{"error.png"}
	require.NoError(t, env.ingestor.Ingest(ctx, m))

	stored, err := env.messages.GetMessage(ctx, "g1", "m1")
	require.NoError(t, err)
	assert.Contains(t, stored.ContentText, "got this on the screen")
	assert.Contains(t, stored.ContentText, "[image]")
	assert.Contains(t, stored.ContentText, "error E502 on panel")
}

func TestImageOCRFailureDegradesToFilename(t *testing.T) {
	env := newIngestorEnv(t)
	ctx := context.Background()

	// missing file: Stat fails before the gateway is even called
	m := inbound("m1", "screenshot attached")
	m.ImagePaths = []string{"missing.jpg"}
	require.NoError(t, env.ingestor.Ingest(ctx, m))

	stored, err := env.messages.GetMessage(ctx, "g1", "m1")
	require.NoError(t, err)
	assert.Contains(t, stored.ContentText, "[image: missing.jpg]")
}

func TestOversizedImageDegradesToFilename(t *testing.T) {
	env := newIngestorEnv(t)
	env.cfg.Images.MaxImageBytes = 4
	ctx := context.Background()

	path := filepath.Join(env.cfg.Images.RootDir, "huge.png")
	require.NoError(t, os.WriteFile(path, []byte("way too many bytes"), 0o644))
	env.gateway.ImageToTextFn = func(context.Context, llm.ImageInput, string) (*llm.ImageFacts, error) {
		t.Fatal("oversized image must not reach the gateway")
		return nil, nil
	}

	m := inbound("m1", "see attached")
	m.ImagePaths = []string{"huge.png"}
	require.NoError(t, env.ingestor.Ingest(ctx, m))

	stored, err := env.messages.GetMessage(ctx, "g1", "m1")
	require.NoError(t, err)
	assert.Contains(t, stored.ContentText, "[image: huge.png]")
}
