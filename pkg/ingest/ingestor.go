// Package ingest accepts inbound chat messages: OCRs image attachments,
// persists the raw message idempotently, and enqueues the pipeline jobs.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/casemine/casemine/ent/job"
	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/llm"
	"github.com/casemine/casemine/pkg/models"
	"github.com/casemine/casemine/pkg/services"
)

// Ingestor turns transport messages into stored rows plus queue work.
type Ingestor struct {
	messages *services.MessageService
	jobs     *services.JobService
	gateway  llm.Gateway
	cfg      *config.Config
	logger   *slog.Logger
}

// NewIngestor creates a new Ingestor.
func NewIngestor(messages *services.MessageService, jobs *services.JobService, gateway llm.Gateway, cfg *config.Config) *Ingestor {
	if messages == nil || jobs == nil || gateway == nil || cfg == nil {
		panic("NewIngestor: all dependencies must be non-nil")
	}
	return &Ingestor{
		messages: messages,
		jobs:     jobs,
		gateway:  gateway,
		cfg:      cfg,
		logger:   slog.Default().With("component", "ingestor"),
	}
}

// Ingest processes one inbound message:
//  1. OCR attached images (bounded; failures degrade to a filename marker)
//  2. persist the raw message, idempotently
//  3. enqueue BUFFER_UPDATE and MAYBE_RESPOND
//
// A store failure is returned so the transport keeps the message in its
// backlog; LLM failures on images are never fatal.
func (i *Ingestor) Ingest(ctx context.Context, m models.InboundMessage) error {
	m.Text += i.describeImages(ctx, m)

	fromBot := m.Sender == i.cfg.Pipeline.BotSenderHash
	inserted, err := i.messages.InsertRawMessage(ctx, m, fromBot)
	if err != nil {
		return fmt.Errorf("persist message: %w", err)
	}
	if !inserted {
		// already ingested; the jobs for it were enqueued back then
		i.logger.Debug("Duplicate message ignored", "group_id", m.GroupID, "message_id", m.MessageID)
		return nil
	}

	payload := models.BufferUpdatePayload{GroupID: m.GroupID, MessageID: m.MessageID}
	if _, err := i.jobs.Enqueue(ctx, job.TypeBufferUpdate, m.GroupID, payload); err != nil {
		return fmt.Errorf("enqueue buffer update: %w", err)
	}

	// Backpressure: buffer updates are mandatory, answering is best-effort.
	// The bot's own messages never deserve an answer either.
	if fromBot {
		return nil
	}
	depth, err := i.jobs.PendingCount(ctx)
	if err != nil {
		i.logger.Warn("Failed to read queue depth", "error", err)
	} else if depth >= i.cfg.Queue.HighWatermark {
		i.logger.Warn("Queue above high watermark, deferring response job",
			"depth", depth, "group_id", m.GroupID)
		return nil
	}
	respond := models.MaybeRespondPayload{GroupID: m.GroupID, MessageID: m.MessageID}
	if _, err := i.jobs.Enqueue(ctx, job.TypeMaybeRespond, m.GroupID, respond); err != nil {
		return fmt.Errorf("enqueue response job: %w", err)
	}
	return nil
}

// describeImages OCRs up to MaxImagesPerMessage attachments and renders
// the markers appended to the message text.
func (i *Ingestor) describeImages(ctx context.Context, m models.InboundMessage) string {
	if len(m.ImagePaths) == 0 {
		return ""
	}

	var sb strings.Builder
	limit := i.cfg.Images.MaxImagesPerMessage
	for n, rel := range m.ImagePaths {
		if n >= limit {
			break
		}
		facts, err := i.imageToFacts(ctx, rel, m.Text)
		if err != nil {
			i.logger.Warn("Image OCR failed, recording filename only",
				"group_id", m.GroupID, "message_id", m.MessageID, "image", rel, "error", err)
			sb.WriteString("\n\n[image: " + filepath.Base(rel) + "]")
			continue
		}
		encoded, err := json.Marshal(facts)
		if err != nil {
			sb.WriteString("\n\n[image: " + filepath.Base(rel) + "]")
			continue
		}
		sb.WriteString("\n\n[image]\n")
		sb.Write(encoded)
	}
	return sb.String()
}

func (i *Ingestor) imageToFacts(ctx context.Context, rel, contextText string) (*llm.ImageFacts, error) {
	path := filepath.Join(i.cfg.Images.RootDir, filepath.Clean(rel))
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > int64(i.cfg.Images.MaxImageBytes) {
		return nil, errors.New("image exceeds size cap")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return i.gateway.ImageToText(ctx, llm.ImageInput{Data: data, MIME: mimeFor(rel)}, contextText)
}

func mimeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
