// Package extract implements the case-extraction state machine that runs
// inside BUFFER_UPDATE jobs: append and trim the group buffer, mine new
// case spans, resolve open cases dynamically, deduplicate by embedding
// similarity, and promote solved cases to the vector index.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/casemine/casemine/ent"
	"github.com/casemine/casemine/ent/supportcase"
	"github.com/casemine/casemine/pkg/buffer"
	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/database"
	"github.com/casemine/casemine/pkg/index"
	"github.com/casemine/casemine/pkg/llm"
	"github.com/casemine/casemine/pkg/models"
	"github.com/casemine/casemine/pkg/services"
)

// Extractor mutates cases and the group buffer. All work for one group
// runs under the group's advisory lock.
type Extractor struct {
	messages *services.MessageService
	cases    *services.CaseService
	gateway  llm.Gateway
	embedder llm.Embedder
	idx      *index.Provider
	locker   *database.GroupLocker
	cfg      *config.Config
	logger   *slog.Logger
}

// NewExtractor creates a new Extractor.
func NewExtractor(messages *services.MessageService, cases *services.CaseService, gateway llm.Gateway, embedder llm.Embedder, idx *index.Provider, locker *database.GroupLocker, cfg *config.Config) *Extractor {
	if messages == nil || cases == nil || gateway == nil || embedder == nil || idx == nil || locker == nil || cfg == nil {
		panic("NewExtractor: all dependencies must be non-nil")
	}
	return &Extractor{
		messages: messages,
		cases:    cases,
		gateway:  gateway,
		embedder: embedder,
		idx:      idx,
		locker:   locker,
		cfg:      cfg,
		logger:   slog.Default().With("component", "extractor"),
	}
}

// HandleBufferUpdate is the BUFFER_UPDATE job body. Transient failures
// are returned for the queue to retry; LLM parse failures and span
// violations degrade to "do nothing" so the buffer is never corrupted.
func (e *Extractor) HandleBufferUpdate(ctx context.Context, payload models.BufferUpdatePayload) error {
	lock, err := e.locker.Acquire(ctx, payload.GroupID)
	if err != nil {
		return fmt.Errorf("acquire group lock: %w", err)
	}
	defer func() { _ = lock.Release(context.WithoutCancel(ctx)) }()

	msg, err := e.messages.GetMessage(ctx, payload.GroupID, payload.MessageID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			// wiped or never ingested; nothing to do
			e.logger.Warn("Buffer update for unknown message",
				"group_id", payload.GroupID, "message_id", payload.MessageID)
			return nil
		}
		return err
	}

	bufText, err := e.appendToBuffer(ctx, msg)
	if err != nil {
		return err
	}

	blocks := buffer.ParseToBlocks(bufText)
	if len(blocks) == 0 {
		return nil
	}

	accepted, err := e.extractNewCases(ctx, payload.GroupID, blocks)
	if err != nil {
		return err
	}

	if err := e.resolveOpenCases(ctx, payload.GroupID, bufText); err != nil {
		return err
	}

	if len(accepted) == 0 {
		return nil
	}
	newText, err := buffer.RemoveSpans(blocks, accepted)
	if err != nil {
		// accepted spans were validated at extraction time
		return fmt.Errorf("remove accepted spans: %w", err)
	}
	return e.messages.SetBuffer(ctx, payload.GroupID, newText)
}

// appendToBuffer formats the message block, appends, trims by age then
// count, and persists the result.
func (e *Extractor) appendToBuffer(ctx context.Context, msg *ent.RawMessage) (string, error) {
	reactions, err := e.messages.CountPositiveReactions(ctx, msg.GroupID, msg.Ts)
	if err != nil {
		return "", err
	}

	bufText, err := e.messages.GetBuffer(ctx, msg.GroupID)
	if err != nil {
		return "", err
	}

	// A recovered lease replays the job; the message is already in the
	// buffer and must not be appended twice.
	for _, b := range buffer.ParseToBlocks(bufText) {
		if b.MessageID == msg.MessageID {
			e.logger.Debug("Message already buffered, skipping append",
				"group_id", msg.GroupID, "message_id", msg.MessageID)
			return bufText, nil
		}
	}

	block := buffer.Message{
		SenderHash: msg.SenderHash,
		FromBot:    msg.FromBot,
		TS:         msg.Ts,
		MessageID:  msg.MessageID,
		Reactions:  reactions,
		Content:    msg.ContentText,
	}
	if msg.ReplyToID != nil {
		block.ReplyToID = *msg.ReplyToID
	}

	maxAge := time.Duration(e.cfg.Pipeline.BufferMaxAgeHours) * time.Hour
	bufText = buffer.Append(bufText, block, maxAge, e.cfg.Pipeline.BufferMaxMessages, time.Now())
	if err := e.messages.SetBuffer(ctx, msg.GroupID, bufText); err != nil {
		return "", err
	}
	return bufText, nil
}

// extractNewCases is Phase 1: mine case spans from the numbered buffer.
// Returns the spans accepted for removal (solved and indexed cases only).
func (e *Extractor) extractNewCases(ctx context.Context, groupID string, blocks []buffer.Block) ([]buffer.Span, error) {
	numbered := buffer.FormatNumbered(blocks)
	if numbered == "" {
		return nil, nil
	}

	spans, err := e.gateway.ExtractCaseSpans(ctx, numbered, len(blocks))
	if err != nil {
		if errors.Is(err, llm.ErrParse) {
			e.logger.Warn("Span extraction unparseable, skipping phase 1", "group_id", groupID)
			return nil, nil
		}
		return nil, err
	}
	if err := buffer.ValidateSpans(spans, len(blocks)); err != nil {
		e.logger.Warn("Rejecting span set", "group_id", groupID, "error", err)
		return nil, nil
	}

	var accepted []buffer.Span
	for _, span := range spans {
		c, err := e.processSpan(ctx, groupID, blocks, span)
		if err != nil {
			return nil, err
		}
		if c == nil {
			continue
		}
		if c.Status == supportcase.StatusSolved && c.SolutionSummary != "" {
			e.promoteToIndex(ctx, c)
			accepted = append(accepted, span)
		}
	}
	return accepted, nil
}

// processSpan structures one span into a case, deduplicating against
// existing cases. Returns nil when the span is discarded.
func (e *Extractor) processSpan(ctx context.Context, groupID string, blocks []buffer.Block, span buffer.Span) (*ent.SupportCase, error) {
	caseText := buffer.ComposeSpanText(blocks, span)

	sc, err := e.gateway.StructureCase(ctx, caseText)
	if err != nil {
		if errors.Is(err, llm.ErrParse) {
			e.logger.Warn("Case structuring unparseable, skipping span",
				"group_id", groupID, "span", span)
			return nil, nil
		}
		return nil, err
	}
	if !sc.Keep {
		return nil, nil
	}

	dedup, err := e.embedder.Embed(ctx, DedupText(sc.ProblemTitle, sc.ProblemSummary))
	if err != nil {
		return nil, fmt.Errorf("dedup embedding: %w", err)
	}

	evidence := spanEvidence(blocks, span)
	fields := models.CaseFields{
		ProblemTitle:    sc.ProblemTitle,
		ProblemSummary:  sc.ProblemSummary,
		SolutionSummary: sc.SolutionSummary,
		Tags:            sc.Tags,
	}

	hit, err := e.cases.FindSimilarCase(ctx, groupID, dedup, e.cfg.Pipeline.DedupThreshold, "")
	if err != nil {
		return nil, err
	}
	if hit != nil {
		merged, err := e.cases.MergeCase(ctx, hit.ID, fields, evidence)
		if err != nil {
			return nil, err
		}
		return merged, nil
	}
	return e.cases.CreateCase(ctx, groupID, fields, sc.Status, dedup, evidence)
}

// resolveOpenCases is Phase 2: check every open case of the group against
// the current buffer. A resolved case either merges into a solved peer or
// is promoted and indexed.
func (e *Extractor) resolveOpenCases(ctx context.Context, groupID, bufText string) error {
	open, err := e.cases.OpenCases(ctx, groupID)
	if err != nil {
		return err
	}

	for _, c := range open {
		res, err := e.gateway.CheckResolved(ctx, c.ProblemTitle, c.ProblemSummary, bufText)
		if err != nil {
			if errors.Is(err, llm.ErrParse) {
				e.logger.Warn("Resolution check unparseable, skipping case", "case_id", c.ID)
				continue
			}
			return err
		}
		if !res.Resolved || res.SolutionSummary == "" {
			continue
		}

		dedup := c.DedupEmbedding
		if len(dedup) == 0 {
			if dedup, err = e.embedder.Embed(ctx, DedupText(c.ProblemTitle, c.ProblemSummary)); err != nil {
				return fmt.Errorf("dedup embedding: %w", err)
			}
		}

		peer, err := e.cases.FindSimilarCase(ctx, groupID, dedup, e.cfg.Pipeline.DedupThreshold, c.ID)
		if err != nil {
			return err
		}
		if peer != nil && peer.Status == supportcase.StatusSolved {
			evidence, err := e.evidenceRefs(ctx, c.ID)
			if err != nil {
				return err
			}
			fields := models.CaseFields{SolutionSummary: res.SolutionSummary}
			if _, err := e.cases.MergeCase(ctx, peer.ID, fields, evidence); err != nil {
				return err
			}
			if err := e.cases.ArchiveCase(ctx, c.ID); err != nil {
				return err
			}
			continue
		}

		promoted, err := e.cases.PromoteSolved(ctx, c.ID, res.SolutionSummary)
		if err != nil {
			return err
		}
		e.promoteToIndex(ctx, promoted)
	}
	return nil
}

// promoteToIndex upserts a solved case into the vector index and marks
// the row. Index failures are logged only; the reconciler re-upserts any
// in_index row missing from the index on its next tick.
func (e *Extractor) promoteToIndex(ctx context.Context, c *ent.SupportCase) {
	doc := IndexDocument(c)
	vec, err := e.embedder.Embed(ctx, doc)
	if err != nil {
		e.logger.Error("Failed to embed case document", "case_id", c.ID, "error", err)
	} else if err := e.idx.Upsert(ctx, index.Entry{
		CaseID:   c.ID,
		GroupID:  c.GroupID,
		Title:    c.ProblemTitle,
		Solution: c.SolutionSummary,
		Vector:   vec,
	}); err != nil {
		e.logger.Error("Failed to upsert case into index", "case_id", c.ID, "error", err)
	}

	if err := e.cases.MarkInIndex(ctx, c.ID); err != nil {
		e.logger.Error("Failed to mark case in_index", "case_id", c.ID, "error", err)
	}
}

// DedupText is the canonical input of the dedup embedding.
func DedupText(title, problem string) string {
	return title + "\n" + problem
}

// IndexDocument renders the text embedded for retrieval.
func IndexDocument(c *ent.SupportCase) string {
	var sb strings.Builder
	sb.WriteString("[SOLVED] " + c.ProblemTitle + "\n")
	sb.WriteString("Problem: " + c.ProblemSummary + "\n")
	sb.WriteString("Solution: " + c.SolutionSummary)
	if len(c.Tags) > 0 {
		sb.WriteString("\ntags: " + strings.Join(c.Tags, ", "))
	}
	return sb.String()
}

func spanEvidence(blocks []buffer.Block, span buffer.Span) []models.EvidenceRef {
	refs := buffer.SpanEvidence(blocks, span)
	out := make([]models.EvidenceRef, len(refs))
	for i, r := range refs {
		out[i] = models.EvidenceRef{MessageID: r.MessageID, TS: r.TS}
	}
	return out
}

func (e *Extractor) evidenceRefs(ctx context.Context, caseID string) ([]models.EvidenceRef, error) {
	rows, err := e.cases.Evidence(ctx, caseID)
	if err != nil {
		return nil, err
	}
	out := make([]models.EvidenceRef, len(rows))
	for i, r := range rows {
		out[i] = models.EvidenceRef{MessageID: r.MessageID, TS: r.MessageTs}
	}
	return out, nil
}
