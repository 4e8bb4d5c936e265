// Package reaction applies chat reactions: positive emojis confirm cases
// whose evidence matches the reacted message.
package reaction

import (
	"context"
	"log/slog"

	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/extract"
	"github.com/casemine/casemine/pkg/index"
	"github.com/casemine/casemine/pkg/llm"
	"github.com/casemine/casemine/pkg/models"
	"github.com/casemine/casemine/pkg/services"
)

// Handler processes inbound reaction events.
type Handler struct {
	messages *services.MessageService
	cases    *services.CaseService
	embedder llm.Embedder
	idx      *index.Provider
	cfg      *config.Config
	logger   *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(messages *services.MessageService, cases *services.CaseService, embedder llm.Embedder, idx *index.Provider, cfg *config.Config) *Handler {
	if messages == nil || cases == nil || embedder == nil || idx == nil || cfg == nil {
		panic("NewHandler: all dependencies must be non-nil")
	}
	return &Handler{
		messages: messages,
		cases:    cases,
		embedder: embedder,
		idx:      idx,
		cfg:      cfg,
		logger:   slog.Default().With("component", "reaction"),
	}
}

// HandleReaction applies one reaction event. Removals delete the exact
// reaction tuple and nothing else: a reaction is not the sole source of
// truth, so cases are never un-solved.
func (h *Handler) HandleReaction(ctx context.Context, r models.InboundReaction) error {
	if r.IsRemove {
		return h.messages.RemoveReaction(ctx, r)
	}

	positive := h.cfg.IsPositiveEmoji(r.Emoji)
	if err := h.messages.UpsertReaction(ctx, r, positive); err != nil {
		return err
	}
	if !positive {
		return nil
	}

	confirmed, err := h.cases.ConfirmCasesByEvidenceTS(ctx, r.GroupID, r.TargetTS, r.Emoji)
	if err != nil {
		return err
	}
	for _, c := range confirmed {
		// confirmed cases without a derived solution stay out of the
		// index until a later resolution pass fills one in
		if c.SolutionSummary == "" {
			continue
		}
		vec, err := h.embedder.Embed(ctx, extract.IndexDocument(c))
		if err != nil {
			h.logger.Error("Failed to embed confirmed case", "case_id", c.ID, "error", err)
			continue
		}
		if err := h.idx.Upsert(ctx, index.Entry{
			CaseID:   c.ID,
			GroupID:  c.GroupID,
			Title:    c.ProblemTitle,
			Solution: c.SolutionSummary,
			Vector:   vec,
		}); err != nil {
			h.logger.Error("Failed to upsert confirmed case", "case_id", c.ID, "error", err)
			continue
		}
		if err := h.cases.MarkInIndex(ctx, c.ID); err != nil {
			h.logger.Error("Failed to mark case in_index", "case_id", c.ID, "error", err)
		}
	}
	return nil
}
