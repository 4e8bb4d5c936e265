// Package history implements the history-bootstrap flow: the HISTORY_LINK
// job that kicks off a collaborator session, the QR relay to the admin's
// DM, and the token-gated bulk import of mined case blocks.
package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/casemine/casemine/ent/supportcase"
	"github.com/casemine/casemine/pkg/buffer"
	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/extract"
	"github.com/casemine/casemine/pkg/index"
	"github.com/casemine/casemine/pkg/llm"
	"github.com/casemine/casemine/pkg/models"
	"github.com/casemine/casemine/pkg/services"
	"github.com/casemine/casemine/pkg/transport"
)

// Importer owns the bootstrap lifecycle for one admin+group pair.
type Importer struct {
	admins   *services.AdminService
	cases    *services.CaseService
	gateway  llm.Gateway
	embedder llm.Embedder
	idx      *index.Provider
	sender   transport.Transport
	cfg      *config.Config
	http     *http.Client
	logger   *slog.Logger
}

// NewImporter creates a new Importer.
func NewImporter(admins *services.AdminService, cases *services.CaseService, gateway llm.Gateway, embedder llm.Embedder, idx *index.Provider, sender transport.Transport, cfg *config.Config) *Importer {
	if admins == nil || cases == nil || gateway == nil || embedder == nil || idx == nil || sender == nil || cfg == nil {
		panic("NewImporter: all dependencies must be non-nil")
	}
	return &Importer{
		admins:   admins,
		cases:    cases,
		gateway:  gateway,
		embedder: embedder,
		idx:      idx,
		sender:   sender,
		cfg:      cfg,
		http:     &http.Client{Timeout: cfg.History.Timeout},
		logger:   slog.Default().With("component", "history"),
	}
}

// HandleHistoryLink is the HISTORY_LINK job body: it asks the collaborator
// to start a login session for the group. A token that is already
// consumed, expired, or superseded makes the job a benign no-op.
func (i *Importer) HandleHistoryLink(ctx context.Context, payload models.HistoryLinkPayload) error {
	if _, err := i.admins.PeekToken(ctx, payload.Token); err != nil {
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrTokenUnusable) {
			i.logger.Info("History link token no longer usable, skipping",
				"admin_id", payload.AdminID, "group_id", payload.GroupID)
			return nil
		}
		return err
	}

	if i.cfg.History.CollaboratorURL == "" {
		// pull mode: the collaborator fetches tokens through the API
		return nil
	}

	body, err := json.Marshal(map[string]string{
		"token":    payload.Token,
		"group_id": payload.GroupID,
	})
	if err != nil {
		return err
	}
	url := strings.TrimRight(i.cfg.History.CollaboratorURL, "/") + "/sessions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.http.Do(req)
	if err != nil {
		return fmt.Errorf("collaborator session start: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("collaborator session start: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// RelayQR forwards the collaborator's login QR to the admin's DM. The
// token must still be usable but is not consumed: consumption happens on
// the case import.
func (i *Importer) RelayQR(ctx context.Context, token string, qrPNG []byte) error {
	tok, err := i.admins.PeekToken(ctx, token)
	if err != nil {
		return err
	}

	text := "Scan this QR code with the history account to link the group."
	sent, err := i.sender.SendDirectText(ctx, tok.AdminID, text, qrPNG)
	if err != nil {
		return err
	}
	if !sent {
		return services.ErrNotFound
	}
	return nil
}

// ImportCases consumes the token and imports the collaborator's mined
// case blocks: evidence from msg_id= headers, LLM structuring, dedup
// merge, reaction-emoji confirmation, index upsert for solved cases.
// Linking the admin to the group happens here — a consumed token is what
// "successful bootstrap" means.
func (i *Importer) ImportCases(ctx context.Context, req models.HistoryCasesRequest) (*models.HistoryCasesResponse, error) {
	tok, err := i.admins.ConsumeToken(ctx, req.Token)
	if err != nil {
		return nil, err
	}
	if err := i.admins.CreateLink(ctx, tok.AdminID, tok.GroupID); err != nil {
		return nil, err
	}

	res := &models.HistoryCasesResponse{}
	for _, entry := range req.Cases {
		outcome, err := i.importBlock(ctx, tok.GroupID, entry)
		if err != nil {
			return nil, err
		}
		switch outcome {
		case outcomeImported:
			res.Imported++
		case outcomeMerged:
			res.Merged++
		default:
			res.Skipped++
		}
	}
	i.logger.Info("History import finished", "group_id", tok.GroupID,
		"imported", res.Imported, "merged", res.Merged, "skipped", res.Skipped)
	return res, nil
}

type importOutcome int

const (
	outcomeSkipped importOutcome = iota
	outcomeImported
	outcomeMerged
)

func (i *Importer) importBlock(ctx context.Context, groupID string, entry models.HistoryCaseBlock) (importOutcome, error) {
	blocks := buffer.ParseToBlocks(entry.CaseBlock)
	if len(blocks) == 0 {
		return outcomeSkipped, nil
	}
	evidence := make([]models.EvidenceRef, 0, len(blocks))
	for _, b := range blocks {
		if b.FromBot {
			continue
		}
		evidence = append(evidence, models.EvidenceRef{MessageID: b.MessageID, TS: b.TS})
	}

	sc, err := i.gateway.StructureCase(ctx, entry.CaseBlock)
	if err != nil {
		if errors.Is(err, llm.ErrParse) {
			i.logger.Warn("History block unparseable, skipping", "group_id", groupID)
			return outcomeSkipped, nil
		}
		return outcomeSkipped, err
	}
	if !sc.Keep {
		return outcomeSkipped, nil
	}

	dedup, err := i.embedder.Embed(ctx, extract.DedupText(sc.ProblemTitle, sc.ProblemSummary))
	if err != nil {
		return outcomeSkipped, fmt.Errorf("dedup embedding: %w", err)
	}

	fields := models.CaseFields{
		ProblemTitle:    sc.ProblemTitle,
		ProblemSummary:  sc.ProblemSummary,
		SolutionSummary: sc.SolutionSummary,
		Tags:            sc.Tags,
	}

	outcome := outcomeImported
	peer, err := i.cases.FindSimilarCase(ctx, groupID, dedup, i.cfg.Pipeline.DedupThreshold, "")
	if err != nil {
		return outcomeSkipped, err
	}

	var c = peer
	if peer != nil {
		if c, err = i.cases.MergeCase(ctx, peer.ID, fields, evidence); err != nil {
			return outcomeSkipped, err
		}
		outcome = outcomeMerged
	} else {
		if c, err = i.cases.CreateCase(ctx, groupID, fields, sc.Status, dedup, evidence); err != nil {
			return outcomeSkipped, err
		}
	}

	if entry.ReactionEmoji != "" {
		if err := i.cases.SetClosedEmoji(ctx, c.ID, entry.ReactionEmoji); err != nil {
			return outcomeSkipped, err
		}
	}

	if c.Status == supportcase.StatusSolved && c.SolutionSummary != "" {
		vec, err := i.embedder.Embed(ctx, extract.IndexDocument(c))
		if err != nil {
			i.logger.Error("Failed to embed imported case", "case_id", c.ID, "error", err)
			return outcome, nil
		}
		if err := i.idx.Upsert(ctx, index.Entry{
			CaseID:   c.ID,
			GroupID:  c.GroupID,
			Title:    c.ProblemTitle,
			Solution: c.SolutionSummary,
			Vector:   vec,
		}); err != nil {
			i.logger.Error("Failed to index imported case", "case_id", c.ID, "error", err)
			return outcome, nil
		}
		if err := i.cases.MarkInIndex(ctx, c.ID); err != nil {
			i.logger.Error("Failed to mark imported case", "case_id", c.ID, "error", err)
		}
	}
	return outcome, nil
}
