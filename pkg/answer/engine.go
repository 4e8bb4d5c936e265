// Package answer implements the MAYBE_RESPOND job body: gate the
// message, retrieve the three context layers, synthesize a reply, and
// send it idempotently.
package answer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/casemine/casemine/ent"
	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/database"
	"github.com/casemine/casemine/pkg/index"
	"github.com/casemine/casemine/pkg/llm"
	"github.com/casemine/casemine/pkg/models"
	"github.com/casemine/casemine/pkg/services"
	"github.com/casemine/casemine/pkg/transport"
)

// TagAdminSentinel marks a reply that should mention the group's admins.
// The synthesizer emits it when retrieval came up empty; the engine
// substitutes transport mention tokens before sending.
const TagAdminSentinel = "[[TAG_ADMIN]]"

// Engine answers live questions. It is stateless: every decision is
// derived from store and index snapshots at retrieval time.
type Engine struct {
	messages *services.MessageService
	cases    *services.CaseService
	admins   *services.AdminService
	gateway  llm.Gateway
	embedder llm.Embedder
	idx      *index.Provider
	sender   transport.Transport
	locker   *database.GroupLocker
	cfg      *config.Config
	logger   *slog.Logger
}

// NewEngine creates a new Engine.
func NewEngine(messages *services.MessageService, cases *services.CaseService, admins *services.AdminService, gateway llm.Gateway, embedder llm.Embedder, idx *index.Provider, sender transport.Transport, locker *database.GroupLocker, cfg *config.Config) *Engine {
	if messages == nil || cases == nil || admins == nil || gateway == nil || embedder == nil || idx == nil || sender == nil || locker == nil || cfg == nil {
		panic("NewEngine: all dependencies must be non-nil")
	}
	return &Engine{
		messages: messages,
		cases:    cases,
		admins:   admins,
		gateway:  gateway,
		embedder: embedder,
		idx:      idx,
		sender:   sender,
		locker:   locker,
		cfg:      cfg,
		logger:   slog.Default().With("component", "answer"),
	}
}

// HandleMaybeRespond is the MAYBE_RESPOND job body. Silence is a valid
// outcome: gated-out messages, groups without admins, and already-replied
// messages all exit without error.
func (e *Engine) HandleMaybeRespond(ctx context.Context, payload models.MaybeRespondPayload) error {
	// Answers read a snapshot of the group's cases; never interleave with
	// an extraction rewriting them. A busy group retries through the
	// queue backoff instead of blocking a worker.
	lock, err := e.locker.TryAcquire(ctx, payload.GroupID)
	if err != nil {
		return fmt.Errorf("acquire group lock: %w", err)
	}
	if lock == nil {
		return fmt.Errorf("group %s is busy, deferring response", payload.GroupID)
	}
	defer func() { _ = lock.Release(context.WithoutCancel(ctx)) }()

	msg, err := e.messages.GetMessage(ctx, payload.GroupID, payload.MessageID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil
		}
		return err
	}
	if msg.FromBot || strings.TrimSpace(msg.ContentText) == "" {
		return nil
	}

	replied, err := e.messages.HasReplied(ctx, payload.GroupID, payload.MessageID)
	if err != nil {
		return err
	}
	if replied {
		return nil
	}

	adminIDs, err := e.admins.AdminsForGroup(ctx, payload.GroupID)
	if err != nil {
		return err
	}
	if len(adminIDs) == 0 {
		e.logger.Debug("No admins linked, staying silent", "group_id", payload.GroupID)
		return nil
	}
	lang := e.cfg.Pipeline.LanguageDefault
	if l, ok, err := e.admins.LanguageForGroup(ctx, payload.GroupID); err != nil {
		return err
	} else if ok {
		lang = config.Language(l)
	}

	handled, err := e.runCommand(ctx, msg)
	if err != nil || handled {
		return err
	}

	consider, err := e.gate(ctx, msg)
	if err != nil {
		return err
	}
	if !consider {
		return nil
	}

	reply, err := e.compose(ctx, msg, lang)
	if err != nil {
		return err
	}
	if strings.Contains(reply, TagAdminSentinel) {
		reply = strings.ReplaceAll(reply, TagAdminSentinel, e.mentions(adminIDs))
	}

	// Idempotency: the (group_id, message_id) marker is claimed exactly
	// once; a concurrent duplicate job loses the claim and exits.
	claimed, err := e.messages.TryMarkReplied(ctx, payload.GroupID, payload.MessageID)
	if err != nil {
		return err
	}
	if !claimed {
		return nil
	}

	sent, err := e.sender.SendGroupText(ctx, payload.GroupID, reply, payload.MessageID, adminIDs)
	if err != nil {
		return err
	}
	if !sent {
		e.logger.Warn("Group unreachable, reply dropped", "group_id", payload.GroupID)
	}
	return nil
}

// gate runs the response gate: recent context plus up to two attached
// images. Parse failures close the gate; bot mentions force it open.
func (e *Engine) gate(ctx context.Context, msg *ent.RawMessage) (bool, error) {
	if e.cfg.IsBotMention(msg.ContentText) {
		return true, nil
	}

	recent, err := e.messages.RecentMessages(ctx, msg.GroupID, msg.Ts, e.cfg.Pipeline.ContextRecentK)
	if err != nil {
		return false, err
	}
	var sb strings.Builder
	for _, r := range recent {
		sb.WriteString(r.SenderHash + ": " + r.ContentText + "\n")
	}

	res, err := e.gateway.GateClassify(ctx, msg.ContentText, sb.String(), e.loadImages(msg))
	if err != nil {
		if errors.Is(err, llm.ErrParse) {
			e.logger.Warn("Gate response unparseable, staying silent",
				"group_id", msg.GroupID, "message_id", msg.MessageID)
			return false, nil
		}
		return false, err
	}
	return res.Consider, nil
}

// compose retrieves the three context layers and synthesizes the reply.
// Priority: solved context (index hits or recent solved), then open
// cases, then the bare admin tag.
func (e *Engine) compose(ctx context.Context, msg *ent.RawMessage, lang config.Language) (string, error) {
	vec, err := e.embedder.Embed(ctx, msg.ContentText)
	if err != nil {
		return "", fmt.Errorf("query embedding: %w", err)
	}
	hits, err := e.idx.Query(ctx, msg.GroupID, vec, e.cfg.Pipeline.RetrieveTopK)
	if err != nil {
		return "", err
	}

	solved, err := e.solvedContext(ctx, msg.GroupID, hits)
	if err != nil {
		return "", err
	}
	if solved != "" {
		reply, err := e.gateway.SynthesizeAnswer(ctx, msg.ContentText, solved, lang)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(reply) == "" {
			return TagAdminSentinel, nil
		}
		return reply, nil
	}

	open, err := e.cases.OpenCases(ctx, msg.GroupID)
	if err != nil {
		return "", err
	}
	if len(open) > 0 {
		reply, err := e.gateway.SynthesizeAnswer(ctx, msg.ContentText, e.openContext(open), lang)
		if err != nil {
			return "", err
		}
		reply = strings.TrimSpace(reply)
		if reply == "" {
			reply = TagAdminSentinel
		} else if !strings.Contains(reply, TagAdminSentinel) {
			// open cases are tracked, not answered; the admins always get
			// tagged regardless of what the synthesizer decided
			reply += " " + TagAdminSentinel
		}
		return reply, nil
	}

	docs, err := e.messages.DocURLs(ctx, msg.GroupID)
	if err != nil {
		return "", err
	}
	if len(docs) > 0 {
		return "Docs: " + strings.Join(docs, " ") + " " + TagAdminSentinel, nil
	}
	return TagAdminSentinel, nil
}

// runCommand applies privileged group commands: a strict whitelist keyed
// on the first token. Commands are side effects, never replies; unknown
// slash prefixes flow on to the gate like any other message.
func (e *Engine) runCommand(ctx context.Context, msg *ent.RawMessage) (bool, error) {
	fields := strings.Fields(msg.ContentText)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return false, nil
	}

	switch fields[0] {
	case "/setdocs":
		if err := e.messages.SetDocURLs(ctx, msg.GroupID, fields[1:]); err != nil {
			return false, err
		}
		e.logger.Info("Documentation links updated",
			"group_id", msg.GroupID, "count", len(fields)-1)
		return true, nil
	}
	return false, nil
}

// solvedContext merges index hits with the recent-solved window into one
// retrieval block, deduplicated by case id. Empty when neither layer has
// anything.
func (e *Engine) solvedContext(ctx context.Context, groupID string, hits []index.Hit) (string, error) {
	seen := make(map[string]bool)
	var cases []*ent.SupportCase

	for _, h := range hits {
		c, err := e.cases.GetCase(ctx, h.CaseID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				// stale index entry; the reconciler deletes it next tick
				continue
			}
			return "", err
		}
		if c.SolutionSummary == "" {
			continue
		}
		seen[c.ID] = true
		cases = append(cases, c)
	}

	since := time.Now().Add(-e.cfg.Pipeline.B2Window)
	recent, err := e.cases.RecentSolvedCases(ctx, groupID, since)
	if err != nil {
		return "", err
	}
	for _, c := range recent {
		if !seen[c.ID] && c.SolutionSummary != "" {
			cases = append(cases, c)
		}
	}

	if len(cases) == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString("Solved cases:\n")
	for _, c := range cases {
		sb.WriteString("- Problem: " + c.ProblemTitle + " — " + c.ProblemSummary + "\n")
		sb.WriteString("  Solution: " + c.SolutionSummary + "\n")
		sb.WriteString("  Link: " + e.caseLink(c.ID) + "\n")
	}
	return sb.String(), nil
}

func (e *Engine) openContext(open []*ent.SupportCase) string {
	var sb strings.Builder
	sb.WriteString("Open cases (tracked, not yet solved):\n")
	for _, c := range open {
		sb.WriteString("- " + c.ProblemTitle + " — " + e.caseLink(c.ID) + "\n")
	}
	return sb.String()
}

func (e *Engine) caseLink(caseID string) string {
	return strings.TrimRight(e.cfg.Pipeline.PublicBaseURL, "/") + "/cases/" + caseID
}

func (e *Engine) mentions(adminIDs []string) string {
	tokens := make([]string, len(adminIDs))
	for i, id := range adminIDs {
		tokens[i] = e.sender.MentionToken(id)
	}
	return strings.Join(tokens, " ")
}

// loadImages reads up to two attachments for the gate call. Read failures
// drop the image; the OCR markers are already in the text.
func (e *Engine) loadImages(msg *ent.RawMessage) []llm.ImageInput {
	var images []llm.ImageInput
	for _, rel := range msg.ImagePaths {
		if len(images) == 2 {
			break
		}
		path := filepath.Join(e.cfg.Images.RootDir, filepath.Clean(rel))
		info, err := os.Stat(path)
		if err != nil || info.Size() > int64(e.cfg.Images.MaxImageBytes) {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		images = append(images, llm.ImageInput{Data: data, MIME: mimeFor(rel)})
	}
	return images
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
