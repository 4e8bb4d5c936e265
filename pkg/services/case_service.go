package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/casemine/casemine/ent"
	"github.com/casemine/casemine/ent/caseevidence"
	"github.com/casemine/casemine/ent/rawmessage"
	"github.com/casemine/casemine/ent/supportcase"
	"github.com/casemine/casemine/pkg/models"
	"github.com/google/uuid"
)

// CaseService owns support cases and their evidence. The relational rows
// are the source of truth; the vector index is a derived view maintained
// by the extractor and the reconciler.
type CaseService struct {
	client *ent.Client
}

// NewCaseService creates a new CaseService.
func NewCaseService(client *ent.Client) *CaseService {
	if client == nil {
		panic("NewCaseService: client must not be nil")
	}
	return &CaseService{client: client}
}

// CreateCase inserts a new case with its evidence rows in one transaction.
// status must be open or solved; solved requires a non-empty solution.
func (s *CaseService) CreateCase(ctx context.Context, groupID string, fields models.CaseFields, status string, dedupEmbedding []float32, evidence []models.EvidenceRef) (*ent.SupportCase, error) {
	st := supportcase.Status(status)
	if st != supportcase.StatusOpen && st != supportcase.StatusSolved {
		return nil, NewValidationError("status", "case status must be open or solved")
	}
	if st == supportcase.StatusSolved && fields.SolutionSummary == "" {
		return nil, NewValidationError("solution_summary", "solved case requires a solution")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	c, err := tx.SupportCase.Create().
		SetID(uuid.New().String()).
		SetGroupID(groupID).
		SetStatus(st).
		SetProblemTitle(fields.ProblemTitle).
		SetProblemSummary(fields.ProblemSummary).
		SetSolutionSummary(fields.SolutionSummary).
		SetTags(fields.Tags).
		SetDedupEmbedding(dedupEmbedding).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	if err := insertEvidence(ctx, tx, c.ID, 0, evidence); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit case: %w", err)
	}
	return c, nil
}

func insertEvidence(ctx context.Context, tx *ent.Tx, caseID string, startPos int, refs []models.EvidenceRef) error {
	for i, ref := range refs {
		err := tx.CaseEvidence.Create().
			SetCaseID(caseID).
			SetMessageID(ref.MessageID).
			SetMessageTs(ref.TS).
			SetPosition(startPos + i).
			Exec(ctx)
		if err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("failed to insert evidence: %w", err)
		}
	}
	return nil
}

// GetCase loads one case.
func (s *CaseService) GetCase(ctx context.Context, caseID string) (*ent.SupportCase, error) {
	c, err := s.client.SupportCase.Get(ctx, caseID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	return c, nil
}

// Evidence returns a case's evidence rows in stable order.
func (s *CaseService) Evidence(ctx context.Context, caseID string) ([]*ent.CaseEvidence, error) {
	refs, err := s.client.CaseEvidence.Query().
		Where(caseevidence.CaseID(caseID)).
		Order(ent.Asc(caseevidence.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evidence: %w", err)
	}
	return refs, nil
}

// FindSimilarCase returns the nearest non-archived case of the group by
// cosine similarity of dedup embeddings, or nil when nothing reaches the
// threshold. excludeID skips a case (a case is always its own nearest
// neighbour when checking for a merge peer). Equidistant candidates break
// ties by evidence count, then by earlier creation.
func (s *CaseService) FindSimilarCase(ctx context.Context, groupID string, embedding []float32, threshold float64, excludeID string) (*ent.SupportCase, error) {
	q := s.client.SupportCase.Query().
		Where(
			supportcase.GroupID(groupID),
			supportcase.StatusNEQ(supportcase.StatusArchived),
			supportcase.DedupEmbeddingNotNil(),
		)
	if excludeID != "" {
		q = q.Where(supportcase.IDNEQ(excludeID))
	}
	candidates, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query cases for dedup: %w", err)
	}

	var (
		best      *ent.SupportCase
		bestSim   float64
		bestCount int
	)
	for _, c := range candidates {
		sim := cosine(embedding, c.DedupEmbedding)
		if sim < threshold || sim < bestSim {
			continue
		}
		count, err := s.client.CaseEvidence.Query().
			Where(caseevidence.CaseID(c.ID)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count evidence: %w", err)
		}
		if best != nil && sim == bestSim {
			if count < bestCount || (count == bestCount && c.CreatedAt.After(best.CreatedAt)) {
				continue
			}
		}
		best, bestSim, bestCount = c, sim, count
	}
	return best, nil
}

// cosine computes cosine similarity; mismatched or zero vectors score 0.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// MergeCase folds new evidence and fields into an existing case. Evidence
// is a union that preserves existing order and appends new messages by
// timestamp; fields are replaced only when the new text is strictly
// longer. created_at is never touched.
func (s *CaseService) MergeCase(ctx context.Context, targetID string, fields models.CaseFields, extraEvidence []models.EvidenceRef) (*ent.SupportCase, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	target, err := tx.SupportCase.Get(ctx, targetID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load merge target: %w", err)
	}

	existing, err := tx.CaseEvidence.Query().
		Where(caseevidence.CaseID(targetID)).
		Order(ent.Asc(caseevidence.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load evidence: %w", err)
	}

	seen := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		seen[e.MessageID] = struct{}{}
	}
	var fresh []models.EvidenceRef
	for _, ref := range extraEvidence {
		if _, ok := seen[ref.MessageID]; ok {
			continue
		}
		seen[ref.MessageID] = struct{}{}
		fresh = append(fresh, ref)
	}
	sort.Slice(fresh, func(i, j int) bool { return fresh[i].TS < fresh[j].TS })
	if err := insertEvidence(ctx, tx, targetID, len(existing), fresh); err != nil {
		return nil, err
	}

	upd := tx.SupportCase.UpdateOne(target)
	changed := false
	if len(fields.ProblemTitle) > len(target.ProblemTitle) {
		upd.SetProblemTitle(fields.ProblemTitle)
		changed = true
	}
	if len(fields.ProblemSummary) > len(target.ProblemSummary) {
		upd.SetProblemSummary(fields.ProblemSummary)
		changed = true
	}
	if len(fields.SolutionSummary) > len(target.SolutionSummary) {
		upd.SetSolutionSummary(fields.SolutionSummary)
		changed = true
	}
	if merged := unionTags(target.Tags, fields.Tags); len(merged) > len(target.Tags) {
		upd.SetTags(merged)
		changed = true
	}
	if changed || len(fresh) > 0 {
		if target, err = upd.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to update merged case: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit merge: %w", err)
	}
	return target, nil
}

func unionTags(a, b []string) []string {
	seen := make(map[string]struct{}, len(a))
	out := append([]string(nil), a...)
	for _, t := range a {
		seen[t] = struct{}{}
	}
	for _, t := range b {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// PromoteSolved marks an open case solved with the given solution.
func (s *CaseService) PromoteSolved(ctx context.Context, caseID, solution string) (*ent.SupportCase, error) {
	if solution == "" {
		return nil, NewValidationError("solution_summary", "solved case requires a solution")
	}
	c, err := s.client.SupportCase.UpdateOneID(caseID).
		SetStatus(supportcase.StatusSolved).
		SetSolutionSummary(solution).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to promote case: %w", err)
	}
	return c, nil
}

// MarkInIndex flags a case as mirrored into the vector index.
func (s *CaseService) MarkInIndex(ctx context.Context, caseID string) error {
	err := s.client.SupportCase.UpdateOneID(caseID).SetInIndex(true).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark case in index: %w", err)
	}
	return nil
}

// SetClosedEmoji records the reaction emoji that confirmed the case.
func (s *CaseService) SetClosedEmoji(ctx context.Context, caseID, emoji string) error {
	err := s.client.SupportCase.UpdateOneID(caseID).SetClosedEmoji(emoji).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set closed emoji: %w", err)
	}
	return nil
}

// ArchiveCase marks a case archived and drops it from index bookkeeping.
func (s *CaseService) ArchiveCase(ctx context.Context, caseID string) error {
	err := s.client.SupportCase.UpdateOneID(caseID).
		SetStatus(supportcase.StatusArchived).
		SetInIndex(false).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to archive case: %w", err)
	}
	return nil
}

// DeleteCase removes a case; evidence rows go with it via cascade.
func (s *CaseService) DeleteCase(ctx context.Context, caseID string) error {
	err := s.client.SupportCase.DeleteOneID(caseID).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to delete case: %w", err)
	}
	return nil
}

// OpenCases returns the group's open cases, most recently updated first.
func (s *CaseService) OpenCases(ctx context.Context, groupID string) ([]*ent.SupportCase, error) {
	cases, err := s.client.SupportCase.Query().
		Where(supportcase.GroupID(groupID), supportcase.StatusEQ(supportcase.StatusOpen)).
		Order(ent.Desc(supportcase.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open cases: %w", err)
	}
	return cases, nil
}

// RecentSolvedCases returns solved cases updated since the given instant,
// most recently updated first.
func (s *CaseService) RecentSolvedCases(ctx context.Context, groupID string, since time.Time) ([]*ent.SupportCase, error) {
	cases, err := s.client.SupportCase.Query().
		Where(
			supportcase.GroupID(groupID),
			supportcase.StatusEQ(supportcase.StatusSolved),
			supportcase.UpdatedAtGTE(since),
		).
		Order(ent.Desc(supportcase.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent solved cases: %w", err)
	}
	return cases, nil
}

// ConfirmCasesByEvidenceTS marks solved every case of the group whose
// evidence contains a message with the given timestamp, recording the
// confirming emoji. Existing solutions are preserved; a blank solution
// stays blank for a later resolution pass to fill. Returns the affected
// cases so the caller can index those that already carry a solution.
func (s *CaseService) ConfirmCasesByEvidenceTS(ctx context.Context, groupID string, targetTS int64, emoji string) ([]*ent.SupportCase, error) {
	caseIDs, err := s.client.CaseEvidence.Query().
		Where(caseevidence.MessageTs(targetTS)).
		Select(caseevidence.FieldCaseID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find cases by evidence ts: %w", err)
	}
	if len(caseIDs) == 0 {
		return nil, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	cases, err := tx.SupportCase.Query().
		Where(
			supportcase.IDIn(caseIDs...),
			supportcase.GroupID(groupID),
			supportcase.StatusEQ(supportcase.StatusOpen),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cases for confirmation: %w", err)
	}

	affected := make([]*ent.SupportCase, 0, len(cases))
	for _, c := range cases {
		updated, err := tx.SupportCase.UpdateOne(c).
			SetStatus(supportcase.StatusSolved).
			SetClosedEmoji(emoji).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to confirm case: %w", err)
		}
		affected = append(affected, updated)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit confirmation: %w", err)
	}
	return affected, nil
}

// ExpireOldOpenCases archives open cases not updated within maxAge.
func (s *CaseService) ExpireOldOpenCases(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	n, err := s.client.SupportCase.Update().
		Where(
			supportcase.StatusEQ(supportcase.StatusOpen),
			supportcase.UpdatedAtLT(cutoff),
		).
		SetStatus(supportcase.StatusArchived).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire open cases: %w", err)
	}
	return n, nil
}

// IndexedCases returns all cases flagged in_index, for reconciliation.
func (s *CaseService) IndexedCases(ctx context.Context) ([]*ent.SupportCase, error) {
	cases, err := s.client.SupportCase.Query().
		Where(supportcase.InIndex(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list indexed cases: %w", err)
	}
	return cases, nil
}

// CaseDetail assembles the web-viewer representation of one case,
// joining evidence rows with their raw messages.
func (s *CaseService) CaseDetail(ctx context.Context, caseID string) (*models.CaseDetail, error) {
	c, err := s.GetCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	refs, err := s.Evidence(ctx, caseID)
	if err != nil {
		return nil, err
	}

	detail := &models.CaseDetail{
		CaseID:          c.ID,
		ProblemTitle:    c.ProblemTitle,
		ProblemSummary:  c.ProblemSummary,
		SolutionSummary: c.SolutionSummary,
		Status:          string(c.Status),
		CreatedAt:       c.CreatedAt.UnixMilli(),
		Tags:            c.Tags,
		Evidence:        []models.EvidenceDetail{},
	}
	if c.ClosedEmoji != nil {
		detail.ClosedEmoji = *c.ClosedEmoji
	}
	if detail.Tags == nil {
		detail.Tags = []string{}
	}

	for _, ref := range refs {
		m, err := s.client.RawMessage.Query().
			Where(rawmessage.GroupID(c.GroupID), rawmessage.MessageID(ref.MessageID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				// evidence survived an admin-wipe of messages; show the ref
				detail.Evidence = append(detail.Evidence, models.EvidenceDetail{
					MessageID: ref.MessageID,
					TS:        ref.MessageTs,
					Images:    []string{},
				})
				continue
			}
			return nil, fmt.Errorf("failed to load evidence message: %w", err)
		}
		ev := models.EvidenceDetail{
			MessageID:   m.MessageID,
			TS:          m.Ts,
			SenderHash:  m.SenderHash,
			ContentText: m.ContentText,
			Images:      m.ImagePaths,
		}
		if m.SenderName != nil {
			ev.SenderName = *m.SenderName
		}
		if ev.Images == nil {
			ev.Images = []string{}
		}
		detail.Evidence = append(detail.Evidence, ev)
	}
	return detail, nil
}

// DeleteGroupCases removes all cases of a group, returning their IDs so
// the caller can drop them from the vector index.
func (s *CaseService) DeleteGroupCases(ctx context.Context, groupID string) ([]string, error) {
	ids, err := s.client.SupportCase.Query().
		Where(supportcase.GroupID(groupID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list group cases: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	if _, err := s.client.SupportCase.Delete().Where(supportcase.IDIn(ids...)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete group cases: %w", err)
	}
	return ids, nil
}
