// Package reconcile runs the periodic retention and repair loop: it
// expires stale open cases, keeps the vector index consistent with the
// in_index flags, and garbage-collects spent tokens and finished jobs.
package reconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/extract"
	"github.com/casemine/casemine/pkg/index"
	"github.com/casemine/casemine/pkg/llm"
	"github.com/casemine/casemine/pkg/services"
)

// Service owns the reconciler loop. All passes are idempotent and safe
// to run from multiple replicas.
type Service struct {
	retention *config.RetentionConfig
	pipeline  *config.PipelineConfig
	cases     *services.CaseService
	admins    *services.AdminService
	jobs      *services.JobService
	embedder  llm.Embedder
	idx       *index.Provider

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new reconciler.
func NewService(
	retention *config.RetentionConfig,
	pipeline *config.PipelineConfig,
	cases *services.CaseService,
	admins *services.AdminService,
	jobs *services.JobService,
	embedder llm.Embedder,
	idx *index.Provider,
) *Service {
	return &Service{
		retention: retention,
		pipeline:  pipeline,
		cases:     cases,
		admins:    admins,
		jobs:      jobs,
		embedder:  embedder,
		idx:       idx,
	}
}

// Start launches the background reconcile loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Reconciler started",
		"interval", s.retention.ReconcileInterval,
		"open_case_ttl_days", s.pipeline.B1TTLDays,
		"job_retention", s.retention.JobRetention)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Reconciler stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.retention.ReconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes one full reconcile pass.
func (s *Service) RunAll(ctx context.Context) {
	s.expireOpenCases(ctx)
	s.reconcileIndex(ctx)
	s.deleteExpiredTokens(ctx)
	s.deleteFinishedJobs(ctx)
}

// expireOpenCases archives open cases past their TTL. Archival, not
// deletion: the full case record stays queryable in the web viewer.
func (s *Service) expireOpenCases(ctx context.Context) {
	ttl := time.Duration(s.pipeline.B1TTLDays) * 24 * time.Hour
	count, err := s.cases.ExpireOldOpenCases(ctx, ttl)
	if err != nil {
		slog.Error("Reconcile: expiring open cases failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Reconcile: archived stale open cases", "count", count)
	}
}

// reconcileIndex repairs drift between the in_index flags in Postgres
// and the vector index in both directions. Postgres is the source of
// truth: flagged cases missing from the index are re-embedded and
// upserted, index entries without a flagged case are deleted.
func (s *Service) reconcileIndex(ctx context.Context) {
	flagged, err := s.cases.IndexedCases(ctx)
	if err != nil {
		slog.Error("Reconcile: listing indexed cases failed", "error", err)
		return
	}

	want := make(map[string]bool, len(flagged))
	repaired := 0
	for _, c := range flagged {
		want[c.ID] = true
		if s.idx.Has(c.ID) {
			continue
		}
		vec, err := s.embedder.Embed(ctx, extract.IndexDocument(c))
		if err != nil {
			slog.Error("Reconcile: embedding case document failed", "case_id", c.ID, "error", err)
			continue
		}
		if err := s.idx.Upsert(ctx, index.Entry{
			CaseID:   c.ID,
			GroupID:  c.GroupID,
			Title:    c.ProblemTitle,
			Solution: c.SolutionSummary,
			Vector:   vec,
		}); err != nil {
			slog.Error("Reconcile: re-upserting case failed", "case_id", c.ID, "error", err)
			continue
		}
		repaired++
	}

	stray := 0
	for _, id := range s.idx.ListIDs() {
		if want[id] {
			continue
		}
		if err := s.idx.Delete(ctx, id); err != nil {
			slog.Error("Reconcile: deleting stray index entry failed", "case_id", id, "error", err)
			continue
		}
		stray++
	}

	if repaired > 0 || stray > 0 {
		slog.Info("Reconcile: index repaired", "reupserted", repaired, "stray_deleted", stray)
	}
}

func (s *Service) deleteExpiredTokens(ctx context.Context) {
	count, err := s.admins.DeleteExpiredTokens(ctx)
	if err != nil {
		slog.Error("Reconcile: token cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Reconcile: deleted expired tokens", "count", count)
	}
}

func (s *Service) deleteFinishedJobs(ctx context.Context) {
	count, err := s.jobs.DeleteFinishedJobs(ctx, s.retention.JobRetention)
	if err != nil {
		slog.Error("Reconcile: job cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Reconcile: deleted finished jobs", "count", count)
	}
}
