package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/casemine/casemine/ent"
	"github.com/casemine/casemine/ent/job"
	"github.com/google/uuid"
)

// ErrNoJobsAvailable signals an empty queue to the worker loop.
var ErrNoJobsAvailable = fmt.Errorf("no jobs available")

// JobService is the durable work queue on top of the jobs table.
// Claims use FOR UPDATE SKIP LOCKED so concurrent workers never double
// lease; expired leases are recovered back to pending by the pool.
type JobService struct {
	client      *ent.Client
	maxAttempts int
}

// NewJobService creates a new JobService.
func NewJobService(client *ent.Client, maxAttempts int) *JobService {
	if client == nil {
		panic("NewJobService: client must not be nil")
	}
	return &JobService{client: client, maxAttempts: maxAttempts}
}

// Enqueue creates a pending job. The payload is marshalled to JSON;
// groupID is denormalized for observability and may be empty.
func (s *JobService) Enqueue(ctx context.Context, jobType job.Type, groupID string, payload any) (*ent.Job, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job payload: %w", err)
	}

	j, err := s.client.Job.Create().
		SetID(uuid.New().String()).
		SetType(jobType).
		SetGroupID(groupID).
		SetPayload(raw).
		SetStatus(job.StatusPending).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue job: %w", err)
	}
	return j, nil
}

// Lease atomically claims the oldest claimable pending job for workerID.
// Returns ErrNoJobsAvailable when nothing is claimable.
func (s *JobService) Lease(ctx context.Context, workerID string, leaseDuration time.Duration) (*ent.Job, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED, FIFO by created_at
	now := time.Now()
	j, err := tx.Job.Query().
		Where(
			job.StatusEQ(job.StatusPending),
			job.NextVisibleAtLTE(now),
		).
		Order(ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	j, err = j.Update().
		SetStatus(job.StatusInProgress).
		AddAttempts(1).
		SetWorkerID(workerID).
		SetLeaseExpiresAt(now.Add(leaseDuration)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return j, nil
}

// Complete marks an in-progress job done.
func (s *JobService) Complete(ctx context.Context, jobID string) error {
	n, err := s.client.Job.Update().
		Where(job.ID(jobID), job.StatusEQ(job.StatusInProgress)).
		SetStatus(job.StatusDone).
		ClearLeaseExpiresAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Fail records a failed execution. Below the attempts cap (and unless
// terminal) the job returns to pending after the backoff; otherwise it is
// terminally failed.
func (s *JobService) Fail(ctx context.Context, jobID, reason string, terminal bool, backoff time.Duration) error {
	j, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load job: %w", err)
	}

	upd := s.client.Job.UpdateOne(j).
		SetErrorMessage(reason).
		ClearLeaseExpiresAt()

	if terminal || j.Attempts >= s.maxAttempts {
		upd.SetStatus(job.StatusFailed)
	} else {
		upd.SetStatus(job.StatusPending).
			SetNextVisibleAt(time.Now().Add(backoff))
	}

	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("failed to fail job: %w", err)
	}
	return nil
}

// Cancel cancels a job; effective only while still pending.
func (s *JobService) Cancel(ctx context.Context, jobID string) (bool, error) {
	n, err := s.client.Job.Update().
		Where(job.ID(jobID), job.StatusEQ(job.StatusPending)).
		SetStatus(job.StatusCancelled).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to cancel job: %w", err)
	}
	return n > 0, nil
}

// CancelPendingByType cancels pending jobs of one type filtered by group.
// Used when an admin restarts the onboarding flow.
func (s *JobService) CancelPendingByType(ctx context.Context, jobType job.Type, groupID string) (int, error) {
	n, err := s.client.Job.Update().
		Where(
			job.TypeEQ(jobType),
			job.GroupID(groupID),
			job.StatusEQ(job.StatusPending),
		).
		SetStatus(job.StatusCancelled).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel pending jobs: %w", err)
	}
	return n, nil
}

// RecoverExpiredLeases returns in-progress jobs with an expired lease to
// pending so another worker can claim them. At-least-once by design.
func (s *JobService) RecoverExpiredLeases(ctx context.Context) (int, error) {
	n, err := s.client.Job.Update().
		Where(
			job.StatusEQ(job.StatusInProgress),
			job.LeaseExpiresAtLT(time.Now()),
		).
		SetStatus(job.StatusPending).
		ClearLeaseExpiresAt().
		ClearWorkerID().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover expired leases: %w", err)
	}
	return n, nil
}

// PendingCount reports queue depth, used for ingest backpressure.
func (s *JobService) PendingCount(ctx context.Context) (int, error) {
	n, err := s.client.Job.Query().
		Where(job.StatusEQ(job.StatusPending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending jobs: %w", err)
	}
	return n, nil
}

// DeleteFinishedJobs garbage-collects terminal jobs older than retention.
func (s *JobService) DeleteFinishedJobs(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention)
	n, err := s.client.Job.Delete().
		Where(
			job.StatusIn(job.StatusDone, job.StatusFailed, job.StatusCancelled),
			job.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete finished jobs: %w", err)
	}
	return n, nil
}
