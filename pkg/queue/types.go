// Package queue runs the durable job queue: a pool of workers that
// lease jobs with FOR UPDATE SKIP LOCKED, dispatch them by type, and
// recover expired leases from crashed peers.
package queue

import (
	"context"
	"time"

	"github.com/casemine/casemine/ent"
)

// Dispatcher routes a leased job to its handler.
type Dispatcher interface {
	Dispatch(ctx context.Context, j *ent.Job) error
}

// TerminalError wraps a dispatch failure that retrying cannot fix
// (malformed payload, unknown job type). The worker fails the job
// immediately instead of rescheduling it.
type TerminalError struct {
	Err error
}

func (e *TerminalError) Error() string { return e.Err.Error() }

func (e *TerminalError) Unwrap() error { return e.Err }

// Terminal marks an error as non-retryable.
func Terminal(err error) error {
	return &TerminalError{Err: err}
}

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is one worker's health snapshot.
type WorkerHealth struct {
	ID            string       `json:"id"`
	Status        WorkerStatus `json:"status"`
	CurrentJobID  string       `json:"current_job_id,omitempty"`
	JobsProcessed int          `json:"jobs_processed"`
	LastActivity  time.Time    `json:"last_activity"`
}

// PoolHealth is the pool's health snapshot, served by the API.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}
