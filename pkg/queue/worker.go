package queue

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/services"
)

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id         string
	jobs       *services.JobService
	dispatcher Dispatcher
	config     *config.QueueConfig
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id string, jobs *services.JobService, dispatcher Dispatcher, cfg *config.QueueConfig) *Worker {
	return &Worker{
		id:           id,
		jobs:         jobs,
		dispatcher:   dispatcher,
		config:       cfg,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its
// current job. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        w.status,
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.processNext(ctx); err != nil {
				if errors.Is(err, services.ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// processNext leases one job, dispatches it, and records the outcome.
// Terminal status updates use a background context: the job context may
// already be cancelled when the outcome is written.
func (w *Worker) processNext(ctx context.Context) error {
	j, err := w.jobs.Lease(ctx, w.id, w.config.LeaseDuration)
	if err != nil {
		return err
	}

	log := slog.With("job_id", j.ID, "job_type", j.Type, "worker_id", w.id)
	log.Info("Job claimed", "attempt", j.Attempts)

	w.setStatus(WorkerStatusWorking, j.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	jobCtx, cancel := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancel()

	dispatchErr := w.dispatcher.Dispatch(jobCtx, j)

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	if dispatchErr == nil {
		if err := w.jobs.Complete(context.WithoutCancel(ctx), j.ID); err != nil {
			log.Error("Failed to complete job", "error", err)
			return err
		}
		log.Info("Job done")
		return nil
	}

	var terminal *TerminalError
	isTerminal := errors.As(dispatchErr, &terminal)
	backoff := w.retryBackoff(j.Attempts)

	log.Warn("Job failed", "error", dispatchErr, "terminal", isTerminal, "backoff", backoff)
	if err := w.jobs.Fail(context.WithoutCancel(ctx), j.ID, dispatchErr.Error(), isTerminal, backoff); err != nil {
		log.Error("Failed to record job failure", "error", err)
		return err
	}
	return nil
}

// retryBackoff grows linearly with the attempt count.
func (w *Worker) retryBackoff(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	return w.config.RetryBackoff * time.Duration(attempts)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
