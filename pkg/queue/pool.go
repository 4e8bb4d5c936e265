package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/services"
)

// WorkerPool manages a pool of queue workers plus the orphan scan that
// recovers jobs whose lease expired on a crashed replica.
type WorkerPool struct {
	podID      string
	jobs       *services.JobService
	config     *config.QueueConfig
	dispatcher Dispatcher
	workers    []*Worker
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	started    bool

	// Orphan scan state
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, jobs *services.JobService, cfg *config.QueueConfig, dispatcher Dispatcher) *WorkerPool {
	return &WorkerPool{
		podID:      podID,
		jobs:       jobs,
		config:     cfg,
		dispatcher: dispatcher,
		workers:    make([]*Worker, 0, cfg.WorkerCount),
		stopCh:     make(chan struct{}),
	}
}

// Start recovers leases orphaned before this replica came up, then
// spawns the workers and the periodic orphan scan. Safe to call more
// than once; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	if n, err := p.jobs.RecoverExpiredLeases(ctx); err != nil {
		slog.Error("Startup lease recovery failed", "pod_id", p.podID, "error", err)
	} else if n > 0 {
		slog.Info("Recovered orphaned jobs on startup", "pod_id", p.podID, "count", n)
		p.recordScan(n)
	}

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)
	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.jobs, p.dispatcher, p.config)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanScan(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish their
// current jobs (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")
	for _, worker := range p.workers {
		worker.Stop()
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("Worker pool stopped gracefully")
}

// runOrphanScan periodically returns expired in_progress jobs to
// pending so another worker can pick them up.
func (p *WorkerPool) runOrphanScan(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.jobs.RecoverExpiredLeases(ctx)
			if err != nil {
				slog.Error("Orphan scan failed", "pod_id", p.podID, "error", err)
				continue
			}
			if n > 0 {
				slog.Warn("Recovered orphaned jobs", "pod_id", p.podID, "count", n)
			}
			p.recordScan(n)
		}
	}
}

func (p *WorkerPool) recordScan(recovered int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastOrphanScan = time.Now()
	p.orphansRecovered += recovered
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	queueDepth, errQ := p.jobs.PendingCount(context.Background())
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check", "pod_id", p.podID, "error", errQ)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	}

	p.mu.Lock()
	lastScan := p.lastOrphanScan
	recovered := p.orphansRecovered
	p.mu.Unlock()

	return &PoolHealth{
		IsHealthy:        len(p.workers) > 0 && dbHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastScan,
		OrphansRecovered: recovered,
	}
}
