package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how jobs are polled, leased, and retried.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica.
	// Each worker independently polls and processes jobs.
	WorkerCount int `yaml:"worker_count"`

	// MaxAttempts caps job retries; once reached the job is terminally failed.
	MaxAttempts int `yaml:"max_attempts"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// LeaseDuration is how long a claim holds a job in in_progress before
	// it becomes re-leasable (crash tolerance).
	LeaseDuration time.Duration `yaml:"lease_duration"`

	// JobTimeout is the maximum processing time for a single job.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// RetryBackoff is the base backoff applied on job failure; the actual
	// delay grows with the attempt count.
	RetryBackoff time.Duration `yaml:"retry_backoff"`

	// GracefulShutdownTimeout is the max time to wait for in-flight jobs
	// to complete during shutdown. Should exceed JobTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanScanInterval is how often to recover expired leases.
	OrphanScanInterval time.Duration `yaml:"orphan_scan_interval"`

	// HighWatermark is the queue depth above which the ingestor defers
	// enqueuing MAYBE_RESPOND jobs (buffer updates remain mandatory).
	HighWatermark int `yaml:"high_watermark"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             4,
		MaxAttempts:             5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		LeaseDuration:           5 * time.Minute,
		JobTimeout:              4 * time.Minute,
		RetryBackoff:            10 * time.Second,
		GracefulShutdownTimeout: 5 * time.Minute,
		OrphanScanInterval:      1 * time.Minute,
		HighWatermark:           500,
	}
}

// RetentionConfig controls reconciliation and garbage collection.
type RetentionConfig struct {
	// ReconcileInterval is how often the reconciler loop runs.
	ReconcileInterval time.Duration `yaml:"reconcile_interval"`

	// JobRetention is how long done/failed jobs are kept before GC.
	JobRetention time.Duration `yaml:"job_retention"`

	// TokenTTL is the lifetime of a history-bootstrap token.
	TokenTTL time.Duration `yaml:"token_ttl"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ReconcileInterval: 1 * time.Hour,
		JobRetention:      24 * time.Hour,
		TokenTTL:          30 * time.Minute,
	}
}
