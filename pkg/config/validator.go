package config

import "fmt"

// Validator validates configuration comprehensively with clear error messages.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast, stops at first error).
func (v *Validator) ValidateAll() error {
	if err := v.validatePipeline(); err != nil {
		return fmt.Errorf("pipeline validation failed: %w", err)
	}
	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}
	if err := v.validateProviders(); err != nil {
		return fmt.Errorf("provider validation failed: %w", err)
	}
	return nil
}

func (v *Validator) validatePipeline() error {
	p := v.cfg.Pipeline
	if p.BufferMaxAgeHours <= 0 {
		return NewValidationError("pipeline", "buffer_max_age_hours", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.BufferMaxMessages <= 0 {
		return NewValidationError("pipeline", "buffer_max_messages", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.ContextRecentK < 0 {
		return NewValidationError("pipeline", "context_recent_k", fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}
	if p.RetrieveTopK <= 0 {
		return NewValidationError("pipeline", "retrieve_top_k", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.DedupThreshold <= 0 || p.DedupThreshold > 1 {
		return NewValidationError("pipeline", "dedup_threshold", fmt.Errorf("%w: must be in (0, 1]", ErrInvalidValue))
	}
	if p.B2Window <= 0 {
		return NewValidationError("pipeline", "b2_window", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.B1TTLDays <= 0 {
		return NewValidationError("pipeline", "b1_ttl_days", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if !p.LanguageDefault.IsValid() {
		return NewValidationError("pipeline", "language_default", fmt.Errorf("%w: must be uk or en", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateQueue() error {
	q := v.cfg.Queue
	if q.WorkerCount <= 0 {
		return NewValidationError("queue", "worker_count", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.MaxAttempts <= 0 {
		return NewValidationError("queue", "max_attempts", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.LeaseDuration <= 0 {
		return NewValidationError("queue", "lease_duration", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.JobTimeout <= 0 {
		return NewValidationError("queue", "job_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.JobTimeout > q.LeaseDuration {
		return NewValidationError("queue", "job_timeout", fmt.Errorf("%w: must not exceed lease_duration", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateProviders() error {
	if v.cfg.LLM.Model == "" {
		return NewValidationError("llm", "model", ErrMissingRequiredField)
	}
	if v.cfg.LLM.MaxTokens <= 0 {
		return NewValidationError("llm", "max_tokens", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if v.cfg.Embedding.Model == "" {
		return NewValidationError("embedding", "model", ErrMissingRequiredField)
	}
	if v.cfg.Embedding.Dimension <= 0 {
		return NewValidationError("embedding", "dimension", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}
