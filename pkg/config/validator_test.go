package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Pipeline:  DefaultPipelineConfig(),
		Queue:     DefaultQueueConfig(),
		Retention: DefaultRetentionConfig(),
		LLM:       DefaultLLMConfig(),
		Embedding: DefaultEmbeddingConfig(),
		Index:     DefaultIndexConfig(),
		Transport: DefaultTransportConfig(),
		Images:    DefaultImageConfig(),
	}
}

func TestValidateAllAcceptsDefaults(t *testing.T) {
	require.NoError(t, NewValidator(validConfig()).ValidateAll())
}

func TestValidateRejectsBadPipeline(t *testing.T) {
	cfg := validConfig()
	cfg.Pipeline.BufferMaxMessages = 0

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "pipeline", vErr.Section)
	assert.Equal(t, "buffer_max_messages", vErr.Field)
}

func TestValidateRejectsThresholdOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.Pipeline.DedupThreshold = 0

	err := NewValidator(cfg).ValidateAll()
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidateRejectsJobTimeoutOverLease(t *testing.T) {
	cfg := validConfig()
	cfg.Queue.LeaseDuration = time.Minute
	cfg.Queue.JobTimeout = 2 * time.Minute

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "job_timeout", vErr.Field)
}

func TestValidateRejectsMissingModel(t *testing.T) {
	cfg := validConfig()
	cfg.LLM.Model = ""

	err := NewValidator(cfg).ValidateAll()
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestLanguageIsValid(t *testing.T) {
	assert.True(t, LanguageUK.IsValid())
	assert.True(t, LanguageEN.IsValid())
	assert.False(t, Language("de").IsValid())
	assert.False(t, Language("").IsValid())
}
