package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeWithDefaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 48, cfg.Pipeline.BufferMaxAgeHours)
	assert.Equal(t, 200, cfg.Pipeline.BufferMaxMessages)
	assert.Equal(t, 4, cfg.Queue.WorkerCount)
	assert.Equal(t, LanguageEN, cfg.Pipeline.LanguageDefault)
	assert.Equal(t, 1536, cfg.Embedding.Dimension)
}

func TestInitializeOverridesFromYAML(t *testing.T) {
	dir := t.TempDir()
	content := `
pipeline:
  buffer_max_messages: 50
  dedup_threshold: 0.9
  language_default: uk
queue:
  worker_count: 2
  lease_duration: 2m
  job_timeout: 1m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Pipeline.BufferMaxMessages)
	assert.InDelta(t, 0.9, cfg.Pipeline.DedupThreshold, 1e-9)
	assert.Equal(t, LanguageUK, cfg.Pipeline.LanguageDefault)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 2*time.Minute, cfg.Queue.LeaseDuration)

	// Untouched sections keep defaults
	assert.Equal(t, 48, cfg.Pipeline.BufferMaxAgeHours)
	assert.Equal(t, 5, cfg.Queue.MaxAttempts)
}

func TestInitializeExpandsEnvironment(t *testing.T) {
	t.Setenv("CASEMINE_TEST_BASE_URL", "https://cases.example.com")

	dir := t.TempDir()
	content := `
pipeline:
  public_base_url: "{{.CASEMINE_TEST_BASE_URL}}"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "https://cases.example.com", cfg.Pipeline.PublicBaseURL)
}

func TestInitializeRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	content := `
pipeline:
  dedup_threshold: 1.5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestInitializeRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("queue: [not a map"), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestIsPositiveEmoji(t *testing.T) {
	cfg := &Config{Pipeline: DefaultPipelineConfig()}
	assert.True(t, cfg.IsPositiveEmoji("\U0001F44D"))
	assert.False(t, cfg.IsPositiveEmoji("\U0001F914"))
}

func TestIsBotMention(t *testing.T) {
	cfg := &Config{Pipeline: DefaultPipelineConfig()}
	assert.True(t, cfg.IsBotMention("hey @casemine what about err 42?"))
	assert.False(t, cfg.IsBotMention("hey folks"))

	// Empty mention strings never match
	cfg.Pipeline.BotMentionStrings = []string{""}
	assert.False(t, cfg.IsBotMention("anything"))
}
