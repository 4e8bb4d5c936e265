// Package config loads and validates the casemine configuration.
package config

import "strings"

// Config is the umbrella configuration object returned by Initialize().
// It is a read-only record: nothing mutates it after loading.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Pipeline tuning (buffer, retrieval, dedup, gating)
	Pipeline *PipelineConfig `yaml:"pipeline"`

	// Queue and worker pool configuration
	Queue *QueueConfig `yaml:"queue"`

	// Retention and reconciliation configuration
	Retention *RetentionConfig `yaml:"retention"`

	// LLM completion provider
	LLM *LLMConfig `yaml:"llm"`

	// Embedding provider
	Embedding *EmbeddingConfig `yaml:"embedding"`

	// Vector index
	Index *IndexConfig `yaml:"index"`

	// Chat transport
	Transport *TransportConfig `yaml:"transport"`

	// History-bootstrap collaborator
	History *HistoryConfig `yaml:"history"`

	// Image attachment bounds and storage root
	Images *ImageConfig `yaml:"images"`

	// HTTP API and web viewer
	Server *ServerConfig `yaml:"server"`
}

// Initialize is defined in loader.go

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// IsPositiveEmoji reports whether the emoji is in the configured positive set.
func (c *Config) IsPositiveEmoji(emoji string) bool {
	for _, e := range c.Pipeline.PositiveEmojis {
		if e == emoji {
			return true
		}
	}
	return false
}

// IsBotMention reports whether the text contains any configured bot mention string.
func (c *Config) IsBotMention(text string) bool {
	for _, m := range c.Pipeline.BotMentionStrings {
		if m != "" && strings.Contains(text, m) {
			return true
		}
	}
	return false
}
