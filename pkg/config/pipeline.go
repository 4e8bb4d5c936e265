package config

import "time"

// Language is a supported admin interaction language.
type Language string

// Supported languages.
const (
	LanguageUK Language = "uk"
	LanguageEN Language = "en"
)

// IsValid reports whether the language is a supported value.
func (l Language) IsValid() bool {
	return l == LanguageUK || l == LanguageEN
}

// PipelineConfig tunes the ingestion and answering pipeline.
type PipelineConfig struct {
	// BufferMaxAgeHours is the age cutoff for buffer eviction.
	BufferMaxAgeHours int `yaml:"buffer_max_age_hours"`

	// BufferMaxMessages is the count cutoff for buffer eviction.
	BufferMaxMessages int `yaml:"buffer_max_messages"`

	// ContextRecentK is how many preceding messages feed the response gate.
	ContextRecentK int `yaml:"context_recent_k"`

	// RetrieveTopK is the vector index query size at answer time.
	RetrieveTopK int `yaml:"retrieve_top_k"`

	// DedupThreshold is the cosine similarity above which two cases in
	// the same group are considered duplicates and merged.
	DedupThreshold float64 `yaml:"dedup_threshold"`

	// B2Window bounds the recent-solved (B3) lookup at answer time.
	B2Window time.Duration `yaml:"b2_window"`

	// B1TTLDays is how long an open case may stay open before the
	// reconciler archives it.
	B1TTLDays int `yaml:"b1_ttl_days"`

	// PositiveEmojis are reaction emojis treated as solution confirmation.
	PositiveEmojis []string `yaml:"positive_emojis"`

	// BotSenderHash identifies the bot's own messages for [BOT] tagging.
	BotSenderHash string `yaml:"bot_sender_hash"`

	// BotMentionStrings force the gate to consider a message on match.
	BotMentionStrings []string `yaml:"bot_mention_strings"`

	// PublicBaseURL prefixes case links embedded in replies.
	PublicBaseURL string `yaml:"public_base_url"`

	// LanguageDefault is used when an admin session has no override.
	LanguageDefault Language `yaml:"language_default"`

	// TxTimeout bounds store transactions.
	TxTimeout time.Duration `yaml:"tx_timeout"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		BufferMaxAgeHours: 48,
		BufferMaxMessages: 200,
		ContextRecentK:    10,
		RetrieveTopK:      5,
		DedupThreshold:    0.88,
		B2Window:          48 * time.Hour,
		B1TTLDays:         14,
		PositiveEmojis:    []string{"\U0001F44D", "❤️", "\U0001F64F", "\U0001F525"},
		BotMentionStrings: []string{"@casemine"},
		LanguageDefault:   LanguageEN,
		TxTimeout:         10 * time.Second,
	}
}

// ImageConfig bounds image attachment handling.
type ImageConfig struct {
	// RootDir is the filesystem root for stored image blobs.
	// RawMessage image paths are relative to this directory.
	RootDir string `yaml:"root_dir"`

	// MaxImageBytes is the per-image size cap for OCR.
	MaxImageBytes int `yaml:"max_image_bytes"`

	// MaxImagesPerMessage caps how many attachments are OCR'd per message.
	MaxImagesPerMessage int `yaml:"max_images_per_message"`
}

// DefaultImageConfig returns the built-in image defaults.
func DefaultImageConfig() *ImageConfig {
	return &ImageConfig{
		RootDir:             "./data/images",
		MaxImageBytes:       5 * 1024 * 1024,
		MaxImagesPerMessage: 2,
	}
}
