package config

import "time"

// LLMConfig configures the completion provider.
type LLMConfig struct {
	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// Model is the completion model identifier.
	Model string `yaml:"model"`

	// MaxTokens caps completion output size.
	MaxTokens int `yaml:"max_tokens"`

	// Timeout bounds a single completion call.
	Timeout time.Duration `yaml:"timeout"`

	// RequestsPerSecond is the token-bucket refill rate for the client
	// rate limiter. Zero disables limiting.
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	// Burst is the token-bucket capacity.
	Burst int `yaml:"burst"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		APIKeyEnv:         "ANTHROPIC_API_KEY",
		Model:             "claude-3-5-haiku-latest",
		MaxTokens:         2048,
		Timeout:           60 * time.Second,
		RequestsPerSecond: 2,
		Burst:             4,
	}
}

// EmbeddingConfig configures the embedding provider
// (OpenAI-compatible embeddings endpoint).
type EmbeddingConfig struct {
	// BaseURL of the embeddings API.
	BaseURL string `yaml:"base_url"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// Model is the embedding model identifier.
	Model string `yaml:"model"`

	// Dimension is the fixed embedding dimension. All stored embeddings
	// and index entries use this dimension.
	Dimension int `yaml:"dimension"`

	// Timeout bounds a single embedding call.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultEmbeddingConfig returns the built-in embedding defaults.
func DefaultEmbeddingConfig() *EmbeddingConfig {
	return &EmbeddingConfig{
		BaseURL:   "https://api.openai.com/v1",
		APIKeyEnv: "OPENAI_API_KEY",
		Model:     "text-embedding-3-small",
		Dimension: 1536,
		Timeout:   30 * time.Second,
	}
}

// IndexConfig configures the vector index.
type IndexConfig struct {
	// PersistPath is the directory for index persistence.
	// Empty means in-memory only.
	PersistPath string `yaml:"persist_path"`

	// Compress enables gzip compression for persisted segments.
	Compress bool `yaml:"compress"`
}

// DefaultIndexConfig returns the built-in index defaults.
func DefaultIndexConfig() *IndexConfig {
	return &IndexConfig{
		PersistPath: "./data/index",
	}
}

// HistoryConfig configures the history-bootstrap collaborator, a
// separate service that reads group history through a secondary account
// and posts extracted case blocks back to the API.
type HistoryConfig struct {
	// CollaboratorURL is the collaborator's base URL. Empty disables the
	// outbound session-start call; the collaborator can still pull
	// tokens through the API.
	CollaboratorURL string `yaml:"collaborator_url"`

	// Timeout bounds a single collaborator call.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultHistoryConfig returns the built-in history defaults.
func DefaultHistoryConfig() *HistoryConfig {
	return &HistoryConfig{
		Timeout: 15 * time.Second,
	}
}

// TransportConfig configures the chat transport adapter.
type TransportConfig struct {
	// TokenEnv names the environment variable holding the transport token.
	TokenEnv string `yaml:"token_env"`

	// AppTokenEnv names the environment variable holding the app-level
	// token used for the event stream.
	AppTokenEnv string `yaml:"app_token_env"`

	// Timeout bounds a single transport call.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultTransportConfig returns the built-in transport defaults.
func DefaultTransportConfig() *TransportConfig {
	return &TransportConfig{
		TokenEnv:    "TRANSPORT_BOT_TOKEN",
		AppTokenEnv: "TRANSPORT_APP_TOKEN",
		Timeout:     15 * time.Second,
	}
}
