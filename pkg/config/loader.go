package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the single YAML file loaded from the config directory.
const configFileName = "casemine.yaml"

// Initialize loads configuration from configDir, applies defaults,
// expands environment variables, and validates the result.
//
// A missing config file is not an error: all sections have working
// defaults and secrets come from the environment anyway.
func Initialize(_ context.Context, configDir string) (*Config, error) {
	cfg := &Config{
		configDir: configDir,
		Pipeline:  DefaultPipelineConfig(),
		Queue:     DefaultQueueConfig(),
		Retention: DefaultRetentionConfig(),
		LLM:       DefaultLLMConfig(),
		Embedding: DefaultEmbeddingConfig(),
		Index:     DefaultIndexConfig(),
		Transport: DefaultTransportConfig(),
		History:   DefaultHistoryConfig(),
		Images:    DefaultImageConfig(),
		Server:    DefaultServerConfig(),
	}

	path := filepath.Join(configDir, configFileName)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Info("No config file found, using defaults", "path", path)
	case err != nil:
		return nil, NewLoadError(path, err)
	default:
		expanded := ExpandEnv(data)
		if err := yaml.Unmarshal(expanded, cfg); err != nil {
			return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
		slog.Info("Loaded configuration", "path", path)
	}

	if err := NewValidator(cfg).ValidateAll(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return cfg, nil
}
