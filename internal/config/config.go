// Package config resolves auditor settings from defaults, an optional YAML
// file, and environment variables, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is returned when ANTHROPIC_API_KEY is not set.
// A missing credential is fatal at startup; nothing in this tool works without it.
var ErrMissingAPIKey = errors.New("ANTHROPIC_API_KEY is not set")

// Config holds every knob the auditor exposes.
type Config struct {
	Model          string `yaml:"model"`
	BaseURL        string `yaml:"base_url"`
	MaxTokens      int    `yaml:"max_tokens"`
	PerFileChars   int    `yaml:"per_file_chars"`
	ContextChars   int    `yaml:"context_chars"`
	MaxMessages    int    `yaml:"max_messages"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`

	// APIKey comes from the environment only; it never lives in a config file.
	APIKey string `yaml:"-"`
}

// Default returns the built-in audit configuration.
func Default() Config {
	return Config{
		Model:          "claude-sonnet-4-20250514",
		BaseURL:        "https://api.anthropic.com/v1",
		MaxTokens:      4096,
		PerFileChars:   1600,
		ContextChars:   10000,
		MaxMessages:    16,
		TimeoutSeconds: 90,
	}
}

// Load builds the effective config. path may be empty (no config file).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model := os.Getenv("CLAUDE_MODEL"); model != "" {
		cfg.Model = model
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Timeout returns the phase-1 run deadline.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// validate rejects budgets that would make every excerpt or run empty.
func (c *Config) validate() error {
	if c.PerFileChars <= 0 {
		return fmt.Errorf("per_file_chars must be positive, got %d", c.PerFileChars)
	}
	if c.ContextChars <= 0 {
		return fmt.Errorf("context_chars must be positive, got %d", c.ContextChars)
	}
	if c.MaxMessages <= 0 {
		return fmt.Errorf("max_messages must be positive, got %d", c.MaxMessages)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	return nil
}
