// Package config manages ReportRunner configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/aaxis-ai/reportrunner/internal/domain"
)

// Config holds all runner configuration.
type Config struct {
	Generation GenerationConfig `toml:"generation"`
	Output     OutputConfig     `toml:"output"`
	API        APIConfig        `toml:"api"`
	Server     ServerConfig     `toml:"server"`
}

// GenerationConfig controls the generation batch.
type GenerationConfig struct {
	Model         string `toml:"model"`
	MaxTokens     int    `toml:"max_tokens"`
	MaxConcurrent int    `toml:"max_concurrent"`
	ProgressEvery int    `toml:"progress_every"`
}

// OutputConfig controls where the report document lands.
type OutputConfig struct {
	Path string `toml:"path"`
}

// APIConfig controls the upstream generation API.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	KeyEnv  string `toml:"key_env"`
}

// ServerConfig controls the report HTTP server.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Generation: GenerationConfig{
			Model:         "claude-sonnet-4-5",
			MaxTokens:     4000,
			MaxConcurrent: 10,
			ProgressEvery: 10,
		},
		Output: OutputConfig{
			Path: "report_blocks.json",
		},
		API: APIConfig{
			KeyEnv: "ANTHROPIC_API_KEY",
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8321,
		},
	}
}

// LoadConfig reads config from $REPORTRUNNER_HOME/config.toml, falling
// back to defaults when no file exists.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(Home(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config to $REPORTRUNNER_HOME/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(Home(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// APIKey resolves the upstream API key from the configured environment
// variable.
func (c Config) APIKey() (string, error) {
	keyEnv := c.API.KeyEnv
	if keyEnv == "" {
		keyEnv = "ANTHROPIC_API_KEY"
	}
	key := os.Getenv(keyEnv)
	if key == "" {
		return "", fmt.Errorf("%w: set %s", domain.ErrNoAPIKey, keyEnv)
	}
	return key, nil
}

// Home returns the ReportRunner data directory.
func Home() string {
	if env := os.Getenv("REPORTRUNNER_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".reportrunner")
}
