package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rhymond/go-money"
	"gopkg.in/yaml.v3"
)

// Config is the journal configuration: where trades live and how money is
// shown.
type Config struct {
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Display DisplayConfig `json:"display" yaml:"display"`
}

// StorageConfig selects the durable backend.
type StorageConfig struct {
	Type string `json:"type" yaml:"type"` // "json" or "sqlite"
	Path string `json:"path" yaml:"path"`
}

// DisplayConfig controls presentation only; it never affects stored
// amounts.
type DisplayConfig struct {
	Currency string `json:"currency" yaml:"currency"` // ISO 4217 code
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file (format chosen by extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Storage.Type != "json" && c.Storage.Type != "sqlite" {
		return fmt.Errorf("storage.type must be 'json' or 'sqlite'")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	if c.Display.Currency == "" {
		return fmt.Errorf("display.currency is required")
	}
	if money.GetCurrency(c.Display.Currency) == nil {
		return fmt.Errorf("unknown currency: %s", c.Display.Currency)
	}
	return nil
}

// Default returns a configuration with sensible defaults: a JSON ledger
// under the user's home directory, amounts shown in USD.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Storage: StorageConfig{
			Type: "json",
			Path: filepath.Join(home, ".pnl", "trades.json"),
		},
		Display: DisplayConfig{
			Currency: "USD",
		},
	}
}
