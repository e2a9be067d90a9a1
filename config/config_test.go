package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "json", cfg.Storage.Type)
	assert.Equal(t, "USD", cfg.Display.Currency)
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
storage:
  type: sqlite
  path: /tmp/trades.db
display:
  currency: EUR
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Type)
	assert.Equal(t, "/tmp/trades.db", cfg.Storage.Path)
	assert.Equal(t, "EUR", cfg.Display.Currency)
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"storage":{"type":"json","path":"trades.json"},"display":{"currency":"GBP"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "GBP", cfg.Display.Currency)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad storage type", func(c *Config) { c.Storage.Type = "parchment" }},
		{"missing path", func(c *Config) { c.Storage.Path = "" }},
		{"missing currency", func(c *Config) { c.Display.Currency = "" }},
		{"unknown currency", func(c *Config) { c.Display.Currency = "ZZZ" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Display.Currency = "EUR"

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
