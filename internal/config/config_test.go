package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wincounter.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100_000, cfg.Simulate.Contests)
	assert.Equal(t, 6, cfg.Simulate.Faces)
	assert.GreaterOrEqual(t, cfg.Simulate.Workers, 1)
	assert.Equal(t, FormatText, cfg.Output.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
players   = ["Daniel", "Gus"]

simulate {
  contests = 5000
  workers  = 3
  seed     = 42
}

output {
  format = "json"
  file   = "report.json"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"Daniel", "Gus"}, cfg.Players)
	assert.Equal(t, 5000, cfg.Simulate.Contests)
	assert.Equal(t, 3, cfg.Simulate.Workers)
	assert.Equal(t, 6, cfg.Simulate.Faces, "unset field gets a default")
	assert.Equal(t, int64(42), cfg.Simulate.Seed)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, "report.json", cfg.Output.File)
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, `simulate {`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadUnknownAttribute(t *testing.T) {
	path := writeConfig(t, `colour = "blue"`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"too many players", func(c *Config) { c.Players = make([]string, 17) }},
		{"contests", func(c *Config) { c.Simulate.Contests = -1 }},
		{"workers", func(c *Config) { c.Simulate.Workers = -2 }},
		{"faces", func(c *Config) { c.Simulate.Faces = 1 }},
		{"format", func(c *Config) { c.Output.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestPlayerName(t *testing.T) {
	cfg := Default()
	cfg.Players = []string{"Daniel", ""}

	assert.Equal(t, "Daniel", cfg.PlayerName(0))
	assert.Equal(t, "Player #2", cfg.PlayerName(1))
	assert.Equal(t, "Player #3", cfg.PlayerName(2))
	assert.Equal(t, "Player #0", cfg.PlayerName(-1))
}
