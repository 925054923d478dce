// Package config loads wincounter settings from an HCL file.
//
//	log_level = "debug"
//	players   = ["Daniel", "Gus"]
//
//	simulate {
//	  contests = 100000
//	  workers  = 4
//	  faces    = 6
//	  seed     = 42
//	}
//
//	output {
//	  format = "json"
//	  file   = "report.json"
//	}
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/wincounter/wins"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete file layout.
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	Players  []string        `hcl:"players,optional"`
	Simulate *SimulateConfig `hcl:"simulate,block"`
	Output   *OutputConfig   `hcl:"output,block"`
}

// SimulateConfig holds defaults for the simulate command.
type SimulateConfig struct {
	Contests int   `hcl:"contests,optional"`
	Workers  int   `hcl:"workers,optional"`
	Faces    int   `hcl:"faces,optional"`
	Seed     int64 `hcl:"seed,optional"`
}

// OutputConfig controls how reports are written.
type OutputConfig struct {
	Format string `hcl:"format,optional"`
	File   string `hcl:"file,optional"`
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads filename, falling back to Default when it does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Simulate == nil {
		c.Simulate = &SimulateConfig{}
	}
	if c.Simulate.Contests == 0 {
		c.Simulate.Contests = 100_000
	}
	if c.Simulate.Workers == 0 {
		c.Simulate.Workers = min(runtime.NumCPU(), 8)
	}
	if c.Simulate.Faces == 0 {
		c.Simulate.Faces = 6
	}
	if c.Output == nil {
		c.Output = &OutputConfig{}
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if len(c.Players) > wins.MaxPlayers {
		return fmt.Errorf("%w: %d players configured, at most %d supported", ErrInvalidConfig, len(c.Players), wins.MaxPlayers)
	}
	if c.Simulate.Contests < 1 {
		return fmt.Errorf("%w: simulate.contests must be positive", ErrInvalidConfig)
	}
	if c.Simulate.Workers < 1 {
		return fmt.Errorf("%w: simulate.workers must be positive", ErrInvalidConfig)
	}
	if c.Simulate.Faces < 2 {
		return fmt.Errorf("%w: simulate.faces must be at least 2", ErrInvalidConfig)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalidConfig, c.Output.Format)
	}
	return nil
}

// PlayerName returns the configured name for a 0-based index, or
// "Player #n" when none is set.
func (c *Config) PlayerName(index int) string {
	if index >= 0 && index < len(c.Players) && c.Players[index] != "" {
		return c.Players[index]
	}
	return fmt.Sprintf("Player #%d", index+1)
}
