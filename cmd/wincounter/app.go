package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/wincounter/internal/config"
	"github.com/lox/wincounter/internal/fileutil"
	"github.com/lox/wincounter/internal/report"
)

// Globals are flags shared by every command.
type Globals struct {
	Config  string   `help:"Path to HCL config file" default:"wincounter.hcl" env:"WINCOUNTER_CONFIG"`
	Debug   bool     `help:"Enable debug logging" env:"WINCOUNTER_DEBUG"`
	JSON    bool     `help:"Write the report as JSON"`
	Players []string `help:"Player names in seat order (overrides config)" sep:","`
	Output  string   `short:"o" help:"Write the report to a file instead of stdout"`
}

// App carries what commands need once flags and config are resolved.
type App struct {
	ctx    context.Context
	cfg    *config.Config
	logger *log.Logger
	stdout io.Writer
}

func newApp(ctx context.Context, g Globals, stdout, stderr io.Writer) (*App, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if g.Debug {
		cfg.LogLevel = "debug"
	}
	if len(g.Players) > 0 {
		cfg.Players = g.Players
	}
	if g.JSON {
		cfg.Output.Format = config.FormatJSON
	}
	if g.Output != "" {
		cfg.Output.File = g.Output
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := log.NewWithOptions(stderr, log.Options{Level: level})
	logger.Debug("Loaded config", "path", g.Config, "format", cfg.Output.Format)

	return &App{ctx: ctx, cfg: cfg, logger: logger, stdout: stdout}, nil
}

// render runs fn against a reporter aimed at stdout, or at the configured
// output file which is replaced atomically.
func (a *App) render(fn func(r *report.Reporter, jsonOut bool) error) error {
	jsonOut := a.cfg.Output.Format == config.FormatJSON
	if a.cfg.Output.File == "" {
		return fn(report.NewReporter(a.stdout, a.logger, a.cfg.PlayerName), jsonOut)
	}

	err := fileutil.WriteAtomic(a.cfg.Output.File, 0o644, func(w io.Writer) error {
		return fn(report.NewReporter(w, a.logger, a.cfg.PlayerName), jsonOut)
	})
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	a.logger.Info("Wrote report", "file", a.cfg.Output.File)
	return nil
}
