package main

import (
	"time"

	"github.com/lox/wincounter/internal/outcomes"
	"github.com/lox/wincounter/internal/report"
	"github.com/lox/wincounter/internal/simulator"
	"github.com/lox/wincounter/wins"
)

// SimulateCmd rolls dice for every player and reports who came out on top.
type SimulateCmd struct {
	Seats    int    `short:"n" default:"2" help:"Number of players"`
	Contests int    `short:"c" help:"Number of contests (default from config)"`
	Workers  int    `short:"w" help:"Number of worker goroutines (default from config)"`
	Faces    int    `short:"f" help:"Sides on each die (default from config)"`
	Seed     *int64 `help:"Random seed for reproducible results"`
	Save     string `help:"Also save the raw outcomes to this file"`
}

func (cmd *SimulateCmd) Run(app *App) error {
	sc := app.cfg.Simulate
	contests := firstPositive(cmd.Contests, sc.Contests)
	workers := firstPositive(cmd.Workers, sc.Workers)
	faces := firstPositive(cmd.Faces, sc.Faces)

	var seed int64
	switch {
	case cmd.Seed != nil:
		seed = *cmd.Seed
	case sc.Seed != 0:
		seed = sc.Seed
	default:
		seed = time.Now().UnixNano()
	}

	app.logger.Info("Starting simulation", "players", cmd.Seats, "contests", contests, "faces", faces, "seed", seed)

	result, err := simulator.RunDice(app.ctx, cmd.Seats, faces, simulator.Config{
		Contests: contests,
		Workers:  workers,
		Seed:     seed,
		Logger:   app.logger,
	})
	if err != nil {
		return err
	}

	if cmd.Save != "" {
		if err := outcomes.WriteFile(cmd.Save, result.Log); err != nil {
			return err
		}
		app.logger.Info("Saved outcomes", "file", cmd.Save, "contests", result.Log.Len())
	}

	results := wins.FromLog(result.Log, cmd.Seats)
	return app.render(func(r *report.Reporter, jsonOut bool) error {
		if jsonOut {
			return r.WriteResultsJSON(results)
		}
		return r.WriteResults(results)
	})
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
