package main

import (
	"fmt"

	"github.com/lox/wincounter/internal/report"
	"github.com/lox/wincounter/wins"
)

// HeadsUpCmd reports counts that were worked out elsewhere, e.g. by
// enumerating every board.
type HeadsUpCmd struct {
	First  int `arg:"" help:"Contests the first player won outright"`
	Second int `arg:"" help:"Contests the second player won outright"`
	Ties   int `arg:"" help:"Contests the two shared"`
}

func (cmd *HeadsUpCmd) Run(app *App) error {
	if cmd.First < 0 || cmd.Second < 0 || cmd.Ties < 0 {
		return fmt.Errorf("counts must not be negative")
	}

	hu := wins.NewHeadsUp(cmd.First, cmd.Second, cmd.Ties)
	return app.render(func(r *report.Reporter, jsonOut bool) error {
		if jsonOut {
			return r.WriteHeadsUpJSON(hu)
		}
		return r.WriteHeadsUp(hu)
	})
}
