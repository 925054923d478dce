package main

import (
	"fmt"
	"math/bits"
	"os"

	"github.com/lox/wincounter/internal/outcomes"
	"github.com/lox/wincounter/internal/report"
	"github.com/lox/wincounter/wins"
)

// TallyCmd combines outcome files into one report.
type TallyCmd struct {
	Files   []string `arg:"" name:"file" help:"Outcome files to combine (- for stdin)"`
	Seats   int      `short:"n" help:"Number of players to report (default: configured players, else highest seat seen)"`
	HeadsUp bool     `name:"heads-up" help:"Report only the first two seats as a heads-up summary"`
}

func (cmd *TallyCmd) Run(app *App) error {
	combined := &wins.Log{}
	for _, path := range cmd.Files {
		var (
			l   *wins.Log
			err error
		)
		if path == "-" {
			l, err = outcomes.Read(os.Stdin)
		} else {
			l, err = outcomes.ReadFile(path)
		}
		if err != nil {
			return err
		}
		app.logger.Debug("Read outcomes", "file", path, "contests", l.Len())
		combined.Extend(l)
	}

	if combined.IsEmpty() {
		app.logger.Warn("No outcomes recorded", "files", len(cmd.Files))
	}

	if cmd.HeadsUp {
		return app.render(func(r *report.Reporter, jsonOut bool) error {
			if jsonOut {
				return r.WriteHeadsUpJSON(combined.HeadsUp())
			}
			return r.WriteHeadsUp(combined.HeadsUp())
		})
	}

	seats := cmd.Seats
	if seats == 0 {
		seats = len(app.cfg.Players)
	}
	if seats == 0 {
		seats = highestSeat(combined)
	}
	if seats < 0 || seats > wins.MaxPlayers {
		return fmt.Errorf("seats must be between 1 and %d, got %d", wins.MaxPlayers, seats)
	}

	results := wins.FromLog(combined, seats)
	return app.render(func(r *report.Reporter, jsonOut bool) error {
		if jsonOut {
			return r.WriteResultsJSON(results)
		}
		return r.WriteResults(results)
	})
}

// highestSeat returns the 1-based highest seat that ever placed first.
func highestSeat(l *wins.Log) int {
	var seen wins.Flag
	for _, f := range l.Flags() {
		seen |= f
	}
	return bits.Len16(uint16(seen))
}
