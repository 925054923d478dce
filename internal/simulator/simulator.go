// Package simulator runs contests across worker goroutines and collects the
// outcomes into a single wins.Log.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/wincounter/internal/randutil"
	"github.com/lox/wincounter/wins"
)

// checkInterval is how many contests a worker plays between context checks.
const checkInterval = 1024

// Config holds configuration for running simulations
type Config struct {
	Contests int
	Workers  int
	Seed     int64
	Logger   *log.Logger
	Clock    quartz.Clock
}

// Result is the merged outcome of a run.
type Result struct {
	Log      *wins.Log
	Workers  int
	Duration time.Duration
}

// Simulator plays contests in parallel
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Simulator{config: config, logger: logger, clock: clock}
}

// Run plays Config.Contests contests of c. Each worker records into its own
// log seeded from Config.Seed and its worker index, and the logs are joined
// in worker order once every worker has finished, so a given seed and
// worker count always produce the same log.
func (s *Simulator) Run(ctx context.Context, c Contest) (*Result, error) {
	if c == nil {
		return nil, errors.New("simulator: nil contest")
	}
	if v, ok := c.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	if s.config.Contests < 0 {
		return nil, fmt.Errorf("simulator: contests must not be negative, got %d", s.config.Contests)
	}

	workers := max(s.config.Workers, 1)
	perWorker := s.config.Contests / workers
	remainder := s.config.Contests % workers

	start := s.clock.Now()
	s.logger.Debug("Starting simulation", "contests", s.config.Contests, "workers", workers, "seed", s.config.Seed)

	logs := make([]*wins.Log, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := perWorker
		if w < remainder {
			n++
		}

		g.Go(func() error {
			rng := randutil.Stream(s.config.Seed, w)
			l := &wins.Log{}
			for i := range n {
				if i%checkInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				l.Add(c.Play(rng))
			}
			logs[w] = l
			s.logger.Debug("Worker finished", "worker", w, "contests", n)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("simulation aborted: %w", err)
	}

	merged := &wins.Log{}
	for _, l := range logs {
		merged.Extend(l)
	}

	duration := s.clock.Since(start)
	s.logger.Info("Simulation complete", "contests", merged.Len(), "duration", duration)

	return &Result{Log: merged, Workers: workers, Duration: duration}, nil
}

// RunDice is a convenience function for simulating a dice contest
func RunDice(ctx context.Context, players, faces int, config Config) (*Result, error) {
	return New(config).Run(ctx, Dice{Players: players, Faces: faces})
}
