// Package runner drives a simulation headlessly: it steps it for a number of
// generations, optionally paced to a ticks-per-second rate, timing each step.
package runner

import (
	"context"
	"time"

	"bitlife/internal/ctxlog"
	"bitlife/pkg/core"
)

// Options controls a Run.
type Options struct {
	// Generations to run. Zero runs until the context is cancelled.
	Generations int
	// TPS paces the run. Zero steps as fast as possible.
	TPS int
	// OnFrame, if set, is called after every step. Returning an error stops
	// the run.
	OnFrame func(sim core.Sim, generation int) error
}

// Stats summarises a run.
type Stats struct {
	Generations int
	Total       time.Duration
	Slowest     time.Duration
}

// Mean returns the average step duration.
func (s Stats) Mean() time.Duration {
	if s.Generations == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Generations)
}

// Run steps sim until opts.Generations is reached, OnFrame fails, or ctx is
// done. Cancellation is only observed between steps.
func Run(ctx context.Context, sim core.Sim, opts Options) (Stats, error) {
	logger := ctxlog.FromContext(ctx).With("sim", sim.Name())

	var pacer *FixedStep
	if opts.TPS > 0 {
		pacer = NewFixedStep(opts.TPS)
	}

	var stats Stats
	for opts.Generations <= 0 || stats.Generations < opts.Generations {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if pacer != nil {
			if err := waitStep(ctx, pacer); err != nil {
				return stats, err
			}
		}

		elapsed := core.Timed(logger, "step", sim.Step)
		stats.Generations++
		stats.Total += elapsed
		if elapsed > stats.Slowest {
			stats.Slowest = elapsed
		}

		if opts.OnFrame != nil {
			if err := opts.OnFrame(sim, stats.Generations); err != nil {
				return stats, err
			}
		}
	}
	logger.Info("run complete", "generations", stats.Generations, "mean", stats.Mean(), "slowest", stats.Slowest)
	return stats, nil
}

func waitStep(ctx context.Context, pacer *FixedStep) error {
	for !pacer.ShouldStep() {
		timer := time.NewTimer(pacer.Remaining())
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}
