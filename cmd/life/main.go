// Command life runs a universe headlessly and prints it as text.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"bitlife/internal/app"
	"bitlife/internal/ctxlog"
	"bitlife/internal/runner"
	"bitlife/pkg/core"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 0
	cfg.Bind(flag.CommandLine)
	gens := flag.Int("gens", 100, "generations to run; 0 runs until interrupted")
	every := flag.Int("print-every", 0, "print the grid every N generations; 0 prints only the final grid")
	flag.Parse()

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = ctxlog.WithLogger(ctx, logger)

	if err := run(ctx, cfg, *gens, *every, os.Stdout); err != nil {
		logger.Error("life", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *app.Config, gens, every int, out io.Writer) error {
	universe, err := cfg.Load(ctx)
	if err != nil {
		return err
	}

	opts := runner.Options{Generations: gens, TPS: cfg.TPS}
	if every > 0 {
		opts.OnFrame = func(sim core.Sim, gen int) error {
			if gen%every != 0 {
				return nil
			}
			_, err := fmt.Fprintf(out, "generation %d\n%s\n", gen, universe)
			return err
		}
	}

	stats, err := runner.Run(ctx, universe, opts)
	if err != nil && ctx.Err() == nil {
		return err
	}
	if every <= 0 {
		if _, err := fmt.Fprintf(out, "generation %d\n%s", universe.Generation(), universe); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "population %d after %d generations (mean step %s)\n", universe.Population(), stats.Generations, stats.Mean())
	return err
}
