// Command life-bench times Universe.Tick across grid sizes and fills. Each
// scenario runs on its own universe, owned by one worker goroutine.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"bitlife/internal/app"
	"bitlife/internal/ctxlog"
	"bitlife/internal/runner"
	"bitlife/pkg/core"
	"bitlife/pkg/sims/life"
)

type scenario struct {
	size core.Size
	fill core.FillMode
}

func (s scenario) String() string {
	return fmt.Sprintf("%dx%d/%s", s.size.W, s.size.H, s.fill)
}

type scenarioResult struct {
	scenario   scenario
	steps      int
	mean       time.Duration
	slowest    time.Duration
	population int
	err        error
}

// nsPerCell normalises the mean step time by grid area.
func (r scenarioResult) nsPerCell() float64 {
	area := r.scenario.size.Area()
	if area == 0 {
		return 0
	}
	return float64(r.mean.Nanoseconds()) / float64(area)
}

func main() {
	steps := flag.Int("steps", 200, "ticks to run per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	sizes := flag.String("sizes", "64x64,128x128,256x256", "comma separated WxH grid sizes")
	fills := flag.String("fills", "demo,random,noise", "comma separated fill modes")
	seed := flag.Int64("seed", 42, "seed for random and noise fills")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()

	logger := app.NewLogger(*logLevel, "text", os.Stderr)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	sets, err := buildScenarios(*sizes, *fills)
	if err != nil {
		logger.Error("parse flags", "err", err)
		os.Exit(2)
	}

	fmt.Printf("Timing %d scenarios (%d workers, %d steps)\n", len(sets), *workers, *steps)
	start := time.Now()
	results := sweep(ctx, sets, *workers, *steps, *seed)
	report(os.Stdout, results, time.Since(start))
}

func buildScenarios(sizes, fills string) ([]scenario, error) {
	var modes []core.FillMode
	for _, name := range strings.Split(fills, ",") {
		mode, err := core.ParseFillMode(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		modes = append(modes, mode)
	}
	var sets []scenario
	for _, spec := range strings.Split(sizes, ",") {
		size, err := parseSize(strings.TrimSpace(spec))
		if err != nil {
			return nil, err
		}
		for _, mode := range modes {
			sets = append(sets, scenario{size: size, fill: mode})
		}
	}
	return sets, nil
}

func parseSize(spec string) (core.Size, error) {
	w, h, ok := strings.Cut(spec, "x")
	if !ok {
		return core.Size{}, fmt.Errorf("size %q: want WxH", spec)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return core.Size{}, fmt.Errorf("size %q: %w", spec, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return core.Size{}, fmt.Errorf("size %q: %w", spec, err)
	}
	size := core.Size{W: width, H: height}
	if !size.Valid() {
		return core.Size{}, fmt.Errorf("size %q: %w", spec, core.ErrInvalidDimensions)
	}
	return size, nil
}

func sweep(ctx context.Context, sets []scenario, workers, steps int, seed int64) []scenarioResult {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(ctx, sc, steps, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].nsPerCell() < all[j].nsPerCell() })
	return all
}

func runScenario(ctx context.Context, sc scenario, steps int, seed int64) scenarioResult {
	cfg := life.DefaultConfig()
	cfg.Width = sc.size.W
	cfg.Height = sc.size.H
	cfg.Fill = sc.fill
	cfg.Seed = seed

	res := scenarioResult{scenario: sc}
	universe, err := life.NewWithConfig(cfg)
	if err != nil {
		res.err = err
		return res
	}
	stats, err := runner.Run(ctx, universe, runner.Options{Generations: steps})
	res.steps = stats.Generations
	res.mean = stats.Mean()
	res.slowest = stats.Slowest
	res.population = universe.Population()
	res.err = err
	return res
}

func report(w io.Writer, results []scenarioResult, elapsed time.Duration) {
	fmt.Fprintf(w, "\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range results {
		if res.err != nil {
			fmt.Fprintf(w, "%2d) %-18s error: %v\n", i+1, res.scenario, res.err)
			continue
		}
		fmt.Fprintf(w, "%2d) %-18s steps=%d mean=%s slowest=%s ns/cell=%.2f population=%d\n",
			i+1, res.scenario, res.steps, res.mean, res.slowest, res.nsPerCell(), res.population)
	}
}
