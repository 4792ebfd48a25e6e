package runner

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitlife/internal/ctxlog"
	"bitlife/pkg/core"
	"bitlife/pkg/sims/life"
)

func blinker(t *testing.T) *life.Universe {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 5, 5
	cfg.Fill = core.FillDead
	u, err := life.NewWithConfig(cfg)
	require.NoError(t, err)
	require.NoError(t, u.SetCells([]life.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}}))
	return u
}

func TestRunGenerations(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	u := blinker(t)
	var frames []int
	stats, err := Run(ctx, u, Options{
		Generations: 4,
		OnFrame: func(sim core.Sim, gen int) error {
			frames = append(frames, gen)
			return nil
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Generations)
	assert.Equal(t, []int{1, 2, 3, 4}, frames)
	assert.Equal(t, uint64(4), u.Generation())
	assert.True(t, u.Alive(1, 2), "blinker has period two")
	assert.GreaterOrEqual(t, stats.Total, stats.Slowest)
	assert.Contains(t, buf.String(), "label=step")
	assert.Contains(t, buf.String(), "run complete")
}

func TestRunStopsOnFrameError(t *testing.T) {
	boom := errors.New("boom")
	stats, err := Run(context.Background(), blinker(t), Options{
		OnFrame: func(_ core.Sim, gen int) error {
			if gen == 3 {
				return boom
			}
			return nil
		},
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, stats.Generations)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stats, err := Run(ctx, blinker(t), Options{
		OnFrame: func(_ core.Sim, gen int) error {
			if gen == 5 {
				cancel()
			}
			return nil
		},
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 5, stats.Generations)
}

func TestRunPacedCancelWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stats, err := Run(ctx, blinker(t), Options{
		TPS: 1,
		OnFrame: func(core.Sim, int) error {
			cancel()
			return nil
		},
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, stats.Generations)
}

func TestStatsMean(t *testing.T) {
	assert.Zero(t, Stats{}.Mean())
	assert.Equal(t, int64(5), Stats{Generations: 2, Total: 10}.Mean().Nanoseconds())
}
