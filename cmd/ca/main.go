//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"bitlife/internal/app"
	"bitlife/internal/ctxlog"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	universe, err := cfg.Load(ctx)
	if err != nil {
		logger.Error("load universe", "err", err)
		os.Exit(1)
	}

	game := app.New(universe, cfg.Scale, cfg.Seed, logger)

	ebiten.SetWindowTitle("bitlife - " + universe.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("run game", slog.Any("err", err))
		os.Exit(1)
	}
}
