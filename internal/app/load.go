package app

import (
	"context"

	"bitlife/internal/ctxlog"
	"bitlife/internal/scenario"
	"bitlife/pkg/sims/life"
)

// Load builds the universe described by the scenario file, or by the grid
// flags when no scenario is given.
func (c *Config) Load(ctx context.Context) (*life.Universe, error) {
	logger := ctxlog.FromContext(ctx)
	if c.Scenario != "" {
		sc, err := scenario.Load(c.Scenario)
		if err != nil {
			return nil, err
		}
		logger.Debug("scenario loaded", "path", c.Scenario, "patterns", len(sc.Patterns))
		return sc.Universe()
	}

	lc, err := c.LifeConfig()
	if err != nil {
		return nil, err
	}
	return life.NewWithConfig(lc)
}
