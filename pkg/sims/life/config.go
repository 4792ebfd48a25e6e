package life

import (
	"strconv"

	"bitlife/pkg/core"
)

// Config holds parameters for the Life universe.
type Config struct {
	Width  int
	Height int

	// Fill seeds the grid at construction and on Reset.
	Fill core.FillMode
	// ResizeFill seeds the grid after SetWidth or SetHeight. FillDead
	// matches the documented "resize clears the grid" contract; FillDemo
	// reproduces the legacy refill with the construction pattern.
	ResizeFill core.FillMode
	// LegacySetCells switches SetCells to the legacy behavior that rebuilds
	// the buffer sized to the coordinate count. Only golden-output
	// compatibility tests should enable it.
	LegacySetCells bool

	Seed int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:      64,
		Height:     64,
		Fill:       core.FillDemo,
		ResizeFill: core.FillDead,
		Seed:       42,
	}
}

// LegacyConfig returns a configuration that mirrors the legacy behavior of
// SetCells and the resize methods.
func LegacyConfig() Config {
	c := DefaultConfig()
	c.ResizeFill = core.FillDemo
	c.LegacySetCells = true
	return c
}

// FromMap populates a Config from a string map. Invalid entries are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if mode, err := core.ParseFillMode(v); err == nil {
			c.Fill = mode
		}
	}
	if v, ok := cfg["resize_fill"]; ok {
		if mode, err := core.ParseFillMode(v); err == nil {
			c.ResizeFill = mode
		}
	}
	if v, ok := cfg["legacy_set_cells"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.LegacySetCells = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
