package app

import (
	"flag"

	"bitlife/pkg/core"
	"bitlife/pkg/sims/life"
)

// Config represents the command-line parameters shared by the executables.
type Config struct {
	Scenario string

	Width  int
	Height int
	Fill   string
	Legacy bool
	Seed   int64

	Scale int
	TPS   int

	LogLevel  string
	LogFormat string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Width:     d.Width,
		Height:    d.Height,
		Fill:      string(d.Fill),
		Seed:      d.Seed,
		Scale:     8,
		TPS:       30,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "HCL scenario file; overrides the grid flags")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Fill, "fill", c.Fill, "initial fill: demo, dead, random or noise")
	fs.BoolVar(&c.Legacy, "legacy", c.Legacy, "reproduce legacy set-cells and resize behavior")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random and noise fills")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
}

// LifeConfig translates the grid flags into a universe configuration.
func (c *Config) LifeConfig() (life.Config, error) {
	lc := life.DefaultConfig()
	if c.Legacy {
		lc = life.LegacyConfig()
	}
	lc.Width = c.Width
	lc.Height = c.Height
	lc.Seed = c.Seed
	mode, err := core.ParseFillMode(c.Fill)
	if err != nil {
		return life.Config{}, err
	}
	lc.Fill = mode
	return lc, nil
}
