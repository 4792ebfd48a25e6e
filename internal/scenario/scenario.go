// Package scenario loads HCL files describing a starting universe: its
// dimensions, seeding options and a list of named patterns stamped onto the
// grid.
//
//	width  = 64
//	height = default.height / 2
//	fill   = "dead"
//
//	pattern "glider" {
//	  offset = [1, 1]
//	  cells  = [[0, 1], [1, 2], [2, 0], [2, 1], [2, 2]]
//	}
//
// legacy_set_cells = true selects the same legacy behavior as the -legacy
// flag, including the demo refill on resize unless resize_fill overrides it.
package scenario

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"bitlife/pkg/core"
	"bitlife/pkg/sims/life"
)

type fileSpec struct {
	Width          *int          `hcl:"width,optional"`
	Height         *int          `hcl:"height,optional"`
	Fill           string        `hcl:"fill,optional"`
	ResizeFill     string        `hcl:"resize_fill,optional"`
	LegacySetCells bool          `hcl:"legacy_set_cells,optional"`
	Seed           *int64        `hcl:"seed,optional"`
	Patterns       []patternSpec `hcl:"pattern,block"`
}

type patternSpec struct {
	Name   string  `hcl:"name,label"`
	Offset []int   `hcl:"offset,optional"`
	Cells  [][]int `hcl:"cells"`
}

// Pattern is a named set of cells already translated into grid coordinates.
type Pattern struct {
	Name  string
	Cells []life.Coord
}

// Scenario is a decoded scenario file.
type Scenario struct {
	Config   life.Config
	Patterns []Pattern
}

// Load reads and decodes the scenario at path.
func Load(path string) (*Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes scenario source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse scenario %s: %w", filename, diags)
	}

	defaults := life.DefaultConfig()
	var spec fileSpec
	if diags := gohcl.DecodeBody(f.Body, evalContext(defaults), &spec); diags.HasErrors() {
		return nil, fmt.Errorf("decode scenario %s: %w", filename, diags)
	}
	return build(spec, defaults)
}

// evalContext exposes the built-in defaults so files can scale from them,
// e.g. `width = default.width * 2`.
func evalContext(defaults life.Config) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default": cty.ObjectVal(map[string]cty.Value{
				"width":  cty.NumberIntVal(int64(defaults.Width)),
				"height": cty.NumberIntVal(int64(defaults.Height)),
				"seed":   cty.NumberIntVal(defaults.Seed),
			}),
		},
	}
}

func build(spec fileSpec, cfg life.Config) (*Scenario, error) {
	if spec.LegacySetCells {
		legacy := life.LegacyConfig()
		cfg.ResizeFill = legacy.ResizeFill
		cfg.LegacySetCells = legacy.LegacySetCells
	}
	if spec.Width != nil {
		cfg.Width = *spec.Width
	}
	if spec.Height != nil {
		cfg.Height = *spec.Height
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("scenario: %w: %dx%d", core.ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	if spec.Fill != "" {
		mode, err := core.ParseFillMode(spec.Fill)
		if err != nil {
			return nil, fmt.Errorf("scenario fill: %w", err)
		}
		cfg.Fill = mode
	}
	if spec.ResizeFill != "" {
		mode, err := core.ParseFillMode(spec.ResizeFill)
		if err != nil {
			return nil, fmt.Errorf("scenario resize_fill: %w", err)
		}
		cfg.ResizeFill = mode
	}
	if spec.Seed != nil {
		cfg.Seed = *spec.Seed
	}

	size := core.Size{W: cfg.Width, H: cfg.Height}
	sc := &Scenario{Config: cfg}
	for _, ps := range spec.Patterns {
		p, err := resolvePattern(ps, size)
		if err != nil {
			return nil, err
		}
		sc.Patterns = append(sc.Patterns, p)
	}
	return sc, nil
}

func resolvePattern(ps patternSpec, size core.Size) (Pattern, error) {
	var offRow, offCol int
	switch len(ps.Offset) {
	case 0:
	case 2:
		offRow, offCol = ps.Offset[0], ps.Offset[1]
	default:
		return Pattern{}, fmt.Errorf("pattern %q: offset must be [row, col], got %d values", ps.Name, len(ps.Offset))
	}

	p := Pattern{Name: ps.Name, Cells: make([]life.Coord, 0, len(ps.Cells))}
	for i, cell := range ps.Cells {
		if len(cell) != 2 {
			return Pattern{}, fmt.Errorf("pattern %q: cell %d must be [row, col], got %d values", ps.Name, i, len(cell))
		}
		row, col := size.Wrap(cell[0]+offRow, cell[1]+offCol)
		p.Cells = append(p.Cells, life.Coord{Row: row, Col: col})
	}
	return p, nil
}

// Apply stamps every pattern onto u in file order.
func (s *Scenario) Apply(u *life.Universe) error {
	for _, p := range s.Patterns {
		if err := u.SetCells(p.Cells); err != nil {
			return fmt.Errorf("pattern %q: %w", p.Name, err)
		}
	}
	return nil
}

// Universe builds a universe from the scenario's config and applies its
// patterns.
func (s *Scenario) Universe() (*life.Universe, error) {
	u, err := life.NewWithConfig(s.Config)
	if err != nil {
		return nil, err
	}
	if err := s.Apply(u); err != nil {
		return nil, err
	}
	return u, nil
}
