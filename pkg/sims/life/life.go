// Package life implements Conway's Game of Life on a toroidal grid whose
// cells are packed one bit per cell, row-major, so a renderer can read the
// storage words directly.
package life

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"bitlife/pkg/core"
)

// Coord addresses a cell by row and column, both zero-based.
type Coord struct {
	Row int
	Col int
}

// Universe is a Game of Life grid with toroidal wrapping. It is not safe for
// concurrent use; a single owner drives it.
type Universe struct {
	cfg Config

	width, height int
	cells         *bitset.BitSet
	next          *bitset.BitSet
	generation    uint64
}

// New returns a universe of the given size seeded with the demo pattern.
func New(width, height int) (*Universe, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	return NewWithConfig(cfg)
}

// NewWithConfig returns a universe configured from the provided options.
func NewWithConfig(cfg Config) (*Universe, error) {
	if err := checkDimensions(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	u := &Universe{cfg: cfg, width: cfg.Width, height: cfg.Height}
	u.reallocate(cfg.Fill, cfg.Seed)
	return u, nil
}

func checkDimensions(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", core.ErrInvalidDimensions, w, h)
	}
	return nil
}

// reallocate replaces both buffers with fresh ones sized to the current
// dimensions and seeds the front buffer.
func (u *Universe) reallocate(mode core.FillMode, seed int64) {
	n := uint(u.width * u.height)
	u.cells = bitset.New(n)
	u.next = bitset.New(n)
	fill := core.Filler(mode, u.Size(), seed)
	for i := uint(0); i < n; i++ {
		if fill(int(i)) {
			u.cells.Set(i)
		}
	}
	u.generation = 0
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "life" }

// Config returns the options the universe was built with.
func (u *Universe) Config() Config { return u.cfg }

// Width returns the number of columns.
func (u *Universe) Width() int { return u.width }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.height }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.width, H: u.height} }

// Generation returns the number of ticks since construction, reset or resize.
func (u *Universe) Generation() uint64 { return u.generation }

// Index returns the bit index of (row, col). It performs no bounds check.
func (u *Universe) Index(row, col int) int { return row*u.width + col }

// Contains reports whether (row, col) lies inside the grid.
func (u *Universe) Contains(row, col int) bool { return u.Size().Contains(row, col) }

// Alive reports whether the cell at (row, col) is alive. Coordinates outside
// the grid read as dead.
func (u *Universe) Alive(row, col int) bool {
	if !u.Contains(row, col) {
		return false
	}
	return u.cells.Test(uint(u.Index(row, col)))
}

// Population returns the number of live cells.
func (u *Universe) Population() int { return int(u.cells.Count()) }

// LiveNeighborCount sums the live cells around (row, col) with toroidal
// wrapping. The row offsets are {height-1, 0, 1} and the column offsets
// {width-1, 0, 1}; only a pair of literal zeros is skipped, so on grids one
// or two cells wide the same neighbor can be counted more than once.
func (u *Universe) LiveNeighborCount(row, col int) int {
	rowDeltas := [3]int{u.height - 1, 0, 1}
	colDeltas := [3]int{u.width - 1, 0, 1}
	count := 0
	for _, dr := range rowDeltas {
		for _, dc := range colDeltas {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr) % u.height
			c := (col + dc) % u.width
			if u.cells.Test(uint(u.Index(r, c))) {
				count++
			}
		}
	}
	return count
}

// Tick advances the universe by one generation. The next state is written
// into a back buffer which then replaces the visible one, so reads during the
// pass always see the current generation.
func (u *Universe) Tick() {
	n := uint(u.width * u.height)
	if u.next.Len() != n {
		u.next = bitset.New(n)
	}
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			idx := uint(u.Index(row, col))
			alive := u.cells.Test(idx)
			u.next.SetTo(idx, nextState(alive, u.LiveNeighborCount(row, col)))
		}
	}
	u.cells, u.next = u.next, u.cells
	u.generation++
}

// Step advances the simulation by one generation.
func (u *Universe) Step() { u.Tick() }

func nextState(alive bool, neighbors int) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive && neighbors > 3:
		return false
	case !alive && neighbors == 3:
		return true
	}
	return alive
}

// SetCells marks the given cells alive and leaves every other cell as it
// was. All coordinates are validated before any bit is written; one out of
// range coordinate fails the whole call with core.ErrOutOfRange.
//
// With Config.LegacySetCells the call instead replaces the buffer with one
// sized to len(coords), setting bit row*width+col of it to the demo pattern
// value for that index. See setCellsLegacy.
func (u *Universe) SetCells(coords []Coord) error {
	if u.cfg.LegacySetCells {
		return u.setCellsLegacy(coords)
	}
	for _, c := range coords {
		if !u.Contains(c.Row, c.Col) {
			return fmt.Errorf("set cells: (%d,%d) outside %dx%d: %w", c.Row, c.Col, u.width, u.height, core.ErrOutOfRange)
		}
	}
	for _, c := range coords {
		u.cells.Set(uint(u.Index(c.Row, c.Col)))
	}
	return nil
}

// setCellsLegacy keeps compatibility with golden outputs recorded against
// the old bulk-set. The resulting buffer is len(coords) bits long until the
// next Tick, Reset or resize restores width*height. An index that does not
// fit the shortened buffer is rejected and the grid is left untouched.
func (u *Universe) setCellsLegacy(coords []Coord) error {
	n := uint(len(coords))
	cells := bitset.New(n)
	for _, c := range coords {
		idx := c.Row*u.width + c.Col
		if c.Row < 0 || c.Col < 0 || uint(idx) >= n {
			return fmt.Errorf("set cells (legacy): index %d of (%d,%d) exceeds %d bits: %w", idx, c.Row, c.Col, n, core.ErrOutOfRange)
		}
		cells.SetTo(uint(idx), core.DemoFill(idx))
	}
	u.cells = cells
	return nil
}

// Toggle flips the state of a single cell.
func (u *Universe) Toggle(row, col int) error {
	if !u.Contains(row, col) || uint(u.Index(row, col)) >= u.cells.Len() {
		return fmt.Errorf("toggle: (%d,%d) outside %dx%d: %w", row, col, u.width, u.height, core.ErrOutOfRange)
	}
	u.cells.Flip(uint(u.Index(row, col)))
	return nil
}

// SetWidth changes the number of columns and reallocates the grid, seeding it
// with Config.ResizeFill.
func (u *Universe) SetWidth(width int) error {
	if err := checkDimensions(width, u.height); err != nil {
		return err
	}
	u.width = width
	u.reallocate(u.cfg.ResizeFill, u.cfg.Seed)
	return nil
}

// SetHeight changes the number of rows and reallocates the grid, seeding it
// with Config.ResizeFill.
func (u *Universe) SetHeight(height int) error {
	if err := checkDimensions(u.width, height); err != nil {
		return err
	}
	u.height = height
	u.reallocate(u.cfg.ResizeFill, u.cfg.Seed)
	return nil
}

// Reset reseeds the grid with Config.Fill using the provided seed.
func (u *Universe) Reset(seed int64) {
	u.reallocate(u.cfg.Fill, seed)
}

// Cells exposes the packed storage words without copying. Bit i of the
// sequence is bit i%64 of word i/64 and addresses cell (i/width, i%width).
//
// The returned slice aliases the universe and is only valid until the next
// Tick, SetCells, Toggle, Reset, SetWidth or SetHeight. Buffers are reused
// across ticks, so a stale slice may show a later generation instead of
// failing. Use CellsCopy when the data must outlive the next mutation.
func (u *Universe) Cells() []uint64 { return u.cells.Bytes() }

// CellsCopy returns a private copy of the packed storage words.
func (u *Universe) CellsCopy() []uint64 {
	return append([]uint64(nil), u.cells.Bytes()...)
}

const (
	aliveGlyph = '◻'
	deadGlyph  = '◼'
)

// String renders the grid one row per line.
func (u *Universe) String() string {
	var b strings.Builder
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			if u.cells.Test(uint(u.Index(row, col))) {
				b.WriteRune(aliveGlyph)
			} else {
				b.WriteRune(deadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		u, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return u, nil
	})
}
