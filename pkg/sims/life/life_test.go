package life

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitlife/pkg/core"
)

func newDead(t *testing.T, w, h int) *Universe {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Fill = core.FillDead
	u, err := NewWithConfig(cfg)
	require.NoError(t, err)
	return u
}

func liveCoords(u *Universe) []Coord {
	var out []Coord
	for row := 0; row < u.Height(); row++ {
		for col := 0; col < u.Width(); col++ {
			if u.Alive(row, col) {
				out = append(out, Coord{Row: row, Col: col})
			}
		}
	}
	return out
}

func TestNewSeedsDemoPattern(t *testing.T) {
	u, err := New(3, 3)
	require.NoError(t, err)

	// Bits 0, 2, 4, 6, 7 and 8 are divisible by 2 or 7.
	assert.Equal(t, []uint64{0b111010101}, u.Cells())
	assert.Equal(t, 6, u.Population())
	assert.Equal(t, uint64(0), u.Generation())
}

func TestNewDefaultSize(t *testing.T) {
	u, err := NewWithConfig(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 64, H: 64}, u.Size())
	assert.Len(t, u.Cells(), 64)
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {0, 0}, {-1, 3}} {
		_, err := New(dims[0], dims[1])
		require.Error(t, err, "dims %v", dims)
		assert.True(t, errors.Is(err, core.ErrInvalidDimensions), "dims %v: %v", dims, err)
	}
}

func TestIndexIsRowMajor(t *testing.T) {
	u := newDead(t, 5, 3)
	assert.Equal(t, 0, u.Index(0, 0))
	assert.Equal(t, 4, u.Index(0, 4))
	assert.Equal(t, 5, u.Index(1, 0))
	assert.Equal(t, 14, u.Index(2, 4))
}

func TestNeighborCountWrapsDiagonally(t *testing.T) {
	u := newDead(t, 5, 4)
	require.NoError(t, u.SetCells([]Coord{{Row: 3, Col: 4}}))

	assert.Equal(t, 1, u.LiveNeighborCount(0, 0))
	assert.Equal(t, 1, u.LiveNeighborCount(3, 0))
	assert.Equal(t, 1, u.LiveNeighborCount(0, 4))
	assert.Equal(t, 0, u.LiveNeighborCount(1, 1))
	assert.Equal(t, 0, u.LiveNeighborCount(3, 4), "a cell is not its own neighbor")
}

func TestNeighborCountSingleCellGrid(t *testing.T) {
	u, err := New(1, 1)
	require.NoError(t, err)
	require.True(t, u.Alive(0, 0))

	// Offsets {0,0,1} x {0,0,1}: four literal (0,0) pairs are skipped and the
	// remaining five all land on the cell itself.
	assert.Equal(t, 5, u.LiveNeighborCount(0, 0))

	u.Tick()
	assert.False(t, u.Alive(0, 0), "five neighbors is overpopulation")
}

func TestNeighborCountTwoByTwoCountsRepeatedly(t *testing.T) {
	u := newDead(t, 2, 2)
	require.NoError(t, u.SetCells([]Coord{{Row: 1, Col: 1}}))
	assert.Equal(t, 4, u.LiveNeighborCount(0, 0))

	u = newDead(t, 2, 2)
	require.NoError(t, u.SetCells([]Coord{{Row: 0, Col: 1}}))
	assert.Equal(t, 2, u.LiveNeighborCount(0, 0))
}

func TestTickRules(t *testing.T) {
	tests := []struct {
		name      string
		alive     bool
		neighbors int
		want      bool
	}{
		{"alive with none dies", true, 0, false},
		{"alive with one dies", true, 1, false},
		{"alive with two lives", true, 2, true},
		{"alive with three lives", true, 3, true},
		{"alive with four dies", true, 4, false},
		{"alive with eight dies", true, 8, false},
		{"dead with three is born", false, 3, true},
		{"dead with two stays dead", false, 2, false},
		{"dead with four stays dead", false, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextState(tt.alive, tt.neighbors))
		})
	}
}

func TestTickAllDeadStaysDead(t *testing.T) {
	u := newDead(t, 7, 5)
	for i := 0; i < 3; i++ {
		u.Tick()
		assert.Zero(t, u.Population())
	}
	assert.Equal(t, uint64(3), u.Generation())
}

func TestTickPreservesDimensions(t *testing.T) {
	u, err := New(13, 9)
	require.NoError(t, err)
	words := len(u.Cells())
	for i := 0; i < 10; i++ {
		u.Tick()
		require.Equal(t, 13, u.Width())
		require.Equal(t, 9, u.Height())
		require.Len(t, u.Cells(), words)
		require.Equal(t, uint(13*9), u.cells.Len())
	}
}

func TestIsolatedCenterDies(t *testing.T) {
	u := newDead(t, 3, 3)
	require.NoError(t, u.SetCells([]Coord{{Row: 1, Col: 1}}))
	u.Tick()
	assert.Zero(t, u.Population())
}

func TestThreeByThreeMiddleRowGolden(t *testing.T) {
	u := newDead(t, 3, 3)
	require.NoError(t, u.SetCells([]Coord{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}))
	require.Equal(t, []uint64{0b000111000}, u.Cells())

	// On a 3x3 torus every other cell is a neighbor: live cells see two,
	// dead cells see three, so the whole grid fills.
	u.Tick()
	assert.Equal(t, []uint64{0b111111111}, u.Cells())

	// Eight neighbors each: everything dies.
	u.Tick()
	assert.Equal(t, []uint64{0}, u.Cells())
}

func TestBlinkerOscillation(t *testing.T) {
	u := newDead(t, 5, 5)
	vertical := []Coord{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}}
	horizontal := []Coord{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}}
	require.NoError(t, u.SetCells(vertical))

	u.Tick()
	if diff := cmp.Diff(horizontal, liveCoords(u)); diff != "" {
		t.Fatalf("after first step (-want +got):\n%s", diff)
	}

	u.Tick()
	if diff := cmp.Diff(vertical, liveCoords(u)); diff != "" {
		t.Fatalf("after second step (-want +got):\n%s", diff)
	}
}

func TestGliderWrapsAroundTorus(t *testing.T) {
	u := newDead(t, 8, 8)
	glider := []Coord{{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}
	require.NoError(t, u.SetCells(glider))
	start := u.CellsCopy()

	for i := 0; i < 4; i++ {
		u.Tick()
	}
	shifted := []Coord{{Row: 1, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}}
	if diff := cmp.Diff(shifted, liveCoords(u)); diff != "" {
		t.Fatalf("glider after 4 steps (-want +got):\n%s", diff)
	}

	for i := 4; i < 32; i++ {
		u.Tick()
	}
	assert.Equal(t, start, u.Cells(), "glider should return home after 32 steps on an 8x8 torus")
}

func TestSetCellsLeavesOthersUnchanged(t *testing.T) {
	u, err := New(4, 4)
	require.NoError(t, err)
	before := u.CellsCopy()

	require.NoError(t, u.SetCells([]Coord{{Row: 0, Col: 1}, {Row: 3, Col: 3}}))
	assert.True(t, u.Alive(0, 1))
	assert.True(t, u.Alive(3, 3))
	for i := 0; i < 16; i++ {
		if i == 1 || i == 15 {
			continue
		}
		assert.Equal(t, core.Bit(before, i), core.Bit(u.Cells(), i), "bit %d", i)
	}
	assert.Equal(t, uint(16), u.cells.Len())
}

func TestSetCellsEmptyIsNoop(t *testing.T) {
	u, err := New(6, 6)
	require.NoError(t, err)
	before := u.CellsCopy()
	require.NoError(t, u.SetCells(nil))
	assert.Equal(t, before, u.Cells())
}

func TestSetCellsRejectsOutOfRangeAtomically(t *testing.T) {
	u := newDead(t, 4, 4)
	err := u.SetCells([]Coord{{Row: 0, Col: 0}, {Row: 4, Col: 0}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrOutOfRange))
	assert.Zero(t, u.Population(), "no bit may be written when any coordinate is invalid")

	err = u.SetCells([]Coord{{Row: 0, Col: -1}})
	assert.True(t, errors.Is(err, core.ErrOutOfRange))
}

func TestToggle(t *testing.T) {
	u := newDead(t, 3, 2)
	require.NoError(t, u.Toggle(1, 2))
	assert.True(t, u.Alive(1, 2))
	require.NoError(t, u.Toggle(1, 2))
	assert.False(t, u.Alive(1, 2))

	err := u.Toggle(2, 0)
	assert.True(t, errors.Is(err, core.ErrOutOfRange))
}

func TestResizeClearsByDefault(t *testing.T) {
	u, err := New(4, 4)
	require.NoError(t, err)
	u.Tick()

	require.NoError(t, u.SetWidth(10))
	assert.Equal(t, 10, u.Width())
	assert.Equal(t, uint(40), u.cells.Len())
	assert.Len(t, u.Cells(), core.WordsFor(40))
	assert.Zero(t, u.Population())
	assert.Equal(t, uint64(0), u.Generation())

	require.NoError(t, u.SetHeight(70))
	assert.Equal(t, uint(700), u.cells.Len())
	assert.Len(t, u.Cells(), core.WordsFor(700))
	assert.Zero(t, u.Population())

	u.Tick()
	assert.Equal(t, uint(700), u.cells.Len())
}

func TestResizeRejectsInvalidDimensions(t *testing.T) {
	u, err := New(4, 4)
	require.NoError(t, err)
	before := u.CellsCopy()

	assert.True(t, errors.Is(u.SetWidth(0), core.ErrInvalidDimensions))
	assert.True(t, errors.Is(u.SetHeight(-2), core.ErrInvalidDimensions))
	assert.Equal(t, 4, u.Width())
	assert.Equal(t, 4, u.Height())
	assert.Equal(t, before, u.Cells())
}

func TestResetReappliesFill(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 16
	cfg.Fill = core.FillRandom
	u, err := NewWithConfig(cfg)
	require.NoError(t, err)

	u.Reset(9)
	first := u.CellsCopy()
	u.Tick()
	u.Reset(9)
	assert.Equal(t, first, u.Cells())
	assert.Equal(t, uint64(0), u.Generation())

	u.Reset(10)
	assert.NotEqual(t, first, u.Cells())
}

func TestCellsCopyIsDetached(t *testing.T) {
	u, err := New(8, 8)
	require.NoError(t, err)
	snapshot := u.CellsCopy()
	snapshot[0] = 0
	assert.NotEqual(t, snapshot[0], u.Cells()[0])
}

func TestCellsDecodeToCoordinates(t *testing.T) {
	u := newDead(t, 7, 3)
	require.NoError(t, u.SetCells([]Coord{{Row: 2, Col: 5}}))
	words := u.Cells()
	for i := 0; i < 21; i++ {
		row, col := core.Coord(i, u.Width())
		assert.Equal(t, u.Alive(row, col), core.Bit(words, i), "bit %d", i)
	}
	assert.True(t, core.Bit(words, 2*7+5))
}

func TestString(t *testing.T) {
	u := newDead(t, 3, 2)
	require.NoError(t, u.SetCells([]Coord{{Row: 0, Col: 0}, {Row: 1, Col: 2}}))
	assert.Equal(t, "◻◼◼\n◼◼◻\n", u.String())
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["life"]
	require.True(t, ok)

	sim, err := factory(map[string]string{"w": "12", "h": "10", "fill": "dead"})
	require.NoError(t, err)
	assert.Equal(t, "life", sim.Name())
	assert.Equal(t, core.Size{W: 12, H: 10}, sim.Size())
	assert.Len(t, sim.Cells(), core.WordsFor(120))
}
