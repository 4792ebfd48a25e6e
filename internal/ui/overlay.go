//go:build ebiten

package ui

import (
	"image/color"

	"bitlife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type cellToggler interface {
	Toggle(row, col int) error
}

// Overlay lets the user edit cells with the mouse and highlights the cell
// under the cursor. The G key toggles grid lines.
type Overlay struct {
	sim      core.Sim
	toggler  cellToggler
	scale    int
	showGrid bool

	hoverRow, hoverCol int
	hovering           bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale}
	o.toggler, _ = sim.(cellToggler)
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the hovered cell and applies clicks.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	mx, my := ebiten.CursorPosition()
	row, col := my/o.scale, mx/o.scale
	o.hovering = mx >= 0 && my >= 0 && o.sim.Size().Contains(row, col)
	o.hoverRow, o.hoverCol = row, col
	if !o.hovering || o.toggler == nil {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		// Toggle only fails for coordinates outside the grid, which hovering
		// already rules out.
		_ = o.toggler.Toggle(row, col)
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if o.showGrid && o.scale >= 4 {
		lineColor := color.RGBA{R: 40, G: 40, B: 48, A: 255}
		for col := 1; col < size.W; col++ {
			o.fillRect(screen, float64(col*o.scale), 0, 1, float64(size.H*o.scale), lineColor)
		}
		for row := 1; row < size.H; row++ {
			o.fillRect(screen, 0, float64(row*o.scale), float64(size.W*o.scale), 1, lineColor)
		}
	}
	if o.hovering {
		x := float64(o.hoverCol * o.scale)
		y := float64(o.hoverRow * o.scale)
		s := float64(o.scale)
		highlight := color.RGBA{R: 64, G: 164, B: 223, A: 255}
		o.fillRect(screen, x, y, s, 1, highlight)
		o.fillRect(screen, x, y+s-1, s, 1, highlight)
		o.fillRect(screen, x, y, 1, s, highlight)
		o.fillRect(screen, x+s-1, y, 1, s, highlight)
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
