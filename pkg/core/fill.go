package core

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

// FillMode names a strategy for populating a freshly allocated grid.
type FillMode string

const (
	// FillDemo marks cell i alive when i is divisible by 2 or by 7.
	FillDemo FillMode = "demo"
	// FillDead leaves every cell dead.
	FillDead FillMode = "dead"
	// FillRandom draws each cell from a seeded PCG stream.
	FillRandom FillMode = "random"
	// FillNoise thresholds seeded 2D Perlin noise.
	FillNoise FillMode = "noise"
)

// ParseFillMode validates a fill mode name. The empty string selects FillDemo.
func ParseFillMode(s string) (FillMode, error) {
	switch FillMode(s) {
	case "":
		return FillDemo, nil
	case FillDemo, FillDead, FillRandom, FillNoise:
		return FillMode(s), nil
	}
	return "", fmt.Errorf("unknown fill mode %q", s)
}

// FillFunc decides the initial state of the cell at flat index i. Fills are
// invoked once per cell in ascending index order.
type FillFunc func(i int) bool

// DemoFill is the fixed seed pattern: alive when i%2 == 0 or i%7 == 0.
func DemoFill(i int) bool { return i%2 == 0 || i%7 == 0 }

// DeadFill leaves every cell dead.
func DeadFill(int) bool { return false }

// RandomFill returns a fill that flips a seeded coin per cell.
func RandomFill(seed int64) FillFunc {
	rng := NewRNG(seed)
	return func(int) bool { return rng.Bool() }
}

const (
	noiseAlpha     = 2
	noiseBeta      = 2
	noiseOctaves   = 3
	noiseScale     = 0.12
	noiseThreshold = 0.0
)

// NoiseFill returns a fill that marks cells alive where Perlin noise sampled
// at the cell centre exceeds zero. Blobs of life form instead of the
// salt-and-pepper look of RandomFill.
func NoiseFill(size Size, seed int64) FillFunc {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	width := size.W
	if width <= 0 {
		width = 1
	}
	return func(i int) bool {
		row, col := Coord(i, width)
		x := (float64(col) + 0.5) * noiseScale
		y := (float64(row) + 0.5) * noiseScale
		return p.Noise2D(x, y) > noiseThreshold
	}
}

// Filler builds the FillFunc for mode on a grid of the given size.
func Filler(mode FillMode, size Size, seed int64) FillFunc {
	switch mode {
	case FillDead:
		return DeadFill
	case FillRandom:
		return RandomFill(seed)
	case FillNoise:
		return NoiseFill(size, seed)
	default:
		return DemoFill
	}
}
