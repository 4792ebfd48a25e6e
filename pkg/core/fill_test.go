package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFillMode(t *testing.T) {
	for _, name := range []string{"demo", "dead", "random", "noise"} {
		mode, err := ParseFillMode(name)
		require.NoError(t, err)
		assert.Equal(t, FillMode(name), mode)
	}
	mode, err := ParseFillMode("")
	require.NoError(t, err)
	assert.Equal(t, FillDemo, mode)

	_, err = ParseFillMode("gliders")
	assert.Error(t, err)
}

func TestDemoFill(t *testing.T) {
	var alive []int
	for i := 0; i < 16; i++ {
		if DemoFill(i) {
			alive = append(alive, i)
		}
	}
	assert.Equal(t, []int{0, 2, 4, 6, 7, 8, 10, 12, 14}, alive)
}

func sample(fill FillFunc, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = fill(i)
	}
	return out
}

func TestRandomFillDeterministic(t *testing.T) {
	a := sample(RandomFill(7), 256)
	b := sample(RandomFill(7), 256)
	c := sample(RandomFill(8), 256)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, true)
	assert.Contains(t, a, false)
}

func TestNoiseFillDeterministic(t *testing.T) {
	size := Size{W: 32, H: 32}
	a := sample(NoiseFill(size, 3), size.Area())
	b := sample(NoiseFill(size, 3), size.Area())
	assert.Equal(t, a, b)
	assert.Contains(t, a, true)
	assert.Contains(t, a, false)
}

func TestFillerDispatch(t *testing.T) {
	size := Size{W: 4, H: 4}
	assert.Equal(t, sample(DemoFill, 16), sample(Filler(FillDemo, size, 0), 16))
	assert.Equal(t, make([]bool, 16), sample(Filler(FillDead, size, 0), 16))
	assert.Equal(t, sample(RandomFill(5), 16), sample(Filler(FillRandom, size, 5), 16))
}
