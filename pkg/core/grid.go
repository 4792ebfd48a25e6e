package core

// WordBits is the number of cells packed into one storage word.
const WordBits = 64

// WordsFor returns the number of words needed to hold n packed cells.
func WordsFor(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + WordBits - 1) / WordBits
}

// Bit reports whether cell i is set in a packed buffer. Indices past the
// end of the buffer read as dead.
func Bit(words []uint64, i int) bool {
	if i < 0 {
		return false
	}
	w := i / WordBits
	if w >= len(words) {
		return false
	}
	return words[w]&(1<<(uint(i)%WordBits)) != 0
}

// Unpack expands the first n packed cells into one byte per cell (0 or 1).
func Unpack(words []uint64, n int) []uint8 {
	if n < 0 {
		n = 0
	}
	out := make([]uint8, n)
	for i := range out {
		if Bit(words, i) {
			out[i] = 1
		}
	}
	return out
}

// Coord returns the (row, col) of flat index i in a row-major grid of the
// given width.
func Coord(i, width int) (row, col int) {
	return i / width, i % width
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (s Size) Wrap(row, col int) (int, int) {
	row = (row%s.H + s.H) % s.H
	col = (col%s.W + s.W) % s.W
	return row, col
}
