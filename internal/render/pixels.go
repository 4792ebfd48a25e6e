package render

import (
	"image/color"

	"bitlife/pkg/core"
)

// fillPackedRGBA converts the first n packed cells (one bit per cell,
// row-major) into RGBA pixels in buf. buf must hold at least 4*n bytes.
func fillPackedRGBA(buf []byte, words []uint64, n int, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i := 0; i < n; i++ {
		base := i * 4
		if core.Bit(words, i) {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
