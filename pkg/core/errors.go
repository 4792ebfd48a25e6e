package core

import "errors"

var (
	// ErrInvalidDimensions is returned when a width or height is not positive.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfRange is returned when a coordinate or bit index falls outside
	// the grid.
	ErrOutOfRange = errors.New("coordinate out of range")
)
