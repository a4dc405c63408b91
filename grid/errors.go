package grid

import "errors"

var (
	// ErrInvalidDimension indicates a grid was requested with width or height <= 0.
	ErrInvalidDimension = errors.New("grid: width and height must be positive")

	// ErrOutOfBounds indicates a coordinate outside the grid. Bulk operations
	// skip such coordinates instead of returning this error.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
