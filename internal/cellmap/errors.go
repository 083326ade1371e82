package cellmap

import "errors"

var (
	// ErrInvalidSize is returned when a map is requested with a zero or
	// negative dimension.
	ErrInvalidSize = errors.New("cellmap: width and height must be at least 1")
	// ErrOutOfRange is returned for coordinates outside the grid.
	ErrOutOfRange = errors.New("cellmap: coordinate out of range")
	// ErrInvariantViolation is returned by Verify when a stored neighbour
	// count disagrees with a full recount.
	ErrInvariantViolation = errors.New("cellmap: neighbour count invariant violated")
)
