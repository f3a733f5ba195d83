package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrDims is returned when a requested dimension is not positive.
	ErrDims = errors.New("grid: dimensions must be positive")

	// ErrGateIndex is returned when a swept gate index falls outside the
	// base vector, or the two swept gates coincide.
	ErrGateIndex = errors.New("grid: invalid swept gate index")

	// ErrAxis is returned for unusable sweep axes (empty, or fewer than
	// two points where a span is required).
	ErrAxis = errors.New("grid: invalid sweep axis")
)
