// Package plane: sentinel errors for the polygon and surface-fitting
// utilities.
package plane

import "errors"

// Sentinel errors for surface fitting and evaluation.
var (
	// ErrLength is returned when the sample slices have mismatched
	// lengths.
	ErrLength = errors.New("plane: sample length mismatch")

	// ErrOrder is returned for negative polynomial orders.
	ErrOrder = errors.New("plane: polynomial order must be non-negative")

	// ErrUnderdetermined is returned when there are fewer samples than
	// coefficients to fit.
	ErrUnderdetermined = errors.New("plane: underdetermined fit")

	// ErrCoefficients is returned when a coefficient slice is not a
	// perfect square, so no polynomial order can be inferred.
	ErrCoefficients = errors.New("plane: coefficient count is not a perfect square")
)
