// Package plane holds small standalone 2-D geometry and fitting
// utilities for working with regions and backgrounds of a voltage
// plane: polygon containment tests, polygon rasterization, and
// low-order 2-D polynomial surface fits.
//
// Containment uses even-odd ray casting with half-open boundaries:
// points on a lower or left edge fall outside, points on an upper or
// right edge inside, so a tiling of polygons assigns every point to
// exactly one tile. FillMask applies the same test across an integer
// lattice and returns a row-major [ny][nx] mask.
//
// FitSurface and EvalSurface fit and evaluate z ≈ Σ m[k]·xⁱ·yʲ with the
// coefficient index running the (i, j) product, i outer and j inner.
// The fit is ordinary QR least squares on the monomial design matrix;
// callers must supply at least as many samples as coefficients.
//
// The package imports nothing from the simulation engine; it is usable
// on its own.
package plane
