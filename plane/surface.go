package plane

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FitSurface fits the 2-D polynomial z ≈ Σ m[k]·xⁱ·yʲ to the samples by
// least squares and returns the (order+1)² coefficients. Index k runs
// the (i, j) product with i outer and j inner, so for order 1 the layout
// is [1, y, x, xy]. EvalSurface consumes the same layout.
// Returns ErrLength on mismatched samples, ErrOrder for a negative
// order, ErrUnderdetermined when there are fewer samples than
// coefficients, and a wrapped solver error when the design matrix is
// rank deficient.
// Complexity: O(n·c²) for n samples and c = (order+1)² coefficients.
func FitSurface(x, y, z []float64, order int) ([]float64, error) {
	// --- 1. Validate the sample set ---
	if len(x) != len(y) || len(x) != len(z) {
		return nil, fmt.Errorf("%w: x=%d y=%d z=%d", ErrLength, len(x), len(y), len(z))
	}
	if order < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOrder, order)
	}
	side := order + 1
	ncoef := side * side
	if len(x) < ncoef {
		return nil, fmt.Errorf("%w: %d samples for %d coefficients", ErrUnderdetermined, len(x), ncoef)
	}

	// --- 2. Build the monomial design matrix ---
	design := mat.NewDense(len(x), ncoef, nil)
	for r := range x {
		xp := 1.0
		k := 0
		for i := 0; i < side; i++ {
			term := xp
			for j := 0; j < side; j++ {
				design.Set(r, k, term)
				term *= y[r]
				k++
			}
			xp *= x[r]
		}
	}

	// --- 3. Solve by QR least squares ---
	var coef mat.VecDense
	if err := coef.SolveVec(design, mat.NewVecDense(len(z), z)); err != nil {
		return nil, fmt.Errorf("plane: least squares fit: %w", err)
	}

	out := make([]float64, ncoef)
	copy(out, coef.RawVector().Data)

	return out, nil
}

// EvalSurface evaluates a fitted polynomial at (x, y). The order is
// inferred from the coefficient count, which must be a perfect square
// (ErrCoefficients otherwise).
// Complexity: O(len(m)).
func EvalSurface(x, y float64, m []float64) (float64, error) {
	side := int(math.Round(math.Sqrt(float64(len(m)))))
	if side < 1 || side*side != len(m) {
		return 0, fmt.Errorf("%w: got %d coefficients", ErrCoefficients, len(m))
	}

	var z float64
	xp := 1.0
	k := 0
	for i := 0; i < side; i++ {
		term := xp
		for j := 0; j < side; j++ {
			z += m[k] * term
			term *= y
			k++
		}
		xp *= x
	}

	return z, nil
}
