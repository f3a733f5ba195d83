package transitions

import (
	"github.com/katalvlaran/qdsim/grid"
)

// Detector is the stateless default transition detector. The zero value
// is ready to use and safe for concurrent calls.
type Detector struct{}

// FindTransitions scans occ with forward differences and returns the
// transition-intensity map (diagram) and the interdot-transfer map
// (deloc), both shaped npointsx×npointsy like the input.
//
// Complexity: O(npointsx · npointsy · ndots).
func (Detector) FindTransitions(occ *grid.OccupationGrid) (diagram, deloc *grid.ScalarGrid, err error) {
	// --- 1. Validate input ---
	if occ == nil {
		return nil, nil, ErrNilGrid
	}
	nx, ny, _ := occ.Dims()
	if nx < 1 || ny < 1 {
		return nil, nil, ErrGridTooSmall
	}

	// --- 2. Allocate result maps ---
	if diagram, err = grid.NewScalarGrid(nx, ny); err != nil {
		return nil, nil, err
	}
	if deloc, err = grid.NewScalarGrid(nx, ny); err != nil {
		return nil, nil, err
	}

	// --- 3. Accumulate forward-edge differences per cell ---
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			here := occ.At(x, y)
			var moved, transfer float64
			if x+1 < nx {
				m, t := edgeCharge(here, occ.At(x+1, y))
				moved += m
				transfer += t
			}
			if y+1 < ny {
				m, t := edgeCharge(here, occ.At(x, y+1))
				moved += m
				transfer += t
			}
			diagram.Set(x, y, moved)
			deloc.Set(x, y, transfer)
		}
	}

	return diagram, deloc, nil
}

// edgeCharge compares the occupation vectors on the two sides of one
// grid edge. moved is the L1 distance (total electrons that changed
// dots or reservoir); transfer is (L1 - |Δtotal|)/2, the number of
// electrons that moved between dots without changing the total.
func edgeCharge(a, b []int) (moved, transfer float64) {
	var l1, net int
	for i, ai := range a {
		d := ai - b[i]
		if d < 0 {
			l1 -= d
		} else {
			l1 += d
		}
		net += d
	}
	if net < 0 {
		net = -net
	}

	return float64(l1), float64(l1-net) / 2
}
