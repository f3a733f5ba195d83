package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// VoltageGrid holds a full gate-voltage vector for every cell of an
// npointsx×npointsy sweep: an (ngates, npointsx, npointsy) array in flat
// storage. The value of gate g at cell (x, y) lives at (g·nx+x)·ny+y.
type VoltageGrid struct {
	gates int
	nx    int
	ny    int
	data  []float64
}

// NewVoltageGrid allocates a zero-filled voltage grid for ngates gates
// over nx×ny cells. Returns ErrDims unless all dimensions are positive.
func NewVoltageGrid(ngates, nx, ny int) (*VoltageGrid, error) {
	if ngates < 1 || nx < 1 || ny < 1 {
		return nil, fmt.Errorf("%w: ngates=%d nx=%d ny=%d", ErrDims, ngates, nx, ny)
	}

	return &VoltageGrid{
		gates: ngates,
		nx:    nx,
		ny:    ny,
		data:  make([]float64, ngates*nx*ny),
	}, nil
}

// Gates returns the grid's leading dimension, the gate count every cell
// vector has. Sweeps check it against the model's gate count before any
// computation.
func (vg *VoltageGrid) Gates() int { return vg.gates }

// Points returns the sweep extent (npointsx, npointsy).
func (vg *VoltageGrid) Points() (nx, ny int) { return vg.nx, vg.ny }

// Set stores the gate vector for cell (x, y). Panics if the cell is out
// of range or len(v) != Gates().
func (vg *VoltageGrid) Set(x, y int, v []float64) {
	vg.checkCell(x, y)
	if len(v) != vg.gates {
		panic(fmt.Sprintf("grid: Set vector length %d, want %d", len(v), vg.gates))
	}
	for g, val := range v {
		vg.data[(g*vg.nx+x)*vg.ny+y] = val
	}
}

// At returns a freshly allocated copy of the gate vector at cell (x, y).
// Panics if the cell is out of range.
func (vg *VoltageGrid) At(x, y int) []float64 {
	dst := make([]float64, vg.gates)
	vg.CopyAt(dst, x, y)

	return dst
}

// CopyAt gathers the gate vector at cell (x, y) into dst, the
// allocation-free path for tight sweep loops. Panics if the cell is out
// of range or len(dst) != Gates().
func (vg *VoltageGrid) CopyAt(dst []float64, x, y int) {
	vg.checkCell(x, y)
	if len(dst) != vg.gates {
		panic(fmt.Sprintf("grid: CopyAt dst length %d, want %d", len(dst), vg.gates))
	}
	for g := 0; g < vg.gates; g++ {
		dst[g] = vg.data[(g*vg.nx+x)*vg.ny+y]
	}
}

func (vg *VoltageGrid) checkCell(x, y int) {
	if x < 0 || x >= vg.nx || y < 0 || y >= vg.ny {
		panic(fmt.Sprintf("grid: cell (%d,%d) out of %d×%d", x, y, vg.nx, vg.ny))
	}
}

// SweepPlane builds the standard two-gate sweep grid: every cell's
// vector is base with base[gateX] replaced by xs[x] and base[gateY] by
// ys[y]. The remaining gates stay fixed at their base values.
// Returns ErrGateIndex for out-of-range or coinciding gate indices and
// ErrAxis for empty axes.
// Complexity: O(len(base)·len(xs)·len(ys)).
func SweepPlane(base []float64, gateX, gateY int, xs, ys []float64) (*VoltageGrid, error) {
	ngates := len(base)
	if ngates < 1 {
		return nil, fmt.Errorf("%w: empty base vector", ErrDims)
	}
	if gateX < 0 || gateX >= ngates || gateY < 0 || gateY >= ngates {
		return nil, fmt.Errorf("%w: gateX=%d gateY=%d with %d gates", ErrGateIndex, gateX, gateY, ngates)
	}
	if gateX == gateY {
		return nil, fmt.Errorf("%w: gateX and gateY coincide (%d)", ErrGateIndex, gateX)
	}
	if len(xs) == 0 || len(ys) == 0 {
		return nil, fmt.Errorf("%w: empty axis", ErrAxis)
	}

	vg, err := NewVoltageGrid(ngates, len(xs), len(ys))
	if err != nil {
		return nil, err
	}
	cell := make([]float64, ngates)
	for x := range xs {
		for y := range ys {
			copy(cell, base)
			cell[gateX] = xs[x]
			cell[gateY] = ys[y]
			vg.Set(x, y, cell)
		}
	}

	return vg, nil
}

// Axis returns points uniformly spaced values from min to max inclusive.
// Returns ErrAxis when points < 2.
func Axis(min, max float64, points int) ([]float64, error) {
	if points < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrAxis, points)
	}

	return floats.Span(make([]float64, points), min, max), nil
}
