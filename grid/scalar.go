package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ScalarGrid is an npointsx×npointsy field of float64 values, flat
// row-major with x outer and y inner. Transition detectors emit their
// diagram and delocalization maps as ScalarGrids; the renderer consumes
// them directly.
type ScalarGrid struct {
	nx   int
	ny   int
	data []float64
}

// NewScalarGrid allocates a zero-filled scalar grid.
// Returns ErrDims unless both dimensions are positive.
func NewScalarGrid(nx, ny int) (*ScalarGrid, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("%w: nx=%d ny=%d", ErrDims, nx, ny)
	}

	return &ScalarGrid{nx: nx, ny: ny, data: make([]float64, nx*ny)}, nil
}

// Dims returns (npointsx, npointsy).
func (sg *ScalarGrid) Dims() (nx, ny int) { return sg.nx, sg.ny }

// At returns the value at cell (x, y). Panics if out of range.
func (sg *ScalarGrid) At(x, y int) float64 {
	sg.checkCell(x, y)

	return sg.data[x*sg.ny+y]
}

// Set stores v at cell (x, y). Panics if out of range.
func (sg *ScalarGrid) Set(x, y int, v float64) {
	sg.checkCell(x, y)
	sg.data[x*sg.ny+y] = v
}

// Min returns the smallest value in the grid.
func (sg *ScalarGrid) Min() float64 { return floats.Min(sg.data) }

// Max returns the largest value in the grid.
func (sg *ScalarGrid) Max() float64 { return floats.Max(sg.data) }

// Fill sets every cell to v.
func (sg *ScalarGrid) Fill(v float64) {
	for i := range sg.data {
		sg.data[i] = v
	}
}

// Equal reports whether two grids have identical dimensions and values.
func (sg *ScalarGrid) Equal(other *ScalarGrid) bool {
	if other == nil || sg.nx != other.nx || sg.ny != other.ny {
		return false
	}
	return floats.Equal(sg.data, other.data)
}

func (sg *ScalarGrid) checkCell(x, y int) {
	if x < 0 || x >= sg.nx || y < 0 || y >= sg.ny {
		panic(fmt.Sprintf("grid: cell (%d,%d) out of %d×%d", x, y, sg.nx, sg.ny))
	}
}
