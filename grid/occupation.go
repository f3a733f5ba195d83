package grid

import "fmt"

// OccupationGrid is the result container of a stability-diagram sweep:
// one occupation vector of ndots entries per cell, npointsx×npointsy
// cells, flat row-major with x outer and y inner.
type OccupationGrid struct {
	nx   int
	ny   int
	dots int
	data []int
}

// NewOccupationGrid allocates a zero-filled occupation grid.
// Returns ErrDims unless all dimensions are positive.
func NewOccupationGrid(nx, ny, ndots int) (*OccupationGrid, error) {
	if nx < 1 || ny < 1 || ndots < 1 {
		return nil, fmt.Errorf("%w: nx=%d ny=%d ndots=%d", ErrDims, nx, ny, ndots)
	}

	return &OccupationGrid{
		nx:   nx,
		ny:   ny,
		dots: ndots,
		data: make([]int, nx*ny*ndots),
	}, nil
}

// Dims returns (npointsx, npointsy, ndots).
func (og *OccupationGrid) Dims() (nx, ny, dots int) { return og.nx, og.ny, og.dots }

// At returns the occupation vector at cell (x, y) as a view into the
// grid's storage: writes through it update the grid. Panics if the cell
// is out of range.
func (og *OccupationGrid) At(x, y int) []int {
	og.checkCell(x, y)
	i := (x*og.ny + y) * og.dots

	return og.data[i : i+og.dots]
}

// Set copies state into cell (x, y). Panics if the cell is out of range
// or len(state) != ndots.
func (og *OccupationGrid) Set(x, y int, state []int) {
	if len(state) != og.dots {
		panic(fmt.Sprintf("grid: Set state length %d, want %d", len(state), og.dots))
	}
	copy(og.At(x, y), state)
}

// Clone returns an independent deep copy.
func (og *OccupationGrid) Clone() *OccupationGrid {
	dup := &OccupationGrid{nx: og.nx, ny: og.ny, dots: og.dots, data: make([]int, len(og.data))}
	copy(dup.data, og.data)

	return dup
}

// Equal reports whether two grids have identical dimensions and cell
// contents. Used to assert that execution strategies agree bit for bit.
func (og *OccupationGrid) Equal(other *OccupationGrid) bool {
	if other == nil || og.nx != other.nx || og.ny != other.ny || og.dots != other.dots {
		return false
	}
	for i, v := range og.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

func (og *OccupationGrid) checkCell(x, y int) {
	if x < 0 || x >= og.nx || y < 0 || y >= og.ny {
		panic(fmt.Sprintf("grid: cell (%d,%d) out of %d×%d", x, y, og.nx, og.ny))
	}
}
