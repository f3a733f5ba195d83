package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qdsim/grid"
)

// TestNewVoltageGrid_Dims verifies dimension validation on construction.
func TestNewVoltageGrid_Dims(t *testing.T) {
	cases := []struct {
		name           string
		ngates, nx, ny int
		wantErr        bool
	}{
		{"valid", 3, 4, 5, false},
		{"single cell", 1, 1, 1, false},
		{"zero gates", 0, 4, 5, true},
		{"zero nx", 3, 0, 5, true},
		{"negative ny", 3, 4, -1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vg, err := grid.NewVoltageGrid(tc.ngates, tc.nx, tc.ny)
			if tc.wantErr {
				require.ErrorIs(t, err, grid.ErrDims)
				assert.Nil(t, vg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ngates, vg.Gates())
			nx, ny := vg.Points()
			assert.Equal(t, tc.nx, nx)
			assert.Equal(t, tc.ny, ny)
		})
	}
}

// TestVoltageGrid_SetAtCopyAt verifies the Set/At/CopyAt round-trip and
// that At returns an independent copy.
func TestVoltageGrid_SetAtCopyAt(t *testing.T) {
	vg, err := grid.NewVoltageGrid(3, 2, 2)
	require.NoError(t, err)

	want := []float64{1.5, -2.0, 7.25}
	vg.Set(1, 0, want)

	got := vg.At(1, 0)
	assert.Equal(t, want, got)

	// At hands back a copy, not a view.
	got[0] = 99
	assert.Equal(t, want, vg.At(1, 0))

	dst := make([]float64, 3)
	vg.CopyAt(dst, 1, 0)
	assert.Equal(t, want, dst)

	// Untouched cells stay zero.
	assert.Equal(t, []float64{0, 0, 0}, vg.At(0, 1))
}

// TestVoltageGrid_Panics verifies index and length checks panic the way
// dense matrix accessors do.
func TestVoltageGrid_Panics(t *testing.T) {
	vg, err := grid.NewVoltageGrid(2, 2, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { vg.At(2, 0) })
	assert.Panics(t, func() { vg.At(0, -1) })
	assert.Panics(t, func() { vg.Set(0, 0, []float64{1}) })
	assert.Panics(t, func() { vg.CopyAt(make([]float64, 3), 0, 0) })
}

// TestSweepPlane_Cells verifies every cell holds the base vector with
// exactly the two swept gates replaced by its axis values.
func TestSweepPlane_Cells(t *testing.T) {
	base := []float64{10, 20, 30, 40}
	xs := []float64{0, 1, 2}
	ys := []float64{-5, 5}

	vg, err := grid.SweepPlane(base, 1, 3, xs, ys)
	require.NoError(t, err)

	nx, ny := vg.Points()
	require.Equal(t, len(xs), nx)
	require.Equal(t, len(ys), ny)
	require.Equal(t, len(base), vg.Gates())

	for x := range xs {
		for y := range ys {
			cell := vg.At(x, y)
			assert.Equal(t, []float64{10, xs[x], 30, ys[y]}, cell,
				"cell (%d,%d)", x, y)
		}
	}
}

// TestSweepPlane_Errors verifies gate-index and axis validation.
func TestSweepPlane_Errors(t *testing.T) {
	base := []float64{1, 2, 3}
	xs := []float64{0, 1}
	ys := []float64{0, 1}

	cases := []struct {
		name         string
		base         []float64
		gateX, gateY int
		xs, ys       []float64
		want         error
	}{
		{"empty base", nil, 0, 1, xs, ys, grid.ErrDims},
		{"gateX out of range", base, 3, 1, xs, ys, grid.ErrGateIndex},
		{"gateX negative", base, -1, 1, xs, ys, grid.ErrGateIndex},
		{"gateY out of range", base, 0, 5, xs, ys, grid.ErrGateIndex},
		{"coinciding gates", base, 2, 2, xs, ys, grid.ErrGateIndex},
		{"empty xs", base, 0, 1, nil, ys, grid.ErrAxis},
		{"empty ys", base, 0, 1, xs, nil, grid.ErrAxis},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vg, err := grid.SweepPlane(tc.base, tc.gateX, tc.gateY, tc.xs, tc.ys)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, vg)
		})
	}
}

// TestSweepPlane_BaseUntouched verifies the base vector is copied, not
// aliased, by every cell.
func TestSweepPlane_BaseUntouched(t *testing.T) {
	base := []float64{7, 8}
	vg, err := grid.SweepPlane(base, 0, 1, []float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)

	base[0] = -100
	assert.Equal(t, []float64{1, 3}, vg.At(0, 0))
}

// TestAxis verifies endpoints, uniform spacing, and the minimum-points
// guard.
func TestAxis(t *testing.T) {
	xs, err := grid.Axis(-10, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{-10, -5, 0, 5, 10}, xs)

	xs, err = grid.Axis(0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, xs)

	// Descending spans are fine.
	xs, err = grid.Axis(1, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.5, 0}, xs)

	_, err = grid.Axis(0, 1, 1)
	assert.ErrorIs(t, err, grid.ErrAxis)
	_, err = grid.Axis(0, 1, 0)
	assert.ErrorIs(t, err, grid.ErrAxis)
}

// TestOccupationGrid_Basics verifies construction, the writable At view,
// and Set's copy semantics.
func TestOccupationGrid_Basics(t *testing.T) {
	_, err := grid.NewOccupationGrid(0, 2, 2)
	require.ErrorIs(t, err, grid.ErrDims)

	og, err := grid.NewOccupationGrid(2, 3, 2)
	require.NoError(t, err)
	nx, ny, dots := og.Dims()
	assert.Equal(t, 2, nx)
	assert.Equal(t, 3, ny)
	assert.Equal(t, 2, dots)

	og.Set(1, 2, []int{3, 1})
	assert.Equal(t, []int{3, 1}, og.At(1, 2))

	// At is a view: writes land in the grid.
	og.At(0, 0)[1] = 7
	assert.Equal(t, []int{0, 7}, og.At(0, 0))

	// Set copies its argument.
	state := []int{2, 2}
	og.Set(0, 1, state)
	state[0] = 9
	assert.Equal(t, []int{2, 2}, og.At(0, 1))

	assert.Panics(t, func() { og.At(2, 0) })
	assert.Panics(t, func() { og.Set(0, 0, []int{1, 2, 3}) })
}

// TestOccupationGrid_CloneEqual verifies deep copies diverge and Equal
// compares dimensions and contents.
func TestOccupationGrid_CloneEqual(t *testing.T) {
	og, err := grid.NewOccupationGrid(2, 2, 3)
	require.NoError(t, err)
	og.Set(0, 0, []int{1, 2, 3})
	og.Set(1, 1, []int{3, 0, 1})

	dup := og.Clone()
	assert.True(t, og.Equal(dup))
	assert.True(t, dup.Equal(og))

	dup.At(0, 0)[0] = 99
	assert.False(t, og.Equal(dup))

	// Dimension mismatches are never equal.
	other, err := grid.NewOccupationGrid(2, 2, 2)
	require.NoError(t, err)
	assert.False(t, og.Equal(other))
	assert.False(t, og.Equal(nil))
}

// TestScalarGrid verifies At/Set, Fill, and the Min/Max range accessors.
func TestScalarGrid(t *testing.T) {
	_, err := grid.NewScalarGrid(3, 0)
	require.ErrorIs(t, err, grid.ErrDims)

	sg, err := grid.NewScalarGrid(2, 3)
	require.NoError(t, err)
	nx, ny := sg.Dims()
	assert.Equal(t, 2, nx)
	assert.Equal(t, 3, ny)

	sg.Set(1, 2, 4.5)
	sg.Set(0, 1, -2.25)
	assert.Equal(t, 4.5, sg.At(1, 2))
	assert.Equal(t, -2.25, sg.At(0, 1))
	assert.Equal(t, -2.25, sg.Min())
	assert.Equal(t, 4.5, sg.Max())

	sg.Fill(1.5)
	assert.Equal(t, 1.5, sg.Min())
	assert.Equal(t, 1.5, sg.Max())
	assert.Equal(t, 1.5, sg.At(0, 0))

	dup, err := grid.NewScalarGrid(2, 3)
	require.NoError(t, err)
	dup.Fill(1.5)
	assert.True(t, sg.Equal(dup))
	dup.Set(0, 0, 0)
	assert.False(t, sg.Equal(dup))
	assert.False(t, sg.Equal(nil))

	assert.Panics(t, func() { sg.At(-1, 0) })
	assert.Panics(t, func() { sg.Set(0, 3, 1) })
}
