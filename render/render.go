package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/qdsim/grid"
)

// gridXYZ adapts a ScalarGrid plus axis values to the plotter's grid
// interface: columns are x, rows are y.
type gridXYZ struct {
	z  *grid.ScalarGrid
	xs []float64
	ys []float64
}

func (g gridXYZ) Dims() (c, r int)   { return g.z.Dims() }
func (g gridXYZ) Z(c, r int) float64 { return g.z.At(c, r) }
func (g gridXYZ) X(c int) float64    { return g.xs[c] }
func (g gridXYZ) Y(r int) float64    { return g.ys[r] }

// Heatmap renders z as a heatmap image with xs/ys as the plot
// coordinates, written to opt.Path. Axis lengths must match the grid
// dimensions.
func Heatmap(z *grid.ScalarGrid, xs, ys []float64, opt HeatmapOptions) error {
	// --- 1. Validate inputs before any drawing ---
	if z == nil {
		return ErrNilGrid
	}
	nx, ny := z.Dims()
	if len(xs) != nx || len(ys) != ny {
		return fmt.Errorf("%w: axes %d×%d for a %d×%d grid", ErrAxisLen, len(xs), len(ys), nx, ny)
	}
	if opt.Path == "" {
		return ErrPath
	}
	opt = opt.normalized()

	// --- 2. Build the palette and the heatmap plotter ---
	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(gridXYZ{z: z, xs: xs, ys: ys}, cm.Palette(opt.Levels))
	if hm.Min == hm.Max {
		// A flat grid (one stable region, no transitions) would give the
		// color scale a zero span; widen it so rendering stays defined.
		hm.Max = hm.Min + 1
	}

	// --- 3. Assemble and save the plot ---
	p := plot.New()
	p.Title.Text = opt.Title
	p.X.Label.Text = opt.XLabel
	p.Y.Label.Text = opt.YLabel
	p.Add(hm)

	if err := p.Save(opt.Width, opt.Height, opt.Path); err != nil {
		return fmt.Errorf("render: save %s: %w", opt.Path, err)
	}

	return nil
}

// Occupancy renders a single dot's charge across the sweep as a
// heatmap: cell (x, y) shows occ.At(x, y)[dot].
func Occupancy(occ *grid.OccupationGrid, dot int, xs, ys []float64, opt HeatmapOptions) error {
	if occ == nil {
		return ErrNilGrid
	}
	nx, ny, dots := occ.Dims()
	if dot < 0 || dot >= dots {
		return fmt.Errorf("%w: dot %d of a %d-dot grid", ErrDotIndex, dot, dots)
	}

	z, err := grid.NewScalarGrid(nx, ny)
	if err != nil {
		return err
	}
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			z.Set(x, y, float64(occ.At(x, y)[dot]))
		}
	}

	return Heatmap(z, xs, ys, opt)
}
