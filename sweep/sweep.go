package sweep

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qdsim/dotsystem"
	"github.com/katalvlaran/qdsim/grid"
)

// Run computes the ground state at every cell of vg and returns the
// assembled charge-stability diagram. The voltage grid's gate count must
// equal the system's; a mismatch is a configuration error and Run
// performs no computation. Both strategies visit the same cells with the
// same pure evaluation, so their occupation grids are bit-identical;
// a sweep runs to completion or fails as a whole.
// Complexity: O(nx · ny · stateCount · (ndots + pairCount)), divided
// across workers in the parallel strategy.
func Run(sys *dotsystem.System, vg *grid.VoltageGrid, opts ...Option) (*Result, error) {
	// --- 1. Resolve options, catching invalid ones immediately ---
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// --- 2. Validate configuration (fail fast, before any work) ---
	if sys == nil {
		return nil, ErrSystemNil
	}
	if vg == nil {
		return nil, ErrGridNil
	}
	if vg.Gates() != sys.Gates() {
		return nil, fmt.Errorf("%w: grid carries %d gates, system has %d",
			ErrGateCount, vg.Gates(), sys.Gates())
	}

	nx, ny := vg.Points()
	og, err := grid.NewOccupationGrid(nx, ny, sys.Dots())
	if err != nil {
		return nil, err
	}

	// --- 3. Assemble the grid with the strategy the caller chose ---
	start := time.Now()
	if o.Workers == 1 {
		err = runSequential(sys, vg, og, o.Progress)
	} else {
		err = runParallel(sys, vg, og, o.Workers)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{Occupations: og}

	// --- 4. Detection pass over the complete grid ---
	if o.Detect {
		res.Diagram, res.Deloc, err = o.Detector.FindTransitions(og)
		if err != nil {
			return nil, fmt.Errorf("sweep: transition detection: %w", err)
		}
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

// runSequential fills og row by row in row-major order, reusing one
// gate-vector buffer and one energy buffer for every cell. The progress
// hook fires as each row begins.
func runSequential(sys *dotsystem.System, vg *grid.VoltageGrid, og *grid.OccupationGrid, progress func(done, total int)) error {
	nx, ny := vg.Points()
	gv := make([]float64, sys.Gates())
	buf := make([]float64, sys.StateCount())
	for x := 0; x < nx; x++ {
		progress(x, nx)
		for y := 0; y < ny; y++ {
			vg.CopyAt(gv, x, y)
			idx, err := sys.GroundStateIndexInto(buf, gv)
			if err != nil {
				return fmt.Errorf("sweep: cell (%d,%d): %w", x, y, err)
			}
			og.Set(x, y, sys.Basis().State(idx))
		}
	}

	return nil
}

// runParallel dispatches one task per grid row on an errgroup bounded
// to workers. Each task owns private buffers and writes only its own
// row's slots of og, so the rows are disjoint and no locking is needed;
// Wait is the single barrier. The first task error fails the sweep.
func runParallel(sys *dotsystem.System, vg *grid.VoltageGrid, og *grid.OccupationGrid, workers int) error {
	nx, ny := vg.Points()
	var g errgroup.Group
	g.SetLimit(workers)
	for x := 0; x < nx; x++ {
		g.Go(func() error {
			gv := make([]float64, sys.Gates())
			buf := make([]float64, sys.StateCount())
			for y := 0; y < ny; y++ {
				vg.CopyAt(gv, x, y)
				idx, err := sys.GroundStateIndexInto(buf, gv)
				if err != nil {
					return fmt.Errorf("sweep: cell (%d,%d): %w", x, y, err)
				}
				og.Set(x, y, sys.Basis().State(idx))
			}

			return nil
		})
	}

	return g.Wait()
}
