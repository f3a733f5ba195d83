// Package sweep: collaborator contract, tunable options and error
// definitions for the stability-diagram engine.
package sweep

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/katalvlaran/qdsim/grid"
	"github.com/katalvlaran/qdsim/transitions"
)

// Detector locates charge transitions on an assembled occupation grid.
// Run consumes it as a black box after the sweep completes; the outputs
// are retained on the Result as opaque artifacts. Implementations must
// be deterministic for a given grid.
type Detector interface {
	FindTransitions(occ *grid.OccupationGrid) (diagram, deloc *grid.ScalarGrid, err error)
}

// Sentinel errors for sweep configuration and execution.
var (
	// ErrSystemNil is returned when Run receives a nil system.
	ErrSystemNil = errors.New("sweep: nil dot system")

	// ErrGridNil is returned when Run receives a nil voltage grid.
	ErrGridNil = errors.New("sweep: nil voltage grid")

	// ErrGateCount is returned when the voltage grid's leading dimension
	// does not equal the system's gate count. No computation is
	// performed.
	ErrGateCount = errors.New("sweep: gate count mismatch")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sweep: invalid option supplied")
)

// Result bundles everything one sweep produces: the per-cell ground
// states, the detector's transition maps (nil when detection was
// skipped), and the wall-clock duration of assembly plus detection.
type Result struct {
	// Occupations holds the ground-state occupation vector of every
	// voltage cell.
	Occupations *grid.OccupationGrid

	// Diagram is the detector's transition-intensity map; nil when the
	// sweep ran with WithoutDetection.
	Diagram *grid.ScalarGrid

	// Deloc is the detector's interdot-transfer map; nil when the sweep
	// ran with WithoutDetection.
	Deloc *grid.ScalarGrid

	// Elapsed is the wall-clock time of the full run, grid assembly and
	// detection included.
	Elapsed time.Duration
}

// Option configures Run via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Run is
// invoked.
type Option func(*Options)

// Options holds execution parameters resolved from Option setters.
type Options struct {
	// Workers selects the execution strategy: 1 runs the sequential
	// loop, anything larger runs the bounded parallel one. The choice is
	// always the caller's; Run never probes the environment.
	Workers int

	// Progress is invoked by the sequential strategy as each grid row
	// begins, with the number of rows already completed and the total
	// row count. It must not affect results.
	Progress func(done, total int)

	// Detector analyzes the assembled occupation grid.
	Detector Detector

	// Detect disables the detection pass when false; the Result then
	// carries occupations only.
	Detect bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the documented defaults: the sequential
// strategy, a no-op progress hook, the built-in transition detector,
// and detection enabled.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Progress: func(done, total int) {},
		Detector: transitions.Detector{},
		Detect:   true,
		err:      nil,
	}
}

// DefaultWorkers returns runtime.GOMAXPROCS(0), a reasonable worker
// count for the parallel strategy. It is offered to callers and never
// applied silently: strategy selection stays explicit.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// WithWorkers selects the execution strategy.
//
//	n == 1: sequential row-major loop
//	n > 1:  parallel, at most n concurrent row tasks
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.Workers = n
	}
}

// WithProgress installs a per-row progress hook for the sequential
// strategy. Nil hooks are ignored.
func WithProgress(fn func(done, total int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Progress = fn
		}
	}
}

// WithDetector substitutes the transition detector consumed after the
// sweep. Nil detectors are ignored.
func WithDetector(d Detector) Option {
	return func(o *Options) {
		if d != nil {
			o.Detector = d
		}
	}
}

// WithoutDetection skips the detection pass entirely; the Result's
// Diagram and Deloc stay nil.
func WithoutDetection() Option {
	return func(o *Options) { o.Detect = false }
}
