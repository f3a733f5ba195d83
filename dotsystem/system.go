package dotsystem

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qdsim/basis"
	"github.com/katalvlaran/qdsim/combin"
)

// System is an immutable classical dot-system model: validated physical
// parameters plus the occupation basis built once at construction.
// All methods are pure reads; a System may be shared freely across
// goroutines.
type System struct {
	name  string
	dots  int
	gates int

	mu0   []float64
	eAdd  []float64
	w     []float64
	alpha *mat.Dense

	b *basis.Basis
}

// New validates p against the declared dimensions, builds the occupation
// basis exactly once, and returns the ready-to-query System. There is no
// partially constructed state: an error means no System exists.
// Returns ErrShape (wrapped with the offending dimension), basis errors,
// or ErrOptionViolation.
// Complexity: O((maxElectrons+1)^ndots · ndots) from basis construction.
func New(ndots, ngates int, p Params, opts ...Option) (*System, error) {
	// --- 1. Resolve options, catching invalid ones immediately ---
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// --- 2. Validate dimensions and parameter shapes (fail fast) ---
	if ndots < 1 {
		return nil, fmt.Errorf("%w: ndots must be at least 1, got %d", ErrShape, ndots)
	}
	if ngates < 1 {
		return nil, fmt.Errorf("%w: ngates must be at least 1, got %d", ErrShape, ngates)
	}
	if len(p.Mu0) != ndots {
		return nil, fmt.Errorf("%w: Mu0 length %d, want %d", ErrShape, len(p.Mu0), ndots)
	}
	if len(p.EAdd) != ndots {
		return nil, fmt.Errorf("%w: EAdd length %d, want %d", ErrShape, len(p.EAdd), ndots)
	}
	if want := combin.PairCount(ndots); len(p.W) != want {
		return nil, fmt.Errorf("%w: W length %d, want C(%d,2)=%d", ErrShape, len(p.W), ndots, want)
	}
	if p.Alpha == nil {
		return nil, fmt.Errorf("%w: Alpha is nil", ErrShape)
	}
	if r, c := p.Alpha.Dims(); r != ndots || c != ngates {
		return nil, fmt.Errorf("%w: Alpha is %d×%d, want %d×%d", ErrShape, r, c, ndots, ngates)
	}

	// --- 3. Build the basis (the single construction-time cost) ---
	b, err := basis.New(ndots, o.MaxElectrons)
	if err != nil {
		return nil, err
	}

	// --- 4. Deep-copy parameters; the System is read-only afterwards ---
	sys := &System{
		name:  o.Name,
		dots:  ndots,
		gates: ngates,
		mu0:   append([]float64(nil), p.Mu0...),
		eAdd:  append([]float64(nil), p.EAdd...),
		w:     append([]float64(nil), p.W...),
		alpha: mat.DenseCopyOf(p.Alpha),
		b:     b,
	}

	return sys, nil
}

// Name returns the system label.
func (s *System) Name() string { return s.name }

// Dots returns the number of dots.
func (s *System) Dots() int { return s.dots }

// Gates returns the number of gate electrodes.
func (s *System) Gates() int { return s.gates }

// MaxElectrons returns the per-dot occupancy bound of the basis.
func (s *System) MaxElectrons() int { return s.b.MaxElectrons() }

// StateCount returns the number of basis states.
func (s *System) StateCount() int { return s.b.Len() }

// Basis returns the underlying occupation basis (read-only).
func (s *System) Basis() *basis.Basis { return s.b }

// Params returns a deep copy of the physical parameters. Mutating the
// copy never affects the System.
func (s *System) Params() Params {
	return Params{
		Mu0:   append([]float64(nil), s.mu0...),
		EAdd:  append([]float64(nil), s.eAdd...),
		W:     append([]float64(nil), s.w...),
		Alpha: mat.DenseCopyOf(s.alpha),
	}
}
