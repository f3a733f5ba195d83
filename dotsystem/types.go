// Package dotsystem: parameter container, tunable options and error
// definitions for the classical dot-system model.
package dotsystem

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DefaultMaxElectrons is the per-dot occupancy bound used when
// WithMaxElectrons is not supplied.
const DefaultMaxElectrons = 3

// DefaultName is the name assigned to systems built without WithName.
const DefaultName = "dotsystem"

// Sentinel errors for model construction and evaluation.
var (
	// ErrShape is returned when a parameter's dimensions disagree with
	// the declared ndots/ngates.
	ErrShape = errors.New("dotsystem: parameter shape mismatch")

	// ErrGateLen is returned when a gate-voltage vector does not have
	// exactly ngates entries.
	ErrGateLen = errors.New("dotsystem: gate voltage length mismatch")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dotsystem: invalid option supplied")
)

// Params holds the physical parameters of a dot system. All fields are
// deep-copied by New; mutating a Params after construction never affects
// an existing System.
type Params struct {
	// Mu0 is the chemical potential per dot at zero gate voltage.
	// Length ndots.
	Mu0 []float64

	// EAdd is the addition energy per dot. Length ndots.
	EAdd []float64

	// W is the pairwise Coulomb repulsion, one entry per unordered dot
	// pair in combin.Pairs order: (0,1),(0,2),...,(1,2),...
	// Length C(ndots, 2). Any other order silently corrupts energies.
	W []float64

	// Alpha is the ndots×ngates coupling matrix mapping gate voltages
	// to dot chemical potentials.
	Alpha *mat.Dense
}

// ZeroParams returns zero-valued parameters of the right shapes for a
// system of ndots dots and ngates gates. Useful as a starting point for
// direct field assignment and for synthetic degenerate models in tests.
func ZeroParams(ndots, ngates int) Params {
	return Params{
		Mu0:   make([]float64, ndots),
		EAdd:  make([]float64, ndots),
		W:     make([]float64, ndots*(ndots-1)/2),
		Alpha: mat.NewDense(ndots, ngates, nil),
	}
}

// Option configures System construction via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds construction parameters resolved from Option setters.
type Options struct {
	// MaxElectrons bounds the per-dot occupancy of the enumerated basis.
	MaxElectrons int

	// Name labels the system; presets and device files set it.
	Name string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the documented defaults: MaxElectrons = 3 and
// the generic system name.
func DefaultOptions() Options {
	return Options{
		MaxElectrons: DefaultMaxElectrons,
		Name:         DefaultName,
		err:          nil,
	}
}

// WithMaxElectrons sets the per-dot occupancy bound of the basis.
//
//	m >= 0: enumerate occupancies 0..m per dot
//	m < 0:  invalid option → ErrOptionViolation
func WithMaxElectrons(m int) Option {
	return func(o *Options) {
		if m < 0 {
			o.err = fmt.Errorf("%w: MaxElectrons cannot be negative (%d)", ErrOptionViolation, m)

			return
		}
		o.MaxElectrons = m
	}
}

// WithName labels the system. Empty names are ignored.
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}
