package device

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qdsim/dotsystem"
)

// DoubleDot returns the reference two-dot, two-gate device. The preset
// only assigns the canonical parameter literals and constructs; there is
// no computation here.
func DoubleDot() (*dotsystem.System, error) {
	p := dotsystem.Params{
		Mu0:   []float64{120, 100},
		EAdd:  []float64{54, 52.8},
		W:     []float64{6},
		Alpha: mat.NewDense(2, 2, []float64{1, 0.25, 0.25, 1}),
	}

	return dotsystem.New(2, 2, p, dotsystem.WithName("doubledot"))
}

// TripleDot returns the reference three-dot, three-gate device. W is in
// canonical pair order (0,1),(0,2),(1,2).
func TripleDot() (*dotsystem.System, error) {
	p := dotsystem.Params{
		Mu0:  []float64{-27, -20, -25},
		EAdd: []float64{54, 52.8, 54},
		W:    []float64{6, 1, 5},
		Alpha: mat.NewDense(3, 3, []float64{
			1, 0.25, 0.1,
			0.25, 1, 0.25,
			0.1, 0.25, 1,
		}),
	}

	return dotsystem.New(3, 3, p, dotsystem.WithName("tripledot"))
}

// Builtin constructs a preset by name, case-insensitively. Returns
// ErrUnknownDevice (wrapped with the name) for anything Names does not
// list.
func Builtin(name string) (*dotsystem.System, error) {
	switch strings.ToLower(name) {
	case "doubledot":
		return DoubleDot()
	case "tripledot":
		return TripleDot()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDevice, name)
	}
}

// Names lists the built-in preset names accepted by Builtin.
func Names() []string { return []string{"doubledot", "tripledot"} }
