package dotsystem_test

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qdsim/dotsystem"
)

// ExampleSystem_GroundState builds the reference double-dot model and
// asks for the charge configuration at zero applied gate voltage.
func ExampleSystem_GroundState() {
	p := dotsystem.Params{
		Mu0:   []float64{120, 100},
		EAdd:  []float64{54, 52.8},
		W:     []float64{6},
		Alpha: mat.NewDense(2, 2, []float64{1, 0.25, 0.25, 1}),
	}
	sys, err := dotsystem.New(2, 2, p, dotsystem.WithName("doubledot"))
	if err != nil {
		log.Fatal(err)
	}

	state, err := sys.GroundState([]float64{0, 0})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s holds %d states; ground state at (0,0) is %v\n",
		sys.Name(), sys.StateCount(), state)
	// Output:
	// doubledot holds 16 states; ground state at (0,0) is [2 1]
}
