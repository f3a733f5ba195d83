package dotsystem_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qdsim/dotsystem"
)

func benchSystem(b *testing.B) *dotsystem.System {
	b.Helper()
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
	sys, err := dotsystem.New(3, 3, p)
	if err != nil {
		b.Fatal(err)
	}

	return sys
}

// BenchmarkEnergies measures a full 64-state evaluation with the
// allocating entry point.
func BenchmarkEnergies(b *testing.B) {
	sys := benchSystem(b)
	gv := []float64{10, -5, 3}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sys.Energies(gv); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGroundStateIndexInto measures the sweep hot path: reused
// energy buffer, index-only result.
func BenchmarkGroundStateIndexInto(b *testing.B) {
	sys := benchSystem(b)
	gv := []float64{10, -5, 3}
	buf := make([]float64, sys.StateCount())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sys.GroundStateIndexInto(buf, gv); err != nil {
			b.Fatal(err)
		}
	}
}
