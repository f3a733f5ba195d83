package sweep_test

import (
	"testing"

	"github.com/katalvlaran/qdsim/device"
	"github.com/katalvlaran/qdsim/grid"
	"github.com/katalvlaran/qdsim/sweep"
)

func benchPlane(b *testing.B) *grid.VoltageGrid {
	b.Helper()
	xs, err := grid.Axis(-40, 80, 32)
	if err != nil {
		b.Fatal(err)
	}
	vg, err := grid.SweepPlane([]float64{0, 0, 0}, 0, 1, xs, xs)
	if err != nil {
		b.Fatal(err)
	}

	return vg
}

// BenchmarkRun_Sequential measures a 32×32 triple-dot sweep on the
// single-threaded strategy.
func BenchmarkRun_Sequential(b *testing.B) {
	sys, err := device.TripleDot()
	if err != nil {
		b.Fatal(err)
	}
	vg := benchPlane(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sweep.Run(sys, vg, sweep.WithoutDetection()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_Parallel measures the same sweep with one task per row on
// all available cores.
func BenchmarkRun_Parallel(b *testing.B) {
	sys, err := device.TripleDot()
	if err != nil {
		b.Fatal(err)
	}
	vg := benchPlane(b)
	workers := sweep.DefaultWorkers()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sweep.Run(sys, vg, sweep.WithWorkers(workers), sweep.WithoutDetection()); err != nil {
			b.Fatal(err)
		}
	}
}
