// Package sweep turns a grid of gate voltages into a charge-stability
// diagram: the ground-state occupation of every voltage cell, plus the
// transition maps a detector extracts from the assembled grid.
//
// 🚀 The engine
//
//	Run walks an npointsx×npointsy voltage grid, solves the ground state
//	at each cell through the shared read-only System, and stores the
//	occupation vectors in a grid of the same shape. The problem is
//	embarrassingly parallel: cells are independent, so the only
//	coordination the parallel strategy needs is the final barrier.
//
// ✨ Guarantees:
//   - Strategy selection is explicit. WithWorkers(1) runs the sequential
//     row-major loop; WithWorkers(n > 1) dispatches one task per row on
//     an errgroup bounded to n. Run never probes the environment;
//     DefaultWorkers() is offered to callers, never applied silently.
//   - Both strategies produce bit-identical occupation grids: every cell
//     is a pure function of the fixed parameters and its voltages, and
//     ground-state ties resolve by basis index, never by timing.
//   - A sweep runs to completion or fails as a whole. The first worker
//     error aborts the run and no partial grid escapes.
//   - A gate-count mismatch between grid and system is rejected before
//     any computation (ErrGateCount).
//
// ⚙️ Usage:
//
//	sys, _ := device.DoubleDot()
//	xs, _ := grid.Axis(-40, 120, 250)
//	ys, _ := grid.Axis(-40, 120, 250)
//	vg, _ := grid.SweepPlane(make([]float64, sys.Gates()), 0, 1, xs, ys)
//	res, err := sweep.Run(sys, vg, sweep.WithWorkers(sweep.DefaultWorkers()))
//
// After assembly the occupation grid is handed to the configured
// Detector (the transitions package by default; swap it with
// WithDetector, or skip the pass with WithoutDetection). Result carries
// the occupations, the detector maps and the wall-clock Elapsed.
//
// Errors:
//   - ErrSystemNil, ErrGridNil — nil inputs
//   - ErrGateCount             — leading-dimension mismatch, nothing computed
//   - ErrOptionViolation       — invalid functional option
//
// Complexity: O(nx · ny · stateCount · (ndots + pairCount)) energy
// evaluations, divided across workers in the parallel strategy.
package sweep
