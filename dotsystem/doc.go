// Package dotsystem implements the classical electrostatic model of a
// multi-dot charge system: the capacitance-based energy functional over
// the full occupation basis, and the ground-state search that powers
// charge-stability diagrams.
//
// 🚀 The model
//
//	A System couples ngates gate electrodes to ndots dots. For a gate
//	voltage vector v, the energy of basis state i is
//
//	  eff  = -(Mu0 + Alpha·v)                      // per-dot potential
//	  E[i] = eff·state[i]                          // gate coupling
//	       + coulombTerms[i]·W                     // pairwise repulsion
//	       + additionWeights[i]·EAdd               // addition energy
//
//	All three terms are plain dot products against the per-state caches
//	built once by basis.New. Interaction is purely classical; there is
//	no tunnel coupling.
//
// ✨ Guarantees:
//   - Construction validates every parameter shape and builds the basis
//     exactly once; a System is immutable afterwards and safe to share
//     across goroutines (parallel sweeps rely on this).
//   - Energy evaluation is a pure function of the fixed parameters and
//     the input voltages. No special-casing for any real-valued input.
//   - Ground-state selection is deterministic: exact energy ties resolve
//     to the lowest basis index, which the fixed basis order makes
//     reproducible across runs and execution strategies.
//
// ⚙️ Usage:
//
//	p := dotsystem.Params{
//	    Mu0:   []float64{120, 100},
//	    EAdd:  []float64{54, 52.8},
//	    W:     []float64{6}, // combin.Pairs order
//	    Alpha: mat.NewDense(2, 2, []float64{1, 0.25, 0.25, 1}),
//	}
//	sys, err := dotsystem.New(2, 2, p, dotsystem.WithName("doubledot"))
//	state, err := sys.GroundState([]float64{0, 0})
//
// Errors:
//   - ErrShape           — parameter dimensions disagree with ndots/ngates
//   - ErrGateLen         — voltage vector length differs from ngates
//   - ErrOptionViolation — invalid functional option
//
// Complexity: Energies is O(stateCount · (ndots + pairCount)) per call;
// GroundState adds a single O(stateCount) scan.
package dotsystem
