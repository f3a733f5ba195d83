package dotsystem

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Energies returns the energy of every basis state at the given gate
// voltages, aligned with the basis by index. Pure function of the fixed
// parameters and gv; no special-casing for any real-valued input.
// Returns ErrGateLen when len(gv) != Gates().
// Complexity: O(stateCount · (ndots + pairCount)).
func (s *System) Energies(gv []float64) ([]float64, error) {
	dst := make([]float64, s.b.Len())
	if err := s.EnergiesInto(dst, gv); err != nil {
		return nil, err
	}

	return dst, nil
}

// EnergiesInto writes the per-state energies into dst, which must have
// exactly StateCount() entries. This is the allocation-light path used
// by sweeps that evaluate many voltage points with a reused buffer.
// Returns ErrGateLen or ErrShape on malformed inputs.
func (s *System) EnergiesInto(dst, gv []float64) error {
	if len(gv) != s.gates {
		return fmt.Errorf("%w: got %d, want %d", ErrGateLen, len(gv), s.gates)
	}
	if len(dst) != s.b.Len() {
		return fmt.Errorf("%w: dst length %d, want %d states", ErrShape, len(dst), s.b.Len())
	}

	// effective potential per dot: eff = -(mu0 + alpha·gv)
	eff := make([]float64, s.dots)
	mat.NewVecDense(s.dots, eff).MulVec(s.alpha, mat.NewVecDense(s.gates, gv))
	floats.Add(eff, s.mu0)
	floats.Scale(-1, eff)

	for i := 0; i < s.b.Len(); i++ {
		e := floats.Dot(eff, s.b.StateF64(i))
		e += floats.Dot(s.b.CoulombTerms(i), s.w)
		e += floats.Dot(s.b.AdditionWeights(i), s.eAdd)
		dst[i] = e
	}

	return nil
}

// GroundState returns a copy of the occupation vector minimizing the
// energy at gv. Exact ties resolve to the lowest basis index; the fixed
// basis order makes this fully deterministic.
// Returns ErrGateLen on a malformed voltage vector.
func (s *System) GroundState(gv []float64) ([]int, error) {
	idx, err := s.GroundStateIndex(gv)
	if err != nil {
		return nil, err
	}
	out := make([]int, s.dots)
	copy(out, s.b.State(idx))

	return out, nil
}

// GroundStateIndex returns the basis index of the minimum-energy state
// at gv, with the same lowest-index tie-break as GroundState.
func (s *System) GroundStateIndex(gv []float64) (int, error) {
	buf := make([]float64, s.b.Len())

	return s.GroundStateIndexInto(buf, gv)
}

// GroundStateIndexInto is the allocation-light variant used by sweeps:
// buf must have StateCount() entries and is overwritten with the
// per-state energies.
func (s *System) GroundStateIndexInto(buf, gv []float64) (int, error) {
	if err := s.EnergiesInto(buf, gv); err != nil {
		return -1, err
	}

	// floats.MinIdx returns the first index of the minimum, which is
	// exactly the lowest-index tie-break the basis order guarantees.
	return floats.MinIdx(buf), nil
}
