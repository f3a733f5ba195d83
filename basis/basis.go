package basis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/qdsim/combin"
)

// New enumerates every occupation vector for ndots dots holding up to
// maxElectrons electrons each, sorts the enumeration by ascending total
// occupancy (stable, so ties keep odometer order), and precomputes the
// aligned per-state caches.
// Returns ErrDots, ErrMaxElectrons or ErrTooLarge on invalid dimensions.
// Complexity: O((maxElectrons+1)^ndots · ndots) time and memory.
func New(ndots, maxElectrons int) (*Basis, error) {
	// --- 1. Validate dimensions ---
	if ndots < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDots, ndots)
	}
	if maxElectrons < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrMaxElectrons, maxElectrons)
	}

	// --- 2. Size the state space, guarding the exponential blow-up ---
	levels := maxElectrons + 1
	n := 1
	for d := 0; d < ndots; d++ {
		n *= levels
		if n > MaxStates {
			return nil, fmt.Errorf("%w: %d^%d exceeds %d", ErrTooLarge, levels, ndots, MaxStates)
		}
	}

	// --- 3. Enumerate states in odometer order (last dot fastest) ---
	raw := make([]int, n*ndots)
	totals := make([]int, n)
	odo := make([]int, ndots)
	for i := 0; i < n; i++ {
		copy(raw[i*ndots:(i+1)*ndots], odo)
		sum := 0
		for d := 0; d < ndots; d++ {
			sum += odo[d]
		}
		totals[i] = sum
		for d := ndots - 1; d >= 0; d-- {
			odo[d]++
			if odo[d] < levels {
				break
			}
			odo[d] = 0
		}
	}

	// --- 4. Stable-sort by total occupancy via an index permutation ---
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool { return totals[perm[i]] < totals[perm[j]] })

	// --- 5. Materialize the sorted states and their aligned caches ---
	pairs := combin.Pairs(ndots)
	b := &Basis{
		dots:         ndots,
		maxElectrons: maxElectrons,
		n:            n,
		pairs:        pairs,
		states:       make([]int, n*ndots),
		statesF64:    make([]float64, n*ndots),
		total:        make([]int, n),
		addition:     make([]float64, n*ndots),
		coulomb:      make([]float64, n*len(pairs)),
		lookup:       make(map[string]int, n),
	}
	for i, src := range perm {
		row := raw[src*ndots : (src+1)*ndots]
		copy(b.states[i*ndots:(i+1)*ndots], row)
		b.total[i] = totals[src]
		for d, occ := range row {
			b.statesF64[i*ndots+d] = float64(occ)
			// closed form of 1+2+...+occ, the addition-energy weight
			b.addition[i*ndots+d] = 0.5 * float64(occ) * float64(occ+1)
		}
		for p, pair := range pairs {
			b.coulomb[i*len(pairs)+p] = float64(row[pair[0]] * row[pair[1]])
		}
		b.lookup[stateKey(row)] = i
	}

	return b, nil
}

// State returns the i-th occupation vector. Read-only view.
// Complexity: O(1).
func (b *Basis) State(i int) []int {
	return b.states[i*b.dots : (i+1)*b.dots]
}

// StateF64 returns the i-th occupation vector as float64 values, ready
// for dot products. Read-only view. Complexity: O(1).
func (b *Basis) StateF64(i int) []float64 {
	return b.statesF64[i*b.dots : (i+1)*b.dots]
}

// TotalOccupancy returns the electron count of state i summed over dots.
// Complexity: O(1).
func (b *Basis) TotalOccupancy(i int) int { return b.total[i] }

// AdditionWeights returns the addition-energy weights 0.5·n·(n+1) of
// state i, one per dot. Read-only view. Complexity: O(1).
func (b *Basis) AdditionWeights(i int) []float64 {
	return b.addition[i*b.dots : (i+1)*b.dots]
}

// CoulombTerms returns the pairwise occupancy products of state i, one
// per dot pair in combin.Pairs order. The Coulomb repulsion vector W must
// use the same order or the energy dot product is silently wrong.
// Read-only view. Complexity: O(1).
func (b *Basis) CoulombTerms(i int) []float64 {
	np := len(b.pairs)

	return b.coulomb[i*np : (i+1)*np]
}

// Index returns the basis index of the given occupation vector, or -1 if
// the vector has the wrong length or holds an occupancy outside the
// basis. Complexity: O(ndots).
func (b *Basis) Index(state []int) int {
	if len(state) != b.dots {
		return -1
	}
	i, ok := b.lookup[stateKey(state)]
	if !ok {
		return -1
	}

	return i
}

// Contains reports whether the given occupation vector is a basis member.
// Complexity: O(ndots).
func (b *Basis) Contains(state []int) bool { return b.Index(state) >= 0 }

// stateKey encodes an occupation vector as a lookup key.
func stateKey(state []int) string {
	var sb strings.Builder
	for d, occ := range state {
		if d > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(occ))
	}

	return sb.String()
}
