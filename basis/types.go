package basis

import "errors"

// MaxStates caps the enumerable state space. Construction refuses larger
// spaces instead of exhausting memory on a mistyped dimension.
const MaxStates = 1 << 20

// Sentinel errors for basis construction.
var (
	// ErrDots is returned when ndots is below 1.
	ErrDots = errors.New("basis: ndots must be at least 1")

	// ErrMaxElectrons is returned when maxelectrons is negative.
	ErrMaxElectrons = errors.New("basis: maxelectrons must be non-negative")

	// ErrTooLarge is returned when (maxelectrons+1)^ndots exceeds MaxStates.
	ErrTooLarge = errors.New("basis: state space too large")
)

// Basis holds the sorted enumeration of occupation states and the
// per-state caches, all in flat row-major storage. Every slice returned
// by an accessor is a read-only view into that storage; callers must not
// modify it. A Basis is immutable after New and safe for concurrent use.
type Basis struct {
	dots         int
	maxElectrons int
	n            int        // number of states
	pairs        [][2]int   // canonical dot pairs, combin.Pairs order

	states    []int          // n×dots occupation vectors
	statesF64 []float64      // float64 copy of states
	total     []int          // per-state total occupancy
	addition  []float64      // n×dots addition-energy weights
	coulomb   []float64      // n×len(pairs) pairwise products
	lookup    map[string]int // state key → basis index
}

// Len returns the number of basis states, (maxelectrons+1)^ndots.
func (b *Basis) Len() int { return b.n }

// Dots returns the number of dots each state spans.
func (b *Basis) Dots() int { return b.dots }

// MaxElectrons returns the per-dot occupancy bound.
func (b *Basis) MaxElectrons() int { return b.maxElectrons }

// PairCount returns the number of unordered dot pairs, C(ndots, 2).
func (b *Basis) PairCount() int { return len(b.pairs) }

// Pairs returns the canonical dot-pair enumeration the Coulomb terms are
// laid out by. Read-only view.
func (b *Basis) Pairs() [][2]int { return b.pairs }
