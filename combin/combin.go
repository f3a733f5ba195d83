package combin

// Choose returns the exact binomial coefficient C(n, r) in integer
// arithmetic. The multiplication is bounded by the smaller of r and n-r,
// keeping intermediate products small. Choose(n, 0) == 1; Choose(n, r) == 0
// when r > n. Behavior is undefined for negative inputs.
// Complexity: O(min(r, n-r)).
func Choose(n, r int) int {
	if n-r < r {
		r = n - r
	}
	if r < 0 {
		return 0
	}
	if r == 0 {
		return 1
	}
	numer, denom := 1, 1
	for k := 0; k < r; k++ {
		numer *= n - k
		denom *= k + 1
	}

	return numer / denom
}

// PairCount returns the number of unordered pairs among n items,
// C(n, 2). Zero for n < 2. This sizes every per-pair parameter vector.
// Complexity: O(1).
func PairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// Pairs enumerates all unordered index pairs (a, b) with 0 ≤ a < b < n in
// the canonical lexicographic order: (0,1),(0,2),...,(0,n-1),(1,2),...
// The result has exactly PairCount(n) entries. This enumeration is the
// single source of truth for per-pair vector layouts.
// Complexity: O(n²).
func Pairs(n int) [][2]int {
	ps := make([][2]int, 0, PairCount(n))
	for a := 0; a < n-1; a++ {
		for b := a + 1; b < n; b++ {
			ps = append(ps, [2]int{a, b})
		}
	}

	return ps
}
