// Package combin provides the small exact-integer combinatorics the
// dot-system engine is sized by: binomial coefficients and the canonical
// enumeration of unordered index pairs.
//
// Determinism:
//
//	Pairs(n) fixes the canonical pair order for the whole module:
//	lexicographic over indices, (0,1),(0,2),...,(0,n-1),(1,2),...,(n-2,n-1).
//	Every consumer that stores one value per dot pair (the Coulomb
//	repulsion vector W, the per-state Coulomb terms) is ordered by it.
//	Two consumers disagreeing on this order would dot-product mismatched
//	vectors and produce wrong energies with no error signal, so the order
//	is defined exactly once, here.
//
// Complexity:
//
//	Choose: O(min(r, n-r))
//	Pairs:  O(n²)
package combin
