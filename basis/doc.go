// Package basis enumerates the charge-occupation states of a multi-dot
// system and precomputes the per-state quantities the energy model
// dot-products against.
//
// 🚀 What is a basis?
//
//	For ndots dots each holding 0..maxelectrons electrons, the basis is
//	the full set of (maxelectrons+1)^ndots occupation vectors. Energy
//	evaluation scores every basis state at once, so the enumeration and
//	its caches are built exactly once and never mutated afterwards.
//
// ✨ Cached per state, aligned by index:
//   - the occupation vector itself (int and float64 forms)
//   - total occupancy (sum of entries)
//   - addition-energy weights: 0.5·n·(n+1) per dot
//   - pairwise Coulomb terms: occ[a]·occ[b] per dot pair, laid out in
//     the canonical order of combin.Pairs
//
// Determinism:
//
//	States are generated in odometer order (last dot varies fastest) and
//	stable-sorted by ascending total occupancy, so ties keep generation
//	order. Identical inputs always produce identical contents; ground
//	state selection relies on this fixed order to break energy ties.
//
// Complexity:
//
//	New: O((maxelectrons+1)^ndots · ndots) time and memory.
//	The exponential state count is the engine's scalability ceiling;
//	keep ndots and maxelectrons small (single digits).
//
// Errors:
//   - ErrDots         — ndots < 1
//   - ErrMaxElectrons — maxelectrons < 0
//   - ErrTooLarge     — state count would exceed MaxStates
package basis
