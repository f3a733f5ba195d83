// Package transitions derives charge-transition maps from a computed
// occupation grid, marking the boundary lines that make a stability
// diagram readable.
//
// 🚀 What it computes
//
//	A sweep's ground-state occupations form flat regions separated by
//	lines where the occupation vector changes between neighboring cells.
//	For every cell the detector compares the occupation vector against
//	its forward neighbors (x+1, y) and (x, y+1) and accumulates two maps:
//
//	  diagram — total electron movement across the cell's forward edges,
//	            the L1 distance between occupation vectors. Zero inside a
//	            stable region, positive on every transition line.
//	  deloc   — electrons rearranged between dots with the total count
//	            unchanged, (L1 - |Δtotal|)/2 per edge. Zero on
//	            dot-reservoir lines, positive on interdot lines, so the
//	            two line families can be told apart.
//
// Edge cells have fewer forward neighbors and no padding is applied; a
// 1×1 grid yields all-zero maps.
//
// Determinism:
//
//	Pure integer arithmetic over the input grid. Identical grids always
//	produce identical maps.
//
// Errors:
//   - ErrNilGrid      — the occupation grid is nil
//   - ErrGridTooSmall — the occupation grid has no cells
package transitions
