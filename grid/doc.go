// Package grid provides the dense 2-D containers a stability-diagram
// sweep flows through: gate-voltage grids on the way in, occupation and
// scalar grids on the way out.
//
// All three containers use flat row-major storage with x outer and y
// inner, the one cell order every producer and consumer in this module
// agrees on. A VoltageGrid is conceptually an (ngates, npointsx,
// npointsy) array: one full gate vector per cell, gathered on access.
//
// Index accessors (At, Set) follow gonum/mat conventions and panic on
// out-of-range indices; constructors validate dimensions and return
// sentinel errors.
//
// SweepPlane builds the standard two-gate sweep: every cell holds a copy
// of a base vector with the two swept gates replaced by the cell's axis
// values.
package grid
