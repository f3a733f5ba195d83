// Package render draws sweep results as heatmap images: the
// transition-intensity and delocalization maps a detector produces, or
// the per-dot charge straight from an occupation grid.
//
// Rendering is a thin layer over gonum/plot with a smooth blue-red
// palette. The engine packages never import render; the CLI and the
// examples wire sweep results into it explicitly.
//
// Errors:
//   - ErrNilGrid  — nothing to render
//   - ErrAxisLen  — axis values do not match the grid dimensions
//   - ErrDotIndex — Occupancy asked for a dot the grid does not have
//   - ErrPath     — no output path supplied
package render
