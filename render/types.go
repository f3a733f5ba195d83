// Package render: output options and error definitions for heatmap
// rendering.
package render

import (
	"errors"

	"gonum.org/v1/plot/vg"
)

// Default canvas geometry and palette resolution.
const (
	DefaultWidth  = 14 * vg.Centimeter
	DefaultHeight = 12 * vg.Centimeter
	DefaultLevels = 256
)

// Sentinel errors for rendering.
var (
	// ErrNilGrid is returned when the grid to render is nil.
	ErrNilGrid = errors.New("render: nil grid")

	// ErrAxisLen is returned when the axis lengths do not match the
	// grid dimensions.
	ErrAxisLen = errors.New("render: axis length mismatch")

	// ErrDotIndex is returned when the requested dot does not exist.
	ErrDotIndex = errors.New("render: dot index out of range")

	// ErrPath is returned when no output path is given.
	ErrPath = errors.New("render: output path is empty")
)

// HeatmapOptions controls one rendered image. Path is required; the
// zero value of every other field falls back to a documented default.
type HeatmapOptions struct {
	// Path is the output image file; the extension selects the format
	// (".png" in all shipped tooling).
	Path string

	// Title, XLabel and YLabel annotate the plot. Optional.
	Title  string
	XLabel string
	YLabel string

	// Width and Height give the canvas size; zero values select
	// DefaultWidth/DefaultHeight.
	Width  vg.Length
	Height vg.Length

	// Levels is the number of palette steps; values below 2 select
	// DefaultLevels.
	Levels int
}

// DefaultHeatmapOptions returns the documented defaults with an empty
// Path, which the caller must fill in.
func DefaultHeatmapOptions() HeatmapOptions {
	return HeatmapOptions{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Levels: DefaultLevels,
	}
}

// normalized fills the zero-valued knobs with their defaults.
func (o HeatmapOptions) normalized() HeatmapOptions {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Levels < 2 {
		o.Levels = DefaultLevels
	}

	return o
}
