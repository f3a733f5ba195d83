package transitions

import "errors"

// Sentinel errors returned by FindTransitions.
var (
	// ErrNilGrid is returned when the occupation grid is nil.
	ErrNilGrid = errors.New("transitions: nil occupation grid")

	// ErrGridTooSmall is returned when the occupation grid has no cells.
	ErrGridTooSmall = errors.New("transitions: occupation grid has no cells")
)
