// Package store: record types and error definitions for run
// persistence.
package store

import (
	"errors"
	"time"

	"github.com/katalvlaran/qdsim/grid"
)

// Sentinel errors for persistence.
var (
	// ErrNilResult is returned when there is no sweep result to save.
	ErrNilResult = errors.New("store: nil sweep result")

	// ErrNotFound is returned when no run carries the requested id.
	ErrNotFound = errors.New("store: run not found")
)

// RunMeta is the listing record of one stored sweep run.
type RunMeta struct {
	// ID is the run's uuid, assigned by SaveRun.
	ID string `db:"id"`

	// Device names the swept system, as reported by the caller.
	Device string `db:"device"`

	// CreatedAt is the save time.
	CreatedAt time.Time `db:"-"`

	// NX, NY and NDots give the stored grid shape.
	NX    int `db:"nx"`
	NY    int `db:"ny"`
	NDots int `db:"ndots"`

	// Elapsed is the sweep's own wall-clock duration.
	Elapsed time.Duration `db:"-"`
}

// StoredRun is a fully reconstructed run: the metadata plus the grids.
// Diagram and Deloc are nil when the run was swept without detection.
type StoredRun struct {
	RunMeta

	Occupations *grid.OccupationGrid
	Diagram     *grid.ScalarGrid
	Deloc       *grid.ScalarGrid
}
