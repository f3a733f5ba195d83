package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/qdsim/sweep"
)

// Store wraps a SQLite connection holding saved sweep runs.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates the run database at path and applies the
// schema. The connection uses WAL with a busy timeout, so concurrent
// readers stay cheap.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()

		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		device TEXT NOT NULL,
		created_ns INTEGER NOT NULL,
		nx INTEGER NOT NULL,
		ny INTEGER NOT NULL,
		ndots INTEGER NOT NULL,
		elapsed_ns INTEGER NOT NULL,
		occupations TEXT NOT NULL,
		diagram TEXT NOT NULL,
		deloc TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_ns);
	`
	_, err := s.conn.Exec(schema)

	return err
}

// runRow is the raw table row; grids travel as JSON text.
type runRow struct {
	ID          string `db:"id"`
	Device      string `db:"device"`
	CreatedNS   int64  `db:"created_ns"`
	NX          int    `db:"nx"`
	NY          int    `db:"ny"`
	NDots       int    `db:"ndots"`
	ElapsedNS   int64  `db:"elapsed_ns"`
	Occupations string `db:"occupations"`
	Diagram     string `db:"diagram"`
	Deloc       string `db:"deloc"`
}

// SaveRun persists one sweep result under a fresh uuid and returns the
// id. Detector maps may be nil (runs swept without detection); the
// occupation grid is required.
func (s *Store) SaveRun(device string, res *sweep.Result) (string, error) {
	if res == nil || res.Occupations == nil {
		return "", ErrNilResult
	}

	occJSON, err := encodeOccupations(res.Occupations)
	if err != nil {
		return "", err
	}
	diagramJSON, err := encodeScalar(res.Diagram)
	if err != nil {
		return "", err
	}
	delocJSON, err := encodeScalar(res.Deloc)
	if err != nil {
		return "", err
	}

	nx, ny, dots := res.Occupations.Dims()
	id := uuid.NewString()
	_, err = s.conn.Exec(`INSERT INTO runs
		(id, device, created_ns, nx, ny, ndots, elapsed_ns, occupations, diagram, deloc)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, device, time.Now().UnixNano(), nx, ny, dots,
		res.Elapsed.Nanoseconds(), occJSON, diagramJSON, delocJSON,
	)
	if err != nil {
		return "", fmt.Errorf("store: insert run: %w", err)
	}

	return id, nil
}

// LoadRun reconstructs the run stored under id, grids included.
// Returns ErrNotFound (wrapped with the id) when it does not exist.
func (s *Store) LoadRun(id string) (*StoredRun, error) {
	var row runRow
	err := s.conn.Get(&row, `SELECT id, device, created_ns, nx, ny, ndots,
		elapsed_ns, occupations, diagram, deloc FROM runs WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load run %s: %w", id, err)
	}

	occ, err := decodeOccupations(row.Occupations)
	if err != nil {
		return nil, err
	}
	diagram, err := decodeScalar(row.Diagram)
	if err != nil {
		return nil, err
	}
	deloc, err := decodeScalar(row.Deloc)
	if err != nil {
		return nil, err
	}

	return &StoredRun{
		RunMeta:     row.meta(),
		Occupations: occ,
		Diagram:     diagram,
		Deloc:       deloc,
	}, nil
}

// ListRuns returns the metadata of every stored run, newest first.
func (s *Store) ListRuns() ([]RunMeta, error) {
	var rows []runRow
	err := s.conn.Select(&rows, `SELECT id, device, created_ns, nx, ny, ndots, elapsed_ns
		FROM runs ORDER BY created_ns DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}

	metas := make([]RunMeta, len(rows))
	for i, row := range rows {
		metas[i] = row.meta()
	}

	return metas, nil
}

func (r runRow) meta() RunMeta {
	return RunMeta{
		ID:        r.ID,
		Device:    r.Device,
		CreatedAt: time.Unix(0, r.CreatedNS),
		NX:        r.NX,
		NY:        r.NY,
		NDots:     r.NDots,
		Elapsed:   time.Duration(r.ElapsedNS),
	}
}
