// Package store persists sweep runs in a single-file SQLite database:
// one row per run holding the device name, timing, grid shape and the
// JSON-encoded occupation and detector grids.
//
// The engine never imports store; the CLI saves runs after a sweep and
// lists or reloads them later. Runs swept without detection store empty
// detector payloads and load back with nil maps.
//
// Errors:
//   - ErrNilResult — SaveRun received nothing to persist
//   - ErrNotFound  — LoadRun's id matches no stored run
package store
