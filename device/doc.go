// Package device ships ready-made dot-system configurations: the two
// reference presets every demo and test leans on, and a YAML definition
// format for describing custom devices without recompiling.
//
// The presets carry the canonical parameter literals:
//
//	DoubleDot: 2 dots, 2 gates, mu0=[120,100], Eadd=[54,52.8], W=[6],
//	           alpha=[[1,0.25],[0.25,1]]
//	TripleDot: 3 dots, 3 gates, mu0=[-27,-20,-25], Eadd=[54,52.8,54],
//	           W=[6,1,5], alpha=[[1,0.25,0.1],[0.25,1,0.25],[0.1,0.25,1]]
//
// Builtin resolves either preset by name; Names lists them. Definition,
// Load and LoadFile handle the YAML form; decoding is strict (unknown
// fields are errors) and Build hands all shape validation to
// dotsystem.New.
//
// Errors:
//   - ErrDefinition    — YAML decode failure or ragged alpha rows
//   - ErrUnknownDevice — Builtin received a name Names does not list
package device
