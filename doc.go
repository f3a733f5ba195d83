// Package qdsim simulates the classical electrostatics of multi-dot
// charge systems — from occupation bases and capacitance energy models
// to parallel voltage sweeps, charge-stability diagrams and their
// rendering and storage.
//
// 🚀 What is qdsim?
//
//	A deterministic, concurrency-friendly simulation library that brings together:
//		• Combinatorics: canonical dot-pair enumeration shared by every layer
//		• Bases: all integer charge configurations up to a per-dot bound
//		• Energy model: gate coupling, Coulomb repulsion & addition energies
//		• Ground states: reproducible argmin with a fixed tie order
//		• Sweeps: 2-D gate-voltage planes, sequential or parallel, bit-identical
//		• Transitions: honeycomb boundary & delocalization maps
//		• Devices: built-in double/triple-dot presets + YAML definitions
//		• Output: PNG heatmaps and a SQLite run archive
//
// ✨ Why choose qdsim?
//
//   - Deterministic by construction – same inputs, same diagram, any worker count
//   - Rock-solid guarantees – validated shapes, sentinel errors, pure evaluation
//   - Classical and fast – no quantum corrections, just dot products over caches
//   - Extensible – swap the transition detector, load devices from YAML
//
// Under the hood, everything is organized as flat library packages:
//
//	combin/      — pair enumeration & binomial helpers
//	basis/       — occupation bases with per-state energy caches
//	dotsystem/   — the energy model & ground-state solver
//	grid/        — voltage, occupation & scalar grids
//	sweep/       — the stability-diagram engine (sequential + parallel)
//	transitions/ — the built-in transition detector
//	device/      — presets & YAML device definitions
//	plane/       — polygon & 2-D surface-fit utilities
//	render/      — heatmap PNGs of sweep results
//	store/       — SQLite persistence of runs
//
// Quick ASCII example:
//
//	333333
//	222223
//	112223
//	011123
//	001123
//	000123
//
//	a charge-stability diagram: each plateau is one stable total charge,
//	and the steps between plateaus are the transition lines a detector
//	extracts.
//
// The cmd/qdsim CLI sweeps, renders and archives diagrams end to end;
// examples/ holds runnable demos of the honeycomb workflow.
//
//	go get github.com/katalvlaran/qdsim
package qdsim
