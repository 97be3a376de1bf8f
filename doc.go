// Package grainbound builds grain-boundary crystal structures: it grows
// crystals into arbitrary supercells, joins two grains along a shared lattice,
// and prunes atoms that sit too close to each other across the periodic
// boundaries of the joined cell.
//
// 🚀 What is grainbound?
//
//	A library and CLI for assembling collision-free bicrystal supercells:
//		• Geometry primitives: 3-vectors, 3×3 lattices, fractional ↔ Cartesian
//		• Crystal structures: dual direct/Cartesian views over one canonical store
//		• Supercell growth: breadth-first shell expansion into any target lattice
//		• Grain joining: stack two grains along the third lattice vector
//		• Collision removal: interface, face-pair, and corner passes plus a
//		  minimum-image alternative
//		• I/O: VASP POSCAR in, POSCAR / XYZ / EMS out, JSON .gbconf runs
//
// ✨ Why choose grainbound?
//
//   - Deterministic by default – fixed pass order, stable tie-breaking,
//     injectable randomness when you want it
//   - Pure fractional core – Cartesian views are derived, never stored,
//     so lattice edits can never desynchronize coordinates
//   - Explicit errors – every failure mode is a named sentinel you can
//     test with errors.Is
//
// The module is organized as flat packages, one concern each:
//
//	geom/      — vectors, matrices, unit-cell membership, corner enumeration
//	crystal/   — the Structure type, viewing angles, grain joining
//	supercell/ — BFS growth of a structure into a target lattice
//	collision/ — boundary collision removal passes and the threshold table
//	vaspio/    — POSCAR reader, POSCAR/XYZ/EMS writers
//	gbconfig/  — the .gbconf JSON run configuration
//	cmd/       — the grainbound command-line driver
//
// Quick example:
//
//	st, _ := crystal.New("MgO", 1.0, basis, atoms, crystal.DefaultOptions())
//	_, _ = supercell.Grow(st, target, supercell.DefaultGrowOptions())
//	gb, _ := crystal.Combine(st, other)
//	res, _ := collision.Remove(gb, tbl, collision.DefaultOptions())
//
// Happy building!
package grainbound
