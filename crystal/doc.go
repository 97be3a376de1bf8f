// Package crystal models a periodic crystal structure: a 3×3 lattice basis
// plus an ordered collection of atoms.
//
// What:
//
//   - Structure keeps one canonical atom representation — fractional
//     coordinates (coefficients of the lattice basis) — and derives the
//     Cartesian view on demand with Cartesian(). The two views can therefore
//     never fall out of sync; there is no reconcile step to forget.
//   - SetLattice is the explicit "basis changed" operation; SetAtomsDirect
//     and SetAtomsCartesian replace the atom set from either view.
//   - Atoms are kept sorted by element symbol (stable, insertion order
//     preserved within an element) so grouped-by-element export is
//     deterministic.
//   - Transform reorients the lattice (and the advisory viewing angles)
//     without moving atoms in fractional space.
//   - Combine merges two structures sharing a basis along the third lattice
//     vector, producing the bicrystal that collision removal then prunes.
//   - MutualViewingAngle searches two structures' near-neighbor direction
//     sets for an (anti)parallel pair within a tolerance — advisory
//     orientation matching for external callers.
//
// Why:
//
//   - Grain-boundary construction tiles, joins, and prunes atom sets; every
//     one of those steps needs both coordinate views of the same atoms, and
//     a desynchronized pair is a silent correctness bug.
//
// Errors:
//
//   - ErrSingularLattice: basis determinant magnitude at or below 5e-4.
//   - ErrNilStructure: nil *Structure passed to a package function.
//
// Construction never returns a partial Structure: validation failures
// propagate immediately and leave nothing behind.
package crystal
