// Package supercell grows a crystal structure to fill a target lattice cell
// by breadth-first search over integer lattice translations.
//
// What:
//
//   - Grow tiles periodic copies of a source cell into the parallelepiped
//     spanned by a target lattice, keeping only atoms whose fractional
//     coordinates in the target basis fall inside [0,1)^3, then replaces the
//     structure's basis and atom set with the result.
//
// Why BFS instead of a bounding-box sweep:
//
//   - The frontier only expands from translations that contributed at least
//     one surviving atom, so shells guaranteed to lie outside the target cell
//     are never materialized. Oblique targets grow many shells, near-parallel
//     targets very few, without either case being special-cased.
//
// Behavior worth knowing:
//
//   - MaxAtoms is a soft cap checked only between shells; the final count can
//     modestly exceed it. This mirrors the shell-at-a-time accounting and is
//     intentional.
//   - The queue is strictly FIFO and the direction table has a fixed order,
//     so output is deterministic for identical inputs.
//   - The target inverse is computed once with a tiny diagonal regularization
//     (+1e-5·I) to survive pathological near-singular targets.
//
// Complexity: O(S·n) for S explored shells over n source atoms, plus the
// final dedup; memory O(result + visited set).
//
// Errors:
//
//   - ErrNilStructure: nil source structure.
//   - ErrBadMaxAtoms: MaxAtoms ≤ 0.
//   - ErrSingularTarget: target basis is singular.
//   - ErrEmptySupercell: the frontier exhausted with zero surviving atoms.
package supercell
