// Package collision prunes unphysically close atoms from the seam regions of
// a combined (bicrystal) structure: the internal interface plane, the three
// periodic face pairs, and the eight corners created by wrap-around.
//
// What:
//
//   - Table: a symmetric element-pair → minimum-separation mapping. A pair
//     with no entry is unconstrained and always safe — a deliberate
//     permissive default, not missing data.
//   - RemoveWithinRegion: sequential greedy pruning of one atom sequence;
//     the earlier-indexed atom always wins ties.
//   - RemoveBetweenRegions: prunes the second sequence against the first;
//     the first is never modified.
//   - Remove: the five-pass pipeline — interface (fractional z ≈ 0.5), the
//     three axis face pairs (top slab aligned to its periodic image before
//     testing), then corners — in that fixed order, reporting per-pass and
//     total removal counts.
//   - RemoveMinImage: an alternate whole-cell strategy using the
//     minimum-image convention. It is selectable on its own and never
//     replaces the five-pass pipeline.
//
// Why a fixed pass order:
//
//   - Earlier passes remove atoms later passes would otherwise test, so the
//     order is part of the output contract: identical inputs (and an
//     identical shuffle source, when RandomDelete is set) reproduce
//     identical structures.
//
// Tie-breaking:
//
//   - By default removal is deterministic index order. Options.RandomDelete
//     shuffles each region with the injected rand.Rand first, trading
//     determinism for removal-bias avoidance; determinism is recovered by
//     seeding the source.
//
// Complexity: O(k²) per region over the k boundary-slab atoms, not the full
// atom count.
//
// Errors:
//
//   - ErrNilStructure: nil *crystal.Structure.
//   - ErrBadRadius: boundary radius outside (0, 0.5).
//   - ErrBadAxis: face-pair axis outside {0, 1, 2}.
package collision
