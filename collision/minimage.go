package collision

import (
	"github.com/lattikit/grainbound/crystal"
)

// RemoveMinImage is an alternate whole-cell removal strategy: instead of the
// five special-cased boundary regions it applies the minimum-image convention
// to every atom pair, shuffles the atom order, and sequentially accepts each
// atom that is safely apart from all previously accepted atoms.
//
// It is offered as a selectable strategy alongside Remove and never runs as
// part of the five-pass pipeline. The shuffle uses Options.Rand (fixed-seed
// fallback), so results are reproducible for a seeded source.
// Returns the number of atoms removed.
func RemoveMinImage(st *crystal.Structure, tbl *Table, opts Options) (int, error) {
	if st == nil {
		return 0, ErrNilStructure
	}
	direct := st.Atoms()
	lattice := st.Lattice()

	shuffleAtoms(opts.shuffleSource(), direct)

	var accepted []crystal.Atom
	for _, cand := range direct {
		ok := true
		for _, a := range accepted {
			diff := a.Position.Sub(cand.Position)
			// wrap each fractional component to the nearest periodic image
			for k := 0; k < 3; k++ {
				if diff[k] > 0.5 {
					diff[k]--
				} else if diff[k] < -0.5 {
					diff[k]++
				}
			}
			dist := diff.MulMat(lattice).Norm()
			if min, has := tbl.Get(a.Element, cand.Element); has && dist < min {
				ok = false
				break
			}
		}
		if ok {
			accepted = append(accepted, cand)
		}
	}

	removed := len(direct) - len(accepted)
	st.SetAtomsDirect(accepted)
	return removed, nil
}
