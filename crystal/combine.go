package crystal

import "github.com/lattikit/grainbound/geom"

// Combine joins two structures sharing a lattice basis into one bicrystal
// stacked along the third lattice vector: both atom sets are compressed to
// half the c-axis, b's half is shifted to the upper half of the cell, and the
// third basis vector is doubled. The internal interface between the two
// halves lands at fractional z = 0.5, which is where collision removal
// expects it. Neither input is modified.
func Combine(a, b *Structure) (*Structure, error) {
	if a == nil || b == nil {
		return nil, ErrNilStructure
	}

	atoms := make([]Atom, 0, len(a.atoms)+len(b.atoms))
	for _, atom := range a.atoms {
		atom.Position[2] /= 2
		atoms = append(atoms, atom)
	}
	for _, atom := range b.atoms {
		atom.Position[2] = atom.Position[2]/2 + 0.5
		atoms = append(atoms, atom)
	}
	sortAtoms(atoms)

	lattice := a.lattice
	lattice[2] = lattice[2].Scale(2)

	combined := &Structure{
		comment: a.comment + "_" + b.comment,
		lattice: lattice,
		atoms:   atoms,
	}
	// the first grain's orientation hints carry over unchanged
	combined.viewAngles = make([]geom.Vec3, len(a.viewAngles))
	copy(combined.viewAngles, a.viewAngles)
	return combined, nil
}
