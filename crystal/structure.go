package crystal

import (
	"math"
	"sort"
	"strings"

	"github.com/lattikit/grainbound/geom"
)

// New builds a Structure from a comment, a uniform scaling factor, a lattice
// basis (rows are basis vectors), and atoms in fractional coordinates.
// The basis is multiplied by scaling before validation. Returns
// ErrSingularLattice when the scaled basis is (numerically) singular.
func New(comment string, scaling float64, basis geom.Mat3, atoms []Atom, opts Options) (*Structure, error) {
	lattice := basis.Scale(scaling)
	if math.Abs(lattice.Det()) <= singularEps {
		return nil, ErrSingularLattice
	}
	s := &Structure{
		comment: strings.Join(strings.Fields(comment), "_"),
		lattice: lattice,
		atoms:   cloneAtoms(atoms),
	}
	sortAtoms(s.atoms)
	s.viewAngles = s.computeViewAngles(opts.ViewAngleCount)
	return s, nil
}

// Comment returns the structure description.
func (s *Structure) Comment() string { return s.comment }

// Lattice returns the lattice basis. Rows are basis vectors in absolute units.
func (s *Structure) Lattice() geom.Mat3 { return s.lattice }

// NumAtoms returns the number of atoms.
func (s *Structure) NumAtoms() int { return len(s.atoms) }

// Atoms returns a copy of the canonical fractional atom records,
// sorted by element.
func (s *Structure) Atoms() []Atom { return cloneAtoms(s.atoms) }

// Cartesian returns the derived Cartesian view of the atom set, in the same
// element-sorted order as Atoms(). Each position is the fractional position
// right-multiplied by the lattice basis.
func (s *Structure) Cartesian() []Atom {
	out := cloneAtoms(s.atoms)
	for i := range out {
		out[i].Position = out[i].Position.MulMat(s.lattice)
	}
	return out
}

// Elements returns the distinct element symbols present, sorted.
func (s *Structure) Elements() []string {
	seen := make(map[string]struct{}, 4)
	var out []string
	for _, a := range s.atoms {
		if _, ok := seen[a.Element]; !ok {
			seen[a.Element] = struct{}{}
			out = append(out, a.Element)
		}
	}
	sort.Strings(out)
	return out
}

// ViewAngles returns a copy of the advisory near-neighbor direction set.
func (s *Structure) ViewAngles() []geom.Vec3 {
	out := make([]geom.Vec3, len(s.viewAngles))
	copy(out, s.viewAngles)
	return out
}

// SetComment replaces the structure description, joining whitespace with "_".
func (s *Structure) SetComment(comment string) {
	s.comment = strings.Join(strings.Fields(comment), "_")
}

// SetLattice is the explicit basis-changed operation: it replaces the lattice
// while keeping the fractional atom records as written, so the atoms are
// reinterpreted in the new basis. Returns ErrSingularLattice on a bad basis.
func (s *Structure) SetLattice(basis geom.Mat3) error {
	if math.Abs(basis.Det()) <= singularEps {
		return ErrSingularLattice
	}
	s.lattice = basis
	return nil
}

// SetAtomsDirect replaces the atom set from fractional records.
func (s *Structure) SetAtomsDirect(atoms []Atom) {
	s.atoms = cloneAtoms(atoms)
	sortAtoms(s.atoms)
}

// SetAtomsCartesian replaces the atom set from Cartesian records, converting
// through the lattice inverse.
func (s *Structure) SetAtomsCartesian(atoms []Atom) error {
	inv, err := s.lattice.Inverse()
	if err != nil {
		return ErrSingularLattice
	}
	next := cloneAtoms(atoms)
	for i := range next {
		next[i].Position = next[i].Position.MulMat(inv)
	}
	sortAtoms(next)
	s.atoms = next
	return nil
}

// Transform right-multiplies the lattice basis and the viewing angles by the
// transpose of m, reorienting the cell without moving atoms in fractional
// space.
func (s *Structure) Transform(m geom.Mat3) {
	mt := m.Transpose()
	s.lattice = s.lattice.Mul(mt)
	for i, v := range s.viewAngles {
		s.viewAngles[i] = v.MulMat(mt)
	}
}

// cloneAtoms copies an atom slice so canonical storage never aliases
// caller-held slices.
func cloneAtoms(atoms []Atom) []Atom {
	out := make([]Atom, len(atoms))
	copy(out, atoms)
	return out
}

// sortAtoms orders atoms by element symbol, stable so that relative order
// within an element is preserved across passes.
func sortAtoms(atoms []Atom) {
	sort.SliceStable(atoms, func(i, j int) bool {
		return atoms[i].Element < atoms[j].Element
	})
}
