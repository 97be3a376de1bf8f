// Package crystal defines the Structure entity, its options, and sentinel errors.
package crystal

import (
	"errors"

	"github.com/lattikit/grainbound/geom"
)

// Sentinel errors for structure construction and mutation.
var (
	// ErrSingularLattice indicates a lattice basis whose determinant
	// magnitude is at or below singularEps.
	ErrSingularLattice = errors.New("crystal: lattice basis is singular")

	// ErrNilStructure indicates a nil *Structure argument.
	ErrNilStructure = errors.New("crystal: structure is nil")
)

// singularEps is the determinant magnitude below which a basis is rejected.
const singularEps = 5e-4

// Atom is one atom record. Position is fractional inside a Structure's
// canonical storage and Cartesian in the slices returned by Cartesian().
type Atom struct {
	Position geom.Vec3
	Element  string
}

// Options tunes Structure construction.
type Options struct {
	// ViewAngleCount is the number of near-neighbor directions collected
	// around the most central atom for advisory orientation matching.
	ViewAngleCount int
}

// DefaultOptions returns construction defaults: ViewAngleCount=10.
func DefaultOptions() Options {
	return Options{ViewAngleCount: 10}
}

// Structure is a crystal: a lattice basis (rows are basis vectors, absolute
// units) and atoms stored canonically in fractional coordinates, sorted by
// element. All mutation goes through the Set* methods, so the Cartesian view
// derived by Cartesian() is always consistent with the fractional storage.
type Structure struct {
	comment    string
	lattice    geom.Mat3
	atoms      []Atom
	viewAngles []geom.Vec3
}
