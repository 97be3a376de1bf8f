// Package geom defines core types and sentinel errors for grainbound geometry.
package geom

import "errors"

// Sentinel errors for geometry operations.
var (
	// ErrZeroVector indicates Normalize was called on the zero vector.
	ErrZeroVector = errors.New("geom: cannot normalize zero vector")

	// ErrSingularMatrix indicates a matrix inverse was requested for a
	// singular (or numerically singular) matrix.
	ErrSingularMatrix = errors.New("geom: singular matrix")
)

// Vec3 is a coordinate triple. Depending on context it holds fractional
// coordinates (coefficients of a lattice basis) or Cartesian coordinates.
type Vec3 [3]float64

// Mat3 is a row-major 3×3 matrix. Throughout grainbound its rows are lattice
// basis vectors, so a fractional position f maps to Cartesian space as
// f.MulMat(m) — the row-vector product f·m.
type Mat3 [3]Vec3
