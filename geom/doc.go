// Package geom provides the small geometric vocabulary shared by every
// grainbound package: 3-vectors, 3×3 lattice matrices, and the handful of
// predicates used when tiling and pruning periodic crystal cells.
//
// What:
//
//   - Vec3: a fractional or Cartesian coordinate triple with the usual
//     vector operations (Add, Sub, Scale, Dot, Norm, Normalize).
//   - Mat3: a row-major 3×3 matrix whose rows are lattice basis vectors,
//     with row-vector multiplication, determinant and inverse.
//   - AngleBetween: angle of two vectors in [0, π], clamped against
//     floating-point overshoot.
//   - CartesianProduct: every length-k tuple over a value set, used to
//     enumerate the 8 corner indicators {0,1}^3.
//   - InsideUnitCell: membership test for the canonical cell [0,1)^3.
//
// Why:
//
//   - Crystal structures express atom positions as coefficients of a lattice
//     basis; converting between fractional and Cartesian views is a single
//     row-vector × matrix product, so that product is the primitive here.
//
// Errors:
//
//   - ErrZeroVector: Normalize called on the exactly-zero vector.
//   - ErrSingularMatrix: Inverse of a (numerically) singular matrix.
//
// Determinant and inversion are delegated to gonum's dense linear algebra.
package geom
