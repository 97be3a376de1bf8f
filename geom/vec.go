package geom

import "math"

// Add returns v + u componentwise.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Sub returns v − u componentwise.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Scale returns k·v.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{k * v[0], k * v[1], k * v[2]}
}

// Dot returns the dot product v·u.
func (v Vec3) Dot(u Vec3) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// Returns ErrZeroVector if v is exactly the zero vector; callers must guard
// degenerate view-direction vectors before normalizing them.
func (v Vec3) Normalize() (Vec3, error) {
	if v == (Vec3{}) {
		return Vec3{}, ErrZeroVector
	}
	return v.Scale(1 / v.Norm()), nil
}

// MulMat returns the row-vector product v·m. With m's rows as lattice basis
// vectors this converts fractional coordinates to Cartesian coordinates.
func (v Vec3) MulMat(m Mat3) Vec3 {
	return Vec3{
		v[0]*m[0][0] + v[1]*m[1][0] + v[2]*m[2][0],
		v[0]*m[0][1] + v[1]*m[1][1] + v[2]*m[2][1],
		v[0]*m[0][2] + v[1]*m[1][2] + v[2]*m[2][2],
	}
}

// AngleBetween returns the angle between u and v in [0, π].
// The normalized dot product is clamped to [-1, 1] to absorb floating-point
// overshoot before the arccosine.
func AngleBetween(u, v Vec3) (float64, error) {
	un, err := u.Normalize()
	if err != nil {
		return 0, err
	}
	vn, err := v.Normalize()
	if err != nil {
		return 0, err
	}
	cos := un.Dot(vn)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos), nil
}

// InsideUnitCell reports whether every component of p lies in [0, 1).
func InsideUnitCell(p Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < 0 || p[i] >= 1 {
			return false
		}
	}
	return true
}

// CartesianProduct returns every length-k tuple drawn from values, in
// lexicographic order with the rightmost index varying fastest. With
// values={0,1} and k=3 it enumerates the 8 corner indicators of a unit cell.
func CartesianProduct(values []float64, k int) [][]float64 {
	if k <= 0 || len(values) == 0 {
		return nil
	}
	n := 1
	for i := 0; i < k; i++ {
		n *= len(values)
	}
	tuples := make([][]float64, 0, n)
	idx := make([]int, k)
	for {
		tuple := make([]float64, k)
		for i, j := range idx {
			tuple[i] = values[j]
		}
		tuples = append(tuples, tuple)
		// advance the odometer, rightmost digit first
		i := k - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(values) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return tuples
		}
	}
}
