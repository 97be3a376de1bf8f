package geom

import "gonum.org/v1/gonum/mat"

// Identity returns the 3×3 identity matrix.
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Row returns the i-th row of m as a vector.
func (m Mat3) Row(i int) Vec3 { return m[i] }

// Scale returns m with every entry multiplied by k.
func (m Mat3) Scale(k float64) Mat3 {
	return Mat3{m[0].Scale(k), m[1].Scale(k), m[2].Scale(k)}
}

// Add returns m + n entrywise.
func (m Mat3) Add(n Mat3) Mat3 {
	return Mat3{m[0].Add(n[0]), m[1].Add(n[1]), m[2].Add(n[2])}
}

// Transpose returns mᵀ.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Mul returns the matrix product m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	return Mat3{m[0].MulMat(n), m[1].MulMat(n), m[2].MulMat(n)}
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	return mat.Det(m.dense())
}

// Inverse returns m⁻¹, or ErrSingularMatrix when m cannot be inverted.
func (m Mat3) Inverse() (Mat3, error) {
	var inv mat.Dense
	if err := inv.Inverse(m.dense()); err != nil {
		return Mat3{}, ErrSingularMatrix
	}
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = inv.At(i, j)
		}
	}
	return out, nil
}

// dense copies m into a gonum dense matrix for LU-backed routines.
func (m Mat3) dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}
