package core

import "math"

// epsilon is the tolerance used for floating point equality in this package.
const epsilon = 1e-9

// Matrix is a square matrix of float64 values in row-major order.
// Sizes 2, 3 and 4 are supported; 4x4 is the canonical transform size.
type Matrix struct {
	size int
	data []float64
}

// NewMatrix2 creates a 2x2 matrix from values given row by row.
func NewMatrix2(m00, m01, m10, m11 float64) Matrix {
	return Matrix{size: 2, data: []float64{m00, m01, m10, m11}}
}

// NewMatrix3 creates a 3x3 matrix from values given row by row.
func NewMatrix3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Matrix {
	return Matrix{size: 3, data: []float64{m00, m01, m02, m10, m11, m12, m20, m21, m22}}
}

// NewMatrix4 creates a 4x4 matrix from values given row by row.
func NewMatrix4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float64,
) Matrix {
	return Matrix{size: 4, data: []float64{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	}}
}

// Identity returns the 4x4 identity matrix.
func Identity() Matrix {
	return NewMatrix4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Size returns the number of rows (and columns) of the matrix.
func (m Matrix) Size() int {
	return m.size
}

// At returns the value at the given row and column.
func (m Matrix) At(row, col int) float64 {
	return m.data[row*m.size+col]
}

// Equals reports whether two matrices are equal within a small tolerance.
func (m Matrix) Equals(other Matrix) bool {
	if m.size != other.size {
		return false
	}
	for i := range m.data {
		if math.Abs(m.data[i]-other.data[i]) > epsilon {
			return false
		}
	}
	return true
}

// Multiply returns the product of two matrices of the same size.
func (m Matrix) Multiply(other Matrix) Matrix {
	s := m.size
	data := make([]float64, s*s)
	for row := 0; row < s; row++ {
		for col := 0; col < s; col++ {
			sum := 0.0
			for inner := 0; inner < s; inner++ {
				sum += m.At(row, inner) * other.At(inner, col)
			}
			data[row*s+col] = sum
		}
	}
	return Matrix{size: s, data: data}
}

// MultiplyTuple returns the tuple transformed by a 4x4 matrix.
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m.At(0, 0)*t.X + m.At(0, 1)*t.Y + m.At(0, 2)*t.Z + m.At(0, 3)*t.W,
		Y: m.At(1, 0)*t.X + m.At(1, 1)*t.Y + m.At(1, 2)*t.Z + m.At(1, 3)*t.W,
		Z: m.At(2, 0)*t.X + m.At(2, 1)*t.Y + m.At(2, 2)*t.Z + m.At(2, 3)*t.W,
		W: m.At(3, 0)*t.X + m.At(3, 1)*t.Y + m.At(3, 2)*t.Z + m.At(3, 3)*t.W,
	}
}

// Transpose returns the matrix with rows and columns flipped.
func (m Matrix) Transpose() Matrix {
	s := m.size
	data := make([]float64, s*s)
	for row := 0; row < s; row++ {
		for col := 0; col < s; col++ {
			data[row*s+col] = m.At(col, row)
		}
	}
	return Matrix{size: s, data: data}
}

// Determinant computes the determinant by cofactor expansion along the first
// row, with the 2x2 case as the base.
func (m Matrix) Determinant() float64 {
	if m.size == 2 {
		return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
	}
	det := 0.0
	for col := 0; col < m.size; col++ {
		det += m.At(0, col) * m.Cofactor(0, col)
	}
	return det
}

// Submatrix returns the matrix with the given row and column removed.
func (m Matrix) Submatrix(dropRow, dropCol int) Matrix {
	s := m.size
	data := make([]float64, 0, (s-1)*(s-1))
	for row := 0; row < s; row++ {
		if row == dropRow {
			continue
		}
		for col := 0; col < s; col++ {
			if col == dropCol {
				continue
			}
			data = append(data, m.At(row, col))
		}
	}
	return Matrix{size: s - 1, data: data}
}

// Minor returns the determinant of the submatrix at the given row and column.
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor with its sign flipped when row+col is odd.
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 0 {
		return minor
	}
	return -minor
}

// Inverse returns the inverse of the matrix via the cofactor method.
// It panics when the determinant is zero.
func (m Matrix) Inverse() Matrix {
	det := m.Determinant()
	if det == 0.0 {
		panic("core: matrix is not invertible, determinant is 0")
	}
	s := m.size
	data := make([]float64, s*s)
	for row := 0; row < s; row++ {
		for col := 0; col < s; col++ {
			// writing at the swapped index folds the transpose in
			data[col*s+row] = m.Cofactor(row, col) / det
		}
	}
	return Matrix{size: s, data: data}
}
