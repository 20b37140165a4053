package core

import (
	"math"
	"testing"
)

func TestMatrix_Construction(t *testing.T) {
	m4 := NewMatrix4(
		1, 2, 3, 4,
		5.5, 6.5, 7.5, 8.5,
		9, 10, 11, 12,
		13.5, 14.5, 15.5, 16.5,
	)

	checks := []struct {
		row, col int
		expected float64
	}{
		{0, 0, 1}, {0, 3, 4}, {1, 0, 5.5}, {1, 2, 7.5},
		{2, 2, 11}, {3, 0, 13.5}, {3, 2, 15.5},
	}
	for _, c := range checks {
		if got := m4.At(c.row, c.col); got != c.expected {
			t.Errorf("Expected m4[%d,%d]=%f, got %f", c.row, c.col, c.expected, got)
		}
	}

	m2 := NewMatrix2(-3, 5, 1, -2)
	if m2.At(0, 0) != -3 || m2.At(0, 1) != 5 || m2.At(1, 0) != 1 || m2.At(1, 1) != -2 {
		t.Errorf("Unexpected 2x2 layout: %v", m2)
	}

	m3 := NewMatrix3(-3, 5, 0, 1, -2, -7, 0, 1, 1)
	if m3.At(0, 0) != -3 || m3.At(1, 1) != -2 || m3.At(2, 2) != 1 {
		t.Errorf("Unexpected 3x3 layout: %v", m3)
	}
}

func TestMatrix_Equals(t *testing.T) {
	a := NewMatrix4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	)
	b := NewMatrix4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	)
	if !a.Equals(b) {
		t.Error("Expected identical matrices to be equal")
	}

	c := NewMatrix4(
		2, 3, 4, 5,
		6, 7, 8, 9,
		8, 7, 6, 5,
		4, 3, 2, 1,
	)
	if a.Equals(c) {
		t.Error("Expected different matrices not to be equal")
	}

	if a.Equals(NewMatrix2(1, 2, 3, 4)) {
		t.Error("Expected matrices of different sizes not to be equal")
	}
}

func TestMatrix_Multiply(t *testing.T) {
	a := NewMatrix4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	)
	b := NewMatrix4(
		-2, 1, 2, 3,
		3, 2, 1, -1,
		4, 3, 6, 5,
		1, 2, 7, 8,
	)

	result := a.Multiply(b)
	expected := NewMatrix4(
		20, 22, 50, 48,
		44, 54, 114, 108,
		40, 58, 110, 102,
		16, 26, 46, 42,
	)
	if !result.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestMatrix_MultiplyTuple(t *testing.T) {
	a := NewMatrix4(
		1, 2, 3, 4,
		2, 4, 4, 2,
		8, 6, 4, 1,
		0, 0, 0, 1,
	)
	b := Tuple{X: 1, Y: 2, Z: 3, W: 1}

	result := a.MultiplyTuple(b)
	expected := Tuple{X: 18, Y: 24, Z: 33, W: 1}
	if !result.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestMatrix_Identity(t *testing.T) {
	a := NewMatrix4(
		0, 1, 2, 4,
		1, 2, 4, 8,
		2, 4, 8, 16,
		4, 8, 16, 32,
	)
	if !a.Multiply(Identity()).Equals(a) {
		t.Error("Expected multiplying by the identity to leave the matrix unchanged")
	}

	tuple := Tuple{X: 1, Y: 2, Z: 3, W: 4}
	if !Identity().MultiplyTuple(tuple).Equals(tuple) {
		t.Error("Expected the identity to leave a tuple unchanged")
	}
}

func TestMatrix_Transpose(t *testing.T) {
	a := NewMatrix4(
		0, 9, 3, 0,
		9, 8, 0, 8,
		1, 8, 5, 3,
		0, 0, 5, 8,
	)

	result := a.Transpose()
	expected := NewMatrix4(
		0, 9, 1, 0,
		9, 8, 8, 0,
		3, 0, 5, 5,
		0, 8, 3, 8,
	)
	if !result.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}

	if !Identity().Transpose().Equals(Identity()) {
		t.Error("Expected the transposed identity to be the identity")
	}
}

func TestMatrix_Determinant(t *testing.T) {
	tests := []struct {
		name     string
		matrix   Matrix
		expected float64
	}{
		{
			name:     "2x2",
			matrix:   NewMatrix2(1, 5, -3, 2),
			expected: 17,
		},
		{
			name:     "3x3 by cofactor expansion",
			matrix:   NewMatrix3(1, 2, 6, -5, 8, -4, 2, 6, 4),
			expected: -196,
		},
		{
			name: "4x4 by cofactor expansion",
			matrix: NewMatrix4(
				-2, -8, 3, 5,
				-3, 1, 7, 3,
				1, 2, -9, 6,
				-6, 7, 7, -9,
			),
			expected: -4071,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.matrix.Determinant()
			if math.Abs(result-tt.expected) > epsilon {
				t.Errorf("Expected determinant %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestMatrix_Submatrix(t *testing.T) {
	a3 := NewMatrix3(1, 5, 0, -3, 2, 7, 0, 6, -3)
	if !a3.Submatrix(0, 2).Equals(NewMatrix2(-3, 2, 0, 6)) {
		t.Errorf("Unexpected 3x3 submatrix: %v", a3.Submatrix(0, 2))
	}

	a4 := NewMatrix4(
		-6, 1, 1, 6,
		-8, 5, 8, 6,
		-1, 0, 8, 2,
		-7, 1, -1, 1,
	)
	expected := NewMatrix3(-6, 1, 6, -8, 8, 6, -7, -1, 1)
	if !a4.Submatrix(2, 1).Equals(expected) {
		t.Errorf("Unexpected 4x4 submatrix: %v", a4.Submatrix(2, 1))
	}
}

func TestMatrix_MinorAndCofactor(t *testing.T) {
	a := NewMatrix3(3, 5, 0, 2, -1, -7, 6, -1, 5)

	if minor := a.Minor(1, 0); math.Abs(minor-25) > epsilon {
		t.Errorf("Expected minor 25, got %f", minor)
	}
	if cofactor := a.Cofactor(0, 0); math.Abs(cofactor-(-12)) > epsilon {
		t.Errorf("Expected cofactor -12, got %f", cofactor)
	}
	// row+col odd flips the sign of the minor
	if cofactor := a.Cofactor(1, 0); math.Abs(cofactor-(-25)) > epsilon {
		t.Errorf("Expected cofactor -25, got %f", cofactor)
	}
}

func TestMatrix_Inverse(t *testing.T) {
	a := NewMatrix4(
		-5, 2, 6, -8,
		1, -5, 1, 8,
		7, 7, -6, -7,
		1, -3, 7, 4,
	)
	inverse := a.Inverse()

	if det := a.Determinant(); math.Abs(det-532) > epsilon {
		t.Errorf("Expected determinant 532, got %f", det)
	}
	if got := inverse.At(3, 2); math.Abs(got-(-160.0/532.0)) > epsilon {
		t.Errorf("Expected inverse[3,2]=%f, got %f", -160.0/532.0, got)
	}
	if got := inverse.At(2, 3); math.Abs(got-(105.0/532.0)) > epsilon {
		t.Errorf("Expected inverse[2,3]=%f, got %f", 105.0/532.0, got)
	}

	expected := NewMatrix4(
		0.21805, 0.45113, 0.24060, -0.04511,
		-0.80827, -1.45677, -0.44361, 0.52068,
		-0.07895, -0.22368, -0.05263, 0.19737,
		-0.52256, -0.81391, -0.30075, 0.30639,
	)
	const tolerance = 1e-5
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(inverse.At(row, col)-expected.At(row, col)) > tolerance {
				t.Errorf("Expected inverse[%d,%d]=%f, got %f",
					row, col, expected.At(row, col), inverse.At(row, col))
			}
		}
	}
}

func TestMatrix_Inverse_RoundTrip(t *testing.T) {
	a := NewMatrix4(
		3, -9, 7, 3,
		3, -8, 2, -9,
		-4, 4, 4, 1,
		-6, 5, -1, 1,
	)
	b := NewMatrix4(
		8, 2, 2, 2,
		3, -1, 7, 0,
		7, 0, 5, 4,
		6, -2, 0, 5,
	)

	product := a.Multiply(b)
	if !product.Multiply(b.Inverse()).Equals(a) {
		t.Error("Expected multiplying a product by an inverse to undo the multiplication")
	}

	if !a.Multiply(a.Inverse()).Equals(Identity()) {
		t.Error("Expected a matrix times its inverse to be the identity")
	}
}

func TestMatrix_Inverse_Singular(t *testing.T) {
	singular := NewMatrix4(
		-4, 2, -2, -3,
		9, 6, 2, 6,
		0, -5, 1, -5,
		0, 0, 0, 0,
	)
	if det := singular.Determinant(); det != 0 {
		t.Fatalf("Expected determinant 0, got %f", det)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for singular matrix inverse")
		}
	}()
	singular.Inverse()
}
