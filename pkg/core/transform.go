package core

import "math"

// Transformation bundles a transform matrix with its inverse and the
// transpose of the inverse. The three are always derived together from the
// matrix; replace the whole value to change the transform.
type Transformation struct {
	Matrix           Matrix
	Inverse          Matrix
	InverseTranspose Matrix
}

// NewTransformation derives the inverse and inverse transpose from the given
// matrix. It panics if the matrix is singular.
func NewTransformation(matrix Matrix) Transformation {
	inverse := matrix.Inverse()
	return Transformation{
		Matrix:           matrix,
		Inverse:          inverse,
		InverseTranspose: inverse.Transpose(),
	}
}

// IdentityTransformation returns the identity transform.
func IdentityTransformation() Transformation {
	return NewTransformation(Identity())
}

// Translation returns a matrix moving points by (x, y, z). Vectors are
// unaffected because their w component is 0.
func Translation(x, y, z float64) Matrix {
	return NewMatrix4(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// Scaling returns a matrix scaling each axis by the given factor.
func Scaling(x, y, z float64) Matrix {
	return NewMatrix4(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// RotationX returns a matrix rotating around the x axis by r radians.
func RotationX(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return NewMatrix4(
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	)
}

// RotationY returns a matrix rotating around the y axis by r radians.
func RotationY(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return NewMatrix4(
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	)
}

// RotationZ returns a matrix rotating around the z axis by r radians.
func RotationZ(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return NewMatrix4(
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Shearing returns a matrix where each coordinate slides in proportion to the
// other two, e.g. xy is the amount x moves per unit of y.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix4(
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	)
}

// ViewTransform returns the world-to-camera matrix for an eye at from looking
// at to, with up fixing the camera roll.
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := NewMatrix4(
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	)
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
