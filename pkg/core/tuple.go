package core

import "math"

// Tuple is a homogeneous coordinate: a point when W is 1, a vector when W is 0.
// Using a single representation lets one 4x4 matrix form express translation,
// rotation and scaling uniformly.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a tuple representing a position in space (W=1).
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1.0}
}

// NewVector creates a tuple representing a direction (W=0).
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0.0}
}

// PointZero returns the origin point.
func PointZero() Tuple {
	return Tuple{X: 0, Y: 0, Z: 0, W: 1.0}
}

// IsPoint reports whether the tuple is a point (W=1).
func (t Tuple) IsPoint() bool {
	return t.W == 1.0
}

// IsVector reports whether the tuple is a vector (W=0).
func (t Tuple) IsVector() bool {
	return t.W == 0.0
}

// Add returns the componentwise sum of two tuples.
// Adding a vector to a point yields a point; adding two vectors yields a vector.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the componentwise difference of two tuples.
// Subtracting two points yields the vector between them.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the opposite of the tuple.
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar.
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar.
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the Euclidean length of the spatial components.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z)
}

// Normalize returns a unit vector in the same direction, dropping any w drift.
// Normalizing a zero vector is undefined; callers must not do it.
func (t Tuple) Normalize() Tuple {
	mag := t.Magnitude()
	return Tuple{t.X / mag, t.Y / mag, t.Z / mag, 0.0}
}

// Dot returns the dot product of the spatial components of two tuples.
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z
}

// Cross returns the cross product of two vectors.
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns the tuple reflected around the given normal.
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2.0 * t.Dot(normal)))
}

// Equals reports whether two tuples are equal within a small tolerance.
func (t Tuple) Equals(other Tuple) bool {
	return math.Abs(t.X-other.X) <= epsilon &&
		math.Abs(t.Y-other.Y) <= epsilon &&
		math.Abs(t.Z-other.Z) <= epsilon &&
		math.Abs(t.W-other.W) <= epsilon
}
