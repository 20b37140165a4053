package core

// Ray is a half-line with an origin point and a direction vector.
// The direction is not required to be normalized; distances along the ray are
// expressed in multiples of it.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a ray from an origin point and a direction vector.
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at the given distance along the ray.
func (r Ray) Position(distance float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(distance))
}

// Transform returns the ray with origin and direction both multiplied by the
// given matrix, leaving the receiver untouched.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}
