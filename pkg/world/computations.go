package world

import (
	"github.com/agourlay/ray-tracer/pkg/core"
	"github.com/agourlay/ray-tracer/pkg/geometry"
)

// shadowBias is how far the hit point is pushed along the surface normal
// before shadow rays are cast from it, so that floating point error cannot
// make a surface shadow itself.
const shadowBias = 1e-4

// PreparedComputations carries the per-intersection values shading needs:
// the world point, the shadow-safe point just above it, the eye and normal
// vectors, and whether the ray started inside the shape.
type PreparedComputations struct {
	ObjectID  int
	Distance  float64
	Point     core.Tuple
	OverPoint core.Tuple
	Eye       core.Tuple
	Normal    core.Tuple
	Inside    bool
}

// PrepareComputations derives the shading values for one intersection. The
// normal is flipped when it points away from the eye, which marks the hit as
// coming from inside the shape. Panics when the intersection's object id is
// not in this world.
func (w *World) PrepareComputations(intersection geometry.Intersection, ray core.Ray) PreparedComputations {
	point := ray.Position(intersection.Distance)
	shape := w.findObject(intersection.ObjectID)
	eye := ray.Direction.Negate()

	inside := false
	normal := geometry.NormalAt(shape, point)
	if normal.Dot(eye) < 0.0 {
		// the normal is inverted for a correct illumination
		inside = true
		normal = normal.Negate()
	}
	overPoint := point.Add(normal.Multiply(shadowBias))

	return PreparedComputations{
		ObjectID:  intersection.ObjectID,
		Distance:  intersection.Distance,
		Point:     point,
		OverPoint: overPoint,
		Eye:       eye,
		Normal:    normal,
		Inside:    inside,
	}
}
