package geometry

import (
	"math"

	"github.com/agourlay/ray-tracer/pkg/core"
	"github.com/agourlay/ray-tracer/pkg/material"
)

// Sphere is a sphere centered at the origin of its own object space.
// Scaling, rotation and translation all come from its transform.
type Sphere struct {
	id        int
	center    core.Tuple
	radius    float64
	transform core.Transformation
	material  material.Material
}

// NewSphere creates a unit sphere at the origin with the default material.
// The id must be unique within a world; intersections carry it.
func NewSphere(id int) *Sphere {
	return &Sphere{
		id:        id,
		center:    core.PointZero(),
		radius:    1.0,
		transform: core.IdentityTransformation(),
		material:  material.Default(),
	}
}

// SetTransform replaces the sphere's transform and returns the sphere for
// chaining. The inverse and inverse transpose are rebuilt together.
func (s *Sphere) SetTransform(transform core.Matrix) *Sphere {
	s.transform = core.NewTransformation(transform)
	return s
}

// SetMaterial replaces the sphere's material and returns the sphere for
// chaining.
func (s *Sphere) SetMaterial(m material.Material) *Sphere {
	s.material = m
	return s
}

// SetRadius replaces the sphere's radius and returns the sphere for chaining.
func (s *Sphere) SetRadius(radius float64) *Sphere {
	s.radius = radius
	return s
}

// ID returns the identity tag carried by the sphere's intersections.
func (s *Sphere) ID() int {
	return s.id
}

// Transform returns the object-to-world transform bundle.
func (s *Sphere) Transform() core.Transformation {
	return s.transform
}

// Material returns the shading parameters of the surface.
func (s *Sphere) Material() material.Material {
	return s.material
}

// LocalIntersect solves the ray-sphere quadratic in object space and returns
// the intersections in ascending distance order. Near-equal roots collapse
// to a single tangent intersection.
func (s *Sphere) LocalIntersect(localRay core.Ray) []Intersection {
	sphereToRay := localRay.Origin.Subtract(s.center)
	a := localRay.Direction.Dot(localRay.Direction)
	b := 2.0 * localRay.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - s.radius
	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return nil
	}
	sqrtDiscriminant := math.Sqrt(discriminant)
	twoA := 2.0 * a
	t1 := (-b - sqrtDiscriminant) / twoA
	t2 := (-b + sqrtDiscriminant) / twoA
	if math.Abs(t1-t2) < epsilon {
		return []Intersection{NewIntersection(s.id, t1)}
	}
	if t1 < t2 {
		return []Intersection{NewIntersection(s.id, t1), NewIntersection(s.id, t2)}
	}
	return []Intersection{NewIntersection(s.id, t2), NewIntersection(s.id, t1)}
}

// LocalNormalAt returns the object-space normal, the vector from the center
// to the point.
func (s *Sphere) LocalNormalAt(localPoint core.Tuple) core.Tuple {
	return localPoint.Subtract(s.center)
}
