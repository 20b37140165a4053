package geometry

import (
	"math"

	"github.com/agourlay/ray-tracer/pkg/core"
	"github.com/agourlay/ray-tracer/pkg/material"
)

// Plane is the infinite xz plane of its own object space; its normal is
// always +y there. Tilted or raised planes come from the transform.
type Plane struct {
	id        int
	transform core.Transformation
	material  material.Material
}

// NewPlane creates an xz plane with the default material.
// The id must be unique within a world; intersections carry it.
func NewPlane(id int) *Plane {
	return &Plane{
		id:        id,
		transform: core.IdentityTransformation(),
		material:  material.Default(),
	}
}

// SetTransform replaces the plane's transform and returns the plane for
// chaining. The inverse and inverse transpose are rebuilt together.
func (p *Plane) SetTransform(transform core.Matrix) *Plane {
	p.transform = core.NewTransformation(transform)
	return p
}

// SetMaterial replaces the plane's material and returns the plane for
// chaining.
func (p *Plane) SetMaterial(m material.Material) *Plane {
	p.material = m
	return p
}

// ID returns the identity tag carried by the plane's intersections.
func (p *Plane) ID() int {
	return p.id
}

// Transform returns the object-to-world transform bundle.
func (p *Plane) Transform() core.Transformation {
	return p.transform
}

// Material returns the shading parameters of the surface.
func (p *Plane) Material() material.Material {
	return p.material
}

// LocalIntersect returns the single crossing point of the ray with the xz
// plane. A ray whose direction has no slope in y is parallel to the plane,
// so a y component below epsilon means no intersection; that also covers a
// coplanar ray, whose infinitely many hits are not representable.
func (p *Plane) LocalIntersect(localRay core.Ray) []Intersection {
	if math.Abs(localRay.Direction.Y) < epsilon {
		return nil
	}
	distance := -localRay.Origin.Y / localRay.Direction.Y
	return []Intersection{NewIntersection(p.id, distance)}
}

// LocalNormalAt returns the constant +y normal of the xz plane.
func (p *Plane) LocalNormalAt(localPoint core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}
