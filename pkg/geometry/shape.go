package geometry

import (
	"github.com/agourlay/ray-tracer/pkg/core"
	"github.com/agourlay/ray-tracer/pkg/material"
)

// epsilon is the geometric threshold below which a quantity is treated as
// zero: tangent root collapsing and plane parallelism both use it.
const epsilon = 1e-4

// Shape is implemented by anything a ray can hit. Implementations work in
// object space through LocalIntersect and LocalNormalAt; the world-space
// entry points Intersect and NormalAt handle the transforms.
type Shape interface {
	// ID returns the identity tag carried by the shape's intersections.
	ID() int
	// Transform returns the object-to-world transform bundle.
	Transform() core.Transformation
	// Material returns the shading parameters of the surface.
	Material() material.Material
	// LocalIntersect intersects a ray already expressed in object space.
	LocalIntersect(localRay core.Ray) []Intersection
	// LocalNormalAt returns the object-space normal at an object-space point.
	LocalNormalAt(localPoint core.Tuple) core.Tuple
}

// Intersect transforms the ray into the shape's object space and delegates
// to the shape's own intersection routine.
func Intersect(shape Shape, ray core.Ray) []Intersection {
	localRay := ray.Transform(shape.Transform().Inverse)
	return shape.LocalIntersect(localRay)
}

// NormalAt returns the world-space surface normal at a world-space point.
// Normals transform by the inverse transpose so they stay perpendicular
// under non-uniform scaling; the result is renormalized with w forced back
// to 0 since the transpose can leave a stray w component.
func NormalAt(shape Shape, worldPoint core.Tuple) core.Tuple {
	transform := shape.Transform()
	localPoint := transform.Inverse.MultiplyTuple(worldPoint)
	localNormal := shape.LocalNormalAt(localPoint)
	worldNormal := transform.InverseTranspose.MultiplyTuple(localNormal)
	return core.NewVector(worldNormal.X, worldNormal.Y, worldNormal.Z).Normalize()
}
