package world

import (
	"fmt"
	"sort"

	"github.com/agourlay/ray-tracer/pkg/core"
	"github.com/agourlay/ray-tracer/pkg/geometry"
	"github.com/agourlay/ray-tracer/pkg/lights"
	"github.com/agourlay/ray-tracer/pkg/material"
)

// World is a collection of shapes and lights that rays are traced against.
// It is read-only during rendering; build it fully before handing it to a
// camera.
type World struct {
	Objects []geometry.Shape
	Lights  []lights.PointLight
}

// New creates an empty world with no objects and no lights.
func New() *World {
	return &World{}
}

// Default returns the two-sphere world used as a shading reference: an outer
// green-ish sphere with a smaller concentric sphere inside, lit by a single
// white point light.
func Default() *World {
	s1 := geometry.NewSphere(1).
		SetRadius(1.0).
		SetMaterial(material.New(core.NewColor(0.8, 1.0, 0.6), 0.7, 0.2))
	s2 := geometry.NewSphere(2).
		SetRadius(0.5).
		SetTransform(core.Scaling(0.5, 0.5, 0.5))
	return &World{
		Objects: []geometry.Shape{s1, s2},
		Lights:  []lights.PointLight{lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White())},
	}
}

// AddObject appends a shape and returns the world for chaining.
func (w *World) AddObject(object geometry.Shape) *World {
	w.Objects = append(w.Objects, object)
	return w
}

// SetLight replaces all lights with a single one and returns the world for
// chaining.
func (w *World) SetLight(light lights.PointLight) *World {
	w.Lights = []lights.PointLight{light}
	return w
}

// SetLights replaces the lights and returns the world for chaining.
func (w *World) SetLights(lightSources []lights.PointLight) *World {
	w.Lights = lightSources
	return w
}

// IntersectWithRay gathers the intersections of the ray with every object,
// drops the ones behind the ray origin, and returns the rest sorted by
// ascending distance. The sort is stable so ties keep object insertion order.
func (w *World) IntersectWithRay(ray core.Ray) []geometry.Intersection {
	var intersections []geometry.Intersection
	for _, object := range w.Objects {
		for _, intersection := range geometry.Intersect(object, ray) {
			if intersection.Distance > 0.0 {
				intersections = append(intersections, intersection)
			}
		}
	}
	sort.SliceStable(intersections, func(i, j int) bool {
		return intersections[i].Distance < intersections[j].Distance
	})
	return intersections
}

// ShadeHit computes the color at a prepared intersection by summing the
// Phong contribution of every light, each with its own shadow test. A world
// without lights shades to black.
func (w *World) ShadeHit(comps PreparedComputations) core.Color {
	if len(w.Lights) == 0 {
		return core.Black()
	}
	shape := w.findObject(comps.ObjectID)
	color := core.Black()
	for _, light := range w.Lights {
		inShadow := w.IsShadowed(comps.OverPoint, light)
		color = color.Add(light.Lighting(
			shape.Material(),
			shape.Transform(),
			comps.OverPoint,
			comps.Eye,
			comps.Normal,
			inShadow,
		))
	}
	return color
}

// ColorAt traces a ray into the world and returns the color of the nearest
// visible surface, or black when the ray hits nothing.
func (w *World) ColorAt(ray core.Ray) core.Color {
	intersections := w.IntersectWithRay(ray)
	if len(intersections) == 0 {
		return core.Black()
	}
	comps := w.PrepareComputations(intersections[0], ray)
	return w.ShadeHit(comps)
}

// IsShadowed reports whether an object blocks the light from reaching the
// point. Only a hit strictly between the point and the light counts; objects
// beyond the light do not cast a shadow on it.
func (w *World) IsShadowed(point core.Tuple, light lights.PointLight) bool {
	toLight := light.Position.Subtract(point)
	distance := toLight.Magnitude()
	direction := toLight.Normalize()

	ray := core.NewRay(point, direction)
	intersections := w.IntersectWithRay(ray)

	hit, found := geometry.Hit(intersections)
	return found && hit.Distance < distance
}

// findObject returns the object carrying the given id. It panics when no
// object matches.
func (w *World) findObject(objectID int) geometry.Shape {
	for _, object := range w.Objects {
		if object.ID() == objectID {
			return object
		}
	}
	panic(fmt.Sprintf("world: no object with id %d", objectID))
}
