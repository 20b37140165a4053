package scene

import (
	"math"

	"github.com/agourlay/ray-tracer/pkg/core"
	"github.com/agourlay/ray-tracer/pkg/geometry"
	"github.com/agourlay/ray-tracer/pkg/lights"
	"github.com/agourlay/ray-tracer/pkg/material"
	"github.com/agourlay/ray-tracer/pkg/renderer"
	"github.com/agourlay/ray-tracer/pkg/world"
)

// Patterns creates a scene demonstrating every pattern type on real planes:
// a checkered floor, a ringed back wall and three patterned spheres.
func Patterns(width, height int) *Scene {
	// Checkered floor
	floorPattern := material.NewCheckerPattern(
		core.NewColor(0.8, 0.8, 0.8),
		core.NewColor(0.3, 0.3, 0.3),
		core.Identity())
	floor := geometry.NewPlane(1).
		SetMaterial(material.NewWithPattern(core.White(), 0.9, 0, floorPattern))

	// Ringed back wall
	wallPattern := material.NewRingPattern(
		core.NewColor(0.7, 0.7, 0.9),
		core.NewColor(0.9, 0.9, 1),
		core.Scaling(0.5, 0.5, 0.5))
	backWall := geometry.NewPlane(2).
		SetTransform(core.Translation(0, 0, 5).
			Multiply(core.RotationX(math.Pi / 2))).
		SetMaterial(material.NewWithPattern(core.White(), 0.9, 0, wallPattern))

	// Sphere with diagonal stripes
	middlePattern := material.NewStripePattern(
		core.NewColor(0.1, 1, 0.5),
		core.White(),
		core.RotationZ(math.Pi/4).
			Multiply(core.Scaling(0.25, 0.25, 0.25)))
	middle := geometry.NewSphere(3).
		SetTransform(core.Translation(-0.5, 1, 0.5)).
		SetMaterial(material.NewWithPattern(core.NewColor(0.1, 1, 0.5), 0.7, 0.3, middlePattern))

	// Sphere with a gradient spanning its full width
	rightPattern := material.NewGradientPattern(
		core.NewColor(0.5, 1, 0.1),
		core.NewColor(1, 0.2, 0.2),
		core.Translation(-1, 0, 0).
			Multiply(core.Scaling(2, 2, 2)))
	right := geometry.NewSphere(4).
		SetTransform(core.Translation(1.5, 0.5, -0.5).
			Multiply(core.Scaling(0.5, 0.5, 0.5))).
		SetMaterial(material.NewWithPattern(core.NewColor(0.5, 1, 0.1), 0.7, 0.3, rightPattern))

	// Sphere with rings
	leftPattern := material.NewRingPattern(
		core.NewColor(1, 0.8, 0.1),
		core.NewColor(0.6, 0.45, 0.05),
		core.Scaling(0.2, 0.2, 0.2))
	left := geometry.NewSphere(5).
		SetTransform(core.Translation(-1.5, 0.33, -0.45).
			Multiply(core.Scaling(0.33, 0.33, 0.33))).
		SetMaterial(material.NewWithPattern(core.NewColor(1, 0.8, 0.1), 0.7, 0.3, leftPattern))

	w := world.New().
		AddObject(floor).
		AddObject(backWall).
		AddObject(middle).
		AddObject(right).
		AddObject(left).
		SetLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))

	camera := renderer.NewCamera(width, height, math.Pi/3).
		SetTransform(core.ViewTransform(
			core.NewPoint(0, 1.5, -5),
			core.NewPoint(0, 1, 0),
			core.NewVector(0, 1, 0)))

	return &Scene{World: w, Camera: camera}
}
