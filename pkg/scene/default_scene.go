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

// Demo creates the default scene: three spheres of different sizes and
// colors sitting in a room whose floor and walls are flattened spheres.
func Demo(width, height int) *Scene {
	wallMaterial := material.New(core.NewColor(1, 0.9, 0.9), 0.9, 0.0)

	floor := geometry.NewSphere(1).
		SetTransform(core.Scaling(10, 0.01, 10)).
		SetMaterial(wallMaterial)

	leftWall := geometry.NewSphere(2).
		SetTransform(core.Translation(0, 0, 5).
			Multiply(core.RotationY(-math.Pi / 4)).
			Multiply(core.RotationX(math.Pi / 2)).
			Multiply(core.Scaling(10, 0.01, 10))).
		SetMaterial(wallMaterial)

	rightWall := geometry.NewSphere(3).
		SetTransform(core.Translation(0, 0, 5).
			Multiply(core.RotationY(math.Pi / 4)).
			Multiply(core.RotationX(math.Pi / 2)).
			Multiply(core.Scaling(10, 0.01, 10))).
		SetMaterial(wallMaterial)

	middle := geometry.NewSphere(4).
		SetTransform(core.Translation(-0.5, 1, 0.5)).
		SetMaterial(material.New(core.NewColor(0.1, 1, 0.5), 0.7, 0.3))

	right := geometry.NewSphere(5).
		SetTransform(core.Translation(1.5, 0.5, -0.5).
			Multiply(core.Scaling(0.5, 0.5, 0.5))).
		SetMaterial(material.New(core.NewColor(0.5, 1, 0.1), 0.7, 0.3))

	left := geometry.NewSphere(6).
		SetTransform(core.Translation(-1.5, 0.33, -0.45).
			Multiply(core.Scaling(0.33, 0.33, 0.33))).
		SetMaterial(material.New(core.NewColor(1, 0.8, 0.1), 0.7, 0.3))

	w := world.New().
		AddObject(floor).
		AddObject(leftWall).
		AddObject(rightWall).
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
