package world

import (
	"math"
	"testing"

	"github.com/agourlay/ray-tracer/pkg/core"
	"github.com/agourlay/ray-tracer/pkg/geometry"
	"github.com/agourlay/ray-tracer/pkg/lights"
)

func TestWorld_New(t *testing.T) {
	w := New()
	if len(w.Objects) != 0 {
		t.Errorf("Expected no objects, got %d", len(w.Objects))
	}
	if len(w.Lights) != 0 {
		t.Errorf("Expected no lights, got %d", len(w.Lights))
	}
}

func TestWorld_Default(t *testing.T) {
	w := Default()

	if len(w.Lights) != 1 {
		t.Fatalf("Expected one light, got %d", len(w.Lights))
	}
	light := w.Lights[0]
	if !light.Position.Equals(core.NewPoint(-10, 10, -10)) || !light.Intensity.Equals(core.White()) {
		t.Errorf("Unexpected default light %v", light)
	}

	if len(w.Objects) != 2 {
		t.Fatalf("Expected two objects, got %d", len(w.Objects))
	}
	if w.Objects[0].ID() != 1 || w.Objects[1].ID() != 2 {
		t.Errorf("Expected object ids 1 and 2, got %d and %d", w.Objects[0].ID(), w.Objects[1].ID())
	}
	outer := w.Objects[0].Material()
	if !outer.Color.Equals(core.NewColor(0.8, 1.0, 0.6)) || outer.Diffuse != 0.7 || outer.Specular != 0.2 {
		t.Errorf("Unexpected outer sphere material %v", outer)
	}
}

func TestWorld_IntersectWithRay(t *testing.T) {
	w := Default()
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	intersections := w.IntersectWithRay(ray)
	expected := []float64{4.0, 4.646446609406726, 5.353553390593274, 6.0}
	if len(intersections) != len(expected) {
		t.Fatalf("Expected %d intersections, got %d", len(expected), len(intersections))
	}
	for i, distance := range expected {
		if math.Abs(intersections[i].Distance-distance) > 1e-9 {
			t.Errorf("Expected distance %v at index %d, got %v", distance, i, intersections[i].Distance)
		}
	}
}

func TestWorld_IntersectWithRay_DropsNonPositive(t *testing.T) {
	// the sphere surrounds the ray origin, so one intersection is behind it
	w := New().AddObject(geometry.NewSphere(1))
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))

	intersections := w.IntersectWithRay(ray)
	if len(intersections) != 1 {
		t.Fatalf("Expected 1 intersection, got %d", len(intersections))
	}
	if math.Abs(intersections[0].Distance-1.0) > 1e-9 {
		t.Errorf("Expected distance 1.0, got %v", intersections[0].Distance)
	}
}

func TestWorld_ShadeHit(t *testing.T) {
	w := Default()
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	comps := w.PrepareComputations(geometry.NewIntersection(w.Objects[0].ID(), 4.0), ray)

	color := w.ShadeHit(comps)
	expected := core.NewColor(0.38066116930395194, 0.4758264616299399, 0.2854958769779639)
	if !color.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

func TestWorld_ShadeHit_FromTheInside(t *testing.T) {
	w := Default().SetLight(lights.NewPointLight(core.NewPoint(0, 0.25, 0), core.White()))
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	comps := w.PrepareComputations(geometry.NewIntersection(w.Objects[1].ID(), 0.5), ray)

	// the inner sphere blocks its own light here, leaving only ambient
	color := w.ShadeHit(comps)
	if !color.Equals(core.NewColor(0.1, 0.1, 0.1)) {
		t.Errorf("Expected ambient only, got %v", color)
	}
}

func TestWorld_ShadeHit_InShadow(t *testing.T) {
	w := New().
		SetLight(lights.NewPointLight(core.NewPoint(0, 0, -10), core.White())).
		AddObject(geometry.NewSphere(1)).
		AddObject(geometry.NewSphere(2).SetTransform(core.Translation(0, 0, 10)))
	ray := core.NewRay(core.NewPoint(0, 0, 5), core.NewVector(0, 0, 1))
	comps := w.PrepareComputations(geometry.NewIntersection(2, 4.0), ray)

	color := w.ShadeHit(comps)
	if !color.Equals(core.NewColor(0.1, 0.1, 0.1)) {
		t.Errorf("Expected ambient only, got %v", color)
	}
}

func TestWorld_ShadeHit_NoLights(t *testing.T) {
	w := New().AddObject(geometry.NewSphere(1))
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	comps := w.PrepareComputations(geometry.NewIntersection(1, 4.0), ray)

	if color := w.ShadeHit(comps); !color.Equals(core.Black()) {
		t.Errorf("Expected black, got %v", color)
	}
}

func TestWorld_ColorAt(t *testing.T) {
	w := Default()

	miss := w.ColorAt(core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 1, 0)))
	if !miss.Equals(core.Black()) {
		t.Errorf("Expected black on a miss, got %v", miss)
	}

	hit := w.ColorAt(core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1)))
	expected := core.NewColor(0.38066116930395194, 0.4758264616299399, 0.2854958769779639)
	if !hit.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, hit)
	}
}

func TestWorld_ColorAt_SumsLights(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	single := Default().ColorAt(ray)

	defaultLight := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White())
	doubled := Default().
		SetLights([]lights.PointLight{defaultLight, defaultLight}).
		ColorAt(ray)

	if !doubled.Equals(single.Scale(2)) {
		t.Errorf("Expected %v, got %v", single.Scale(2), doubled)
	}
}

func TestWorld_IsShadowed(t *testing.T) {
	w := Default()
	light := w.Lights[0]

	tests := []struct {
		name     string
		point    core.Tuple
		expected bool
	}{
		{
			name:     "nothing colinear with the point and light",
			point:    core.NewPoint(0, 10, 0),
			expected: false,
		},
		{
			name:     "an object between the point and the light",
			point:    core.NewPoint(10, -10, 10),
			expected: true,
		},
		{
			name:     "an object behind the light",
			point:    core.NewPoint(-20, 20, -20),
			expected: false,
		},
		{
			name:     "an object behind the point",
			point:    core.NewPoint(-2, 2, -2),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := w.IsShadowed(tt.point, light); result != tt.expected {
				t.Errorf("Expected shadowed %t, got %t", tt.expected, result)
			}
		})
	}
}
