package lights

import (
	"math"

	"github.com/agourlay/ray-tracer/pkg/core"
	"github.com/agourlay/ray-tracer/pkg/material"
)

// PointLight is a light source radiating from a single position with no
// size and no distance falloff.
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a point light.
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Lighting shades a surface point with the Phong model: the sum of an
// ambient, a diffuse and a specular term. A shadowed point keeps only the
// ambient term. The eye and normal vectors must be normalized.
func (l PointLight) Lighting(
	m material.Material,
	objectTransform core.Transformation,
	point, eye, normal core.Tuple,
	inShadow bool,
) core.Color {
	color := m.Color
	if m.Pattern != nil {
		color = material.PatternAtObject(m.Pattern, objectTransform, point)
	}
	// combine the surface color with the light's color/intensity
	effectiveColor := color.Multiply(l.Intensity)
	ambient := effectiveColor.Scale(m.Ambient)

	diffuse := core.Black()
	specular := core.Black()
	if !inShadow {
		lightVector := l.Position.Subtract(point).Normalize()
		// the cosine of the angle between the light vector and the normal;
		// negative means the light is on the other side of the surface
		lightDotNormal := lightVector.Dot(normal)
		if lightDotNormal >= 0.0 {
			diffuse = effectiveColor.Scale(m.Diffuse * lightDotNormal)

			reflectVector := lightVector.Negate().Reflect(normal)
			reflectDotEye := reflectVector.Dot(eye)
			if reflectDotEye >= 0.0 {
				factor := math.Pow(reflectDotEye, m.Shininess)
				specular = l.Intensity.Scale(m.Specular * factor)
			}
		}
	}
	return ambient.Add(diffuse).Add(specular)
}
