package material

import (
	"github.com/agourlay/ray-tracer/pkg/core"
)

// Material holds the Phong shading parameters of a surface.
// Pattern is nil for a flat colored surface; when set it overrides Color.
type Material struct {
	Color     core.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
	Pattern   Pattern
}

// Default returns a matte white material.
func Default() Material {
	return Material{
		Color:     core.White(),
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200.0,
	}
}

// New returns a material with the given color, diffuse and specular values
// and the default ambient and shininess.
func New(color core.Color, diffuse, specular float64) Material {
	m := Default()
	m.Color = color
	m.Diffuse = diffuse
	m.Specular = specular
	return m
}

// NewWithPattern returns a patterned material with the given diffuse and
// specular values.
func NewWithPattern(color core.Color, diffuse, specular float64, pattern Pattern) Material {
	m := New(color, diffuse, specular)
	m.Pattern = pattern
	return m
}

// SetPattern returns a copy of the material with the pattern replaced.
func (m Material) SetPattern(pattern Pattern) Material {
	m.Pattern = pattern
	return m
}
