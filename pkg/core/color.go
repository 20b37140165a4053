package core

import "math"

// Color is an RGB triple with unbounded float channels.
// Values may exceed 1.0 during shading; clamping happens only at encoding time.
type Color struct {
	R, G, B float64
}

// NewColor creates a new color.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the zero color.
func Black() Color {
	return Color{}
}

// White returns the full-intensity white color.
func White() Color {
	return Color{R: 1.0, G: 1.0, B: 1.0}
}

// Add returns the componentwise sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the componentwise difference of two colors.
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the componentwise (Hadamard) product of two colors.
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the color with every channel multiplied by a scalar.
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Equals reports whether two colors are equal within a small tolerance.
func (c Color) Equals(other Color) bool {
	return math.Abs(c.R-other.R) <= epsilon &&
		math.Abs(c.G-other.G) <= epsilon &&
		math.Abs(c.B-other.B) <= epsilon
}
