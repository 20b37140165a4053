package material

import (
	"math"

	"github.com/agourlay/ray-tracer/pkg/core"
)

// Pattern colors points procedurally. PatternAt expects a point already
// converted into pattern space; use PatternAtObject for world-space points.
type Pattern interface {
	// Transform returns the pattern-space transform.
	Transform() core.Transformation
	// PatternAt returns the color at a point in pattern space.
	PatternAt(point core.Tuple) core.Color
}

// PatternAtObject colors a world-space point on an object by mapping it first
// into object space and then into pattern space.
func PatternAtObject(pattern Pattern, objectTransform core.Transformation, worldPoint core.Tuple) core.Color {
	objectPoint := objectTransform.Inverse.MultiplyTuple(worldPoint)
	patternPoint := pattern.Transform().Inverse.MultiplyTuple(objectPoint)
	return pattern.PatternAt(patternPoint)
}

// StripePattern alternates between two colors along the x axis.
// The y and z coordinates have no effect on it.
type StripePattern struct {
	a, b      core.Color
	transform core.Transformation
}

// NewStripePattern creates a stripe pattern with the given transform.
func NewStripePattern(a, b core.Color, transform core.Matrix) *StripePattern {
	return &StripePattern{a: a, b: b, transform: core.NewTransformation(transform)}
}

// Transform returns the pattern-space transform.
func (p *StripePattern) Transform() core.Transformation {
	return p.transform
}

// PatternAt returns the stripe color at a point in pattern space.
func (p *StripePattern) PatternAt(point core.Tuple) core.Color {
	x := point.X
	if x < 0 {
		if math.Mod(math.Abs(x), 2) <= 1 {
			return p.b
		}
		return p.a
	}
	if math.Mod(x, 2) < 1 {
		return p.a
	}
	return p.b
}

// GradientPattern blends linearly from one color to another along the x axis.
type GradientPattern struct {
	a core.Color
	// the color distance is constant, so it is computed once
	distance  core.Color
	transform core.Transformation
}

// NewGradientPattern creates a gradient pattern with the given transform.
func NewGradientPattern(a, b core.Color, transform core.Matrix) *GradientPattern {
	return &GradientPattern{
		a:         a,
		distance:  b.Subtract(a),
		transform: core.NewTransformation(transform),
	}
}

// Transform returns the pattern-space transform.
func (p *GradientPattern) Transform() core.Transformation {
	return p.transform
}

// PatternAt returns the blended color at a point in pattern space, using the
// fractional part of the x coordinate as the blend factor.
func (p *GradientPattern) PatternAt(point core.Tuple) core.Color {
	fraction := point.X - math.Trunc(point.X)
	return p.a.Add(p.distance.Scale(fraction))
}

// RingPattern alternates between two colors in concentric circles around the
// y axis, measured by the distance of the point in both x and z.
type RingPattern struct {
	a, b      core.Color
	transform core.Transformation
}

// NewRingPattern creates a ring pattern with the given transform.
func NewRingPattern(a, b core.Color, transform core.Matrix) *RingPattern {
	return &RingPattern{a: a, b: b, transform: core.NewTransformation(transform)}
}

// Transform returns the pattern-space transform.
func (p *RingPattern) Transform() core.Transformation {
	return p.transform
}

// PatternAt returns the ring color at a point in pattern space.
func (p *RingPattern) PatternAt(point core.Tuple) core.Color {
	distance := math.Sqrt(point.X*point.X + point.Z*point.Z)
	if math.Mod(math.Floor(distance), 2) == 0 {
		return p.a
	}
	return p.b
}

// CheckerPattern alternates between two colors in a cubic grid, relying on
// the sum of all three dimensions instead of x alone.
type CheckerPattern struct {
	a, b      core.Color
	transform core.Transformation
}

// NewCheckerPattern creates a checker pattern with the given transform.
func NewCheckerPattern(a, b core.Color, transform core.Matrix) *CheckerPattern {
	return &CheckerPattern{a: a, b: b, transform: core.NewTransformation(transform)}
}

// Transform returns the pattern-space transform.
func (p *CheckerPattern) Transform() core.Transformation {
	return p.transform
}

// PatternAt returns the checker color at a point in pattern space.
func (p *CheckerPattern) PatternAt(point core.Tuple) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if math.Mod(sum, 2) == 0 {
		return p.a
	}
	return p.b
}
