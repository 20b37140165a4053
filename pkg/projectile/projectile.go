package projectile

import (
	"math"

	"github.com/agourlay/ray-tracer/pkg/canvas"
	"github.com/agourlay/ray-tracer/pkg/core"
)

// Projectile is a position with its current velocity.
type Projectile struct {
	Position core.Tuple
	Velocity core.Tuple
}

// Environment applies a constant acceleration to every projectile.
type Environment struct {
	Gravity core.Tuple
	Wind    core.Tuple
}

// Tick advances the projectile by one simulation step.
func (p Projectile) Tick(env Environment) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Run simulates a projectile launched from the lower left corner and plots
// its trajectory on a canvas until touchdown. Points falling outside the
// canvas are skipped.
func Run(width, height int) *canvas.Canvas {
	p := Projectile{
		Position: core.NewPoint(0, 1, 0),
		Velocity: core.NewVector(1, 1.8, 0).Normalize().Multiply(11.25),
	}
	env := Environment{
		Gravity: core.NewVector(0, -0.1, 0),
		Wind:    core.NewVector(-0.01, 0, 0),
	}

	c := canvas.New(width, height)
	red := core.NewColor(1.5, 0, 0)
	for p.Position.Y > 0 {
		x := int(math.Round(p.Position.X))
		y := height - int(math.Round(p.Position.Y))
		if x >= 0 && x < width && y >= 0 && y < height {
			c.Write(x, y, red)
		}
		p = p.Tick(env)
	}
	return c
}
