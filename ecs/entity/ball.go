package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/collision"
	"github.com/milk9111/breakout/ecs/component"
)

// Ball is the payload of a KindBall entity.
type Ball struct {
	Radius float64
	// Stuck balls ride on the paddle and are not simulated.
	Stuck bool
	// Sticky balls become stuck again on their next paddle contact.
	Sticky bool
	// PassThrough balls do not bounce off destructible bricks.
	PassThrough bool
}

// NewBall creates a ball stuck to the paddle with its box at pos.
func NewBall(pos cp.Vector, radius float64, velocity cp.Vector) Entity {
	return Entity{
		Kind:     KindBall,
		Position: pos,
		Size:     cp.Vector{X: radius * 2, Y: radius * 2},
		Velocity: velocity,
		Color:    component.White,
		Ball:     Ball{Radius: radius, Stuck: true},
	}
}

// Circle returns the ball's collider. The center sits radius away from the
// top-left corner on both axes.
func (e *Entity) Circle() collision.Circle {
	r := e.Ball.Radius
	return collision.Circle{Center: e.Position.Add(cp.Vector{X: r, Y: r}), Radius: r}
}

// Move integrates a free ball and bounces it off the left, right and top
// walls of a playfield of the given width. Stuck balls do not move.
func (e *Entity) Move(dt, width float64) cp.Vector {
	if e.Ball.Stuck {
		return e.Position
	}

	e.Position = e.Position.Add(e.Velocity.Mult(dt))

	if e.Position.X <= 0 {
		e.Velocity.X = -e.Velocity.X
		e.Position.X = 0
	} else if e.Position.X+e.Size.X >= width {
		e.Velocity.X = -e.Velocity.X
		e.Position.X = width - e.Size.X
	}

	if e.Position.Y <= 0 {
		e.Velocity.Y = -e.Velocity.Y
		e.Position.Y = 0
	}

	return e.Position
}

// ResetBall puts the ball back on the paddle and clears every power-up flag.
func (e *Entity) ResetBall(pos, velocity cp.Vector) {
	e.Position = pos
	e.Velocity = velocity
	e.Color = component.White
	e.Ball.Stuck = true
	e.Ball.Sticky = false
	e.Ball.PassThrough = false
}
