package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/ecs/component"
)

// NewPaddle centers a paddle of the given size on the bottom edge of a
// width x height playfield.
func NewPaddle(size cp.Vector, width, height float64) Entity {
	e := Entity{Kind: KindPaddle, Color: component.White}
	e.ResetPaddle(size, width, height)
	return e
}

// ResetPaddle restores the paddle's size, color and starting position.
func (e *Entity) ResetPaddle(size cp.Vector, width, height float64) {
	e.Size = size
	e.Color = component.White
	e.Position = cp.Vector{X: width/2 - size.X/2, Y: height - size.Y}
}

// BallRestPosition is where a stuck ball of the given radius sits on top of
// the paddle.
func (e *Entity) BallRestPosition(radius float64) cp.Vector {
	return e.Position.Add(cp.Vector{X: e.Size.X/2 - radius, Y: -radius * 2})
}
