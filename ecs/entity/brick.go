package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/ecs/component"
)

const (
	TileEmpty = 0
	TileSolid = 1
)

var (
	solidBrickColor = component.Color{R: 0.8, G: 0.8, B: 0.7}

	brickColors = map[int]component.Color{
		2: {R: 0.2, G: 0.6, B: 1.0},
		3: {R: 0.0, G: 0.7, B: 0.0},
		4: {R: 0.8, G: 0.8, B: 0.4},
		5: {R: 1.0, G: 0.5, B: 0.0},
	}
)

// NewBrick builds the brick for a non-empty tile code. Code 1 is solid;
// any higher code is destructible and picks its color by code.
func NewBrick(code int, pos, size cp.Vector) Entity {
	e := Entity{Kind: KindBrick, Position: pos, Size: size}
	if code == TileSolid {
		e.Solid = true
		e.Color = solidBrickColor
		return e
	}
	e.Color = component.White
	if c, ok := brickColors[code]; ok {
		e.Color = c
	}
	return e
}
