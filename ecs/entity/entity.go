package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/collision"
	"github.com/milk9111/breakout/ecs/component"
)

// Kind tags which payload of an Entity is meaningful.
type Kind uint8

const (
	KindBrick Kind = iota
	KindPaddle
	KindBall
	KindPowerUp
)

func (k Kind) String() string {
	switch k {
	case KindBrick:
		return "brick"
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	case KindPowerUp:
		return "powerup"
	}
	return "unknown"
}

// Entity is a positioned, sized and colored rectangle. Position is the
// top-left corner. Ball and PowerUp are only meaningful for their kinds.
type Entity struct {
	Kind     Kind
	Position cp.Vector
	Size     cp.Vector
	Velocity cp.Vector
	Color    component.Color
	Rotation float64

	Solid     bool
	Destroyed bool

	Ball    Ball
	PowerUp PowerUp
}

// Bounds returns the entity's axis-aligned box.
func (e *Entity) Bounds() collision.Rect {
	return collision.NewRect(e.Position, e.Size)
}

// Center returns the midpoint of the entity's box.
func (e *Entity) Center() cp.Vector {
	return e.Bounds().Center()
}
