package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/ecs/component"
)

// Particle is the drawable state of one pooled trail particle, as copied
// into a Snapshot. It is alive while Life > 0.
type Particle struct {
	Position cp.Vector
	Velocity cp.Vector
	Color    component.Color
	Alpha    float64
	Life     float64
}

func (p *Particle) Alive() bool {
	return p.Life > 0
}
