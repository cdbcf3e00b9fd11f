package ecs

import (
	"github.com/milk9111/breakout/ecs/component"
	"github.com/milk9111/breakout/ecs/entity"
)

// Snapshot is a copy of everything a renderer draws. Filling one after an
// update keeps renderers from touching live world state.
type Snapshot struct {
	State      component.GameState
	Width      float64
	Height     float64
	Elapsed    float64
	Level      int
	LevelCount int
	LevelName  string
	Remaining  int

	Paddle    entity.Entity
	Ball      entity.Entity
	Bricks    []entity.Entity
	PowerUps  []entity.Entity
	Particles []entity.Particle
	Effects   component.ScreenEffects
}

// Snapshot copies the drawable state of w into dst, reusing dst's slices.
func (w *World) Snapshot(dst *Snapshot) {
	if w == nil || dst == nil {
		return
	}

	dst.State = w.state
	dst.Width = w.Width()
	dst.Height = w.Height()
	dst.Elapsed = w.elapsed
	dst.Level = w.current
	dst.LevelCount = len(w.levels)
	dst.Paddle = w.paddle
	dst.Ball = w.ball
	dst.Effects = w.effects

	dst.Bricks = dst.Bricks[:0]
	ForEach2(w, component.BrickComponent.Kind(), component.BodyComponent.Kind(), func(_ Entity, b *component.Brick, body *component.Body) {
		dst.Bricks = append(dst.Bricks, entity.Entity{
			Kind:      entity.KindBrick,
			Position:  body.Position,
			Size:      body.Size,
			Color:     body.Color,
			Solid:     b.Solid,
			Destroyed: b.Destroyed,
		})
	})

	dst.PowerUps = dst.PowerUps[:0]
	ForEach3(w, component.PowerUpComponent.Kind(), component.BodyComponent.Kind(), component.VelocityComponent.Kind(),
		func(_ Entity, p *component.PowerUp, body *component.Body, v *component.Velocity) {
			dst.PowerUps = append(dst.PowerUps, entity.Entity{
				Kind:      entity.KindPowerUp,
				Position:  body.Position,
				Size:      body.Size,
				Velocity:  v.Value,
				Color:     body.Color,
				Destroyed: p.Destroyed,
				PowerUp:   entity.PowerUp{Type: p.Type, Duration: p.Duration, Activated: p.Activated},
			})
		})

	dst.Particles = dst.Particles[:0]
	ForEach3(w, component.ParticleComponent.Kind(), component.BodyComponent.Kind(), component.VelocityComponent.Kind(),
		func(_ Entity, p *component.Particle, body *component.Body, v *component.Velocity) {
			dst.Particles = append(dst.Particles, entity.Particle{
				Position: body.Position,
				Velocity: v.Value,
				Color:    body.Color,
				Alpha:    p.Alpha,
				Life:     p.Life,
			})
		})

	dst.LevelName = ""
	if l := w.Level(); l != nil {
		dst.LevelName = l.Name
	}
	dst.Remaining = w.BricksRemaining()
}
