package system

import (
	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/component"
)

// PowerUpSystem moves every live power-up, counts down the activated ones
// and sweeps those that are both destroyed and inactive. An effect is only
// reversed when the last activated power-up of its type runs out.
type PowerUpSystem struct{}

func NewPowerUpSystem() *PowerUpSystem {
	return &PowerUpSystem{}
}

func (s *PowerUpSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.DeltaTime()
	ecs.ForEach3(w, component.PowerUpComponent.Kind(), component.BodyComponent.Kind(), component.VelocityComponent.Kind(),
		func(_ ecs.Entity, p *component.PowerUp, body *component.Body, v *component.Velocity) {
			body.Position = body.Position.Add(v.Value.Mult(dt))
			if !p.Activated {
				return
			}

			p.Duration -= dt
			if p.Duration > 0 {
				return
			}
			p.Activated = false

			if w.PowerUpActive(p.Type) {
				return
			}
			DeactivatePowerUp(w, p.Type)
			w.Events().Push(ecs.Event{Type: ecs.EventPowerUpExpired, Position: body.Position, PowerUp: p.Type})
			w.Logger().Debug("power-up expired", "type", p.Type)
		})

	w.SweepPowerUps()
}
