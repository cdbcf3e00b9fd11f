package system

import (
	"github.com/milk9111/breakout/collision"
	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/component"
)

// PowerUpCollectSystem destroys power-ups that fell out of the playfield and
// activates the ones the paddle catches.
type PowerUpCollectSystem struct{}

func NewPowerUpCollectSystem() *PowerUpCollectSystem {
	return &PowerUpCollectSystem{}
}

func (s *PowerUpCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	paddle := w.Paddle()
	ecs.ForEach2(w, component.PowerUpComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, p *component.PowerUp, body *component.Body) {
		if p.Destroyed {
			return
		}
		if body.Position.Y >= w.Height() {
			p.Destroyed = true
		}
		if !collision.Boxes(paddle.Bounds(), body.Bounds()) {
			return
		}

		ActivatePowerUp(w, p.Type)
		p.Destroyed = true
		p.Activated = true
		w.Events().Push(ecs.Event{Type: ecs.EventPowerUpActivated, Position: body.Position, PowerUp: p.Type})
		w.Logger().Debug("power-up activated", "entity", e, "type", p.Type, "duration", p.Duration)
	})
}
