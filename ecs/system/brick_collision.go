package system

import (
	"github.com/milk9111/breakout/collision"
	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/component"
	"github.com/milk9111/breakout/ecs/entity"
)

// BrickCollisionSystem tests the ball against every standing brick of the
// current level in row-major order. Destructible bricks break and roll for
// power-ups; solid bricks shake the screen. Responses compound within a
// tick.
type BrickCollisionSystem struct {
	spawner *PowerUpSpawner
}

func NewBrickCollisionSystem(spawner *PowerUpSpawner) *BrickCollisionSystem {
	if spawner == nil {
		spawner = NewPowerUpSpawner()
	}
	return &BrickCollisionSystem{spawner: spawner}
}

func (s *BrickCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ball := w.Ball()
	ecs.ForEach2(w, component.BrickComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, brick *component.Brick, body *component.Body) {
		if brick.Destroyed {
			return
		}

		res := collision.CircleBox(ball.Circle(), body.Bounds())
		if !res.Collided {
			return
		}

		if brick.Solid {
			fx := w.Effects()
			fx.ShakeTime = w.Spec().ShakeSeconds
			fx.Shake = true
			w.Events().Push(ecs.Event{Type: ecs.EventSolidBrickHit, Position: body.Center()})
		} else {
			brick.Destroyed = true
			w.Events().Push(ecs.Event{Type: ecs.EventBrickDestroyed, Position: body.Center()})
			s.spawner.Spawn(w, body.Position)
		}

		if ball.Ball.PassThrough && !brick.Solid {
			return
		}
		Bounce(ball, res)
	})
}

// Bounce reflects the ball off a box it collided with and pushes it back
// out of the box along the collision axis.
func Bounce(ball *entity.Entity, res collision.Result) {
	if ball == nil || !res.Collided {
		return
	}
	depth := res.Penetration(ball.Ball.Radius)
	switch res.Direction {
	case collision.Left:
		ball.Velocity.X = -ball.Velocity.X
		ball.Position.X += depth
	case collision.Right:
		ball.Velocity.X = -ball.Velocity.X
		ball.Position.X -= depth
	case collision.Up:
		ball.Velocity.Y = -ball.Velocity.Y
		ball.Position.Y -= depth
	case collision.Down:
		ball.Velocity.Y = -ball.Velocity.Y
		ball.Position.Y += depth
	}
}
