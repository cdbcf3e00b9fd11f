package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/collision"
	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/entity"
)

// PaddleCollisionSystem bounces a free ball off the paddle. Where the ball
// lands decides how far it is deflected sideways.
type PaddleCollisionSystem struct{}

func NewPaddleCollisionSystem() *PaddleCollisionSystem {
	return &PaddleCollisionSystem{}
}

func (s *PaddleCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ball := w.Ball()
	if ball.Ball.Stuck {
		return
	}
	paddle := w.Paddle()
	if !collision.CircleBox(ball.Circle(), paddle.Bounds()).Collided {
		return
	}

	spec := w.Spec().Ball
	Deflect(ball, paddle, spec.Velocity.Vector(), spec.Strength)
	ball.Ball.Stuck = ball.Ball.Sticky
	w.Events().Push(ecs.Event{Type: ecs.EventPaddleHit, Position: ball.Circle().Center})
}

// Deflect sends the ball upward with a horizontal component proportional to
// how far from the paddle center it hit, keeping its speed unchanged.
func Deflect(ball, paddle *entity.Entity, initial cp.Vector, strength float64) {
	half := paddle.Size.X / 2
	if half <= 0 {
		return
	}
	center := paddle.Position.X + half
	percentage := (ball.Circle().Center.X - center) / half

	old := ball.Velocity
	v := cp.Vector{
		X: initial.X * percentage * strength,
		Y: -math.Abs(old.Y),
	}
	if v.Length() == 0 {
		ball.Velocity = v
		return
	}
	ball.Velocity = v.Normalize().Mult(old.Length())
}
