package system

import "github.com/milk9111/breakout/ecs"

// BallMoveSystem integrates the free ball and bounces it off the walls.
type BallMoveSystem struct{}

func NewBallMoveSystem() *BallMoveSystem {
	return &BallMoveSystem{}
}

func (s *BallMoveSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.Ball().Move(w.DeltaTime(), w.Width())
}
