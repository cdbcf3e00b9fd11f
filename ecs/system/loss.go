package system

import "github.com/milk9111/breakout/ecs"

// LossSystem restarts the current level when the ball drops below the
// bottom edge. The game stays active.
type LossSystem struct{}

func NewLossSystem() *LossSystem {
	return &LossSystem{}
}

func (s *LossSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ball := w.Ball()
	if ball.Position.Y < w.Height() {
		return
	}

	w.Events().Push(ecs.Event{Type: ecs.EventBallLost, Position: ball.Position})
	w.ResetLevel()
	w.ResetPlayer()
	w.Logger().Info("ball lost", "level", w.LevelIndex())
}
