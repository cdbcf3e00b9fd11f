package system

import "github.com/milk9111/breakout/ecs"

// ShakeSystem counts down the screen shake requested by solid brick hits.
type ShakeSystem struct{}

func NewShakeSystem() *ShakeSystem {
	return &ShakeSystem{}
}

func (s *ShakeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	fx := w.Effects()
	if fx.ShakeTime <= 0 {
		return
	}
	fx.ShakeTime -= w.DeltaTime()
	if fx.ShakeTime <= 0 {
		fx.ShakeTime = 0
		fx.Shake = false
	}
}
