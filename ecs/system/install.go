package system

import (
	"errors"

	"github.com/milk9111/breakout/ecs"
)

// Install registers the input system and the simulation systems on w in the
// order one frame must run them.
func Install(w *ecs.World) error {
	if w == nil {
		return errors.New("system: install: nil world")
	}

	w.AddInputSystem(NewInputSystem())

	w.AddSystem(NewBallMoveSystem())
	w.AddSystem(NewBrickCollisionSystem(NewPowerUpSpawner()))
	w.AddSystem(NewPowerUpCollectSystem())
	w.AddSystem(NewPaddleCollisionSystem())
	w.AddSystem(NewParticleSystem())
	w.AddSystem(NewPowerUpSystem())
	w.AddSystem(NewShakeSystem())
	w.AddSystem(NewLossSystem())
	w.AddSystem(NewWinSystem())
	return nil
}
