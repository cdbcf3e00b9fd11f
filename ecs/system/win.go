package system

import (
	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/component"
)

// WinSystem ends an active game once every destructible brick of the level
// is gone. The level is restored behind the win screen and chaos plays as a
// celebration until the player confirms.
type WinSystem struct{}

func NewWinSystem() *WinSystem {
	return &WinSystem{}
}

func (s *WinSystem) Update(w *ecs.World) {
	if w == nil || w.State() != component.GameActive {
		return
	}
	if !w.LevelCompleted() {
		return
	}

	w.Events().Push(ecs.Event{Type: ecs.EventLevelWon, Position: w.Ball().Position})
	w.ResetLevel()
	w.ResetPlayer()
	w.Effects().Chaos = true
	w.SetState(component.GameWin)
	w.Logger().Info("level won", "level", w.Level().Name)
}
