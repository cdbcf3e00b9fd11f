package system

import (
	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/component"
)

// InputSystem applies the frame's key snapshot: menu navigation, leaving the
// win screen, paddle movement and ball release.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (s *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	keys, prev := w.Keys(), w.PrevKeys()

	if w.State() == component.GameMenu {
		if keys.JustPressed(prev, component.KeyConfirm) {
			w.SetState(component.GameActive)
		}
		if keys.JustPressed(prev, component.KeyMenuUp) {
			w.SelectLevel(w.LevelIndex() + 1)
		}
		if keys.JustPressed(prev, component.KeyMenuDown) {
			w.SelectLevel(w.LevelIndex() - 1)
		}
	}

	if w.State() == component.GameWin {
		if keys.JustPressed(prev, component.KeyConfirm) {
			w.Effects().Chaos = false
			w.SetState(component.GameMenu)
		}
	}

	if w.State() == component.GameActive {
		movePaddle(w, keys)
	}
}

func movePaddle(w *ecs.World, keys component.Input) {
	paddle := w.Paddle()
	ball := w.Ball()
	step := w.Spec().Paddle.Speed * w.DeltaTime()

	if keys.Pressed(component.KeyLeft) && paddle.Position.X >= 0 {
		paddle.Position.X -= step
		if ball.Ball.Stuck {
			ball.Position.X -= step
		}
	}
	if keys.Pressed(component.KeyRight) && paddle.Position.X <= w.Width()-paddle.Size.X {
		paddle.Position.X += step
		if ball.Ball.Stuck {
			ball.Position.X += step
		}
	}
	if keys.Pressed(component.KeyLaunch) {
		ball.Ball.Stuck = false
	}
}
