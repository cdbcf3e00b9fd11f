package system

import (
	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/component"
)

// ActivatePowerUp applies the effect of a caught power-up of type t.
func ActivatePowerUp(w *ecs.World, t component.PowerUpType) {
	if w == nil {
		return
	}

	spec := w.Spec().PowerUps
	ball := w.Ball()
	paddle := w.Paddle()
	fx := w.Effects()

	switch t {
	case component.PowerUpSpeed:
		ball.Velocity = ball.Velocity.Mult(spec.SpeedMultiplier)
	case component.PowerUpSticky:
		ball.Ball.Sticky = true
		paddle.Color = spec.StickyColor.Color
	case component.PowerUpPassThrough:
		ball.Ball.PassThrough = true
		ball.Color = spec.PassThroughColor.Color
	case component.PowerUpPaddleSizeIncrease:
		paddle.Size.X += spec.SizeIncrease
	case component.PowerUpConfuse:
		// confuse and chaos never stack
		if !fx.Chaos {
			fx.Confuse = true
		}
	case component.PowerUpChaos:
		if !fx.Confuse {
			fx.Chaos = true
		}
	}
}

// DeactivatePowerUp reverses the effect of type t. Speed and paddle size are
// permanent until the player is reset.
func DeactivatePowerUp(w *ecs.World, t component.PowerUpType) {
	if w == nil {
		return
	}

	ball := w.Ball()
	fx := w.Effects()

	switch t {
	case component.PowerUpSticky:
		ball.Ball.Sticky = false
		w.Paddle().Color = component.White
	case component.PowerUpPassThrough:
		ball.Ball.PassThrough = false
		ball.Color = component.White
	case component.PowerUpConfuse:
		fx.Confuse = false
	case component.PowerUpChaos:
		fx.Chaos = false
	}
}
