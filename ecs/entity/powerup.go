package entity

import "github.com/milk9111/breakout/ecs/component"

// PowerUp is the payload of a KindPowerUp entity.
type PowerUp struct {
	Type      component.PowerUpType
	Duration  float64
	Activated bool
}
