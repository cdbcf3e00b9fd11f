package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/component"
)

// PowerUpSpawner rolls an independent 1-in-N trial per power-up type for
// every destroyed brick. N comes from the game spec and may be adjusted by
// the spawn script.
type PowerUpSpawner struct {
	script *spawnScript
}

func NewPowerUpSpawner() *PowerUpSpawner {
	return &PowerUpSpawner{script: &spawnScript{}}
}

// Spawn creates every power-up that won its roll with its box at pos, the
// top-left corner of the broken brick, and returns how many were created.
func (s *PowerUpSpawner) Spawn(w *ecs.World, pos cp.Vector) int {
	if s == nil || w == nil {
		return 0
	}

	spec := w.Spec()
	spawned := 0
	for _, t := range component.PowerUpTypes {
		ps, ok := spec.PowerUps.Lookup(t)
		if !ok {
			continue
		}
		chance := s.script.odds(w, t, ps.Chance)
		if !ShouldSpawn(w.Rand(), chance) {
			continue
		}

		e := w.SpawnPowerUp(t, ps.Color.Color, ps.Duration, pos, spec.PowerUps.Size(), spec.PowerUps.Velocity.Vector())
		w.Events().Push(ecs.Event{Type: ecs.EventPowerUpSpawned, Position: pos, PowerUp: t})
		w.Logger().Debug("power-up spawned", "entity", e, "type", t, "x", pos.X, "y", pos.Y)
		spawned++
	}
	return spawned
}

// ShouldSpawn wins a 1-in-chance roll. Non-positive chances never win.
func ShouldSpawn(rng ecs.Rand, chance int) bool {
	if rng == nil || chance <= 0 {
		return false
	}
	return rng.IntN(chance) == 0
}
