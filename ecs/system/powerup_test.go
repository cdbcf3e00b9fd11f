package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// onPaddle spawns a power-up of type t overlapping the paddle.
func onPaddle(w *ecs.World, t component.PowerUpType, duration float64) ecs.Entity {
	spec := w.Spec().PowerUps
	ps, _ := spec.Lookup(t)
	pos := w.Paddle().Position.Sub(cp.Vector{X: 0, Y: 10})
	return w.SpawnPowerUp(t, ps.Color.Color, duration, pos, spec.Size(), spec.Velocity.Vector())
}

func step(w *ecs.World, dt float64, systems ...ecs.System) {
	w.Update(dt)
	for _, s := range systems {
		s.Update(w)
	}
}

func TestStickyPowerUpLifecycle(t *testing.T) {
	w := newWorld(t, neverSpawn)
	onPaddle(w, component.PowerUpSticky, 20)

	NewPowerUpCollectSystem().Update(w)

	ball, paddle := w.Ball(), w.Paddle()
	require.Len(t, w.PowerUps(), 1)
	p := livePowerUps(t, w)[0]
	assert.True(t, p.Destroyed)
	assert.True(t, p.Activated)
	assert.True(t, ball.Ball.Sticky)
	assert.Equal(t, component.Color{R: 1, G: 0.5, B: 1}, paddle.Color)
	assert.Equal(t, []ecs.EventType{ecs.EventPowerUpActivated}, drainTypes(w))

	update := NewPowerUpSystem()
	for i := 0; i < 19; i++ {
		step(w, 1, update)
	}
	assert.True(t, ball.Ball.Sticky, "still active before 20s")
	require.Len(t, w.PowerUps(), 1)

	step(w, 1, update)
	assert.False(t, ball.Ball.Sticky)
	assert.Equal(t, component.White, paddle.Color)
	assert.Empty(t, w.PowerUps(), "expired power-up is swept")
	assert.Equal(t, []ecs.EventType{ecs.EventPowerUpExpired}, drainTypes(w))
}

func TestSameTypeEffectOutlivesFirstExpiry(t *testing.T) {
	w := newWorld(t, neverSpawn)
	onPaddle(w, component.PowerUpPassThrough, 5)
	onPaddle(w, component.PowerUpPassThrough, 10)
	NewPowerUpCollectSystem().Update(w)

	ball := w.Ball()
	require.True(t, ball.Ball.PassThrough)
	assert.Equal(t, component.Color{R: 1, G: 0.5, B: 0.5}, ball.Color)

	update := NewPowerUpSystem()
	for i := 0; i < 5; i++ {
		step(w, 1, update)
	}
	assert.True(t, ball.Ball.PassThrough, "second pass-through still active")
	assert.Len(t, w.PowerUps(), 1)

	for i := 0; i < 5; i++ {
		step(w, 1, update)
	}
	assert.False(t, ball.Ball.PassThrough)
	assert.Equal(t, component.White, ball.Color)
	assert.Empty(t, w.PowerUps())
}

func TestInstantPowerUps(t *testing.T) {
	w := newWorld(t, neverSpawn)
	ball, paddle := w.Ball(), w.Paddle()
	ball.Velocity = cp.Vector{X: 100, Y: -200}

	onPaddle(w, component.PowerUpSpeed, 0)
	onPaddle(w, component.PowerUpPaddleSizeIncrease, 0)
	NewPowerUpCollectSystem().Update(w)

	assert.InDelta(t, 120, ball.Velocity.X, 1e-9)
	assert.InDelta(t, -240, ball.Velocity.Y, 1e-9)
	assert.Equal(t, 150.0, paddle.Size.X)

	step(w, 0.016, NewPowerUpSystem())
	assert.Empty(t, w.PowerUps())
	assert.Equal(t, 150.0, paddle.Size.X, "instant effects are never reversed")
}

func TestConfuseAndChaosExclusive(t *testing.T) {
	cases := []struct {
		name        string
		first       component.PowerUpType
		second      component.PowerUpType
		wantConfuse bool
		wantChaos   bool
	}{
		{"confuse_blocks_chaos", component.PowerUpConfuse, component.PowerUpChaos, true, false},
		{"chaos_blocks_confuse", component.PowerUpChaos, component.PowerUpConfuse, false, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newWorld(t, neverSpawn)
			ActivatePowerUp(w, c.first)
			ActivatePowerUp(w, c.second)
			assert.Equal(t, c.wantConfuse, w.Effects().Confuse)
			assert.Equal(t, c.wantChaos, w.Effects().Chaos)
		})
	}
}

func TestPowerUpFallsOutOfPlayfield(t *testing.T) {
	w := newWorld(t, neverSpawn)
	spec := w.Spec().PowerUps
	w.SpawnPowerUp(component.PowerUpChaos, component.White, 15, cp.Vector{X: 10, Y: 599}, spec.Size(), spec.Velocity.Vector())

	live := w.EntityCount() - 1
	collect, update := NewPowerUpCollectSystem(), NewPowerUpSystem()
	step(w, 0.01, collect, update)
	p := livePowerUps(t, w)
	require.Len(t, p, 1)
	assert.False(t, p[0].Destroyed)
	assert.InDelta(t, 600.5, p[0].body.Position.Y, 1e-9)

	step(w, 0.01, collect, update)
	assert.Empty(t, w.PowerUps())
	assert.False(t, w.Effects().Chaos, "missed power-ups never activate")
	assert.Equal(t, live, w.EntityCount(), "swept power-ups free their entity")
}
