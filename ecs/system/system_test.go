package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/component"
	"github.com/milk9111/breakout/ecs/entity"
	"github.com/milk9111/breakout/prefabs"
	"github.com/stretchr/testify/require"
)

// constRand always rolls v, clamped into [0, n).
type constRand int

func (r constRand) IntN(n int) int {
	if int(r) >= n {
		return n - 1
	}
	return int(r)
}

// recordRand rolls 0 and remembers every bound it was asked for.
type recordRand struct {
	bounds []int
}

func (r *recordRand) IntN(n int) int {
	r.bounds = append(r.bounds, n)
	return 0
}

const (
	alwaysSpawn = constRand(0)
	neverSpawn  = constRand(1)
)

func newWorld(t *testing.T, rng ecs.Rand, mutate ...func(*prefabs.GameSpec)) *ecs.World {
	t.Helper()
	spec, err := prefabs.LoadGameSpec()
	require.NoError(t, err)
	for _, m := range mutate {
		m(spec)
	}
	w, err := ecs.NewWorld(spec, ecs.WithRand(rng))
	require.NoError(t, err)
	return w
}

// setBricks replaces the current level's layout and respawns its bricks.
func setBricks(w *ecs.World, bricks ...entity.Entity) {
	w.Level().Bricks = bricks
	w.ResetLevel()
}

// brickAt returns the i-th brick of the current level in row-major order.
func brickAt(t *testing.T, w *ecs.World, i int) *component.Brick {
	t.Helper()
	bricks := w.Bricks()
	require.Greater(t, len(bricks), i)
	b, ok := ecs.Get(w, bricks[i], component.BrickComponent.Kind())
	require.True(t, ok)
	return b
}

// powerUp is one live power-up with its components resolved.
type powerUp struct {
	*component.PowerUp
	body *component.Body
	vel  *component.Velocity
}

func livePowerUps(t *testing.T, w *ecs.World) []powerUp {
	t.Helper()
	var out []powerUp
	for _, e := range w.PowerUps() {
		p, okP := ecs.Get(w, e, component.PowerUpComponent.Kind())
		body, okB := ecs.Get(w, e, component.BodyComponent.Kind())
		vel, okV := ecs.Get(w, e, component.VelocityComponent.Kind())
		require.True(t, okP && okB && okV, "power-up %v is missing a component", e)
		out = append(out, powerUp{PowerUp: p, body: body, vel: vel})
	}
	return out
}

// particle is one pooled particle with its components resolved.
type particle struct {
	*component.Particle
	body *component.Body
	vel  *component.Velocity
}

func particleAt(t *testing.T, w *ecs.World, i int) particle {
	t.Helper()
	e := w.Particles()[i]
	p, okP := ecs.Get(w, e, component.ParticleComponent.Kind())
	body, okB := ecs.Get(w, e, component.BodyComponent.Kind())
	vel, okV := ecs.Get(w, e, component.VelocityComponent.Kind())
	require.True(t, okP && okB && okV)
	return particle{Particle: p, body: body, vel: vel}
}

// placeBall frees the ball and gives it the radius, top-left corner and
// velocity.
func placeBall(w *ecs.World, radius float64, pos, vel cp.Vector) *entity.Entity {
	b := w.Ball()
	b.Ball.Radius = radius
	b.Size = cp.Vector{X: radius * 2, Y: radius * 2}
	b.Position = pos
	b.Velocity = vel
	b.Ball.Stuck = false
	return b
}

func drainTypes(w *ecs.World) []ecs.EventType {
	var out []ecs.EventType
	for _, e := range w.Events().Drain() {
		out = append(out, e.Type)
	}
	return out
}

func keys(pressed ...component.Key) component.Input {
	var in component.Input
	for _, k := range pressed {
		in.Set(k, true)
	}
	return in
}
