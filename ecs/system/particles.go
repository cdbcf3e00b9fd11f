package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/component"
)

const (
	particleLife     = 1.0
	particleFadeRate = 2.5
)

// ParticleSystem trails the ball: it respawns a few pooled particles at the
// ball every tick and ages the whole pool.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pool := w.Particles()
	if len(pool) == 0 {
		return
	}

	ball := w.Ball()
	offset := ball.Ball.Radius / 2
	rng := w.Rand()
	for range w.Spec().Particles.PerTick {
		e := pool[w.FirstUnusedParticle()]
		body, okB := ecs.Get(w, e, component.BodyComponent.Kind())
		v, okV := ecs.Get(w, e, component.VelocityComponent.Kind())
		p, okP := ecs.Get(w, e, component.ParticleComponent.Kind())
		if !okB || !okV || !okP {
			continue
		}
		jitter := float64(rng.IntN(100)-50) / 10
		gray := 0.5 + float64(rng.IntN(100))/100
		body.Position = ball.Position.Add(cp.Vector{X: jitter + offset, Y: jitter + offset})
		body.Color = component.Color{R: gray, G: gray, B: gray}
		p.Alpha = 1
		p.Life = particleLife
		v.Value = ball.Velocity.Mult(0.1)
	}

	dt := w.DeltaTime()
	ecs.ForEach3(w, component.ParticleComponent.Kind(), component.BodyComponent.Kind(), component.VelocityComponent.Kind(),
		func(_ ecs.Entity, p *component.Particle, body *component.Body, v *component.Velocity) {
			p.Life -= dt
			if !p.Alive() {
				return
			}
			body.Position = body.Position.Sub(v.Value.Mult(dt))
			p.Alpha -= dt * particleFadeRate
		})
}
