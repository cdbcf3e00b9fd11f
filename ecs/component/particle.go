package component

// Particle is one pooled trail particle. It is alive while Life > 0.
type Particle struct {
	Alpha float64
	Life  float64
}

func (p *Particle) Alive() bool {
	return p.Life > 0
}

var ParticleComponent = NewComponent[Particle]()
