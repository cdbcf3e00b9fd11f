package component

// PowerUp is a falling pickup, and once caught, the timer of its effect.
type PowerUp struct {
	Type PowerUpType
	// Duration is the remaining effect time in seconds. Zero means the effect
	// is applied once on pickup and never reversed.
	Duration  float64
	Activated bool
	Destroyed bool
}

// Expired reports whether the power-up can be removed from the world.
func (p *PowerUp) Expired() bool {
	return p.Destroyed && !p.Activated
}

var PowerUpComponent = NewComponent[PowerUp]()
