package component

// Brick marks a level brick. Broken bricks stay in the world with Destroyed
// set until the level is reset.
type Brick struct {
	Solid     bool
	Destroyed bool
}

// Standing reports whether the brick still blocks the level from being
// won.
func (b *Brick) Standing() bool {
	return !b.Solid && !b.Destroyed
}

var BrickComponent = NewComponent[Brick]()
