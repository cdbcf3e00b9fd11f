package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/collision"
)

// Body is the colored box an entity occupies. Position is the top-left
// corner. Particles leave Size zero.
type Body struct {
	Position cp.Vector
	Size     cp.Vector
	Color    Color
}

func (b *Body) Bounds() collision.Rect {
	return collision.NewRect(b.Position, b.Size)
}

func (b *Body) Center() cp.Vector {
	return b.Bounds().Center()
}

var BodyComponent = NewComponent[Body]()
