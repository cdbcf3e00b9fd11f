package collision

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect builds a Rect from a top-left position and a size.
func NewRect(pos, size cp.Vector) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}
}

// BB converts the rect to a Chipmunk bounding box. Screen space grows
// downward, so B holds the top edge and T the bottom edge; BB only needs
// B <= T.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

// Center is the midpoint of the rect.
func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects reports whether both rects overlap on X and on Y. Touching
// edges count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.BB().Intersects(other.BB())
}

// Boxes is the AABB-vs-AABB test.
func Boxes(a, b Rect) bool {
	return a.Intersects(b)
}
