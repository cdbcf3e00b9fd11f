package collision

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Direction is the compass side a collision normal aligns with best.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// Horizontal reports whether the direction lies on the X axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

var compass = [...]cp.Vector{
	Up:    {X: 0, Y: 1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
}

// Circle is a collider given by its center and radius.
type Circle struct {
	Center cp.Vector
	Radius float64
}

// Result describes one circle-vs-box test. Difference is the vector from the
// circle center to the closest point of the box.
type Result struct {
	Collided   bool
	Direction  Direction
	Difference cp.Vector
}

// VectorDirection picks the compass direction with the strictly greatest
// dot product against the normalized target. The running maximum starts at
// zero, so a zero vector or any tie resolves to the earliest entry (Up).
func VectorDirection(target cp.Vector) Direction {
	n := target.Normalize()
	best := Up
	bestDot := 0.0
	for i, c := range compass {
		if dot := n.Dot(c); dot > bestDot {
			bestDot = dot
			best = Direction(i)
		}
	}
	return best
}

// CircleBox tests a circle against an axis-aligned box.
func CircleBox(c Circle, box Rect) Result {
	closest := box.BB().ClampVect(&c.Center)
	diff := closest.Sub(c.Center)
	if diff.Length() <= c.Radius {
		return Result{Collided: true, Direction: VectorDirection(diff), Difference: diff}
	}
	return Result{Direction: Up}
}

// Penetration is how far the circle overlaps the box along the axis of the
// collision direction.
func (r Result) Penetration(radius float64) float64 {
	if !r.Collided {
		return 0
	}
	if r.Direction.Horizontal() {
		return radius - math.Abs(r.Difference.X)
	}
	return radius - math.Abs(r.Difference.Y)
}
