package component

import "image/color"

// Color is a linear RGB tint in the 0..1 range. Values above 1 are allowed
// and clamp when converted for display.
type Color struct {
	R, G, B float64
}

var White = Color{R: 1, G: 1, B: 1}

// RGBA converts the tint to a display color with the given alpha.
func (c Color) RGBA(alpha float64) color.NRGBA {
	return color.NRGBA{R: unit8(c.R), G: unit8(c.G), B: unit8(c.B), A: unit8(alpha)}
}

func unit8(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}
