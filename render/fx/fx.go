// Package fx holds the timing math of the post-processing effects, shared
// by every frontend.
package fx

import (
	"math"

	"github.com/milk9111/breakout/common"
)

const (
	shakeStrength = 0.01
	chaosStrength = 0.3
)

// Shake is the screen jitter at time t for a w x h view. It swings by
// one percent of the half extents.
func Shake(t, w, h float64) (float64, float64) {
	return math.Cos(t*10) * shakeStrength * w / 2, math.Cos(t*15) * shakeStrength * h / 2
}

// Chaos is how far the scene has drifted at time t, wrapped into
// [0,w) x [0,h).
func Chaos(t, w, h float64) (float64, float64) {
	return wrap(math.Sin(t)*chaosStrength*w, w), wrap(math.Cos(t)*chaosStrength*h, h)
}

// Pulse eases between lo and hi once per period seconds.
func Pulse(t, period, lo, hi float64) float64 {
	if period <= 0 {
		return hi
	}
	phase := (math.Sin(2*math.Pi*t/period) + 1) / 2
	return common.Lerp(lo, hi, phase)
}

func wrap(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}
