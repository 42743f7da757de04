package effects

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Steps returns an easing that advances in n discrete jumps, holding each
// value until the next step boundary. The end value is reached exactly when
// the effect finishes.
func Steps(n int) ease.TweenFunc {
	if n <= 0 {
		n = 1
	}
	return func(t, b, c, d float32) float32 {
		if d <= 0 || t >= d {
			return b + c
		}
		step := float32(math.Floor(float64(t/d)*float64(n))) / float32(n)
		return b + c*step
	}
}

var namedEasings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"power1.out":  ease.OutQuad,
	"power2.out":  ease.OutCubic,
	"power3.out":  ease.OutQuart,
	"power3.in":   ease.InQuart,
	"sine.inout":  ease.InOutSine,
	"elastic.out": ease.OutElastic,
	"back.out":    ease.OutBack,
	"bounce.out":  ease.OutBounce,
}

// Named looks up an easing by name, falling back to linear.
func Named(name string) ease.TweenFunc {
	if fn, ok := namedEasings[name]; ok {
		return fn
	}
	return ease.Linear
}
