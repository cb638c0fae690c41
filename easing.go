package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/fogleman/ease"
	gease "github.com/tanema/gween/ease"
)

// Easing maps normalized time in [0, 1] to normalized progress. The result
// is not required to stay within [0, 1]; spring curves overshoot.
// Easings are pure and safe to share between concurrent tweens.
type Easing func(t float64) float64

// EaseLinear returns t unchanged.
func EaseLinear(t float64) float64 { return t }

// EaseOutExpo decelerates exponentially and lands exactly on 1 at t == 1.
func EaseOutExpo(t float64) float64 { return ease.OutExpo(t) }

// EaseOutQuart is 1 - (1-t)^4.
func EaseOutQuart(t float64) float64 { return ease.OutQuart(t) }

// EaseOutCubic is 1 - (1-t)^3.
func EaseOutCubic(t float64) float64 { return ease.OutCubic(t) }

// EaseInOutQuad accelerates through the first half and decelerates through
// the second.
func EaseInOutQuad(t float64) float64 { return ease.InOutQuad(t) }

// Spring is 1 - cos(t*pi/2)*e^(-3t). It overshoots 1 briefly before
// settling, which gives reveals a small bounce.
func Spring(t float64) float64 {
	return 1 - math.Cos(t*math.Pi*0.5)*math.Exp(-t*3)
}

// Easings is the named easing table exposed to callers.
var Easings = map[string]Easing{
	"linear":        EaseLinear,
	"easeOutExpo":   EaseOutExpo,
	"easeOutQuart":  EaseOutQuart,
	"easeOutCubic":  EaseOutCubic,
	"easeInOutQuad": EaseInOutQuad,
	"spring":        Spring,
}

// LookupEasing returns the named easing from Easings, or EaseOutExpo and
// false when the name is unknown.
func LookupEasing(name string) (Easing, bool) {
	fn, ok := Easings[name]
	if !ok {
		return EaseOutExpo, false
	}
	return fn, true
}

// FromTweenFunc adapts a gween easing (Penner-style t, b, c, d signature)
// into an Easing. Any curve from github.com/tanema/gween/ease, such as
// ease.OutBounce or ease.OutElastic, can drive an Animator this way.
func FromTweenFunc(fn gease.TweenFunc) Easing {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

const springSamples = 120

// HarmonicSpring returns an Easing sampled from a damped harmonic oscillator
// released at 0 toward 1 over one second of simulated time. angularFrequency
// controls speed, dampingRatio below 1 overshoots. The curve is pinned to
// exactly 0 and 1 at the ends so tweens still land on their targets.
func HarmonicSpring(angularFrequency, dampingRatio float64) Easing {
	spring := harmonica.NewSpring(harmonica.FPS(springSamples), angularFrequency, dampingRatio)
	lut := make([]float64, springSamples+1)
	var pos, vel float64
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		lut[i] = pos
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		f := t * springSamples
		i := int(f)
		frac := f - float64(i)
		return lut[i] + (lut[i+1]-lut[i])*frac
	}
}
