package motion

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorOptions configures AnimateColor.
type ColorOptions struct {
	// Duration of the blend. Zero selects Config.FadeInDuration.
	Duration time.Duration
	// Easing shapes the blend. Nil selects EaseOutCubic.
	Easing Easing
}

// colorSink blends between two colours in HCL space and writes the hex
// result to one style property.
type colorSink struct {
	target   StyleTarget
	property string
	from, to colorful.Color
}

func (s colorSink) Write(t float64) {
	s.target.SetStyle(s.property, s.from.BlendHcl(s.to, t).Clamped().Hex())
}

// AnimateColor blends property on target from one colour to another. The
// blend runs in HCL so intermediate hues keep a steady lightness. A nil target
// is a no-op.
func (a *Animator) AnimateColor(target StyleTarget, property string, from, to colorful.Color, opts ColorOptions) CancelFunc {
	if target == nil {
		return noopCancel
	}
	d := opts.Duration
	if d == 0 {
		d = a.cfg.FadeInDuration
	}
	easing := opts.Easing
	if easing == nil {
		easing = EaseOutCubic
	}
	sink := colorSink{target: target, property: property, from: from, to: to}
	return a.AnimateSink(sink, 0, 1, d, easing)
}

// ScoreColor maps a 0-100 score onto a red→amber→green ramp. Scores outside
// the range are clamped.
func ScoreColor(score float64) colorful.Color {
	return scoreGradient.at(clamp(score, 0, 100) / 100)
}

type gradientStop struct {
	pos   float64
	color colorful.Color
}

type gradient []gradientStop

var scoreGradient = gradient{
	{0, colorful.Color{R: 0.86, G: 0.21, B: 0.27}},
	{0.5, colorful.Color{R: 0.96, G: 0.62, B: 0.04}},
	{1, colorful.Color{R: 0.13, G: 0.77, B: 0.37}},
}

func (g gradient) at(t float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1, c2 := g[i], g[i+1]
		if c1.pos <= t && t <= c2.pos {
			return c1.color.BlendHcl(c2.color, (t-c1.pos)/(c2.pos-c1.pos)).Clamped()
		}
	}
	return g[len(g)-1].color
}
