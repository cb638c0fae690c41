package motion

import (
	"math"
	"strconv"
	"time"
)

// Style properties written by the progress animators.
const (
	StyleStrokeDashArray  = "stroke-dasharray"
	StyleStrokeDashOffset = "stroke-dashoffset"
	StyleTransformOrigin  = "transform-origin"
	StyleTransform        = "transform"
)

// DefaultRingRadius is the circle radius AnimateCircularProgress assumes.
const DefaultRingRadius = 90

// CircularOptions configures AnimateCircularProgress.
type CircularOptions struct {
	// Duration of the sweep. Zero selects Config.ProgressDuration.
	Duration time.Duration
	// Radius of the stroked circle. Zero selects DefaultRingRadius.
	Radius float64
}

// BarOptions configures AnimateProgressBar.
type BarOptions struct {
	// Duration of the fill. Zero selects Config.ProgressDuration.
	Duration time.Duration
}

// Circumference returns 2*pi*r.
func Circumference(r float64) float64 {
	return 2 * math.Pi * r
}

// RingOffset returns the stroke-dashoffset that reveals percentage of a ring
// of radius r.
func RingOffset(r, percentage float64) float64 {
	c := Circumference(r)
	return c - (percentage/100)*c
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// styleSink writes each value to one style property.
type styleSink struct {
	target   StyleTarget
	property string
	format   func(float64) string
}

func (s styleSink) Write(v float64) {
	s.target.SetStyle(s.property, s.format(v))
}

func scaleX(v float64) string {
	return "scaleX(" + formatNumber(v) + ")"
}

// AnimateCircularProgress sweeps an SVG-style ring to percentage using
// EaseOutQuart. The stroke is first fully hidden (dash array and offset both
// equal to the circumference), then the offset tweens to
// RingOffset(radius, percentage).
//
// percentage is not clamped: values outside [0, 100] over- or under-draw the
// ring. AnimateCounter clamps and this does not; callers own the range here.
// A nil target is a no-op.
func (a *Animator) AnimateCircularProgress(target StyleTarget, percentage float64, opts CircularOptions) CancelFunc {
	if target == nil {
		return noopCancel
	}
	r := opts.Radius
	if r == 0 {
		r = DefaultRingRadius
	}
	d := opts.Duration
	if d == 0 {
		d = a.cfg.ProgressDuration
	}
	c := Circumference(r)
	target.SetStyle(StyleStrokeDashArray, formatNumber(c))
	target.SetStyle(StyleStrokeDashOffset, formatNumber(c))

	sink := styleSink{target: target, property: StyleStrokeDashOffset, format: formatNumber}
	return a.AnimateSink(sink, c, RingOffset(r, percentage), d, EaseOutQuart)
}

// AnimateProgressBar grows a bar from its left edge to percentage of its full
// width by tweening a scaleX transform from 0 to percentage/100 with
// EaseOutQuart. A nil target is a no-op.
func (a *Animator) AnimateProgressBar(target StyleTarget, percentage float64, opts BarOptions) CancelFunc {
	if target == nil {
		return noopCancel
	}
	d := opts.Duration
	if d == 0 {
		d = a.cfg.ProgressDuration
	}
	target.SetStyle(StyleTransformOrigin, "left")
	target.SetStyle(StyleTransform, scaleX(0))

	sink := styleSink{target: target, property: StyleTransform, format: scaleX}
	return a.AnimateSink(sink, 0, percentage/100, d, EaseOutQuart)
}
