package motion

import (
	"strconv"
	"time"
)

// CounterOptions configures AnimateCounter.
type CounterOptions struct {
	// Duration of the count-up. Zero selects Config.ScoreDuration; negative
	// values complete on the first frame.
	Duration time.Duration
	Prefix   string
	Suffix   string
	// Decimals is the number of digits after the decimal point.
	Decimals int
	// Min and Max bound the displayed value. A nil Min selects 0 and a nil
	// Max selects 100, independently of each other.
	Min, Max *float64
}

func (o CounterOptions) bounds() (lo, hi float64) {
	lo, hi = 0, 100
	if o.Min != nil {
		lo = *o.Min
	}
	if o.Max != nil {
		hi = *o.Max
	}
	return lo, hi
}

// counterSink renders a value as prefixed, fixed-point text.
type counterSink struct {
	target   TextTarget
	prefix   string
	suffix   string
	decimals int
}

func (s counterSink) Write(v float64) {
	s.target.SetText(s.prefix + strconv.FormatFloat(v, 'f', s.decimals, 64) + s.suffix)
}

// AnimateCounter counts target's text up from zero to value using
// EaseOutExpo. value is clamped into [Min, Max] first, so a score of 150 on
// the default range counts to 100. When Min exceeds Max the clamp yields Max.
// A nil target is a no-op.
func (a *Animator) AnimateCounter(target TextTarget, value float64, opts CounterOptions) CancelFunc {
	if target == nil {
		return noopCancel
	}
	lo, hi := opts.bounds()
	d := opts.Duration
	if d == 0 {
		d = a.cfg.ScoreDuration
	}
	sink := counterSink{
		target:   target,
		prefix:   opts.Prefix,
		suffix:   opts.Suffix,
		decimals: max(opts.Decimals, 0),
	}
	return a.AnimateSink(sink, clamp(0, lo, hi), clamp(value, lo, hi), d, EaseOutExpo)
}
