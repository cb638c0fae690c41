package motion

import (
	"math"
	"testing"
	"time"
)

func TestCircularProgressGeometry(t *testing.T) {
	c := Circumference(90)
	if math.Abs(c-565.4866776461628) > 1e-6 {
		t.Errorf("Circumference(90) = %v, want ~565.49", c)
	}
	if off := RingOffset(90, 50); math.Abs(off-282.7433388230814) > 1e-6 {
		t.Errorf("RingOffset(90, 50) = %v, want ~282.74", off)
	}
}

func TestAnimateCircularProgressLandsOnOffset(t *testing.T) {
	a, clock := newTestAnimator()
	el := &fakeStyle{}

	a.AnimateCircularProgress(el, 50, CircularOptions{})

	c := Circumference(DefaultRingRadius)
	if got := parseNumber(t, el.style[StyleStrokeDashArray]); math.Abs(got-c) > 1e-9 {
		t.Errorf("dash array = %v, want %v", got, c)
	}
	offsets := el.values(StyleStrokeDashOffset)
	if len(offsets) != 1 || math.Abs(parseNumber(t, offsets[0])-c) > 1e-9 {
		t.Fatalf("initial offsets = %v, want hidden stroke at %v", offsets, c)
	}

	clock.Settle(5 * time.Second)
	offsets = el.values(StyleStrokeDashOffset)
	final := parseNumber(t, offsets[len(offsets)-1])
	if math.Abs(final-RingOffset(90, 50)) > 1e-6 {
		t.Errorf("final offset = %v, want %v", final, RingOffset(90, 50))
	}
}

func TestAnimateCircularProgressCustomRadius(t *testing.T) {
	a, clock := newTestAnimator()
	el := &fakeStyle{}

	a.AnimateCircularProgress(el, 25, CircularOptions{Radius: 40, Duration: 50 * time.Millisecond})
	clock.Settle(time.Second)

	want := RingOffset(40, 25)
	if got := parseNumber(t, el.style[StyleStrokeDashOffset]); math.Abs(got-want) > 1e-6 {
		t.Errorf("final offset = %v, want %v", got, want)
	}
}

// The ring does not clamp its percentage, unlike AnimateCounter. Out-of-range
// input over-draws; this asymmetry is kept on purpose.
func TestAnimateCircularProgressDoesNotClamp(t *testing.T) {
	a, clock := newTestAnimator()
	el := &fakeStyle{}

	a.AnimateCircularProgress(el, 150, CircularOptions{})
	clock.Settle(5 * time.Second)

	got := parseNumber(t, el.style[StyleStrokeDashOffset])
	if got >= 0 {
		t.Errorf("final offset = %v, want negative (unclamped 150%%)", got)
	}
	if math.Abs(got-RingOffset(90, 150)) > 1e-6 {
		t.Errorf("final offset = %v, want %v", got, RingOffset(90, 150))
	}
}

func TestAnimateProgressBar(t *testing.T) {
	a, clock := newTestAnimator()
	el := &fakeStyle{}

	a.AnimateProgressBar(el, 75, BarOptions{Duration: 100 * time.Millisecond})

	if got := el.style[StyleTransformOrigin]; got != "left" {
		t.Errorf("transform-origin = %q, want left", got)
	}
	if got := el.style[StyleTransform]; got != "scaleX(0)" {
		t.Errorf("initial transform = %q, want scaleX(0)", got)
	}

	clock.Settle(time.Second)
	if got := el.style[StyleTransform]; got != "scaleX(0.75)" {
		t.Errorf("final transform = %q, want scaleX(0.75)", got)
	}
	prev := -1.0
	for _, v := range el.values(StyleTransform) {
		f := parseNumber(t, v)
		if f < prev {
			t.Fatalf("scale decreased: %v after %v", f, prev)
		}
		prev = f
	}
}

func TestProgressAnimatorsNilTarget(t *testing.T) {
	a, clock := newTestAnimator()
	a.AnimateCircularProgress(nil, 50, CircularOptions{})()
	a.AnimateProgressBar(nil, 50, BarOptions{})()
	if clock.Pending() != 0 {
		t.Errorf("pending = %d, want 0", clock.Pending())
	}
}

func TestProgressReducedMotionJumpsToFinal(t *testing.T) {
	a, _ := newTestAnimator()
	a.SetMotionPreference(StaticPreference(true))
	ring, bar := &fakeStyle{}, &fakeStyle{}

	a.AnimateCircularProgress(ring, 50, CircularOptions{})
	a.AnimateProgressBar(bar, 40, BarOptions{})

	if got := parseNumber(t, ring.style[StyleStrokeDashOffset]); math.Abs(got-RingOffset(90, 50)) > 1e-6 {
		t.Errorf("ring offset = %v, want final", got)
	}
	if got := bar.style[StyleTransform]; got != "scaleX(0.4)" {
		t.Errorf("bar transform = %q, want scaleX(0.4)", got)
	}
}
