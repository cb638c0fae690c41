package motion

import (
	"testing"
	"time"
)

func TestAnimateCounterClampsAboveRange(t *testing.T) {
	a, clock := newTestAnimator()
	el := &fakeText{}

	a.AnimateCounter(el, 150, CounterOptions{})
	clock.Settle(5 * time.Second)

	if got := el.last(); got != "100" {
		t.Errorf("final text = %q, want %q", got, "100")
	}
	for _, s := range el.history {
		if v := parseNumber(t, s); v > 100 {
			t.Fatalf("counter overshot the clamp: %q", s)
		}
	}
}

func TestAnimateCounterClampsBelowRange(t *testing.T) {
	a, clock := newTestAnimator()
	el := &fakeText{}

	a.AnimateCounter(el, -10, CounterOptions{})
	clock.Settle(5 * time.Second)

	if got := el.last(); got != "0" {
		t.Errorf("final text = %q, want %q", got, "0")
	}
}

func TestAnimateCounterFormatsPrefixSuffixDecimals(t *testing.T) {
	a, clock := newTestAnimator()
	el := &fakeText{}

	a.AnimateCounter(el, 42.5, CounterOptions{Prefix: "~", Suffix: " pts", Decimals: 2, Duration: 100 * time.Millisecond})
	clock.RunFrames(1)
	if got := el.last(); got != "~0.00 pts" {
		t.Errorf("first text = %q, want %q", got, "~0.00 pts")
	}
	clock.Settle(time.Second)
	if got := el.last(); got != "~42.50 pts" {
		t.Errorf("final text = %q, want %q", got, "~42.50 pts")
	}
}

func TestAnimateCounterCustomRange(t *testing.T) {
	a, clock := newTestAnimator()
	el := &fakeText{}

	lo, hi := 10.0, 1000.0
	a.AnimateCounter(el, 1500, CounterOptions{Min: &lo, Max: &hi})
	clock.Settle(5 * time.Second)

	if got := el.history[0]; got != "10" {
		t.Errorf("first text = %q, want start clamped to 10", got)
	}
	if got := el.last(); got != "1000" {
		t.Errorf("final text = %q, want %q", got, "1000")
	}
}

func TestAnimateCounterMinOnly(t *testing.T) {
	a, clock := newTestAnimator()
	el := &fakeText{}

	lo := 50.0
	a.AnimateCounter(el, 80, CounterOptions{Min: &lo})
	clock.Settle(5 * time.Second)

	if got := el.history[0]; got != "50" {
		t.Errorf("first text = %q, want start clamped to 50", got)
	}
	if got := el.last(); got != "80" {
		t.Errorf("final text = %q, want %q", got, "80")
	}
}

func TestAnimateCounterMaxOnly(t *testing.T) {
	a, clock := newTestAnimator()
	el := &fakeText{}

	hi := 500.0
	a.AnimateCounter(el, 320, CounterOptions{Max: &hi})
	clock.Settle(5 * time.Second)

	if got := el.last(); got != "320" {
		t.Errorf("final text = %q, want %q", got, "320")
	}
}

func TestAnimateCounterNegativeRange(t *testing.T) {
	a, clock := newTestAnimator()
	el := &fakeText{}

	lo, hi := -50.0, 0.0
	a.AnimateCounter(el, 10, CounterOptions{Min: &lo, Max: &hi})
	clock.Settle(5 * time.Second)

	if got := el.last(); got != "0" {
		t.Errorf("final text = %q, want %q", got, "0")
	}
}

func TestAnimateCounterUsesConfiguredDuration(t *testing.T) {
	a, clock := newTestAnimator()
	cfg := a.Config()
	cfg.ScoreDuration = 200 * time.Millisecond
	a.SetConfig(cfg)
	el := &fakeText{}

	a.AnimateCounter(el, 80, CounterOptions{})
	clock.Advance(150 * time.Millisecond)
	if el.last() == "80" {
		t.Fatal("counter finished before the configured duration")
	}
	clock.Advance(100 * time.Millisecond)
	if got := el.last(); got != "80" {
		t.Errorf("text after duration = %q, want %q", got, "80")
	}
}

func TestAnimateCounterReducedMotionWritesFinalText(t *testing.T) {
	a, _ := newTestAnimator()
	a.SetMotionPreference(StaticPreference(true))
	el := &fakeText{}

	a.AnimateCounter(el, 87, CounterOptions{Suffix: "%"})

	if len(el.history) != 1 || el.history[0] != "87%" {
		t.Errorf("history = %v, want [87%%]", el.history)
	}
}

func TestAnimateCounterNilTarget(t *testing.T) {
	a, clock := newTestAnimator()
	cancel := a.AnimateCounter(nil, 50, CounterOptions{})
	cancel()
	if clock.Pending() != 0 {
		t.Errorf("pending = %d, want 0", clock.Pending())
	}
}
