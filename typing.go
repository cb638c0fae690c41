package motion

import (
	"sync/atomic"
	"time"
)

// DefaultTypeSpeed is the time between characters when TypeOptions.Speed is
// zero.
const DefaultTypeSpeed = 50 * time.Millisecond

// TypeOptions configures TypeText.
type TypeOptions struct {
	// Speed is the time between characters. Zero selects DefaultTypeSpeed.
	Speed time.Duration
	// Delay before the first character is scheduled.
	Delay time.Duration
	// OnComplete runs one interval after the last character is written.
	OnComplete func()
}

// TypeText writes text into target one character at a time. The target is
// cleared immediately; the first character lands at Delay+Speed and each
// following one Speed later.
//
// Under reduced motion the full text is written and OnComplete runs before
// TypeText returns. A nil target is a no-op.
func (a *Animator) TypeText(target TextTarget, text string, opts TypeOptions) CancelFunc {
	if target == nil {
		return noopCancel
	}
	if opts.OnComplete == nil {
		opts.OnComplete = func() {}
	}
	if a.PrefersReducedMotion() {
		target.SetText(text)
		opts.OnComplete()
		return noopCancel
	}

	speed := opts.Speed
	if speed <= 0 {
		speed = DefaultTypeSpeed
	}
	r := &typeRun{
		a:      a,
		target: target,
		runes:  []rune(text),
		speed:  speed,
		done:   opts.OnComplete,
	}
	target.SetText("")
	r.handle.Store(uint64(a.sched.AfterFunc(max(opts.Delay, 0)+speed, r.step)))
	return r.cancel
}

// typeRun is the scheduled state of a single TypeText call.
type typeRun struct {
	a      *Animator
	target TextTarget
	runes  []rune
	next   int
	speed  time.Duration
	done   func()

	handle    atomic.Uint64
	cancelled atomic.Bool
}

func (r *typeRun) step() {
	if r.cancelled.Load() {
		return
	}
	if r.next >= len(r.runes) {
		r.cancelled.Store(true)
		r.done()
		return
	}
	r.next++
	r.target.SetText(string(r.runes[:r.next]))
	if r.cancelled.Load() {
		return
	}
	r.handle.Store(uint64(r.a.sched.AfterFunc(r.speed, r.step)))
}

func (r *typeRun) cancel() {
	if !r.cancelled.CompareAndSwap(false, true) {
		return
	}
	r.a.sched.CancelFrame(FrameHandle(r.handle.Load()))
}
