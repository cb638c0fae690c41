package motion

import (
	"sync/atomic"
	"time"
)

// Tween describes one time-bounded interpolation from From to To.
//
// Duration <= 0 completes on the first scheduled frame. A nil Easing selects
// EaseOutExpo. Nil callbacks are no-ops.
type Tween struct {
	From, To   float64
	Duration   time.Duration
	Easing     Easing
	OnUpdate   func(value float64)
	OnComplete func()
}

// Animator runs tweens on a Scheduler and hosts the derived animators.
// It holds no per-tween state: every Animate call owns its own run, so any
// number of tweens may be in flight at once.
//
// The Set* methods are not synchronized. Call them before the first
// animation starts, or from the goroutine that drives the scheduler.
// Starting animations from other goroutines is safe once configured.
type Animator struct {
	sched  Scheduler
	prefer MotionPreference
	cfg    Config
	sink   EventSink
	debug  bool
	nextID atomic.Uint64
}

// NewAnimator creates an Animator on sched with DefaultConfig and the
// process-wide reduced-motion preference.
func NewAnimator(sched Scheduler) *Animator {
	return &Animator{
		sched:  sched,
		prefer: PrefersReducedMotion,
		cfg:    DefaultConfig(),
	}
}

// Scheduler returns the scheduler the animator runs on.
func (a *Animator) Scheduler() Scheduler {
	return a.sched
}

// Config returns the animator's default timings.
func (a *Animator) Config() Config {
	return a.cfg
}

// SetConfig replaces the default timings.
func (a *Animator) SetConfig(cfg Config) {
	a.cfg = cfg
}

// SetMotionPreference sets the reduced-motion source. A nil preference means
// full motion.
func (a *Animator) SetMotionPreference(p MotionPreference) {
	a.prefer = p
}

// SetEventSink sets the optional lifecycle observer.
func (a *Animator) SetEventSink(sink EventSink) {
	a.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, tween start,
// completion and cancellation are logged to stderr.
func (a *Animator) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// PrefersReducedMotion queries the preference source. It is consulted on
// every animation request.
func (a *Animator) PrefersReducedMotion() bool {
	if !a.cfg.RespectReducedMotion || a.prefer == nil {
		return false
	}
	return a.prefer()
}

func (a *Animator) emit(ev Event) {
	if a.sink != nil {
		a.sink.EmitEvent(ev)
	}
}

// Animate drives tw from From to To and returns its cancel handle.
//
// Under reduced motion, OnUpdate(To) and OnComplete run before Animate
// returns and nothing is scheduled. Otherwise each frame writes
// From+(To-From)*Easing(progress); on the frame where progress reaches 1 the
// exact To value is written once, bypassing any easing overshoot, followed by
// OnComplete.
func (a *Animator) Animate(tw Tween) CancelFunc {
	if tw.OnUpdate == nil {
		tw.OnUpdate = func(float64) {}
	}
	if tw.OnComplete == nil {
		tw.OnComplete = func() {}
	}
	if tw.Easing == nil {
		tw.Easing = EaseOutExpo
	}
	if tw.Duration < 0 {
		tw.Duration = 0
	}

	id := a.nextID.Add(1)
	if a.PrefersReducedMotion() {
		now := a.sched.Now()
		a.emit(Event{Type: EventTweenStart, TweenID: id, At: now})
		tw.OnUpdate(tw.To)
		tw.OnComplete()
		a.emit(Event{Type: EventTweenComplete, TweenID: id, At: now})
		return noopCancel
	}

	r := &tweenRun{a: a, tw: tw, id: id}
	r.handle.Store(uint64(a.sched.ScheduleFrame(r.step)))
	a.emit(Event{Type: EventTweenStart, TweenID: id, At: a.sched.Now()})
	if a.debug {
		a.debugTween(r, "start")
		a.debugCheckPending()
	}
	return r.cancel
}

// AnimateSink is Animate with the per-frame write routed to a Sink.
func (a *Animator) AnimateSink(sink Sink, from, to float64, d time.Duration, easing Easing) CancelFunc {
	if sink == nil {
		return noopCancel
	}
	return a.Animate(Tween{From: from, To: to, Duration: d, Easing: easing, OnUpdate: sink.Write})
}

// tweenRun is the scheduled state of a single Animate call.
type tweenRun struct {
	a      *Animator
	tw     Tween
	id     uint64
	handle atomic.Uint64

	cancelled atomic.Bool
	done      atomic.Bool
	started   bool
	start     time.Duration
	frames    int
}

func (r *tweenRun) step(now time.Duration) {
	if r.cancelled.Load() || r.done.Load() {
		return
	}
	if !r.started {
		r.started = true
		r.start = now
	}
	r.frames++

	progress := 1.0
	if r.tw.Duration > 0 {
		progress = clamp(float64(now-r.start)/float64(r.tw.Duration), 0, 1)
	}

	if progress < 1 {
		eased := r.tw.Easing(progress)
		r.tw.OnUpdate(r.tw.From + (r.tw.To-r.tw.From)*eased)
		if r.cancelled.Load() {
			return
		}
		r.handle.Store(uint64(r.a.sched.ScheduleFrame(r.step)))
		return
	}

	r.done.Store(true)
	r.tw.OnUpdate(r.tw.To)
	if r.cancelled.Load() {
		return
	}
	r.tw.OnComplete()
	r.a.emit(Event{Type: EventTweenComplete, TweenID: r.id, At: now})
	if r.a.debug {
		r.a.debugTween(r, "complete")
	}
}

func (r *tweenRun) cancel() {
	if !r.cancelled.CompareAndSwap(false, true) {
		return
	}
	r.a.sched.CancelFrame(FrameHandle(r.handle.Load()))
	if r.done.Load() {
		return
	}
	r.a.emit(Event{Type: EventTweenCancel, TweenID: r.id})
	if r.a.debug {
		r.a.debugTween(r, "cancel")
	}
}
