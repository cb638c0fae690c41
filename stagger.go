package motion

import (
	"sync"
	"time"
)

// StaggerOptions configures Stagger.
type StaggerOptions struct {
	// Delay between consecutive items. Zero selects Config.StaggerDelay.
	Delay time.Duration
	// InitialDelay before the first item.
	InitialDelay time.Duration
}

// Stagger schedules apply(elems[i]) at InitialDelay + i*Delay. Items fire
// independently; the offsets express intended order, but two items due at
// the same tick run in schedule order and a slow apply does not push later
// items back.
//
// Under reduced motion every item is applied immediately, in order, before
// Stagger returns. The returned CancelFunc drops items that have not fired.
func Stagger[E any](a *Animator, elems []E, apply func(E), opts StaggerOptions) CancelFunc {
	if len(elems) == 0 || apply == nil {
		return noopCancel
	}
	if a.PrefersReducedMotion() {
		for _, el := range elems {
			apply(el)
		}
		return noopCancel
	}

	step := opts.Delay
	if step == 0 {
		step = a.cfg.StaggerDelay
	}
	step = max(step, 0)
	initial := max(opts.InitialDelay, 0)

	handles := make([]FrameHandle, len(elems))
	for i, el := range elems {
		delay := initial + time.Duration(i)*step
		handles[i] = a.sched.AfterFunc(delay, func() { apply(el) })
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, h := range handles {
				a.sched.CancelFrame(h)
			}
		})
	}
}
