package motion

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// FrameHandle identifies a scheduled frame callback or timer. The zero value
// is never issued.
type FrameHandle uint64

// FrameCallback runs once on the next frame. now is the scheduler's monotonic
// timestamp for that frame.
type FrameCallback func(now time.Duration)

// Scheduler is the per-frame callback facility that drives every animation.
// ScheduleFrame queues cb for the next frame; AfterFunc queues fn to run once
// delay has elapsed. Cancelling a handle that already ran is a no-op.
type Scheduler interface {
	ScheduleFrame(cb FrameCallback) FrameHandle
	CancelFrame(h FrameHandle)
	AfterFunc(delay time.Duration, fn func()) FrameHandle
	Now() time.Duration
}

type frameEntry struct {
	id FrameHandle
	cb FrameCallback
}

type timerEntry struct {
	id  FrameHandle
	due time.Duration
	fn  func()
}

// FrameLoop is a Scheduler whose frames are pumped by an external driver
// calling Tick. All callbacks run on the goroutine that calls Tick; queueing
// and cancelling are safe from any goroutine.
//
// Each Tick first fires timers that are due, in due-time then schedule
// order, then runs every frame callback that was queued before the Tick
// began. Callbacks queued during a Tick run on the following Tick.
type FrameLoop struct {
	mu     sync.Mutex
	now    time.Duration
	nextID FrameHandle
	frames []frameEntry
	timers []timerEntry
	live   map[FrameHandle]struct{}
	ticks  uint64
}

// NewFrameLoop creates an empty FrameLoop with its clock at zero.
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{live: make(map[FrameHandle]struct{})}
}

func (l *FrameLoop) issue() FrameHandle {
	l.nextID++
	l.live[l.nextID] = struct{}{}
	return l.nextID
}

// ScheduleFrame queues cb for the next Tick.
func (l *FrameLoop) ScheduleFrame(cb FrameCallback) FrameHandle {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.issue()
	l.frames = append(l.frames, frameEntry{id: id, cb: cb})
	return id
}

// AfterFunc queues fn to run on the first Tick at or after Now()+delay.
// Negative delays are treated as zero.
func (l *FrameLoop) AfterFunc(delay time.Duration, fn func()) FrameHandle {
	if delay < 0 {
		delay = 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.issue()
	l.timers = append(l.timers, timerEntry{id: id, due: l.now + delay, fn: fn})
	return id
}

// CancelFrame drops a queued frame callback or timer. A callback already
// collected for the current Tick is skipped as well.
func (l *FrameLoop) CancelFrame(h FrameHandle) {
	l.mu.Lock()
	delete(l.live, h)
	l.mu.Unlock()
}

// Now returns the timestamp of the most recent Tick.
func (l *FrameLoop) Now() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.now
}

// Pending returns the number of live frame callbacks and timers.
func (l *FrameLoop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.live)
}

// Ticks returns how many frames the loop has run.
func (l *FrameLoop) Ticks() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ticks
}

// Tick advances the loop clock to now and runs due timers and queued frames.
// A now earlier than the current clock is ignored for clock purposes; the
// loop never runs backwards.
func (l *FrameLoop) Tick(now time.Duration) {
	l.advanceTo(now)
	l.fireTimers()
	l.runFrames()
}

func (l *FrameLoop) advanceTo(now time.Duration) {
	l.mu.Lock()
	if now > l.now {
		l.now = now
	}
	l.mu.Unlock()
}

// fireTimers runs every live timer due at or before the current clock.
func (l *FrameLoop) fireTimers() {
	l.mu.Lock()
	var due []timerEntry
	kept := l.timers[:0]
	for _, t := range l.timers {
		if _, ok := l.live[t.id]; !ok {
			continue
		}
		if t.due <= l.now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	clear(l.timers[len(kept):])
	l.timers = kept
	l.mu.Unlock()

	slices.SortStableFunc(due, func(a, b timerEntry) int {
		return cmp.Compare(a.due, b.due)
	})
	for _, t := range due {
		if l.consume(t.id) {
			t.fn()
		}
	}
}

// runFrames runs the frame callbacks queued before the call.
func (l *FrameLoop) runFrames() {
	l.mu.Lock()
	now := l.now
	frames := l.frames
	l.frames = nil
	l.ticks++
	l.mu.Unlock()

	for _, f := range frames {
		if l.consume(f.id) {
			f.cb(now)
		}
	}
}

// consume reports whether h is still live and retires it.
func (l *FrameLoop) consume(h FrameHandle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.live[h]; !ok {
		return false
	}
	delete(l.live, h)
	return true
}

// nextTimerDue returns the earliest live timer due time.
func (l *FrameLoop) nextTimerDue() (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var (
		best  time.Duration
		found bool
	)
	for _, t := range l.timers {
		if _, ok := l.live[t.id]; !ok {
			continue
		}
		if !found || t.due < best {
			best, found = t.due, true
		}
	}
	return best, found
}

// hasFrames reports whether any live frame callback is queued.
func (l *FrameLoop) hasFrames() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, f := range l.frames {
		if _, ok := l.live[f.id]; ok {
			return true
		}
	}
	return false
}
