package motion

import "time"

// DefaultFrameInterval is the frame spacing used when none is given: one
// display refresh at 60Hz.
const DefaultFrameInterval = time.Second / 60

// VirtualClock is a FrameLoop driven by simulated time. It is the scheduler
// used by tests: Advance replays every timer and frame that would have fired
// in the interval, in chronological order, with Now() reporting the exact
// moment each callback runs.
//
// Frames fire on multiples of the frame interval. Timers fire at their exact
// due time.
type VirtualClock struct {
	*FrameLoop
	interval time.Duration
}

// NewVirtualClock creates a clock at t=0. A non-positive frameInterval
// selects DefaultFrameInterval.
func NewVirtualClock(frameInterval time.Duration) *VirtualClock {
	if frameInterval <= 0 {
		frameInterval = DefaultFrameInterval
	}
	return &VirtualClock{FrameLoop: NewFrameLoop(), interval: frameInterval}
}

// FrameInterval returns the simulated time between frames.
func (c *VirtualClock) FrameInterval() time.Duration {
	return c.interval
}

// Advance moves the clock forward by d, firing everything due on the way.
// Advance(0) fires timers that are already due without running a frame.
func (c *VirtualClock) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	target := c.Now() + d
	for {
		now := c.Now()
		var (
			at      time.Duration
			isFrame bool
			found   bool
		)
		if c.hasFrames() {
			next := (now/c.interval + 1) * c.interval
			if next <= target {
				at, isFrame, found = next, true, true
			}
		}
		if due, ok := c.nextTimerDue(); ok {
			due = max(due, now)
			if due <= target && (!found || due < at) {
				at, isFrame, found = due, false, true
			}
		}
		if !found {
			c.advanceTo(target)
			return
		}

		c.advanceTo(at)
		c.fireTimers()
		if isFrame {
			c.runFrames()
		}
	}
}

// RunFrames advances the clock by n frame intervals.
func (c *VirtualClock) RunFrames(n int) {
	for i := 0; i < n; i++ {
		c.Advance(c.interval)
	}
}

// Settle advances frame by frame until nothing is pending or limit has
// elapsed, and reports whether the clock went idle.
func (c *VirtualClock) Settle(limit time.Duration) bool {
	deadline := c.Now() + limit
	for c.Pending() > 0 {
		if c.Now() >= deadline {
			return false
		}
		c.Advance(c.interval)
	}
	return true
}
