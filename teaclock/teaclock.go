// Package teaclock drives the motion scheduler from a bubbletea program.
//
// A [Clock] is a [motion.Scheduler] whose frames are bubbletea messages: the
// model returns Clock.Init from its own Init and forwards every message to
// Clock.Update, which runs due animations and returns the command for the
// next frame.
//
//	func (m model) Init() tea.Cmd { return m.clock.Init() }
//
//	func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
//		if cmd := m.clock.Update(msg); cmd != nil {
//			return m, cmd
//		}
//		...
//	}
package teaclock

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/skilllens/motion"
)

var lastID atomic.Uint64

// FrameMsg is the message a Clock sends itself once per frame.
type FrameMsg struct {
	ID   uint64
	Time time.Time
}

// Clock is a motion.FrameLoop paced by tea.Tick.
type Clock struct {
	*motion.FrameLoop
	id       uint64
	interval time.Duration
	start    time.Time
}

// New creates a Clock that ticks every interval. A non-positive interval
// selects motion.DefaultFrameInterval.
func New(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = motion.DefaultFrameInterval
	}
	return &Clock{
		FrameLoop: motion.NewFrameLoop(),
		id:        lastID.Add(1),
		interval:  interval,
		start:     time.Now(),
	}
}

// ID identifies this clock's FrameMsgs.
func (c *Clock) ID() uint64 {
	return c.id
}

// Interval returns the time between frames.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Init returns the command that delivers the next FrameMsg.
func (c *Clock) Init() tea.Cmd {
	id := c.id
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}

// Update runs the frame carried by msg and returns the command for the next
// one. Messages that are not this clock's FrameMsg return nil.
func (c *Clock) Update(msg tea.Msg) tea.Cmd {
	fm, ok := msg.(FrameMsg)
	if !ok || fm.ID != c.id {
		return nil
	}
	c.Tick(fm.Time.Sub(c.start))
	return c.Init()
}
