package motion

import (
	"strconv"
	"strings"
	"sync"
)

// Scanner wires declaratively tagged elements to their animators. Scan is the
// page's initialization entry point; Notify re-runs it, debounced, when the
// host reports that the page structure changed.
//
//	data-sl-score="87"              counter with a "%" suffix
//	data-sl-circular-progress="64"  ring sweep
//	data-sl-progress="40"           bar fill
//	data-sl-animate="zoom-in"       one-shot reveal on first visibility
//	data-sl-stagger-parent          children tagged data-sl-stagger-child
//	                                reveal one after another
type Scanner struct {
	a       *Animator
	trigger *VisibilityTrigger

	mu      sync.Mutex
	pending FrameHandle
}

// NewScanner creates a scanner that hands data-sl-animate elements to
// trigger. A nil trigger disables scroll reveals.
func NewScanner(a *Animator, trigger *VisibilityTrigger) *Scanner {
	return &Scanner{a: a, trigger: trigger}
}

// Scan finds every tagged element in c and starts its animation. Elements
// that lack the capability an animator needs (text for scores, style for
// progress) are skipped. Values that do not parse as numbers count as 0.
func (s *Scanner) Scan(c Container) {
	if c == nil {
		return
	}

	for _, el := range c.QueryAll(AttrScore) {
		if t, ok := el.(TextTarget); ok {
			s.a.AnimateCounter(t, attrFloat(el, AttrScore), CounterOptions{Suffix: "%"})
		}
	}
	for _, el := range c.QueryAll(AttrCircularProgress) {
		if t, ok := el.(StyleTarget); ok {
			s.a.AnimateCircularProgress(t, attrFloat(el, AttrCircularProgress), CircularOptions{})
		}
	}
	for _, el := range c.QueryAll(AttrProgress) {
		if t, ok := el.(StyleTarget); ok {
			s.a.AnimateProgressBar(t, attrFloat(el, AttrProgress), BarOptions{})
		}
	}

	if s.trigger != nil {
		if elems := c.QueryAll(AttrAnimate); len(elems) > 0 {
			s.trigger.Register(elems...)
		}
	}

	for _, parent := range c.QueryAll(AttrStaggerParent) {
		sub, ok := parent.(Container)
		if !ok {
			continue
		}
		children := sub.QueryAll(AttrStaggerChild)
		Stagger(s.a, children, func(el Element) {
			el.AddClass(ClassAnimated)
		}, StaggerOptions{})
	}
}

// Notify schedules a Scan of c after Config.RescanDebounce. Calls arriving
// before the scan runs restart the wait, so a burst of structural changes
// causes a single rescan.
func (s *Scanner) Notify(c Container) {
	sched := s.a.sched
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != 0 {
		sched.CancelFrame(s.pending)
	}
	var h FrameHandle
	h = sched.AfterFunc(s.a.cfg.RescanDebounce, func() {
		s.mu.Lock()
		if s.pending == h {
			s.pending = 0
		}
		s.mu.Unlock()
		s.Scan(c)
	})
	s.pending = h
}

// attrFloat parses the leading number of an attribute, mirroring how the
// markup is usually written ("87", "87.5", "87%"). Missing or malformed
// values read as 0.
func attrFloat(el Element, name string) float64 {
	v, ok := el.Attr(name)
	if !ok {
		return 0
	}
	v = strings.TrimSpace(v)
	end := 0
	for end < len(v) && strings.IndexByte("+-.0123456789eE", v[end]) >= 0 {
		end++
	}
	for end > 0 {
		if f, err := strconv.ParseFloat(v[:end], 64); err == nil {
			return f
		}
		end--
	}
	return 0
}
