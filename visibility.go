package motion

import (
	"strings"
	"sync"
	"time"
)

// Viewport is the visible region elements are tested against.
type Viewport interface {
	Bounds() Rect
}

// VisibilityState is the per-element state of a VisibilityTrigger.
type VisibilityState uint8

const (
	StateUnobserved VisibilityState = iota // never registered, or no viewport
	StateObserved                          // registered, waiting to become visible
	StateTriggered                         // revealed once; terminal
)

func (s VisibilityState) String() string {
	switch s {
	case StateUnobserved:
		return "unobserved"
	case StateObserved:
		return "observed"
	case StateTriggered:
		return "triggered"
	default:
		return "unknown"
	}
}

// RevealFunc applies a reveal to an element that has become visible.
type RevealFunc func(el Element)

type observedElement struct {
	el    Element
	kind  string
	delay time.Duration
	state VisibilityState
}

// VisibilityTrigger reveals elements the first time they scroll into view.
//
// An element is visible once at least Threshold of its area lies inside the
// viewport shrunk by BottomMargin from the bottom edge. On first visibility
// the element's kind (data-sl-animate, default "fade-in-up") and delay
// (data-sl-delay, integer milliseconds) select the reveal; the element then
// stays Triggered forever and is never observed again, even if it leaves and
// re-enters the viewport.
//
// Elements are used as map keys and must be comparable (typically pointers).
type VisibilityTrigger struct {
	a        *Animator
	viewport Viewport
	cfg      TriggerConfig

	mu       sync.Mutex
	records  map[Element]*observedElement
	observed []*observedElement
	handlers map[string]RevealFunc
}

// NewVisibilityTrigger creates a trigger that tests elements against vp. A
// nil vp stands for a runtime without an observation facility: Register and
// Scan do nothing and elements are never revealed.
func NewVisibilityTrigger(a *Animator, vp Viewport) *VisibilityTrigger {
	return &VisibilityTrigger{
		a:        a,
		viewport: vp,
		cfg:      a.cfg.Trigger,
		records:  make(map[Element]*observedElement),
		handlers: make(map[string]RevealFunc),
	}
}

// Handle registers fn as the reveal for kind, replacing the default class
// toggle. Use it to start a derived animator when an element scrolls in.
func (t *VisibilityTrigger) Handle(kind string, fn RevealFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if fn == nil {
		delete(t.handlers, kind)
		return
	}
	t.handlers[kind] = fn
}

// Register starts observing each element that is not already observed or
// triggered. The element's kind and delay attributes are read now.
func (t *VisibilityTrigger) Register(elems ...Element) {
	if t.viewport == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, el := range elems {
		if el == nil {
			continue
		}
		if rec, ok := t.records[el]; ok && rec.state != StateUnobserved {
			continue
		}
		rec := &observedElement{
			el:    el,
			kind:  revealKind(el),
			delay: revealDelay(el),
			state: StateObserved,
		}
		t.records[el] = rec
		t.observed = append(t.observed, rec)
	}
}

// State reports where el is in its lifecycle.
func (t *VisibilityTrigger) State(el Element) VisibilityState {
	t.mu.Lock()
	defer t.mu.Unlock()
	if rec, ok := t.records[el]; ok {
		return rec.state
	}
	return StateUnobserved
}

// Observed returns the number of elements still waiting to become visible.
func (t *VisibilityTrigger) Observed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.observed)
}

// Scan tests every observed element against the viewport once and triggers
// the ones that are now visible, in registration order. Detached elements
// (see Attachable) are skipped.
func (t *VisibilityTrigger) Scan() {
	if t.viewport == nil {
		return
	}
	root := t.root()

	t.mu.Lock()
	var fired []*observedElement
	kept := t.observed[:0]
	for _, rec := range t.observed {
		if attached(rec.el) && t.isIntersecting(rec.el.Bounds(), root) {
			rec.state = StateTriggered
			fired = append(fired, rec)
			continue
		}
		kept = append(kept, rec)
	}
	clear(t.observed[len(kept):])
	t.observed = kept
	t.mu.Unlock()

	for _, rec := range fired {
		t.fire(rec)
	}
}

// Watch scans on every frame until the returned CancelFunc is called.
func (t *VisibilityTrigger) Watch() CancelFunc {
	var (
		mu        sync.Mutex
		handle    FrameHandle
		cancelled bool
	)
	sched := t.a.sched
	var step FrameCallback
	step = func(time.Duration) {
		t.Scan()
		mu.Lock()
		defer mu.Unlock()
		if !cancelled {
			handle = sched.ScheduleFrame(step)
		}
	}
	mu.Lock()
	handle = sched.ScheduleFrame(step)
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if cancelled {
			return
		}
		cancelled = true
		sched.CancelFrame(handle)
	}
}

func attached(el Element) bool {
	if a, ok := el.(Attachable); ok {
		return a.Attached()
	}
	return true
}

func (t *VisibilityTrigger) root() Rect {
	r := t.viewport.Bounds()
	r.Height = max(r.Height-t.cfg.BottomMargin, 0)
	return r
}

func (t *VisibilityTrigger) isIntersecting(el, root Rect) bool {
	if !root.Intersects(el) {
		return false
	}
	return IntersectionRatio(el, root) >= t.cfg.Threshold
}

// IntersectionRatio returns the fraction of el's area that lies inside root.
// A zero-area element touching root counts as fully visible.
func IntersectionRatio(el, root Rect) float64 {
	if el.Area() == 0 {
		if root.Intersects(el) {
			return 1
		}
		return 0
	}
	return el.Intersection(root).Area() / el.Area()
}

func (t *VisibilityTrigger) fire(rec *observedElement) {
	t.mu.Lock()
	handler := t.handlers[rec.kind]
	t.mu.Unlock()

	reveal := func() {
		if handler != nil {
			handler(rec.el)
		} else {
			rec.el.AddClass(ClassAnimated, ClassAnimatePrefix+rec.kind)
		}
		t.a.emit(Event{Type: EventTriggered, Kind: rec.kind, Element: rec.el, At: t.a.sched.Now()})
	}

	t.a.debugTrigger(rec.kind, rec.delay)
	if t.a.PrefersReducedMotion() {
		reveal()
		return
	}
	t.a.sched.AfterFunc(rec.delay, reveal)
}

func revealKind(el Element) string {
	if v, ok := el.Attr(AttrAnimate); ok && v != "" {
		return v
	}
	return DefaultRevealKind
}

// revealDelay parses the leading integer of the delay attribute as
// milliseconds. Missing, malformed or negative values mean no delay.
func revealDelay(el Element) time.Duration {
	v, ok := el.Attr(AttrDelay)
	if !ok {
		return 0
	}
	ms := leadingInt(v)
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// leadingInt parses an optional sign followed by digits, ignoring anything
// after them, so "250ms" reads as 250.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > 1<<30 {
			break
		}
	}
	if neg {
		return -n
	}
	return n
}
