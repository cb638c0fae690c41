package motion

import "time"

// CancelFunc stops an animation or a pending batch of scheduled work.
// Calling it more than once, or after the work has finished, is a no-op.
type CancelFunc func()

func noopCancel() {}

// Rect is an axis-aligned rectangle in page coordinates. The origin is at the
// top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Area returns Width*Height, or 0 for degenerate rectangles.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Intersection returns the overlapping region of r and other. The result has
// zero size when they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 < x0 || y1 < y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// TextTarget is a surface that displays text, such as a score label.
type TextTarget interface {
	SetText(text string)
}

// StyleTarget is a surface with writable style properties, such as an SVG
// circle's stroke offset or a bar's transform.
type StyleTarget interface {
	SetStyle(property, value string)
}

// Element is a declaratively tagged surface the visibility trigger and the
// scanner can observe. Bounds are in the same coordinate space as the
// Viewport.
type Element interface {
	Attr(name string) (string, bool)
	AddClass(names ...string)
	Bounds() Rect
}

// Attachable is implemented by elements that can be removed from their page.
// The visibility trigger never reveals an element whose Attached reports
// false; it stays observed and is tested again once reattached.
type Attachable interface {
	Attached() bool
}

// Container is anything that can be searched for tagged elements.
type Container interface {
	QueryAll(attr string) []Element
}

// Sink receives interpolated values. Derived animators adapt their targets to
// a Sink so the engine never touches a rendering surface directly.
type Sink interface {
	Write(value float64)
}

// SinkFunc adapts a plain function to a Sink.
type SinkFunc func(value float64)

// Write calls f(value).
func (f SinkFunc) Write(value float64) { f(value) }

// Declarative attributes read by the scanner and the visibility trigger.
const (
	AttrScore            = "data-sl-score"
	AttrCircularProgress = "data-sl-circular-progress"
	AttrProgress         = "data-sl-progress"
	AttrAnimate          = "data-sl-animate"
	AttrDelay            = "data-sl-delay"
	AttrStaggerParent    = "data-sl-stagger-parent"
	AttrStaggerChild     = "data-sl-stagger-child"
)

// Classes applied by the default reveal behavior.
const (
	ClassAnimated      = "sl-animated"
	ClassAnimatePrefix = "sl-animate-"
	DefaultRevealKind  = "fade-in-up"
)

// EventType identifies a kind of animation lifecycle event.
type EventType uint8

const (
	EventTweenStart    EventType = iota // a tween was scheduled, or snapped under reduced motion
	EventTweenComplete                  // a tween wrote its final value
	EventTweenCancel                    // a tween was cancelled before completing
	EventTriggered                      // a visibility trigger applied its reveal
)

func (t EventType) String() string {
	switch t {
	case EventTweenStart:
		return "start"
	case EventTweenComplete:
		return "complete"
	case EventTweenCancel:
		return "cancel"
	case EventTriggered:
		return "triggered"
	default:
		return "unknown"
	}
}

// Event carries lifecycle data for an EventSink.
type Event struct {
	Type EventType
	// TweenID is the engine-assigned id; zero for trigger events.
	TweenID uint64
	// Kind is the reveal kind for EventTriggered.
	Kind    string
	Element Element
	// At is the scheduler timestamp when the event fired, when known.
	At time.Duration
}

// EventSink is the interface for optional lifecycle observers. When set on an
// Animator, tween and trigger events are forwarded to it.
type EventSink interface {
	EmitEvent(event Event)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
