package motion

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

// ---- Fakes -----------------------------------------------------------------

type fakeText struct {
	history []string
}

func (f *fakeText) SetText(s string) { f.history = append(f.history, s) }

func (f *fakeText) last() string {
	if len(f.history) == 0 {
		return ""
	}
	return f.history[len(f.history)-1]
}

type styleWrite struct {
	prop, value string
}

type fakeStyle struct {
	writes []styleWrite
	style  map[string]string
}

func (f *fakeStyle) SetStyle(prop, value string) {
	if f.style == nil {
		f.style = make(map[string]string)
	}
	f.style[prop] = value
	f.writes = append(f.writes, styleWrite{prop, value})
}

// values returns every value written to prop, in order.
func (f *fakeStyle) values(prop string) []string {
	var out []string
	for _, w := range f.writes {
		if w.prop == prop {
			out = append(out, w.value)
		}
	}
	return out
}

type fakeElement struct {
	fakeText
	fakeStyle
	name     string
	attrs    map[string]string
	classes  []string
	bounds   Rect
	children []*fakeElement
}

func newFakeElement(name string, bounds Rect, attrs ...string) *fakeElement {
	el := &fakeElement{name: name, bounds: bounds, attrs: make(map[string]string)}
	for i := 0; i+1 < len(attrs); i += 2 {
		el.attrs[attrs[i]] = attrs[i+1]
	}
	return el
}

func (e *fakeElement) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *fakeElement) AddClass(names ...string) { e.classes = append(e.classes, names...) }

func (e *fakeElement) Bounds() Rect { return e.bounds }

func (e *fakeElement) hasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

func (e *fakeElement) QueryAll(attr string) []Element {
	var out []Element
	for _, c := range e.children {
		if _, ok := c.attrs[attr]; ok {
			out = append(out, c)
		}
		out = append(out, c.QueryAll(attr)...)
	}
	return out
}

type fakeViewport struct {
	rect Rect
}

func (v *fakeViewport) Bounds() Rect { return v.rect }

func (v *fakeViewport) scrollTo(y float64) { v.rect.Y = y }

type recordingSink struct {
	events []Event
}

func (s *recordingSink) EmitEvent(ev Event) { s.events = append(s.events, ev) }

func (s *recordingSink) count(t EventType) int {
	n := 0
	for _, ev := range s.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// ---- Helpers ---------------------------------------------------------------

const testFrame = 10 * time.Millisecond

// newTestAnimator returns an animator on a 10ms virtual clock with full
// motion.
func newTestAnimator() (*Animator, *VirtualClock) {
	clock := NewVirtualClock(testFrame)
	a := NewAnimator(clock)
	a.SetMotionPreference(StaticPreference(false))
	return a, clock
}

func parseNumber(t *testing.T, s string) float64 {
	t.Helper()
	s = strings.TrimSuffix(strings.TrimPrefix(s, "scaleX("), ")")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return f
}
