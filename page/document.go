package page

import (
	"github.com/skilllens/motion"
)

// Document is a node tree viewed through a scrollable viewport. The viewport
// is the region of the page currently on screen: its size is fixed by
// NewDocument or Resize, and its vertical offset by ScrollTo.
type Document struct {
	Root *Node

	viewport  motion.Rect
	listeners map[int]func()
	nextID    int
}

// NewDocument creates an empty document with a width×height viewport at the
// top of the page.
func NewDocument(width, height float64) *Document {
	d := &Document{
		viewport:  motion.Rect{Width: width, Height: height},
		listeners: make(map[int]func()),
	}
	d.Root = NewNode("root")
	d.Root.doc = d
	return d
}

// Bounds returns the viewport rectangle in page coordinates.
func (d *Document) Bounds() motion.Rect {
	return d.viewport
}

// ScrollTo moves the viewport's top edge to y. Negative values clamp to 0.
func (d *Document) ScrollTo(y float64) {
	d.viewport.Y = max(y, 0)
}

// ScrollBy moves the viewport by dy.
func (d *Document) ScrollBy(dy float64) {
	d.ScrollTo(d.viewport.Y + dy)
}

// ScrollY returns the viewport's vertical offset.
func (d *Document) ScrollY() float64 {
	return d.viewport.Y
}

// Resize changes the viewport size, keeping its offset.
func (d *Document) Resize(width, height float64) {
	d.viewport.Width, d.viewport.Height = width, height
}

// QueryAll returns every node under Root carrying attr, in document order.
func (d *Document) QueryAll(attr string) []motion.Element {
	return d.Root.QueryAll(attr)
}

// OnChange registers fn to run whenever a node is added to or removed from
// the tree. It returns a function that unregisters fn.
func (d *Document) OnChange(fn func()) (remove func()) {
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn
	return func() { delete(d.listeners, id) }
}

func (d *Document) notify() {
	for _, fn := range d.listeners {
		fn()
	}
}
