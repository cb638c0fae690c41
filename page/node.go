package page

import (
	"slices"

	"github.com/skilllens/motion"
)

// Node is one element of a Document. Its rectangle is relative to its
// parent; Bounds returns the absolute rectangle.
type Node struct {
	Name string

	// Layout (local, relative to Parent)
	X, Y          float64
	Width, Height float64

	Parent   *Node
	children []*Node

	attrs   map[string]string
	classes []string
	style   map[string]string
	text    string

	// doc is set on a document root only.
	doc *Document
}

// NewNode creates a detached node.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// --- Content ---

// SetAttr sets an attribute and returns n for chaining.
func (n *Node) SetAttr(name, value string) *Node {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
	return n
}

// Attr returns an attribute value and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// RemoveAttr deletes an attribute.
func (n *Node) RemoveAttr(name string) {
	delete(n.attrs, name)
}

// AddClass adds each class that is not already present, keeping insertion
// order.
func (n *Node) AddClass(names ...string) {
	for _, name := range names {
		if name != "" && !slices.Contains(n.classes, name) {
			n.classes = append(n.classes, name)
		}
	}
}

// RemoveClass removes a class if present.
func (n *Node) RemoveClass(name string) {
	if i := slices.Index(n.classes, name); i >= 0 {
		n.classes = slices.Delete(n.classes, i, i+1)
	}
}

// HasClass reports whether the class is present.
func (n *Node) HasClass(name string) bool {
	return slices.Contains(n.classes, name)
}

// Classes returns the class list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Classes() []string {
	return n.classes
}

// SetText replaces the node's text content.
func (n *Node) SetText(text string) {
	n.text = text
}

// Text returns the node's text content.
func (n *Node) Text() string {
	return n.text
}

// SetStyle sets an inline style property.
func (n *Node) SetStyle(property, value string) {
	if n.style == nil {
		n.style = make(map[string]string)
	}
	n.style[property] = value
}

// Style returns an inline style property, or "" when unset.
func (n *Node) Style(property string) string {
	return n.style[property]
}

// --- Layout ---

// SetRect sets the local rectangle and returns n for chaining.
func (n *Node) SetRect(x, y, width, height float64) *Node {
	n.X, n.Y, n.Width, n.Height = x, y, width, height
	return n
}

// Bounds returns the absolute rectangle: the local rectangle offset by every
// ancestor's position.
func (n *Node) Bounds() motion.Rect {
	x, y := n.X, n.Y
	for p := n.Parent; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return motion.Rect{X: x, Y: y, Width: n.Width, Height: n.Height}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("page: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("page: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
		child.Parent.changed()
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.changed()
}

// AddChildren appends each child in order and returns n for chaining.
func (n *Node) AddChildren(children ...*Node) *Node {
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("page: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.changed()
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Attached reports whether n is part of a document tree, that is, whether
// its root is a Document's Root.
func (n *Node) Attached() bool {
	root := n
	for root.Parent != nil {
		root = root.Parent
	}
	return root.doc != nil
}

// --- Queries ---

// QueryAll returns every descendant carrying attr, in document order. n
// itself is not included.
func (n *Node) QueryAll(attr string) []motion.Element {
	var out []motion.Element
	n.walk(func(d *Node) {
		if d == n {
			return
		}
		if _, ok := d.attrs[attr]; ok {
			out = append(out, d)
		}
	})
	return out
}

// Find returns the first descendant (or n itself) with the given name.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.walk(func(d *Node) {
		if found == nil && d.Name == name {
			found = d
		}
	})
	return found
}

// walk visits n and its descendants depth-first, pre-order.
func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
	}
}

// changed reports a structural change to the owning document, if any.
func (n *Node) changed() {
	root := n
	for root.Parent != nil {
		root = root.Parent
	}
	if root.doc != nil {
		root.doc.notify()
	}
}

var _ motion.Attachable = (*Node)(nil)
