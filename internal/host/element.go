// Package host is the in-process element tree the overlay engine anchors to.
// The application owns layout: it sets each element's bounds after it lays
// out a frame, and forwards pointer and focus events through the Document.
package host

import (
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/overlay/internal/geometry"
)

// Element is a node of the host tree. Bounds are canvas coordinates.
type Element struct {
	id        string
	tag       string
	classes   []string
	bounds    geometry.Rect
	focusable bool

	doc      *Document
	parent   *Element
	children []*Element
}

// NewElement creates a detached element.
func NewElement(tag, id string, classes ...string) *Element {
	return &Element{tag: tag, id: id, classes: append([]string(nil), classes...)}
}

// ID returns the element id.
func (e *Element) ID() string { return e.id }

// Tag returns the element tag.
func (e *Element) Tag() string { return e.tag }

// Classes returns a copy of the element's classes.
func (e *Element) Classes() []string { return append([]string(nil), e.classes...) }

// HasClass reports whether the element carries class c.
func (e *Element) HasClass(c string) bool {
	return slices.Contains(e.classes, c)
}

// Bounds returns the last laid-out rectangle.
func (e *Element) Bounds() geometry.Rect { return e.bounds }

// SetBounds records the element's laid-out rectangle.
func (e *Element) SetBounds(r geometry.Rect) *Element {
	e.bounds = r
	return e
}

// Focusable reports whether the element takes part in focus traversal.
func (e *Element) Focusable() bool { return e.focusable }

// SetFocusable marks the element as a focus stop.
func (e *Element) SetFocusable(f bool) *Element {
	e.focusable = f
	return e
}

// Parent returns the parent element, or nil for roots and detached nodes.
func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list.
func (e *Element) Children() []*Element { return append([]*Element(nil), e.children...) }

// Document returns the owning document, or nil when detached.
func (e *Element) Document() *Document { return e.doc }

// Attached reports whether the element is currently part of a document.
func (e *Element) Attached() bool { return e != nil && e.doc != nil }

// AddChild appends children, detaching them from any previous parent.
func (e *Element) AddChild(children ...*Element) *Element {
	for _, child := range children {
		if child == nil {
			continue
		}
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = e
		e.children = append(e.children, child)
		child.setDocument(e.doc)
	}
	return e
}

// RemoveChild detaches child. It returns false when child is not a child of e.
func (e *Element) RemoveChild(child *Element) bool {
	idx := slices.Index(e.children, child)
	if idx < 0 {
		return false
	}
	e.children = slices.Delete(e.children, idx, idx+1)
	child.parent = nil
	child.setDocument(nil)
	return true
}

// PreviousSibling returns the sibling declared immediately before e.
func (e *Element) PreviousSibling() *Element {
	if e.parent == nil {
		return nil
	}
	idx := slices.Index(e.parent.children, e)
	if idx <= 0 {
		return nil
	}
	return e.parent.children[idx-1]
}

// IsAncestorOf reports whether other is e or one of e's descendants.
func (e *Element) IsAncestorOf(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Path returns the slash separated ids from the root down to e. Elements
// without an id contribute their tag.
func (e *Element) Path() string {
	var parts []string
	for n := e; n != nil; n = n.parent {
		name := n.id
		if name == "" {
			name = n.tag
		}
		parts = append(parts, name)
	}
	slices.Reverse(parts)
	return strings.Join(parts, "/")
}

// Walk visits e and its descendants in document order until fn returns false.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, child := range e.children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

func (e *Element) setDocument(doc *Document) {
	e.Walk(func(n *Element) bool {
		if n.doc != nil && n.doc != doc {
			n.doc.forget(n)
		}
		n.doc = doc
		return true
	})
}
