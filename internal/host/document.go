package host

import (
	"sync"

	"github.com/alexisbeaulieu97/overlay/internal/geometry"
)

// Document owns a root element and the pointer and focus state the overlay
// engine reads when deciding whether an overlay stays open.
type Document struct {
	root *Element

	mu         sync.RWMutex
	pointer    geometry.Point
	hasPointer bool
	focused    *Element
}

// NewDocument creates an empty document whose root is a "body" element.
func NewDocument() *Document {
	d := &Document{}
	d.root = &Element{tag: "body", doc: d}
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Element { return d.root }

// Append adds top-level elements under the root.
func (d *Document) Append(children ...*Element) *Document {
	d.root.AddChild(children...)
	return d
}

// Pointer returns the last pointer position and whether the pointer is
// currently over the document.
func (d *Document) Pointer() (geometry.Point, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.pointer, d.hasPointer
}

// Focused returns the focused element, or nil.
func (d *Document) Focused() *Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.focused
}

// Focus moves focus to el. A nil element blurs. Elements that belong to a
// different document are ignored.
func (d *Document) Focus(el *Element) {
	if el != nil && el.doc != d {
		return
	}
	d.mu.Lock()
	d.focused = el
	d.mu.Unlock()
}

// ElementAt returns the deepest element whose bounds contain p. Later
// siblings win over earlier ones, matching paint order.
func (d *Document) ElementAt(p geometry.Point) *Element {
	var hit *Element
	d.root.Walk(func(n *Element) bool {
		if n != d.root && n.bounds.Contains(p) {
			hit = n
		}
		return true
	})
	return hit
}

// Focusables returns the focus stops in document order.
func (d *Document) Focusables() []*Element {
	var out []*Element
	d.root.Walk(func(n *Element) bool {
		if n.focusable {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FocusNext advances focus by delta stops, wrapping around, and returns the
// newly focused element.
func (d *Document) FocusNext(delta int) *Element {
	stops := d.Focusables()
	if len(stops) == 0 {
		return nil
	}
	current := d.Focused()
	idx := -1
	for i, el := range stops {
		if el == current {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && delta < 0:
		idx = len(stops) - 1
	case idx < 0:
		idx = 0
	default:
		idx = ((idx+delta)%len(stops) + len(stops)) % len(stops)
	}
	d.Focus(stops[idx])
	return stops[idx]
}

// Dispatch records the event's effect on pointer and focus state and returns
// the event with its Target resolved.
func (d *Document) Dispatch(ev Event) Event {
	switch ev.Kind {
	case EventPointerMove:
		d.mu.Lock()
		d.pointer = ev.Point
		d.hasPointer = true
		d.mu.Unlock()
		if ev.Target == nil {
			ev.Target = d.ElementAt(ev.Point)
		}
	case EventPointerLeave:
		d.mu.Lock()
		d.hasPointer = false
		d.mu.Unlock()
	case EventFocus:
		d.Focus(ev.Target)
		ev.Target = d.Focused()
	}
	return ev
}

func (d *Document) forget(n *Element) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.focused == n {
		d.focused = nil
	}
}
