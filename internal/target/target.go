// Package target resolves the element an overlay anchors to. Targets are
// resolved again on every query so that the overlay follows the host when it
// replaces, moves or removes elements.
package target

import (
	"github.com/alexisbeaulieu97/overlay/internal/geometry"
	"github.com/alexisbeaulieu97/overlay/internal/host"
)

// Target yields the current anchor element. A nil result means there is no
// valid anchor right now.
type Target interface {
	Resolve() *host.Element
}

// Func adapts a plain function to Target.
type Func func() *host.Element

// Resolve implements Target.
func (f Func) Resolve() *host.Element {
	if f == nil {
		return nil
	}
	return attached(f())
}

// Of targets a direct element handle.
func Of(el *host.Element) Target {
	return Func(func() *host.Element { return el })
}

// FromRef targets whatever element ref points to at query time.
func FromRef(ref *host.Ref) Target {
	return Func(func() *host.Element {
		if ref == nil {
			return nil
		}
		return ref.El()
	})
}

// Selector targets the first element of doc matching sel.
func Selector(doc *host.Document, sel string) Target {
	compiled, err := host.ParseSelector(sel)
	return Func(func() *host.Element {
		if doc == nil || err != nil {
			return nil
		}
		return doc.QuerySelector(compiled)
	})
}

// PreviousSibling targets the element declared immediately before the
// marker element, the one the overlay was declared next to.
func PreviousSibling(marker *host.Element) Target {
	return Func(func() *host.Element {
		if marker == nil {
			return nil
		}
		return marker.PreviousSibling()
	})
}

// None never resolves.
func None() Target { return Func(nil) }

// Bounds returns the resolved element's bounds.
func Bounds(t Target) (geometry.Rect, bool) {
	el := Resolve(t)
	if el == nil {
		return geometry.Rect{}, false
	}
	return el.Bounds(), true
}

// Resolve is a nil-safe t.Resolve.
func Resolve(t Target) *host.Element {
	if t == nil {
		return nil
	}
	return attached(t.Resolve())
}

// Region adapts t into a host.Region covering the resolved element and its
// descendants.
func Region(t Target) host.Region {
	return host.ElementRegion(func() *host.Element { return Resolve(t) })
}

func attached(el *host.Element) *host.Element {
	if !el.Attached() {
		return nil
	}
	return el
}
