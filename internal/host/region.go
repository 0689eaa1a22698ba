package host

import (
	"sync"

	"github.com/alexisbeaulieu97/overlay/internal/geometry"
)

// Tracker exposes the current pointer and focus location.
type Tracker interface {
	Pointer() (geometry.Point, bool)
	Focused() *Element
}

var _ Tracker = (*Document)(nil)

// Region is an area an overlay cares about: its anchor, its own floating
// box, or a caller supplied extra area.
type Region interface {
	ContainsPoint(p geometry.Point) bool
	ContainsElement(el *Element) bool
}

// ElementRegion covers whatever element resolve returns at query time,
// including the element's descendants for focus checks.
type ElementRegion func() *Element

// ContainsPoint implements Region.
func (r ElementRegion) ContainsPoint(p geometry.Point) bool {
	el := r()
	return el != nil && el.Attached() && el.Bounds().Contains(p)
}

// ContainsElement implements Region.
func (r ElementRegion) ContainsElement(other *Element) bool {
	el := r()
	return el != nil && other != nil && el.IsAncestorOf(other)
}

// RectRegion covers a rectangle computed at query time. The boolean result
// reports whether the rectangle currently exists. Rect regions never own
// elements.
type RectRegion func() (geometry.Rect, bool)

// ContainsPoint implements Region.
func (r RectRegion) ContainsPoint(p geometry.Point) bool {
	rect, ok := r()
	return ok && rect.Contains(p)
}

// ContainsElement implements Region.
func (r RectRegion) ContainsElement(*Element) bool { return false }

// Ref is a late-bound element handle. The host re-points it when it replaces
// the element between frames. Safe for concurrent use.
type Ref struct {
	mu    sync.RWMutex
	value *Element
}

// NewRef creates a Ref, optionally pre-set to el.
func NewRef(el *Element) *Ref {
	return &Ref{value: el}
}

// Set stores the element in this ref.
func (r *Ref) Set(el *Element) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = el
}

// El returns the referenced element, or nil if not yet set.
func (r *Ref) El() *Element {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}
