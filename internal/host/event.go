package host

import (
	"fmt"

	"github.com/alexisbeaulieu97/overlay/internal/geometry"
)

// EventKind classifies host events forwarded to overlays.
type EventKind int

const (
	// EventPointerMove reports the pointer at Point.
	EventPointerMove EventKind = iota
	// EventPointerLeave reports the pointer leaving the canvas.
	EventPointerLeave
	// EventFocus reports focus moving to Target (nil to blur).
	EventFocus
	// EventResize reports a new canvas Size.
	EventResize
	// EventScroll reports that laid-out bounds moved.
	EventScroll
)

func (k EventKind) String() string {
	switch k {
	case EventPointerMove:
		return "pointer-move"
	case EventPointerLeave:
		return "pointer-leave"
	case EventFocus:
		return "focus"
	case EventResize:
		return "resize"
	case EventScroll:
		return "scroll"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a pointer, focus or layout notification.
type Event struct {
	Kind   EventKind
	Point  geometry.Point
	Target *Element
	Size   geometry.Size
}

// PointerMove builds a pointer-move event.
func PointerMove(x, y float64) Event {
	return Event{Kind: EventPointerMove, Point: geometry.Pt(x, y)}
}

// PointerLeave builds a pointer-leave event.
func PointerLeave() Event {
	return Event{Kind: EventPointerLeave}
}

// FocusOn builds a focus event. A nil target blurs.
func FocusOn(el *Element) Event {
	return Event{Kind: EventFocus, Target: el}
}

// Resize builds a resize event.
func Resize(w, h float64) Event {
	return Event{Kind: EventResize, Size: geometry.Sz(w, h)}
}

// Relayout reports whether the event can move anchors or the viewport.
func (e Event) Relayout() bool {
	return e.Kind == EventResize || e.Kind == EventScroll
}
