// Package trigger turns host pointer and focus events into open and close
// intents for an overlay controller.
package trigger

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/overlay/internal/host"
)

// Intents is the controller surface a trigger drives.
type Intents interface {
	OnOpenIntent()
	OnCloseIntent()
}

// Surfaces are the regions a trigger watches.
type Surfaces struct {
	// Anchor is the trigger target.
	Anchor host.Region
	// Floating is the overlay's own box. Pointer movement inside it is
	// treated as staying on the anchor.
	Floating host.Region
	Tracker  host.Tracker
}

// Strategy maps a host event to intents. It is stateless; it reads
// membership from the surfaces at event time.
type Strategy interface {
	Handle(ev host.Event, s Surfaces, sink Intents)
}

// Func adapts a function to Strategy.
type Func func(ev host.Event, s Surfaces, sink Intents)

// Handle implements Strategy.
func (f Func) Handle(ev host.Event, s Surfaces, sink Intents) {
	if f != nil && sink != nil {
		f(ev, s, sink)
	}
}

// OnHover opens while the pointer is over the anchor or the floating box.
func OnHover() Strategy {
	return Func(func(ev host.Event, s Surfaces, sink Intents) {
		switch ev.Kind {
		case host.EventPointerMove:
			if pointerInside(ev, s) {
				sink.OnOpenIntent()
			} else {
				sink.OnCloseIntent()
			}
		case host.EventPointerLeave:
			sink.OnCloseIntent()
		}
	})
}

// OnFocus opens while focus is inside the anchor.
func OnFocus() Strategy {
	return Func(func(ev host.Event, s Surfaces, sink Intents) {
		if ev.Kind != host.EventFocus {
			return
		}
		if focusInside(ev.Target, s) {
			sink.OnOpenIntent()
		} else {
			sink.OnCloseIntent()
		}
	})
}

// OnHoverOrFocus opens on either hover or focus and closes only when both
// the pointer and focus have left.
func OnHoverOrFocus() Strategy {
	return Func(func(ev host.Event, s Surfaces, sink Intents) {
		var hovered, focused bool
		switch ev.Kind {
		case host.EventPointerMove:
			hovered = pointerInside(ev, s)
			focused = s.Tracker != nil && focusInside(s.Tracker.Focused(), s)
		case host.EventPointerLeave:
			focused = s.Tracker != nil && focusInside(s.Tracker.Focused(), s)
		case host.EventFocus:
			hovered = trackedPointerInside(s)
			focused = focusInside(ev.Target, s)
		default:
			return
		}
		if hovered || focused {
			sink.OnOpenIntent()
		} else {
			sink.OnCloseIntent()
		}
	})
}

// Manual ignores host events; the caller opens and closes explicitly.
func Manual() Strategy { return Func(nil) }

func pointerInside(ev host.Event, s Surfaces) bool {
	return contains(s.Anchor, ev) || contains(s.Floating, ev)
}

func contains(r host.Region, ev host.Event) bool {
	return r != nil && r.ContainsPoint(ev.Point)
}

func trackedPointerInside(s Surfaces) bool {
	if s.Tracker == nil {
		return false
	}
	p, ok := s.Tracker.Pointer()
	if !ok {
		return false
	}
	return (s.Anchor != nil && s.Anchor.ContainsPoint(p)) || (s.Floating != nil && s.Floating.ContainsPoint(p))
}

func focusInside(el *host.Element, s Surfaces) bool {
	return el != nil && s.Anchor != nil && s.Anchor.ContainsElement(el)
}

// Kind names a built-in strategy in configuration.
type Kind string

const (
	KindHover        Kind = "hover"
	KindFocus        Kind = "focus"
	KindHoverOrFocus Kind = "hover-or-focus"
	KindManual       Kind = "manual"
)

// Kinds lists the configurable strategy names.
func Kinds() []Kind { return []Kind{KindHover, KindFocus, KindHoverOrFocus, KindManual} }

// ParseKind validates a strategy name. The empty string selects the default,
// hover-or-focus.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return KindHoverOrFocus, nil
	}
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown trigger %q", s)
}

// Strategy returns the strategy for k. Unknown kinds map to the default.
func (k Kind) Strategy() Strategy {
	switch k {
	case KindHover:
		return OnHover()
	case KindFocus:
		return OnFocus()
	case KindManual:
		return Manual()
	default:
		return OnHoverOrFocus()
	}
}
