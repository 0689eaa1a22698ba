// Package keepopen decides whether an overlay that is about to close should
// stay open a little longer, for instance while the pointer is moving from
// the anchor onto the floating box.
package keepopen

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/overlay/internal/host"
)

// Policy votes on close intents. ShouldStayOpen must not have side effects;
// the controller may call it once per frame.
type Policy interface {
	ShouldStayOpen() bool
}

// Func adapts a function to Policy.
type Func func() bool

// ShouldStayOpen implements Policy.
func (f Func) ShouldStayOpen() bool { return f != nil && f() }

// Never always lets the overlay close.
func Never() Policy { return Func(nil) }

// Manual defers the vote to the caller.
func Manual(vote func() bool) Policy { return Func(vote) }

// OnHover votes to stay open while the pointer is inside any region.
func OnHover(tracker host.Tracker, regions ...host.Region) Policy {
	return Func(func() bool {
		if tracker == nil {
			return false
		}
		p, ok := tracker.Pointer()
		if !ok {
			return false
		}
		for _, r := range regions {
			if r != nil && r.ContainsPoint(p) {
				return true
			}
		}
		return false
	})
}

// OnFocus votes to stay open while focus is inside any region.
func OnFocus(tracker host.Tracker, regions ...host.Region) Policy {
	return Func(func() bool {
		if tracker == nil {
			return false
		}
		focused := tracker.Focused()
		if focused == nil {
			return false
		}
		for _, r := range regions {
			if r != nil && r.ContainsElement(focused) {
				return true
			}
		}
		return false
	})
}

// OnHoverOrFocus combines OnHover and OnFocus over the same regions.
func OnHoverOrFocus(tracker host.Tracker, regions ...host.Region) Policy {
	return Any(OnHover(tracker, regions...), OnFocus(tracker, regions...))
}

// Any votes to stay open when at least one policy does.
func Any(policies ...Policy) Policy {
	return Func(func() bool {
		for _, p := range policies {
			if p != nil && p.ShouldStayOpen() {
				return true
			}
		}
		return false
	})
}

// Surfaces are the regions a facade exposes to keep-open strategies.
type Surfaces struct {
	Anchor   host.Region
	Floating host.Region
	Tracker  host.Tracker
	// Extra regions count as part of the overlay, e.g. a submenu.
	Extra []host.Region
}

func (s Surfaces) regions() []host.Region {
	out := make([]host.Region, 0, 2+len(s.Extra))
	if s.Anchor != nil {
		out = append(out, s.Anchor)
	}
	if s.Floating != nil {
		out = append(out, s.Floating)
	}
	return append(out, s.Extra...)
}

// Strategy builds a policy once the facade knows its surfaces.
type Strategy func(Surfaces) Policy

// NeverStrategy is the default strategy.
func NeverStrategy() Strategy { return func(Surfaces) Policy { return Never() } }

// HoverStrategy keeps the overlay open while the pointer is over the anchor,
// the floating box or an extra region.
func HoverStrategy() Strategy {
	return func(s Surfaces) Policy { return OnHover(s.Tracker, s.regions()...) }
}

// FocusStrategy keeps the overlay open while focus is inside the anchor, the
// floating box or an extra region.
func FocusStrategy() Strategy {
	return func(s Surfaces) Policy { return OnFocus(s.Tracker, s.regions()...) }
}

// HoverOrFocusStrategy combines HoverStrategy and FocusStrategy.
func HoverOrFocusStrategy() Strategy {
	return func(s Surfaces) Policy { return OnHoverOrFocus(s.Tracker, s.regions()...) }
}

// ManualStrategy ignores the surfaces and defers to vote.
func ManualStrategy(vote func() bool) Strategy {
	return func(Surfaces) Policy { return Manual(vote) }
}

// Kind names a built-in strategy in configuration.
type Kind string

const (
	KindNever        Kind = "never"
	KindHover        Kind = "hover"
	KindFocus        Kind = "focus"
	KindHoverOrFocus Kind = "hover-or-focus"
)

// Kinds lists the configurable strategy names.
func Kinds() []Kind { return []Kind{KindNever, KindHover, KindFocus, KindHoverOrFocus} }

// ParseKind validates a strategy name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return KindNever, nil
	}
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown keep-open strategy %q", s)
}

// Strategy returns the strategy for k. Unknown kinds map to Never.
func (k Kind) Strategy() Strategy {
	switch k {
	case KindHover:
		return HoverStrategy()
	case KindFocus:
		return FocusStrategy()
	case KindHoverOrFocus:
		return HoverOrFocusStrategy()
	default:
		return NeverStrategy()
	}
}
