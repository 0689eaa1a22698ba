// Package breakpoint holds the responsive width thresholds overlays use to
// decide whether they display at the current terminal width.
package breakpoint

import (
	"fmt"
	"strings"
)

// Breakpoint is a minimum viewport width in columns.
type Breakpoint int

const (
	Zero Breakpoint = 0
	SM   Breakpoint = 80
	MD   Breakpoint = 100
	LG   Breakpoint = 120
	XL   Breakpoint = 140
)

var names = map[string]Breakpoint{
	"zero": Zero,
	"sm":   SM,
	"md":   MD,
	"lg":   LG,
	"xl":   XL,
}

// All lists the breakpoints in ascending order.
var All = []Breakpoint{Zero, SM, MD, LG, XL}

// Parse resolves a breakpoint name.
func Parse(s string) (Breakpoint, error) {
	bp, ok := names[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Zero, fmt.Errorf("unknown breakpoint %q", s)
	}
	return bp, nil
}

func (b Breakpoint) String() string {
	for name, bp := range names {
		if bp == b {
			return name
		}
	}
	return fmt.Sprintf("%dcols", int(b))
}

// Active returns the largest breakpoint that width reaches.
func Active(width int) Breakpoint {
	active := Zero
	for _, bp := range All {
		if width >= int(bp) {
			active = bp
		}
	}
	return active
}

// Rule decides whether an overlay displays at a viewport width.
type Rule func(width int) bool

// Always displays at every width.
func Always() Rule { return nil }

// DisplayIfAtLeast displays from bp upward.
func DisplayIfAtLeast(bp Breakpoint) Rule {
	return func(width int) bool { return width >= int(bp) }
}

// DisplayUntil displays below bp only.
func DisplayUntil(bp Breakpoint) Rule {
	return func(width int) bool { return width < int(bp) }
}

// Allows reports whether the rule lets an overlay display at width. A nil
// rule always allows.
func (r Rule) Allows(width int) bool {
	return r == nil || r(width)
}
