package placement

import (
	"fmt"
	"strings"
)

// Side is the edge of the anchor the floating box sits against.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// Opposite returns the facing side.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}

// Vertical reports whether the primary axis is y (the box sits above or
// below the anchor).
func (s Side) Vertical() bool {
	return s == SideTop || s == SideBottom
}

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Alignment positions the floating box along the anchor's cross axis.
type Alignment int

const (
	AlignLeading Alignment = iota
	AlignCentered
	AlignTrailing
)

// Fraction is the share of the span at which the anchor and the floating box
// are pinned together: 0 for leading, 0.5 for centered, 1 for trailing.
func (a Alignment) Fraction() float64 {
	switch a {
	case AlignCentered:
		return 0.5
	case AlignTrailing:
		return 1
	default:
		return 0
	}
}

func (a Alignment) String() string {
	switch a {
	case AlignLeading:
		return "leading"
	case AlignCentered:
		return "centered"
	case AlignTrailing:
		return "trailing"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// Placement is one of the twelve compass placements of a floating box
// relative to its anchor. The zero value is Bottom.
type Placement int

const (
	Bottom Placement = iota
	BottomLeft
	BottomRight
	Top
	TopLeft
	TopRight
	Left
	LeftTop
	LeftBottom
	Right
	RightTop
	RightBottom
)

// All lists every placement, families in Top, Bottom, Left, Right order.
var All = []Placement{
	TopLeft, Top, TopRight,
	BottomLeft, Bottom, BottomRight,
	LeftTop, Left, LeftBottom,
	RightTop, Right, RightBottom,
}

type descriptor struct {
	name  string
	side  Side
	align Alignment
}

var descriptors = map[Placement]descriptor{
	TopLeft:     {"top-left", SideTop, AlignLeading},
	Top:         {"top", SideTop, AlignCentered},
	TopRight:    {"top-right", SideTop, AlignTrailing},
	BottomLeft:  {"bottom-left", SideBottom, AlignLeading},
	Bottom:      {"bottom", SideBottom, AlignCentered},
	BottomRight: {"bottom-right", SideBottom, AlignTrailing},
	LeftTop:     {"left-top", SideLeft, AlignLeading},
	Left:        {"left", SideLeft, AlignCentered},
	LeftBottom:  {"left-bottom", SideLeft, AlignTrailing},
	RightTop:    {"right-top", SideRight, AlignLeading},
	Right:       {"right", SideRight, AlignCentered},
	RightBottom: {"right-bottom", SideRight, AlignTrailing},
}

// Of composes a placement from its side and alignment.
func Of(side Side, align Alignment) Placement {
	for p, d := range descriptors {
		if d.side == side && d.align == align {
			return p
		}
	}
	return Bottom
}

// Valid reports whether p is one of the twelve placements.
func (p Placement) Valid() bool {
	_, ok := descriptors[p]
	return ok
}

// Side returns the anchor edge the floating box sits against.
func (p Placement) Side() Side {
	return descriptors[p].side
}

// Alignment returns the cross-axis alignment.
func (p Placement) Alignment() Alignment {
	return descriptors[p].align
}

// Flip returns the placement on the opposite side with the same alignment.
func (p Placement) Flip() Placement {
	return Of(p.Side().Opposite(), p.Alignment())
}

func (p Placement) String() string {
	if d, ok := descriptors[p]; ok {
		return d.name
	}
	return fmt.Sprintf("Placement(%d)", int(p))
}

// Parse converts the kebab-case name ("top-left", "bottom") into a Placement.
// Underscores and camel case ("TopLeft") are accepted as well.
func Parse(name string) (Placement, error) {
	key := normalizeName(name)
	for p, d := range descriptors {
		if strings.ReplaceAll(d.name, "-", "") == key {
			return p, nil
		}
	}
	return Bottom, fmt.Errorf("unknown placement %q", name)
}

// MustParse is Parse for constants known to be valid.
func MustParse(name string) Placement {
	p, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Names returns the text form of every placement in All order.
func Names() []string {
	names := make([]string, 0, len(All))
	for _, p := range All {
		names = append(names, p.String())
	}
	return names
}

// MarshalText implements encoding.TextMarshaler.
func (p Placement) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid placement %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Placement) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func normalizeName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "")
	key = strings.ReplaceAll(key, "_", "")
	return strings.ReplaceAll(key, " ", "")
}
