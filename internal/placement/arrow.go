package placement

import "fmt"

// Direction is the compass direction an arrow points.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionNone:
		return "none"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Arrow is the arrow variant drawn on a floating box. Edge is the side of the
// floating box the arrow is attached to, Align its position along that edge
// and Direction where it points. The zero value means "no arrow".
type Arrow struct {
	Edge      Side
	Align     Alignment
	Direction Direction
}

// NoArrow is returned by strategies that do not want an arrow rendered.
var NoArrow = Arrow{}

// Present reports whether the arrow should be drawn.
func (a Arrow) Present() bool {
	return a.Direction != DirectionNone
}

func (a Arrow) String() string {
	if !a.Present() {
		return "none"
	}
	return fmt.Sprintf("%s-%s", a.Edge, a.Align)
}

// arrowFor is the fixed placement to arrow lookup. A box below the anchor
// carries its arrow on its top edge pointing up, and so on; the alignment
// follows the placement so the arrow stays over the pinned edge.
var arrowFor = map[Placement]Arrow{
	TopLeft:     {Edge: SideBottom, Align: AlignLeading, Direction: DirectionDown},
	Top:         {Edge: SideBottom, Align: AlignCentered, Direction: DirectionDown},
	TopRight:    {Edge: SideBottom, Align: AlignTrailing, Direction: DirectionDown},
	LeftTop:     {Edge: SideRight, Align: AlignLeading, Direction: DirectionRight},
	Left:        {Edge: SideRight, Align: AlignCentered, Direction: DirectionRight},
	LeftBottom:  {Edge: SideRight, Align: AlignTrailing, Direction: DirectionRight},
	RightTop:    {Edge: SideLeft, Align: AlignLeading, Direction: DirectionLeft},
	Right:       {Edge: SideLeft, Align: AlignCentered, Direction: DirectionLeft},
	RightBottom: {Edge: SideLeft, Align: AlignTrailing, Direction: DirectionLeft},
	BottomLeft:  {Edge: SideTop, Align: AlignLeading, Direction: DirectionUp},
	Bottom:      {Edge: SideTop, Align: AlignCentered, Direction: DirectionUp},
	BottomRight: {Edge: SideTop, Align: AlignTrailing, Direction: DirectionUp},
}

// ArrowFor returns the arrow variant for p.
func ArrowFor(p Placement) Arrow {
	return arrowFor[p]
}
