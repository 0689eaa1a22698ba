package placement

import (
	"math"

	"github.com/alexisbeaulieu97/overlay/internal/geometry"
)

// Bounded layers viewport collision handling in front of the fixed algorithm.
// When the box would overflow the viewport on its primary axis and the
// opposite side has room, the placement flips; the cross axis is then shifted
// just enough to keep the box on screen. The base algorithm is untouched, so
// callers that want the requested placement verbatim use Fixed instead.
type Bounded struct {
	Placement Placement
	Offset    float64
	// Viewport returns the area the box must stay inside. An empty
	// rectangle disables collision handling.
	Viewport func() geometry.Rect
}

// WithinBounds returns a Bounded strategy.
func WithinBounds(p Placement, offset float64, viewport func() geometry.Rect) Bounded {
	return Bounded{Placement: p, Offset: offset, Viewport: viewport}
}

// Compute implements Strategy.
func (b Bounded) Compute(anchor geometry.Rect, floating geometry.Size) Result {
	res := Compute(anchor, floating, b.Placement, b.Offset)
	if b.Viewport == nil {
		return res
	}
	view := b.Viewport().Normalize()
	if view.Empty() {
		return res
	}

	f := floating.Normalize()
	if overflowsPrimary(res, f, view) {
		flipped := Compute(anchor, floating, b.Placement.Flip(), b.Offset)
		if !overflowsPrimary(flipped, f, view) {
			res = flipped
		}
	}

	if res.Placement.Side().Vertical() {
		res.Origin.X = shift(res.Origin.X, f.Width, view.X, view.Right())
	} else {
		res.Origin.Y = shift(res.Origin.Y, f.Height, view.Y, view.Bottom())
	}
	return res
}

func overflowsPrimary(res Result, f geometry.Size, view geometry.Rect) bool {
	box := res.Bounds(f)
	if res.Placement.Side().Vertical() {
		return box.Y < view.Y || box.Bottom() > view.Bottom()
	}
	return box.X < view.X || box.Right() > view.Right()
}

// shift moves [pos, pos+span) inside [lo, hi). When the span is larger than
// the window the leading edge wins.
func shift(pos, span, lo, hi float64) float64 {
	if pos+span > hi {
		pos = hi - span
	}
	return math.Max(pos, lo)
}
