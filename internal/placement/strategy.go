package placement

import "github.com/alexisbeaulieu97/overlay/internal/geometry"

// Result is where a floating box goes and which arrow it carries. Origin is
// expressed in mount-host coordinates.
type Result struct {
	Origin    geometry.Point
	Arrow     Arrow
	Placement Placement
}

// Bounds returns the floating box's rectangle for the given size.
func (r Result) Bounds(floating geometry.Size) geometry.Rect {
	return geometry.FromOrigin(r.Origin, floating)
}

// Strategy computes placement results. Implementations must be pure so they
// can run on every scroll, resize or content change.
type Strategy interface {
	Compute(anchor geometry.Rect, floating geometry.Size) Result
}

// StrategyFunc adapts a function into a Strategy.
type StrategyFunc func(anchor geometry.Rect, floating geometry.Size) Result

// Compute implements Strategy.
func (f StrategyFunc) Compute(anchor geometry.Rect, floating geometry.Size) Result {
	return f(anchor, floating)
}

// DefaultOffset is the gap, in cells, between anchor and floating box.
const DefaultOffset = 1.0

// Fixed always places the box at the same compass placement.
type Fixed struct {
	Placement Placement
	Offset    float64
}

// New returns the fixed strategy for p at offset cells.
func New(p Placement, offset float64) Fixed {
	return Fixed{Placement: p, Offset: offset}
}

// Compute implements Strategy.
func (f Fixed) Compute(anchor geometry.Rect, floating geometry.Size) Result {
	return Compute(anchor, floating, f.Placement, f.Offset)
}

// Compute places a floating box of the given size against anchor. The
// primary axis coordinate is the anchor edge pushed away by offset; the cross
// axis keeps the matching edge (or centre) of both boxes aligned. Zero or
// negative dimensions are treated as zero, so a not-yet-laid-out anchor still
// yields a usable result.
func Compute(anchor geometry.Rect, floating geometry.Size, p Placement, offset float64) Result {
	if !p.Valid() {
		p = Bottom
	}
	a := anchor.Normalize()
	f := floating.Normalize()
	k := p.Alignment().Fraction()

	var origin geometry.Point
	switch p.Side() {
	case SideTop:
		origin.Y = a.Y - offset - f.Height
	case SideBottom:
		origin.Y = a.Y + a.Height + offset
	case SideLeft:
		origin.X = a.X - offset - f.Width
	case SideRight:
		origin.X = a.X + a.Width + offset
	}

	if p.Side().Vertical() {
		origin.X = a.X + k*a.Width - k*f.Width
	} else {
		origin.Y = a.Y + k*a.Height - k*f.Height
	}

	return Result{Origin: origin, Arrow: ArrowFor(p), Placement: p}
}

// WithoutArrow strips the arrow from another strategy's results.
func WithoutArrow(inner Strategy) Strategy {
	return StrategyFunc(func(anchor geometry.Rect, floating geometry.Size) Result {
		res := inner.Compute(anchor, floating)
		res.Arrow = NoArrow
		return res
	})
}
