// Package geometry holds the value types shared by placement, hit testing and
// painting. Coordinates are terminal cells in canvas space; fractional values
// are kept until a node is painted.
package geometry

import (
	"fmt"
	"math"
)

// Point is a position in canvas coordinates.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Round snaps the point to the nearest cell.
func (p Point) Round() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Size is a width/height pair. Negative components are treated as zero.
type Size struct {
	Width  float64
	Height float64
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Normalize clamps negative or NaN dimensions to zero.
func (s Size) Normalize() Size {
	return Size{Width: nonNegative(s.Width), Height: nonNegative(s.Height)}
}

// Empty reports whether either dimension is zero after normalisation.
func (s Size) Empty() bool {
	n := s.Normalize()
	return n.Width == 0 || n.Height == 0
}

// Rect is an immutable axis-aligned rectangle.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// FromOrigin builds a rectangle from an origin and a size.
func FromOrigin(origin Point, size Size) Rect {
	size = size.Normalize()
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Normalize clamps negative dimensions to zero, keeping the origin.
func (r Rect) Normalize() Rect {
	r.Width = nonNegative(r.Width)
	r.Height = nonNegative(r.Height)
	return r
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}.Normalize()
}

// Right returns the x coordinate one past the last column.
func (r Rect) Right() float64 {
	return r.X + nonNegative(r.Width)
}

// Bottom returns the y coordinate one past the last row.
func (r Rect) Bottom() float64 {
	return r.Y + nonNegative(r.Height)
}

// Center returns the midpoint.
func (r Rect) Center() Point {
	n := r.Normalize()
	return Point{X: n.X + n.Width/2, Y: n.Y + n.Height/2}
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.Size().Empty()
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive so adjacent rectangles never both claim a cell.
func (r Rect) Contains(p Point) bool {
	n := r.Normalize()
	return p.X >= n.X && p.X < n.X+n.Width && p.Y >= n.Y && p.Y < n.Y+n.Height
}

// ContainsRect reports whether o lies entirely within r.
func (r Rect) ContainsRect(o Rect) bool {
	n, o := r.Normalize(), o.Normalize()
	return o.X >= n.X && o.Y >= n.Y && o.Right() <= n.Right() && o.Bottom() <= n.Bottom()
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("{x:%g y:%g w:%g h:%g}", r.X, r.Y, r.Width, r.Height)
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
