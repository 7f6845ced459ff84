package pando

import (
	"math"

	"github.com/gogpu/gg/scene"
)

// Vec2 is a 2D vector used for positions, offsets and deltas.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Size is a negotiated width and height. Either axis of a maximum may be
// +Inf for unbounded (scrollable) content.
type Size struct {
	W, H float64
}

// Unbounded is the loosest possible maximum constraint.
var Unbounded = Size{math.Inf(1), math.Inf(1)}

// Clamp restricts s componentwise into [lo, hi]. NaN components collapse
// to lo.
func (s Size) Clamp(lo, hi Size) Size {
	return Size{clampAxis(s.W, lo.W, hi.W), clampAxis(s.H, lo.H, hi.H)}
}

func clampAxis(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsFinite reports whether both axes are finite.
func (s Size) IsFinite() bool {
	return !math.IsInf(s.W, 0) && !math.IsInf(s.H, 0)
}

// Vec returns the size as a vector.
func (s Size) Vec() Vec2 { return Vec2{s.W, s.H} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Intersect returns the overlap of r and other. The result has zero size
// when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.X+r.Width, other.X+other.Width)
	y1 := math.Min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Area returns Width * Height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Shape returns r as a display-list rectangle.
func (r Rect) Shape() scene.Shape {
	return scene.NewRectShape(float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height))
}
