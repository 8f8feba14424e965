// Package rectedit is the geometry engine and drag state machine behind a
// nine-handle rectangle editor: one interior move handle, four edge handles
// and four corner handles.
//
// Coordinates are Y-up. A Rect is stored as its center plus its size, and
// sizes are never clamped; a resize that drags an edge past the opposite
// edge produces a negative size, which callers may normalize for display.
package rectedit

import "math"

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{X: v.X * o.X, Y: v.Y * o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Finite reports whether both components are neither NaN nor infinite.
func (v Vec2) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Rect is a rectangle described by its center and size.
type Rect struct {
	Position Vec2 // center
	Size     Vec2
}

// R builds a Rect from center (x, y) and size (w, h).
func R(x, y, w, h float64) Rect {
	return Rect{Position: V(x, y), Size: V(w, h)}
}

// Min returns the corner with the smallest coordinates, after normalizing
// a negative size.
func (r Rect) Min() Vec2 {
	hw, hh := math.Abs(r.Size.X)/2, math.Abs(r.Size.Y)/2
	return V(r.Position.X-hw, r.Position.Y-hh)
}

// Max returns the corner with the largest coordinates, after normalizing
// a negative size.
func (r Rect) Max() Vec2 {
	hw, hh := math.Abs(r.Size.X)/2, math.Abs(r.Size.Y)/2
	return V(r.Position.X+hw, r.Position.Y+hh)
}

// Left, Right, Top and Bottom return the edge coordinates of the
// normalized rectangle (Top is the larger Y).
func (r Rect) Left() float64   { return r.Min().X }
func (r Rect) Right() float64  { return r.Max().X }
func (r Rect) Top() float64    { return r.Max().Y }
func (r Rect) Bottom() float64 { return r.Min().Y }

// Contains reports whether p lies inside the normalized rectangle. Edges
// are inclusive.
func (r Rect) Contains(p Vec2) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}
