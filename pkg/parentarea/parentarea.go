// Package parentarea relates an edited rectangle to the parent area it
// lives in: keeping it inside the parent, and measuring the free space
// left on each side.
package parentarea

import (
	"math"

	"github.com/wesen/rectedit/pkg/rectedit"
)

// Insets is the free space between a target and its parent on each side.
// A negative value means the target crosses that parent edge.
type Insets struct {
	Left, Right, Top, Bottom float64
}

// Blank measures the distance from each target edge to the matching
// parent edge. Both rects are normalized first.
func Blank(target, parent rectedit.Rect) Insets {
	return Insets{
		Left:   target.Left() - parent.Left(),
		Right:  parent.Right() - target.Right(),
		Top:    parent.Top() - target.Top(),
		Bottom: target.Bottom() - parent.Bottom(),
	}
}

// Clamp returns target moved, and shrunk when larger than parent, so that
// it lies inside parent. A negative target size is normalized. It has the
// signature of rectedit.Hooks.ConstrainToParent.
func Clamp(target, parent rectedit.Rect) rectedit.Rect {
	pw, ph := math.Abs(parent.Size.X), math.Abs(parent.Size.Y)
	w := math.Min(math.Abs(target.Size.X), pw)
	h := math.Min(math.Abs(target.Size.Y), ph)

	lo, hi := parent.Min(), parent.Max()
	x := clamp(target.Position.X, lo.X+w/2, hi.X-w/2)
	y := clamp(target.Position.Y, lo.Y+h/2, hi.Y-h/2)
	return rectedit.R(x, y, w, h)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
