// Package drawutil provides terminal drawing primitives for the editor
// canvas: Bresenham lines, direction-aware line and arrow characters, the
// background grid and world axes, and the dashed drag trail.
package drawutil

import "image"

// Bresenham returns the cells on the segment from a to b, both included.
func Bresenham(a, b image.Point) []image.Point {
	d := b.Sub(a)
	step := image.Pt(sign(d.X), sign(d.Y))
	dx, dy := abs(d.X), abs(d.Y)

	pts := make([]image.Point, 0, max(dx, dy)+1)
	p, e := a, dx-dy
	// A diagonal step advances both axes, so max(dx,dy)+1 points suffice.
	for range max(dx, dy) + 1 {
		pts = append(pts, p)
		if p == b {
			break
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			p.X += step.X
		}
		if e2 < dx {
			e += dx
			p.Y += step.Y
		}
	}
	return pts
}

// LineChar is the box-drawing rune for a segment heading along d.
// Y grows downward, so (1,1) is '\'.
func LineChar(d image.Point) rune {
	switch {
	case d.X == 0:
		return '│'
	case d.Y == 0:
		return '─'
	case (d.X > 0) == (d.Y > 0):
		return '\\'
	default:
		return '/'
	}
}

// ArrowChar points along the dominant axis of d.
func ArrowChar(d image.Point) rune {
	if abs(d.Y) > abs(d.X) {
		if d.Y > 0 {
			return '▼'
		}
		return '▲'
	}
	if d.X > 0 {
		return '►'
	}
	return '◄'
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
