package drawutil

import (
	"image"

	"github.com/wesen/rectedit/pkg/cellbuf"
)

// pointChar returns the line character for point i, looking at the next
// point (or the previous one for the last point).
func pointChar(pts []image.Point, i int) rune {
	switch {
	case i < len(pts)-1:
		return LineChar(pts[i+1].Sub(pts[i]))
	case i > 0:
		return LineChar(pts[i].Sub(pts[i-1]))
	}
	return LineChar(image.Point{})
}

// DrawLine draws a Bresenham line from a to b in buffer cells.
func DrawLine(buf *cellbuf.Buffer, a, b image.Point, style cellbuf.StyleKey) {
	pts := Bresenham(a, b)
	for i, p := range pts {
		buf.Set(p.X, p.Y, pointChar(pts, i), style)
	}
}

// DrawTrail draws the path of a drag from `from` to `to`: a dashed line
// (every third point skipped) ending in an arrowhead. A zero-length trail
// draws a single '•'.
func DrawTrail(buf *cellbuf.Buffer, from, to image.Point, lineStyle, arrowStyle cellbuf.StyleKey) {
	pts := Bresenham(from, to)
	if len(pts) == 1 {
		buf.Set(from.X, from.Y, '•', arrowStyle)
		return
	}
	last := len(pts) - 1
	for i, p := range pts[:last] {
		if i%3 != 2 {
			buf.Set(p.X, p.Y, pointChar(pts, i), lineStyle)
		}
	}
	buf.Set(pts[last].X, pts[last].Y, ArrowChar(pts[last].Sub(pts[last-1])), arrowStyle)
}
