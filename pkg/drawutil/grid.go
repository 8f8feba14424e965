package drawutil

import (
	"image"

	"github.com/wesen/rectedit/pkg/cellbuf"
)

// DrawGrid puts a '·' on every cell whose offset from origin is a
// multiple of (spacingX, spacingY). origin is the buffer cell where the
// world origin lands; it may lie outside the buffer.
func DrawGrid(buf *cellbuf.Buffer, origin image.Point, spacingX, spacingY int, style cellbuf.StyleKey) {
	for r := 0; r < buf.H; r++ {
		if mod(r-origin.Y, spacingY) != 0 {
			continue
		}
		for c := 0; c < buf.W; c++ {
			if mod(c-origin.X, spacingX) == 0 {
				buf.Set(c, r, '·', style)
			}
		}
	}
}

// DrawAxes draws the world X and Y axes through origin, with a '┼' where
// they cross. Axes outside the buffer are skipped.
func DrawAxes(buf *cellbuf.Buffer, origin image.Point, style cellbuf.StyleKey) {
	if origin.Y >= 0 && origin.Y < buf.H {
		DrawLine(buf, image.Pt(0, origin.Y), image.Pt(buf.W-1, origin.Y), style)
	}
	if origin.X >= 0 && origin.X < buf.W {
		DrawLine(buf, image.Pt(origin.X, 0), image.Pt(origin.X, buf.H-1), style)
	}
	buf.Set(origin.X, origin.Y, '┼', style)
}

// mod returns a non-negative modulus (Go's % can return negative for negative operands).
func mod(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
