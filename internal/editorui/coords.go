package editorui

import (
	"image"
	"math"

	"github.com/wesen/rectedit/pkg/rectedit"
)

// viewport maps between world units (Y up) and canvas cells (Y down).
// One world unit is one cell. The camera point lands on the middle cell.
type viewport struct {
	W, H       int
	CamX, CamY int
}

func (v viewport) center() (int, int) { return v.W / 2, v.H / 2 }

// toCanvas returns the continuous canvas position of a world point.
func (v viewport) toCanvas(p rectedit.Vec2) (x, y float64) {
	cx, cy := v.center()
	return p.X - float64(v.CamX) + float64(cx), -(p.Y - float64(v.CamY)) + float64(cy)
}

// cellAt returns the cell containing world point p.
func (v viewport) cellAt(p rectedit.Vec2) image.Point {
	x, y := v.toCanvas(p)
	return image.Pt(int(math.Floor(x)), int(math.Floor(y)))
}

// toWorld returns the world position of the center of cell pt.
func (v viewport) toWorld(pt image.Point) rectedit.Vec2 {
	cx, cy := v.center()
	return rectedit.V(
		float64(pt.X-cx+v.CamX)+0.5,
		-(float64(pt.Y-cy)+0.5)+float64(v.CamY),
	)
}

// cellRect returns the cells covered by a world rect. Edges round to the
// nearest cell boundary; rects thinner than half a cell come out empty.
func (v viewport) cellRect(r rectedit.Rect) image.Rectangle {
	lo, hi := r.Min(), r.Max()
	x0, y0 := v.toCanvas(rectedit.V(lo.X, hi.Y))
	x1, y1 := v.toCanvas(rectedit.V(hi.X, lo.Y))
	return image.Rect(
		int(math.Round(x0)), int(math.Round(y0)),
		int(math.Round(x1)), int(math.Round(y1)),
	)
}
