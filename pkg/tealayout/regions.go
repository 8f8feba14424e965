// Package tealayout computes named screen regions for the editor (toolbar,
// footer, side panel, canvas) and builds the chrome layers that fill them.
package tealayout

import "image"

// Region is a named rectangular area of the terminal.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Layout holds the computed regions for a given terminal size.
type Layout struct {
	TermW, TermH int
	Regions      map[string]Region
}

// Get returns the region with the given name, or a zero Region.
func (l Layout) Get(name string) Region {
	return l.Regions[name]
}

// SplitLeft cuts n columns off the left of the region. The left part
// keeps the region's name with a "-left" suffix. Either part may be empty.
func (r Region) SplitLeft(n int) (left, rest Region) {
	x := min(r.Rect.Min.X+max(n, 0), r.Rect.Max.X)
	left = Region{Name: r.Name + "-left", Rect: image.Rect(r.Rect.Min.X, r.Rect.Min.Y, x, r.Rect.Max.Y)}
	rest = Region{Name: r.Name, Rect: image.Rect(x, r.Rect.Min.Y, r.Rect.Max.X, r.Rect.Max.Y)}
	if left.Rect.Empty() {
		left.Rect = image.Rectangle{}
	}
	if rest.Rect.Empty() {
		rest.Rect = image.Rectangle{}
	}
	return left, rest
}

// Stack splits the region into consecutive rows of the given heights,
// top to bottom. A height of -1 takes whatever is left (at most one such
// entry is honored; later ones get zero). Rows that run past the bottom
// are truncated.
func (r Region) Stack(names []string, heights []int) []Region {
	fixed := 0
	for _, h := range heights {
		if h > 0 {
			fixed += h
		}
	}
	rest := max(r.Rect.Dy()-fixed, 0)

	out := make([]Region, len(names))
	y := r.Rect.Min.Y
	for i, name := range names {
		h := 0
		if i < len(heights) {
			h = heights[i]
		}
		if h < 0 {
			h, rest = rest, 0
		}
		y1 := min(y+h, r.Rect.Max.Y)
		rect := image.Rect(r.Rect.Min.X, y, r.Rect.Max.X, y1)
		if rect.Empty() {
			rect = image.Rectangle{}
		}
		out[i] = Region{Name: name, Rect: rect}
		y = y1
	}
	return out
}

// LayoutBuilder accumulates fixed regions and computes the remainder.
type LayoutBuilder struct {
	termW, termH int
	top, bottom  int // rows consumed from top/bottom
	right        int // columns consumed from right
	regions      []Region
}

// NewLayoutBuilder creates a builder for the given terminal size.
func NewLayoutBuilder(termW, termH int) *LayoutBuilder {
	return &LayoutBuilder{termW: termW, termH: termH}
}

// span builds a rectangle from raw corners. Unlike image.Rect it does not
// swap inverted corners, so Build can tell they are degenerate.
func span(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}

// TopFixed reserves rows from the top. Returns the builder for chaining.
func (b *LayoutBuilder) TopFixed(name string, height int) *LayoutBuilder {
	y := b.top
	b.regions = append(b.regions, Region{
		Name: name,
		Rect: span(0, y, b.termW, y+height),
	})
	b.top += height
	return b
}

// BottomFixed reserves rows from the bottom, never above the rows already
// taken from the top. Returns the builder for chaining.
func (b *LayoutBuilder) BottomFixed(name string, height int) *LayoutBuilder {
	y1 := b.termH - b.bottom
	b.regions = append(b.regions, Region{
		Name: name,
		Rect: span(0, max(y1-height, b.top), b.termW, y1),
	})
	b.bottom += height
	return b
}

// RightFixed reserves columns from the right, spanning the area between
// top and bottom fixed regions. A terminal narrower than width gives the
// region whatever columns are left. Returns the builder for chaining.
func (b *LayoutBuilder) RightFixed(name string, width int) *LayoutBuilder {
	x1 := b.termW - b.right
	b.regions = append(b.regions, Region{
		Name: name,
		Rect: span(max(x1-width, 0), b.top, x1, b.termH-b.bottom),
	})
	b.right += width
	return b
}

// Remaining assigns whatever rectangle is left after fixed allocations.
// If the remaining area is degenerate (negative width or height), an
// empty rectangle is used.
func (b *LayoutBuilder) Remaining(name string) *LayoutBuilder {
	x1 := b.termW - b.right
	y1 := b.termH - b.bottom
	var rect image.Rectangle
	if x1 > 0 && y1 > b.top {
		rect = image.Rect(0, b.top, x1, y1)
	}
	b.regions = append(b.regions, Region{
		Name: name,
		Rect: rect,
	})
	return b
}

// Build computes and returns the final Layout.
func (b *LayoutBuilder) Build() Layout {
	l := Layout{
		TermW:   b.termW,
		TermH:   b.termH,
		Regions: make(map[string]Region, len(b.regions)),
	}
	screen := image.Rect(0, 0, max(b.termW, 0), max(b.termH, 0))
	for _, r := range b.regions {
		// Degenerate regions (min >= max on either axis) become empty;
		// the rest are clipped to the terminal.
		if r.Rect.Min.X >= r.Rect.Max.X || r.Rect.Min.Y >= r.Rect.Max.Y {
			r.Rect = image.Rectangle{}
		} else {
			r.Rect = r.Rect.Intersect(screen)
		}
		l.Regions[r.Name] = r
	}
	return l
}
