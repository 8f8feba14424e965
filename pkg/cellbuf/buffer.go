// Package cellbuf provides a 2D character buffer with per-cell styling
// and run-merged Lipgloss rendering.
//
// Each cell holds a rune and a StyleKey. At render time the caller maps
// StyleKeys to lipgloss.Styles, so the buffer knows nothing about colors.
//
// All runes are assumed to be single-width.
package cellbuf

import "image"

// StyleKey identifies a visual style.
type StyleKey int

// Cell is a single character with an associated style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// Box holds the runes used to outline a rectangle.
type Box struct {
	TL, TR, BL, BR rune
	Horiz, Vert    rune
}

var (
	// LightBox is ┌─┐ style.
	LightBox = Box{TL: '┌', TR: '┐', BL: '└', BR: '┘', Horiz: '─', Vert: '│'}
	// RoundBox is ╭─╮ style.
	RoundBox = Box{TL: '╭', TR: '╮', BL: '╰', BR: '╯', Horiz: '─', Vert: '│'}
	// DoubleBox is ╔═╗ style.
	DoubleBox = Box{TL: '╔', TR: '╗', BL: '╚', BR: '╝', Horiz: '═', Vert: '║'}
)

// New creates a Buffer of the given size filled with spaces in
// defaultStyle. Negative sizes are treated as zero.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	blank := Cell{Ch: ' ', Style: defaultStyle}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
		for x := range b.Cells[y] {
			b.Cells[y][x] = blank
		}
	}
	return b
}

// Bounds returns the buffer rectangle.
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.W, b.H) }

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes one character. Out-of-bounds writes are ignored.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes s starting at (x, y), one cell per rune, clipping at
// the buffer edge.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Set(x+i, y, ch, style)
		i++
	}
}

// FillRect fills r (clipped to the buffer) with ch.
func (b *Buffer) FillRect(r image.Rectangle, ch rune, style StyleKey) {
	r = r.Canon().Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.Cells[y][x] = Cell{Ch: ch, Style: style}
		}
	}
}

// DrawBox outlines r with box runes. Rects thinner than two cells on an
// axis collapse to a single line of Horiz or Vert.
func (b *Buffer) DrawBox(r image.Rectangle, box Box, style StyleKey) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	switch {
	case x0 == x1 && y0 == y1:
		b.Set(x0, y0, box.TL, style)
		return
	case y0 == y1:
		for x := x0; x <= x1; x++ {
			b.Set(x, y0, box.Horiz, style)
		}
		return
	case x0 == x1:
		for y := y0; y <= y1; y++ {
			b.Set(x0, y, box.Vert, style)
		}
		return
	}
	for x := x0 + 1; x < x1; x++ {
		b.Set(x, y0, box.Horiz, style)
		b.Set(x, y1, box.Horiz, style)
	}
	for y := y0 + 1; y < y1; y++ {
		b.Set(x0, y, box.Vert, style)
		b.Set(x1, y, box.Vert, style)
	}
	b.Set(x0, y0, box.TL, style)
	b.Set(x1, y0, box.TR, style)
	b.Set(x0, y1, box.BL, style)
	b.Set(x1, y1, box.BR, style)
}
