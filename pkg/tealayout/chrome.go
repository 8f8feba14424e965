package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// ToolbarLayer creates a Layer for a toolbar at the top of the screen.
func ToolbarLayer(content string, width int, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(width).Render(content)
	return lipgloss.NewLayer(rendered).X(0).Y(0).Z(0).ID("toolbar")
}

// FooterLayer creates a Layer for a footer at a given y position.
func FooterLayer(content string, width, y int, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(width).Render(content)
	return lipgloss.NewLayer(rendered).X(0).Y(y).Z(0).ID("footer")
}

// VerticalSeparator draws a column of │ down the left edge of r.
func VerticalSeparator(r Region, style lipgloss.Style) *lipgloss.Layer {
	x, y, height := r.Rect.Min.X, r.Rect.Min.Y, r.Rect.Dy()
	if height <= 0 {
		return lipgloss.NewLayer("").X(x).Y(y).Z(1).ID("separator")
	}
	lines := make([]string, height)
	for i := range lines {
		lines[i] = "│"
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(1).ID("separator")
}

// ModalLayer renders content inside boxStyle and centers it on the
// terminal as a Z=100 overlay with the given id.
func ModalLayer(id, content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	w := lipgloss.Width(rendered)
	h := lipgloss.Height(rendered)
	cx := (termW - w) / 2
	cy := (termH - h) / 2
	if cx < 0 {
		cx = 0
	}
	if cy < 0 {
		cy = 0
	}
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID(id)
}

// FillLayer creates a background Layer covering the region.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w := r.Rect.Dx()
	h := r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}

// PanelLayer renders lines top-down into the region. Every line is
// right-padded to the region width with padStyle so the background stays
// continuous; extra lines are dropped and missing ones are blank.
func PanelLayer(r Region, lines []string, padStyle lipgloss.Style, id string, z int) *lipgloss.Layer {
	w, h := r.Rect.Dx(), r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	out := make([]string, h)
	for i := range out {
		var s string
		if i < len(lines) {
			s = lines[i]
		}
		if pad := w - lipgloss.Width(s); pad > 0 {
			s += padStyle.Render(strings.Repeat(" ", pad))
		}
		out[i] = s
	}
	return lipgloss.NewLayer(strings.Join(out, "\n")).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}
