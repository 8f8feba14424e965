package editorui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wesen/rectedit/pkg/parentarea"
	"github.com/wesen/rectedit/pkg/rectedit"
	"github.com/wesen/rectedit/pkg/tealayout"
)

const panelWidth = 34

var (
	panelSections = []string{"geometry", "handle", "insets", "help"}
	panelHeights  = []int{7, 6, 7, -1}
)

func title(s string, width int) []string {
	return []string{
		panelTitleStyle.Render(s),
		panelDimStyle.Render(strings.Repeat("─", max(width-2, 0))),
	}
}

func kv(key, val string) string {
	return panelKeyStyle.Render(fmt.Sprintf("  %-8s", key)) + panelValStyle.Render(val)
}

// geometryLines shows the target rect and trigger width.
func geometryLines(m Model, width int) []string {
	t := m.scene.target
	lines := title("TARGET", width)
	return append(lines,
		kv("center", fmt.Sprintf("(%g, %g)", t.Position.X, t.Position.Y)),
		kv("size", fmt.Sprintf("%g × %g", t.Size.X, t.Size.Y)),
		kv("edges", fmt.Sprintf("L%g R%g T%g B%g", t.Left(), t.Right(), t.Top(), t.Bottom())),
		kv("trigger", fmt.Sprintf("%g", m.Ctrl.TriggerWidth())),
	)
}

// handleLines shows the hovered or dragged handle and its cursor.
func handleLines(m Model, width int) []string {
	lines := title("HANDLE", width)
	sess := m.Ctrl.Session()

	id, verb := rectedit.HandleID(m.HoverID), "hover"
	if sess.Active {
		id, verb = sess.Handle, "drag"
	}
	spec, ok := m.Ctrl.Handle(id)
	if !ok {
		return append(lines,
			panelDimStyle.Render("  (none)"),
			kv("state", m.Ctrl.State().String()),
		)
	}
	cur := rectedit.CursorFor(spec)
	return append(lines,
		kv(verb, spec.Name()),
		kv("role", spec.Role.String()),
		kv("cursor", cursorGlyphs[cur]+" "+cur.String()),
		kv("state", m.Ctrl.State().String()),
	)
}

// insetLines shows the free space between target and parent.
func insetLines(m Model, width int) []string {
	lines := title("PARENT", width)
	if !m.scene.hasParent {
		return append(lines, panelDimStyle.Render("  (no parent)"))
	}
	in := parentarea.Blank(m.scene.target, m.scene.parent)
	val := func(v float64) string {
		if v < 0 {
			return panelWarnStyle.Render(fmt.Sprintf("%g", v))
		}
		return panelValStyle.Render(fmt.Sprintf("%g", v))
	}
	clamp := "off"
	if m.scene.clamp {
		clamp = "on"
	}
	return append(lines,
		panelKeyStyle.Render("  left    ")+val(in.Left)+panelKeyStyle.Render("  right ")+val(in.Right),
		panelKeyStyle.Render("  top     ")+val(in.Top)+panelKeyStyle.Render("  bottom ")+val(in.Bottom),
		kv("clamp", clamp),
		scriptLine(m),
	)
}

func scriptLine(m Model) string {
	h := m.scene.script
	if h == nil {
		return kv("script", "none")
	}
	s := fmt.Sprintf("%d calls", h.Calls)
	if h.Failures > 0 {
		return kv("script", s) + panelWarnStyle.Render(fmt.Sprintf(" %d failed", h.Failures))
	}
	return kv("script", s)
}

func helpLines(width int) []string {
	lines := title("HELP", width)
	for _, l := range []string{
		"  drag handles to move/resize",
		"  [w] trigger width",
		"  [g] geometry  [r] reset",
		"  [p] clamp to parent",
		"  [c] center  ←↑↓→ pan",
		"  [esc] cancel drag  [q] quit",
	} {
		lines = append(lines, panelDimStyle.Render(l))
	}
	return lines
}

// buildPanelLayers stacks the panel sections inside region.
func buildPanelLayers(m Model, inner tealayout.Region) []*lipgloss.Layer {
	w := inner.Rect.Dx()
	if w <= 0 || inner.Rect.Dy() <= 0 {
		return nil
	}

	content := map[string][]string{
		"geometry": geometryLines(m, w),
		"handle":   handleLines(m, w),
		"insets":   insetLines(m, w),
		"help":     helpLines(w),
	}

	var layers []*lipgloss.Layer
	for _, r := range inner.Stack(panelSections, panelHeights) {
		layers = append(layers, tealayout.PanelLayer(r, content[r.Name], panelLineStyle, "panel-"+r.Name, 1))
	}
	return layers
}
