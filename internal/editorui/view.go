package editorui

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/rectedit/pkg/tealayout"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// render composes all layers into the final screen string.
func (m Model) render() string {
	comp := lipgloss.NewCompositor(m.layers()...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)
	return canvas.Render()
}

// screenLayout splits the terminal into toolbar, footer, side panel and
// the canvas that gets the rest.
func (m Model) screenLayout() tealayout.Layout {
	return tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("panel", panelWidth).
		Remaining("canvas").
		Build()
}

// layers builds every screen layer for the current state.
func (m Model) layers() []*lipgloss.Layer {
	layout := m.screenLayout()
	canvasRegion := layout.Get("canvas")
	panelRegion := layout.Get("panel")
	toolbar, footer := layout.Get("toolbar"), layout.Get("footer")

	layers := []*lipgloss.Layer{
		tealayout.FillLayer(canvasRegion, bgStyle, "canvas-bg", 0),
		buildCanvasLayer(m, canvasRegion.Rect),
	}
	if !toolbar.Rect.Empty() {
		layers = append(layers,
			tealayout.FillLayer(toolbar, tbStyle, "toolbar-bg", 0),
			tealayout.ToolbarLayer(m.toolbarText(), toolbar.Rect.Dx(), tbStyle),
		)
	}
	// Terminals too short for both bars keep only the toolbar.
	if !footer.Rect.Empty() {
		layers = append(layers,
			tealayout.FillLayer(footer, ftStyle, "footer-bg", 0),
			tealayout.FooterLayer(m.footerText(), footer.Rect.Dx(), footer.Rect.Min.Y, ftStyle),
		)
	}

	if !panelRegion.Rect.Empty() {
		sep, inner := panelRegion.SplitLeft(1)
		layers = append(layers,
			tealayout.FillLayer(panelRegion, panelLineStyle, "panel-bg", 0),
			tealayout.VerticalSeparator(sep, panelSepStyle),
		)
		layers = append(layers, buildPanelLayers(m, inner)...)
	}

	if m.EditOpen {
		layers = append(layers, buildEditModalLayer(m, m.Width, m.Height))
	}

	return layers
}

func (m Model) toolbarText() string {
	clamp := "off"
	if m.scene.clamp {
		clamp = "on"
	}
	return fmt.Sprintf(
		" RECTEDIT │ [w]idth [g]eom [r]eset │ [p] clamp:%s │ ←↑↓→ pan │ [q]uit",
		clamp,
	)
}

func (m Model) footerText() string {
	cr := m.canvasRect()
	w := m.viewport(cr).toWorld(image.Pt(m.MouseX-cr.Min.X, m.MouseY-cr.Min.Y))
	return fmt.Sprintf(
		" Mouse: (%d,%d)  World: (%g,%g)  Cam: (%d,%d)  %s",
		m.MouseX, m.MouseY, w.X, w.Y, m.CamX, m.CamY, m.Ctrl.State(),
	)
}
