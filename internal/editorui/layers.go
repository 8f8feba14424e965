package editorui

import (
	"fmt"
	"image"

	"charm.land/lipgloss/v2"

	"github.com/wesen/rectedit/pkg/cellbuf"
	"github.com/wesen/rectedit/pkg/drawutil"
	"github.com/wesen/rectedit/pkg/rectedit"
)

const (
	gridSpacingX = 10
	gridSpacingY = 5
)

// canvasState is what the canvas needs to know about the editor.
type canvasState struct {
	Target    rectedit.Rect
	Parent    rectedit.Rect
	HasParent bool
	Handles   rectedit.HandleSet
	Layout    rectedit.Layout
	HoverID   int
	Session   rectedit.Session
	DragFrom  rectedit.Vec2
}

func (m Model) canvasState() canvasState {
	return canvasState{
		Target:    m.scene.target,
		Parent:    m.scene.parent,
		HasParent: m.scene.hasParent,
		Handles:   m.Ctrl.Handles(),
		Layout:    m.Ctrl.Layout(),
		HoverID:   m.HoverID,
		Session:   m.Ctrl.Session(),
		DragFrom:  m.scene.dragFrom,
	}
}

// drawCanvas renders the grid, axes, parent, handles, target outline and
// drag trail into a fresh buffer of vp's size.
func drawCanvas(st canvasState, vp viewport) *cellbuf.Buffer {
	buf := cellbuf.New(vp.W, vp.H, styleBG)
	if vp.W == 0 || vp.H == 0 {
		return buf
	}

	origin := vp.cellAt(rectedit.V(0, 0))
	drawutil.DrawGrid(buf, origin, gridSpacingX, gridSpacingY, styleGrid)
	drawutil.DrawAxes(buf, origin, styleAxis)

	if st.HasParent {
		buf.DrawBox(vp.cellRect(st.Parent), cellbuf.DoubleBox, styleParent)
	}

	for i, r := range st.Layout {
		spec := st.Handles[i]
		ch, ok := handleRunes[spec.Role]
		if !ok {
			continue
		}
		style := styleHandle
		switch {
		case st.Session.Active && int(st.Session.Handle) == i:
			style = styleActive
		case !st.Session.Active && st.HoverID == i:
			style = styleHover
		case spec.Role == rectedit.Move:
			// The move area is only shown while it is hovered or dragged.
			continue
		}
		buf.FillRect(vp.cellRect(r), ch, style)
	}

	box := cellbuf.LightBox
	if st.Session.Active {
		box = cellbuf.RoundBox
	}
	buf.DrawBox(vp.cellRect(st.Target), box, styleTarget)

	label := fmt.Sprintf("%g×%g", st.Target.Size.X, st.Target.Size.Y)
	at := vp.cellAt(st.Target.Position)
	buf.SetString(at.X-len([]rune(label))/2, at.Y, label, styleLabel)

	if st.Session.Active {
		drawutil.DrawTrail(buf, vp.cellAt(st.DragFrom), vp.cellAt(st.Session.LastPointer), styleTrail, styleTrailHead)
	}
	return buf
}

// buildCanvasLayer renders the canvas into a single background Layer.
func buildCanvasLayer(m Model, region image.Rectangle) *lipgloss.Layer {
	if region.Dx() <= 0 || region.Dy() <= 0 {
		return lipgloss.NewLayer("").X(region.Min.X).Y(region.Min.Y).Z(0).ID("canvas")
	}
	buf := drawCanvas(m.canvasState(), m.viewport(region))
	rendered := buf.Render(bufStyles)
	return lipgloss.NewLayer(rendered).X(region.Min.X).Y(region.Min.Y).Z(1).ID("canvas")
}

// Snapshot renders just the canvas at w×h cells around the camera.
// plain drops the styling.
func (m Model) Snapshot(w, h int, plain bool) string {
	buf := drawCanvas(m.canvasState(), viewport{W: w, H: h, CamX: m.CamX, CamY: m.CamY})
	if plain {
		return buf.PlainString()
	}
	return buf.Render(bufStyles)
}
