package editorui

import (
	"image"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/rectedit/pkg/rectedit"
)

// handleMouse processes mouse events and returns updated model + command.
//
// Presses and hover only count inside the canvas. Once a drag is running
// the pointer is captured: motion and release are forwarded wherever they
// happen, bound to the pressed handle.
func handleMouse(m Model, msg tea.MouseMsg, canvasRect image.Rectangle) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y

	vp := m.viewport(canvasRect)
	cell := image.Pt(mouse.X-canvasRect.Min.X, mouse.Y-canvasRect.Min.Y)
	world := vp.toWorld(cell)
	inCanvas := image.Pt(mouse.X, mouse.Y).In(canvasRect)
	dragging := m.Ctrl.State() == rectedit.Dragging

	switch msg.(type) {
	case tea.MouseMotionMsg:
		if dragging {
			id := m.Ctrl.Session().Handle
			m.Ctrl.Drag(id, world)
			m.logEvent(id, "Drag", world)
			return m, nil
		}
		m.HoverID = -1
		if inCanvas {
			m.HoverID = m.hitHandle(world)
		}

	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft || !inCanvas {
			return m, nil
		}
		id := m.hitHandle(world)
		if id < 0 {
			return m, nil
		}
		m.scene.dragFrom = world
		m.Ctrl.PointerDown(rectedit.HandleID(id), world)
		m.HoverID = id
		m.logEvent(rectedit.HandleID(id), "PointerDown", world)

	case tea.MouseReleaseMsg:
		if dragging {
			id := m.Ctrl.Session().Handle
			m.Ctrl.PointerUp(id, world)
			m.logEvent(id, "PointerUp", world)
		}
	}

	return m, nil
}

// hitHandle returns the topmost handle under world point p, or -1.
func (m Model) hitHandle(p rectedit.Vec2) int {
	hit, ok := m.scene.hits.HitTest(p)
	if !ok {
		return -1
	}
	return hit.ID
}

func (m Model) logEvent(id rectedit.HandleID, event string, p rectedit.Vec2) {
	spec, _ := m.Ctrl.Handle(id)
	m.log.Printf("%s:%s at (%g,%g)", spec.Name(), event, p.X, p.Y)
}

// viewport returns the world/cell mapping for the canvas region.
func (m Model) viewport(canvasRect image.Rectangle) viewport {
	return viewport{W: canvasRect.Dx(), H: canvasRect.Dy(), CamX: m.CamX, CamY: m.CamY}
}
