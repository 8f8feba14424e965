package editorui

import (
	"image"
	"math"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/rectedit/pkg/parentarea"
	"github.com/wesen/rectedit/pkg/rectedit"
)

const panStep = 3

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		if m.EditOpen {
			return m.handleEditKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		if m.EditOpen {
			return m, nil
		}
		return handleMouse(m, msg, m.canvasRect())
	}

	return m, nil
}

// handleKeys processes keyboard input.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Camera panning; world Y points up.
	case "up":
		m.CamY += panStep
	case "down":
		m.CamY -= panStep
	case "left":
		m.CamX -= panStep
	case "right":
		m.CamX += panStep
	case "c":
		t := m.scene.target
		m.CamX, m.CamY = int(math.Round(t.Position.X)), int(math.Round(t.Position.Y))

	case "w":
		return m.openEditModal(editTriggerWidth)
	case "g":
		return m.openEditModal(editGeometry)

	case "p":
		if !m.scene.hasParent {
			return m, nil
		}
		m.scene.clamp = !m.scene.clamp
		if m.scene.clamp && m.Ctrl.State() == rectedit.Idle {
			m.scene.target = parentarea.Clamp(m.scene.target, m.scene.parent)
			m.Ctrl.Refresh()
		}
		m.log.Printf("clamp: %v", m.scene.clamp)

	case "r":
		m.Ctrl.Reset()
		m.scene.target = m.scene.initial
		m.Ctrl.Refresh()
		m.log.Printf("target reset")

	case "esc", "escape":
		if m.Ctrl.State() == rectedit.Dragging {
			m.Ctrl.Reset()
			m.log.Printf("drag cancelled")
		}
	}

	return m, nil
}

// canvasRect is the screen area the world is drawn into.
func (m Model) canvasRect() image.Rectangle {
	return m.screenLayout().Get("canvas").Rect
}
