package editorui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"

	"github.com/wesen/rectedit/pkg/rectedit"
	"github.com/wesen/rectedit/pkg/tealayout"
)

// editLabels are the field labels per modal kind.
var editLabels = map[editKind][]string{
	editTriggerWidth: {"Trigger width"},
	editGeometry:     {"Center X", "Center Y", "Width", "Height"},
}

var editTitles = map[editKind]string{
	editTriggerWidth: "HANDLE THICKNESS",
	editGeometry:     "TARGET GEOMETRY",
}

// openEditModal opens the modal prefilled with the current values. A drag
// in progress is dropped, since the modal swallows its release.
func (m Model) openEditModal(kind editKind) (tea.Model, tea.Cmd) {
	m.Ctrl.Reset()
	var values []float64
	switch kind {
	case editTriggerWidth:
		values = []float64{m.Ctrl.TriggerWidth()}
	case editGeometry:
		t := m.scene.target
		values = []float64{t.Position.X, t.Position.Y, t.Size.X, t.Size.Y}
	}

	m.EditOpen = true
	m.EditKind = kind
	m.EditFocus = 0
	m.EditErr = ""
	m.EditFields = make([]textinput.Model, len(values))
	for i, v := range values {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 16
		in.SetValue(strconv.FormatFloat(v, 'g', -1, 64))
		m.EditFields[i] = in
	}

	cmd := m.EditFields[0].Focus()
	return m, cmd
}

// handleEditKeys processes keys when the edit modal is open.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.EditOpen = false
		return m, nil

	case "enter":
		if err := m.applyEdit(); err != nil {
			m.EditErr = err.Error()
			return m, nil
		}
		m.EditOpen = false
		return m, nil

	case "tab", "shift+tab":
		if len(m.EditFields) < 2 {
			return m, nil
		}
		step := 1
		if msg.String() == "shift+tab" {
			step = len(m.EditFields) - 1
		}
		m.EditFields[m.EditFocus].Blur()
		m.EditFocus = (m.EditFocus + step) % len(m.EditFields)
		cmd := m.EditFields[m.EditFocus].Focus()
		return m, cmd

	default:
		var cmd tea.Cmd
		m.EditFields[m.EditFocus], cmd = m.EditFields[m.EditFocus].Update(msg)
		return m, cmd
	}
}

// applyEdit parses the fields and applies them. Nothing changes on error.
func (m Model) applyEdit() error {
	values := make([]float64, len(m.EditFields))
	labels := editLabels[m.EditKind]
	for i, in := range m.EditFields {
		v, err := strconv.ParseFloat(strings.TrimSpace(in.Value()), 64)
		if err != nil {
			return fmt.Errorf("%s: not a number", labels[i])
		}
		values[i] = v
	}

	switch m.EditKind {
	case editTriggerWidth:
		if err := m.Ctrl.SetTriggerWidth(values[0]); err != nil {
			return err
		}
		m.log.Printf("trigger width: %g", values[0])

	case editGeometry:
		r := rectedit.R(values[0], values[1], values[2], values[3])
		if !r.Position.Finite() || !r.Size.Finite() {
			return fmt.Errorf("geometry must be finite")
		}
		m.Ctrl.Reset()
		m.scene.target = r
		m.Ctrl.Refresh()
		m.log.Printf("geometry: pos=(%g,%g) size=(%g,%g)", r.Position.X, r.Position.Y, r.Size.X, r.Size.Y)
	}
	return nil
}

// buildEditModalLayer renders the edit modal as a centered Z=100 Layer.
func buildEditModalLayer(m Model, screenW, screenH int) *lipgloss.Layer {
	titleStyle := lipgloss.NewStyle().
		Foreground(accent).
		Background(modalBG).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(c("#ddaa44")).
		Background(modalBG)

	hintStyle := lipgloss.NewStyle().
		Foreground(dimColor).
		Background(modalBG).
		Italic(true)

	errStyle := lipgloss.NewStyle().
		Foreground(warnText).
		Background(modalBG)

	lines := []string{titleStyle.Render("  EDIT: " + editTitles[m.EditKind]), ""}
	labels := editLabels[m.EditKind]
	for i, in := range m.EditFields {
		focus := "  "
		if i == m.EditFocus {
			focus = "▸ "
		}
		lines = append(lines,
			labelStyle.Render(focus+labels[i]+":"),
			"  "+in.View(),
		)
	}
	lines = append(lines, "")
	if m.EditErr != "" {
		lines = append(lines, errStyle.Render("  "+m.EditErr), "")
	}
	hint := "  [enter] apply  [esc] cancel"
	if len(m.EditFields) > 1 {
		hint = "  [tab] next " + hint[2:]
	}
	lines = append(lines, hintStyle.Render(hint))

	return tealayout.ModalLayer("edit-modal", strings.Join(lines, "\n"), screenW, screenH, modalBoxStyle)
}
