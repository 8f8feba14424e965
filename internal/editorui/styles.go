package editorui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/wesen/rectedit/pkg/cellbuf"
	"github.com/wesen/rectedit/pkg/rectedit"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette: green-on-black CRT.
var (
	colorBG  = c("#080e0b")
	panelBG  = c("#1a2a20")
	modalBG  = c("#0a1510")
	accent   = c("#00ffc8")
	dimColor = c("#336655")
	warnText = c("#ff6655")

	toolbarColor = c("#00ffc8")
	footerColor  = c("#666666")
)

// cellbuf style keys for the canvas layer.
const (
	styleBG cellbuf.StyleKey = iota
	styleGrid
	styleAxis
	styleParent
	styleTarget
	styleHandle
	styleHover
	styleActive
	styleTrail
	styleTrailHead
	styleLabel
)

var bufStyles = map[cellbuf.StyleKey]lipgloss.Style{
	styleBG:        lipgloss.NewStyle().Foreground(c("#1a3a2a")).Background(colorBG),
	styleGrid:      lipgloss.NewStyle().Foreground(c("#0e2e20")).Background(colorBG),
	styleAxis:      lipgloss.NewStyle().Foreground(c("#1a4a3a")).Background(colorBG),
	styleParent:    lipgloss.NewStyle().Foreground(c("#ddaa44")).Background(colorBG),
	styleTarget:    lipgloss.NewStyle().Foreground(c("#00d4a0")).Background(colorBG).Bold(true),
	styleHandle:    lipgloss.NewStyle().Foreground(c("#1a6a4a")).Background(colorBG),
	styleHover:     lipgloss.NewStyle().Foreground(c("#00ffee")).Background(c("#0a1a15")),
	styleActive:    lipgloss.NewStyle().Foreground(c("#ffcc00")).Background(c("#12120a")).Bold(true),
	styleTrail:     lipgloss.NewStyle().Foreground(c("#ffee66")).Background(colorBG),
	styleTrailHead: lipgloss.NewStyle().Foreground(c("#ffcc00")).Background(colorBG).Bold(true),
	styleLabel:     lipgloss.NewStyle().Foreground(c("#66ffee")).Background(colorBG),
}

// Chrome styles.
var (
	tbStyle = lipgloss.NewStyle().
		Background(modalBG).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Background(panelBG)

	panelKeyStyle = lipgloss.NewStyle().
			Foreground(c("#ddaa44")).
			Background(panelBG)

	panelValStyle = lipgloss.NewStyle().
			Foreground(accent).
			Background(panelBG)

	panelWarnStyle = lipgloss.NewStyle().
			Foreground(warnText).
			Background(panelBG)

	panelLineStyle = lipgloss.NewStyle().
			Background(panelBG)

	panelSepStyle = lipgloss.NewStyle().
			Foreground(c("#1a4a3a")).
			Background(panelBG)

	modalBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c("#00d4a0")).
			Background(modalBG).
			Width(44).
			Padding(1, 2)
)

// handleRunes is the fill character per handle role when idle.
var handleRunes = map[rectedit.HandleRole]rune{
	rectedit.Move:             '·',
	rectedit.ResizeHorizontal: '░',
	rectedit.ResizeVertical:   '░',
	rectedit.ResizeCorner:     '▓',
}

// cursorGlyphs renders a Cursor in the status panel.
var cursorGlyphs = map[rectedit.Cursor]string{
	rectedit.CursorDefault:            "↖",
	rectedit.CursorMove:               "✥",
	rectedit.CursorResizeHorizontal:   "↔",
	rectedit.CursorResizeVertical:     "↕",
	rectedit.CursorResizeDiagonal:     "⤢",
	rectedit.CursorResizeAntiDiagonal: "⤡",
}
