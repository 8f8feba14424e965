// layout-dump prints the nine handle rectangles for a scene and a static
// rendering of the canvas, without needing a TTY.
//
// Run: GOWORK=off go run ./cmd/layout-dump/ -config scene.yaml -plain
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/wesen/rectedit/internal/config"
	"github.com/wesen/rectedit/internal/editorui"
	"github.com/wesen/rectedit/pkg/rectedit"
)

func main() {
	configPath := flag.String("config", "rectedit.yaml", "scene file; a missing file uses the built-in scene")
	width := flag.Int("width", 80, "canvas width in cells")
	height := flag.Int("height", 30, "canvas height in cells")
	plain := flag.Bool("plain", false, "print without colors")
	scene := flag.Bool("scene", false, "print the effective scene (file plus env overrides) as YAML and exit")
	flag.Parse()

	var err error
	if *scene {
		err = printScene(os.Stdout, *configPath)
	} else {
		err = run(os.Stdout, *configPath, *width, *height, *plain)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, configPath string, width, height int, plain bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	opts := editorui.Options{
		Target:       cfg.Target.Rect(),
		TriggerWidth: cfg.TriggerWidth,
		Clamp:        cfg.Clamp,
	}
	if cfg.Parent != nil {
		parent := cfg.Parent.Rect()
		opts.Parent = &parent
	}
	m, err := editorui.NewModel(opts)
	if err != nil {
		return err
	}

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffc8")).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("id", "handle", "role", "center", "size", "cursor")
	if !plain {
		t = t.BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#1a6a4a"))).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
	}

	layout := m.Ctrl.Layout()
	for i, spec := range m.Ctrl.Handles() {
		r := layout[i]
		t = t.Row(
			fmt.Sprint(i),
			spec.Name(),
			spec.Role.String(),
			fmt.Sprintf("(%g, %g)", r.Position.X, r.Position.Y),
			fmt.Sprintf("%g × %g", r.Size.X, r.Size.Y),
			rectedit.CursorFor(spec).String(),
		)
	}

	target := m.Target()
	_, err = fmt.Fprintf(w, "target center=(%g, %g) size=%g × %g trigger=%g\n\n%s\n\n%s\n",
		target.Position.X, target.Position.Y, target.Size.X, target.Size.Y, m.Ctrl.TriggerWidth(),
		t.String(), m.Snapshot(width, height, plain))
	return err
}

// printScene writes the scene after env overrides as YAML.
func printScene(w io.Writer, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	out, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
