// rectedit is a terminal editor for one rectangle: drag its edges, corners
// or body with the mouse to resize and move it.
//
// Run: GOWORK=off go run ./cmd/rectedit/ -config scene.yaml
//
// Set RECTEDIT_DEBUG=/tmp/rectedit.log to log pointer events.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/rectedit/internal/config"
	"github.com/wesen/rectedit/internal/editorui"
	"github.com/wesen/rectedit/internal/scripthook"
)

func main() {
	configPath := flag.String("config", "rectedit.yaml", "scene file; a missing file uses the built-in scene")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// The alt screen owns stdout, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "rectedit")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	}
	logger := log.Default()

	m, err := newModel(cfg, logger)
	if err != nil {
		return err
	}
	logger.Printf("scene %s: target=%+v trigger=%g clamp=%v", configPath, m.Target(), cfg.TriggerWidth, cfg.Clamp)

	_, err = tea.NewProgram(m).Run()
	return err
}

// newModel builds the editor for cfg, loading its constraint script.
func newModel(cfg config.Config, logger *log.Logger) (editorui.Model, error) {
	opts := editorui.Options{
		Target:       cfg.Target.Rect(),
		TriggerWidth: cfg.TriggerWidth,
		Clamp:        cfg.Clamp,
		Logger:       logger,
	}
	if cfg.Parent != nil {
		parent := cfg.Parent.Rect()
		opts.Parent = &parent
	}
	if path := cfg.ScriptPath(); path != "" {
		hook, err := scripthook.Load(path, logger)
		if err != nil {
			return editorui.Model{}, err
		}
		opts.Script = hook
	}
	return editorui.NewModel(opts)
}
