// Package config loads the editor scene: the rectangle being edited, the
// parent area, handle thickness and optional constraint script.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wesen/rectedit/pkg/rectedit"
)

const (
	defaultTriggerWidth = 1.0
	defaultTargetW      = 30
	defaultTargetH      = 12
	defaultParentW      = 70
	defaultParentH      = 26
)

// RectSpec is a rectangle in the scene file: center and size.
type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Rect converts to the editor's rect type.
func (r RectSpec) Rect() rectedit.Rect { return rectedit.R(r.X, r.Y, r.W, r.H) }

// Config holds scene and runtime settings.
type Config struct {
	Target       RectSpec  `yaml:"target"`
	Parent       *RectSpec `yaml:"parent,omitempty"`
	TriggerWidth float64   `yaml:"trigger_width"`
	Clamp        bool      `yaml:"clamp"`
	Script       string    `yaml:"script,omitempty"`

	// DebugLog is a file path for debug logging; empty disables it.
	DebugLog string `yaml:"-"`
	// Dir is the directory of the scene file, used to resolve Script.
	Dir string `yaml:"-"`
}

// Default returns the built-in scene.
func Default() Config {
	return Config{
		Target:       RectSpec{W: defaultTargetW, H: defaultTargetH},
		Parent:       &RectSpec{W: defaultParentW, H: defaultParentH},
		TriggerWidth: defaultTriggerWidth,
	}
}

// Load reads the scene file at path (an empty path or a missing file
// yields defaults), applies RECTEDIT_* environment overrides, and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read scene: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse scene %s: %w", path, err)
			}
			cfg.Dir = filepath.Dir(path)
		}
	}

	tw, err := envFloat("RECTEDIT_TRIGGER_WIDTH", cfg.TriggerWidth)
	if err != nil {
		return Config{}, err
	}
	cfg.TriggerWidth = tw
	clamp, err := envBool("RECTEDIT_CLAMP", cfg.Clamp)
	if err != nil {
		return Config{}, err
	}
	cfg.Clamp = clamp
	cfg.Script = envString("RECTEDIT_SCRIPT", cfg.Script)
	cfg.DebugLog = envString("RECTEDIT_DEBUG", cfg.DebugLog)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all numbers are usable.
func (c Config) Validate() error {
	if c.TriggerWidth < 0 || !finite(c.TriggerWidth) {
		return fmt.Errorf("trigger_width must be a finite number >= 0, got %v", c.TriggerWidth)
	}
	if !c.Target.finite() {
		return errors.New("target must have finite x, y, w, h")
	}
	if c.Parent != nil && !c.Parent.finite() {
		return errors.New("parent must have finite x, y, w, h")
	}
	if c.Clamp && c.Parent == nil {
		return errors.New("clamp requires a parent rect")
	}
	if c.Script != "" && c.Parent == nil {
		return errors.New("script requires a parent rect")
	}
	return nil
}

// ScriptPath resolves Script relative to the scene file directory.
func (c Config) ScriptPath() string {
	if c.Script == "" || filepath.IsAbs(c.Script) || c.Dir == "" {
		return c.Script
	}
	return filepath.Join(c.Dir, c.Script)
}

// Marshal renders the scene as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (r RectSpec) finite() bool {
	return finite(r.X) && finite(r.Y) && finite(r.W) && finite(r.H)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envFloat returns a float env override when present, otherwise a default.
func envFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true, nil
	case "0", "false", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
}
