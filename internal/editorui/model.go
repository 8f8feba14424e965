// Package editorui is the terminal front end of the rectangle editor: it
// draws the target, its parent and the nine handles, and feeds mouse
// input to a rectedit.Controller.
package editorui

import (
	"fmt"
	"io"
	"log"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"

	"github.com/wesen/rectedit/internal/scripthook"
	"github.com/wesen/rectedit/pkg/hitlist"
	"github.com/wesen/rectedit/pkg/parentarea"
	"github.com/wesen/rectedit/pkg/rectedit"
)

// Options configures a new Model.
type Options struct {
	Target       rectedit.Rect
	Parent       *rectedit.Rect
	TriggerWidth float64
	Clamp        bool
	Script       *scripthook.Hook
	Logger       *log.Logger
}

// handleBox is a handle rect stored in the hit list.
type handleBox struct {
	ID rectedit.HandleID
	R  rectedit.Rect
}

// Bounds implements hitlist.Spatial.
func (h handleBox) Bounds() rectedit.Rect { return h.R }

// scene is the state shared by every copy of Model. The controller holds
// pointers into it.
type scene struct {
	target  rectedit.Rect
	initial rectedit.Rect
	parent  rectedit.Rect

	hasParent bool
	clamp     bool
	script    *scripthook.Hook

	hits     *hitlist.List[handleBox]
	dragFrom rectedit.Vec2
	lastRole rectedit.HandleRole
	drags    int
}

// constrain is installed as the controller's ConstrainToParent hook. The
// script runs first, then the clamp.
func (s *scene) constrain(target, parent rectedit.Rect) rectedit.Rect {
	if s.script != nil {
		target = s.script.Constrain(target, parent)
	}
	if s.clamp {
		target = parentarea.Clamp(target, parent)
	}
	return target
}

// editKind selects what the edit modal changes.
type editKind int

const (
	editTriggerWidth editKind = iota
	editGeometry
)

// Model is the main application state.
type Model struct {
	Width, Height  int
	MouseX, MouseY int
	CamX, CamY     int
	HoverID        int // -1 when no handle is under the mouse

	Ctrl  *rectedit.Controller
	scene *scene
	log   *log.Logger

	// Edit modal state
	EditOpen   bool
	EditKind   editKind
	EditFields []textinput.Model
	EditFocus  int
	EditErr    string
}

// NewModel builds the controller for opts.Target and wires the hit list,
// constraint hook and logging to it.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &scene{
		target:  opts.Target,
		initial: opts.Target,
		clamp:   opts.Clamp,
		script:  opts.Script,
		hits:    hitlist.New[handleBox](),
	}
	if opts.Parent != nil {
		s.parent = *opts.Parent
		s.hasParent = true
	}
	if s.clamp && !s.hasParent {
		return Model{}, fmt.Errorf("clamp needs a parent rect")
	}
	if s.script != nil && !s.hasParent {
		return Model{}, fmt.Errorf("constraint script needs a parent rect")
	}

	ctrl := rectedit.NewController()
	ctrl.Hooks = rectedit.Hooks{
		ConstrainToParent: s.constrain,
		OnDragStart: func(role rectedit.HandleRole) {
			s.lastRole = role
			s.drags++
			logger.Printf("drag start: %s", role)
		},
		OnDragEnd: func() {
			t := s.target
			logger.Printf("drag end: pos=(%g,%g) size=(%g,%g)", t.Position.X, t.Position.Y, t.Size.X, t.Size.Y)
		},
	}
	if s.hasParent {
		ctrl.SetParent(&s.parent)
	}
	ctrl.Subscribe(func(_ rectedit.Rect, layout rectedit.Layout) {
		s.hits.Clear()
		for id, r := range layout {
			s.hits.Push(id, handleBox{ID: rectedit.HandleID(id), R: r})
		}
	})
	if _, err := ctrl.Configure(&s.target, opts.TriggerWidth, rectedit.StandardHandles()); err != nil {
		return Model{}, fmt.Errorf("configure controller: %w", err)
	}

	return Model{
		HoverID: -1,
		Ctrl:    ctrl,
		scene:   s,
		log:     logger,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Target returns the current target rect.
func (m Model) Target() rectedit.Rect { return m.scene.target }

// Parent returns the parent rect, if any.
func (m Model) Parent() (rectedit.Rect, bool) { return m.scene.parent, m.scene.hasParent }

// Clamp reports whether the target is kept inside the parent.
func (m Model) Clamp() bool { return m.scene.clamp }
