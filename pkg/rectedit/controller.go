package rectedit

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoTarget is returned by Configure when target is nil.
	ErrNoTarget = errors.New("rectedit: no target rect")
	// ErrTriggerWidth is returned for a negative or non-finite trigger width.
	ErrTriggerWidth = errors.New("rectedit: invalid trigger width")
)

// State is the drag state of a Controller.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "Dragging"
	}
	return "Idle"
}

// Session is a snapshot of the live press-drag-release cycle.
type Session struct {
	Active      bool
	Handle      HandleID
	LastPointer Vec2
}

// Observer receives the target and the recomputed handle layout.
type Observer func(target Rect, handles Layout)

// Hooks are optional collaborators. Nil fields are skipped.
type Hooks struct {
	// ConstrainToParent may adjust the target after each drag mutation.
	// It only runs when a parent has been set.
	ConstrainToParent func(target, parent Rect) Rect
	OnDragStart       func(role HandleRole)
	OnDragEnd         func()
}

type subscription struct {
	id int
	fn Observer
}

// Controller turns pointer events on handles into mutations of a target
// Rect and keeps the handle layout in sync with it.
//
// Events that arrive before Configure, name an unknown handle, or carry a
// non-finite position are ignored. Nothing here blocks or locks; all calls
// are expected from the goroutine that delivers input.
type Controller struct {
	Hooks Hooks

	target       *Rect
	parent       *Rect
	triggerWidth float64
	handles      HandleSet
	layout       Layout

	subs    []subscription
	nextSub int

	state       State
	active      HandleID
	lastPointer Vec2
}

// NewController returns an unconfigured controller.
func NewController() *Controller {
	return &Controller{}
}

// Configure binds the controller to target, computes the initial layout,
// notifies observers and returns the layout. Any drag in progress is
// dropped.
//
// Configure is the only place the controller reports errors: a nil target
// (ErrNoTarget) or a negative or non-finite trigger width (ErrTriggerWidth)
// is a setup mistake by the caller. Degenerate geometry is not; zero or
// negative target sizes are accepted and laid out as they are.
func (c *Controller) Configure(target *Rect, triggerWidth float64, handles HandleSet) (Layout, error) {
	if target == nil {
		return Layout{}, ErrNoTarget
	}
	if triggerWidth < 0 || math.IsNaN(triggerWidth) || math.IsInf(triggerWidth, 0) {
		return Layout{}, fmt.Errorf("%w: %v", ErrTriggerWidth, triggerWidth)
	}
	c.target = target
	c.triggerWidth = triggerWidth
	c.handles = handles
	c.state = Idle
	c.active = 0
	c.lastPointer = Vec2{}
	c.relayout()
	return c.layout, nil
}

// Configured reports whether Configure has succeeded.
func (c *Controller) Configured() bool { return c.target != nil }

// Subscribe registers fn to run after every layout change. Observers run in
// subscription order. The returned func removes the subscription.
func (c *Controller) Subscribe(fn Observer) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	c.nextSub++
	id := c.nextSub
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// SetParent sets the rect passed to Hooks.ConstrainToParent. Nil disables
// the constraint.
func (c *Controller) SetParent(parent *Rect) { c.parent = parent }

// Parent returns the parent rect, if any.
func (c *Controller) Parent() (Rect, bool) {
	if c.parent == nil {
		return Rect{}, false
	}
	return *c.parent, true
}

// SetTriggerWidth changes the trigger width and relayouts. Like Configure,
// it treats a negative or non-finite width as a caller error and returns
// ErrTriggerWidth, leaving the controller unchanged. Pointer events never
// error.
func (c *Controller) SetTriggerWidth(w float64) error {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v", ErrTriggerWidth, w)
	}
	c.triggerWidth = w
	if c.target != nil {
		c.relayout()
	}
	return nil
}

// TriggerWidth returns the current trigger width.
func (c *Controller) TriggerWidth() float64 { return c.triggerWidth }

// Refresh recomputes the layout after the target was changed outside a
// drag, and notifies observers.
func (c *Controller) Refresh() Layout {
	if c.target != nil {
		c.relayout()
	}
	return c.layout
}

// Target returns a copy of the target rect.
func (c *Controller) Target() (Rect, bool) {
	if c.target == nil {
		return Rect{}, false
	}
	return *c.target, true
}

// Layout returns the last computed layout.
func (c *Controller) Layout() Layout { return c.layout }

// Handles returns the handle bindings.
func (c *Controller) Handles() HandleSet { return c.handles }

// Handle returns the spec bound to id.
func (c *Controller) Handle(id HandleID) (HandleSpec, bool) {
	if !id.Valid() {
		return HandleSpec{}, false
	}
	return c.handles[id], true
}

// State returns Idle or Dragging.
func (c *Controller) State() State { return c.state }

// Session returns the current drag session.
func (c *Controller) Session() Session {
	return Session{
		Active:      c.state == Dragging,
		Handle:      c.active,
		LastPointer: c.lastPointer,
	}
}

// ── Events ──

func (c *Controller) accepts(id HandleID, pos Vec2) bool {
	return c.target != nil && id.Valid() && pos.Finite()
}

// PointerDown starts a drag on handle id at pos. The target is not touched.
// A second PointerDown while dragging rebinds the handle and restarts the
// delta from pos.
func (c *Controller) PointerDown(id HandleID, pos Vec2) {
	if !c.accepts(id, pos) {
		return
	}
	c.lastPointer = pos
	c.active = id
	c.state = Dragging
	if c.Hooks.OnDragStart != nil {
		c.Hooks.OnDragStart(c.handles[id].Role)
	}
}

// Drag applies the pointer movement since the previous event to the
// target, according to the role of handle id. The handle need not match
// the one passed to PointerDown; the latest one wins. Drag does nothing
// while Idle.
func (c *Controller) Drag(id HandleID, pos Vec2) {
	if !c.accepts(id, pos) || c.state != Dragging {
		return
	}
	c.active = id
	spec := c.handles[id]
	delta := pos.Sub(c.lastPointer)

	if ApplyDrag(c.target, spec, delta) {
		if c.Hooks.ConstrainToParent != nil && c.parent != nil {
			*c.target = c.Hooks.ConstrainToParent(*c.target, *c.parent)
		}
		c.relayout()
	}
	c.lastPointer = pos
}

// PointerUp ends the drag. The target is not touched.
func (c *Controller) PointerUp(id HandleID, pos Vec2) {
	if !c.accepts(id, pos) {
		return
	}
	c.end()
}

// Reset forces the controller back to Idle.
func (c *Controller) Reset() {
	c.end()
}

func (c *Controller) end() {
	was := c.state
	c.state = Idle
	if was == Dragging && c.Hooks.OnDragEnd != nil {
		c.Hooks.OnDragEnd()
	}
}

func (c *Controller) relayout() {
	c.layout = ComputeLayout(*c.target, c.handles, c.triggerWidth)
	target := *c.target
	for _, s := range c.subs {
		s.fn(target, c.layout)
	}
}

// ApplyDrag mutates target for a pointer delta on a handle with the given
// spec and reports whether the role edits the target at all.
//
// Edge and corner resizes move the center by half the delta on the axes
// they resize, so the opposite edge stays where it was.
func ApplyDrag(target *Rect, spec HandleSpec, delta Vec2) bool {
	if target == nil {
		return false
	}
	sign := spec.SignVector()
	switch spec.Role {
	case Move:
		target.Position = target.Position.Add(delta)
	case ResizeHorizontal:
		target.Size = target.Size.Add(delta.Mul(sign))
		target.Position = target.Position.Add(V(delta.X*0.5, 0))
	case ResizeVertical:
		target.Size = target.Size.Add(delta.Mul(sign))
		target.Position = target.Position.Add(V(0, delta.Y*0.5))
	case ResizeCorner:
		target.Size = target.Size.Add(delta.Mul(sign))
		target.Position = target.Position.Add(delta.Scale(0.5))
	default:
		return false
	}
	return true
}
