package rectedit

import (
	"errors"
	"math"
	"testing"
)

// recorder collects observer calls and hook invocations.
type recorder struct {
	layouts []Layout
	targets []Rect
	starts  []HandleRole
	ends    int
}

func (r *recorder) observe(target Rect, l Layout) {
	r.targets = append(r.targets, target)
	r.layouts = append(r.layouts, l)
}

func newTestController(t *testing.T, target *Rect) (*Controller, *recorder) {
	t.Helper()
	rec := &recorder{}
	c := NewController()
	c.Subscribe(rec.observe)
	c.Hooks.OnDragStart = func(role HandleRole) { rec.starts = append(rec.starts, role) }
	c.Hooks.OnDragEnd = func() { rec.ends++ }
	if _, err := c.Configure(target, 10, StandardHandles()); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	return c, rec
}

// ── Configure ──

func TestConfigureReturnsInitialLayout(t *testing.T) {
	target := R(0, 0, 100, 100)
	c := NewController()
	var got []Layout
	c.Subscribe(func(_ Rect, l Layout) { got = append(got, l) })

	l, err := c.Configure(&target, 10, StandardHandles())
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if l[HandleMove] != R(0, 0, 80, 80) {
		t.Errorf("move handle: expected %v, got %v", R(0, 0, 80, 80), l[HandleMove])
	}
	if len(got) != 1 || got[0] != l {
		t.Errorf("expected one observer call with the initial layout, got %d", len(got))
	}
	if c.State() != Idle {
		t.Errorf("expected Idle after configure, got %v", c.State())
	}
}

func TestConfigureErrors(t *testing.T) {
	c := NewController()
	if _, err := c.Configure(nil, 10, StandardHandles()); !errors.Is(err, ErrNoTarget) {
		t.Errorf("nil target: expected ErrNoTarget, got %v", err)
	}
	target := R(0, 0, 10, 10)
	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := c.Configure(&target, w, StandardHandles()); !errors.Is(err, ErrTriggerWidth) {
			t.Errorf("width %v: expected ErrTriggerWidth, got %v", w, err)
		}
	}
	if c.Configured() {
		t.Error("controller should stay unconfigured after errors")
	}
}

func TestConfigureAcceptsDegenerateGeometry(t *testing.T) {
	for _, target := range []Rect{R(0, 0, 0, 0), R(3, 3, -4, 2)} {
		c := NewController()
		layout, err := c.Configure(&target, 0, StandardHandles())
		if err != nil {
			t.Errorf("target %+v: unexpected error %v", target, err)
			continue
		}
		if layout[HandleMove].Size != target.Size {
			t.Errorf("target %+v: move handle size %+v, want the target size", target, layout[HandleMove].Size)
		}
	}
}

func TestEventsBeforeConfigureAreIgnored(t *testing.T) {
	c := NewController()
	c.PointerDown(HandleMove, V(0, 0))
	c.Drag(HandleMove, V(5, 5))
	c.PointerUp(HandleMove, V(5, 5))
	if c.State() != Idle {
		t.Errorf("expected Idle, got %v", c.State())
	}
}

// ── Drag mutations ──

func TestDragRightEdgeKeepsLeftEdge(t *testing.T) {
	target := R(0, 0, 100, 100)
	c, _ := newTestController(t, &target)

	c.PointerDown(HandleRight, V(50, 0))
	c.Drag(HandleRight, V(60, 0))

	if target.Size != V(110, 100) {
		t.Errorf("size: expected (110,100), got %v", target.Size)
	}
	if target.Position != V(5, 0) {
		t.Errorf("position: expected (5,0), got %v", target.Position)
	}
	if target.Left() != -50 {
		t.Errorf("left edge moved: expected -50, got %v", target.Left())
	}
}

func TestDragEachEdgeKeepsOppositeEdge(t *testing.T) {
	tests := []struct {
		name  string
		id    HandleID
		delta Vec2
		fixed func(Rect) float64
		want  float64
	}{
		{"left", HandleLeft, V(-10, 7), Rect.Right, 50},
		{"right", HandleRight, V(-15, 3), Rect.Left, -50},
		{"top", HandleTop, V(4, 12), Rect.Bottom, -50},
		{"bottom", HandleBottom, V(-2, -8), Rect.Top, 50},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			target := R(0, 0, 100, 100)
			c, _ := newTestController(t, &target)
			c.PointerDown(tc.id, V(0, 0))
			c.Drag(tc.id, tc.delta)
			if got := tc.fixed(target); got != tc.want {
				t.Errorf("opposite edge: expected %v, got %v (target %v)", tc.want, got, target)
			}
		})
	}
}

func TestDragEdgeIgnoresCrossAxis(t *testing.T) {
	target := R(0, 0, 100, 100)
	c, _ := newTestController(t, &target)
	c.PointerDown(HandleLeft, V(-50, 0))
	c.Drag(HandleLeft, V(-60, 25))

	if target.Size != V(110, 100) {
		t.Errorf("size: expected (110,100), got %v", target.Size)
	}
	if target.Position != V(-5, 0) {
		t.Errorf("position: expected (-5,0), got %v", target.Position)
	}
}

func TestDragCornerResizesBothAxes(t *testing.T) {
	target := R(0, 0, 100, 100)
	c, _ := newTestController(t, &target)
	c.PointerDown(HandleLeftBottom, V(-50, -50))
	c.Drag(HandleLeftBottom, V(-60, -70))

	if target.Size != V(110, 120) {
		t.Errorf("size: expected (110,120), got %v", target.Size)
	}
	if target.Position != V(-5, -10) {
		t.Errorf("position: expected (-5,-10), got %v", target.Position)
	}
	if target.Right() != 50 || target.Top() != 50 {
		t.Errorf("right/top edges moved: R=%v T=%v", target.Right(), target.Top())
	}
}

func TestDragMove(t *testing.T) {
	target := R(0, 0, 100, 100)
	c, _ := newTestController(t, &target)
	c.PointerDown(HandleMove, V(10, 10))
	c.Drag(HandleMove, V(15, 7))

	if target.Position != V(5, -3) {
		t.Errorf("position: expected (5,-3), got %v", target.Position)
	}
	if target.Size != V(100, 100) {
		t.Errorf("size changed: %v", target.Size)
	}
}

func TestDragAccumulatesFromLastPointer(t *testing.T) {
	target := R(0, 0, 100, 100)
	c, _ := newTestController(t, &target)
	c.PointerDown(HandleMove, V(0, 0))
	c.Drag(HandleMove, V(1, 1))
	c.Drag(HandleMove, V(3, 4))
	c.Drag(HandleMove, V(3, 4))

	if target.Position != V(3, 4) {
		t.Errorf("position: expected (3,4), got %v", target.Position)
	}
	if s := c.Session(); s.LastPointer != V(3, 4) {
		t.Errorf("last pointer: expected (3,4), got %v", s.LastPointer)
	}
}

func TestDragPastOppositeEdgeGoesNegative(t *testing.T) {
	target := R(0, 0, 20, 20)
	c, _ := newTestController(t, &target)
	c.PointerDown(HandleRight, V(10, 0))
	c.Drag(HandleRight, V(-20, 0))

	if target.Size.X != -10 {
		t.Errorf("width: expected -10, got %v", target.Size.X)
	}
}

func TestDragNotifiesWithFreshLayout(t *testing.T) {
	target := R(0, 0, 100, 100)
	c, rec := newTestController(t, &target)
	c.PointerDown(HandleRight, V(50, 0))
	c.Drag(HandleRight, V(60, 0))

	if len(rec.layouts) != 2 {
		t.Fatalf("expected 2 observer calls (configure + drag), got %d", len(rec.layouts))
	}
	want := ComputeLayout(target, StandardHandles(), 10)
	if rec.layouts[1] != want {
		t.Errorf("observer layout does not match recomputed layout")
	}
	if rec.targets[1] != target {
		t.Errorf("observer target: expected %v, got %v", target, rec.targets[1])
	}
	if c.Layout() != want {
		t.Error("Layout() not updated")
	}
}

func TestDragNonEditDoesNothing(t *testing.T) {
	target := R(0, 0, 100, 100)
	rec := &recorder{}
	c := NewController()
	c.Subscribe(rec.observe)
	hs := StandardHandles()
	hs[HandleMove] = HandleSpec{Role: NonEdit}
	if _, err := c.Configure(&target, 10, hs); err != nil {
		t.Fatal(err)
	}
	c.PointerDown(HandleMove, V(0, 0))
	c.Drag(HandleMove, V(9, 9))

	if target != R(0, 0, 100, 100) {
		t.Errorf("non-edit changed target: %v", target)
	}
	if len(rec.layouts) != 1 {
		t.Errorf("non-edit should not notify, got %d calls", len(rec.layouts))
	}
}

// ── State machine ──

func TestDragWithoutPointerDownIsIgnored(t *testing.T) {
	target := R(0, 0, 100, 100)
	c, rec := newTestController(t, &target)
	c.Drag(HandleMove, V(20, 20))

	if target != R(0, 0, 100, 100) {
		t.Errorf("Idle drag mutated target: %v", target)
	}
	if len(rec.layouts) != 1 {
		t.Errorf("Idle drag notified observers")
	}
}

func TestDragAfterPointerUpIsIgnored(t *testing.T) {
	target := R(0, 0, 100, 100)
	c, rec := newTestController(t, &target)
	c.PointerDown(HandleMove, V(0, 0))
	c.Drag(HandleMove, V(5, 0))
	c.PointerUp(HandleMove, V(5, 0))
	c.Drag(HandleMove, V(50, 50))

	if target.Position != V(5, 0) {
		t.Errorf("drag after up moved target: %v", target.Position)
	}
	if rec.ends != 1 {
		t.Errorf("expected one OnDragEnd, got %d", rec.ends)
	}

	// A new press re-arms the session from its own position.
	c.PointerDown(HandleMove, V(50, 50))
	c.Drag(HandleMove, V(51, 52))
	if target.Position != V(6, 2) {
		t.Errorf("after re-press: expected (6,2), got %v", target.Position)
	}
}

func TestDragRebindsToEventHandle(t *testing.T) {
	target := R(0, 0, 100, 100)
	c, _ := newTestController(t, &target)
	c.PointerDown(HandleMove, V(0, 0))
	c.Drag(HandleRight, V(10, 0))

	if target.Size != V(110, 100) || target.Position != V(5, 0) {
		t.Errorf("expected right-edge resize, got %v", target)
	}
	if s := c.Session(); s.Handle != HandleRight {
		t.Errorf("active handle: expected %d, got %d", HandleRight, s.Handle)
	}
}

func TestSecondPointerDownRebinds(t *testing.T) {
	target := R(0, 0, 100, 100)
	c, rec := newTestController(t, &target)
	c.PointerDown(HandleMove, V(0, 0))
	c.PointerDown(HandleTop, V(0, 40))
	c.Drag(HandleTop, V(0, 50))

	if target.Size != V(100, 110) || target.Position != V(0, 5) {
		t.Errorf("expected top resize from second press, got %v", target)
	}
	if len(rec.starts) != 2 || rec.starts[1] != ResizeVertical {
		t.Errorf("drag starts: got %v", rec.starts)
	}
}

func TestInvalidEventsAreIgnored(t *testing.T) {
	target := R(0, 0, 100, 100)
	c, _ := newTestController(t, &target)

	c.PointerDown(HandleID(-1), V(0, 0))
	c.PointerDown(HandleID(HandleCount), V(0, 0))
	c.PointerDown(HandleMove, V(math.NaN(), 0))
	if c.State() != Idle {
		t.Fatalf("invalid downs should not start a drag")
	}

	c.PointerDown(HandleMove, V(0, 0))
	c.Drag(HandleMove, V(math.Inf(1), 0))
	c.Drag(HandleID(99), V(5, 5))
	if target != R(0, 0, 100, 100) {
		t.Errorf("invalid drags mutated target: %v", target)
	}
	c.PointerUp(HandleID(99), V(0, 0))
	if c.State() != Dragging {
		t.Error("invalid up should be ignored")
	}
}

func TestReset(t *testing.T) {
	target := R(0, 0, 100, 100)
	c, rec := newTestController(t, &target)
	c.PointerDown(HandleMove, V(0, 0))
	c.Reset()
	if c.State() != Idle {
		t.Errorf("expected Idle after Reset, got %v", c.State())
	}
	if rec.ends != 1 {
		t.Errorf("expected OnDragEnd on reset, got %d", rec.ends)
	}
	c.Reset()
	if rec.ends != 1 {
		t.Error("Reset while Idle should not fire OnDragEnd")
	}
}

// ── Hooks and observers ──

func TestConstrainToParentRunsAfterMutation(t *testing.T) {
	target := R(0, 0, 100, 100)
	parent := R(0, 0, 200, 200)
	c, _ := newTestController(t, &target)

	var seen []Rect
	c.Hooks.ConstrainToParent = func(tr, p Rect) Rect {
		seen = append(seen, tr)
		tr.Position.X = 0
		return tr
	}

	c.PointerDown(HandleMove, V(0, 0))
	c.Drag(HandleMove, V(10, 0))
	if len(seen) != 0 {
		t.Fatal("constraint should not run without a parent")
	}

	c.SetParent(&parent)
	c.Drag(HandleMove, V(20, 3))
	if len(seen) != 1 || seen[0].Position != V(20, 3) {
		t.Fatalf("constraint input: got %v", seen)
	}
	if target.Position != V(0, 3) {
		t.Errorf("constraint result not applied: %v", target.Position)
	}
	if c.Layout()[HandleMove].Position != V(0, 3) {
		t.Error("layout should reflect the constrained target")
	}
}

func TestUnsubscribe(t *testing.T) {
	target := R(0, 0, 10, 10)
	c := NewController()
	var a, b int
	unsubA := c.Subscribe(func(Rect, Layout) { a++ })
	c.Subscribe(func(Rect, Layout) { b++ })
	if _, err := c.Configure(&target, 1, StandardHandles()); err != nil {
		t.Fatal(err)
	}
	unsubA()
	c.Refresh()
	if a != 1 || b != 2 {
		t.Errorf("expected a=1 b=2, got a=%d b=%d", a, b)
	}
}

func TestObserverOrder(t *testing.T) {
	target := R(0, 0, 10, 10)
	c := NewController()
	var order []string
	c.Subscribe(func(Rect, Layout) { order = append(order, "renderer") })
	c.Subscribe(func(Rect, Layout) { order = append(order, "cursor") })
	if _, err := c.Configure(&target, 1, StandardHandles()); err != nil {
		t.Fatal(err)
	}
	if len(order) != 2 || order[0] != "renderer" || order[1] != "cursor" {
		t.Errorf("observer order: got %v", order)
	}
}

func TestSetTriggerWidth(t *testing.T) {
	target := R(0, 0, 100, 100)
	c, rec := newTestController(t, &target)
	if err := c.SetTriggerWidth(5); err != nil {
		t.Fatal(err)
	}
	if c.Layout()[HandleMove].Size != V(90, 90) {
		t.Errorf("move size after width change: got %v", c.Layout()[HandleMove].Size)
	}
	if len(rec.layouts) != 2 {
		t.Errorf("expected relayout notification, got %d calls", len(rec.layouts))
	}
	if err := c.SetTriggerWidth(-2); !errors.Is(err, ErrTriggerWidth) {
		t.Errorf("expected ErrTriggerWidth, got %v", err)
	}
	if c.TriggerWidth() != 5 {
		t.Errorf("width changed on error: %v", c.TriggerWidth())
	}
}

func TestApplyDragNilTarget(t *testing.T) {
	if ApplyDrag(nil, StandardHandles()[HandleMove], V(1, 1)) {
		t.Error("nil target should report no mutation")
	}
}
