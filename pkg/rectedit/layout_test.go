package rectedit

import (
	"math"
	"testing"
)

// ── Sides ──

func TestSideSigns(t *testing.T) {
	if Left.Sign() != -1 || HCenter.Sign() != 0 || Right.Sign() != 1 {
		t.Errorf("horizontal signs: got %v %v %v", Left.Sign(), HCenter.Sign(), Right.Sign())
	}
	if Top.Sign() != 1 || VCenter.Sign() != 0 || Bottom.Sign() != -1 {
		t.Errorf("vertical signs: got %v %v %v", Top.Sign(), VCenter.Sign(), Bottom.Sign())
	}
	if HorizontalSide(42).Sign() != 0 || VerticalSide(-7).Sign() != 0 {
		t.Error("unknown sides should map to 0")
	}
}

func TestStandardHandlesComposition(t *testing.T) {
	counts := map[HandleRole]int{}
	for _, h := range StandardHandles() {
		counts[h.Role]++
	}
	want := map[HandleRole]int{Move: 1, ResizeHorizontal: 2, ResizeVertical: 2, ResizeCorner: 4}
	for role, n := range want {
		if counts[role] != n {
			t.Errorf("%v: expected %d handles, got %d", role, n, counts[role])
		}
	}
}

func TestHandleNames(t *testing.T) {
	hs := StandardHandles()
	tests := []struct {
		id   HandleID
		want string
	}{
		{HandleMove, "move"},
		{HandleLeft, "left"},
		{HandleBottom, "bottom"},
		{HandleRightTop, "right-top"},
		{HandleLeftBottom, "left-bottom"},
	}
	for _, tc := range tests {
		if got := hs[tc.id].Name(); got != tc.want {
			t.Errorf("Name(%d) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

// ── ComputeHandleRect ──

func TestComputeHandleRect(t *testing.T) {
	target := R(0, 0, 100, 100)
	hs := StandardHandles()
	tests := []struct {
		id   HandleID
		want Rect
	}{
		{HandleMove, R(0, 0, 80, 80)},
		{HandleLeft, R(-50, 0, 20, 80)},
		{HandleRight, R(50, 0, 20, 80)},
		{HandleTop, R(0, 50, 80, 20)},
		{HandleBottom, R(0, -50, 80, 20)},
		{HandleLeftTop, R(-50, 50, 20, 20)},
		{HandleRightTop, R(50, 50, 20, 20)},
		{HandleLeftBottom, R(-50, -50, 20, 20)},
		{HandleRightBottom, R(50, -50, 20, 20)},
	}
	for _, tc := range tests {
		got := ComputeHandleRect(target, hs[tc.id], 10)
		if got != tc.want {
			t.Errorf("%s: expected %v, got %v", hs[tc.id].Name(), tc.want, got)
		}
	}
}

func TestComputeHandleRectOffsetTarget(t *testing.T) {
	target := R(30, -20, 60, 40)
	got := ComputeHandleRect(target, StandardHandles()[HandleRightBottom], 5)
	want := R(60, -40, 10, 10)
	if got != want {
		t.Errorf("right-bottom: expected %v, got %v", want, got)
	}
}

func TestComputeHandleRectNegativeSizeNotClamped(t *testing.T) {
	target := R(0, 0, 10, 10)
	got := ComputeHandleRect(target, StandardHandles()[HandleMove], 8)
	if got.Size != V(-6, -6) {
		t.Errorf("move size: expected (-6,-6), got %v", got.Size)
	}
	got = ComputeHandleRect(target, StandardHandles()[HandleTop], 8)
	if got.Size != V(-6, 16) {
		t.Errorf("top size: expected (-6,16), got %v", got.Size)
	}
}

func TestComputeHandleRectNonEdit(t *testing.T) {
	got := ComputeHandleRect(R(5, 5, 10, 10), HandleSpec{Role: NonEdit}, 2)
	if got != R(5, 5, 0, 0) {
		t.Errorf("non-edit: expected zero-size rect at center, got %v", got)
	}
}

func TestComputeHandleRectIdempotent(t *testing.T) {
	target := R(0.1, -3.7, 123.456, 78.9)
	for _, spec := range StandardHandles() {
		a := ComputeHandleRect(target, spec, 3.3)
		b := ComputeHandleRect(target, spec, 3.3)
		if math.Float64bits(a.Position.X) != math.Float64bits(b.Position.X) ||
			math.Float64bits(a.Position.Y) != math.Float64bits(b.Position.Y) ||
			math.Float64bits(a.Size.X) != math.Float64bits(b.Size.X) ||
			math.Float64bits(a.Size.Y) != math.Float64bits(b.Size.Y) {
			t.Errorf("%s: results differ: %v vs %v", spec.Name(), a, b)
		}
	}
}

func TestComputeLayoutMatchesPerHandle(t *testing.T) {
	target := R(10, 10, 40, 30)
	hs := StandardHandles()
	l := ComputeLayout(target, hs, 2)
	for i, spec := range hs {
		if l[i] != ComputeHandleRect(target, spec, 2) {
			t.Errorf("layout[%d] mismatch", i)
		}
	}
}

// ── Rect ──

func TestRectEdgesNormalizeNegativeSize(t *testing.T) {
	r := R(0, 0, -10, -4)
	if r.Left() != -5 || r.Right() != 5 || r.Top() != 2 || r.Bottom() != -2 {
		t.Errorf("edges: got L=%v R=%v T=%v B=%v", r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	if !r.Contains(V(4, 1)) {
		t.Error("negative-size rect should contain (4,1)")
	}
}

func TestVec2Finite(t *testing.T) {
	if !V(1, 2).Finite() {
		t.Error("(1,2) should be finite")
	}
	if V(math.NaN(), 0).Finite() || V(0, math.Inf(-1)).Finite() {
		t.Error("NaN/Inf should not be finite")
	}
}

// ── Cursor ──

func TestCursorFor(t *testing.T) {
	hs := StandardHandles()
	tests := []struct {
		id   HandleID
		want Cursor
	}{
		{HandleMove, CursorMove},
		{HandleLeft, CursorResizeHorizontal},
		{HandleTop, CursorResizeVertical},
		{HandleLeftBottom, CursorResizeDiagonal},
		{HandleRightTop, CursorResizeDiagonal},
		{HandleLeftTop, CursorResizeAntiDiagonal},
		{HandleRightBottom, CursorResizeAntiDiagonal},
	}
	for _, tc := range tests {
		if got := CursorFor(hs[tc.id]); got != tc.want {
			t.Errorf("CursorFor(%s) = %v, want %v", hs[tc.id].Name(), got, tc.want)
		}
	}
	if CursorFor(HandleSpec{Role: NonEdit}) != CursorDefault {
		t.Error("non-edit should use default cursor")
	}
}
