package rectedit

// Cursor is the pointer shape a host should show over a handle.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorResizeHorizontal
	CursorResizeVertical
	CursorResizeDiagonal     // left-bottom / right-top corners
	CursorResizeAntiDiagonal // left-top / right-bottom corners
)

var cursorNames = map[Cursor]string{
	CursorDefault:            "default",
	CursorMove:               "move",
	CursorResizeHorizontal:   "ew-resize",
	CursorResizeVertical:     "ns-resize",
	CursorResizeDiagonal:     "nesw-resize",
	CursorResizeAntiDiagonal: "nwse-resize",
}

func (c Cursor) String() string {
	if n, ok := cursorNames[c]; ok {
		return n
	}
	return "default"
}

// CursorFor picks the cursor for a handle.
func CursorFor(spec HandleSpec) Cursor {
	switch spec.Role {
	case Move:
		return CursorMove
	case ResizeHorizontal:
		return CursorResizeHorizontal
	case ResizeVertical:
		return CursorResizeVertical
	case ResizeCorner:
		if (spec.Horizontal == Left && spec.Vertical == Bottom) ||
			(spec.Horizontal == Right && spec.Vertical == Top) {
			return CursorResizeDiagonal
		}
		return CursorResizeAntiDiagonal
	}
	return CursorDefault
}
