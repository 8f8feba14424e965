package rectedit

import "fmt"

// HorizontalSide locates a handle left of, on, or right of the target center.
type HorizontalSide int

const (
	HCenter HorizontalSide = iota
	Left
	Right
)

// VerticalSide locates a handle above, on, or below the target center.
type VerticalSide int

const (
	VCenter VerticalSide = iota
	Top
	Bottom
)

// Side signs. Y is up, so Top is positive.
var (
	horizontalSigns = map[HorizontalSide]float64{Left: -1, HCenter: 0, Right: 1}
	verticalSigns   = map[VerticalSide]float64{Top: 1, VCenter: 0, Bottom: -1}
)

// Sign returns -1, 0 or 1. Unknown values map to 0.
func (s HorizontalSide) Sign() float64 { return horizontalSigns[s] }

// Sign returns 1, 0 or -1. Unknown values map to 0.
func (s VerticalSide) Sign() float64 { return verticalSigns[s] }

func (s HorizontalSide) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case HCenter:
		return "Center"
	}
	return fmt.Sprintf("HorizontalSide(%d)", int(s))
}

func (s VerticalSide) String() string {
	switch s {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case VCenter:
		return "Center"
	}
	return fmt.Sprintf("VerticalSide(%d)", int(s))
}

// HandleRole is what dragging a handle does to the target.
type HandleRole int

const (
	NonEdit HandleRole = iota
	Move
	ResizeHorizontal
	ResizeVertical
	ResizeCorner
)

var roleNames = map[HandleRole]string{
	NonEdit:          "NonEdit",
	Move:             "Move",
	ResizeHorizontal: "ResizeHorizontal",
	ResizeVertical:   "ResizeVertical",
	ResizeCorner:     "ResizeCorner",
}

func (r HandleRole) String() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return fmt.Sprintf("HandleRole(%d)", int(r))
}

// HandleSpec fixes a handle's role and where it sits around the target.
type HandleSpec struct {
	Role       HandleRole
	Horizontal HorizontalSide
	Vertical   VerticalSide
}

// SignVector returns the side signs as a vector. It places the handle
// relative to the target center and gives the resize direction.
func (s HandleSpec) SignVector() Vec2 {
	return V(s.Horizontal.Sign(), s.Vertical.Sign())
}

// Name is a short label such as "move", "left" or "right-top".
func (s HandleSpec) Name() string {
	switch s.Role {
	case Move:
		return "move"
	case NonEdit:
		return "none"
	}
	h, v := "", ""
	switch s.Horizontal {
	case Left:
		h = "left"
	case Right:
		h = "right"
	}
	switch s.Vertical {
	case Top:
		v = "top"
	case Bottom:
		v = "bottom"
	}
	switch {
	case h != "" && v != "":
		return h + "-" + v
	case h != "":
		return h
	case v != "":
		return v
	}
	return "center"
}

// HandleID indexes a handle within a HandleSet.
type HandleID int

// HandleCount is the number of handles around a target.
const HandleCount = 9

// Canonical handle IDs, in StandardHandles order.
const (
	HandleMove HandleID = iota
	HandleLeft
	HandleRight
	HandleTop
	HandleBottom
	HandleLeftTop
	HandleRightTop
	HandleLeftBottom
	HandleRightBottom
)

// HandleSet is the fixed binding of the nine handles.
type HandleSet [HandleCount]HandleSpec

// Valid reports whether id indexes a handle.
func (id HandleID) Valid() bool { return id >= 0 && id < HandleCount }

// StandardHandles returns one move handle, two horizontal edges, two
// vertical edges and four corners.
func StandardHandles() HandleSet {
	return HandleSet{
		HandleMove:        {Role: Move, Horizontal: HCenter, Vertical: VCenter},
		HandleLeft:        {Role: ResizeHorizontal, Horizontal: Left, Vertical: VCenter},
		HandleRight:       {Role: ResizeHorizontal, Horizontal: Right, Vertical: VCenter},
		HandleTop:         {Role: ResizeVertical, Horizontal: HCenter, Vertical: Top},
		HandleBottom:      {Role: ResizeVertical, Horizontal: HCenter, Vertical: Bottom},
		HandleLeftTop:     {Role: ResizeCorner, Horizontal: Left, Vertical: Top},
		HandleRightTop:    {Role: ResizeCorner, Horizontal: Right, Vertical: Top},
		HandleLeftBottom:  {Role: ResizeCorner, Horizontal: Left, Vertical: Bottom},
		HandleRightBottom: {Role: ResizeCorner, Horizontal: Right, Vertical: Bottom},
	}
}
