package rectedit

// Layout holds the computed rectangle of every handle, indexed by HandleID.
type Layout [HandleCount]Rect

// ComputeHandleRect places one handle around target. triggerWidth is the
// half-thickness of the edge and corner regions.
//
// The result is not clamped: a trigger width larger than half the target
// yields negative move and edge sizes.
func ComputeHandleRect(target Rect, spec HandleSpec, triggerWidth float64) Rect {
	center := target.Position.Add(target.Size.Scale(0.5).Mul(spec.SignVector()))
	tw := 2 * triggerWidth

	var size Vec2
	switch spec.Role {
	case Move:
		size = target.Size.Sub(V(tw, tw))
	case ResizeHorizontal:
		size = V(tw, target.Size.Y-tw)
	case ResizeVertical:
		size = V(target.Size.X-tw, tw)
	case ResizeCorner:
		size = V(tw, tw)
	}

	return Rect{Position: center, Size: size}
}

// ComputeLayout computes all handle rectangles for target.
func ComputeLayout(target Rect, handles HandleSet, triggerWidth float64) Layout {
	var l Layout
	for i, spec := range handles {
		l[i] = ComputeHandleRect(target, spec, triggerWidth)
	}
	return l
}
