package scene

import "github.com/jakecoffman/cp/v2"

// WorldPosition computes the node's world-space origin by summing local
// positions along its ancestor chain. Top-level nodes and nodes not found
// in the tree fall back to their own local position. Pure; never panics.
func (l *Level) WorldPosition(n *Node) cp.Vector {
	if n == nil {
		return cp.Vector{}
	}
	path := l.PathTo(n.ID)
	if path == nil || path[len(path)-1] != n {
		return cp.Vector{X: n.X, Y: n.Y}
	}
	var pos cp.Vector
	for _, p := range path {
		pos.X += p.X
		pos.Y += p.Y
	}
	return pos
}

// LeafExtents returns the node's width and height with the fallback size
// substituted for non-positive extents, so intersection tests against
// degenerate nodes stay meaningful.
func LeafExtents(n *Node) (w, h float64) {
	if n == nil {
		return FallbackSize, FallbackSize
	}
	w, h = n.Width, n.Height
	if w <= 0 {
		w = FallbackSize
	}
	if h <= 0 {
		h = FallbackSize
	}
	return w, h
}

// WorldBounds computes the node's axis-aligned world bounds. B is the
// minimum Y and T the maximum (screen-space Y grows downward; cp.BB is
// used as a plain min/max container). Leaves yield their own rectangle.
// Groups yield the union of descendant leaf rectangles, skipping any
// subtree whose root id is in exclude; with no contributors left the
// bounds collapse to a zero-area point at the group's own world position.
func (l *Level) WorldBounds(n *Node, exclude map[string]bool) cp.BB {
	if n == nil {
		return cp.BB{}
	}
	origin := l.WorldPosition(n)
	if !n.IsGroup() {
		w, h := LeafExtents(n)
		return cp.NewBB(origin.X, origin.Y, origin.X+w, origin.Y+h)
	}
	if bb, ok := unionLeafRects(n, origin, exclude); ok {
		return bb
	}
	return cp.NewBB(origin.X, origin.Y, origin.X, origin.Y)
}

func unionLeafRects(g *Node, origin cp.Vector, exclude map[string]bool) (cp.BB, bool) {
	var bb cp.BB
	found := false
	for _, c := range g.Children {
		if c == nil || exclude[c.ID] {
			continue
		}
		pos := cp.Vector{X: origin.X + c.X, Y: origin.Y + c.Y}
		if c.IsGroup() {
			if sub, ok := unionLeafRects(c, pos, exclude); ok {
				bb, found = mergeBB(bb, sub, found), true
			}
			continue
		}
		w, h := LeafExtents(c)
		rect := cp.NewBB(pos.X, pos.Y, pos.X+w, pos.Y+h)
		bb, found = mergeBB(bb, rect, found), true
	}
	return bb, found
}

func mergeBB(acc, next cp.BB, started bool) cp.BB {
	if !started {
		return next
	}
	return acc.Merge(next)
}

// PaddedBB grows bb by pad on every side.
func PaddedBB(bb cp.BB, pad float64) cp.BB {
	return cp.NewBB(bb.L-pad, bb.B-pad, bb.R+pad, bb.T+pad)
}
