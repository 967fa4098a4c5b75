package edit

import (
	"github.com/jakecoffman/cp/v2"

	"github.com/quarternotes/stagecraft/scene"
)

// FindNodeAtPoint returns the topmost node under the world point, or
// nil. Only nodes in the current selectable set are considered, in
// three passes: groups that are not open, then top-level non-group
// objects, then, with a group open, the active group's descendants.
// Each pass runs in reverse draw order so overlap resolves to the node
// drawn last. Containment is an axis-aligned bounds test; a group is
// hit anywhere inside its full bounding rectangle.
func FindNodeAtPoint(lvl *scene.Level, mode Mode, x, y float64) *scene.Node {
	if lvl == nil {
		return nil
	}
	selectable := ComputeSelectableSet(lvl, mode)
	pt := cp.Vector{X: x, Y: y}

	var groups []*scene.Node
	lvl.Walk(func(n, _ *scene.Node) bool {
		if n.IsGroup() && !mode.IsOpen(n.ID) && selectable[n.ID] {
			groups = append(groups, n)
		}
		return true
	})
	for i := len(groups) - 1; i >= 0; i-- {
		if lvl.WorldBounds(groups[i], nil).ContainsVect(pt) {
			return groups[i]
		}
	}

	for i := len(lvl.Objects) - 1; i >= 0; i-- {
		n := lvl.Objects[i]
		if n == nil || n.IsGroup() || !selectable[n.ID] {
			continue
		}
		if lvl.WorldBounds(n, nil).ContainsVect(pt) {
			return n
		}
	}

	if !mode.IsActive() {
		return nil
	}
	active := lvl.FindNode(mode.ActiveGroupID())
	if !active.IsGroup() {
		return nil
	}
	members := collectSubtree(active.Children, nil)
	for i := len(members) - 1; i >= 0; i-- {
		n := members[i]
		if !selectable[n.ID] {
			continue
		}
		if lvl.WorldBounds(n, nil).ContainsVect(pt) {
			return n
		}
	}
	return nil
}

func collectSubtree(nodes []*scene.Node, out []*scene.Node) []*scene.Node {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		out = append(out, n)
		if n.IsGroup() {
			out = collectSubtree(n.Children, out)
		}
	}
	return out
}
