package edit

import "github.com/quarternotes/stagecraft/scene"

// ComputeSelectableSet returns the ids that are valid selection and
// hit-test targets for the current mode.
//
// With no group open only top-level nodes qualify; nothing inside a
// group is reachable without entering it. With a group open the set is
// the union of the active group's descendants, every group anywhere
// that is not itself open, and top-level non-group nodes. Open groups
// stay out of the set so their frames are transparent to clicks while
// the user works inside them.
//
// Nodes that are hidden or locked, sit under a hidden or locked
// ancestor, or live on a hidden layer never qualify.
func ComputeSelectableSet(lvl *scene.Level, mode Mode) map[string]bool {
	out := make(map[string]bool)
	if lvl == nil {
		return out
	}
	if !mode.IsActive() {
		for _, n := range lvl.Objects {
			if n != nil && pathSelectable(lvl, []*scene.Node{n}) {
				out[n.ID] = true
			}
		}
		return out
	}

	active := mode.ActiveGroupID()
	var walk func(nodes []*scene.Node, path []*scene.Node, insideActive bool)
	walk = func(nodes []*scene.Node, path []*scene.Node, insideActive bool) {
		for _, n := range nodes {
			if n == nil {
				continue
			}
			p := append(path, n)
			if !pathSelectable(lvl, p) {
				continue
			}
			switch {
			case insideActive:
				out[n.ID] = true
			case n.IsGroup() && !mode.IsOpen(n.ID):
				out[n.ID] = true
			case len(p) == 1 && !n.IsGroup():
				out[n.ID] = true
			}
			if n.IsGroup() {
				walk(n.Children, p, insideActive || n.ID == active)
			}
		}
	}
	walk(lvl.Objects, nil, false)
	return out
}

// pathSelectable reports whether the node at the end of the ancestor
// chain can be a selection target: every node along the chain must be
// visible and unlocked, and the node's effective layer must be visible.
func pathSelectable(lvl *scene.Level, path []*scene.Node) bool {
	for _, n := range path {
		if n == nil || !n.Visible || n.Locked {
			return false
		}
	}
	return lvl.LayerVisible(scene.EffectiveLayerOf(path))
}
