package edit

import (
	"math"

	"github.com/jakecoffman/cp/v2"

	"github.com/quarternotes/stagecraft/scene"
)

// DeleteSelected removes every selected node. A deleted group's player
// start descendant survives by re-parenting to the nearest remaining
// ancestor at its world position; if the level loses its player start
// outright, a fresh one is created.
func (s *Session) DeleteSelected() {
	ids := s.selectedInDrawOrder()
	if len(ids) == 0 {
		return
	}
	deleted := false
	for _, id := range ids {
		if s.Level.DeleteNode(id) {
			deleted = true
		}
	}
	if !deleted {
		return
	}
	s.setSelection()
	s.pruneExceptOpen()
	s.ensurePlayerStart()
	s.Mode = RestoreMode(s.Level, s.Mode.Project())
	s.Commit()
}

// GroupSelection wraps the selected nodes in a new group. Members must
// share the current parent context (the active group while editing
// inside one, the top level otherwise); anything else in the selection
// is left alone. The group sits at the min corner of the combined
// bounds and the members keep their world positions.
func (s *Session) GroupSelection() {
	ids := s.selectedInDrawOrder()
	if len(ids) == 0 || s.dragging || s.placing {
		return
	}
	parent := s.contextParent()
	wantParent := ""
	if parent != nil {
		wantParent = parent.ID
	}
	ix := scene.BuildIndex(s.Level)
	var members []*scene.Node
	for _, id := range ids {
		n := ix.Node(id)
		if n == nil {
			continue
		}
		if pid, _ := ix.ParentID(id); pid == wantParent {
			members = append(members, n)
		}
	}
	if len(members) == 0 {
		return
	}

	bb := s.Level.WorldBounds(members[0], nil)
	for _, m := range members[1:] {
		bb = bb.Merge(s.Level.WorldBounds(m, nil))
	}
	groupWorld := cp.Vector{X: bb.L, Y: bb.B}

	var base cp.Vector
	if parent != nil {
		base = s.Level.WorldPosition(parent)
	}
	g := scene.NewGroup(groupWorld.X-base.X, groupWorld.Y-base.Y)
	for _, m := range members {
		world := s.Level.WorldPosition(m)
		if s.Level.Detach(m.ID) == nil {
			continue
		}
		m.X = world.X - groupWorld.X
		m.Y = world.Y - groupWorld.Y
		g.AddChild(m)
	}
	if parent != nil {
		parent.AddChild(g)
	} else {
		s.Level.Objects = append(s.Level.Objects, g)
	}
	s.setSelection(g.ID)
	s.Commit()
}

// Ungroup dissolves the selected groups, lifting their children into
// each group's parent with world positions preserved. Open groups are
// skipped.
func (s *Session) Ungroup() {
	ids := s.selectedInDrawOrder()
	if len(ids) == 0 || s.dragging || s.placing {
		return
	}
	var freed []string
	changed := false
	for _, id := range ids {
		g := s.Level.FindNode(id)
		if !g.IsGroup() || s.Mode.IsOpen(id) {
			continue
		}
		parent := s.Level.ParentOf(id)
		kids := append([]*scene.Node(nil), g.Children...)
		for _, c := range kids {
			if c == nil {
				continue
			}
			world := s.Level.WorldPosition(c)
			if g.RemoveChild(c.ID) == nil {
				continue
			}
			if parent != nil {
				base := s.Level.WorldPosition(parent)
				c.X = world.X - base.X
				c.Y = world.Y - base.Y
				parent.AddChild(c)
			} else {
				c.X = world.X
				c.Y = world.Y
				s.Level.Objects = append(s.Level.Objects, c)
			}
			freed = append(freed, c.ID)
		}
		s.Level.Detach(id)
		changed = true
	}
	if !changed {
		return
	}
	s.setSelection(freed...)
	s.Commit()
}

// Duplicate clones the selected nodes with fresh ids and puts the
// copies into placing mode: they track the pointer until a click
// commits them as one history entry. Player starts are never
// duplicated.
func (s *Session) Duplicate(x, y float64) {
	if s.dragging || s.marquee || s.placing {
		return
	}
	ids := s.selectedInDrawOrder()
	if len(ids) == 0 {
		return
	}
	step := float64(s.Level.Settings.GridSize)
	if step <= 0 {
		step = scene.FallbackSize
	}
	var clones []string
	for _, id := range ids {
		src := s.Level.FindNode(id)
		if src == nil || src.IsPlayerStart() {
			continue
		}
		c := src.Clone()
		stripPlayerStarts(c)
		c.Reassign()
		c.X += step
		c.Y += step
		if parent := s.Level.ParentOf(id); parent != nil {
			parent.AddChild(c)
		} else {
			s.Level.Objects = append(s.Level.Objects, c)
		}
		clones = append(clones, c.ID)
	}
	if len(clones) == 0 {
		return
	}
	s.setSelection(clones...)
	s.placing = true
	s.placeIDs = clones
	s.dragFrom = cp.Vector{X: x, Y: y}
	s.dragOrig = make(map[string]cp.Vector, len(clones))
	for _, id := range clones {
		if n := s.Level.FindNode(id); n != nil {
			s.dragOrig[id] = s.Level.WorldPosition(n)
		}
	}
}

func (s *Session) movePlacing(x, y float64) {
	dx := x - s.dragFrom.X
	dy := y - s.dragFrom.Y
	for _, id := range s.placeIDs {
		n := s.Level.FindNode(id)
		orig, ok := s.dragOrig[id]
		if n == nil || !ok {
			continue
		}
		target := s.snapTarget(cp.Vector{X: orig.X + dx, Y: orig.Y + dy})
		s.placeAtWorld(n, target)
	}
}

func (s *Session) placeAt(x, y float64) {
	s.movePlacing(x, y)
	s.placing = false
	s.placeIDs = nil
	s.dragOrig = nil
	s.Commit()
}

// PlaceNew stamps a freshly built node with its world origin at the
// given point, into the open group when one is active. Stamping a
// player start while one exists relocates the existing node instead of
// minting a second.
func (s *Session) PlaceNew(n *scene.Node, x, y float64) {
	if n == nil || s.dragging || s.marquee || s.placing {
		return
	}
	target := s.snapTarget(cp.Vector{X: x, Y: y})
	if n.IsPlayerStart() {
		if ps := s.Level.FindPlayerStart(); ps != nil {
			s.placeAtWorld(ps, target)
			s.setSelection(ps.ID)
			s.Commit()
			return
		}
	}
	if parent := s.contextParent(); parent != nil {
		base := s.Level.WorldPosition(parent)
		n.X = target.X - base.X
		n.Y = target.Y - base.Y
		parent.AddChild(n)
	} else {
		n.X = target.X
		n.Y = target.Y
		s.Level.Objects = append(s.Level.Objects, n)
	}
	s.setSelection(n.ID)
	s.Commit()
}

// BringToFront moves the selected nodes to the end of their sibling
// order so they draw on top.
func (s *Session) BringToFront() {
	s.reorderSelected(true)
}

// SendToBack moves the selected nodes to the start of their sibling
// order so they draw first.
func (s *Session) SendToBack() {
	s.reorderSelected(false)
}

func (s *Session) reorderSelected(front bool) {
	ids := s.selectedInDrawOrder()
	if len(ids) == 0 || s.dragging || s.placing {
		return
	}
	if !front {
		// Insert back-to-front so the block keeps its relative order.
		for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
			ids[i], ids[j] = ids[j], ids[i]
		}
	}
	moved := false
	for _, id := range ids {
		parent := s.Level.ParentOf(id)
		n := s.Level.Detach(id)
		if n == nil {
			continue
		}
		switch {
		case parent == nil && front:
			s.Level.Objects = append(s.Level.Objects, n)
		case parent == nil:
			s.Level.Objects = append([]*scene.Node{n}, s.Level.Objects...)
		case front:
			parent.Children = append(parent.Children, n)
		default:
			parent.Children = append([]*scene.Node{n}, parent.Children...)
		}
		moved = true
	}
	if moved {
		s.Commit()
	}
}

// MoveSelectedBy nudges every selected node by the same world delta and
// records one history entry. Targets are resolved before anything
// moves, so nudging a group together with one of its children shifts
// each exactly once.
func (s *Session) MoveSelectedBy(dx, dy float64) {
	ids := s.selectedInDrawOrder()
	if len(ids) == 0 || s.dragging || s.placing {
		return
	}
	targets := make(map[string]cp.Vector, len(ids))
	for _, id := range ids {
		if n := s.Level.FindNode(id); n != nil {
			world := s.Level.WorldPosition(n)
			targets[id] = cp.Vector{X: world.X + dx, Y: world.Y + dy}
		}
	}
	if len(targets) == 0 {
		return
	}
	for _, id := range ids {
		if target, ok := targets[id]; ok {
			if n := s.Level.FindNode(id); n != nil {
				s.placeAtWorld(n, target)
			}
		}
	}
	s.Commit()
}

// CopySelection clones the outermost selected nodes for transfer
// through a clipboard. Each clone's X/Y is rewritten to the source's
// world position so the batch can be re-anchored on paste; a selected
// node whose ancestor is also selected rides along inside the ancestor
// instead of copying twice. Player starts never copy.
func (s *Session) CopySelection() []*scene.Node {
	var out []*scene.Node
	for _, id := range s.selectedInDrawOrder() {
		n := s.Level.FindNode(id)
		if n == nil || n.IsPlayerStart() || s.ancestorSelected(id) {
			continue
		}
		world := s.Level.WorldPosition(n)
		c := n.Clone()
		stripPlayerStarts(c)
		c.X = world.X
		c.Y = world.Y
		out = append(out, c)
	}
	return out
}

func (s *Session) ancestorSelected(id string) bool {
	path := s.Level.PathTo(id)
	if len(path) < 2 {
		return false
	}
	for _, p := range path[:len(path)-1] {
		if s.Selected[p.ID] {
			return true
		}
	}
	return false
}

// Paste inserts copied nodes with the batch's min corner anchored at
// the given world point, into the open group when one is active. The
// roots' X/Y are read as world positions (the form CopySelection
// produces); every pasted node gets a fresh id and player starts are
// dropped. One history entry covers the whole batch.
func (s *Session) Paste(nodes []*scene.Node, x, y float64) {
	if s.dragging || s.marquee || s.placing {
		return
	}
	var incoming []*scene.Node
	for _, n := range nodes {
		if n == nil || n.IsPlayerStart() {
			continue
		}
		n.Normalize()
		stripPlayerStarts(n)
		n.Reassign()
		incoming = append(incoming, n)
	}
	if len(incoming) == 0 {
		return
	}
	minX, minY := incoming[0].X, incoming[0].Y
	for _, n := range incoming[1:] {
		minX = math.Min(minX, n.X)
		minY = math.Min(minY, n.Y)
	}
	target := s.snapTarget(cp.Vector{X: x, Y: y})
	parent := s.contextParent()
	var base cp.Vector
	if parent != nil {
		base = s.Level.WorldPosition(parent)
	}
	ids := make([]string, 0, len(incoming))
	for _, n := range incoming {
		n.X += target.X - minX - base.X
		n.Y += target.Y - minY - base.Y
		if parent != nil {
			parent.AddChild(n)
		} else {
			s.Level.Objects = append(s.Level.Objects, n)
		}
		ids = append(ids, n.ID)
	}
	s.setSelection(ids...)
	s.Commit()
}

// stripPlayerStarts removes player start nodes from a cloned subtree so
// a copy never introduces a second one.
func stripPlayerStarts(n *scene.Node) {
	if !n.IsGroup() {
		return
	}
	kept := n.Children[:0]
	for _, c := range n.Children {
		if c == nil || c.IsPlayerStart() {
			continue
		}
		stripPlayerStarts(c)
		kept = append(kept, c)
	}
	n.Children = kept
}
