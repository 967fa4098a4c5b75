package edit

import (
	"github.com/jakecoffman/cp/v2"

	"github.com/quarternotes/stagecraft/event"
	"github.com/quarternotes/stagecraft/scene"
)

// MouseDown begins a gesture at the world point. A hit node becomes the
// drag target; empty space starts a marquee or closes group edit
// levels, depending on where the click lands relative to the open
// frames. While duplicates are being placed, the click commits them
// instead.
func (s *Session) MouseDown(x, y float64, mods Modifiers) {
	if s.dragging || s.marquee {
		return
	}
	if s.placing {
		s.placeAt(x, y)
		return
	}
	hit := FindNodeAtPoint(s.Level, s.Mode, x, y)
	if hit == nil {
		s.downOnEmpty(x, y, mods)
		return
	}
	if mods.Additive {
		s.ToggleSelect(hit.ID)
		return
	}
	if !s.IsSelected(hit.ID) {
		s.SelectOnly(hit.ID)
	}
	s.beginDrag(x, y)
}

// MouseMove advances whatever gesture is in flight.
func (s *Session) MouseMove(x, y float64, mods Modifiers) {
	switch {
	case s.placing:
		s.movePlacing(x, y)
	case s.marquee:
		s.marqueeTo = cp.Vector{X: x, Y: y}
	case s.dragging:
		s.dragTo(x, y, mods)
	}
}

// MouseUp completes the gesture. A drag that moved anything commits one
// history entry; a marquee resolves the selection.
func (s *Session) MouseUp(x, y float64, mods Modifiers) {
	switch {
	case s.marquee:
		s.marqueeTo = cp.Vector{X: x, Y: y}
		s.finishMarquee()
	case s.dragging:
		s.finishDrag(mods)
	}
}

// DoubleClick on a group opens group edit mode, descending one level at
// a time through nested groups.
func (s *Session) DoubleClick(x, y float64) {
	hit := FindNodeAtPoint(s.Level, s.Mode, x, y)
	if hit == nil || !hit.IsGroup() {
		return
	}
	s.resetDrag()
	s.Mode = s.Mode.Open(s.Level, hit.ID)
	s.pruneExceptOpen()
	s.filterSelection()
	s.Commit()
	s.Events.Push(event.ModeChanged, nil)
}

func (s *Session) downOnEmpty(x, y float64, mods Modifiers) {
	if s.Mode.IsActive() && !s.Mode.InsideActiveFrame(s.Level, x, y) {
		if s.insideAnyOpenFrame(x, y) {
			s.closeOneLevel()
		} else {
			s.closeAllLevels()
		}
		return
	}
	if !mods.Additive && len(s.Selected) > 0 {
		s.SelectOnly("")
	}
	s.marquee = true
	s.marqueeAdd = mods.Additive
	s.marqueeFrom = cp.Vector{X: x, Y: y}
	s.marqueeTo = s.marqueeFrom
}

func (s *Session) insideAnyOpenFrame(x, y float64) bool {
	pt := cp.Vector{X: x, Y: y}
	for _, id := range s.Mode.OpenGroups {
		g := s.Level.FindNode(id)
		if !g.IsGroup() {
			continue
		}
		bb := scene.PaddedBB(s.Level.WorldBounds(g, nil), FramePadding)
		if bb.ContainsVect(pt) {
			return true
		}
	}
	return false
}

func (s *Session) closeOneLevel() {
	if !s.Mode.IsActive() {
		return
	}
	s.Mode = s.Mode.Close()
	s.pruneExceptOpen()
	s.filterSelection()
	s.Commit()
	s.Events.Push(event.ModeChanged, nil)
}

func (s *Session) closeAllLevels() {
	if !s.Mode.IsActive() {
		return
	}
	s.Mode = s.Mode.CloseAll()
	s.pruneExceptOpen()
	s.filterSelection()
	s.Commit()
	s.Events.Push(event.ModeChanged, nil)
}

func (s *Session) beginDrag(x, y float64) {
	ids := s.selectedInDrawOrder()
	if len(ids) == 0 {
		return
	}
	s.dragging = true
	s.dragMoved = false
	s.dragIDs = ids
	s.dragFrom = cp.Vector{X: x, Y: y}
	s.dragOrig = make(map[string]cp.Vector, len(ids))
	for _, id := range ids {
		if n := s.Level.FindNode(id); n != nil {
			s.dragOrig[id] = s.Level.WorldPosition(n)
		}
	}
}

// dragTo moves every dragged node so its world origin tracks the
// pointer delta from the gesture start. Working in world space keeps
// the same delta valid whether a node is top-level or nested, and stays
// correct when a node and its ancestor are dragged together or when a
// node reparents mid-drag.
func (s *Session) dragTo(x, y float64, mods Modifiers) {
	dx := x - s.dragFrom.X
	dy := y - s.dragFrom.Y
	if dx != 0 || dy != 0 {
		s.dragMoved = true
	}
	s.syncFreeze(mods)
	for _, id := range s.dragIDs {
		n := s.Level.FindNode(id)
		if n == nil {
			continue
		}
		orig, ok := s.dragOrig[id]
		if !ok {
			continue
		}
		target := s.snapTarget(cp.Vector{X: orig.X + dx, Y: orig.Y + dy})
		s.placeAtWorld(n, target)
		if !mods.Extract {
			s.maybeDropIntoGroup(n, x, y)
		}
	}
}

// placeAtWorld moves the node so its world origin lands on target,
// whatever its current parent is.
func (s *Session) placeAtWorld(n *scene.Node, target cp.Vector) {
	base := s.parentWorld(n.ID)
	n.X = target.X - base.X
	n.Y = target.Y - base.Y
}

func (s *Session) parentWorld(id string) cp.Vector {
	parent := s.Level.ParentOf(id)
	if parent == nil {
		return cp.Vector{}
	}
	return s.Level.WorldPosition(parent)
}

// maybeDropIntoGroup reparents a dragged top-level node into the active
// open group once the pointer is inside the group's padded frame. The
// node's position converts from world to group-local so it does not
// jump.
func (s *Session) maybeDropIntoGroup(n *scene.Node, x, y float64) {
	if !s.Mode.IsActive() || s.Level.ParentOf(n.ID) != nil {
		return
	}
	g := s.Level.FindNode(s.Mode.ActiveGroupID())
	if !g.IsGroup() || g == n {
		return
	}
	if n.IsGroup() && s.Level.IsDescendantOf(g.ID, n) {
		return
	}
	if !s.Mode.InsideActiveFrame(s.Level, x, y) {
		return
	}
	world := s.Level.WorldPosition(n)
	base := s.Level.WorldPosition(g)
	if s.Level.Detach(n.ID) == nil {
		return
	}
	n.X = world.X - base.X
	n.Y = world.Y - base.Y
	g.AddChild(n)
}

// syncFreeze keeps the frame freeze in step with the extraction
// modifier: frozen while it is held mid-drag, live again once released.
func (s *Session) syncFreeze(mods Modifiers) {
	if !s.Mode.IsActive() {
		return
	}
	if mods.Extract && !s.Mode.FrameFrozen {
		s.Mode = s.Mode.FreezeFrame(s.Level, s.dragSet())
	} else if !mods.Extract && s.Mode.FrameFrozen {
		s.Mode = s.Mode.Unfreeze()
	}
}

func (s *Session) dragSet() map[string]bool {
	set := make(map[string]bool, len(s.dragIDs))
	for _, id := range s.dragIDs {
		set[id] = true
	}
	return set
}

func (s *Session) finishDrag(mods Modifiers) {
	moved := s.dragMoved
	if moved && mods.Extract {
		s.extractDragged()
	}
	s.resetDrag()
	s.Mode = s.Mode.Unfreeze()
	if moved {
		s.pruneExceptOpen()
		s.Commit()
	}
}

// extractDragged pops dragged members out of the open group on release.
// The test target is the group frame recomputed without the dragged
// subtrees, so a member that cleared the shrunken frame leaves the
// group and lands at the top level at its current world position.
func (s *Session) extractDragged() {
	g := s.Level.FindNode(s.Mode.ActiveGroupID())
	if !g.IsGroup() {
		return
	}
	excl := s.dragSet()
	frame := scene.PaddedBB(s.Level.WorldBounds(g, excl), FramePadding)
	for _, id := range s.dragIDs {
		n := s.Level.FindNode(id)
		if n == nil || !s.Level.IsDescendantOf(id, g) {
			continue
		}
		if s.Level.WorldBounds(n, nil).Intersects(frame) {
			continue
		}
		world := s.Level.WorldPosition(n)
		if s.Level.Detach(id) == nil {
			continue
		}
		n.X = world.X
		n.Y = world.Y
		s.Level.Objects = append(s.Level.Objects, n)
	}
}

func (s *Session) finishMarquee() {
	rect, _ := s.MarqueeRect()
	s.marquee = false
	add := s.marqueeAdd
	s.marqueeAdd = false

	selectable := ComputeSelectableSet(s.Level, s.Mode)
	if !add {
		s.Selected = make(map[string]bool)
	}
	s.Level.Walk(func(n, _ *scene.Node) bool {
		if selectable[n.ID] && s.Level.WorldBounds(n, nil).Intersects(rect) {
			s.Selected[n.ID] = true
		}
		return true
	})
	s.Events.Push(event.SelectionChanged, nil)
}
