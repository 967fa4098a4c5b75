package edit

import (
	"testing"

	"github.com/quarternotes/stagecraft/scene"
)

func TestDragMovesAndCommitsOnce(t *testing.T) {
	lvl := level(leaf("n", 10, 10, 16, 16))
	s := NewSession(lvl, nil)

	s.MouseDown(12, 12, Modifiers{})
	s.MouseMove(20, 20, Modifiers{})
	s.MouseMove(30, 25, Modifiers{})
	s.MouseUp(30, 25, Modifiers{})

	n := s.Level.FindNode("n")
	if n.X != 28 || n.Y != 23 {
		t.Fatalf("expected (28, 23), got (%v, %v)", n.X, n.Y)
	}
	if s.History.Len() != 2 {
		t.Fatalf("expected one entry per gesture, got %d entries", s.History.Len())
	}

	// A click without movement selects but records nothing.
	s.MouseDown(30, 25, Modifiers{})
	s.MouseUp(30, 25, Modifiers{})
	if s.History.Len() != 2 {
		t.Fatalf("expected no entry for a plain click, got %d entries", s.History.Len())
	}
}

func TestDragSnapsToGrid(t *testing.T) {
	lvl := level(leaf("n", 0, 0, 16, 16))
	lvl.Settings.SnapToGrid = true
	s := NewSession(lvl, nil)

	s.MouseDown(5, 5, Modifiers{})
	s.MouseMove(55, 40, Modifiers{})
	s.MouseUp(55, 40, Modifiers{})

	n := s.Level.FindNode("n")
	if n.X != 64 || n.Y != 32 {
		t.Fatalf("expected snapped (64, 32), got (%v, %v)", n.X, n.Y)
	}
}

func TestReparentRoundTrip(t *testing.T) {
	lvl := level(
		group("g", 100, 100, leaf("member", 5, 5, 16, 16)),
		leaf("ext", 300, 300, 16, 16),
	)
	s := NewSession(lvl, nil)
	s.Mode = s.Mode.Open(lvl, "g")

	// Drag the external node until the pointer is inside the group
	// frame: it reparents with its position converted to group-local.
	s.MouseDown(305, 305, Modifiers{})
	s.MouseMove(110, 110, Modifiers{})
	s.MouseUp(110, 110, Modifiers{})

	ext := s.Level.FindNode("ext")
	if parent := s.Level.ParentOf("ext"); parent == nil || parent.ID != "g" {
		t.Fatalf("expected ext inside g, got parent %v", parent)
	}
	if ext.X != 5 || ext.Y != 5 {
		t.Fatalf("expected group-local (5, 5), got (%v, %v)", ext.X, ext.Y)
	}
	world := s.Level.WorldPosition(ext)
	if world.X != 105 || world.Y != 105 {
		t.Fatalf("expected world (105, 105), got (%v, %v)", world.X, world.Y)
	}

	// Alt-drag it far out: extraction converts back to world
	// coordinates losslessly.
	s.MouseDown(106, 106, Modifiers{})
	s.MouseMove(500, 500, Modifiers{Extract: true})
	s.MouseUp(500, 500, Modifiers{Extract: true})

	if parent := s.Level.ParentOf("ext"); parent != nil {
		t.Fatalf("expected ext back at top level, got parent %v", parent)
	}
	ext = s.Level.FindNode("ext")
	if ext.X != 499 || ext.Y != 499 {
		t.Fatalf("expected world-absolute (499, 499), got (%v, %v)", ext.X, ext.Y)
	}
}

func TestNoDropIntoGroupWhileExtracting(t *testing.T) {
	lvl := level(
		group("g", 100, 100, leaf("member", 5, 5, 16, 16)),
		leaf("ext", 300, 300, 16, 16),
	)
	s := NewSession(lvl, nil)
	s.Mode = s.Mode.Open(lvl, "g")

	s.MouseDown(305, 305, Modifiers{})
	s.MouseMove(110, 110, Modifiers{Extract: true})
	s.MouseUp(110, 110, Modifiers{Extract: true})

	if parent := s.Level.ParentOf("ext"); parent != nil {
		t.Fatalf("extraction modifier must suppress the drop, got parent %v", parent)
	}
}

func TestAltDragExtraction(t *testing.T) {
	lvl := level(group("G", 100, 100, leaf("L", 5, 5, 16, 16)))
	s := NewSession(lvl, nil)
	s.Mode = s.Mode.Open(lvl, "G")

	s.MouseDown(110, 110, Modifiers{})
	s.MouseMove(310, 110, Modifiers{Extract: true})
	if !s.Mode.FrameFrozen {
		t.Fatal("expected the frame frozen while the modifier is held")
	}
	s.MouseUp(310, 110, Modifiers{Extract: true})

	if s.Mode.FrameFrozen {
		t.Fatal("expected the freeze released on mouse up")
	}
	if parent := s.Level.ParentOf("L"); parent != nil {
		t.Fatalf("expected L extracted to top level, got parent %v", parent)
	}
	L := s.Level.FindNode("L")
	if L.X != 305 || L.Y != 105 {
		t.Fatalf("expected world (305, 105), got (%v, %v)", L.X, L.Y)
	}

	// The emptied group is spared while open, pruned once closed.
	if s.Level.FindNode("G") == nil {
		t.Fatal("open empty group must survive")
	}
	s.Escape()
	if s.Mode.IsActive() {
		t.Fatal("expected escape to exit group edit")
	}
	if s.Level.FindNode("G") != nil {
		t.Fatal("closed empty group must be pruned")
	}
}

func TestAltDragReleaseInsideKeepsChild(t *testing.T) {
	lvl := level(group("G", 100, 100, leaf("L", 5, 5, 16, 16), leaf("M", 40, 5, 16, 16)))
	s := NewSession(lvl, nil)
	s.Mode = s.Mode.Open(lvl, "G")

	// Nudge L while holding the modifier but release while it still
	// overlaps the frame computed without it: it stays a child.
	s.MouseDown(110, 110, Modifiers{})
	s.MouseMove(120, 110, Modifiers{Extract: true})
	s.MouseUp(120, 110, Modifiers{Extract: true})

	if parent := s.Level.ParentOf("L"); parent == nil || parent.ID != "G" {
		t.Fatalf("expected L still inside G, got parent %v", parent)
	}
	L := s.Level.FindNode("L")
	if L.X != 15 || L.Y != 5 {
		t.Fatalf("expected local (15, 5), got (%v, %v)", L.X, L.Y)
	}
}

func TestFreezeFollowsModifier(t *testing.T) {
	lvl := level(group("G", 100, 100, leaf("L", 5, 5, 16, 16)))
	s := NewSession(lvl, nil)
	s.Mode = s.Mode.Open(lvl, "G")

	s.MouseDown(110, 110, Modifiers{})
	s.MouseMove(130, 110, Modifiers{Extract: true})
	if !s.Mode.FrameFrozen {
		t.Fatal("expected frozen while held")
	}
	frozen := s.Mode.FrozenBounds
	s.MouseMove(150, 110, Modifiers{Extract: true})
	if s.Mode.FrozenBounds != frozen {
		t.Fatal("frozen bounds must not drift mid-drag")
	}
	s.MouseMove(160, 110, Modifiers{})
	if s.Mode.FrameFrozen {
		t.Fatal("expected unfrozen once released")
	}
	s.MouseUp(160, 110, Modifiers{})
}

func TestMarqueeSelection(t *testing.T) {
	lvl := level(
		leaf("a", 0, 0, 10, 10),
		leaf("b", 30, 30, 10, 10),
		leaf("c", 200, 200, 10, 10),
	)
	s := NewSession(lvl, nil)

	s.MouseDown(-5, -5, Modifiers{})
	s.MouseMove(20, 20, Modifiers{})
	s.MouseUp(45, 45, Modifiers{})

	got := s.SelectedIDs()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected [a b], got %v", got)
	}

	// Additive marquee keeps the existing selection.
	s.MouseDown(195, 195, Modifiers{Additive: true})
	s.MouseUp(215, 215, Modifiers{Additive: true})
	if got := s.SelectedIDs(); len(got) != 3 {
		t.Fatalf("expected [a b c], got %v", got)
	}

	if s.History.Len() != 1 {
		t.Fatalf("marquee selection must not push history, got %d entries", s.History.Len())
	}
}

func TestClickOutsideClosesOneThenAll(t *testing.T) {
	lvl := level(
		group("outer", 0, 0,
			leaf("bg", 0, 0, 300, 300),
			group("inner", 50, 50, leaf("x", 0, 0, 20, 20)),
		),
	)
	s := NewSession(lvl, nil)
	s.Mode = s.Mode.Open(lvl, "inner")

	// Outside inner's frame but inside outer's: close one level.
	s.MouseDown(200, 200, Modifiers{})
	s.MouseUp(200, 200, Modifiers{})
	if got := s.Mode.ActiveGroupID(); got != "outer" {
		t.Fatalf("expected one level closed, active %q", got)
	}

	// Outside every open frame: exit entirely.
	s.MouseDown(500, 500, Modifiers{})
	s.MouseUp(500, 500, Modifiers{})
	if s.Mode.IsActive() {
		t.Fatalf("expected full exit, still open %v", s.Mode.OpenGroups)
	}
}

func TestClickInsideFrameStartsMarquee(t *testing.T) {
	lvl := level(group("g", 50, 50, leaf("x", 0, 0, 20, 20)))
	s := NewSession(lvl, nil)
	s.Mode = s.Mode.Open(lvl, "g")

	// Inside the padded frame but not on the child: marquee, not close.
	s.MouseDown(45, 45, Modifiers{})
	if _, ok := s.MarqueeRect(); !ok {
		t.Fatal("expected a marquee to start")
	}
	if s.Mode.ActiveGroupID() != "g" {
		t.Fatal("group must stay open")
	}
	s.MouseUp(72, 72, Modifiers{})
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != "x" {
		t.Fatalf("expected [x], got %v", got)
	}
}

func TestDoubleClickOpensAndDescends(t *testing.T) {
	lvl := nestedLevel()
	s := NewSession(lvl, nil)

	s.DoubleClick(20, 20)
	if got := s.Mode.ActiveGroupID(); got != "outer" {
		t.Fatalf("expected outer open, got %q", got)
	}
	s.DoubleClick(35, 35)
	if got := s.Mode.ActiveGroupID(); got != "inner" {
		t.Fatalf("expected descent into inner, got %q", got)
	}
	if len(s.Mode.OpenGroups) != 2 {
		t.Fatalf("expected chain [outer inner], got %v", s.Mode.OpenGroups)
	}

	s.DoubleClick(201, 1)
	if got := s.Mode.ActiveGroupID(); got != "inner" {
		t.Fatalf("double-click on a leaf must not change the mode, got %q", got)
	}
}

func TestGestureGuards(t *testing.T) {
	lvl := level(leaf("a", 0, 0, 10, 10), leaf("b", 50, 0, 10, 10))
	s := NewSession(lvl, nil)

	s.MouseDown(5, 5, Modifiers{})
	// A second down while dragging must not hijack the gesture.
	s.MouseDown(55, 5, Modifiers{})
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("expected [a], got %v", got)
	}
	s.MouseMove(15, 5, Modifiers{})
	s.MouseUp(15, 5, Modifiers{})
	if n := s.Level.FindNode("a"); n.X != 10 {
		t.Fatalf("expected a at x=10, got %v", n.X)
	}
	if n := s.Level.FindNode("b"); n.X != 50 {
		t.Fatalf("expected b untouched at x=50, got %v", n.X)
	}
}

func TestShiftClickTogglesWithoutDragging(t *testing.T) {
	lvl := level(leaf("a", 0, 0, 10, 10), leaf("b", 50, 0, 10, 10))
	s := NewSession(lvl, nil)

	s.MouseDown(5, 5, Modifiers{Additive: true})
	s.MouseUp(5, 5, Modifiers{Additive: true})
	s.MouseDown(55, 5, Modifiers{Additive: true})
	s.MouseUp(55, 5, Modifiers{Additive: true})
	if got := s.SelectedIDs(); len(got) != 2 {
		t.Fatalf("expected both selected, got %v", got)
	}

	s.MouseDown(5, 5, Modifiers{Additive: true})
	s.MouseUp(5, 5, Modifiers{Additive: true})
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != "b" {
		t.Fatalf("expected toggle off to leave [b], got %v", got)
	}

	// Shift-click never begins a drag.
	s.MouseDown(55, 5, Modifiers{Additive: true})
	s.MouseMove(80, 5, Modifiers{Additive: true})
	s.MouseUp(80, 5, Modifiers{Additive: true})
	if n := s.Level.FindNode("b"); n.X != 50 {
		t.Fatalf("expected b unmoved, got x=%v", n.X)
	}
}

func TestDropIntoGroupAppendsOnTop(t *testing.T) {
	lvl := level(
		group("g", 100, 100, leaf("member", 5, 5, 16, 16)),
		leaf("ext", 300, 300, 16, 16),
	)
	s := NewSession(lvl, nil)
	s.Mode = s.Mode.Open(lvl, "g")

	s.MouseDown(305, 305, Modifiers{})
	s.MouseMove(110, 110, Modifiers{})
	s.MouseUp(110, 110, Modifiers{})

	g := s.Level.FindNode("g")
	if len(g.Children) != 2 || g.Children[1].ID != "ext" {
		t.Fatalf("expected ext appended last, got %v", scene.SubtreeIDs(g))
	}
	if len(s.Level.Objects) != 1 {
		t.Fatalf("expected ext removed from top level, got %d objects", len(s.Level.Objects))
	}
}
