package edit

import (
	"testing"

	"github.com/quarternotes/stagecraft/scene"
)

func TestDeleteSelectedExtractsPlayerStart(t *testing.T) {
	ps := scene.NewPlayerStart(20, 30)
	ps.ID = "ps"
	lvl := level(group("g", 100, 100, leaf("plain", 0, 0, 8, 8), ps))
	s := NewSession(lvl, nil)

	s.SelectOnly("g")
	s.DeleteSelected()

	if s.Level.FindNode("plain") != nil {
		t.Fatal("expected plain deleted with the group")
	}
	got := s.Level.FindNode("ps")
	if got == nil {
		t.Fatal("expected the player start to survive")
	}
	if s.Level.ParentOf("ps") != nil {
		t.Fatal("expected the player start lifted to top level")
	}
	if got.X != 120 || got.Y != 130 {
		t.Fatalf("expected world (120, 130), got (%v, %v)", got.X, got.Y)
	}
	if n := s.Level.CountPlayerStarts(); n != 1 {
		t.Fatalf("expected 1 player start, got %d", n)
	}
	if got := s.SelectedIDs(); len(got) != 0 {
		t.Fatalf("expected selection cleared, got %v", got)
	}
}

func TestDeletePlayerStartRecreatesOne(t *testing.T) {
	lvl := scene.NewLevel("t")
	psID := lvl.Objects[0].ID
	s := NewSession(lvl, nil)

	s.SelectOnly(psID)
	s.DeleteSelected()

	if n := s.Level.CountPlayerStarts(); n != 1 {
		t.Fatalf("expected a fresh player start, got %d", n)
	}
	if s.Level.FindNode(psID) != nil {
		t.Fatal("expected the deleted node gone, not resurrected")
	}
}

func TestGroupAndUngroupPreservePositions(t *testing.T) {
	lvl := level(leaf("a", 10, 20, 16, 16), leaf("b", 50, 60, 16, 16))
	s := NewSession(lvl, nil)

	s.setSelection("a", "b")
	s.GroupSelection()

	sel := s.SelectedIDs()
	if len(sel) != 1 {
		t.Fatalf("expected the new group selected, got %v", sel)
	}
	g := s.Level.FindNode(sel[0])
	if !g.IsGroup() {
		t.Fatal("expected a group")
	}
	if g.X != 10 || g.Y != 20 {
		t.Fatalf("expected group at min corner (10, 20), got (%v, %v)", g.X, g.Y)
	}
	for id, want := range map[string][2]float64{"a": {10, 20}, "b": {50, 60}} {
		w := s.Level.WorldPosition(s.Level.FindNode(id))
		if w.X != want[0] || w.Y != want[1] {
			t.Fatalf("expected %s at world %v, got (%v, %v)", id, want, w.X, w.Y)
		}
	}

	s.Ungroup()

	if s.Level.FindNode(g.ID) != nil {
		t.Fatal("expected the group dissolved")
	}
	for id, want := range map[string][2]float64{"a": {10, 20}, "b": {50, 60}} {
		n := s.Level.FindNode(id)
		if s.Level.ParentOf(id) != nil {
			t.Fatalf("expected %s back at top level", id)
		}
		if n.X != want[0] || n.Y != want[1] {
			t.Fatalf("expected %s at (%v, %v), got (%v, %v)", id, want[0], want[1], n.X, n.Y)
		}
	}
	if got := s.SelectedIDs(); len(got) != 2 {
		t.Fatalf("expected the freed children selected, got %v", got)
	}
}

func TestGroupSelectionSkipsForeignParents(t *testing.T) {
	lvl := level(
		group("g", 0, 0, leaf("inside", 5, 5, 8, 8)),
		leaf("out", 100, 100, 8, 8),
	)
	s := NewSession(lvl, nil)

	// Selection spans two parent contexts; only the top-level node
	// shares the current (top-level) context.
	s.setSelection("inside", "out")
	s.GroupSelection()

	if parent := s.Level.ParentOf("inside"); parent == nil || parent.ID != "g" {
		t.Fatalf("expected inside untouched under g, got %v", parent)
	}
	newParent := s.Level.ParentOf("out")
	if newParent == nil || !newParent.IsGroup() {
		t.Fatal("expected out wrapped in a new group")
	}
}

func TestUngroupSkipsOpenGroup(t *testing.T) {
	lvl := level(group("g", 10, 10, leaf("k", 5, 5, 8, 8)))
	s := NewSession(lvl, nil)
	s.Mode = s.Mode.Open(lvl, "g")

	s.setSelection("g")
	s.Ungroup()

	if s.Level.FindNode("g") == nil {
		t.Fatal("an open group must not be dissolved")
	}
	if parent := s.Level.ParentOf("k"); parent == nil || parent.ID != "g" {
		t.Fatalf("expected k still under g, got %v", parent)
	}
}

func TestDuplicatePlacesClones(t *testing.T) {
	lvl := level(leaf("src", 10, 10, 16, 16))
	s := NewSession(lvl, nil)

	s.SelectOnly("src")
	s.Duplicate(100, 100)

	if !s.IsPlacing() {
		t.Fatal("expected placing mode")
	}
	ids := s.SelectedIDs()
	if len(ids) != 1 || ids[0] == "src" {
		t.Fatalf("expected one fresh clone selected, got %v", ids)
	}
	clone := s.Level.FindNode(ids[0])
	if clone.X != 42 || clone.Y != 42 {
		t.Fatalf("expected grid-step offset (42, 42), got (%v, %v)", clone.X, clone.Y)
	}

	s.MouseMove(120, 130, Modifiers{})
	s.MouseDown(120, 130, Modifiers{})

	if s.IsPlacing() {
		t.Fatal("expected the click to commit placement")
	}
	if clone.X != 62 || clone.Y != 72 {
		t.Fatalf("expected (62, 72), got (%v, %v)", clone.X, clone.Y)
	}
	if s.History.Len() != 2 {
		t.Fatalf("expected one entry for the whole duplicate, got %d", s.History.Len())
	}
}

func TestDuplicateCancelDiscardsClones(t *testing.T) {
	lvl := level(leaf("src", 10, 10, 16, 16))
	s := NewSession(lvl, nil)

	s.SelectOnly("src")
	s.Duplicate(100, 100)
	s.CancelAll()

	if s.IsPlacing() {
		t.Fatal("expected placing aborted")
	}
	if len(s.Level.Objects) != 1 || s.Level.Objects[0].ID != "src" {
		t.Fatalf("expected only src to remain, got %d objects", len(s.Level.Objects))
	}
	if s.History.Len() != 1 {
		t.Fatalf("expected no history entry, got %d", s.History.Len())
	}
}

func TestDuplicateNeverCopiesPlayerStarts(t *testing.T) {
	lvl := scene.NewLevel("t")
	psID := lvl.Objects[0].ID
	s := NewSession(lvl, nil)

	s.SelectOnly(psID)
	s.Duplicate(0, 0)
	if s.IsPlacing() {
		t.Fatal("a player start alone must not duplicate")
	}

	// A group clone drops its player start descendant.
	ps := scene.NewPlayerStart(5, 5)
	g := group("g", 200, 200, leaf("k", 1, 1, 8, 8), ps)
	lvl.Objects = append(lvl.Objects, g)
	s.SelectOnly("g")
	s.Duplicate(0, 0)

	if !s.IsPlacing() {
		t.Fatal("expected the group clone placing")
	}
	cloneID := s.SelectedIDs()[0]
	clone := s.Level.FindNode(cloneID)
	if len(clone.Children) != 1 {
		t.Fatalf("expected the clone stripped to one child, got %d", len(clone.Children))
	}
	if n := s.Level.CountPlayerStarts(); n != 1 {
		t.Fatalf("expected 1 player start, got %d", n)
	}
}

func TestPlaceNewIntoOpenGroup(t *testing.T) {
	lvl := level(group("g", 100, 100, leaf("m", 5, 5, 16, 16)))
	s := NewSession(lvl, nil)
	s.Mode = s.Mode.Open(lvl, "g")

	n := scene.NewLeaf(scene.TypeRect, 0, 0, 16, 16)
	s.PlaceNew(n, 110, 120)

	if parent := s.Level.ParentOf(n.ID); parent == nil || parent.ID != "g" {
		t.Fatalf("expected stamped into g, got %v", parent)
	}
	if n.X != 10 || n.Y != 20 {
		t.Fatalf("expected group-local (10, 20), got (%v, %v)", n.X, n.Y)
	}
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != n.ID {
		t.Fatalf("expected the stamp selected, got %v", got)
	}
}

func TestPlaceNewPlayerStartRelocates(t *testing.T) {
	lvl := scene.NewLevel("t")
	ps := lvl.FindPlayerStart()
	s := NewSession(lvl, nil)

	s.PlaceNew(scene.NewPlayerStart(0, 0), 200, 300)

	if n := s.Level.CountPlayerStarts(); n != 1 {
		t.Fatalf("expected the existing player start reused, got %d", n)
	}
	if ps.X != 200 || ps.Y != 300 {
		t.Fatalf("expected relocation to (200, 300), got (%v, %v)", ps.X, ps.Y)
	}
}

func TestReorderSelected(t *testing.T) {
	ids := func(lvl *scene.Level) []string {
		var out []string
		for _, n := range lvl.Objects {
			out = append(out, n.ID)
		}
		return out
	}
	lvl := level(leaf("a", 0, 0, 8, 8), leaf("b", 20, 0, 8, 8), leaf("c", 40, 0, 8, 8))
	s := NewSession(lvl, nil)

	s.SelectOnly("a")
	s.BringToFront()
	if got := ids(s.Level); got[2] != "a" {
		t.Fatalf("expected a drawn last, got %v", got)
	}

	s.SelectOnly("c")
	s.SendToBack()
	if got := ids(s.Level); got[0] != "c" {
		t.Fatalf("expected c drawn first, got %v", got)
	}

	// A multi-node block keeps its relative order.
	s.setSelection("c", "b")
	s.BringToFront()
	got := ids(s.Level)
	if got[0] != "a" || got[1] != "c" || got[2] != "b" {
		t.Fatalf("expected [a c b], got %v", got)
	}
}

func TestCopyPasteRoundTrip(t *testing.T) {
	lvl := level(
		group("g", 100, 100, leaf("child", 5, 5, 8, 8)),
		leaf("a", 10, 20, 16, 16),
	)
	s := NewSession(lvl, nil)

	s.setSelection("g", "child", "a")
	copied := s.CopySelection()
	if len(copied) != 2 {
		t.Fatalf("expected child folded into g, got %d roots", len(copied))
	}
	if copied[0].X != 100 || copied[0].Y != 100 {
		t.Fatalf("expected g's world position baked in, got (%v, %v)", copied[0].X, copied[0].Y)
	}

	s.Paste(copied, 200, 300)

	if len(s.Level.Objects) != 4 {
		t.Fatalf("expected 4 top-level objects after paste, got %d", len(s.Level.Objects))
	}
	ids := s.SelectedIDs()
	if len(ids) != 2 {
		t.Fatalf("expected the pasted nodes selected, got %v", ids)
	}
	pg := s.Level.FindNode(ids[0])
	pa := s.Level.FindNode(ids[1])
	if pg.ID == "g" || pa.ID == "a" {
		t.Fatal("expected pasted nodes to carry fresh ids")
	}
	// Batch min corner (10, 20) lands on the paste point.
	if pg.X != 290 || pg.Y != 380 {
		t.Fatalf("expected pasted group at (290, 380), got (%v, %v)", pg.X, pg.Y)
	}
	if pa.X != 200 || pa.Y != 300 {
		t.Fatalf("expected pasted leaf at (200, 300), got (%v, %v)", pa.X, pa.Y)
	}
	if len(pg.Children) != 1 || pg.Children[0].X != 5 || pg.Children[0].Y != 5 {
		t.Fatalf("expected the child's local offset preserved, got %+v", pg.Children)
	}
	if orig := s.Level.FindNode("g"); orig.X != 100 || orig.Y != 100 {
		t.Fatalf("expected the source untouched, got (%v, %v)", orig.X, orig.Y)
	}
	if s.History.Len() != 2 {
		t.Fatalf("expected one entry for the paste, got %d", s.History.Len())
	}
}

func TestPasteStripsPlayerStarts(t *testing.T) {
	lvl := level(leaf("a", 0, 0, 16, 16))
	s := NewSession(lvl, nil)

	payload := []*scene.Node{
		scene.NewPlayerStart(5, 5),
		group("g2", 50, 50, leaf("inner", 0, 0, 8, 8), scene.NewPlayerStart(3, 3)),
	}
	s.Paste(payload, 50, 50)

	if n := s.Level.CountPlayerStarts(); n != 0 {
		t.Fatalf("expected player starts dropped from the paste, got %d", n)
	}
	if len(s.Level.Objects) != 2 {
		t.Fatalf("expected only the group pasted, got %d objects", len(s.Level.Objects))
	}
	pasted := s.Level.Objects[1]
	if !pasted.IsGroup() || len(pasted.Children) != 1 {
		t.Fatalf("expected a group with the surviving child, got %+v", pasted)
	}
}

func TestPasteIntoOpenGroupSnapped(t *testing.T) {
	lvl := level(group("g", 100, 100, leaf("m", 5, 5, 8, 8)))
	lvl.Settings.SnapToGrid = true
	s := NewSession(lvl, nil)
	s.Mode = s.Mode.Open(s.Level, "g")

	s.Paste([]*scene.Node{leaf("p", 0, 0, 8, 8)}, 150, 140)

	ids := s.SelectedIDs()
	if len(ids) != 1 {
		t.Fatalf("expected one pasted node, got %v", ids)
	}
	p := s.Level.FindNode(ids[0])
	if s.Level.ParentOf(p.ID) != s.Level.FindNode("g") {
		t.Fatal("expected the paste to land in the open group")
	}
	// World target snaps to (160, 128); the group sits at (100, 100).
	if p.X != 60 || p.Y != 28 {
		t.Fatalf("expected local (60, 28), got (%v, %v)", p.X, p.Y)
	}
}

func TestMoveSelectedByParentAndChildOnce(t *testing.T) {
	lvl := level(group("g", 10, 10, leaf("k", 5, 5, 8, 8)))
	s := NewSession(lvl, nil)

	s.setSelection("g", "k")
	s.MoveSelectedBy(5, 5)

	g := s.Level.FindNode("g")
	k := s.Level.FindNode("k")
	if g.X != 15 || g.Y != 15 {
		t.Fatalf("expected g at (15, 15), got (%v, %v)", g.X, g.Y)
	}
	if k.X != 5 || k.Y != 5 {
		t.Fatalf("expected k's local offset unchanged, got (%v, %v)", k.X, k.Y)
	}
	w := s.Level.WorldPosition(k)
	if w.X != 20 || w.Y != 20 {
		t.Fatalf("expected k at world (20, 20), got (%v, %v)", w.X, w.Y)
	}
	if s.History.Len() != 2 {
		t.Fatalf("expected one entry for the nudge, got %d", s.History.Len())
	}
}
