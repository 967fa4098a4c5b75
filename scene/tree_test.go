package scene

import "testing"

func TestFindNode(t *testing.T) {
	lvl := testLevel()

	cases := []struct {
		name  string
		id    string
		found bool
	}{
		{name: "top level", id: "bg", found: true},
		{name: "nested", id: "l2", found: true},
		{name: "missing", id: "nope", found: false},
		{name: "empty id", id: "", found: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n := lvl.FindNode(c.id)
			if (n != nil) != c.found {
				t.Fatalf("expected found=%v, got node %v", c.found, n)
			}
		})
	}
}

func TestPathTo(t *testing.T) {
	lvl := testLevel()

	path := lvl.PathTo("l2")
	if len(path) != 3 {
		t.Fatalf("expected path length 3, got %d", len(path))
	}
	for i, wantID := range []string{"g1", "g2", "l2"} {
		if path[i].ID != wantID {
			t.Fatalf("expected path[%d]=%q, got %q", i, wantID, path[i].ID)
		}
	}

	if lvl.PathTo("nope") != nil {
		t.Fatal("expected nil path for unknown id")
	}
}

func TestParentOf(t *testing.T) {
	lvl := testLevel()

	if p := lvl.ParentOf("l1"); p == nil || p.ID != "g1" {
		t.Fatalf("expected parent g1, got %v", p)
	}
	if p := lvl.ParentOf("g1"); p != nil {
		t.Fatalf("expected nil parent for top-level node, got %q", p.ID)
	}
	if p := lvl.ParentOf("nope"); p != nil {
		t.Fatalf("expected nil parent for unknown id, got %q", p.ID)
	}
}

func TestIsDescendantOf(t *testing.T) {
	lvl := testLevel()
	g1 := lvl.FindNode("g1")

	if !lvl.IsDescendantOf("l2", g1) {
		t.Fatal("expected l2 to be a descendant of g1")
	}
	if lvl.IsDescendantOf("g1", g1) {
		t.Fatal("a node is not its own descendant")
	}
	if lvl.IsDescendantOf("bg", g1) {
		t.Fatal("expected bg outside g1")
	}
}

func TestDetach(t *testing.T) {
	lvl := testLevel()

	n := lvl.Detach("l1")
	if n == nil || n.ID != "l1" {
		t.Fatalf("expected detached l1, got %v", n)
	}
	if lvl.FindNode("l1") != nil {
		t.Fatal("l1 still present after detach")
	}
	g1 := lvl.FindNode("g1")
	if len(g1.Children) != 1 || g1.Children[0].ID != "g2" {
		t.Fatalf("expected g1 to keep only g2, got %d children", len(g1.Children))
	}

	top := lvl.Detach("bg")
	if top == nil || top.ID != "bg" {
		t.Fatalf("expected detached bg, got %v", top)
	}
	if lvl.Detach("nope") != nil {
		t.Fatal("expected nil for unknown id")
	}
}

func TestCollectIDs(t *testing.T) {
	lvl := testLevel()
	ids := lvl.CollectIDs("g1")
	want := []string{"g1", "l1", "g2", "l2"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected ids[%d]=%q, got %q", i, want[i], ids[i])
		}
	}
}

func TestEffectiveLayerID(t *testing.T) {
	lvl := testLevel()
	lvl.AddLayer("decor", "Decor")
	lvl.FindNode("g1").LayerID = "decor"
	lvl.FindNode("l2").LayerID = DefaultLayerID

	cases := []struct {
		name string
		id   string
		want string
	}{
		{name: "own layer", id: "g1", want: "decor"},
		{name: "inherited from ancestor", id: "l1", want: "decor"},
		{name: "own overrides ancestor", id: "l2", want: DefaultLayerID},
		{name: "no layer anywhere defaults", id: "bg", want: DefaultLayerID},
		{name: "unknown id defaults", id: "nope", want: DefaultLayerID},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := lvl.EffectiveLayerID(c.id); got != c.want {
				t.Fatalf("expected %q, got %q", c.want, got)
			}
		})
	}
}

func TestAddLayerUniqueIDs(t *testing.T) {
	lvl := testLevel()
	a := lvl.AddLayer("", "Decor")
	b := lvl.AddLayer("", "Decor")
	if a.ID == b.ID {
		t.Fatalf("expected distinct layer ids, both %q", a.ID)
	}
	if lvl.Layer(a.ID) == nil || lvl.Layer(b.ID) == nil {
		t.Fatal("expected both layers retrievable")
	}
}

func TestLayerVisibleUnknownDefaultsVisible(t *testing.T) {
	lvl := testLevel()
	if !lvl.LayerVisible("ghost") {
		t.Fatal("unknown layer id should count as visible")
	}
}

func TestNormalizeDropsLeafChildren(t *testing.T) {
	n := &Node{ID: "x", Type: TypeRect, Children: []*Node{leaf("y", 0, 0, 1, 1)}}
	n.Normalize()
	if n.Children != nil {
		t.Fatalf("expected leaf children cleared, got %d", len(n.Children))
	}

	g := group("g", 0, 0, nil, leaf("z", 0, 0, 1, 1))
	g.Normalize()
	if len(g.Children) != 1 || g.Children[0].ID != "z" {
		t.Fatalf("expected nil child dropped, got %d children", len(g.Children))
	}
}
