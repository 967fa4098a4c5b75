package edit

import (
	"testing"

	"github.com/quarternotes/stagecraft/scene"
)

func assertSet(t *testing.T, got map[string]bool, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for _, id := range want {
		if !got[id] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSelectableNormalMode(t *testing.T) {
	lvl := nestedLevel()
	got := ComputeSelectableSet(lvl, Mode{})
	assertSet(t, got, "outer", "other", "loose")
}

func TestSelectableNeverContainsNestedInNormalMode(t *testing.T) {
	lvl := nestedLevel()
	got := ComputeSelectableSet(lvl, Mode{})
	for _, id := range []string{"a", "inner", "deep", "b"} {
		if got[id] {
			t.Fatalf("nested node %q must not be selectable in normal mode", id)
		}
	}
}

func TestSelectableEditMode(t *testing.T) {
	cases := []struct {
		name   string
		active string
		want   []string
	}{
		// descendants of outer, plus every non-open group, plus
		// top-level non-groups. outer itself is transparent.
		{"outer_open", "outer", []string{"a", "inner", "deep", "other", "loose"}},
		// editing inner drops the sibling a: it is neither a
		// descendant of the active group nor top-level.
		{"inner_open", "inner", []string{"deep", "other", "loose"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl := nestedLevel()
			m := Mode{}.Open(lvl, c.active)
			assertSet(t, ComputeSelectableSet(lvl, m), c.want...)
		})
	}
}

func TestSelectableVisibilityFiltering(t *testing.T) {
	cases := []struct {
		name  string
		mutate func(lvl *scene.Level)
		mode  func(lvl *scene.Level) Mode
		want  []string
	}{
		{
			"hidden_node",
			func(lvl *scene.Level) { lvl.FindNode("loose").Visible = false },
			func(*scene.Level) Mode { return Mode{} },
			[]string{"outer", "other"},
		},
		{
			"locked_node",
			func(lvl *scene.Level) { lvl.FindNode("outer").Locked = true },
			func(*scene.Level) Mode { return Mode{} },
			[]string{"other", "loose"},
		},
		{
			"hidden_layer",
			func(lvl *scene.Level) {
				lvl.Layers = append(lvl.Layers, scene.Layer{ID: "bg", Name: "BG", Visible: false})
				lvl.FindNode("loose").LayerID = "bg"
			},
			func(*scene.Level) Mode { return Mode{} },
			[]string{"outer", "other"},
		},
		{
			"hidden_ancestor_in_edit_mode",
			func(lvl *scene.Level) { lvl.FindNode("inner").Visible = false },
			func(lvl *scene.Level) Mode { return Mode{}.Open(lvl, "outer") },
			[]string{"a", "other", "loose"},
		},
		{
			"inherited_hidden_layer_in_edit_mode",
			func(lvl *scene.Level) {
				lvl.Layers = append(lvl.Layers, scene.Layer{ID: "bg", Name: "BG", Visible: false})
				lvl.FindNode("inner").LayerID = "bg"
			},
			func(lvl *scene.Level) Mode { return Mode{}.Open(lvl, "outer") },
			[]string{"a", "other", "loose"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl := nestedLevel()
			c.mutate(lvl)
			assertSet(t, ComputeSelectableSet(lvl, c.mode(lvl)), c.want...)
		})
	}
}

func TestSelectableNilLevel(t *testing.T) {
	if got := ComputeSelectableSet(nil, Mode{}); len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
}
