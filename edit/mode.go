package edit

import (
	"log"

	"github.com/jakecoffman/cp/v2"

	"github.com/quarternotes/stagecraft/history"
	"github.com/quarternotes/stagecraft/scene"
)

// FramePadding is the margin, in world units, added around an open
// group's frame. It makes the click-outside test and the drop target
// forgiving.
const FramePadding = 10.0

// Mode is the group edit mode state: the chain of open groups from a
// top-level root down to the active one, plus the transient frame
// freeze used during alt-drag. Mode is a value; every operation returns
// the next state instead of mutating in place, so a caller never
// observes a half-updated stack.
type Mode struct {
	OpenGroups   []string
	FrameFrozen  bool
	FrozenBounds cp.BB
}

func (m Mode) IsActive() bool {
	return len(m.OpenGroups) > 0
}

// ActiveGroupID returns the deepest open group's id, or "" when the
// mode is inactive.
func (m Mode) ActiveGroupID() string {
	if len(m.OpenGroups) == 0 {
		return ""
	}
	return m.OpenGroups[len(m.OpenGroups)-1]
}

func (m Mode) IsOpen(id string) bool {
	if id == "" {
		return false
	}
	for _, open := range m.OpenGroups {
		if open == id {
			return true
		}
	}
	return false
}

// Open enters edit mode on the group with the given id. The open stack
// becomes the full ancestor chain down to that group, which keeps every
// entry a direct child of its predecessor whether this is a first open,
// a descent into a sub-group, or a jump to an unrelated group. Unknown
// or non-group ids are ignored.
func (m Mode) Open(lvl *scene.Level, id string) Mode {
	path := lvl.PathTo(id)
	if len(path) == 0 || !path[len(path)-1].IsGroup() {
		return m
	}
	chain := make([]string, 0, len(path))
	for _, p := range path {
		if !p.IsGroup() {
			return m
		}
		chain = append(chain, p.ID)
	}
	m.OpenGroups = chain
	return m.Unfreeze()
}

// Close exits one nesting level. Closing the last open group leaves the
// mode inactive.
func (m Mode) Close() Mode {
	if len(m.OpenGroups) <= 1 {
		return Mode{}
	}
	m.OpenGroups = m.OpenGroups[:len(m.OpenGroups)-1]
	return m.Unfreeze()
}

func (m Mode) CloseAll() Mode {
	return Mode{}
}

// FreezeFrame caches the active group's frame computed without the
// excluded subtrees, so the visible frame holds still while children
// are dragged out. The cache lasts until Unfreeze.
func (m Mode) FreezeFrame(lvl *scene.Level, exclude map[string]bool) Mode {
	g := lvl.FindNode(m.ActiveGroupID())
	if !g.IsGroup() {
		return m
	}
	m.FrozenBounds = scene.PaddedBB(lvl.WorldBounds(g, exclude), FramePadding)
	m.FrameFrozen = true
	return m
}

func (m Mode) Unfreeze() Mode {
	m.FrameFrozen = false
	m.FrozenBounds = cp.BB{}
	return m
}

// ActiveFrame returns the padded world bounds of the active group's
// frame, frozen bounds while a freeze is in effect. The second result
// is false when no group is open or the active group is gone from the
// tree.
func (m Mode) ActiveFrame(lvl *scene.Level) (cp.BB, bool) {
	id := m.ActiveGroupID()
	if id == "" {
		return cp.BB{}, false
	}
	if m.FrameFrozen {
		return m.FrozenBounds, true
	}
	g := lvl.FindNode(id)
	if !g.IsGroup() {
		return cp.BB{}, false
	}
	return scene.PaddedBB(lvl.WorldBounds(g, nil), FramePadding), true
}

// InsideActiveFrame reports whether the world point lands inside the
// active group's padded frame. Always false when the mode is inactive.
func (m Mode) InsideActiveFrame(lvl *scene.Level, x, y float64) bool {
	bb, ok := m.ActiveFrame(lvl)
	return ok && bb.ContainsVect(cp.Vector{X: x, Y: y})
}

// Project reduces the mode to the form stored in history entries.
func (m Mode) Project() history.ModeState {
	s := history.ModeState{ActiveGroup: m.ActiveGroupID()}
	if len(m.OpenGroups) > 0 {
		s.OpenGroups = make([]string, len(m.OpenGroups))
		copy(s.OpenGroups, m.OpenGroups)
	}
	return s
}

// RestoreMode rebuilds group edit mode from a history snapshot against
// the live tree. The snapshot is validated in full: the recorded active
// group must be the deepest entry, every entry must still exist as a
// group, and each entry must be a direct child of its predecessor. Any
// failure resets the mode to inactive; a partially open stack is never
// produced.
func RestoreMode(lvl *scene.Level, s history.ModeState) Mode {
	if len(s.OpenGroups) == 0 {
		if s.ActiveGroup != "" {
			log.Printf("edit: dropping group edit state: active group %s with empty stack", s.ActiveGroup)
		}
		return Mode{}
	}
	if last := s.OpenGroups[len(s.OpenGroups)-1]; last != s.ActiveGroup {
		log.Printf("edit: dropping group edit state: active group %q is not the deepest open group %q", s.ActiveGroup, last)
		return Mode{}
	}
	ix := scene.BuildIndex(lvl)
	for i, id := range s.OpenGroups {
		if !ix.Node(id).IsGroup() {
			log.Printf("edit: dropping group edit state: open group %q is missing or not a group", id)
			return Mode{}
		}
		if i > 0 {
			if pid, _ := ix.ParentID(id); pid != s.OpenGroups[i-1] {
				log.Printf("edit: dropping group edit state: %q is not a direct child of %q", id, s.OpenGroups[i-1])
				return Mode{}
			}
		}
	}
	open := make([]string, len(s.OpenGroups))
	copy(open, s.OpenGroups)
	return Mode{OpenGroups: open}
}
