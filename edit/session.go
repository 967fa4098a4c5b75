package edit

import (
	"math"

	"github.com/jakecoffman/cp/v2"

	"github.com/quarternotes/stagecraft/common"
	"github.com/quarternotes/stagecraft/event"
	"github.com/quarternotes/stagecraft/history"
	"github.com/quarternotes/stagecraft/scene"
)

// Modifiers carries the modifier keys held during a pointer event.
type Modifiers struct {
	Additive bool // shift: toggle membership instead of replacing the selection
	Extract  bool // alt: drag children out of the open group
}

// Session owns one level being edited: the tree, the selection, the
// group edit mode, and the undo history, plus the transient state of
// whatever gesture is in flight. All methods take world-space
// coordinates; the caller converts from screen space first. Methods are
// not safe for concurrent use; the editor drives them from its single
// update loop.
type Session struct {
	Level    *scene.Level
	Mode     Mode
	Selected map[string]bool
	History  *history.Manager
	Events   *event.Queue

	dragging  bool
	dragIDs   []string
	dragOrig  map[string]cp.Vector
	dragFrom  cp.Vector
	dragMoved bool

	marquee     bool
	marqueeAdd  bool
	marqueeFrom cp.Vector
	marqueeTo   cp.Vector

	placing  bool
	placeIDs []string
}

// NewSession starts editing the given level. A nil level gets replaced
// with a fresh empty one.
func NewSession(lvl *scene.Level, events *event.Queue) *Session {
	if lvl == nil {
		lvl = scene.NewLevel("untitled")
	}
	s := &Session{
		Level:    lvl,
		Selected: make(map[string]bool),
		Events:   events,
	}
	s.History = history.NewManager(s.snapshot())
	return s
}

// ReplaceLevel swaps in a freshly created or loaded level and resets
// selection, mode, and history.
func (s *Session) ReplaceLevel(lvl *scene.Level) {
	if lvl == nil {
		return
	}
	s.Level = lvl
	s.Selected = make(map[string]bool)
	s.Mode = Mode{}
	s.clearGestures()
	s.History = history.NewManager(s.snapshot())
	s.Events.Push(event.LevelReplaced, nil)
}

func (s *Session) snapshot() *history.Entry {
	return &history.Entry{
		Objects:  s.Level.Objects,
		Selected: s.selectedInDrawOrder(),
		Mode:     s.Mode.Project(),
	}
}

// Commit records the current state as one undo step. Interactive
// operations call it once per completed gesture; UI panels call it
// after writing node fields directly.
func (s *Session) Commit() {
	s.History.Push(s.snapshot())
	s.Events.Push(event.TreeChanged, nil)
}

func (s *Session) Undo() bool {
	return s.History.Undo(s.applyEntry)
}

func (s *Session) Redo() bool {
	return s.History.Redo(s.applyEntry)
}

// applyEntry installs a history snapshot as the live state. Selection
// ids that no longer resolve are dropped; a mode that no longer matches
// the restored tree resets to inactive.
func (s *Session) applyEntry(e *history.Entry) {
	if e == nil {
		return
	}
	s.Level.Objects = e.Objects
	s.Selected = make(map[string]bool, len(e.Selected))
	for _, id := range e.Selected {
		if s.Level.FindNode(id) != nil {
			s.Selected[id] = true
		}
	}
	s.Mode = RestoreMode(s.Level, e.Mode)
	s.clearGestures()
	s.Events.Push(event.TreeChanged, nil)
	s.Events.Push(event.SelectionChanged, nil)
	s.Events.Push(event.ModeChanged, nil)
}

func (s *Session) Dirty() bool {
	return s.History.Dirty()
}

// MarkSaved records that the current state made it to disk.
func (s *Session) MarkSaved() {
	s.History.MarkSaved()
	s.Events.Push(event.LevelSaved, nil)
}

// SelectedIDs returns the selected ids in draw order.
func (s *Session) SelectedIDs() []string {
	return s.selectedInDrawOrder()
}

func (s *Session) IsSelected(id string) bool {
	return s.Selected[id]
}

// SelectOnly makes id the sole selection. An empty id clears it.
func (s *Session) SelectOnly(id string) {
	s.Selected = make(map[string]bool)
	if id != "" {
		s.Selected[id] = true
	}
	s.Events.Push(event.SelectionChanged, nil)
}

// ToggleSelect flips membership of id in the selection.
func (s *Session) ToggleSelect(id string) {
	if id == "" {
		return
	}
	if s.Selected[id] {
		delete(s.Selected, id)
	} else {
		s.Selected[id] = true
	}
	s.Events.Push(event.SelectionChanged, nil)
}

func (s *Session) setSelection(ids ...string) {
	s.Selected = make(map[string]bool, len(ids))
	for _, id := range ids {
		if id != "" {
			s.Selected[id] = true
		}
	}
	s.Events.Push(event.SelectionChanged, nil)
}

func (s *Session) selectedInDrawOrder() []string {
	if len(s.Selected) == 0 {
		return nil
	}
	ids := make([]string, 0, len(s.Selected))
	s.Level.Walk(func(n, _ *scene.Node) bool {
		if s.Selected[n.ID] {
			ids = append(ids, n.ID)
		}
		return true
	})
	return ids
}

// filterSelection drops selected ids that are no longer legal targets,
// typically after the mode or tree changed under them.
func (s *Session) filterSelection() {
	if len(s.Selected) == 0 {
		return
	}
	selectable := ComputeSelectableSet(s.Level, s.Mode)
	changed := false
	for id := range s.Selected {
		if !selectable[id] {
			delete(s.Selected, id)
			changed = true
		}
	}
	if changed {
		s.Events.Push(event.SelectionChanged, nil)
	}
}

// RefilterSelection re-validates the selection against the current
// selectable set, dropping entries that stopped qualifying. Callers use
// it after flipping layer visibility or node flags outside an
// operation.
func (s *Session) RefilterSelection() {
	s.filterSelection()
}

// CancelAll aborts any gesture in flight and, if the gesture had
// already mutated the tree, restores the last committed state.
// Idempotent; with nothing in flight it does nothing.
func (s *Session) CancelAll() {
	restore := (s.dragging && s.dragMoved) || s.placing
	s.clearGestures()
	if !restore {
		return
	}
	if cur := s.History.Current(); cur != nil {
		s.applyEntry(cur)
	}
}

// Escape cancels a gesture in flight; with none active it exits group
// edit mode entirely.
func (s *Session) Escape() {
	if s.dragging || s.marquee || s.placing {
		s.CancelAll()
		return
	}
	if s.Mode.IsActive() {
		s.closeAllLevels()
	}
}

func (s *Session) clearGestures() {
	s.resetDrag()
	s.marquee = false
	s.marqueeAdd = false
	s.placing = false
	s.placeIDs = nil
	s.Mode = s.Mode.Unfreeze()
}

func (s *Session) resetDrag() {
	s.dragging = false
	s.dragMoved = false
	s.dragIDs = nil
	s.dragOrig = nil
}

func (s *Session) IsDragging() bool {
	return s.dragging
}

func (s *Session) IsPlacing() bool {
	return s.placing
}

// MarqueeRect returns the current marquee rectangle while one is being
// dragged out.
func (s *Session) MarqueeRect() (cp.BB, bool) {
	if !s.marquee {
		return cp.BB{}, false
	}
	return cp.BB{
		L: math.Min(s.marqueeFrom.X, s.marqueeTo.X),
		B: math.Min(s.marqueeFrom.Y, s.marqueeTo.Y),
		R: math.Max(s.marqueeFrom.X, s.marqueeTo.X),
		T: math.Max(s.marqueeFrom.Y, s.marqueeTo.Y),
	}, true
}

// contextParent returns the group new nodes land in: the active open
// group, or nil for the top level.
func (s *Session) contextParent() *scene.Node {
	g := s.Level.FindNode(s.Mode.ActiveGroupID())
	if g.IsGroup() {
		return g
	}
	return nil
}

// pruneExceptOpen removes groups that ended up empty, sparing the ones
// currently open in edit mode.
func (s *Session) pruneExceptOpen() {
	keep := make(map[string]bool, len(s.Mode.OpenGroups))
	for _, id := range s.Mode.OpenGroups {
		keep[id] = true
	}
	s.Level.PruneEmptyGroups(keep)
}

// ensurePlayerStart recreates a missing player start. It must stay
// silent during undo and redo so replaying history never synthesizes
// nodes that were not in the snapshot.
func (s *Session) ensurePlayerStart() {
	if s.History.IsReplaying() {
		return
	}
	s.Level.EnsurePlayerStart()
}

func (s *Session) snapTarget(v cp.Vector) cp.Vector {
	if !s.Level.Settings.SnapToGrid {
		return v
	}
	step := float64(s.Level.Settings.GridSize)
	return cp.Vector{X: common.Snap(v.X, step), Y: common.Snap(v.Y, step)}
}
