package history

import (
	"github.com/quarternotes/stagecraft/scene"
)

const DefaultLimit = 100

// ModeState is the portion of the group edit mode that travels with
// each history entry: the chain of open group ids, outermost first,
// plus the id of the active (deepest) group. ActiveGroup is recorded
// separately so restoration can cross-check the chain.
type ModeState struct {
	OpenGroups  []string
	ActiveGroup string
}

func (s ModeState) Clone() ModeState {
	out := ModeState{ActiveGroup: s.ActiveGroup}
	if len(s.OpenGroups) > 0 {
		out.OpenGroups = make([]string, len(s.OpenGroups))
		copy(out.OpenGroups, s.OpenGroups)
	}
	return out
}

// Entry is one full editor state. Entries are stored and handed out as
// deep copies, so callers may mutate what they get back.
type Entry struct {
	Objects  []*scene.Node
	Selected []string
	Mode     ModeState
}

func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	out := &Entry{
		Objects: scene.CloneObjects(e.Objects),
		Mode:    e.Mode.Clone(),
	}
	if len(e.Selected) > 0 {
		out.Selected = make([]string, len(e.Selected))
		copy(out.Selected, e.Selected)
	}
	return out
}

// Manager keeps a linear stack of editor states with a cursor at the
// current one. Pushing truncates any redo tail; when the stack exceeds
// Limit the oldest entries are dropped.
type Manager struct {
	Limit int

	entries   []*Entry
	cursor    int
	savedAt   int
	replaying bool
}

// NewManager seeds the stack with the given state, which also becomes
// the saved baseline for dirty tracking.
func NewManager(initial *Entry) *Manager {
	m := &Manager{Limit: DefaultLimit, cursor: -1, savedAt: -1}
	if initial != nil {
		m.entries = append(m.entries, initial.Clone())
		m.cursor = 0
		m.savedAt = 0
	}
	return m
}

func (m *Manager) Push(e *Entry) {
	if m == nil || e == nil || m.replaying {
		return
	}
	if m.Limit <= 0 {
		m.Limit = DefaultLimit
	}
	m.entries = append(m.entries[:m.cursor+1], e.Clone())
	m.cursor = len(m.entries) - 1
	if drop := len(m.entries) - m.Limit; drop > 0 {
		m.entries = m.entries[drop:]
		m.cursor -= drop
		if m.savedAt >= 0 {
			m.savedAt -= drop
			if m.savedAt < 0 {
				m.savedAt = -1
			}
		}
	}
	if m.savedAt > m.cursor {
		// The saved state lived on the truncated redo tail.
		m.savedAt = -1
	}
}

func (m *Manager) CanUndo() bool {
	return m != nil && m.cursor > 0
}

func (m *Manager) CanRedo() bool {
	return m != nil && m.cursor < len(m.entries)-1
}

// Undo steps the cursor back and hands apply a copy of the state to
// restore. Pushes are ignored while apply runs.
func (m *Manager) Undo(apply func(*Entry)) bool {
	if !m.CanUndo() {
		return false
	}
	m.cursor--
	m.invoke(apply)
	return true
}

func (m *Manager) Redo(apply func(*Entry)) bool {
	if !m.CanRedo() {
		return false
	}
	m.cursor++
	m.invoke(apply)
	return true
}

func (m *Manager) invoke(apply func(*Entry)) {
	if apply == nil {
		return
	}
	m.replaying = true
	defer func() { m.replaying = false }()
	apply(m.entries[m.cursor].Clone())
}

// IsReplaying reports whether an Undo or Redo apply callback is running.
func (m *Manager) IsReplaying() bool {
	return m != nil && m.replaying
}

// Current returns a copy of the state at the cursor, or nil when the
// stack is empty.
func (m *Manager) Current() *Entry {
	if m == nil || m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return m.entries[m.cursor].Clone()
}

func (m *Manager) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Dirty reports whether the current state diverges from the last saved
// one. A saved state dropped from the stack stays dirty until the next
// MarkSaved.
func (m *Manager) Dirty() bool {
	if m == nil {
		return false
	}
	return m.cursor != m.savedAt
}

func (m *Manager) MarkSaved() {
	if m == nil {
		return
	}
	m.savedAt = m.cursor
}
