package event

// Type identifies editor event kinds.
type Type string

const (
	SelectionChanged Type = "selection_changed"
	ModeChanged      Type = "mode_changed"
	TreeChanged      Type = "tree_changed"
	LevelReplaced    Type = "level_replaced"
	LevelSaved       Type = "level_saved"
	PaletteReloaded  Type = "palette_reloaded"
)

// Event is a generic editor event payload.
type Event struct {
	Type Type
	Data any
}

// Queue is a simple FIFO queue. The UI drains it once per frame to
// refresh panels after the core mutates state.
type Queue struct {
	items []Event
}

// Push adds an event. A nil queue drops it.
func (q *Queue) Push(t Type, data any) {
	if q == nil {
		return
	}
	q.items = append(q.items, Event{Type: t, Data: data})
}

// Drain returns all events and clears the queue.
func (q *Queue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
