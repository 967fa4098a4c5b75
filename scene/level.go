package scene

import (
	"strconv"
	"strings"
)

// DefaultLayerID is the base layer every level starts with. Nodes without
// an explicit layer inherit the nearest ancestor group's effective layer
// and fall back to this one.
const DefaultLayerID = "main"

// Layer is a named visibility bucket. Hiding a layer removes its nodes
// from selection and hit-testing.
type Layer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
}

// Settings holds per-level editor settings.
type Settings struct {
	GridSize   int    `json:"grid_size"`
	SnapToGrid bool   `json:"snap_to_grid"`
	Background string `json:"background,omitempty"`
}

// Level owns the top-level object sequence, the layer set, and settings.
// The slice order of Objects is the draw order; later entries draw on top.
type Level struct {
	Name     string   `json:"name,omitempty"`
	Objects  []*Node  `json:"objects"`
	Layers   []Layer  `json:"layers"`
	Settings Settings `json:"settings"`
}

// NewLevel creates an empty level with the Main layer, default settings,
// and a player start at the origin.
func NewLevel(name string) *Level {
	return &Level{
		Name:    name,
		Objects: []*Node{NewPlayerStart(0, 0)},
		Layers: []Layer{
			{ID: DefaultLayerID, Name: "Main", Visible: true},
		},
		Settings: Settings{GridSize: 32},
	}
}

// Layer returns the layer with the given id, or nil.
func (l *Level) Layer(id string) *Layer {
	if l == nil {
		return nil
	}
	for i := range l.Layers {
		if l.Layers[i].ID == id {
			return &l.Layers[i]
		}
	}
	return nil
}

// LayerVisible reports whether the layer with the given id is visible.
// Unknown layer ids count as visible so a stale reference never hides an
// object the user can see no other way.
func (l *Level) LayerVisible(id string) bool {
	layer := l.Layer(id)
	if layer == nil {
		return true
	}
	return layer.Visible
}

// AddLayer appends a layer, generating a unique id from the name when the
// given id is empty or taken.
func (l *Level) AddLayer(id, name string) *Layer {
	if l == nil {
		return nil
	}
	if id == "" {
		id = uniqueLayerID(l, name)
	} else if l.Layer(id) != nil {
		id = uniqueLayerID(l, id)
	}
	l.Layers = append(l.Layers, Layer{ID: id, Name: name, Visible: true})
	return &l.Layers[len(l.Layers)-1]
}

func uniqueLayerID(l *Level, base string) string {
	base = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(base), " ", "-"))
	if base == "" {
		base = "layer"
	}
	if l.Layer(base) == nil {
		return base
	}
	for i := 2; ; i++ {
		id := base + "-" + strconv.Itoa(i)
		if l.Layer(id) == nil {
			return id
		}
	}
}
