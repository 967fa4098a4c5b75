package main

import (
	"strconv"
	"strings"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/quarternotes/stagecraft/prefabs"
	"github.com/quarternotes/stagecraft/scene"
)

// ToolBar contains the radio-group state for the floating tool buttons.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
}

func (tb *ToolBar) SetTool(t Tool) {
	idx := int(t)
	if tb == nil || tb.group == nil || idx < 0 || idx >= len(tb.buttons) {
		return
	}
	tb.group.SetActive(tb.buttons[idx])
}

// LayerRow is one list entry in the layers section.
type LayerRow struct {
	Index   int
	ID      string
	Name    string
	Visible bool
}

// LayersPanel holds the layer list widget and its callbacks.
type LayersPanel struct {
	list    *widget.List
	entries []any

	onSelected      func(idx int)
	onNewLayer      func()
	onRename        func(idx int, current string)
	onToggleVisible func(idx int)

	// suppress, when true, keeps programmatic updates from being
	// interpreted as user clicks.
	suppress bool
}

func (lp *LayersPanel) SetLayers(rows []LayerRow) {
	if lp == nil || lp.list == nil {
		return
	}
	lp.suppress = true
	entries := make([]any, len(rows))
	for i, r := range rows {
		entries[i] = r
	}
	lp.entries = entries
	lp.list.SetEntries(entries)
	lp.suppress = false
}

func (lp *LayersPanel) SetSelected(idx int) {
	if lp == nil || lp.list == nil || idx < 0 || idx >= len(lp.entries) {
		return
	}
	lp.suppress = true
	lp.list.SetSelectedEntry(lp.entries[idx])
	lp.suppress = false
}

// PalettePanel holds the prefab palette list.
type PalettePanel struct {
	list     *widget.List
	onPicked func(spec prefabs.Spec)
	suppress bool
}

func (pp *PalettePanel) SetEntries(specs []prefabs.Spec) {
	if pp == nil || pp.list == nil {
		return
	}
	pp.suppress = true
	entries := make([]any, len(specs))
	for i, s := range specs {
		entries[i] = s
	}
	pp.list.SetEntries(entries)
	pp.suppress = false
}

// InspectorValues carries the raw field texts handed to Apply. The
// numeric fields hold expressions, not parsed numbers.
type InspectorValues struct {
	Name    string
	X       string
	Y       string
	W       string
	H       string
	LayerID string
}

// Inspector shows the single selected node and stages edits until the
// Apply button commits them.
type Inspector struct {
	header   *widget.Label
	name     *widget.TextInput
	x        *widget.TextInput
	y        *widget.TextInput
	w        *widget.TextInput
	h        *widget.TextInput
	layerBtn *widget.Button
	lockBtn  *widget.Button

	layers  []scene.Layer
	layerID string
	locked  bool

	onApply func(v InspectorValues)
	onLock  func()

	suppress bool
}

// SetNode fills the fields from the node. The layers snapshot feeds the
// layer cycle button.
func (ip *Inspector) SetNode(n *scene.Node, layers []scene.Layer) {
	if ip == nil || n == nil {
		return
	}
	ip.suppress = true
	ip.layers = layers
	ip.header.Label = string(n.Type) + " " + shortID(n.ID)
	ip.name.SetText(n.Name)
	ip.x.SetText(trimFloat(n.X))
	ip.y.SetText(trimFloat(n.Y))
	ip.w.SetText(trimFloat(n.Width))
	ip.h.SetText(trimFloat(n.Height))
	ip.layerID = n.LayerID
	ip.locked = n.Locked
	ip.refreshLayerLabel()
	ip.refreshLockLabel()
	ip.suppress = false
}

// SetNone blanks the fields; count is how many nodes are selected.
func (ip *Inspector) SetNone(count int) {
	if ip == nil {
		return
	}
	ip.suppress = true
	if count > 1 {
		ip.header.Label = strconv.Itoa(count) + " selected"
	} else {
		ip.header.Label = "Nothing selected"
	}
	ip.name.SetText("")
	ip.x.SetText("")
	ip.y.SetText("")
	ip.w.SetText("")
	ip.h.SetText("")
	ip.layerID = ""
	ip.locked = false
	ip.refreshLayerLabel()
	ip.refreshLockLabel()
	ip.suppress = false
}

func (ip *Inspector) values() InspectorValues {
	return InspectorValues{
		Name:    strings.TrimSpace(ip.name.GetText()),
		X:       ip.x.GetText(),
		Y:       ip.y.GetText(),
		W:       ip.w.GetText(),
		H:       ip.h.GetText(),
		LayerID: ip.layerID,
	}
}

// cycleLayer steps the staged layer through inherit and every level
// layer. Apply writes the staged value to the node.
func (ip *Inspector) cycleLayer() {
	if ip.suppress {
		return
	}
	ids := []string{""}
	for _, l := range ip.layers {
		ids = append(ids, l.ID)
	}
	next := 0
	for i, id := range ids {
		if id == ip.layerID {
			next = (i + 1) % len(ids)
			break
		}
	}
	ip.layerID = ids[next]
	ip.refreshLayerLabel()
}

func (ip *Inspector) refreshLayerLabel() {
	label := "Layer: inherit"
	for _, l := range ip.layers {
		if l.ID == ip.layerID && ip.layerID != "" {
			label = "Layer: " + l.Name
		}
	}
	if t := ip.layerBtn.Text(); t != nil {
		t.Label = label
	}
}

func (ip *Inspector) refreshLockLabel() {
	label := "Lock"
	if ip.locked {
		label = "Unlock"
	}
	if t := ip.lockBtn.Text(); t != nil {
		t.Label = label
	}
}

// InspectorUI is the composed right-panel widget.
type InspectorUI struct {
	Container *widget.Container
	Inspector *Inspector
}

// LeftPanelUI is the composed left-panel widget and its stateful parts.
// RenameOverlay is the modal layer-rename dialog; the root container
// must add it last so it draws above everything else.
type LeftPanelUI struct {
	Container     *widget.Container
	Layers        *LayersPanel
	Palette       *PalettePanel
	FileName      *widget.TextInput
	RenameOverlay *widget.Container
}
