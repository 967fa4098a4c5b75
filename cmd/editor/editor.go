package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/quarternotes/stagecraft/assets"
	"github.com/quarternotes/stagecraft/camera"
	"github.com/quarternotes/stagecraft/config"
	"github.com/quarternotes/stagecraft/edit"
	"github.com/quarternotes/stagecraft/event"
	"github.com/quarternotes/stagecraft/prefabs"
	"github.com/quarternotes/stagecraft/scene"
)

// Editor is the ebiten game wrapping an edit session: it routes input
// to the session, draws the canvas, and keeps the panels in sync
// through the session's event queue.
type Editor struct {
	cfg     *config.Config
	session *edit.Session
	events  *event.Queue
	cam     *camera.Camera
	cache   *assets.Cache

	ui        *ebitenui.UI
	toolbar   *ToolBar
	layers    *LayersPanel
	palette   *PalettePanel
	inspector *Inspector
	fileName  *widget.TextInput

	pal     prefabs.Palette
	watcher *prefabs.Watcher

	tool     Tool
	stamp    prefabs.Spec
	hasStamp bool

	savePath      string
	activeLayerID string
	clipboardOK   bool

	// layersDirty covers layer add/rename/visibility edits, which are
	// outside the undo history but still need saving.
	layersDirty bool

	leftDown    bool
	lastClickAt time.Time
	lastClickX  int
	lastClickY  int

	panning  bool
	lastPanX int
	lastPanY int

	gridPixel *ebiten.Image
	spawnImg  *ebiten.Image

	viewW int
	viewH int

	autosaveEvery time.Duration
	lastAutosave  time.Time
}

func NewEditor(cfg *config.Config, lvl *scene.Level, savePath string, pal prefabs.Palette, watcher *prefabs.Watcher) *Editor {
	events := &event.Queue{}
	g := &Editor{
		cfg:           cfg,
		events:        events,
		session:       edit.NewSession(lvl, events),
		cam:           camera.New(),
		cache:         assets.NewCache(cfg.AssetsDir),
		pal:           pal,
		watcher:       watcher,
		savePath:      savePath,
		tool:          ToolSelect,
		clipboardOK:   initClipboard(),
		autosaveEvery: time.Duration(cfg.AutosaveSeconds) * time.Second,
		lastAutosave:  time.Now(),
	}
	g.session.History.Limit = cfg.MaxUndo
	g.spawnImg = circleImage(int(scene.FallbackSize), color.RGBA{R: 0xff, A: 0x88})
	if !g.clipboardOK {
		log.Println("Clipboard unavailable; copy and paste disabled")
	}

	ui, toolbar, leftPanel, inspector := BuildEditorUI(
		pal.Entries,
		g.onToolSelected,
		g.onLayerSelected,
		g.onLayerRenamed,
		g.onNewLayer,
		g.onToggleLayerVisible,
		g.onPalettePicked,
		g.onInspectorApply,
		g.onLockToggle,
		g.onFileSubmit,
		g.onUndo,
		g.onRedo,
		g.saveLevel,
		g.tool,
	)
	g.ui = ui
	g.toolbar = toolbar
	g.layers = leftPanel.Layers
	g.palette = leftPanel.Palette
	g.inspector = inspector
	g.fileName = leftPanel.FileName

	if savePath != "" {
		g.fileName.SetText(filepath.Base(savePath))
	} else if lvl != nil && lvl.Name != "" {
		g.fileName.SetText(lvl.Name)
	}
	if len(g.session.Level.Layers) > 0 {
		g.activeLayerID = g.session.Level.Layers[0].ID
	}

	g.refreshLayers()
	g.refreshInspector()
	return g
}

func (g *Editor) Update() error {
	g.pollWatcher()
	g.handleKeyboard()
	if g.ui != nil {
		g.ui.Update()
	}
	g.handleMouse()
	g.cam.Update(1.0 / float64(ebiten.TPS()))
	g.drainEvents()
	g.maybeAutosave()
	return nil
}

func (g *Editor) Draw(screen *ebiten.Image) {
	g.drawCanvas(screen)
	if g.ui != nil {
		g.ui.Draw(screen)
	}
	if g.cfg.ShowDebugOverlay {
		g.drawDebugOverlay(screen)
	}
}

func (g *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewW = outsideWidth
	g.viewH = outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Editor) drawDebugOverlay(screen *ebiten.Image) {
	info := fmt.Sprintf("zoom=%.2f sel=%d open=%d undo=%d dirty=%v fps=%.0f",
		g.cam.Zoom,
		len(g.session.SelectedIDs()),
		len(g.session.Mode.OpenGroups),
		g.session.History.Len(),
		g.dirty(),
		ebiten.ActualFPS(),
	)
	ebitenutil.DebugPrintAt(screen, info, 8, g.viewH-20)
}

func (g *Editor) dirty() bool {
	return g.session.Dirty() || g.layersDirty
}

// drainEvents applies the session's queued notifications to the panels
// once per frame.
func (g *Editor) drainEvents() {
	for _, ev := range g.events.Drain() {
		switch ev.Type {
		case event.SelectionChanged, event.TreeChanged, event.ModeChanged:
			g.refreshInspector()
		case event.LevelReplaced:
			g.refreshLayers()
			g.refreshInspector()
		case event.PaletteReloaded:
			g.palette.SetEntries(g.pal.Entries)
		}
	}
}

func (g *Editor) refreshLayers() {
	lvl := g.session.Level
	rows := make([]LayerRow, len(lvl.Layers))
	sel := -1
	for i, l := range lvl.Layers {
		rows[i] = LayerRow{Index: i, ID: l.ID, Name: l.Name, Visible: l.Visible}
		if l.ID == g.activeLayerID {
			sel = i
		}
	}
	g.layers.SetLayers(rows)
	if sel >= 0 {
		g.layers.SetSelected(sel)
	}
}

func (g *Editor) refreshInspector() {
	ids := g.session.SelectedIDs()
	if len(ids) == 1 {
		if n := g.session.Level.FindNode(ids[0]); n != nil {
			g.inspector.SetNode(n, g.session.Level.Layers)
			return
		}
	}
	g.inspector.SetNone(len(ids))
}

func (g *Editor) onToolSelected(t Tool) {
	g.tool = t
	if t != ToolStamp {
		g.hasStamp = false
	}
}

func (g *Editor) onUndo() {
	g.session.Undo()
}

func (g *Editor) onRedo() {
	g.session.Redo()
}

func (g *Editor) onPalettePicked(spec prefabs.Spec) {
	g.stamp = spec
	g.hasStamp = true
	g.toolbar.SetTool(ToolStamp)
}

func (g *Editor) disarmStamp() {
	g.hasStamp = false
	g.toolbar.SetTool(ToolSelect)
}

func (g *Editor) onLayerSelected(idx int) {
	lvl := g.session.Level
	if idx < 0 || idx >= len(lvl.Layers) {
		return
	}
	g.activeLayerID = lvl.Layers[idx].ID
}

func (g *Editor) onNewLayer() {
	lvl := g.session.Level
	l := lvl.AddLayer("", fmt.Sprintf("Layer %d", len(lvl.Layers)+1))
	g.activeLayerID = l.ID
	g.layersDirty = true
	g.refreshLayers()
}

func (g *Editor) onLayerRenamed(idx int, newName string) {
	lvl := g.session.Level
	if idx < 0 || idx >= len(lvl.Layers) {
		return
	}
	lvl.Layers[idx].Name = newName
	g.layersDirty = true
	g.refreshLayers()
	g.refreshInspector()
}

func (g *Editor) onToggleLayerVisible(idx int) {
	lvl := g.session.Level
	if idx < 0 || idx >= len(lvl.Layers) {
		return
	}
	lvl.Layers[idx].Visible = !lvl.Layers[idx].Visible
	g.session.RefilterSelection()
	g.layersDirty = true
	g.refreshLayers()
}

func (g *Editor) onInspectorApply(v InspectorValues) {
	ids := g.session.SelectedIDs()
	if len(ids) != 1 {
		return
	}
	n := g.session.Level.FindNode(ids[0])
	if n == nil {
		return
	}
	vars := map[string]float64{"x": n.X, "y": n.Y, "w": n.Width, "h": n.Height}
	changed := false
	if v.Name != n.Name {
		n.Name = v.Name
		changed = true
	}
	apply := func(src string, dst *float64, clampZero bool) {
		if src == "" {
			return
		}
		val, err := EvalNumber(src, vars)
		if err != nil {
			log.Printf("Inspector: %v", err)
			return
		}
		if clampZero && val < 0 {
			val = 0
		}
		if val != *dst {
			*dst = val
			changed = true
		}
	}
	apply(v.X, &n.X, false)
	apply(v.Y, &n.Y, false)
	apply(v.W, &n.Width, true)
	apply(v.H, &n.Height, true)
	if v.LayerID != n.LayerID {
		n.LayerID = v.LayerID
		changed = true
	}
	if changed {
		g.session.Commit()
	}
}

// onLockToggle flips the lock on the inspected node. The selection is
// deliberately not refiltered, so the inspector keeps hold of the node
// it just locked; Ctrl+L clears every lock if one ends up stranded.
func (g *Editor) onLockToggle() {
	ids := g.session.SelectedIDs()
	if len(ids) != 1 {
		return
	}
	n := g.session.Level.FindNode(ids[0])
	if n == nil {
		return
	}
	n.Locked = !n.Locked
	g.session.Commit()
	g.refreshInspector()
}

func (g *Editor) unlockAll() {
	count := 0
	g.session.Level.Walk(func(n, parent *scene.Node) bool {
		if n.Locked {
			n.Locked = false
			count++
		}
		return true
	})
	if count == 0 {
		return
	}
	g.session.Commit()
	log.Printf("Unlocked %d nodes", count)
}

func (g *Editor) copySelection() {
	if !g.clipboardOK {
		return
	}
	nodes := g.session.CopySelection()
	if len(nodes) == 0 {
		return
	}
	if err := writeClipboardNodes(nodes); err != nil {
		log.Printf("Copy failed: %v", err)
	}
}

func (g *Editor) pasteClipboard() {
	if !g.clipboardOK {
		return
	}
	nodes, ok := readClipboardNodes()
	if !ok {
		return
	}
	mx, my := ebiten.CursorPosition()
	wx, wy := g.cam.ScreenToWorld(float64(mx), float64(my))
	g.session.Paste(nodes, wx, wy)
}

// pollWatcher drains pending prefab-change notifications without
// blocking the frame, coalescing a burst of writes into one reload. A
// closed watcher detaches itself so the poll stays cheap afterwards.
func (g *Editor) pollWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			reload = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("Prefab watcher error: %v", err)
		default:
			if reload {
				g.reloadPalette()
			}
			return
		}
	}
}

func (g *Editor) reloadPalette() {
	pal, err := prefabs.LoadPalette(g.cfg.PrefabsDir)
	if err != nil {
		log.Printf("Palette reload failed: %v", err)
		return
	}
	// Re-resolve palette art on the next draw; an image that failed to
	// load before may exist now.
	for _, spec := range pal.Entries {
		if spec.Image != "" {
			g.cache.Invalidate(spec.Image)
		}
	}
	g.pal = pal
	if g.hasStamp {
		if spec, ok := pal.ByName(g.stamp.Name); ok {
			g.stamp = spec
		} else {
			g.disarmStamp()
		}
	}
	g.events.Push(event.PaletteReloaded, nil)
	log.Printf("Palette reloaded: %d entries", len(pal.Entries))
}
