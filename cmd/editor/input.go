package main

import (
	"time"

	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp/v2"

	"github.com/quarternotes/stagecraft/edit"
)

const (
	doubleClickDelay = 350 * time.Millisecond
	doubleClickSlop  = 4
)

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyControlLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyControlRight)
}

func shiftPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftRight)
}

func altPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyAltLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyAltRight)
}

func (g *Editor) modifiers() edit.Modifiers {
	return edit.Modifiers{Additive: shiftPressed(), Extract: altPressed()}
}

// typingInUI reports whether a text widget has focus, so hotkeys do not
// fire while the user types a name or expression.
func (g *Editor) typingInUI() bool {
	if g.ui == nil {
		return false
	}
	if fw := g.ui.GetFocusedWidget(); fw != nil {
		switch fw.(type) {
		case *widget.TextInput:
			return true
		}
	}
	return false
}

func (g *Editor) handleKeyboard() {
	if g.typingInUI() {
		return
	}
	ctrl := ctrlPressed()
	shift := shiftPressed()

	if ctrl {
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
			g.session.Undo()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyY) {
			g.session.Redo()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			g.saveLevel()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			g.copySelection()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyV) {
			g.pasteClipboard()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyD) {
			mx, my := ebiten.CursorPosition()
			wx, wy := g.cam.ScreenToWorld(float64(mx), float64(my))
			g.session.Duplicate(wx, wy)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyG) {
			if shift {
				g.session.Ungroup()
			} else {
				g.session.GroupSelection()
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
			g.session.SendToBack()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
			g.session.BringToFront()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyL) {
			g.unlockAll()
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.session.DeleteSelected()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.hasStamp {
			g.disarmStamp()
		} else {
			g.session.Escape()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.focusSelection()
	}

	step := 1.0
	if shift {
		if gs := g.session.Level.Settings.GridSize; gs > 0 {
			step = float64(gs)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.session.MoveSelectedBy(-step, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.session.MoveSelectedBy(step, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.session.MoveSelectedBy(0, -step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.session.MoveSelectedBy(0, step)
	}
}

func (g *Editor) handleMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		g.panning = true
		g.lastPanX, g.lastPanY = ebiten.CursorPosition()
	}
	if g.panning && ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		cx, cy := ebiten.CursorPosition()
		g.cam.Pan(float64(cx-g.lastPanX), float64(cy-g.lastPanY))
		g.lastPanX, g.lastPanY = cx, cy
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		g.panning = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		cx, cy := ebiten.CursorPosition()
		factor := 1.1
		if wy < 0 {
			factor = 1 / 1.1
		}
		g.cam.ZoomAt(float64(cx), float64(cy), factor)
	}

	mx, my := ebiten.CursorPosition()
	wx, wy := g.cam.ScreenToWorld(float64(mx), float64(my))
	mods := g.modifiers()

	// Clicks that land on a panel or button belong to the UI, not the
	// canvas.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !ebuiinput.UIHovered {
		switch {
		case g.tool == ToolStamp && g.hasStamp:
			g.session.PlaceNew(g.stamp.BuildNode(), wx, wy)
		case !g.session.IsPlacing() && g.isDoubleClick(mx, my):
			g.lastClickAt = time.Time{}
			g.openGroupAt(wx, wy)
		default:
			g.lastClickAt = time.Now()
			g.lastClickX, g.lastClickY = mx, my
			g.session.MouseDown(wx, wy, mods)
			g.leftDown = true
		}
	}

	if g.leftDown && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.session.MouseMove(wx, wy, mods)
	} else if g.session.IsPlacing() {
		g.session.MouseMove(wx, wy, mods)
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.leftDown {
		g.session.MouseUp(wx, wy, mods)
		g.leftDown = false
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.session.CancelAll()
	}
}

func (g *Editor) isDoubleClick(mx, my int) bool {
	if g.lastClickAt.IsZero() || time.Since(g.lastClickAt) > doubleClickDelay {
		return false
	}
	dx := mx - g.lastClickX
	dy := my - g.lastClickY
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= doubleClickSlop && dy <= doubleClickSlop
}

// openGroupAt forwards a double click and, when it opened a new group,
// scrolls the camera to its bounds.
func (g *Editor) openGroupAt(wx, wy float64) {
	before := g.session.Mode.ActiveGroupID()
	g.session.DoubleClick(wx, wy)
	after := g.session.Mode.ActiveGroupID()
	if after == "" || after == before {
		return
	}
	if grp := g.session.Level.FindNode(after); grp != nil {
		bb := g.session.Level.WorldBounds(grp, nil)
		g.cam.FocusOnBounds(bb, float64(g.viewW), float64(g.viewH))
	}
}

func (g *Editor) focusSelection() {
	ids := g.session.SelectedIDs()
	if len(ids) == 0 {
		return
	}
	var bb cp.BB
	found := false
	for _, id := range ids {
		n := g.session.Level.FindNode(id)
		if n == nil {
			continue
		}
		b := g.session.Level.WorldBounds(n, nil)
		if !found {
			bb = b
			found = true
		} else {
			bb = bb.Merge(b)
		}
	}
	if found {
		g.cam.FocusOnBounds(bb, float64(g.viewW), float64(g.viewH))
	}
}
