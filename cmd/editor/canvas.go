package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp/v2"

	"github.com/quarternotes/stagecraft/common"
	"github.com/quarternotes/stagecraft/edit"
	"github.com/quarternotes/stagecraft/scene"
)

var (
	colorSelection  = color.RGBA{255, 180, 60, 255}
	colorFrame      = color.RGBA{255, 200, 80, 255}
	colorFrameDim   = color.RGBA{255, 200, 80, 110}
	colorMarquee    = color.RGBA{80, 180, 255, 180}
	colorMarqueeBG  = color.RGBA{80, 180, 255, 48}
	colorLeafFill   = color.RGBA{100, 140, 220, 140}
	colorLeafStroke = color.RGBA{200, 220, 255, 200}
)

func (g *Editor) drawCanvas(screen *ebiten.Image) {
	if g.gridPixel == nil {
		g.gridPixel = ebiten.NewImage(1, 1)
		g.gridPixel.Fill(color.White)
	}
	bg := parseHexColor(g.session.Level.Settings.Background, color.RGBA{30, 30, 34, 255})
	screen.Fill(bg)
	g.drawGrid(screen)
	g.drawNodes(screen, g.session.Level.Objects, cp.Vector{}, scene.DefaultLayerID)
	g.drawOpenFrames(screen)
	g.drawSelection(screen)
	g.drawMarquee(screen)
	g.drawStampPreview(screen)
}

// drawGrid covers the visible world with grid lines. Lines vanish when
// a cell would be under 4 screen pixels so deep zoom-out stays legible.
func (g *Editor) drawGrid(screen *ebiten.Image) {
	step := float64(g.session.Level.Settings.GridSize)
	if step <= 0 || step*g.cam.Zoom < 4 {
		return
	}
	bounds := g.cam.VisibleWorldBounds(float64(g.viewW), float64(g.viewH))
	gridColor := color.RGBA{R: 200, G: 200, B: 200, A: 64}
	for x := math.Floor(bounds.L/step) * step; x <= bounds.R; x += step {
		sx, _ := g.cam.WorldToScreen(x, 0)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1, float64(g.viewH))
		op.GeoM.Translate(sx, 0)
		op.ColorScale.Scale(float32(gridColor.R)/255, float32(gridColor.G)/255, float32(gridColor.B)/255, float32(gridColor.A)/255)
		screen.DrawImage(g.gridPixel, op)
	}
	for y := math.Floor(bounds.B/step) * step; y <= bounds.T; y += step {
		_, sy := g.cam.WorldToScreen(0, y)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(g.viewW), 1)
		op.GeoM.Translate(0, sy)
		op.ColorScale.Scale(float32(gridColor.R)/255, float32(gridColor.G)/255, float32(gridColor.B)/255, float32(gridColor.A)/255)
		screen.DrawImage(g.gridPixel, op)
	}
}

// drawNodes walks the tree in draw order. A node hidden by its own flag
// hides its whole subtree; layer visibility applies per node through
// inheritance, so a child that overrides to a visible layer still draws
// inside a hidden-layer parent.
func (g *Editor) drawNodes(screen *ebiten.Image, nodes []*scene.Node, origin cp.Vector, inheritedLayer string) {
	for _, n := range nodes {
		if n == nil || !n.Visible {
			continue
		}
		layer := inheritedLayer
		if n.LayerID != "" {
			layer = n.LayerID
		}
		pos := cp.Vector{X: origin.X + n.X, Y: origin.Y + n.Y}
		if n.IsGroup() {
			g.drawNodes(screen, n.Children, pos, layer)
			continue
		}
		if !g.session.Level.LayerVisible(layer) {
			continue
		}
		g.drawLeaf(screen, n, pos)
	}
}

func (g *Editor) drawLeaf(screen *ebiten.Image, n *scene.Node, pos cp.Vector) {
	w, h := scene.LeafExtents(n)
	if n.IsPlayerStart() {
		if g.spawnImg == nil {
			return
		}
		iw, ih := g.spawnImg.Size()
		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w/float64(iw)*g.cam.Zoom, h/float64(ih)*g.cam.Zoom)
		op.GeoM.Translate(sx, sy)
		screen.DrawImage(g.spawnImg, op)
		return
	}
	if n.Image != "" {
		if img := g.cache.Image(n.Image); img != nil {
			iw, ih := img.Size()
			sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(w/float64(iw)*g.cam.Zoom, h/float64(ih)*g.cam.Zoom)
			op.GeoM.Translate(sx, sy)
			screen.DrawImage(img, op)
			return
		}
	}
	g.fillWorldRect(screen, pos.X, pos.Y, w, h, colorLeafFill)
	g.strokeWorldRect(screen, pos.X, pos.Y, w, h, 1, colorLeafStroke)
}

// drawOpenFrames outlines the open group chain, ancestors dim and the
// active frame bright. The active outline comes from the mode so a
// frozen frame stays put during alt-drag.
func (g *Editor) drawOpenFrames(screen *ebiten.Image) {
	mode := g.session.Mode
	open := mode.OpenGroups
	for i, id := range open {
		var bb cp.BB
		if i == len(open)-1 {
			frame, ok := mode.ActiveFrame(g.session.Level)
			if !ok {
				continue
			}
			bb = frame
		} else {
			grp := g.session.Level.FindNode(id)
			if grp == nil {
				continue
			}
			bb = scene.PaddedBB(g.session.Level.WorldBounds(grp, nil), edit.FramePadding)
		}
		c := colorFrameDim
		if i == len(open)-1 {
			c = colorFrame
		}
		g.strokeWorldBB(screen, bb, 2, c)
	}
}

func (g *Editor) drawSelection(screen *ebiten.Image) {
	for _, id := range g.session.SelectedIDs() {
		n := g.session.Level.FindNode(id)
		if n == nil {
			continue
		}
		bb := g.session.Level.WorldBounds(n, nil)
		g.strokeWorldBB(screen, bb, 2, colorSelection)
	}
}

func (g *Editor) drawMarquee(screen *ebiten.Image) {
	bb, ok := g.session.MarqueeRect()
	if !ok {
		return
	}
	g.fillWorldRect(screen, bb.L, bb.B, bb.R-bb.L, bb.T-bb.B, colorMarqueeBG)
	g.strokeWorldBB(screen, bb, 1, colorMarquee)
}

// drawStampPreview ghosts the armed palette entry at the snapped cursor
// position.
func (g *Editor) drawStampPreview(screen *ebiten.Image) {
	if g.tool != ToolStamp || !g.hasStamp {
		return
	}
	mx, my := ebiten.CursorPosition()
	wx, wy := g.cam.ScreenToWorld(float64(mx), float64(my))
	wx, wy = g.snapPoint(wx, wy)
	w, h := g.stamp.Width, g.stamp.Height
	if w <= 0 {
		w = scene.FallbackSize
	}
	if h <= 0 {
		h = scene.FallbackSize
	}
	if g.stamp.Image != "" {
		if img := g.cache.Image(g.stamp.Image); img != nil {
			iw, ih := img.Size()
			sx, sy := g.cam.WorldToScreen(wx, wy)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(w/float64(iw)*g.cam.Zoom, h/float64(ih)*g.cam.Zoom)
			op.GeoM.Translate(sx, sy)
			op.ColorScale.Scale(1, 1, 1, 0.5)
			screen.DrawImage(img, op)
			return
		}
	}
	g.fillWorldRect(screen, wx, wy, w, h, color.RGBA{255, 255, 255, 80})
}

func (g *Editor) snapPoint(x, y float64) (float64, float64) {
	st := g.session.Level.Settings
	if !st.SnapToGrid || st.GridSize <= 0 {
		return x, y
	}
	step := float64(st.GridSize)
	return common.Snap(x, step), common.Snap(y, step)
}

func (g *Editor) fillWorldRect(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	sx, sy := g.cam.WorldToScreen(x, y)
	g.fillScreenRect(screen, sx, sy, w*g.cam.Zoom, h*g.cam.Zoom, c)
}

func (g *Editor) strokeWorldRect(screen *ebiten.Image, x, y, w, h float64, thickness float64, c color.RGBA) {
	sx, sy := g.cam.WorldToScreen(x, y)
	g.strokeScreenRect(screen, sx, sy, w*g.cam.Zoom, h*g.cam.Zoom, thickness, c)
}

func (g *Editor) strokeWorldBB(screen *ebiten.Image, bb cp.BB, thickness float64, c color.RGBA) {
	g.strokeWorldRect(screen, bb.L, bb.B, bb.R-bb.L, bb.T-bb.B, thickness, c)
}

func (g *Editor) fillScreenRect(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	screen.DrawImage(g.gridPixel, op)
}

func (g *Editor) strokeScreenRect(screen *ebiten.Image, x, y, w, h float64, thickness float64, c color.RGBA) {
	g.fillScreenRect(screen, x, y, w, thickness, c)
	g.fillScreenRect(screen, x, y+h-thickness, w, thickness, c)
	g.fillScreenRect(screen, x, y+thickness, thickness, h-2*thickness, c)
	g.fillScreenRect(screen, x+w-thickness, y+thickness, thickness, h-2*thickness, c)
}
