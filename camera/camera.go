package camera

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/quarternotes/stagecraft/common"
)

const (
	MinZoom = 0.25
	MaxZoom = 4.0

	focusDuration = 0.3
)

// scrollAnim holds the active focus tweens for the pan offsets.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera maps between screen space and world space for the canvas.
// PanX and PanY are the screen position of the world origin; Zoom
// scales world units to pixels.
type Camera struct {
	PanX, PanY float64
	Zoom       float64

	scroll *scrollAnim
}

func New() *Camera {
	return &Camera{Zoom: 1.0}
}

// ScreenToWorld converts a canvas-space point to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx - c.PanX) / c.Zoom, (sy - c.PanY) / c.Zoom
}

// WorldToScreen converts a world point to canvas coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx*c.Zoom + c.PanX, wy*c.Zoom + c.PanY
}

// Pan shifts the view by a screen-space delta and takes over from any
// focus animation in flight.
func (c *Camera) Pan(dx, dy float64) {
	c.scroll = nil
	c.PanX += dx
	c.PanY += dy
}

// ZoomAt scales the zoom by factor, clamped to [MinZoom, MaxZoom],
// keeping the world point under the given screen position fixed.
func (c *Camera) ZoomAt(sx, sy, factor float64) {
	old := c.Zoom
	next := common.Clamp(old*factor, MinZoom, MaxZoom)
	if next == old {
		return
	}
	c.scroll = nil
	wx := (sx - c.PanX) / old
	wy := (sy - c.PanY) / old
	c.Zoom = next
	c.PanX = sx - wx*next
	c.PanY = sy - wy*next
}

// FocusOn eases the view until the world point sits at the center of a
// viewport of the given size.
func (c *Camera) FocusOn(wx, wy, viewW, viewH float64) {
	targetX := viewW/2 - wx*c.Zoom
	targetY := viewH/2 - wy*c.Zoom
	c.scroll = &scrollAnim{
		tweenX: gween.New(float32(c.PanX), float32(targetX), focusDuration, ease.OutQuad),
		tweenY: gween.New(float32(c.PanY), float32(targetY), focusDuration, ease.OutQuad),
	}
}

// FocusOnBounds centers the given world rectangle in the viewport.
func (c *Camera) FocusOnBounds(bb cp.BB, viewW, viewH float64) {
	c.FocusOn((bb.L+bb.R)/2, (bb.B+bb.T)/2, viewW, viewH)
}

// Update advances the focus animation. dt is in seconds.
func (c *Camera) Update(dt float64) {
	if c.scroll == nil {
		return
	}
	if !c.scroll.doneX {
		val, done := c.scroll.tweenX.Update(float32(dt))
		c.PanX = float64(val)
		c.scroll.doneX = done
	}
	if !c.scroll.doneY {
		val, done := c.scroll.tweenY.Update(float32(dt))
		c.PanY = float64(val)
		c.scroll.doneY = done
	}
	if c.scroll.doneX && c.scroll.doneY {
		c.scroll = nil
	}
}

// Scrolling reports whether a focus animation is still running.
func (c *Camera) Scrolling() bool {
	return c.scroll != nil
}

// VisibleWorldBounds returns the world rectangle covered by a viewport
// of the given size.
func (c *Camera) VisibleWorldBounds(viewW, viewH float64) cp.BB {
	l, b := c.ScreenToWorld(0, 0)
	r, t := c.ScreenToWorld(viewW, viewH)
	return cp.BB{L: l, B: b, R: r, T: t}
}
