package main

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

// parseHexColor parses "#rrggbb", falling back when the string does not
// parse.
func parseHexColor(s string, fallback color.RGBA) color.RGBA {
	if len(s) == 7 && s[0] == '#' {
		var ri, gi, bi uint32
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &ri, &gi, &bi); err == nil {
			return color.RGBA{R: uint8(ri), G: uint8(gi), B: uint8(bi), A: 0xff}
		}
	}
	return fallback
}

// circleImage builds an RGBA image with a filled circle of the given color.
func circleImage(size int, col color.RGBA) *ebiten.Image {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	cx := float64(size) / 2
	cy := float64(size) / 2
	r := float64(size)/2 - 2
	rr := r * r
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= rr {
				rgba.Set(x, y, col)
			}
		}
	}
	return ebiten.NewImageFromImage(rgba)
}

// shortID trims a uuid to its first group for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// trimFloat renders a float without trailing zeros, for text fields.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
