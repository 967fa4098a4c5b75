package assets

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed placeholder.png
var assetsFS embed.FS

// Placeholder is the checkerboard drawn wherever a referenced image
// cannot be loaded.
var Placeholder *ebiten.Image

func init() {
	b, err := assetsFS.ReadFile("placeholder.png")
	if err != nil {
		log.Fatalf("assets: read placeholder: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		log.Fatalf("assets: decode placeholder: %v", err)
	}
	Placeholder = ebiten.NewImageFromImage(img)
}
