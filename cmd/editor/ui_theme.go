package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Editor chrome palette. Canvas overlay colors live in canvas.go.
var (
	panelBG      = color.RGBA{38, 38, 42, 255}
	controlIdle  = color.RGBA{180, 180, 180, 255}
	controlHover = color.RGBA{200, 200, 200, 255}
	controlDown  = color.RGBA{160, 160, 160, 255}
	listBG       = color.RGBA{225, 225, 225, 255}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

// newEditorTheme covers the widgets the editor actually builds: panels,
// buttons, and the layer and palette lists.
func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          color.Black,
				Selected:            color.RGBA{0, 0, 128, 255},
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: color.RGBA{205, 222, 250, 255},
				SelectedBackground:  color.RGBA{185, 205, 245, 255},
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(listBG),
				Mask: solidNineSlice(listBG),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelBG),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(controlIdle),
				Hover:   solidNineSlice(controlHover),
				Pressed: solidNineSlice(controlDown),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.Black,
			},
		},
	}
}
