package main

import (
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// addFileNameSection adds the level file row. Submitting the field with
// enter saves straight away, same as Ctrl+S.
func addFileNameSection(parent *widget.Container, fontFace *text.Face, onSubmit func(name string)) *widget.TextInput {
	parent.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Level file", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	))

	input := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(184, 28),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
			Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 120},
			Caret:    color.Black,
		}),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			if onSubmit != nil && strings.TrimSpace(args.InputText) != "" {
				onSubmit(args.InputText)
			}
		}),
	)
	parent.AddChild(input)
	return input
}
