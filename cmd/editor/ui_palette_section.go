package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/quarternotes/stagecraft/prefabs"
)

func addPaletteSection(
	parent *widget.Container,
	fontFace *text.Face,
	panel *PalettePanel,
	entries []prefabs.Spec,
) {
	paletteLabel := widget.NewLabel(
		widget.LabelOpts.Text("Palette", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	parent.AddChild(paletteLabel)

	initial := make([]any, 0, len(entries))
	for _, s := range entries {
		initial = append(initial, s)
	}
	paletteList := widget.NewList(
		widget.ListOpts.Entries(initial),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if spec, ok := e.(prefabs.Spec); ok {
				return spec.Name
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if panel.suppress || panel.onPicked == nil {
				return
			}
			if spec, ok := args.Entry.(prefabs.Spec); ok {
				panel.onPicked(spec)
			}
		}),
	)
	parent.AddChild(paletteList)
	panel.list = paletteList
}
