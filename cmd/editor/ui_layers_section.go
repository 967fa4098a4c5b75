package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func addLayersSection(
	parent *widget.Container,
	theme *widget.Theme,
	fontFace *text.Face,
	panel *LayersPanel,
) {
	layersLabel := widget.NewLabel(
		widget.LabelOpts.Text("Layers", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	parent.AddChild(layersLabel)

	layerList := widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			row, ok := e.(LayerRow)
			if !ok {
				return ""
			}
			label := fmt.Sprintf("%d. %s", row.Index+1, row.Name)
			if !row.Visible {
				label += " (hidden)"
			}
			return label
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if panel.suppress {
				return
			}
			row, ok := args.Entry.(LayerRow)
			if !ok {
				return
			}
			if panel.onSelected != nil {
				panel.onSelected(row.Index)
			}
		}),
	)
	parent.AddChild(layerList)
	panel.list = layerList

	buttonsRow := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	newLayerBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("New", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if panel.onNewLayer != nil {
				panel.onNewLayer()
			}
		}),
	)
	renameBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Rename", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if panel.onRename == nil {
				return
			}
			if sel, ok := layerList.SelectedEntry().(LayerRow); ok {
				panel.onRename(sel.Index, sel.Name)
			}
		}),
	)
	visibleBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Show/Hide", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if panel.onToggleVisible == nil {
				return
			}
			if sel, ok := layerList.SelectedEntry().(LayerRow); ok {
				panel.onToggleVisible(sel.Index)
			}
		}),
	)
	buttonsRow.AddChild(newLayerBtn)
	buttonsRow.AddChild(renameBtn)
	buttonsRow.AddChild(visibleBtn)
	parent.AddChild(buttonsRow)
}
