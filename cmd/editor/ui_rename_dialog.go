package main

import (
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// renameDialog is a modal text prompt. Open stages the target index and
// seeds the input; submit hands the trimmed text back through onRenamed.
type renameDialog struct {
	Overlay *widget.Container
	Open    func(idx int, current string)
}

func newRenameDialog(theme *widget.Theme, fontFace *text.Face, title string, onRenamed func(idx int, name string)) *renameDialog {
	targetIdx := -1

	overlay := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchHorizontal:  true,
				StretchVertical:    true,
			}),
			widget.WidgetOpts.MinSize(1, 1),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{0, 0, 0, 160})),
	)
	overlay.GetWidget().Visibility = widget.Visibility_Hide

	dialog := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(320, 140),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 220, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	dialog.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}

	dismiss := func() {
		overlay.GetWidget().Visibility = widget.Visibility_Hide
		targetIdx = -1
	}

	var nameInput *widget.TextInput
	submit := func() {
		name := strings.TrimSpace(nameInput.GetText())
		if targetIdx >= 0 && onRenamed != nil && name != "" {
			onRenamed(targetIdx, name)
		}
		dismiss()
	}

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(title, fontFace, &widget.LabelColor{Idle: color.Black, Disabled: color.Gray{Y: 140}}),
	)
	nameInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(260, 28),
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
			submit()
		}),
	)

	buttonsRow := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	okBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("OK", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			submit()
		}),
	)
	cancelBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Cancel", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			dismiss()
		}),
	)
	buttonsRow.AddChild(okBtn)
	buttonsRow.AddChild(cancelBtn)

	dialog.AddChild(titleLabel)
	dialog.AddChild(nameInput)
	dialog.AddChild(buttonsRow)
	overlay.AddChild(dialog)

	open := func(idx int, current string) {
		targetIdx = idx
		nameInput.SetText(current)
		nameInput.Focus(true)
		overlay.GetWidget().Visibility = widget.Visibility_Show
	}

	return &renameDialog{Overlay: overlay, Open: open}
}
