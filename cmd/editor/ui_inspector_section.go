package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// buildInspectorUI composes the right-hand panel. The numeric fields
// take expressions; Apply evaluates and writes them in one commit.
func buildInspectorUI(
	theme *widget.Theme,
	fontFace *text.Face,
	onApply func(v InspectorValues),
	onLock func(),
) *InspectorUI {
	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelBG)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
			),
		),
	)

	insp := &Inspector{onApply: onApply, onLock: onLock}

	header := widget.NewLabel(
		widget.LabelOpts.Text("Nothing selected", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	insp.header = header
	panel.AddChild(header)

	makeField := func(label string) *widget.TextInput {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(label, fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
		))
		input := widget.NewTextInput(
			widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 28)),
			widget.TextInputOpts.Image(&widget.TextInputImage{
				Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
				Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
			}),
			widget.TextInputOpts.Color(&widget.TextInputColor{Idle: color.Black, Disabled: color.Gray{Y: 120}, Caret: color.Black}),
			widget.TextInputOpts.Face(fontFace),
			widget.TextInputOpts.SubmitOnEnter(true),
			widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
				if insp.onApply != nil {
					insp.onApply(insp.values())
				}
			}),
		)
		panel.AddChild(input)
		return input
	}

	insp.name = makeField("Name")
	insp.x = makeField("X")
	insp.y = makeField("Y")
	insp.w = makeField("W")
	insp.h = makeField("H")

	layerBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Layer: inherit", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			insp.cycleLayer()
		}),
	)
	insp.layerBtn = layerBtn
	panel.AddChild(layerBtn)

	actionsRow := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	lockBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Lock", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if insp.suppress {
				return
			}
			if insp.onLock != nil {
				insp.onLock()
			}
		}),
	)
	insp.lockBtn = lockBtn
	applyBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Apply", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if insp.onApply != nil {
				insp.onApply(insp.values())
			}
		}),
	)
	actionsRow.AddChild(lockBtn)
	actionsRow.AddChild(applyBtn)
	panel.AddChild(actionsRow)

	return &InspectorUI{Container: panel, Inspector: insp}
}
