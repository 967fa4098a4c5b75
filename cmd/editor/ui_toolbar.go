package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// buildToolBar builds the top strip: a toggle group for the canvas tools
// plus one-shot buttons for actions that otherwise live only on hotkeys.
func buildToolBar(
	theme *widget.Theme,
	fontFace *text.Face,
	onToolSelected func(tool Tool),
	onUndo func(),
	onRedo func(),
	onSave func(),
	initialTool Tool,
) (*widget.Container, *ToolBar) {
	textColor := &widget.ButtonTextColor{
		Idle:     color.Black,
		Hover:    color.Black,
		Pressed:  color.RGBA{0, 0, 200, 255},
		Disabled: color.Gray{Y: 128},
	}

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(320, 48),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	tools := []Tool{ToolSelect, ToolStamp}
	toolButtons := make([]*widget.Button, 0, len(tools))
	elements := make([]widget.RadioGroupElement, 0, len(tools))
	for _, t := range tools {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(t.String(), fontFace, textColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(60, 40),
			),
		)
		toolButtons = append(toolButtons, btn)
		elements = append(elements, btn)
		toolbar.AddChild(btn)
	}

	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onToolSelected == nil {
				return
			}
			for idx, b := range toolButtons {
				if args.Active == b {
					onToolSelected(tools[idx])
					return
				}
			}
		}),
	)
	if idx := int(initialTool); idx >= 0 && idx < len(toolButtons) {
		group.SetActive(toolButtons[idx])
	}

	// Divider between the tool toggles and the one-shot actions.
	toolbar.AddChild(widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(2, 40),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{160, 160, 180, 255})),
	))

	addAction := func(label string, fn func()) {
		toolbar.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, textColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(56, 40),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if fn != nil {
					fn()
				}
			}),
		))
	}
	addAction("Undo", onUndo)
	addAction("Redo", onRedo)
	addAction("Save", onSave)

	return toolbar, &ToolBar{group: group, buttons: toolButtons}
}
