package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/quarternotes/stagecraft/prefabs"
)

func BuildEditorUI(
	paletteEntries []prefabs.Spec,
	onToolSelected func(tool Tool),
	onLayerSelected func(idx int),
	onLayerRenamed func(idx int, newName string),
	onNewLayer func(),
	onToggleLayerVisible func(idx int),
	onPalettePicked func(spec prefabs.Spec),
	onInspectorApply func(v InspectorValues),
	onLockToggle func(),
	onFileSubmit func(name string),
	onUndo func(),
	onRedo func(),
	onSave func(),
	initialTool Tool,
) (*ebitenui.UI, *ToolBar, *LeftPanelUI, *Inspector) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolbarContainer, toolBar := buildToolBar(ui.PrimaryTheme, &fontFace, onToolSelected, onUndo, onRedo, onSave, initialTool)
	leftPanel := buildLeftPanelUI(
		ui.PrimaryTheme,
		&fontFace,
		paletteEntries,
		onLayerSelected,
		onLayerRenamed,
		onNewLayer,
		onToggleLayerVisible,
		onPalettePicked,
		onFileSubmit,
	)
	inspectorUI := buildInspectorUI(ui.PrimaryTheme, &fontFace, onInspectorApply, onLockToggle)

	// Empty center child keeps the anchor layout from collapsing; the
	// canvas itself is drawn straight to the screen by the editor.
	canvasSpacer := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(800, 600),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	canvasSpacer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	leftPanel.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	inspectorUI.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	toolbarContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(canvasSpacer)
	root.AddChild(leftPanel.Container)
	root.AddChild(inspectorUI.Container)
	root.AddChild(toolbarContainer)
	// Added last so the modal draws above every panel.
	if leftPanel.RenameOverlay != nil {
		root.AddChild(leftPanel.RenameOverlay)
	}

	ui.Container = root

	return ui, toolBar, leftPanel, inspectorUI.Inspector
}
