package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/quarternotes/stagecraft/prefabs"
)

func buildLeftPanelUI(
	theme *widget.Theme,
	fontFace *text.Face,
	paletteEntries []prefabs.Spec,
	onLayerSelected func(idx int),
	onLayerRenamed func(idx int, newName string),
	onNewLayer func(),
	onToggleLayerVisible func(idx int),
	onPalettePicked func(spec prefabs.Spec),
	onFileSubmit func(name string),
) *LeftPanelUI {
	layers := &LayersPanel{
		onSelected:      onLayerSelected,
		onNewLayer:      onNewLayer,
		onToggleVisible: onToggleLayerVisible,
	}
	renameDlg := newRenameDialog(theme, fontFace, "Rename layer", onLayerRenamed)
	layers.onRename = renameDlg.Open

	palette := &PalettePanel{onPicked: onPalettePicked}

	leftPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelBG)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	fileNameInput := addFileNameSection(leftPanel, fontFace, onFileSubmit)
	addLayersSection(leftPanel, theme, fontFace, layers)
	addPaletteSection(leftPanel, fontFace, palette, paletteEntries)

	return &LeftPanelUI{
		Container:     leftPanel,
		Layers:        layers,
		Palette:       palette,
		FileName:      fileNameInput,
		RenameOverlay: renameDlg.Overlay,
	}
}
