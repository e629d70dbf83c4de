package ui

import (
	"bytes"
	"image/color"
	"log"

	cfg "github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/fonts"
	"github.com/automoto/shapeshifter/shared/shapes"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the title screen: game name, how to play, and the buttons that
// start a run or toggle sound.
type MenuUI struct {
	UI *ebitenui.UI

	OnStart       func()
	OnToggleSound func()

	soundLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	buttonFace text.Face
	smallFace  text.Face
}

// NewMenuUI builds the menu.
func NewMenuUI(onStart func(), onToggleSound func()) *MenuUI {
	ui := &MenuUI{
		OnStart:       onStart,
		OnToggleSound: onToggleSound,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *MenuUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: bold, Size: 56}
	ui.normalFace = &text.GoTextFace{Source: regular, Size: 18}
	ui.buttonFace = &text.GoTextFace{Source: bold, Size: 18}
	ui.smallFace = &text.GoTextFace{Source: regular, Size: 14}
}

func (ui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Colors.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(14),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	menu := cfg.Overlay.Menu
	contentContainer.AddChild(ui.centered(widget.NewLabel(
		widget.LabelOpts.Text(menu.Title, &ui.titleFace, &widget.LabelColor{Idle: menu.TitleColor}),
	)))

	contentContainer.AddChild(ui.centered(ui.buildShapeRow()))

	for _, line := range fonts.Wrap(menu.Message, cfg.Overlay.MessageWidth) {
		contentContainer.AddChild(ui.centered(widget.NewLabel(
			widget.LabelOpts.Text(line, &ui.normalFace, &widget.LabelColor{Idle: cfg.Colors.TextDim}),
		)))
	}

	contentContainer.AddChild(ui.centered(ui.newButton(menu.Button, cfg.Overlay.ButtonColor, func() {
		if ui.OnStart != nil {
			ui.OnStart()
		}
	})))

	soundRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
	)
	soundRow.AddChild(ui.newButton("SOUND", cfg.Slate, func() {
		if ui.OnToggleSound != nil {
			ui.OnToggleSound()
		}
	}))
	ui.soundLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{Idle: cfg.Colors.TextDim}),
	)
	soundRow.AddChild(ui.soundLabel)
	contentContainer.AddChild(soundRow)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// buildShapeRow shows a swatch for every form the player can take.
func (ui *MenuUI) buildShapeRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)
	for _, s := range shapes.All() {
		prof := shapes.ProfileOf(s)
		row.AddChild(widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(prof.Color)),
			widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(int(prof.Width), int(prof.Height))),
		))
	}
	return row
}

func (ui *MenuUI) newButton(label string, c color.RGBA, onClick func()) *widget.Button {
	hover := color.RGBA{R: c.R + (255-c.R)/5, G: c.G + (255-c.G)/5, B: c.B + (255-c.B)/5, A: 255}
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(int(cfg.Overlay.ButtonWidth), int(cfg.Overlay.ButtonHeight))),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(c),
			Hover:   image.NewNineSliceColor(hover),
			Pressed: image.NewNineSliceColor(c),
		}),
		widget.ButtonOpts.Text(label, &ui.buttonFace, &widget.ButtonTextColor{
			Idle:    cfg.Colors.Text,
			Hover:   cfg.Colors.Text,
			Pressed: cfg.Colors.TextDim,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// centered places w in the middle of its vertical row.
func (ui *MenuUI) centered(w widget.PreferredSizeLocateableWidget) widget.PreferredSizeLocateableWidget {
	w.GetWidget().LayoutData = widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}
	return w
}

// SetMuted updates the sound status text.
func (ui *MenuUI) SetMuted(muted bool) {
	if ui.soundLabel == nil {
		return
	}
	ui.soundLabel.Label = cfg.HUD.SoundLabel
	if muted {
		ui.soundLabel.Label = cfg.HUD.MutedLabel
	}
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}
