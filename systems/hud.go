package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/shapeshifter/components"
	cfg "github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/fonts"
	"github.com/automoto/shapeshifter/shared/shapes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the level name, current form, mute state and controls.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	sess := components.Session.Get(entry)
	level := sess.CurrentLevel()
	player := components.Simulation.Get(entry).Sim.Player()

	face := fonts.HUD.Get()
	margin := int(cfg.HUD.Margin)
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	lineHeight := face.Metrics().Height.Ceil()

	header := fmt.Sprintf("Level %d: %s", sess.Controller.Level(), level.Name)
	text.Draw(screen, header, face, margin, margin+lineHeight, cfg.Colors.Text)

	prof := shapes.ProfileOf(player.Shape)
	prefix := cfg.HUD.FormPrefix + " "
	formX := margin
	formY := margin + lineHeight*2
	text.Draw(screen, prefix, face, formX, formY, cfg.Colors.TextDim)
	formX += font.MeasureString(face, prefix).Ceil()
	text.Draw(screen, prof.Label, face, formX, formY, prof.Color)

	sound := cfg.HUD.SoundLabel
	if IsMuted() {
		sound = cfg.HUD.MutedLabel
	}
	soundWidth := font.MeasureString(face, sound).Ceil()
	text.Draw(screen, sound, face, width-margin-soundWidth, margin+lineHeight, cfg.Colors.TextDim)

	small := fonts.Small.Get()
	x := margin
	for _, line := range cfg.HUD.Footer {
		text.Draw(screen, line, small, x, height-margin, cfg.Colors.TextDim)
		x += font.MeasureString(small, line).Ceil() + margin*2
	}
}

// drawCentered draws s horizontally centered with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, c color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, (screen.Bounds().Dx()-w)/2, y, c)
}
