package systems

import (
	"github.com/automoto/shapeshifter/components"
	cfg "github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/fonts"
	"github.com/automoto/shapeshifter/shared/gamemath"
	"github.com/automoto/shapeshifter/shared/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// overlayText returns the copy for an end-of-attempt state.
func overlayText(state session.State) (cfg.OverlayText, bool) {
	switch state {
	case session.GameOver:
		return cfg.Overlay.GameOver, true
	case session.LevelComplete:
		return cfg.Overlay.LevelComplete, true
	case session.Victory:
		return cfg.Overlay.Victory, true
	}
	return cfg.OverlayText{}, false
}

// overlayButtonRect is the clickable button on every overlay.
func overlayButtonRect(screenWidth float64) gamemath.Rect {
	w := cfg.Overlay.ButtonWidth
	return gamemath.NewRect((screenWidth-w)/2, cfg.Overlay.ButtonY, w, cfg.Overlay.ButtonHeight)
}

// DrawOverlay renders the GameOver, LevelComplete and Victory screens,
// fading them in over the frozen level.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	content, ok := overlayText(components.Session.Get(entry).Controller.State())
	if !ok {
		return
	}

	alpha := 1.0
	if o, ok := components.Overlay.First(e.World); ok {
		alpha = float64(components.Overlay.Get(o).Alpha)
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), fade(cfg.Colors.Overlay, alpha), false)

	drawCentered(screen, content.Title, fonts.Title.Get(), int(cfg.Overlay.TitleY), fade(content.TitleColor, alpha))

	message := fonts.Message.Get()
	lineHeight := message.Metrics().Height.Ceil()
	for i, line := range fonts.Wrap(content.Message, cfg.Overlay.MessageWidth) {
		drawCentered(screen, line, message, int(cfg.Overlay.MessageY)+i*lineHeight, fade(cfg.Colors.TextDim, alpha))
	}

	button := overlayButtonRect(float64(width))
	fillRect(screen, button, fade(cfg.Overlay.ButtonColor, alpha))
	buttonFace := fonts.Button.Get()
	baseline := int(button.Y+button.H/2) + buttonFace.Metrics().Ascent.Ceil()/2
	drawCentered(screen, content.Button, buttonFace, baseline, fade(cfg.Colors.Text, alpha))
}
