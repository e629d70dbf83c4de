package systems

import (
	"github.com/automoto/shapeshifter/components"
	cfg "github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/fonts"
	"github.com/automoto/shapeshifter/shared/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	input := getOrCreateInput(e)

	if !GetAction(input, cfg.ActionPause).JustPressed {
		return
	}

	// Only an attempt in progress can be paused
	if s, ok := components.Session.First(e.World); ok {
		if components.Session.Get(s).Controller.State() != session.Playing {
			pause.IsPaused = false
			return
		}
	}
	pause.IsPaused = !pause.IsPaused
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	drawCentered(screen, cfg.HUD.PausedTitle, fonts.Title.Get(), height/2, cfg.Pause.TextColor)
	hint := getPauseHint(getOrCreateInput(e).LastInputMethod)
	drawCentered(screen, hint, fonts.Message.Get(), height/2+40, cfg.Colors.TextDim)
}

// getPauseHint returns the resume hint for the device in use
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Press Options to resume"
	case components.InputXbox:
		return "Press Start to resume"
	}
	return cfg.HUD.PausedHint
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(entry, components.PauseData{})
	}
	return components.Pause.Get(entry)
}
