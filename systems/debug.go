package systems

import (
	"fmt"

	"github.com/automoto/shapeshifter/components"
	cfg "github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the player's collision box and prints its state when
// debug mode is enabled.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	simData := components.Simulation.Get(entry)
	s := simData.Sim
	p := s.Player()

	for _, solid := range s.Level().Solids() {
		r := solid.Rect
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, cfg.Green, false)
	}
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), 1, cfg.Cyan, false)
	exit := s.Level().Exit
	vector.StrokeRect(screen, float32(exit.X), float32(exit.Y), float32(exit.W), float32(exit.H), 1, cfg.Yellow, false)

	params := s.Params()
	lines := []string{
		fmt.Sprintf("TPS %0.1f  FPS %0.1f  tick %d", ebiten.ActualTPS(), ebiten.ActualFPS(), simData.Tick),
		fmt.Sprintf("pos %.1f,%.1f  vel %.2f,%.2f", p.X, p.Y, p.VX, p.VY),
		fmt.Sprintf("shape %s  grounded %t  outcome %s", p.Shape, p.Grounded, s.Outcome()),
		fmt.Sprintf("g %.2f  f %.2f  move %.2f  max %.1f  jump %.1f",
			params.Gravity, params.Friction, params.MoveSpeed, params.MaxSpeed, params.JumpForce),
	}
	if entry.HasComponent(components.Particles) {
		lines = append(lines, fmt.Sprintf("particles %d", components.Particles.Get(entry).Emitter.Len()))
	}

	face := fonts.Small.Get()
	lineHeight := face.Metrics().Height.Ceil()
	y := screen.Bounds().Dy() - int(cfg.HUD.Margin)*3 - lineHeight*len(lines)
	for i, line := range lines {
		text.Draw(screen, line, face, int(cfg.HUD.Margin), y+i*lineHeight, cfg.Yellow)
	}
}
