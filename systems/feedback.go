package systems

import (
	"github.com/automoto/shapeshifter/components"
	cfg "github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/shared/shapes"
	"github.com/automoto/shapeshifter/shared/sim"
	"github.com/automoto/shapeshifter/shared/synth"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// feedback turns simulation events into particles, sounds and screen effects
// on the game entity.
type feedback struct {
	ecs   *ecs.ECS
	entry *donburi.Entry
}

var _ sim.EventSink = (*feedback)(nil)

func newFeedback(e *ecs.ECS, entry *donburi.Entry) *feedback {
	return &feedback{ecs: e, entry: entry}
}

func (f *feedback) emit(x, y float64, recipe cfg.ParticleRecipe) {
	if !f.entry.HasComponent(components.Particles) {
		return
	}
	components.Particles.Get(f.entry).Emitter.Emit(x, y, recipe.Color, recipe.Count)
}

func (f *feedback) OnDeath(cause sim.Cause, x, y float64) {
	if cause != sim.CauseHazard {
		return
	}
	f.emit(x, y, cfg.Particles.HazardDeath)
	TriggerScreenShake(f.entry, cfg.ScreenShake.DeathIntensity, cfg.ScreenShake.DeathDuration)
}

func (f *feedback) OnWin(x, y float64) {
	f.emit(x, y, cfg.Particles.Win)
}

func (f *feedback) OnShapeChanged(_, to shapes.Shape, x, y float64) {
	f.emit(x, y, cfg.ParticleRecipe{
		Count: cfg.Particles.MorphCount,
		Color: shapes.ProfileOf(to).Color,
	})
	PlaySFX(f.ecs, synth.CueMorph)
}

func (f *feedback) OnJump(x, y float64) {
	f.emit(x, y, cfg.Particles.Jump)
	PlaySFX(f.ecs, synth.CueJump)
	TriggerSquashStretch(f.entry, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
}
