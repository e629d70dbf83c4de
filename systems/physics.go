package systems

import (
	"log"

	"github.com/automoto/shapeshifter/components"
	cfg "github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/shared/session"
	"github.com/automoto/shapeshifter/shared/sim"
	"github.com/automoto/shapeshifter/shared/synth"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the simulation one tick while an attempt is in
// progress and reports the outcome to the session.
// Register it wrapped in WithPauseCheck.
func UpdatePhysics(e *ecs.ECS) {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return
	}
	sess := components.Session.Get(entry)
	if sess.Controller.State() != session.Playing {
		return
	}
	simData := components.Simulation.Get(entry)
	if simData.Sim == nil {
		return
	}

	feedHeldKeys(getOrCreateInput(e), simData.Keys)
	outcome := simData.Sim.Step(simData.Keys.Snapshot())
	simData.Tick++

	player := simData.Sim.Player()
	if outcome == sim.Continue && player.Grounded && !simData.WasGrounded {
		PlaySFX(e, synth.CueStep)
		TriggerSquashStretch(entry, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
	}
	simData.WasGrounded = player.Grounded

	var ev session.Event
	switch outcome {
	case sim.Died:
		ev = session.Die
	case sim.Won:
		ev = session.Win
	default:
		return
	}
	if _, err := sess.Controller.Fire(ev); err != nil {
		log.Printf("Warning: %v", err)
	}
}
