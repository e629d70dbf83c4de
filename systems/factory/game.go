package factory

import (
	"log"
	"path/filepath"

	"github.com/automoto/shapeshifter/archetypes"
	"github.com/automoto/shapeshifter/components"
	"github.com/automoto/shapeshifter/shared/leveldata"
	"github.com/automoto/shapeshifter/shared/particles"
	"github.com/automoto/shapeshifter/shared/session"
	"github.com/automoto/shapeshifter/shared/sim"
	"github.com/automoto/shapeshifter/shared/tuning"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the entity that owns the session and the level being
// played. The simulation itself is built on the first session update.
func CreateGame(e *ecs.ECS, ctrl *session.Controller, levels []*leveldata.Level) *donburi.Entry {
	entry := archetypes.Game.Spawn(e)

	components.Session.SetValue(entry, components.SessionData{
		Controller: ctrl,
		Levels:     levels,
	})
	components.Simulation.SetValue(entry, components.SimulationData{
		Keys: &sim.HeldKeys{},
	})
	components.Particles.SetValue(entry, components.ParticlesData{
		Emitter: particles.New(),
	})
	components.Overlay.SetValue(entry, components.OverlayData{
		Shown:   ctrl.State(),
		PulseUp: true,
	})

	return entry
}

// CreateTuning watches the directory holding path so edits to the tuning
// file are applied while the game runs. A watcher that fails to start is
// logged and skipped.
func CreateTuning(e *ecs.ECS, path string) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(components.Tuning))

	watcher, err := tuning.NewWatcher(filepath.Dir(path))
	if err != nil {
		log.Printf("Warning: Could not watch %s: %v", path, err)
		watcher = nil
	}
	components.Tuning.SetValue(entry, components.TuningData{
		Path:    path,
		Watcher: watcher,
	})

	return entry
}
