package systems

import (
	"log"
	"path/filepath"

	"github.com/automoto/shapeshifter/components"
	cfg "github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/shared/tuning"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTuning reloads the physics constants when the watched tuning file
// changes. Bad edits are logged and the previous values stay active.
func UpdateTuning(e *ecs.ECS) {
	entry, ok := components.Tuning.First(e.World)
	if !ok {
		return
	}
	td := components.Tuning.Get(entry)
	if td.Watcher == nil {
		return
	}

	for {
		select {
		case name, ok := <-td.Watcher.Events:
			if !ok {
				td.Watcher = nil
				return
			}
			if isWatchedFile(name, td.Path) {
				reloadTuning(e, td.Path)
			}
		case err, ok := <-td.Watcher.Errors:
			if !ok {
				td.Watcher = nil
				return
			}
			log.Printf("Warning: tuning watcher: %v", err)
		default:
			return
		}
	}
}

// isWatchedFile reports whether an event for name concerns the tuning file.
// The watcher covers the whole directory, so sibling YAML files are ignored.
func isWatchedFile(name, path string) bool {
	a, errA := filepath.Abs(name)
	b, errB := filepath.Abs(path)
	if errA != nil || errB != nil {
		return filepath.Clean(name) == filepath.Clean(path)
	}
	return a == b
}

func reloadTuning(e *ecs.ECS, path string) {
	params, err := tuning.Load(path)
	if err != nil {
		log.Printf("Warning: Could not reload %s: %v", path, err)
		return
	}
	cfg.Physics = params
	if entry, ok := components.Simulation.First(e.World); ok {
		if s := components.Simulation.Get(entry).Sim; s != nil {
			s.SetParams(params)
		}
	}
	log.Printf("Reloaded physics tuning from %s", path)
}

// CloseTuning stops the tuning watcher, if one is running.
func CloseTuning(e *ecs.ECS) {
	entry, ok := components.Tuning.First(e.World)
	if !ok {
		return
	}
	td := components.Tuning.Get(entry)
	if td.Watcher == nil {
		return
	}
	if err := td.Watcher.Close(); err != nil {
		log.Printf("Warning: Could not close tuning watcher: %v", err)
	}
	td.Watcher = nil
}
