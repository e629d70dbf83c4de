package components

import (
	"github.com/automoto/shapeshifter/shared/sim"
	"github.com/yohamta/donburi"
)

// SimulationData wraps the physics step for the level being played
type SimulationData struct {
	Sim  *sim.Simulation
	Keys *sim.HeldKeys
	// Attempt is the session attempt this simulation was reset for
	Attempt int
	// LevelID is the level the simulation was built for
	LevelID     int
	WasGrounded bool
	Tick        int
}

var Simulation = donburi.NewComponentType[SimulationData]()
