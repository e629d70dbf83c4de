package archetypes

import (
	"github.com/automoto/shapeshifter/components"
	cfg "github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Game = newArchetype(
		tags.Game,
		components.Session,
		components.Simulation,
		components.Particles,
		components.Overlay,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
