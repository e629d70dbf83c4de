package components

import (
	"github.com/automoto/shapeshifter/shared/particles"
	"github.com/yohamta/donburi"
)

type ParticlesData struct {
	Emitter *particles.Emitter
}

var Particles = donburi.NewComponentType[ParticlesData]()
