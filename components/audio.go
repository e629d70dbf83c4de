package components

import (
	"github.com/automoto/shapeshifter/shared/synth"
	"github.com/yohamta/donburi"
)

// AudioData queues cues raised during a frame (singleton component)
type AudioData struct {
	PendingSFX []synth.Cue
}

var Audio = donburi.NewComponentType[AudioData]()
