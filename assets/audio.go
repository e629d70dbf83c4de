package assets

import (
	"github.com/automoto/shapeshifter/shared/synth"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes sound cues once and hands out players for them
type AudioLoader struct {
	sfxCache   map[synth.Cue][]byte // Cache rendered PCM per cue
	context    *audio.Context
	masterGain float64
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context, masterGain float64) *AudioLoader {
	return &AudioLoader{
		sfxCache:   make(map[synth.Cue][]byte),
		context:    ctx,
		masterGain: masterGain,
	}
}

// PreloadSFX renders a cue and caches it without creating a player.
// Call this at startup to avoid synthesis lag on first play.
func (l *AudioLoader) PreloadSFX(cue synth.Cue) {
	if _, ok := l.sfxCache[cue]; ok {
		return
	}
	l.sfxCache[cue] = synth.Render(cue, beep.SampleRate(l.context.SampleRate()), l.masterGain)
}

// PreloadAll renders every cue.
func (l *AudioLoader) PreloadAll() {
	for _, cue := range synth.Cues() {
		l.PreloadSFX(cue)
	}
}

// LoadSFX returns a new player for cue each time.
func (l *AudioLoader) LoadSFX(cue synth.Cue) *audio.Player {
	l.PreloadSFX(cue)
	return l.context.NewPlayerFromBytes(l.sfxCache[cue])
}
