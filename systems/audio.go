package systems

import (
	"sync"

	"github.com/automoto/shapeshifter/assets"
	"github.com/automoto/shapeshifter/components"
	cfg "github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/shared/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, cfg.Audio.MasterGain)
	})
}

// PreloadAllSFX synthesizes every cue at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()
	globalAudioLoader.PreloadAll()
}

// UpdateAudio plays the cues queued during the frame
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, cue := range audioData.PendingSFX {
		playSFX(cue)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(cue synth.Cue) {
	if globalMuted {
		return
	}
	globalAudioLoader.LoadSFX(cue).Play()
}

// PlaySFX queues a cue to be played at the end of the frame
func PlaySFX(e *ecs.ECS, cue synth.Cue) {
	audioData := GetOrCreateAudio(e)
	if len(audioData.PendingSFX) >= cfg.Audio.MaxPendingSFX {
		return
	}
	audioData.PendingSFX = append(audioData.PendingSFX, cue)
}

// SetMuted silences or restores every cue
func SetMuted(muted bool) {
	globalMuted = muted
}

// IsMuted reports whether cues are silenced
func IsMuted() bool {
	return globalMuted
}

// ToggleMute flips the mute state and persists it
func ToggleMute() {
	SetMuted(!globalMuted)
	SaveCurrentSettings()
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]synth.Cue, 0, cfg.Audio.MaxPendingSFX),
		})
	}
	return components.Audio.Get(entry)
}
