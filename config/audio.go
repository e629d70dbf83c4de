package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	// MasterGain scales every synthesized cue
	MasterGain float64
	// MaxPendingSFX caps cues queued in one frame
	MaxPendingSFX int
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		MasterGain:    0.3,
		MaxPendingSFX: 8,
	}
}
