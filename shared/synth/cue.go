package synth

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Tone is one enveloped note inside a cue.
type Tone struct {
	Freq      float64
	Wave      Wave
	Duration  time.Duration
	Delay     time.Duration
	StartGain float64
	EndGain   float64
}

// Cue names a group of tones played together for one game event.
type Cue int

const (
	CueJump Cue = iota
	CueMorph
	CueDie
	CueWin
	CueStep
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueMorph:
		return "morph"
	case CueDie:
		return "die"
	case CueWin:
		return "win"
	case CueStep:
		return "step"
	}
	return "unknown"
}

// Cues lists every cue in declaration order.
func Cues() []Cue {
	out := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		out = append(out, c)
	}
	return out
}

const (
	noteGain = 0.5
	tailGain = 0.01
	ms       = time.Millisecond
)

func note(freq float64, wave Wave, dur, delay time.Duration) Tone {
	return Tone{Freq: freq, Wave: wave, Duration: dur, Delay: delay, StartGain: noteGain, EndGain: tailGain}
}

var cueTones = [cueCount][]Tone{
	CueJump: {
		note(400, Square, 100*ms, 0),
		note(600, Sine, 100*ms, 50*ms),
	},
	CueMorph: {
		note(800, Saw, 100*ms, 0),
		note(1200, Sine, 200*ms, 50*ms),
	},
	CueDie: {
		note(200, Saw, 300*ms, 0),
		note(150, Square, 300*ms, 100*ms),
		note(100, Saw, 400*ms, 200*ms),
	},
	CueWin: {
		note(523.25, Triangle, 100*ms, 0),
		note(659.25, Triangle, 100*ms, 100*ms),
		note(783.99, Triangle, 200*ms, 200*ms),
		note(1046.50, Triangle, 400*ms, 300*ms),
	},
	CueStep: {
		{Freq: 100, Wave: Triangle, Duration: 50 * ms, StartGain: 0.05, EndGain: 0.001},
	},
}

// Tones returns the notes that make up c.
func (c Cue) Tones() []Tone {
	if c < 0 || c >= cueCount {
		return nil
	}
	return cueTones[c]
}

// Length is the time from the cue's start to the end of its last tone.
func (c Cue) Length() time.Duration {
	var end time.Duration
	for _, t := range c.Tones() {
		end = max(end, t.Delay+t.Duration)
	}
	return end
}

// Stream builds a beep streamer mixing every tone of c at masterGain.
func (c Cue) Stream(rate beep.SampleRate, masterGain float64) beep.Streamer {
	tones := c.Tones()
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		var s beep.Streamer = NewEnvelope(NewOscillator(t.Freq, t.Duration, t.Wave, rate), t.StartGain, t.EndGain, t.Duration, rate)
		if d := rate.N(t.Delay); d > 0 {
			s = beep.Seq(beep.Silence(d), s)
		}
		parts = append(parts, s)
	}
	return beep.Take(rate.N(c.Length()), newVolume(beep.Mix(parts...), masterGain))
}

// newVolume treats a non-positive gain as mute, since Log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// BytesPerSample is the size of one stereo frame in Render's output.
const BytesPerSample = 4

// Render produces c as signed 16-bit little-endian stereo PCM. The buffer
// always spans the full cue, so a muted cue is silence of the same length.
func Render(c Cue, rate beep.SampleRate, masterGain float64) []byte {
	total := rate.N(c.Length())
	out := make([]byte, total*BytesPerSample)

	s := c.Stream(rate, masterGain)
	buf := make([][2]float64, 512)
	pos := 0
	for pos < total {
		n, ok := s.Stream(buf[:min(len(buf), total-pos)])
		for i := 0; i < n; i++ {
			off := (pos + i) * BytesPerSample
			binary.LittleEndian.PutUint16(out[off:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(out[off+2:], uint16(toInt16(buf[i][1])))
		}
		pos += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
