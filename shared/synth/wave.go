// Package synth renders the game's sound cues from simple oscillators into
// PCM buffers that ebiten's audio players can stream.
package synth

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Saw
	Triangle
)

func (w Wave) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Saw:
		return "sawtooth"
	case Triangle:
		return "triangle"
	}
	return "unknown"
}

// oscillator generates a unit-amplitude periodic wave for a fixed number of
// samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator returns a streamer that plays freq for duration.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := sample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sample evaluates one period of w at phase in [0, 1).
func sample(w Wave, phase float64) float64 {
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Saw:
		return 2 * (phase - 0.5)
	case Triangle:
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// expEnvelope scales a stream from start to end gain along an exponential
// curve spanning total samples.
type expEnvelope struct {
	streamer beep.Streamer
	start    float64
	ratio    float64
	position int
	total    int
}

// NewEnvelope ramps gain exponentially from start to end over duration.
// Both gains must be positive.
func NewEnvelope(s beep.Streamer, start, end float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &expEnvelope{
		streamer: s,
		start:    start,
		ratio:    end / start,
		total:    rate.N(duration),
	}
}

func (e *expEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := e.start * math.Pow(e.ratio, float64(e.position)/float64(e.total))
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *expEnvelope) Err() error { return e.streamer.Err() }
