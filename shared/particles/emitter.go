// Package particles spawns and ages short-lived visual particles. Particle
// state is cosmetic and never feeds back into the simulation.
package particles

import (
	"image/color"
	"math/rand"
	"time"
)

const (
	spread    = 10.0
	minSize   = 2.0
	sizeRange = 4.0
	decay     = 0.02
)

// Particle is one fading dot. Life runs from 1 down to 0 and doubles as the
// draw alpha.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   float64
	Color  color.RGBA
}

// Emitter owns a pool of live particles.
type Emitter struct {
	rng       *rand.Rand
	particles []Particle
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithRand uses r for every random draw.
func WithRand(r *rand.Rand) Option {
	return func(e *Emitter) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithSeed seeds a private source, making emission reproducible.
func WithSeed(seed int64) Option {
	return func(e *Emitter) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// New returns an empty emitter seeded from the clock unless overridden.
func New(opts ...Option) *Emitter {
	e := &Emitter{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// Emit spawns count particles at (x, y) with random velocity and size.
func (e *Emitter) Emit(x, y float64, c color.RGBA, count int) {
	for i := 0; i < count; i++ {
		e.particles = append(e.particles, Particle{
			X:     x,
			Y:     y,
			VX:    (e.rng.Float64() - 0.5) * spread,
			VY:    (e.rng.Float64() - 0.5) * spread,
			Size:  e.rng.Float64()*sizeRange + minSize,
			Life:  1.0,
			Color: c,
		})
	}
}

// Update moves every particle by its velocity, ages it and drops the dead
// ones. Survivors keep their relative order.
func (e *Emitter) Update() {
	live := e.particles[:0]
	for _, p := range e.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= decay
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	clear(e.particles[len(live):])
	e.particles = live
}

// Particles returns the live particles. The slice is only valid until the
// next Emit, Update or Clear and must not be modified.
func (e *Emitter) Particles() []Particle {
	return e.particles
}

// Len reports how many particles are alive.
func (e *Emitter) Len() int { return len(e.particles) }

// Clear drops every particle.
func (e *Emitter) Clear() {
	e.particles = e.particles[:0]
}
