// Package sim runs the per-frame player physics against static level
// geometry. It has no dependencies on ebitengine or donburi so it can be
// stepped headlessly in tests.
package sim

// Params holds the physics constants shared by every shape. Shape profiles
// scale MoveSpeed, MaxSpeed and JumpForce.
type Params struct {
	Gravity   float64
	Friction  float64 // velocity multiplier applied every tick, in (0, 1]
	MoveSpeed float64
	MaxSpeed  float64
	JumpForce float64 // negative is up
}

// DefaultParams returns the tuning the shipped levels are designed for.
func DefaultParams() Params {
	return Params{
		Gravity:   0.6,
		Friction:  0.8,
		MoveSpeed: 0.8,
		MaxSpeed:  8,
		JumpForce: -12,
	}
}

// World is the fixed playfield size used for the horizontal clamp and the
// void-death test.
type World struct {
	Width  float64
	Height float64
}
