package sim

import (
	"github.com/automoto/shapeshifter/shared/gamemath"
	"github.com/automoto/shapeshifter/shared/shapes"
)

// Player is the single mutable body in the simulation. X and Y are the
// top-left corner of its box.
type Player struct {
	X, Y     float64
	VX, VY   float64
	W, H     float64
	Shape    shapes.Shape
	Grounded bool
}

func spawnPlayer(x, y float64) Player {
	p := shapes.ProfileOf(shapes.Square)
	return Player{
		X:     x,
		Y:     y,
		W:     p.Width,
		H:     p.Height,
		Shape: shapes.Square,
	}
}

// Rect returns the player's bounding box.
func (p Player) Rect() gamemath.Rect {
	return gamemath.NewRect(p.X, p.Y, p.W, p.H)
}

// Center returns the middle of the bounding box.
func (p Player) Center() (float64, float64) {
	return p.X + p.W/2, p.Y + p.H/2
}

// morph switches shape and keeps the bottom edge fixed.
func (p *Player) morph(to shapes.Shape) {
	prof := shapes.ProfileOf(to)
	oldH := p.H
	p.Shape = to
	p.W = prof.Width
	p.H = prof.Height
	p.Y += oldH - p.H
}
