// Package leveldata provides level descriptors and TMX level parsing.
// It has no dependencies on ebitengine, donburi, or resolv; it is pure data.
package leveldata

import (
	"github.com/automoto/shapeshifter/shared/gamemath"
	"github.com/automoto/shapeshifter/shared/shapes"
)

// PlatformKind distinguishes walkable geometry from lethal geometry.
type PlatformKind int

const (
	Solid PlatformKind = iota
	Hazard
)

func (k PlatformKind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Hazard:
		return "hazard"
	}
	return "unknown"
}

// Platform is a static rectangle in the level.
type Platform struct {
	Rect gamemath.Rect
	Kind PlatformKind
}

// MorphZone changes the player's shape on overlap.
type MorphZone struct {
	Rect  gamemath.Rect
	Shape shapes.Shape
}

// Label is decorative text drawn behind the level geometry.
type Label struct {
	X, Y float64
	Text string
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Level is an immutable level description. Platforms and MorphZones keep
// their authoring order, which the physics step relies on.
type Level struct {
	ID            int
	Name          string
	Description   string
	Spawn         Point
	Platforms     []Platform
	MorphZones    []MorphZone
	Exit          gamemath.Rect
	RequiredShape shapes.Shape
	Labels        []Label
	Width         int
	Height        int
}

// Solids returns the solid platforms in level order.
func (l *Level) Solids() []Platform {
	out := make([]Platform, 0, len(l.Platforms))
	for _, p := range l.Platforms {
		if p.Kind == Solid {
			out = append(out, p)
		}
	}
	return out
}
