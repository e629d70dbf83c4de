// Package shapes defines the player forms and their physical tuning.
package shapes

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Shape identifies one of the player forms.
type Shape int

const (
	Square Shape = iota
	Triangle
	Circle
	Rectangle
	shapeCount
)

var ErrUnknownShape = errors.New("unknown shape")

// Profile is the static tuning for a shape.
type Profile struct {
	Width     float64
	Height    float64
	JumpMult  float64
	SpeedMult float64
	Color     color.RGBA
	Label     string
}

var profiles = [shapeCount]Profile{
	Square: {
		Width: 40, Height: 40,
		JumpMult: 1.0, SpeedMult: 1.0,
		Color: color.RGBA{0x3b, 0x82, 0xf6, 0xff},
		Label: "Standard",
	},
	Triangle: {
		Width: 40, Height: 40,
		JumpMult: 1.4, SpeedMult: 1.1,
		Color: color.RGBA{0xef, 0x44, 0x44, 0xff},
		Label: "High Jump",
	},
	Circle: {
		Width: 40, Height: 40,
		JumpMult: 1.1, SpeedMult: 1.5,
		Color: color.RGBA{0xea, 0xb3, 0x08, 0xff},
		Label: "Speed",
	},
	Rectangle: {
		Width: 60, Height: 20,
		JumpMult: 0.8, SpeedMult: 1.0,
		Color: color.RGBA{0x22, 0xc5, 0x5e, 0xff},
		Label: "Squeeze",
	},
}

var names = [shapeCount]string{
	Square:    "square",
	Triangle:  "triangle",
	Circle:    "circle",
	Rectangle: "rectangle",
}

// ProfileOf returns the tuning for s. Passing an unknown shape is a
// programming error and panics.
func ProfileOf(s Shape) Profile {
	if !s.Valid() {
		panic(fmt.Sprintf("shapes: no profile for shape %d", int(s)))
	}
	return profiles[s]
}

// Valid reports whether s is a known shape.
func (s Shape) Valid() bool {
	return s >= 0 && s < shapeCount
}

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return names[s]
}

// Parse converts a case-insensitive shape name.
func Parse(name string) (Shape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range names {
		if candidate == n {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// All returns every shape in declaration order.
func All() []Shape {
	all := make([]Shape, 0, shapeCount)
	for s := Square; s < shapeCount; s++ {
		all = append(all, s)
	}
	return all
}
