package components

import (
	"github.com/automoto/shapeshifter/shared/session"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OverlayData animates the end-of-attempt screens and the morph zone pulse
type OverlayData struct {
	Shown session.State // state the fade was started for
	Fade  *gween.Tween
	Alpha float32

	Pulse      *gween.Tween
	PulseValue float32 // -1..1
	PulseUp    bool
}

var Overlay = donburi.NewComponentType[OverlayData]()
