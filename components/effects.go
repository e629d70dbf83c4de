package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks an active screen shake
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
	OffsetX   float64 // current draw offset
	OffsetY   float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// SquashStretchData tracks player scale deformation for jump/land feel
type SquashStretchData struct {
	ScaleX, ScaleY   float64 // current scale
	TargetX, TargetY float64 // lerp target (usually 1.0, 1.0)
	LerpSpeed        float64 // how fast to return to normal
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
