package systems

import (
	"math"

	"github.com/automoto/shapeshifter/components"
	"github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/shared/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances visual feedback: particles, squash/stretch, screen
// shake, and the overlay and morph zone tweens.
func UpdateEffects(e *ecs.ECS) {
	updateParticles(e)
	updateSquashStretchEffects(e)
	updateScreenShake(e)
	updateOverlayTweens(e)
}

func frameSeconds() float32 {
	return float32(1.0 / float64(ebiten.TPS()))
}

func updateParticles(e *ecs.ECS) {
	components.Particles.Each(e.World, func(entry *donburi.Entry) {
		components.Particles.Get(entry).Emitter.Update()
	})
}

// updateSquashStretchEffects lerps scale values toward target and removes when normalized
func updateSquashStretchEffects(e *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.SquashStretch.Each(e.World, func(entry *donburi.Entry) {
		ss := components.SquashStretch.Get(entry)

		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

		threshold := 0.01
		if math.Abs(ss.ScaleX-ss.TargetX) < threshold && math.Abs(ss.ScaleY-ss.TargetY) < threshold {
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		entry.RemoveComponent(components.SquashStretch)
	}
}

// updateScreenShake decays the shake and recomputes the draw offset
func updateScreenShake(e *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.ScreenShake.Each(e.World, func(entry *donburi.Entry) {
		shake := components.ScreenShake.Get(entry)
		if shake.Duration <= 0 {
			toRemove = append(toRemove, entry)
			return
		}

		shake.Elapsed++
		shake.Duration--

		// Linear falloff over the remaining frames
		falloff := float64(shake.Duration) / float64(shake.Duration+shake.Elapsed)
		amp := shake.Intensity * falloff
		shake.OffsetX = math.Sin(float64(shake.Elapsed)*1.7) * amp
		shake.OffsetY = math.Cos(float64(shake.Elapsed)*2.3) * amp
	})

	for _, entry := range toRemove {
		entry.RemoveComponent(components.ScreenShake)
	}
}

// updateOverlayTweens fades end-of-attempt screens in and ping-pongs the
// morph zone pulse.
func updateOverlayTweens(e *ecs.ECS) {
	entry, ok := components.Overlay.First(e.World)
	if !ok {
		return
	}
	overlay := components.Overlay.Get(entry)
	dt := frameSeconds()

	state := session.Playing
	if s, ok := components.Session.First(e.World); ok {
		state = components.Session.Get(s).Controller.State()
	}

	if state != overlay.Shown {
		overlay.Shown = state
		overlay.Alpha = 0
		overlay.Fade = nil
		if state != session.Playing {
			overlay.Fade = gween.New(0, 1, config.Overlay.FadeSeconds, ease.OutQuad)
		}
	}
	if overlay.Fade != nil {
		alpha, done := overlay.Fade.Update(dt)
		overlay.Alpha = alpha
		if done {
			overlay.Fade = nil
		}
	}

	if overlay.Pulse == nil {
		overlay.Pulse = newPulse(overlay.PulseUp)
	}
	value, done := overlay.Pulse.Update(dt)
	overlay.PulseValue = value
	if done {
		overlay.PulseUp = !overlay.PulseUp
		overlay.Pulse = newPulse(overlay.PulseUp)
	}
}

func newPulse(up bool) *gween.Tween {
	half := config.Render.ZonePulseSeconds / 2
	if up {
		return gween.New(-1, 1, half, ease.InOutSine)
	}
	return gween.New(1, -1, half, ease.InOutSine)
}

// TriggerSquashStretch adds a squash/stretch effect to an entity
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	data := components.SquashStretchData{
		ScaleX:    scaleX,
		ScaleY:    scaleY,
		TargetX:   1.0,
		TargetY:   1.0,
		LerpSpeed: config.SquashStretch.LerpSpeed,
	}
	if entry.HasComponent(components.SquashStretch) {
		components.SquashStretch.SetValue(entry, data)
		return
	}
	entry.AddComponent(components.SquashStretch)
	components.SquashStretch.SetValue(entry, data)
}

// TriggerScreenShake starts or restarts a screen shake on an entity
func TriggerScreenShake(entry *donburi.Entry, intensity float64, duration int) {
	data := components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	}
	if !entry.HasComponent(components.ScreenShake) {
		entry.AddComponent(components.ScreenShake)
	}
	components.ScreenShake.SetValue(entry, data)
}

// squashScale returns the active squash/stretch scale for entry, or 1, 1.
func squashScale(entry *donburi.Entry) (float64, float64) {
	if !entry.HasComponent(components.SquashStretch) {
		return 1, 1
	}
	ss := components.SquashStretch.Get(entry)
	return ss.ScaleX, ss.ScaleY
}

// shakeOffset returns the current screen shake offset for entry.
func shakeOffset(entry *donburi.Entry) (float64, float64) {
	if !entry.HasComponent(components.ScreenShake) {
		return 0, 0
	}
	shake := components.ScreenShake.Get(entry)
	return shake.OffsetX, shake.OffsetY
}
