package systems

import (
	"log"

	"github.com/automoto/shapeshifter/components"
	cfg "github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/shared/session"
	"github.com/automoto/shapeshifter/shared/sim"
	"github.com/automoto/shapeshifter/shared/synth"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// overlayEvents is the event each end-of-attempt button fires
var overlayEvents = map[session.State]session.Event{
	session.GameOver:      session.Restart,
	session.LevelComplete: session.NextLevel,
	session.Victory:       session.ReturnToMenu,
}

// RegisterSessionHooks plays a cue for every transition that has one.
func RegisterSessionHooks(e *ecs.ECS, ctrl *session.Controller) {
	ctrl.OnTransition(func(from session.State, ev session.Event, to session.State, level int) {
		switch ev {
		case session.Start, session.NextLevel:
			PlaySFX(e, synth.CueMorph)
		case session.Die:
			PlaySFX(e, synth.CueDie)
		case session.Win:
			PlaySFX(e, synth.CueWin)
		}
		if cfg.Debug.Enabled {
			log.Printf("session: %s --%s--> %s (level %d)", from, ev, to, level)
		}
	})
}

// UpdateSession applies player commands to the session and keeps the
// simulation in step with it.
func UpdateSession(e *ecs.ECS) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	sess := components.Session.Get(entry)
	ctrl := sess.Controller
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMute).JustPressed {
		ToggleMute()
	}

	if ctrl.State() == session.Playing {
		if GetAction(input, cfg.ActionRestart).JustPressed && !GetOrCreatePause(e).IsPaused {
			fire(ctrl, session.Restart)
		}
	} else if ev, ok := overlayEvent(ctrl); ok {
		if GetAction(input, cfg.ActionConfirm).JustPressed || overlayButtonClicked() {
			fire(ctrl, ev)
		}
	}

	if ctrl.State() == session.Menu {
		sess.ReturnToMenu = true
		return
	}
	syncSimulation(e, entry)
}

// overlayEvent returns the event the current overlay's button fires, if the
// session accepts it.
func overlayEvent(ctrl *session.Controller) (session.Event, bool) {
	ev, ok := overlayEvents[ctrl.State()]
	return ev, ok && ctrl.Can(ev)
}

func fire(ctrl *session.Controller, ev session.Event) {
	if _, err := ctrl.Fire(ev); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func overlayButtonClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return overlayButtonRect(float64(cfg.C.Width)).ContainsPoint(float64(x), float64(y))
}

// syncSimulation starts a fresh attempt whenever the session has entered
// Playing since the simulation was last reset.
func syncSimulation(e *ecs.ECS, entry *donburi.Entry) {
	sess := components.Session.Get(entry)
	simData := components.Simulation.Get(entry)
	attempt := sess.Controller.Attempt()
	if simData.Attempt == attempt {
		return
	}

	level := sess.CurrentLevel()
	if simData.Sim == nil || simData.LevelID != level.ID {
		simData.Sim = sim.New(level, cfg.C.WorldBounds(),
			sim.WithSink(newFeedback(e, entry)),
			sim.WithParams(cfg.Physics),
		)
		simData.LevelID = level.ID
	} else {
		simData.Sim.Reset()
	}

	simData.Keys.Clear()
	simData.Attempt = attempt
	simData.WasGrounded = false
	simData.Tick = 0

	if entry.HasComponent(components.Particles) {
		components.Particles.Get(entry).Emitter.Clear()
	}
}
