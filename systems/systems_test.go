package systems

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/shapeshifter/archetypes"
	"github.com/automoto/shapeshifter/components"
	cfg "github.com/automoto/shapeshifter/config"
	"github.com/automoto/shapeshifter/shared/gamemath"
	"github.com/automoto/shapeshifter/shared/leveldata"
	"github.com/automoto/shapeshifter/shared/particles"
	"github.com/automoto/shapeshifter/shared/session"
	"github.com/automoto/shapeshifter/shared/shapes"
	"github.com/automoto/shapeshifter/shared/sim"
	"github.com/automoto/shapeshifter/shared/synth"
	"github.com/automoto/shapeshifter/shared/tuning"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func floorLevel(id int) *leveldata.Level {
	return &leveldata.Level{
		ID:    id,
		Name:  "test",
		Spawn: leveldata.Point{X: 100, Y: 300},
		Platforms: []leveldata.Platform{
			{Rect: gamemath.NewRect(0, 350, 800, 50), Kind: leveldata.Solid},
		},
		Exit:          gamemath.NewRect(700, 250, 40, 100),
		RequiredShape: shapes.Circle,
		Width:         800,
		Height:        600,
	}
}

func voidLevel(id int) *leveldata.Level {
	return &leveldata.Level{
		ID:            id,
		Name:          "void",
		Spawn:         leveldata.Point{X: 100, Y: 580},
		Exit:          gamemath.NewRect(700, 250, 40, 100),
		RequiredShape: shapes.Square,
		Width:         800,
		Height:        600,
	}
}

// newTestGame builds a world with the game entity the scenes create.
func newTestGame(t *testing.T, levels ...*leveldata.Level) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	ctrl := session.New(len(levels))
	RegisterSessionHooks(e, ctrl)

	entry := archetypes.Game.Spawn(e)
	components.Session.SetValue(entry, components.SessionData{Controller: ctrl, Levels: levels})
	components.Simulation.SetValue(entry, components.SimulationData{Keys: &sim.HeldKeys{}})
	components.Particles.SetValue(entry, components.ParticlesData{Emitter: particles.New(particles.WithSeed(1))})
	return e, entry
}

func pending(e *ecs.ECS) []synth.Cue {
	return GetOrCreateAudio(e).PendingSFX
}

func hasCue(cues []synth.Cue, want synth.Cue) bool {
	for _, c := range cues {
		if c == want {
			return true
		}
	}
	return false
}

func TestFeedHeldKeys(t *testing.T) {
	var input components.InputData
	input.Current[cfg.ActionMoveLeft] = true
	input.Current[cfg.ActionJump] = true

	var keys sim.HeldKeys
	keys.Press(sim.KeyRight)
	feedHeldKeys(&input, &keys)

	if got, want := keys.Snapshot(), sim.NewKeys(sim.KeyLeft, sim.KeyJump); got != want {
		t.Fatalf("Snapshot() = %08b, want %08b", got, want)
	}

	input.Current = [cfg.ActionCount]bool{}
	feedHeldKeys(&input, &keys)
	if keys.Snapshot() != 0 {
		t.Fatalf("released actions still held: %08b", keys.Snapshot())
	}
}

func TestGetAction(t *testing.T) {
	var input components.InputData
	input.Current[cfg.ActionRestart] = true
	if a := GetAction(&input, cfg.ActionRestart); !a.Pressed || !a.JustPressed || a.JustReleased {
		t.Errorf("first frame = %+v", a)
	}

	input.Previous = input.Current
	if a := GetAction(&input, cfg.ActionRestart); !a.Pressed || a.JustPressed {
		t.Errorf("held frame = %+v", a)
	}

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	if a := GetAction(&input, cfg.ActionRestart); a.Pressed || !a.JustReleased {
		t.Errorf("release frame = %+v", a)
	}
}

func TestFeedback(t *testing.T) {
	e, entry := newTestGame(t, floorLevel(1))
	f := newFeedback(e, entry)
	emitter := components.Particles.Get(entry).Emitter

	f.OnJump(10, 20)
	if emitter.Len() != cfg.Particles.Jump.Count {
		t.Errorf("jump particles = %d, want %d", emitter.Len(), cfg.Particles.Jump.Count)
	}
	if !hasCue(pending(e), synth.CueJump) {
		t.Error("jump did not queue its cue")
	}
	if !entry.HasComponent(components.SquashStretch) {
		t.Error("jump did not squash the player")
	}

	before := emitter.Len()
	f.OnDeath(sim.CauseVoid, 10, 700)
	if emitter.Len() != before || entry.HasComponent(components.ScreenShake) {
		t.Error("falling into the void should be silent")
	}

	f.OnDeath(sim.CauseHazard, 10, 20)
	if got := emitter.Len() - before; got != cfg.Particles.HazardDeath.Count {
		t.Errorf("hazard particles = %d, want %d", got, cfg.Particles.HazardDeath.Count)
	}
	if !entry.HasComponent(components.ScreenShake) {
		t.Error("hazard death did not shake the screen")
	}

	before = emitter.Len()
	f.OnShapeChanged(shapes.Square, shapes.Triangle, 10, 20)
	ps := emitter.Particles()
	if got := len(ps) - before; got != cfg.Particles.MorphCount {
		t.Fatalf("morph particles = %d, want %d", got, cfg.Particles.MorphCount)
	}
	if c := ps[len(ps)-1].Color; c != shapes.ProfileOf(shapes.Triangle).Color {
		t.Errorf("morph particle color = %v, want triangle color", c)
	}
	if !hasCue(pending(e), synth.CueMorph) {
		t.Error("morph did not queue its cue")
	}
}

func TestPlaySFXCapsQueue(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	for i := 0; i < cfg.Audio.MaxPendingSFX*2; i++ {
		PlaySFX(e, synth.CueStep)
	}
	if got := len(pending(e)); got != cfg.Audio.MaxPendingSFX {
		t.Fatalf("queued %d cues, want %d", got, cfg.Audio.MaxPendingSFX)
	}
}

func TestSyncSimulation(t *testing.T) {
	e, entry := newTestGame(t, floorLevel(1), floorLevel(2))
	sess := components.Session.Get(entry)
	simData := components.Simulation.Get(entry)

	syncSimulation(e, entry)
	if simData.Sim != nil {
		t.Fatal("simulation built before the session started")
	}

	fire(sess.Controller, session.Start)
	syncSimulation(e, entry)
	if simData.Sim == nil || simData.LevelID != 1 || simData.Attempt != 1 {
		t.Fatalf("after start: sim=%v level=%d attempt=%d", simData.Sim != nil, simData.LevelID, simData.Attempt)
	}
	first := simData.Sim

	components.Particles.Get(entry).Emitter.Emit(0, 0, cfg.White, 5)
	simData.Keys.Press(sim.KeyRight)
	for i := 0; i < 10; i++ {
		first.Step(sim.NewKeys(sim.KeyRight))
	}

	fire(sess.Controller, session.Restart)
	syncSimulation(e, entry)
	if simData.Sim != first {
		t.Error("restart on the same level rebuilt the simulation")
	}
	if p := simData.Sim.Player(); p.X != 100 || p.Y != 300 {
		t.Errorf("restart left player at %.1f,%.1f", p.X, p.Y)
	}
	if components.Particles.Get(entry).Emitter.Len() != 0 || simData.Keys.Snapshot() != 0 {
		t.Error("restart kept particles or held keys")
	}

	fire(sess.Controller, session.Win)
	fire(sess.Controller, session.NextLevel)
	syncSimulation(e, entry)
	if simData.Sim == first || simData.LevelID != 2 {
		t.Errorf("next level: level=%d rebuilt=%v", simData.LevelID, simData.Sim != first)
	}
}

func TestUpdatePhysicsReportsDeath(t *testing.T) {
	e, entry := newTestGame(t, voidLevel(1))
	sess := components.Session.Get(entry)
	fire(sess.Controller, session.Start)
	syncSimulation(e, entry)

	for i := 0; i < 120 && sess.Controller.State() == session.Playing; i++ {
		UpdatePhysics(e)
	}
	if sess.Controller.State() != session.GameOver {
		t.Fatalf("state = %s, want game_over", sess.Controller.State())
	}
	if !hasCue(pending(e), synth.CueDie) {
		t.Error("death did not queue its cue")
	}

	tick := components.Simulation.Get(entry).Tick
	UpdatePhysics(e)
	if components.Simulation.Get(entry).Tick != tick {
		t.Error("physics kept stepping after the attempt ended")
	}
}

func TestUpdatePhysicsLanding(t *testing.T) {
	e, entry := newTestGame(t, floorLevel(1))
	fire(components.Session.Get(entry).Controller, session.Start)
	syncSimulation(e, entry)

	for i := 0; i < 60; i++ {
		UpdatePhysics(e)
	}
	simData := components.Simulation.Get(entry)
	if !simData.WasGrounded {
		t.Fatal("player never landed")
	}
	if !hasCue(pending(e), synth.CueStep) {
		t.Error("landing did not queue the step cue")
	}
}

func TestScreenShakeExpires(t *testing.T) {
	e, entry := newTestGame(t, floorLevel(1))
	TriggerScreenShake(entry, 6, 3)

	for i := 0; i < 3; i++ {
		updateScreenShake(e)
		x, y := shakeOffset(entry)
		if x*x+y*y > 36 {
			t.Errorf("frame %d offset %.2f,%.2f exceeds intensity", i, x, y)
		}
	}
	updateScreenShake(e)
	if entry.HasComponent(components.ScreenShake) {
		t.Error("shake not removed after its duration")
	}
}

func TestSquashStretchSettles(t *testing.T) {
	e, entry := newTestGame(t, floorLevel(1))
	TriggerSquashStretch(entry, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)

	if sx, sy := squashScale(entry); sx != cfg.SquashStretch.LandScaleX || sy != cfg.SquashStretch.LandScaleY {
		t.Fatalf("initial scale = %.2f,%.2f", sx, sy)
	}
	for i := 0; i < 100 && entry.HasComponent(components.SquashStretch); i++ {
		updateSquashStretchEffects(e)
	}
	if entry.HasComponent(components.SquashStretch) {
		t.Fatal("squash/stretch never settled")
	}
	if sx, sy := squashScale(entry); sx != 1 || sy != 1 {
		t.Errorf("settled scale = %.2f,%.2f, want 1,1", sx, sy)
	}
}

func TestOverlayText(t *testing.T) {
	for _, state := range []session.State{session.GameOver, session.LevelComplete, session.Victory} {
		text, ok := overlayText(state)
		if !ok || text.Title == "" || text.Button == "" {
			t.Errorf("overlayText(%s) = %+v, %v", state, text, ok)
		}
		if _, ok := overlayEvents[state]; !ok {
			t.Errorf("no button event for %s", state)
		}
	}
	if _, ok := overlayText(session.Playing); ok {
		t.Error("playing should have no overlay")
	}

	r := overlayButtonRect(float64(cfg.C.Width))
	cx, cy := r.Center()
	if !r.ContainsPoint(cx, cy) || cx != float64(cfg.C.Width)/2 {
		t.Errorf("button rect %+v not centered", r)
	}
}

func TestPauseHint(t *testing.T) {
	if got := getPauseHint(components.InputKeyboard); got != cfg.HUD.PausedHint {
		t.Errorf("keyboard hint = %q", got)
	}
	if getPauseHint(components.InputXbox) == getPauseHint(components.InputPlayStation) {
		t.Error("gamepad hints should name the device's button")
	}
}

func TestOverlayEvent(t *testing.T) {
	ctrl := session.New(2)
	if _, ok := overlayEvent(ctrl); ok {
		t.Fatal("menu has no overlay button")
	}

	steps := []struct {
		fire    session.Event
		state   session.State
		wantBtn session.Event
	}{
		{session.Start, session.Playing, 0},
		{session.Die, session.GameOver, session.Restart},
		{session.Restart, session.Playing, 0},
		{session.Win, session.LevelComplete, session.NextLevel},
		{session.NextLevel, session.Playing, 0},
		{session.Win, session.Victory, session.ReturnToMenu},
	}
	for _, step := range steps {
		fire(ctrl, step.fire)
		if ctrl.State() != step.state {
			t.Fatalf("after %s: state = %s, want %s", step.fire, ctrl.State(), step.state)
		}
		ev, ok := overlayEvent(ctrl)
		if step.state == session.Playing {
			if ok {
				t.Errorf("%s: unexpected overlay event %s", step.state, ev)
			}
			continue
		}
		if !ok || ev != step.wantBtn {
			t.Errorf("%s: overlay event = %s, %v, want %s", step.state, ev, ok, step.wantBtn)
		}
	}
}

func TestIsWatchedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "physics.yaml")

	tests := []struct {
		name string
		ev   string
		want bool
	}{
		{"same path", path, true},
		{"unclean path", filepath.Join(dir, ".", "sub", "..", "physics.yaml"), true},
		{"sibling yaml", filepath.Join(dir, "levels.yaml"), false},
		{"same name elsewhere", filepath.Join(dir, "other", "physics.yaml"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isWatchedFile(tt.ev, path); got != tt.want {
				t.Errorf("isWatchedFile(%q) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestUpdateTuningIgnoresSiblingFiles(t *testing.T) {
	saved := cfg.Physics
	t.Cleanup(func() { cfg.Physics = saved })
	cfg.Physics = sim.DefaultParams()

	dir := t.TempDir()
	path := filepath.Join(dir, "physics.yaml")
	if err := os.WriteFile(path, []byte("gravity: 0.9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	w := &tuning.Watcher{Events: make(chan string, 1), Errors: make(chan error)}
	entry := e.World.Entry(e.World.Create(components.Tuning))
	components.Tuning.SetValue(entry, components.TuningData{Path: path, Watcher: w})

	w.Events <- filepath.Join(dir, "levels.yaml")
	UpdateTuning(e)
	if cfg.Physics.Gravity != sim.DefaultParams().Gravity {
		t.Fatalf("gravity = %v after a sibling edit, want default", cfg.Physics.Gravity)
	}

	w.Events <- path
	UpdateTuning(e)
	if cfg.Physics.Gravity != 0.9 {
		t.Errorf("gravity = %v after editing the tuning file, want 0.9", cfg.Physics.Gravity)
	}
}
