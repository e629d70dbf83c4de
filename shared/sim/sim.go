package sim

import (
	"github.com/automoto/shapeshifter/shared/gamemath"
	"github.com/automoto/shapeshifter/shared/leveldata"
	"github.com/automoto/shapeshifter/shared/shapes"
)

// Simulation owns the player for one level and advances it one tick at a
// time. It is not safe for concurrent use; feed it input through HeldKeys.
type Simulation struct {
	level   *leveldata.Level
	world   World
	params  Params
	sink    EventSink
	player  Player
	outcome Outcome
	bp      *broadphase
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithSink routes step events to sink.
func WithSink(sink EventSink) Option {
	return func(s *Simulation) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithParams overrides the default physics constants.
func WithParams(p Params) Option {
	return func(s *Simulation) {
		s.params = p
	}
}

// New creates a simulation with the player at the level's spawn point.
// The level must already be validated.
func New(level *leveldata.Level, world World, opts ...Option) *Simulation {
	if level == nil {
		panic("sim: nil level")
	}
	s := &Simulation{
		level:  level,
		world:  world,
		params: DefaultParams(),
		sink:   NopSink{},
		bp:     newBroadphase(level, world),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset starts a new attempt: player at spawn, zero velocity, Square.
func (s *Simulation) Reset() {
	s.player = spawnPlayer(s.level.Spawn.X, s.level.Spawn.Y)
	s.outcome = Continue
}

// Player returns a copy of the current player state.
func (s *Simulation) Player() Player { return s.player }

// Level returns the level being simulated.
func (s *Simulation) Level() *leveldata.Level { return s.level }

// World returns the playfield bounds.
func (s *Simulation) World() World { return s.world }

// Outcome returns the state of the current attempt.
func (s *Simulation) Outcome() Outcome { return s.outcome }

// Params returns the active physics constants.
func (s *Simulation) Params() Params { return s.params }

// SetParams swaps the physics constants between ticks.
func (s *Simulation) SetParams(p Params) { s.params = p }

// Step advances the simulation by one tick. Once the attempt has ended it
// returns the terminal outcome without touching the player.
func (s *Simulation) Step(keys Keys) Outcome {
	if s.outcome != Continue {
		return s.outcome
	}

	p := &s.player
	prof := shapes.ProfileOf(p.Shape)

	if keys.Held(KeyLeft) {
		p.VX -= s.params.MoveSpeed * prof.SpeedMult
	}
	if keys.Held(KeyRight) {
		p.VX += s.params.MoveSpeed * prof.SpeedMult
	}
	p.VX = gamemath.ApplyDamping(p.VX, s.params.Friction)
	p.VX = gamemath.ClampSpeed(p.VX, s.params.MaxSpeed*prof.SpeedMult)

	p.VY += s.params.Gravity

	if keys.Held(KeyJump) && p.Grounded {
		p.VY = s.params.JumpForce * prof.JumpMult
		p.Grounded = false
		s.sink.OnJump(p.X+p.W/2, p.Y+p.H)
	}

	s.moveHorizontal(p)

	p.Y += p.VY
	p.Grounded = false

	if s.resolveVertical(p) {
		return s.die(CauseHazard)
	}

	if p.Y > s.world.Height {
		return s.die(CauseVoid)
	}

	s.applyMorphZones(p)

	if gamemath.Intersects(p.Rect(), s.level.Exit) && p.Shape == s.level.RequiredShape {
		s.outcome = Won
		s.sink.OnWin(p.Center())
		return Won
	}

	return Continue
}

func (s *Simulation) moveHorizontal(p *Player) {
	p.X += p.VX

	var clamped bool
	p.X, clamped = gamemath.Clamp(p.X, 0, s.world.Width-p.W)
	if clamped {
		p.VX = 0
	}

	for i := s.nextPlatform(-1, true); i >= 0; i = s.nextPlatform(i, true) {
		p.X = gamemath.ResolveHorizontal(p.Rect(), s.level.Platforms[i].Rect)
		p.VX = 0
	}
}

// resolveVertical snaps the player out of solids using the pre-move edge
// and the sign of VY. It reports true when a hazard was touched.
func (s *Simulation) resolveVertical(p *Player) bool {
	for i := s.nextPlatform(-1, false); i >= 0; i = s.nextPlatform(i, false) {
		plat := s.level.Platforms[i]
		if plat.Kind == leveldata.Hazard {
			return true
		}

		r := plat.Rect
		switch {
		case p.VY > 0 && p.Y+p.H-p.VY <= r.Y:
			p.Y = r.Y - p.H
			p.VY = 0
			p.Grounded = true
		case p.VY < 0 && p.Y-p.VY >= r.Bottom():
			p.Y = r.Bottom()
			p.VY = 0
		}
	}
	return false
}

// applyMorphZones processes overlapping zones in level order, so the last
// overlapping zone with a different shape decides the final form.
func (s *Simulation) applyMorphZones(p *Player) {
	for i := s.nextZone(-1); i >= 0; i = s.nextZone(i) {
		from := p.Shape
		to := s.level.MorphZones[i].Shape
		cx, cy := p.Center()
		p.morph(to)
		s.sink.OnShapeChanged(from, to, cx, cy)
	}
}

// nextPlatform returns the lowest platform index above after whose rect
// intersects the player's current box, or -1. Re-querying after every
// resolution matches a linear scan over the level list even when a push
// moves the player into cells the previous query did not cover.
func (s *Simulation) nextPlatform(after int, solidOnly bool) int {
	box := s.player.Rect()
	for _, i := range s.bp.query(box, tagPlatform) {
		if i <= after {
			continue
		}
		plat := s.level.Platforms[i]
		if solidOnly && plat.Kind != leveldata.Solid {
			continue
		}
		if gamemath.Intersects(box, plat.Rect) {
			return i
		}
	}
	return -1
}

// nextZone returns the lowest morph zone index above after that overlaps the
// player and holds a different shape, or -1.
func (s *Simulation) nextZone(after int) int {
	box := s.player.Rect()
	for _, i := range s.bp.query(box, tagZone) {
		if i <= after {
			continue
		}
		zone := s.level.MorphZones[i]
		if zone.Shape != s.player.Shape && gamemath.Intersects(box, zone.Rect) {
			return i
		}
	}
	return -1
}

func (s *Simulation) die(cause Cause) Outcome {
	s.outcome = Died
	x, y := s.player.Center()
	s.sink.OnDeath(cause, x, y)
	return Died
}
