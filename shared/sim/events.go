package sim

import "github.com/automoto/shapeshifter/shared/shapes"

// Outcome is the result of one tick for the current attempt.
type Outcome int

const (
	Continue Outcome = iota
	Died
	Won
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Died:
		return "died"
	case Won:
		return "won"
	}
	return "unknown"
}

// Cause tells the sink why the player died.
type Cause int

const (
	CauseHazard Cause = iota
	CauseVoid
)

// EventSink receives notable events from the step. At most one of OnDeath
// and OnWin is called per tick. OnShapeChanged fires for every shape change.
// Coordinates are where the event happened: the player's center for death,
// win and morph (before resizing), and the bottom center for a jump.
type EventSink interface {
	OnDeath(cause Cause, x, y float64)
	OnWin(x, y float64)
	OnShapeChanged(from, to shapes.Shape, x, y float64)
	OnJump(x, y float64)
}

// NopSink ignores every event.
type NopSink struct{}

func (NopSink) OnDeath(Cause, float64, float64) {}
func (NopSink) OnWin(float64, float64) {}
func (NopSink) OnShapeChanged(shapes.Shape, shapes.Shape, float64, float64) {}
func (NopSink) OnJump(float64, float64) {}
