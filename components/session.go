package components

import (
	"github.com/automoto/shapeshifter/shared/leveldata"
	"github.com/automoto/shapeshifter/shared/session"
	"github.com/yohamta/donburi"
)

// SessionData holds the run's state machine and the levels it walks through
type SessionData struct {
	Controller *session.Controller
	Levels     []*leveldata.Level
	// ReturnToMenu is set once the session has left the game for the menu
	ReturnToMenu bool
}

// CurrentLevel returns the level the controller points at.
func (s *SessionData) CurrentLevel() *leveldata.Level {
	return s.Levels[s.Controller.Level()-1]
}

var Session = donburi.NewComponentType[SessionData]()
