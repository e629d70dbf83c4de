// Package session tracks which screen the game is on and which level is
// being played. Transitions are driven by an explicit event table.
package session

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an event has no edge from the
// current state.
var ErrInvalidTransition = errors.New("invalid transition")

// State is the current screen of the game.
type State int

const (
	Menu State = iota
	Playing
	LevelComplete
	GameOver
	Victory
)

func (s State) String() string {
	switch s {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case LevelComplete:
		return "level_complete"
	case GameOver:
		return "game_over"
	case Victory:
		return "victory"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Event is something that can move the session between states.
type Event int

const (
	Start Event = iota
	Die
	Win
	NextLevel
	Restart
	ReturnToMenu
)

func (e Event) String() string {
	switch e {
	case Start:
		return "start"
	case Die:
		return "die"
	case Win:
		return "win"
	case NextLevel:
		return "next_level"
	case Restart:
		return "restart"
	case ReturnToMenu:
		return "return_to_menu"
	}
	return fmt.Sprintf("event(%d)", int(e))
}

type edge struct {
	from  State
	event Event
}

var transitions = map[edge]State{
	{Menu, Start}:              Playing,
	{Playing, Die}:             GameOver,
	{Playing, Win}:             LevelComplete,
	{Playing, Restart}:         Playing,
	{LevelComplete, NextLevel}: Playing,
	{GameOver, Restart}:        Playing,
	{Victory, ReturnToMenu}:    Menu,
}

// TransitionFunc observes a completed transition. level is the 1-based
// level after the transition.
type TransitionFunc func(from State, ev Event, to State, level int)

// Controller is the session state machine. It is not safe for concurrent
// use; the game loop owns it.
type Controller struct {
	state      State
	level      int
	levelCount int
	attempt    int
	hooks      []TransitionFunc
}

// New returns a controller on the menu for a game with levelCount levels.
func New(levelCount int) *Controller {
	if levelCount < 1 {
		panic("session: level count must be positive")
	}
	return &Controller{state: Menu, level: 1, levelCount: levelCount}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Level returns the 1-based index of the current level.
func (c *Controller) Level() int { return c.level }

// LevelCount returns the number of levels in the game.
func (c *Controller) LevelCount() int { return c.levelCount }

// Attempt increases every time the session enters Playing. The game resets
// the simulation whenever it changes.
func (c *Controller) Attempt() int { return c.attempt }

// OnTransition registers fn to run after every successful transition.
func (c *Controller) OnTransition(fn TransitionFunc) {
	c.hooks = append(c.hooks, fn)
}

// Fire applies ev. Events with no edge from the current state return an
// error wrapping ErrInvalidTransition and leave the session unchanged.
func (c *Controller) Fire(ev Event) (State, error) {
	to, ok := transitions[edge{c.state, ev}]
	if !ok {
		return c.state, fmt.Errorf("session: %s in %s: %w", ev, c.state, ErrInvalidTransition)
	}

	from := c.state
	switch {
	case ev == Win && c.level >= c.levelCount:
		to = Victory
	case ev == NextLevel:
		c.level++
	case ev == ReturnToMenu:
		c.level = 1
	}

	c.state = to
	if to == Playing {
		c.attempt++
	}
	for _, fn := range c.hooks {
		fn(from, ev, to, c.level)
	}
	return to, nil
}

// Select picks the level the next Start begins on. It is only allowed from
// the menu.
func (c *Controller) Select(level int) error {
	if c.state != Menu {
		return fmt.Errorf("session: select in %s: %w", c.state, ErrInvalidTransition)
	}
	if level < 1 || level > c.levelCount {
		return fmt.Errorf("session: level %d outside 1..%d", level, c.levelCount)
	}
	c.level = level
	return nil
}

// Can reports whether ev has an edge from the current state.
func (c *Controller) Can(ev Event) bool {
	_, ok := transitions[edge{c.state, ev}]
	return ok
}
