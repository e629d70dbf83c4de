package session

import (
	"errors"
	"testing"
)

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name      string
		from      State
		level     int
		ev        Event
		want      State
		wantLevel int
	}{
		{"start", Menu, 1, Start, Playing, 1},
		{"die", Playing, 2, Die, GameOver, 2},
		{"win mid game", Playing, 2, Win, LevelComplete, 2},
		{"win last level", Playing, 3, Win, Victory, 3},
		{"restart while playing", Playing, 2, Restart, Playing, 2},
		{"next level", LevelComplete, 2, NextLevel, Playing, 3},
		{"retry", GameOver, 2, Restart, Playing, 2},
		{"back to menu", Victory, 3, ReturnToMenu, Menu, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Controller{state: tt.from, level: tt.level, levelCount: 3}
			got, err := c.Fire(tt.ev)
			if err != nil {
				t.Fatalf("Fire(%s) error: %v", tt.ev, err)
			}
			if got != tt.want || c.State() != tt.want {
				t.Errorf("Fire(%s) = %s, want %s", tt.ev, got, tt.want)
			}
			if c.Level() != tt.wantLevel {
				t.Errorf("Level() = %d, want %d", c.Level(), tt.wantLevel)
			}
		})
	}
}

func TestInvalidTransitions(t *testing.T) {
	valid := map[State][]Event{
		Menu:          {Start},
		Playing:       {Die, Win, Restart},
		LevelComplete: {NextLevel},
		GameOver:      {Restart},
		Victory:       {ReturnToMenu},
	}
	events := []Event{Start, Die, Win, NextLevel, Restart, ReturnToMenu}

	for state, ok := range valid {
		for _, ev := range events {
			if contains(ok, ev) {
				continue
			}
			c := &Controller{state: state, level: 2, levelCount: 3}
			got, err := c.Fire(ev)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("%s + %s: err = %v, want ErrInvalidTransition", state, ev, err)
			}
			if got != state || c.State() != state || c.Level() != 2 || c.Attempt() != 0 {
				t.Errorf("%s + %s changed the session", state, ev)
			}
			if c.Can(ev) {
				t.Errorf("Can(%s) in %s = true", ev, state)
			}
		}
	}
}

func contains(evs []Event, ev Event) bool {
	for _, e := range evs {
		if e == ev {
			return true
		}
	}
	return false
}

func TestFullRun(t *testing.T) {
	c := New(2)
	var log []State
	c.OnTransition(func(_ State, _ Event, to State, _ int) { log = append(log, to) })

	steps := []Event{Start, Die, Restart, Win, NextLevel, Win, ReturnToMenu}
	for _, ev := range steps {
		if _, err := c.Fire(ev); err != nil {
			t.Fatalf("Fire(%s): %v", ev, err)
		}
	}

	want := []State{Playing, GameOver, Playing, LevelComplete, Playing, Victory, Menu}
	if len(log) != len(want) {
		t.Fatalf("hook saw %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("hook saw %v, want %v", log, want)
		}
	}
	if c.Attempt() != 3 {
		t.Errorf("Attempt() = %d, want 3", c.Attempt())
	}
	if c.Level() != 1 {
		t.Errorf("Level() = %d after returning to menu, want 1", c.Level())
	}
}

func TestNewPanicsWithoutLevels(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(0) did not panic")
		}
	}()
	New(0)
}

func TestSelect(t *testing.T) {
	c := New(5)
	if err := c.Select(4); err != nil {
		t.Fatalf("Select(4) error: %v", err)
	}
	if _, err := c.Fire(Start); err != nil {
		t.Fatal(err)
	}
	if c.Level() != 4 {
		t.Errorf("Level() = %d, want 4", c.Level())
	}
	if err := c.Select(1); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Select while playing error = %v, want ErrInvalidTransition", err)
	}

	fresh := New(5)
	for _, bad := range []int{0, 6} {
		if err := fresh.Select(bad); err == nil {
			t.Errorf("Select(%d) accepted an out of range level", bad)
		}
	}
}
