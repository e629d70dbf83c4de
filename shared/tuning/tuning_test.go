package tuning

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/shapeshifter/shared/sim"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    func(*sim.Params)
		wantErr error
	}{
		{name: "empty keeps defaults", doc: "", want: func(*sim.Params) {}},
		{
			name: "partial override",
			doc:  "gravity: 0.5\nmax_speed: 10\n",
			want: func(p *sim.Params) { p.Gravity = 0.5; p.MaxSpeed = 10 },
		},
		{
			name: "every key",
			doc:  "gravity: 1\nfriction: 0.9\nmove_speed: 1.2\nmax_speed: 6\njump_force: -10\n",
			want: func(p *sim.Params) {
				*p = sim.Params{Gravity: 1, Friction: 0.9, MoveSpeed: 1.2, MaxSpeed: 6, JumpForce: -10}
			},
		},
		{name: "friction above one", doc: "friction: 1.5\n", wantErr: ErrFriction},
		{name: "zero friction", doc: "friction: 0\n", wantErr: ErrFriction},
		{name: "zero max speed", doc: "max_speed: 0\n", wantErr: ErrMaxSpeed},
		{name: "upward jump required", doc: "jump_force: 12\n", wantErr: ErrJumpForce},
		{name: "negative gravity", doc: "gravity: -1\n", wantErr: ErrGravity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.doc))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				if got != sim.DefaultParams() {
					t.Errorf("Parse() = %+v on error, want defaults", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			want := sim.DefaultParams()
			tt.want(&want)
			if got != want {
				t.Errorf("Parse() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("gravity: [1, 2")); err == nil {
		t.Fatal("Parse() accepted malformed YAML")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	err := Validate(sim.Params{Friction: 2, MaxSpeed: -1, JumpForce: 1})
	for _, want := range []error{ErrFriction, ErrMaxSpeed, ErrJumpForce} {
		if !errors.Is(err, want) {
			t.Errorf("Validate() = %v, missing %v", err, want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("move_speed: 1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.MoveSpeed != 1.0 || p.Gravity != sim.DefaultParams().Gravity {
		t.Errorf("Load() = %+v", p)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("gravity: 0.7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Errorf("event for %s, want %s", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the tuning file")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	_ = w.Close()
	if _, ok := <-w.Events; ok {
		t.Error("Events still open after Close")
	}
}
