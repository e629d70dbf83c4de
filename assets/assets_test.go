package assets

import (
	"testing"

	"github.com/automoto/shapeshifter/shared/sim"
)

func TestEmbeddedLevels(t *testing.T) {
	levels, err := LoadLevels()
	if err != nil {
		t.Fatalf("LoadLevels() error: %v", err)
	}
	if len(levels) != 10 {
		t.Fatalf("got %d levels, want 10", len(levels))
	}
	for i, l := range levels {
		if l.ID != i+1 {
			t.Errorf("levels[%d].ID = %d", i, l.ID)
		}
	}
}

func TestDefaultTuningMatchesBuiltins(t *testing.T) {
	p, err := DefaultTuning()
	if err != nil {
		t.Fatalf("DefaultTuning() error: %v", err)
	}
	if p != sim.DefaultParams() {
		t.Errorf("DefaultTuning() = %+v, want %+v", p, sim.DefaultParams())
	}
}
