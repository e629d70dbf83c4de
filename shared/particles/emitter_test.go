package particles

import (
	"image/color"
	"math/rand"
	"testing"
)

var white = color.RGBA{255, 255, 255, 255}

func TestEmitRanges(t *testing.T) {
	e := New(WithSeed(1))
	e.Emit(100, 200, white, 500)

	if e.Len() != 500 {
		t.Fatalf("Len() = %d, want 500", e.Len())
	}
	for i, p := range e.Particles() {
		if p.X != 100 || p.Y != 200 {
			t.Fatalf("particle %d at (%v,%v), want (100,200)", i, p.X, p.Y)
		}
		if p.VX < -5 || p.VX >= 5 || p.VY < -5 || p.VY >= 5 {
			t.Fatalf("particle %d velocity (%v,%v) outside [-5,5)", i, p.VX, p.VY)
		}
		if p.Size < 2 || p.Size >= 6 {
			t.Fatalf("particle %d size %v outside [2,6)", i, p.Size)
		}
		if p.Life != 1 || p.Color != white {
			t.Fatalf("particle %d life=%v color=%v", i, p.Life, p.Color)
		}
	}
}

func TestDecayRemovesAfterFiftyUpdates(t *testing.T) {
	e := New(WithSeed(2))
	e.Emit(0, 0, white, 3)

	for i := 1; i < 50; i++ {
		e.Update()
		if e.Len() != 3 {
			t.Fatalf("update %d: Len() = %d, want 3", i, e.Len())
		}
	}
	e.Update()
	if e.Len() != 0 {
		t.Fatalf("after 50 updates Len() = %d, want 0", e.Len())
	}
}

func TestUpdateIntegratesVelocity(t *testing.T) {
	e := New(WithSeed(3))
	e.Emit(10, 10, white, 1)
	before := e.Particles()[0]

	e.Update()

	after := e.Particles()[0]
	if after.X != before.X+before.VX || after.Y != before.Y+before.VY {
		t.Errorf("moved to (%v,%v), want (%v,%v)", after.X, after.Y, before.X+before.VX, before.Y+before.VY)
	}
	if after.Life >= before.Life {
		t.Errorf("life %v did not decrease from %v", after.Life, before.Life)
	}
}

func TestSameSeedSameParticles(t *testing.T) {
	a := New(WithRand(rand.New(rand.NewSource(7))))
	b := New(WithSeed(7))
	a.Emit(0, 0, white, 20)
	b.Emit(0, 0, white, 20)

	for i := range a.Particles() {
		if a.Particles()[i] != b.Particles()[i] {
			t.Fatalf("particle %d differs: %+v vs %+v", i, a.Particles()[i], b.Particles()[i])
		}
	}
}

func TestStaggeredEmitKeepsYoungerParticles(t *testing.T) {
	e := New(WithSeed(4))
	e.Emit(0, 0, white, 2)
	for i := 0; i < 25; i++ {
		e.Update()
	}
	e.Emit(0, 0, color.RGBA{255, 0, 0, 255}, 1)
	for i := 0; i < 25; i++ {
		e.Update()
	}

	if e.Len() != 1 {
		t.Fatalf("Len() = %d, want only the younger particle", e.Len())
	}
	if e.Particles()[0].Color.G != 0 {
		t.Error("wrong particle survived")
	}
}

func TestClear(t *testing.T) {
	e := New()
	e.Emit(0, 0, white, 10)
	e.Clear()
	if e.Len() != 0 {
		t.Fatalf("Len() = %d after Clear", e.Len())
	}
	e.Update()
}
