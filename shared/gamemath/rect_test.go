package gamemath

import "testing"

func TestIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 2, 2), true},
		{"touching right edge", NewRect(10, 0, 5, 5), false},
		{"touching bottom edge", NewRect(0, 10, 5, 5), false},
		{"touching left edge", NewRect(-5, 0, 5, 5), false},
		{"touching top edge", NewRect(0, -5, 5, 5), false},
		{"sub-pixel overlap", NewRect(9.5, 9.5, 5, 5), true},
		{"disjoint", NewRect(20, 20, 5, 5), false},
		{"zero width inside", NewRect(5, 0, 0, 10), true},
		{"zero width on edge", NewRect(10, 0, 0, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(base, tt.other); got != tt.want {
				t.Fatalf("Intersects(%v, %v) = %v, want %v", base, tt.other, got, tt.want)
			}
			if got := Intersects(tt.other, base); got != tt.want {
				t.Fatalf("Intersects is not symmetric for %v", tt.other)
			}
		})
	}
}

func TestResolveHorizontal(t *testing.T) {
	solid := NewRect(100, 0, 40, 40)
	tests := []struct {
		name  string
		mover Rect
		want  float64
	}{
		{"entering from left", NewRect(65, 0, 40, 40), 60},
		{"entering from right", NewRect(135, 0, 40, 40), 140},
		{"exact tie pushes right", NewRect(100, 0, 40, 40), 140},
		{"wide mover tie pushes right", NewRect(90, 0, 60, 20), 140},
		{"nearly centered favours left", NewRect(99.5, 0, 40, 40), 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveHorizontal(tt.mover, solid)
			if got != tt.want {
				t.Fatalf("ResolveHorizontal() = %v, want %v", got, tt.want)
			}
			moved := tt.mover
			moved.X = got
			if Intersects(moved, solid) {
				t.Fatalf("mover still overlaps solid at x=%v", got)
			}
		})
	}
}

func TestContainsPoint(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if !r.ContainsPoint(5, 5) {
		t.Error("expected center to be inside")
	}
	if r.ContainsPoint(10, 5) {
		t.Error("edge point should be outside")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi float64
		want      float64
		clamped   bool
	}{
		{5, 0, 10, 5, false},
		{-1, 0, 10, 0, true},
		{11, 0, 10, 10, true},
		{10, 0, 10, 10, false},
	}
	for _, tt := range tests {
		got, clamped := Clamp(tt.v, tt.lo, tt.hi)
		if got != tt.want || clamped != tt.clamped {
			t.Errorf("Clamp(%v, %v, %v) = (%v, %v), want (%v, %v)", tt.v, tt.lo, tt.hi, got, clamped, tt.want, tt.clamped)
		}
	}
}

func TestClampSpeed(t *testing.T) {
	if got := ClampSpeed(12, 8); got != 8 {
		t.Errorf("ClampSpeed(12, 8) = %v", got)
	}
	if got := ClampSpeed(-12, 8); got != -8 {
		t.Errorf("ClampSpeed(-12, 8) = %v", got)
	}
	if got := ClampSpeed(3, 8); got != 3 {
		t.Errorf("ClampSpeed(3, 8) = %v", got)
	}
}
