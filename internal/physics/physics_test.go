package physics

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestRotate(t *testing.T) {
	got := Rotate(V(1, 0), math.Pi/2)
	if math.Abs(got.X()) > eps || math.Abs(got.Y()-1) > eps {
		t.Errorf("Rotate((1,0), pi/2) = %v, want (0,1)", got)
	}
	if l := Rotate(V(3, 4), 1.234).Len(); math.Abs(l-5) > eps {
		t.Errorf("rotated length = %v, want 5", l)
	}
}

func TestHeading(t *testing.T) {
	if a := Heading(V(0, 2)); math.Abs(a) > eps {
		t.Errorf("Heading((0,2)) = %v, want 0", a)
	}
	if a := Heading(V(0.5, 0)); math.Abs(a-math.Pi/2) > eps {
		t.Errorf("Heading((0.5,0)) = %v, want pi/2", a)
	}
	if a := Heading(V(-1, 0)); math.Abs(a+math.Pi/2) > eps {
		t.Errorf("Heading((-1,0)) = %v, want -pi/2", a)
	}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name         string
		posA, sizeA  Vec2
		posB, sizeB  Vec2
		wantOverlaps bool
	}{
		{"point inside box", V(1, 1), V(0, 0), V(1.2, 1.1), V(1, 1), true},
		{"point on edge", V(1.5, 1), V(0, 0), V(1, 1), V(1, 1), false},
		{"point outside", V(3, 3), V(0, 0), V(1, 1), V(1, 1), false},
		{"boxes intersect", V(0, 0), V(2, 2), V(1.5, 0), V(2, 2), true},
		{"boxes apart on y", V(0, 0), V(2, 2), V(0, 3), V(2, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlap(tt.posA, tt.sizeA, tt.posB, tt.sizeB); got != tt.wantOverlaps {
				t.Errorf("Overlap = %v, want %v", got, tt.wantOverlaps)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Pos: V(5, 5), Size: V(10, 4)}
	if !r.Contains(V(0, 3)) {
		t.Error("corner should be contained")
	}
	if r.Contains(V(5, 7.5)) {
		t.Error("point above rect should not be contained")
	}
}

func TestLerpClamps(t *testing.T) {
	if got := Lerp(0.5, -0.2, 0); math.Abs(got+0.1) > eps {
		t.Errorf("Lerp(0.5) = %v, want -0.1", got)
	}
	if got := Lerp(2, 1, 3); got != 3 {
		t.Errorf("Lerp(2) = %v, want 3", got)
	}
	if got := Lerp(-1, 1, 3); got != 1 {
		t.Errorf("Lerp(-1) = %v, want 1", got)
	}
}

func TestTimer(t *testing.T) {
	var clock Clock
	timer := NewTimer(&clock)

	if timer.IsSet() || timer.Active() || timer.Percent() != 0 {
		t.Fatal("new timer should be unset")
	}

	timer.Set(0.1)
	if !timer.Active() {
		t.Error("timer should be active right after Set")
	}

	clock.Advance(0.05)
	if p := timer.Percent(); math.Abs(p-0.5) > 1e-6 {
		t.Errorf("Percent = %v, want 0.5", p)
	}

	clock.Advance(0.06)
	if timer.Active() {
		t.Error("timer should have expired")
	}
	if !timer.Elapsed() {
		t.Error("Elapsed should be true after expiry")
	}
	if p := timer.Percent(); p != 1 {
		t.Errorf("Percent after expiry = %v, want 1", p)
	}

	timer.Unset()
	if timer.Elapsed() || timer.Active() {
		t.Error("unset timer should be neither active nor elapsed")
	}
}
