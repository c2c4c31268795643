package physics

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{2.5, 3},
		{-0.5, 0},
		{-0.51, -1},
		{-1.5, -1},
		{115.2, 115},
	}

	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFloorMod(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{5, 16, 5},
		{16, 16, 0},
		{-1, 16, 15},
		{-16, 16, 0},
		{-17, 16, 15},
		{97, 96, 1},
	}

	for _, tt := range tests {
		if got := FloorMod(tt.a, tt.b); got != tt.want {
			t.Errorf("FloorMod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSnapToNearest(t *testing.T) {
	tests := []struct {
		angle, want float64
	}{
		{0, 0},
		{44, 0},
		{45, 90},
		{46, 90},
		{134, 90},
		{-44, 0},
		{-46, -90},
		{180, 180},
	}

	for _, tt := range tests {
		if got := SnapToNearest(tt.angle, 90); got != tt.want {
			t.Errorf("SnapToNearest(%v, 90) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestTrigDegrees(t *testing.T) {
	const eps = 1e-12
	if got := SinDeg(90); math.Abs(got-1) > eps {
		t.Errorf("SinDeg(90) = %v, want 1", got)
	}
	if got := CosDeg(0); got != 1 {
		t.Errorf("CosDeg(0) = %v, want 1", got)
	}
	if got := SinDeg(0); got != 0 {
		t.Errorf("SinDeg(0) = %v, want 0", got)
	}
	if got := SinDeg(-45); math.Abs(got+math.Sqrt2/2) > eps {
		t.Errorf("SinDeg(-45) = %v, want %v", got, -math.Sqrt2/2)
	}
}

func TestSign(t *testing.T) {
	if Sign(3) != 1 || Sign(-0.1) != -1 || Sign(0) != 0 {
		t.Errorf("Sign() = %v/%v/%v, want 1/-1/0", Sign(3), Sign(-0.1), Sign(0))
	}
}

func TestVector(t *testing.T) {
	v := Vector{X: 1, Y: 2}.Add(Vector{X: 3, Y: -4}).Scale(2)
	if v != (Vector{X: 8, Y: -4}) {
		t.Errorf("Add().Scale() = %v, want {8 -4}", v)
	}
}
