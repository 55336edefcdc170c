package geometry

import (
	"math"
	"testing"
)

func TestBoundaryScenario(t *testing.T) {
	// Item with a half-diagonal of 40px: a 40√2 square.
	side := 40 * math.Sqrt2
	b := NewBoundary(600, side, side, 0)
	if got := b.HalfDiagonal(1); math.Abs(got-40) > 1e-9 {
		t.Fatalf("HalfDiagonal = %v, want 40", got)
	}

	center := Point{X: 650, Y: 650}
	dir := Point{X: 0.6, Y: -0.8}
	candidate := center.Add(dir.Scale(700))

	got := b.Clamp(center, candidate, 1)
	if d := got.Dist(center); math.Abs(d-560) > 1e-9 {
		t.Errorf("clamped distance = %v, want 560", d)
	}
	gotDir := got.Sub(center).Scale(1.0 / 560)
	if math.Abs(gotDir.X-dir.X) > 1e-9 || math.Abs(gotDir.Y-dir.Y) > 1e-9 {
		t.Errorf("direction changed: %+v, want %+v", gotDir, dir)
	}
}

func TestBoundaryPassThrough(t *testing.T) {
	b := NewBoundary(600, 70, 70, 0)
	c := Point{X: 10, Y: 10}
	p := Point{X: 100, Y: 200}
	if got := b.Clamp(c, p, 1); got != p {
		t.Errorf("Clamp inside = %+v, want unchanged %+v", got, p)
	}
}

func TestBoundaryContainment(t *testing.T) {
	tests := []struct {
		name          string
		w, h, inset   float64
		scale         float64
		maxRadius     float64
		candidateDist float64
	}{
		{"note", 70, 70, 0, 1, 600, 900},
		{"scaled note", 70, 70, 0, 1.8, 450, 451},
		{"wide image", 200, 80, 5, 0.5, 300, 1e6},
		{"tiny", 1, 1, 0, 1, 150, 150.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoundary(tt.maxRadius, tt.w, tt.h, tt.inset)
			center := Point{X: 300, Y: 300}
			for deg := 0.0; deg < 360; deg += 7.5 {
				got := b.Clamp(center, Polar(center, tt.candidateDist, deg), tt.scale)
				hw, hh := tt.w*tt.scale/2, tt.h*tt.scale/2
				for _, corner := range []Point{{-hw, -hh}, {hw, -hh}, {-hw, hh}, {hw, hh}} {
					if d := got.Add(corner).Dist(center); d > tt.maxRadius+1e-9 {
						t.Fatalf("corner at %v outside circle of %v (angle %v)", d, tt.maxRadius, deg)
					}
				}
			}
		})
	}
}

func TestBoundaryOversizedItem(t *testing.T) {
	b := NewBoundary(10, 100, 100, 0)
	c := Point{X: 5, Y: 5}
	if got := b.Clamp(c, Point{X: 50, Y: 5}, 1); got != c {
		t.Errorf("oversized item = %+v, want pinned to center", got)
	}
}
