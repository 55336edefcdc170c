package geometry

import (
	"math"
	"testing"
)

func TestToAbsolute(t *testing.T) {
	c := Point{X: 700, Y: 700}
	got := ToAbsolute(Point{X: 0.5, Y: 0}, 600, c)
	if !approx(got.X, 1000) || !approx(got.Y, 700) {
		t.Errorf("ToAbsolute = %+v, want (1000, 700)", got)
	}
}

func TestRoundTrip(t *testing.T) {
	centers := []Point{{}, {X: 400, Y: 300}, {X: -12.5, Y: 99.25}}
	radii := []float64{0.5, 150, 600, 1234.567}

	for _, c := range centers {
		for _, r := range radii {
			for x := -1.0; x <= 1.0; x += 0.125 {
				for y := -1.0; y <= 1.0; y += 0.125 {
					p := Point{X: x, Y: y}
					got := ToRelative(ToAbsolute(p, r, c), r, c)
					if math.Abs(got.X-x) > 1e-9 || math.Abs(got.Y-y) > 1e-9 {
						t.Fatalf("round trip of %+v (r=%v, c=%+v) = %+v", p, r, c, got)
					}
				}
			}
		}
	}
}

func TestToRelativeZeroRadius(t *testing.T) {
	if got := ToRelative(Point{X: 5, Y: 5}, 0, Point{}); got != (Point{}) {
		t.Errorf("ToRelative with zero radius = %+v, want zero point", got)
	}
}

func TestTopLeftConversion(t *testing.T) {
	c := Point{X: 100, Y: 50}
	tl := CenterToTopLeft(c, 40, 20)
	if tl != (Point{X: 80, Y: 40}) {
		t.Errorf("CenterToTopLeft = %+v", tl)
	}
	if back := TopLeftToCenter(tl, 40, 20); back != c {
		t.Errorf("TopLeftToCenter = %+v, want %+v", back, c)
	}
}
