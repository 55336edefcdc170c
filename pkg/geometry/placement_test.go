package geometry

import (
	"math"
	"testing"
)

func TestResolveScenario(t *testing.T) {
	dims := []string{"d0", "d1", "d2", "d3", "d4", "d5"}
	scales := []string{"s0", "s1", "s2", "s3"}

	maxRadius := MaxRadiusFor(len(scales))
	if maxRadius != 600 {
		t.Fatalf("maxRadius = %v, want 600", maxRadius)
	}
	center := Point{X: 650, Y: 650}
	abs := ToAbsolute(Point{X: 0.5, Y: 0}, maxRadius, center)
	if abs != (Point{X: 950, Y: 650}) {
		t.Fatalf("absolute = %+v", abs)
	}

	got := Resolve(abs.Sub(center), dims, scales)
	if got.Dimension != "d0" || got.DimensionIndex != 0 {
		t.Errorf("dimension = %s (%d), want d0", got.Dimension, got.DimensionIndex)
	}
	if got.Scale != "s1" || got.ScaleIndex != 1 {
		t.Errorf("scale = %s (%d), want s1", got.Scale, got.ScaleIndex)
	}

	if n := ResolveNormalized(Point{X: 0.5, Y: 0}, dims, scales); n != got {
		t.Errorf("ResolveNormalized = %+v, want %+v", n, got)
	}
}

func TestResolveEmpty(t *testing.T) {
	tests := []struct {
		name   string
		dims   []string
		scales []string
	}{
		{"no dimensions", nil, []string{"s"}},
		{"no scales", []string{"d"}, nil},
		{"nothing", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(Point{X: 10, Y: 10}, tt.dims, tt.scales)
			if got.Known() {
				t.Errorf("Resolve = %+v, want unknown", got)
			}
			if got.Dimension != Unknown || got.Scale != Unknown {
				t.Errorf("Resolve names = %q/%q, want %q", got.Dimension, got.Scale, Unknown)
			}
		})
	}
}

func TestWedgePartition(t *testing.T) {
	scales := []string{"s"}
	for n := 1; n <= 9; n++ {
		dims := names(n)
		w := WedgeSize(n)
		counts := make([]int, n)
		for a := 0.0; a < 360; a += 0.25 {
			p := Polar(Point{}, 50, a)
			got := Resolve(p, dims, scales)
			if got.DimensionIndex < 0 || got.DimensionIndex >= n {
				t.Fatalf("N=%d angle %v resolved out of range: %d", n, a, got.DimensionIndex)
			}
			counts[got.DimensionIndex]++

			// The resolved wedge must contain the angle.
			start := NormalizeAngle(SectorAngle(got.DimensionIndex, n))
			off := NormalizeAngle(a - start)
			if off >= w+1e-6 && math.Abs(off-360) > 1e-6 {
				t.Errorf("N=%d angle %v not inside wedge %d starting at %v", n, a, got.DimensionIndex, start)
			}
		}
		for i, c := range counts {
			if c == 0 {
				t.Errorf("N=%d: wedge %d never resolved", n, i)
			}
		}
	}
}

func TestScaleMonotonic(t *testing.T) {
	dims := names(5)
	scales := names(4)
	for _, deg := range []float64{0, 37, 123, 250, 359} {
		prev := -1
		for r := 0.0; r <= 800; r += 5 {
			got := Resolve(Polar(Point{}, r, deg), dims, scales)
			if got.ScaleIndex < prev {
				t.Fatalf("scale decreased at angle %v radius %v: %d < %d", deg, r, got.ScaleIndex, prev)
			}
			prev = got.ScaleIndex
		}
		if prev != 3 {
			t.Errorf("beyond outer ring scale = %d, want clamp to 3", prev)
		}
	}
}

func TestScaleBoundaryInclusive(t *testing.T) {
	dims := names(3)
	scales := names(4)
	for j := 0; j < 4; j++ {
		got := Resolve(Point{X: LevelRadius(j)}, dims, scales)
		if got.ScaleIndex != j {
			t.Errorf("radius %v resolved to scale %d, want %d", LevelRadius(j), got.ScaleIndex, j)
		}
	}
}
