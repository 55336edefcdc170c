package geometry

import "math"

const (
	// OrbitRatio relates a parent's rendered note size to the radius of the
	// circle its children orbit on.
	OrbitRatio = 0.37

	// ChildScaleRatio is the render scale of an orbiting child relative to
	// its parent.
	ChildScaleRatio = 0.25
)

// OrbitRadius returns the radius of the orbit around a parent rendered at
// parentScale, for notes whose unscaled diameter is noteBaseSize.
func OrbitRadius(noteBaseSize, parentScale float64) float64 {
	return noteBaseSize * OrbitRatio * parentScale
}

// ChildScale returns the render scale of a child orbiting a parent rendered
// at parentScale.
func ChildScale(parentScale float64) float64 {
	return parentScale * ChildScaleRatio
}

// Orbit returns n points evenly spaced on the circle of the given radius
// around center. Point i sits at angle 2πi/n, measured like [Polar]; the
// first child is always on the positive x axis. n ≤ 0 yields nil.
func Orbit(center Point, n int, radius float64) []Point {
	if n <= 0 {
		return nil
	}
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y - radius*math.Sin(a),
		}
	}
	return pts
}
