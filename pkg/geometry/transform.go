package geometry

import "math"

// Point is a 2D position. Depending on context it is in normalized space
// (components in [-1, 1]) or in absolute pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p multiplied by s on both axes.
func (p Point) Scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Len returns the distance of p from the origin.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) float64 { return p.Sub(q).Len() }

// ToAbsolute maps a normalized position to absolute pixels:
// center + normalized·maxRadius, independently per axis.
// The result is the position of the item center.
func ToAbsolute(normalized Point, maxRadius float64, center Point) Point {
	return Point{
		X: center.X + normalized.X*maxRadius,
		Y: center.Y + normalized.Y*maxRadius,
	}
}

// ToRelative is the inverse of [ToAbsolute]. It takes the absolute position
// of an item center and returns its normalized position. A non-positive
// maxRadius has no inverse and yields the zero point.
func ToRelative(absolute Point, maxRadius float64, center Point) Point {
	if maxRadius <= 0 {
		return Point{}
	}
	return Point{
		X: (absolute.X - center.X) / maxRadius,
		Y: (absolute.Y - center.Y) / maxRadius,
	}
}

// CenterToTopLeft returns the top-left corner of a w×h box centered at c.
func CenterToTopLeft(c Point, w, h float64) Point {
	return Point{X: c.X - w/2, Y: c.Y - h/2}
}

// TopLeftToCenter returns the center of a w×h box whose top-left corner is tl.
func TopLeftToCenter(tl Point, w, h float64) Point {
	return Point{X: tl.X + w/2, Y: tl.Y + h/2}
}
