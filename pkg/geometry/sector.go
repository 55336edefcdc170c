package geometry

import "math"

// BaseUnit is the radius step between consecutive scale rings, in pixels at
// zoom 1.0.
const BaseUnit = 150.0

// WedgeSize returns the angular width in degrees of one of total equal
// wedges, or 0 if total is not positive.
func WedgeSize(total int) float64 {
	if total <= 0 {
		return 0
	}
	return 360.0 / float64(total)
}

// SectorAngle returns the leading edge angle of wedge index out of total.
//
// The result is (360/total)·(total-index); for index 0 this is 360, which is
// the same direction as 0. Callers that need a canonical angle pass the
// result through [NormalizeAngle]. A non-positive total yields 0.
func SectorAngle(index, total int) float64 {
	if total <= 0 {
		return 0
	}
	return WedgeSize(total) * float64(total-index)
}

// MidAngle returns the angle halfway between the leading edge of wedge index
// and the edge it shares with its neighbor, normalized into [0, 360).
//
// The neighbor edge of wedge i is the leading edge of wedge i-1. For the
// first wedge the neighbor wraps around to the last one, whose angle is
// shifted by a full turn before averaging. The midpoint is therefore taken
// inside the range [start, start+w) that [Resolve] assigns to index, with
// start = NormalizeAngle(SectorAngle(index, total)) and w = WedgeSize(total),
// and equals start + w/2. Sector labels and question bubbles are placed
// there.
func MidAngle(index, total int) float64 {
	if total <= 0 {
		return 0
	}
	start := SectorAngle(index, total)
	prev := index - 1
	if prev < 0 {
		prev = total - 1
	}
	next := SectorAngle(prev, total)
	if index == 0 {
		next += 360
	}
	return NormalizeAngle((start + next) / 2)
}

// LevelRadius returns the outer radius of scale ring index.
func LevelRadius(index int) float64 {
	return BaseUnit * float64(index+1)
}

// MaxRadiusFor returns the radius of the outermost ring for a configuration
// with scaleCount scales, or 0 if scaleCount is not positive.
func MaxRadiusFor(scaleCount int) float64 {
	if scaleCount <= 0 {
		return 0
	}
	return LevelRadius(scaleCount - 1)
}

// NormalizeAngle maps deg into [0, 360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Polar returns the screen-space point at radius and angle deg around center.
func Polar(center Point, radius, deg float64) Point {
	rad := Radians(deg)
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y - radius*math.Sin(rad),
	}
}

// ToPolar converts a screen-space offset from the center into its radius and
// counter-clockwise angle in [0, 360).
func ToPolar(rel Point) (radius, deg float64) {
	radius = math.Hypot(rel.X, rel.Y)
	deg = NormalizeAngle(Degrees(math.Atan2(-rel.Y, rel.X)))
	return radius, deg
}
