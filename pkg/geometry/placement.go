package geometry

import "math"

// Unknown is the dimension and scale name reported when a placement cannot
// be resolved. Callers must treat it as "keep the current value".
const Unknown = "unknown"

// Placement is the semantic location of a position on the mandala.
type Placement struct {
	Dimension      string
	Scale          string
	DimensionIndex int
	ScaleIndex     int
}

// Known reports whether both the dimension and the scale were resolved.
func (p Placement) Known() bool {
	return p.DimensionIndex >= 0 && p.ScaleIndex >= 0
}

var unknownPlacement = Placement{
	Dimension:      Unknown,
	Scale:          Unknown,
	DimensionIndex: -1,
	ScaleIndex:     -1,
}

// Resolve returns the dimension and scale owning rel, an offset in pixels
// from the mandala center (screen space, y down).
//
// The dimension is the wedge whose [start, start+wedge) range contains the
// angle of rel, with start = NormalizeAngle(SectorAngle(i, N)). The scale is
// the smallest ring whose radius is greater than or equal to the distance of
// rel from the center, so a position exactly on a ring boundary belongs to
// the inner ring. Positions beyond the outermost ring clamp to it.
//
// If dimensions or scales is empty the result is the [Unknown] placement.
func Resolve(rel Point, dimensions, scales []string) Placement {
	n, m := len(dimensions), len(scales)
	if n == 0 || m == 0 {
		return unknownPlacement
	}
	radius, angle := ToPolar(rel)

	di := dimensionIndex(angle, n)
	si := scaleIndex(radius, m)
	return Placement{
		Dimension:      dimensions[di],
		Scale:          scales[si],
		DimensionIndex: di,
		ScaleIndex:     si,
	}
}

// ResolveNormalized resolves a normalized position against the maximum
// radius implied by len(scales).
func ResolveNormalized(p Point, dimensions, scales []string) Placement {
	return Resolve(p.Scale(MaxRadiusFor(len(scales))), dimensions, scales)
}

// dimensionIndex inverts the wedge layout: the wedge starting at k·w belongs
// to the index i with (N-i) mod N == k.
func dimensionIndex(angle float64, n int) int {
	k := int(math.Floor(angle / WedgeSize(n)))
	if k >= n {
		k = n - 1
	}
	if k < 0 {
		k = 0
	}
	return (n - k) % n
}

func scaleIndex(radius float64, m int) int {
	for j := 0; j < m; j++ {
		if radius <= LevelRadius(j) {
			return j
		}
	}
	return m - 1
}
