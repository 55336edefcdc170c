package geometry

import "math"

// Boundary keeps a draggable item inside the outer circle of the mandala.
//
// It is a value type with no state of its own; [Boundary.Clamp] is meant to
// run synchronously on every pointer-move while dragging and never touches
// persisted state.
type Boundary struct {
	MaxRadius float64
	Width     float64 // unscaled item width
	Height    float64 // unscaled item height
	Inset     float64 // extra margin kept from the outer circle
}

// NewBoundary returns the constraint for a width×height item.
func NewBoundary(maxRadius, width, height, inset float64) Boundary {
	return Boundary{MaxRadius: maxRadius, Width: width, Height: height, Inset: inset}
}

// HalfDiagonal returns half the diagonal of the item at the given render
// scale, plus the inset.
func (b Boundary) HalfDiagonal(scale float64) float64 {
	return math.Hypot(b.Width, b.Height)/2*scale + b.Inset
}

// Clamp restricts the item center candidate so the item's scaled bounding
// box stays within MaxRadius of center. Candidates that already fit are
// returned unchanged; others are pulled back along the same direction to the
// largest allowed distance. If the item is larger than the circle the center
// is pinned to the mandala center.
func (b Boundary) Clamp(center, candidate Point, scale float64) Point {
	half := b.HalfDiagonal(scale)
	v := candidate.Sub(center)
	d := v.Len()
	if d+half <= b.MaxRadius {
		return candidate
	}
	allowed := math.Max(0, b.MaxRadius-half)
	if d == 0 {
		return center
	}
	return center.Add(v.Scale(allowed / d))
}
