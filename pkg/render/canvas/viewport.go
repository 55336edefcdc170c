package canvas

import (
	"github.com/matzehuels/mandala/pkg/geometry"
)

// Viewport maps frame space to screen pixels: screen = frame*Scale + Offset.
type Viewport struct {
	Scale  float64
	Offset geometry.Point
}

// ToScreen maps a frame point to screen pixels.
func (v Viewport) ToScreen(p geometry.Point) geometry.Point {
	return p.Scale(v.Scale).Add(v.Offset)
}

// ToFrame maps screen pixels to a frame point.
func (v Viewport) ToFrame(p geometry.Point) geometry.Point {
	return p.Sub(v.Offset).Scale(1 / v.Scale)
}

// Viewport returns the current view transform. At zoom 1 without panning
// the whole frame fits the output image.
func (c *Canvas) Viewport() Viewport {
	return Viewport{
		Scale:  float64(c.size) / c.frame.Size * c.zoom,
		Offset: c.pan,
	}
}

// Zoom multiplies the zoom by factor, keeping the frame point under anchor
// in place. It reports whether the request was honored.
func (c *Canvas) Zoom(factor float64, anchor geometry.Point) bool {
	if !c.Interaction().AllowsViewport() || factor <= 0 {
		return false
	}
	fixed := c.Viewport().ToFrame(anchor)
	c.zoom = max(MinZoom, min(MaxZoom, c.zoom*factor))
	c.pan = anchor.Sub(fixed.Scale(c.Viewport().Scale))
	return true
}

// Pan moves the view by dx, dy screen pixels. It reports whether the
// request was honored.
func (c *Canvas) Pan(dx, dy float64) bool {
	if !c.Interaction().AllowsViewport() {
		return false
	}
	c.pan = c.pan.Add(geometry.Point{X: dx, Y: dy})
	return true
}

// ResetView restores the fitted view.
func (c *Canvas) ResetView() {
	c.zoom = 1
	c.pan = geometry.Point{}
}
