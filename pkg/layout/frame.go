package layout

import (
	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/render/styles"
)

// Frame is the logical drawing space of a mandala.
type Frame struct {
	MaxRadius float64        `json:"max_radius"`
	Margin    float64        `json:"margin"`
	Size      float64        `json:"size"`
	Center    geometry.Point `json:"center"`
}

// NewFrame returns the frame for a configuration. An empty configuration
// is replaced by the default one.
func NewFrame(cfg mandala.Config) Frame {
	r := mandala.EnsureConfig(cfg).MaxRadius()
	size := 2 * (r + styles.Margin)
	return Frame{
		MaxRadius: r,
		Margin:    styles.Margin,
		Size:      size,
		Center:    geometry.Point{X: size / 2, Y: size / 2},
	}
}

// ToAbsolute maps a normalized position to a frame position.
func (f Frame) ToAbsolute(p geometry.Point) geometry.Point {
	return geometry.ToAbsolute(p, f.MaxRadius, f.Center)
}

// ToRelative maps a frame position to a normalized position.
func (f Frame) ToRelative(p geometry.Point) geometry.Point {
	return geometry.ToRelative(p, f.MaxRadius, f.Center)
}

// Boundary returns the drag boundary for an item of the given size.
func (f Frame) Boundary(width, height float64) geometry.Boundary {
	return geometry.NewBoundary(f.MaxRadius, width, height, 0)
}
