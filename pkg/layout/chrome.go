package layout

import (
	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/render/styles"
)

// buildChrome adds the rings, wedge borders, guides, dots and labels.
func buildChrome(s *Scene, cfg mandala.Config) {
	c := s.Frame.Center
	n, m := len(cfg.Dimensions), len(cfg.Scales)
	outer := s.Frame.MaxRadius

	for j := m - 1; j >= 0; j-- {
		s.Rings = append(s.Rings, Ring{
			Name:   cfg.Scales[j],
			Radius: geometry.LevelRadius(j),
			Fill:   styles.RingColor(j, m),
		})
	}

	for i := range n {
		start := geometry.SectorAngle(i, n)
		mid := geometry.MidAngle(i, n)
		s.Borders = append(s.Borders, Line{From: c, To: geometry.Polar(c, outer, start)})
		s.Guides = append(s.Guides, Line{From: c, To: geometry.Polar(c, outer, mid)})
		for j := range m {
			s.Dots = append(s.Dots, geometry.Polar(c, geometry.LevelRadius(j), start))
		}
		s.Labels = append(s.Labels, Label{
			Text:     cfg.Dimensions[i].Name,
			Pos:      geometry.Polar(c, outer+styles.LabelOffset, mid),
			Rotation: LabelRotation(mid),
			FontSize: styles.LabelFontSize,
		})
	}

	for j := range m {
		s.Labels = append(s.Labels, Label{
			Text:     cfg.Scales[j],
			Pos:      geometry.Point{X: c.X, Y: c.Y - geometry.LevelRadius(j) + 2*styles.ScaleLabelFontSize},
			FontSize: styles.ScaleLabelFontSize,
		})
	}
}

// LabelRotation returns the clockwise rotation that lays a label along the
// tangent at angle deg. Labels on the lower half are flipped so they never
// read upside down.
func LabelRotation(deg float64) float64 {
	deg = geometry.NormalizeAngle(deg)
	if deg > 180 {
		return 270 - deg
	}
	return 90 - deg
}
