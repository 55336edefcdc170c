package styles

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color with an 8-bit RGB part and a fractional alpha, matching
// CSS rgba() notation.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// CSS returns the color in rgba() notation.
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', 3, 64))
}

// NRGBA converts c for raster drawing.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(c.A*255 + 0.5)}
}

// Ring palette endpoints. The innermost ring uses RingInner, the outermost
// RingOuter, and the rings in between are interpolated.
var (
	RingInner = RGBA{R: 255, G: 250, B: 240, A: 1}
	RingOuter = RGBA{R: 196, G: 170, B: 130, A: 0.6}
)

// Lerp interpolates linearly between a and b; t is clamped to [0, 1].
func Lerp(a, b RGBA, t float64) RGBA {
	t = max(0, min(1, t))
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).RGB255()
	return RGBA{R: r, G: g, B: bl, A: a.A*(1-t) + b.A*t}
}

// RingColor returns the fill of scale ring index out of count.
func RingColor(index, count int) RGBA {
	if count <= 1 {
		return RingInner
	}
	return Lerp(RingInner, RingOuter, float64(index)/float64(count-1))
}

// Fixed colors for mandala chrome.
const (
	BorderColor  = "#8a7a66"
	GuideColor   = "#b8a990"
	DotColor     = "#5c4f3d"
	LabelColor   = "#3d3428"
	TextColor    = "#1f1f1f"
	FallbackFill = "#bdbdbd"
)

// fallbackDimensionColors is used for dimensions configured without a
// valid color.
var fallbackDimensionColors = []string{
	"#4caf50", "#ff9800", "#3f51b5", "#e91e63", "#795548", "#00bcd4", "#9c27b0", "#cddc39",
}

// ComparisonPalette colors notes by their source mandala in merged and
// compared views.
var ComparisonPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#17becf",
}

// DimensionColor returns color if it is a valid hex color, otherwise a
// palette color chosen by index. A negative index yields FallbackFill.
func DimensionColor(col string, index int) string {
	if _, ok := ParseHex(col); ok {
		return col
	}
	if index < 0 {
		return FallbackFill
	}
	return fallbackDimensionColors[index%len(fallbackDimensionColors)]
}

// SourceColor returns the comparison color of the source with the given
// first-appearance index.
func SourceColor(index int) string {
	if index < 0 {
		return FallbackFill
	}
	return ComparisonPalette[index%len(ComparisonPalette)]
}

// ParseHex parses a "#rrggbb" color.
func ParseHex(s string) (color.NRGBA, bool) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, true
}

// MustHex parses s, falling back to FallbackFill.
func MustHex(s string) color.NRGBA {
	if c, ok := ParseHex(s); ok {
		return c
	}
	c, _ := ParseHex(FallbackFill)
	return c
}
