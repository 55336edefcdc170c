package layout

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/render/styles"
)

// Badge marks one live editor of a note.
type Badge struct {
	Name    string
	Initial string
	Center  geometry.Point
	Radius  float64
	Fill    string
}

// Badges returns the editor badges of it, laid out counterclockwise along
// the note's rim starting at its upper right.
func (it Item) Badges() []Badge {
	if len(it.Editors) == 0 {
		return nil
	}
	r := it.Width / 2
	step := 0.0
	if r > 0 {
		step = styles.BadgeSize / r
	}
	out := make([]Badge, len(it.Editors))
	for i, name := range it.Editors {
		a := -math.Pi/4 - float64(i)*step
		out[i] = Badge{
			Name:    name,
			Initial: initial(name),
			Center:  it.Center.Add(geometry.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}),
			Radius:  styles.BadgeSize / 2,
			Fill:    styles.SourceColor(i),
		}
	}
	return out
}

// initial returns the upper-cased first letter of name, or "?".
func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}
