package sink

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/matzehuels/mandala/pkg/fonts"
	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/render/styles"
	"github.com/matzehuels/mandala/pkg/zorder"
)

// circleOf extracts the circle of an item group from an SVG document.
func circleOf(t *testing.T, svg, kind, id string) (cx, cy, r float64) {
	t.Helper()
	re := regexp.MustCompile(fmt.Sprintf(`id="%s-%s"[^>]*>\s*<circle cx="([-\d.]+)" cy="([-\d.]+)" r="([-\d.]+)"`, kind, regexp.QuoteMeta(id)))
	m := re.FindStringSubmatch(svg)
	if m == nil {
		t.Fatalf("no circle for %s %s", kind, id)
	}
	cx, _ = strconv.ParseFloat(m[1], 64)
	cy, _ = strconv.ParseFloat(m[2], 64)
	r, _ = strconv.ParseFloat(m[3], 64)
	return cx, cy, r
}

func TestOrbitExport(t *testing.T) {
	m := mandala.New("m")
	m.Notes = []mandala.Note{{
		ID:       "parent",
		Content:  "root idea",
		Position: geometry.Point{X: 0.2, Y: -0.1},
		Children: []mandala.Note{{ID: "a", Content: "first"}, {ID: "b", Content: "second"}},
	}}
	svg := string(RenderSVG(m, 1024))

	px, py, _ := circleOf(t, svg, "note", "parent")
	want := geometry.OrbitRadius(styles.NoteBaseSize, styles.ExpandFactor)
	for id, wantDeg := range map[string]float64{"a": 0, "b": 180} {
		cx, cy, r := circleOf(t, svg, "note", id)
		rel := geometry.Point{X: cx - px, Y: cy - py}
		radius, deg := geometry.ToPolar(rel)
		if math.Abs(radius-want) > 0.02 {
			t.Errorf("child %s at orbit radius %v, want %v", id, radius, want)
		}
		if d := math.Abs(deg - wantDeg); d > 0.1 && math.Abs(d-360) > 0.1 {
			t.Errorf("child %s at angle %v, want %v", id, deg, wantDeg)
		}
		wantR := styles.NoteBaseSize * geometry.ChildScale(styles.ExpandFactor) / 2
		if math.Abs(r-wantR) > 0.01 {
			t.Errorf("child %s radius %v, want %v", id, r, wantR)
		}
	}
}

func TestCollapsedExport(t *testing.T) {
	m := mandala.New("m")
	m.Notes = []mandala.Note{{ID: "p", Children: []mandala.Note{{ID: "a"}}}}
	svg := string(RenderSVG(m, 512, WithCollapsed("p")))
	if strings.Contains(svg, `id="note-a"`) {
		t.Error("collapsed note should hide its children")
	}
	svg = string(RenderSVG(m, 512, WithExpanded("other")))
	if strings.Contains(svg, `id="note-a"`) {
		t.Error("WithExpanded should expand only the listed notes")
	}
	svg = string(RenderSVG(m, 512, WithExpanded("p")))
	if !strings.Contains(svg, `id="note-a"`) {
		t.Error("listed note should be expanded")
	}
}

func TestSVGDocument(t *testing.T) {
	m := mandala.New("m")
	m.Notes = []mandala.Note{{ID: "n<1>", Content: `R&D "lab"`, Dimension: "Economy"}}
	m.Characters = []mandala.Character{{ID: "c", Name: "Ada", Color: "#123456"}}
	m.Images = []mandala.Image{{ID: "i", URL: "https://example.com/a.png?x=1&y=2"}}
	svg := string(RenderSVG(m, 800))

	checks := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1340.00 1340.00" width="800" height="800"`,
		"@font-face",
		fonts.RegularBase64()[:32],
		`id="note-n&lt;1&gt;"`,
		"R&amp;D",
		`class="character"`,
		"Ada",
		`href="https://example.com/a.png?x=1&amp;y=2"`,
		`class="guides"`,
		"</svg>",
	}
	for _, c := range checks {
		if !strings.Contains(svg, c) {
			t.Errorf("SVG missing %q", c)
		}
	}
	if strings.Count(svg, "<line ") != 2*len(m.Config.Dimensions) {
		t.Errorf("expected %d lines", 2*len(m.Config.Dimensions))
	}
}

func TestSVGWithoutFont(t *testing.T) {
	svg := string(RenderSVG(mandala.New("m"), 0, WithFontEmbed(false)))
	if strings.Contains(svg, "@font-face") {
		t.Error("font should not be embedded")
	}
	if !strings.Contains(svg, `width="1340" height="1340"`) {
		t.Error("size 0 should use the frame size")
	}
}

func TestExportFilterAndOrder(t *testing.T) {
	m := mandala.New("m")
	m.Notes = []mandala.Note{
		{ID: "a", Dimension: "Ecology"},
		{ID: "b", Dimension: "Culture", Position: geometry.Point{X: 0.5}},
	}
	svg := string(RenderSVG(m, 400,
		WithFilter(mandala.Filter{"dimension": {"Ecology", "Culture"}}),
		WithOrder([]zorder.Entry{{Kind: mandala.KindNote, ID: "b"}, {Kind: mandala.KindNote, ID: "a"}}),
	))
	ia, ib := strings.Index(svg, `id="note-a"`), strings.Index(svg, `id="note-b"`)
	if ia < 0 || ib < 0 || ib > ia {
		t.Errorf("paint order not respected: a=%d b=%d", ia, ib)
	}

	svg = string(RenderSVG(m, 400, WithFilter(mandala.Filter{"dimension": {"Ecology"}})))
	if strings.Contains(svg, `id="note-b"`) {
		t.Error("filtered note exported")
	}
}

func TestSVGEditorBadges(t *testing.T) {
	m := mandala.New("m")
	m.Notes = []mandala.Note{{ID: "n", Content: "shared", Editors: []string{"bea", "<x>"}}}
	svg := string(RenderSVG(m, 400, WithFontEmbed(false)))

	if !strings.Contains(svg, `data-editor="bea"`) || !strings.Contains(svg, `>B</text>`) {
		t.Error("svg should draw a badge for bea")
	}
	if !strings.Contains(svg, `data-editor="&lt;x&gt;"`) {
		t.Error("editor names should be escaped")
	}
	if got := strings.Count(svg, `class="editor"`); got != 2 {
		t.Errorf("badge count = %d, want 2", got)
	}
}

func TestRenderJSON(t *testing.T) {
	m := mandala.New("m")
	m.Notes = []mandala.Note{{ID: "n", Content: "x"}}
	data, err := RenderJSON(Scene(m))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	for _, key := range []string{`"frame"`, `"rings"`, `"items"`, `"id": "n"`, `"max_radius": 600`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("JSON missing %s", key)
		}
	}
}
