package outline

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/mandala/pkg/mandala"
)

func sample() *mandala.Mandala {
	m := mandala.New("workshop")
	m.Notes = []mandala.Note{
		{ID: "n1", Content: "Seed library", Dimension: "Ecology", Section: "Community", Tags: []string{"food"},
			Children: []mandala.Note{{ID: "n1a", Content: "Swap day"}}},
		{ID: "n2", Content: "Somewhere", Dimension: "unknown"},
	}
	return m
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(sample(), Options{})

	checks := []string{
		"digraph G",
		`"mandala" [label="workshop"`,
		`"mandala" -> "dim:Ecology"`,
		`"dim:Ecology" -> "note:n1"`,
		`"note:n1" -> "note:n1a"`,
		`"mandala" -> "note:n2"`,
		`label="Seed library"`,
	}
	for _, c := range checks {
		if !strings.Contains(dot, c) {
			t.Errorf("ToDOT() output missing %s", c)
		}
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(sample(), Options{Detailed: true})

	if !strings.Contains(dot, `section: Community\ntags: food`) {
		t.Error("ToDOT() detailed output missing section and tags")
	}
}

func TestLabelTruncation(t *testing.T) {
	n := mandala.Note{ID: "x", Content: strings.Repeat("word ", 20)}
	got := fmtLabel(n, Options{MaxLabel: 10})
	if len([]rune(got)) != 10 || !strings.HasSuffix(got, "…") {
		t.Errorf("fmtLabel() = %q", got)
	}
	if got := fmtLabel(mandala.Note{ID: "empty"}, Options{}); got != "empty" {
		t.Errorf("empty note label = %q, want id", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.50 200.25" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.50 200.25" width="100" height="200"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(sample(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output is not SVG")
	}
}
