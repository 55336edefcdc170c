package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/render/styles"
	"github.com/matzehuels/mandala/pkg/zorder"
)

const eps = 1e-9

func near(a, b geometry.Point) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func parentWithChildren() *mandala.Mandala {
	m := mandala.New("m1")
	m.Notes = []mandala.Note{{
		ID:        "p",
		Content:   "parent",
		Dimension: "Ecology",
		Children: []mandala.Note{
			{ID: "c1", Content: "one"},
			{ID: "c2", Content: "two", Children: []mandala.Note{{ID: "g1"}}},
		},
	}}
	return m
}

func TestNewFrame(t *testing.T) {
	f := NewFrame(mandala.DefaultConfig())
	if f.MaxRadius != 600 {
		t.Errorf("MaxRadius = %v, want 600", f.MaxRadius)
	}
	if f.Size != 2*(600+styles.Margin) {
		t.Errorf("Size = %v", f.Size)
	}
	if f.Center.X != f.Size/2 || f.Center.Y != f.Size/2 {
		t.Errorf("Center = %+v", f.Center)
	}
	if got := NewFrame(mandala.Config{}); got != f {
		t.Errorf("empty config frame = %+v, want default %+v", got, f)
	}
}

func TestFrameRoundTrip(t *testing.T) {
	f := NewFrame(mandala.DefaultConfig())
	p := geometry.Point{X: 0.25, Y: -0.75}
	if got := f.ToRelative(f.ToAbsolute(p)); !near(got, p) {
		t.Errorf("round trip = %+v, want %+v", got, p)
	}
}

func TestOrbitScenario(t *testing.T) {
	m := mandala.New("m")
	m.Notes = []mandala.Note{{ID: "p", Children: []mandala.Note{{ID: "a"}, {ID: "b"}}}}
	s := Build(m, WithExpanded(ExpandAll))

	parent, ok := s.Item(zorder.Entry{Kind: mandala.KindNote, ID: "p"})
	if !ok {
		t.Fatal("parent missing")
	}
	if !near(parent.Center, s.Frame.Center) {
		t.Errorf("parent center = %+v, want frame center", parent.Center)
	}
	r := geometry.OrbitRadius(styles.NoteBaseSize, styles.ExpandFactor)
	want := map[string]geometry.Point{
		"a": {X: parent.Center.X + r, Y: parent.Center.Y},
		"b": {X: parent.Center.X - r, Y: parent.Center.Y},
	}
	for id, w := range want {
		it, ok := s.Item(zorder.Entry{Kind: mandala.KindNote, ID: id})
		if !ok {
			t.Fatalf("child %s missing", id)
		}
		if !near(it.Center, w) {
			t.Errorf("child %s at %+v, want %+v", id, it.Center, w)
		}
		if it.Scale != geometry.ChildScale(parent.Scale) {
			t.Errorf("child %s scale = %v", id, it.Scale)
		}
		if it.Draggable {
			t.Errorf("child %s should not be draggable", id)
		}
		if it.ParentID != "p" || it.Depth != 1 {
			t.Errorf("child %s parent=%q depth=%d", id, it.ParentID, it.Depth)
		}
	}
}

func TestWalkCollapsed(t *testing.T) {
	m := parentWithChildren()
	got := Walk(m.Notes, NewFrame(m.Config), ExpandNone)
	if len(got) != 1 || got[0].Note.ID != "p" {
		t.Fatalf("collapsed walk = %+v", got)
	}
	if got[0].Scale != 1 || got[0].Expanded {
		t.Errorf("collapsed parent scale=%v expanded=%v", got[0].Scale, got[0].Expanded)
	}
}

func TestWalkPreOrder(t *testing.T) {
	m := parentWithChildren()
	got := Walk(m.Notes, NewFrame(m.Config), ExpandAll)
	var ids []string
	for _, p := range got {
		ids = append(ids, p.Note.ID)
	}
	want := []string{"p", "c1", "c2", "g1"}
	if len(ids) != len(want) {
		t.Fatalf("walk = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("walk = %v, want %v", ids, want)
		}
	}
	if got[3].Depth != 2 || got[3].ParentID != "c2" {
		t.Errorf("grandchild depth=%d parent=%q", got[3].Depth, got[3].ParentID)
	}
	if !near(got[3].Center.Sub(got[2].Center), geometry.Point{X: geometry.OrbitRadius(styles.NoteBaseSize, got[2].Scale)}) {
		t.Errorf("single grandchild should sit at angle 0 of its parent orbit")
	}
}

func TestExpandedWithoutChildren(t *testing.T) {
	got := WalkFrom(mandala.Note{ID: "x", Scale: 2}, geometry.Point{}, ExpandAll)
	if len(got) != 1 || got[0].Expanded || got[0].Scale != 2 {
		t.Errorf("leaf note = %+v", got)
	}
}

func TestChrome(t *testing.T) {
	cfg := mandala.DefaultConfig()
	s := Build(&mandala.Mandala{Config: cfg})
	n, m := len(cfg.Dimensions), len(cfg.Scales)

	if len(s.Rings) != m {
		t.Fatalf("rings = %d, want %d", len(s.Rings), m)
	}
	if s.Rings[0].Radius != s.Frame.MaxRadius || s.Rings[m-1].Radius != geometry.BaseUnit {
		t.Errorf("rings must be listed outermost first: %+v", s.Rings)
	}
	if s.Rings[m-1].Fill != styles.RingInner || s.Rings[0].Fill != styles.RingOuter {
		t.Errorf("ring fills not interpolated from inner to outer")
	}
	if len(s.Borders) != n || len(s.Guides) != n {
		t.Errorf("borders=%d guides=%d, want %d", len(s.Borders), len(s.Guides), n)
	}
	if len(s.Dots) != n*m {
		t.Errorf("dots = %d, want %d", len(s.Dots), n*m)
	}
	if len(s.Labels) != n+m {
		t.Errorf("labels = %d, want %d", len(s.Labels), n+m)
	}
	for i, g := range s.Guides {
		rel := g.To.Sub(s.Frame.Center)
		p := geometry.Resolve(rel, cfg.DimensionNames(), cfg.Scales)
		if p.DimensionIndex != i {
			t.Errorf("guide %d resolves to dimension %d", i, p.DimensionIndex)
		}
	}
}

func TestLabelRotation(t *testing.T) {
	tests := []struct {
		deg, want float64
	}{
		{90, 0},
		{270, 0},
		{0, 90},
		{180, -90},
		{210, 60},
	}
	for _, tt := range tests {
		if got := LabelRotation(tt.deg); got != tt.want {
			t.Errorf("LabelRotation(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestBuildOrder(t *testing.T) {
	m := mandala.New("m")
	m.Notes = []mandala.Note{{ID: "a"}, {ID: "b"}}
	m.Characters = []mandala.Character{{ID: "c", Name: "Ada"}}
	m.Images = []mandala.Image{{ID: "i", URL: "x.png"}}

	order := []zorder.Entry{
		{Kind: mandala.KindImage, ID: "i"},
		{Kind: mandala.KindNote, ID: "b"},
		{Kind: mandala.KindNote, ID: "gone"},
	}
	s := Build(m, WithOrder(order))
	var got []string
	for _, it := range s.Items {
		got = append(got, it.ID)
	}
	want := []string{"i", "b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestBuildFilter(t *testing.T) {
	m := mandala.New("m")
	m.Notes = []mandala.Note{
		{ID: "eco", Dimension: "Ecology"},
		{ID: "gov", Dimension: "Governance", Tags: []string{"urgent"}},
		{ID: "cul", Dimension: "Culture"},
	}
	m.Images = []mandala.Image{{ID: "img"}}

	s := Build(m, WithFilter(mandala.Filter{"dimensions": {"Ecology"}, "tags": {"urgent"}}))
	ids := map[string]bool{}
	for _, it := range s.Items {
		ids[it.ID] = true
	}
	if !ids["eco"] || !ids["gov"] || ids["cul"] {
		t.Errorf("filtered items = %v", ids)
	}
	if !ids["img"] {
		t.Error("images are never filtered")
	}
}

func TestBuildOverrides(t *testing.T) {
	m := mandala.New("m")
	m.Notes = []mandala.Note{{ID: "a", Children: []mandala.Note{{ID: "k"}}}}
	at := geometry.Point{X: 10, Y: 20}
	e := zorder.Entry{Kind: mandala.KindNote, ID: "a"}
	s := Build(m, WithOverrides(map[zorder.Entry]geometry.Point{e: at}), WithExpanded(ExpandAll))
	it, _ := s.Item(e)
	if it.Center != at {
		t.Errorf("override ignored: %+v", it.Center)
	}
	k, _ := s.Item(zorder.Entry{Kind: mandala.KindNote, ID: "k"})
	if math.Abs(k.Center.Dist(at)-geometry.OrbitRadius(styles.NoteBaseSize, it.Scale)) > eps {
		t.Errorf("child does not follow its dragged parent")
	}
	if m.Notes[0].Position != (geometry.Point{}) {
		t.Error("Build must not modify the document")
	}
}

func TestNoteFill(t *testing.T) {
	m := mandala.New("m")
	m.Notes = []mandala.Note{
		{ID: "a", Dimension: "Economy", Children: []mandala.Note{{ID: "child"}}},
		{ID: "b", Source: "left"},
		{ID: "c", Source: "right"},
		{ID: "d", Dimension: "nowhere"},
	}
	s := Build(m, WithExpanded(ExpandAll))
	fill := func(id string) string {
		it, _ := s.Item(zorder.Entry{Kind: mandala.KindNote, ID: id})
		return it.Fill
	}
	if fill("a") != "#ff9800" {
		t.Errorf("dimension fill = %s", fill("a"))
	}
	if fill("child") != fill("a") {
		t.Errorf("child should inherit parent fill, got %s", fill("child"))
	}
	if fill("b") != styles.ComparisonPalette[0] || fill("c") != styles.ComparisonPalette[1] {
		t.Errorf("source fills = %s, %s", fill("b"), fill("c"))
	}
	if fill("d") != styles.FallbackFill {
		t.Errorf("unknown dimension fill = %s", fill("d"))
	}
}

func TestItemContains(t *testing.T) {
	note := Item{Kind: mandala.KindNote, Center: geometry.Point{X: 100, Y: 100}, Width: 70, Height: 70}
	if !note.Contains(geometry.Point{X: 130, Y: 100}) || note.Contains(geometry.Point{X: 130, Y: 130}) {
		t.Error("note hit test should be circular")
	}
	img := Item{Kind: mandala.KindImage, Center: geometry.Point{X: 0, Y: 0}, Width: 100, Height: 50}
	if !img.Contains(geometry.Point{X: 49, Y: 24}) || img.Contains(geometry.Point{X: 0, Y: 26}) {
		t.Error("image hit test should be rectangular")
	}
	if tl := img.TopLeft(); tl != (geometry.Point{X: -50, Y: -25}) {
		t.Errorf("TopLeft = %+v", tl)
	}
}

func TestEditorBadges(t *testing.T) {
	m := mandala.New("m")
	m.Notes = []mandala.Note{
		{ID: "n", Editors: []string{"ana", " "}},
		{ID: "quiet", Position: geometry.Point{X: 0.5}},
	}
	s := Build(m)

	it, _ := s.Item(zorder.Entry{Kind: mandala.KindNote, ID: "n"})
	badges := it.Badges()
	if len(badges) != 2 {
		t.Fatalf("badges = %+v", badges)
	}
	if badges[0].Initial != "A" || badges[1].Initial != "?" {
		t.Errorf("initials = %q %q", badges[0].Initial, badges[1].Initial)
	}
	for _, b := range badges {
		if d := b.Center.Dist(it.Center); math.Abs(d-it.Width/2) > eps {
			t.Errorf("badge %q is %v from the center, want %v", b.Name, d, it.Width/2)
		}
	}
	if first := badges[0].Center; first.X <= it.Center.X || first.Y >= it.Center.Y {
		t.Errorf("first badge at %+v should sit upper right of %+v", first, it.Center)
	}
	if badges[0].Fill == badges[1].Fill {
		t.Error("editors should get distinct colors")
	}

	quiet, _ := s.Item(zorder.Entry{Kind: mandala.KindNote, ID: "quiet"})
	if quiet.Badges() != nil {
		t.Error("a note without editors has no badges")
	}
}
