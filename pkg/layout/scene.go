package layout

import (
	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/render/styles"
	"github.com/matzehuels/mandala/pkg/zorder"
)

// Ring is one filled scale disc. Rings are listed outermost first.
type Ring struct {
	Name   string      `json:"name"`
	Radius float64     `json:"radius"`
	Fill   styles.RGBA `json:"fill"`
}

// Line is a straight segment.
type Line struct {
	From geometry.Point `json:"from"`
	To   geometry.Point `json:"to"`
}

// Label is a text run centered on Pos and rotated clockwise by Rotation
// degrees.
type Label struct {
	Text     string         `json:"text"`
	Pos      geometry.Point `json:"pos"`
	Rotation float64        `json:"rotation"`
	FontSize float64        `json:"font_size"`
}

// Item is a drawable note, character or image.
type Item struct {
	Kind      mandala.Kind   `json:"kind"`
	ID        string         `json:"id"`
	ParentID  string         `json:"parent_id,omitempty"`
	Depth     int            `json:"depth"`
	Center    geometry.Point `json:"center"`
	Width     float64        `json:"width"`
	Height    float64        `json:"height"`
	Scale     float64        `json:"scale"`
	Fill      string         `json:"fill,omitempty"`
	Text      []string       `json:"text,omitempty"`
	FontSize  float64        `json:"font_size,omitempty"`
	URL       string         `json:"url,omitempty"`
	Expanded  bool           `json:"expanded,omitempty"`
	Draggable bool           `json:"draggable"`

	// Editors names the users editing a note right now.
	Editors []string `json:"editors,omitempty"`
}

// Entry returns the z-order entry of the item.
func (it Item) Entry() zorder.Entry {
	return zorder.Entry{Kind: it.Kind, ID: it.ID}
}

// TopLeft returns the corner of the item's bounding box.
func (it Item) TopLeft() geometry.Point {
	return geometry.CenterToTopLeft(it.Center, it.Width, it.Height)
}

// Contains reports whether p lies on the item. Notes and characters are
// circles, images are rectangles.
func (it Item) Contains(p geometry.Point) bool {
	d := p.Sub(it.Center)
	if it.Kind == mandala.KindImage {
		return d.X >= -it.Width/2 && d.X <= it.Width/2 && d.Y >= -it.Height/2 && d.Y <= it.Height/2
	}
	return d.Len() <= it.Width/2
}

// Scene is everything a renderer draws, back to front: rings, borders,
// guides, dots, labels, then items.
type Scene struct {
	Frame   Frame            `json:"frame"`
	Rings   []Ring           `json:"rings"`
	Borders []Line           `json:"borders"`
	Guides  []Line           `json:"guides"`
	Dots    []geometry.Point `json:"dots"`
	Labels  []Label          `json:"labels"`
	Items   []Item           `json:"items"`
}

// Item returns the item with entry e.
func (s *Scene) Item(e zorder.Entry) (Item, bool) {
	for _, it := range s.Items {
		if it.Kind == e.Kind && it.ID == e.ID {
			return it, true
		}
	}
	return Item{}, false
}

type options struct {
	filter    mandala.Filter
	order     []zorder.Entry
	expanded  ExpandFunc
	overrides map[zorder.Entry]geometry.Point
}

// Option configures [Build].
type Option func(*options)

// WithFilter hides notes and characters that do not match f.
func WithFilter(f mandala.Filter) Option {
	return func(o *options) { o.filter = f }
}

// WithOrder sets the paint order of top-level items. Entries without a
// matching item are skipped. Items missing from order are painted on top
// in document order.
func WithOrder(order []zorder.Entry) Option {
	return func(o *options) { o.order = order }
}

// WithExpanded decides which notes show their children. The default
// collapses all notes.
func WithExpanded(fn ExpandFunc) Option {
	return func(o *options) { o.expanded = fn }
}

// WithOverrides replaces the center of top-level items, for items being
// dragged.
func WithOverrides(centers map[zorder.Entry]geometry.Point) Option {
	return func(o *options) { o.overrides = centers }
}

// Build lays out m. The document is not modified.
func Build(m *mandala.Mandala, opts ...Option) *Scene {
	o := options{expanded: ExpandNone}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := mandala.EnsureConfig(m.Config)
	frame := NewFrame(cfg)
	s := &Scene{Frame: frame}
	buildChrome(s, cfg)

	b := itemBuilder{
		cfg:     cfg,
		frame:   frame,
		opts:    &o,
		sources: sourceIndex(m.Notes),
	}
	for _, e := range paintOrder(m, o.order) {
		s.Items = append(s.Items, b.items(m, e)...)
	}
	return s
}

// paintOrder returns order restricted to existing items, followed by the
// remaining items in document order.
func paintOrder(m *mandala.Mandala, order []zorder.Entry) []zorder.Entry {
	doc := zorder.FromMandala(m)
	exists := make(map[zorder.Entry]bool, len(doc))
	for _, e := range doc {
		exists[e] = true
	}
	out := make([]zorder.Entry, 0, len(doc))
	for _, e := range order {
		if exists[e] {
			out = append(out, e)
			exists[e] = false
		}
	}
	for _, e := range doc {
		if exists[e] {
			out = append(out, e)
		}
	}
	return out
}

// sourceIndex numbers the distinct note sources by first appearance.
func sourceIndex(notes []mandala.Note) map[string]int {
	idx := map[string]int{}
	var visit func([]mandala.Note)
	visit = func(ns []mandala.Note) {
		for _, n := range ns {
			if _, ok := idx[n.Source]; n.Source != "" && !ok {
				idx[n.Source] = len(idx)
			}
			visit(n.Children)
		}
	}
	visit(notes)
	return idx
}
