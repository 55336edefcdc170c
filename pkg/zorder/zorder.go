// Package zorder tracks the paint and interaction order of the items on a
// mandala view.
//
// The order is a flat list of (kind, id) entries shared by notes, characters
// and images. It is initialized from document order and afterwards changes
// only through [Tracker.BringToFront]. Later entries paint on top and receive
// pointer events first. Entries whose item has disappeared from the document
// are not removed; renderers skip them.
package zorder

import (
	"slices"

	"github.com/matzehuels/mandala/pkg/mandala"
)

// Entry identifies one renderable item.
type Entry struct {
	Kind mandala.Kind `json:"kind"`
	ID   string       `json:"id"`
}

// Tracker holds the render order. The zero value is an empty order ready to
// use. It is not safe for concurrent use.
type Tracker struct {
	order []Entry
}

// New returns a tracker initialized with entries.
func New(entries []Entry) *Tracker {
	t := &Tracker{}
	t.Initialize(entries)
	return t
}

// Initialize replaces the order with entries, dropping duplicates after
// their first occurrence.
func (t *Tracker) Initialize(entries []Entry) {
	t.order = make([]Entry, 0, len(entries))
	seen := make(map[Entry]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		t.order = append(t.order, e)
	}
}

// BringToFront moves e to the end of the order. It is a no-op if e is
// already last; an entry not yet tracked is appended.
func (t *Tracker) BringToFront(e Entry) {
	i := slices.Index(t.order, e)
	if i == len(t.order)-1 && i >= 0 {
		return
	}
	if i >= 0 {
		t.order = slices.Delete(t.order, i, i+1)
	}
	t.order = append(t.order, e)
}

// Order returns a copy of the current order, back to front.
func (t *Tracker) Order() []Entry {
	return slices.Clone(t.order)
}

// Contains reports whether e is tracked.
func (t *Tracker) Contains(e Entry) bool {
	return slices.Contains(t.order, e)
}

// Index returns the paint priority of e, or -1 if it is not tracked.
func (t *Tracker) Index(e Entry) int {
	return slices.Index(t.order, e)
}

// Len returns the number of tracked entries.
func (t *Tracker) Len() int { return len(t.order) }

// FromMandala returns the document-order entries of m: notes, then
// characters, then images. Only top-level notes get entries; children are
// painted with their parent.
func FromMandala(m *mandala.Mandala) []Entry {
	out := make([]Entry, 0, len(m.Notes)+len(m.Characters)+len(m.Images))
	for _, n := range m.Notes {
		out = append(out, Entry{Kind: mandala.KindNote, ID: n.ID})
	}
	for _, c := range m.Characters {
		out = append(out, Entry{Kind: mandala.KindCharacter, ID: c.ID})
	}
	for _, img := range m.Images {
		out = append(out, Entry{Kind: mandala.KindImage, ID: img.ID})
	}
	return out
}
