package mandala

import (
	"github.com/matzehuels/mandala/pkg/geometry"
)

// PositionUpdate is emitted when an item is dropped. Dimension and Section
// are always the output of the placement resolver.
type PositionUpdate struct {
	MandalaID string         `json:"mandala_id"`
	ItemID    string         `json:"item_id"`
	Kind      Kind           `json:"kind"`
	Position  geometry.Point `json:"position"`
	Dimension string         `json:"dimension,omitempty"`
	Section   string         `json:"section,omitempty"`
}

// ContentUpdate is emitted for live text edits of a note.
type ContentUpdate struct {
	MandalaID string `json:"mandala_id"`
	ItemID    string `json:"item_id"`
	Content   string `json:"content"`
}

// Move sets the normalized position of an item and re-derives its placement.
// It returns the update to persist and false if no such item exists.
func (m *Mandala) Move(kind Kind, id string, p geometry.Point) (PositionUpdate, bool) {
	upd := PositionUpdate{MandalaID: m.ID, ItemID: id, Kind: kind, Position: p}
	placement := m.Placement(p)

	switch kind {
	case KindNote:
		n, ok := m.Note(id)
		if !ok {
			return upd, false
		}
		n.Position = p
		place(&n.Dimension, &n.Section, placement)
		upd.Dimension, upd.Section = n.Dimension, n.Section
	case KindCharacter:
		c, ok := m.Character(id)
		if !ok {
			return upd, false
		}
		c.Position = p
		place(&c.Dimension, &c.Section, placement)
		upd.Dimension, upd.Section = c.Dimension, c.Section
	case KindImage:
		img, ok := m.Image(id)
		if !ok {
			return upd, false
		}
		img.Position = p
	default:
		return upd, false
	}
	return upd, true
}

// MoveNote is shorthand for Move(KindNote, id, p).
func (m *Mandala) MoveNote(id string, p geometry.Point) (PositionUpdate, bool) {
	return m.Move(KindNote, id, p)
}

// SetContent replaces the text of a note.
func (m *Mandala) SetContent(id, content string) (ContentUpdate, bool) {
	n, ok := m.Note(id)
	if !ok {
		return ContentUpdate{}, false
	}
	n.Content = content
	return ContentUpdate{MandalaID: m.ID, ItemID: id, Content: content}, true
}

// Apply replays a position update received from a collaborator. The
// dimension and section carried by the update are ignored in favor of the
// resolver so that a document never disagrees with its own geometry.
func (m *Mandala) Apply(upd PositionUpdate) bool {
	_, ok := m.Move(upd.Kind, upd.ItemID, upd.Position)
	return ok
}

// ApplyContent replays a content update.
func (m *Mandala) ApplyContent(upd ContentUpdate) bool {
	_, ok := m.SetContent(upd.ItemID, upd.Content)
	return ok
}
