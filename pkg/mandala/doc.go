// Package mandala defines the mandala document: its configuration of
// dimensions and scales, and the notes, characters and images placed on it.
//
// Positions are stored in normalized space (see the geometry package). The
// Dimension and Section fields of notes and characters are never set by
// hand: every method that moves an item re-derives them from the new
// position with [geometry.ResolveNormalized], keeping the previous values if
// the configuration cannot resolve anything.
//
// The write contracts consumed by persistence collaborators are
// [PositionUpdate] and [ContentUpdate].
package mandala
