// Package store loads mandala documents and persists the writes the canvas
// emits.
//
// Two backends implement [Store]:
//   - [FileStore] keeps one JSON file per mandala, for the CLI
//   - [MongoStore] keeps one MongoDB document per mandala, for the server
//
// Both apply position and content updates to the stored document. The
// dimension and section of a position update are re-derived from its
// position, so a stored document always agrees with its own geometry.
// Concurrent writers are not reconciled: the last write wins.
package store

import (
	"context"

	"github.com/matzehuels/mandala/pkg/mandala"
)

// Source loads documents.
type Source interface {
	Load(ctx context.Context, id string) (*mandala.Mandala, error)
}

// Store loads documents and receives the canvas's writes.
// It satisfies the canvas Writer interface.
type Store interface {
	Source
	Save(ctx context.Context, m *mandala.Mandala) error
	WritePosition(ctx context.Context, upd mandala.PositionUpdate) error
	WriteContent(ctx context.Context, upd mandala.ContentUpdate) error
	Close() error
}
