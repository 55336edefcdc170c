package canvas

import (
	"context"

	"github.com/matzehuels/mandala/pkg/mandala"
)

// Writer receives the canvas's persistence writes. Writes happen only when
// a drag ends and when note content is edited.
type Writer interface {
	WritePosition(ctx context.Context, upd mandala.PositionUpdate) error
	WriteContent(ctx context.Context, upd mandala.ContentUpdate) error
}

// nopWriter discards writes.
type nopWriter struct{}

func (nopWriter) WritePosition(context.Context, mandala.PositionUpdate) error { return nil }
func (nopWriter) WriteContent(context.Context, mandala.ContentUpdate) error   { return nil }
