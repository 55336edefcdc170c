package store

import (
	"context"
	"os"
	"testing"

	"github.com/matzehuels/mandala/pkg/errors"
	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/mandala"
)

func sample() *mandala.Mandala {
	m := mandala.New("workshop")
	m.Notes = []mandala.Note{{ID: "n1", Content: "Seed library", Position: geometry.Point{X: 0.1, Y: -0.1}}}
	m.Characters = []mandala.Character{{ID: "c1", Name: "Ana"}}
	m.Refresh()
	return m
}

// exercise runs the shared contract against any Store.
func exercise(t *testing.T, s Store) {
	ctx := context.Background()
	m := sample()
	if err := s.Save(ctx, m); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx, m.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Notes) != 1 || got.Notes[0].Content != "Seed library" {
		t.Errorf("Load() notes = %+v", got.Notes)
	}

	upd := mandala.PositionUpdate{
		MandalaID: m.ID,
		ItemID:    "n1",
		Kind:      mandala.KindNote,
		Position:  geometry.Point{X: 0, Y: -0.9},
		Dimension: "bogus",
	}
	if err := s.WritePosition(ctx, upd); err != nil {
		t.Fatalf("WritePosition: %v", err)
	}
	if err := s.WriteContent(ctx, mandala.ContentUpdate{MandalaID: m.ID, ItemID: "n1", Content: "Tool library"}); err != nil {
		t.Fatalf("WriteContent: %v", err)
	}

	got, _ = s.Load(ctx, m.ID)
	n := got.Notes[0]
	if n.Position != upd.Position {
		t.Errorf("Position = %v, want %v", n.Position, upd.Position)
	}
	want := got.Placement(upd.Position)
	if n.Dimension != want.Dimension || n.Section != want.Scale {
		t.Errorf("placement = %s/%s, want %s/%s", n.Dimension, n.Section, want.Dimension, want.Scale)
	}
	if n.Content != "Tool library" {
		t.Errorf("Content = %q", n.Content)
	}

	err = s.WritePosition(ctx, mandala.PositionUpdate{MandalaID: m.ID, ItemID: "missing", Kind: mandala.KindNote})
	if !errors.Is(err, errors.ErrCodeItemNotFound) {
		t.Errorf("WritePosition(missing item) = %v, want ITEM_NOT_FOUND", err)
	}
	if _, err := s.Load(ctx, "nope"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Load(missing) = %v, want NOT_FOUND", err)
	}
	if _, err := s.Load(ctx, "../etc"); !errors.Is(err, errors.ErrCodeInvalidID) {
		t.Errorf("Load(traversal) = %v, want INVALID_ID", err)
	}
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer s.Close()
	exercise(t, s)

	ids, err := s.List(context.Background())
	if err != nil || len(ids) != 1 || ids[0] != "workshop" {
		t.Errorf("List() = %v, %v", ids, err)
	}
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("MANDALA_TEST_MONGO")
	if uri == "" {
		t.Skip("MANDALA_TEST_MONGO not set")
	}
	s, err := NewMongoStore(context.Background(), MongoConfig{URI: uri, Database: "mandala_test"})
	if err != nil {
		t.Fatalf("NewMongoStore: %v", err)
	}
	defer s.Close()
	exercise(t, s)
}
