package io

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/mandala/pkg/errors"
	"github.com/matzehuels/mandala/pkg/mandala"
)

// ReadJSON decodes a mandala document from r.
//
// The document must carry an id. Every note, character and image needs an id,
// and note ids must be unique across the whole hierarchy. An empty
// configuration is replaced by [mandala.DefaultConfig]. Dimension and section
// names of top-level items are re-derived from their positions.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*mandala.Mandala, error) {
	var m mandala.Mandala
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode document")
	}
	if err := validate(&m); err != nil {
		return nil, err
	}
	m.Normalize()
	m.Refresh()
	return &m, nil
}

// ImportJSON reads a JSON document at path.
func ImportJSON(path string) (*mandala.Mandala, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

func validate(m *mandala.Mandala) error {
	if m.ID == "" {
		return errors.New(errors.ErrCodeInvalidDocument, "document has no id")
	}
	seen := make(map[string]bool)
	var walk func(notes []mandala.Note) error
	walk = func(notes []mandala.Note) error {
		for _, n := range notes {
			if n.ID == "" {
				return errors.New(errors.ErrCodeInvalidDocument, "note without id")
			}
			if seen[n.ID] {
				return errors.New(errors.ErrCodeInvalidDocument, "duplicate note id %s", n.ID)
			}
			seen[n.ID] = true
			if err := walk(n.Children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(m.Notes); err != nil {
		return err
	}
	for _, c := range m.Characters {
		if c.ID == "" {
			return errors.New(errors.ErrCodeInvalidDocument, "character without id")
		}
	}
	for _, img := range m.Images {
		if img.ID == "" {
			return errors.New(errors.ErrCodeInvalidDocument, "image without id")
		}
	}
	return nil
}
