package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/mandala/pkg/errors"
	"github.com/matzehuels/mandala/pkg/mandala"
)

// WriteJSON encodes m as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(m *mandala.Mandala, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode document")
	}
	return nil
}

// ExportJSON writes m to a JSON file at path.
func ExportJSON(m *mandala.Mandala, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "create %s", path)
	}
	if err := WriteJSON(m, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "close %s", path)
	}
	return nil
}
