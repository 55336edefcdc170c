package io

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/mandala/pkg/errors"
	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/mandala"
)

func sample() *mandala.Mandala {
	m := mandala.New("workshop")
	m.Notes = []mandala.Note{{
		ID:        "n1",
		Content:   "Seed library",
		Dimension: "Ecology",
		Section:   "Person",
		Position:  geometry.Point{X: 0.2, Y: -0.1},
		Tags:      []string{"food"},
		Children:  []mandala.Note{{ID: "n1a", Content: "Swap day", Scale: 0.5}},
	}}
	m.Characters = []mandala.Character{{ID: "c1", Name: "Ana", Color: "#ff0000", Position: geometry.Point{X: -0.3}}}
	m.Images = []mandala.Image{{ID: "i1", URL: "https://example.com/a.png", Scale: &mandala.ImageScale{X: 2, Y: 1}}}
	m.Refresh()
	return m
}

func TestRoundTrip(t *testing.T) {
	m := sample()

	var buf bytes.Buffer
	if err := WriteJSON(m, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !reflect.DeepEqual(got, m) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, m)
	}
}

func TestReadJSON_StalePlacement(t *testing.T) {
	m := sample()
	m.Notes[0].Dimension = "Nowhere"
	m.Notes[0].Section = "Nothing"
	m.Characters[0].Dimension = ""

	var buf bytes.Buffer
	if err := WriteJSON(m, &buf); err != nil {
		t.Fatal(err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	want := sample()
	if n, w := got.Notes[0], want.Notes[0]; n.Dimension != w.Dimension || n.Section != w.Section {
		t.Errorf("note placement = %s/%s, want %s/%s", n.Dimension, n.Section, w.Dimension, w.Section)
	}
	if got.Characters[0].Dimension == "" {
		t.Error("character dimension should be derived from its position")
	}
}

func TestExportImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.json")
	m := sample()
	if err := ExportJSON(m, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if got.ID != m.ID || len(got.Notes) != 1 || len(got.Notes[0].Children) != 1 {
		t.Errorf("ImportJSON() = %+v", got)
	}
}

func TestReadJSON_EmptyConfig(t *testing.T) {
	m, err := ReadJSON(strings.NewReader(`{"id":"x","configuration":{"dimensions":[],"scales":[]}}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !reflect.DeepEqual(m.Config, mandala.DefaultConfig()) {
		t.Errorf("Config = %+v, want default", m.Config)
	}
}

func TestReadJSON_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"id":`},
		{"no id", `{"notes":[]}`},
		{"note without id", `{"id":"x","notes":[{"content":"a"}]}`},
		{"duplicate note", `{"id":"x","notes":[{"id":"a","children":[{"id":"a"}]}]}`},
		{"character without id", `{"id":"x","characters":[{"name":"a"}]}`},
		{"image without id", `{"id":"x","images":[{"url":"https://a"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidDocument) {
				t.Errorf("ReadJSON() error = %v, want INVALID_DOCUMENT", err)
			}
		})
	}
}

func TestImportJSON_Missing(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON() error = %v, want FILE_NOT_FOUND", err)
	}
}
