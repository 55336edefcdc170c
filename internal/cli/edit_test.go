package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/store"
)

func newTestEditModel(t *testing.T) (editModel, *store.FileStore) {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	m := mandala.New("garden")
	m.AddNote(mandala.Note{
		ID:       "compost",
		Content:  "Compost",
		Position: geometry.Point{X: 0.2, Y: -0.3},
		Children: []mandala.Note{{ID: "worms", Content: "Worms"}},
	})
	if err := st.Save(context.Background(), m); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return newEditModel(context.Background(), m, st, "snapshot.png"), st
}

func press(t *testing.T, m editModel, key tea.KeyMsg) editModel {
	t.Helper()
	next, _ := m.Update(key)
	em, ok := next.(editModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return em
}

func TestEditModelSelectsTopmost(t *testing.T) {
	m, _ := newTestEditModel(t)
	if m.selected.ID != "compost" || m.selected.Kind != mandala.KindNote {
		t.Errorf("selected = %+v", m.selected)
	}
}

func TestEditModelDragWritesPosition(t *testing.T) {
	m, st := newTestEditModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.err != nil {
		t.Fatalf("drag failed: %v", m.err)
	}

	doc, err := st.Load(context.Background(), "garden")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	n, _ := doc.Note("compost")
	if n.Position.X <= 0.2 {
		t.Errorf("stored X = %.4f, want > 0.2", n.Position.X)
	}
	want := doc.Placement(n.Position)
	if n.Dimension != want.Dimension || n.Section != want.Scale {
		t.Errorf("placement = %s/%s, want %s/%s", n.Dimension, n.Section, want.Dimension, want.Scale)
	}
}

func TestEditModelToggleExpanded(t *testing.T) {
	m, _ := newTestEditModel(t)
	if m.canvas.Expanded("compost") {
		t.Fatal("canvas should start collapsed")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.canvas.Expanded("compost") {
		t.Error("space should expand the selected note")
	}
	if len(m.selectable()) != 1 {
		t.Errorf("children should not be draggable, got %d selectable items", len(m.selectable()))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.canvas.Expanded("compost") {
		t.Error("second space should collapse the note")
	}
}

func TestEditModelQuit(t *testing.T) {
	m, _ := newTestEditModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
