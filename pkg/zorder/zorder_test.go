package zorder

import (
	"slices"
	"testing"

	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/mandala"
)

var (
	a = Entry{Kind: mandala.KindNote, ID: "a"}
	b = Entry{Kind: mandala.KindCharacter, ID: "b"}
	c = Entry{Kind: mandala.KindImage, ID: "c"}
)

func TestBringToFront(t *testing.T) {
	tests := []struct {
		name  string
		calls []Entry
		want  []Entry
	}{
		{"no calls", nil, []Entry{a, b, c}},
		{"front of first", []Entry{a}, []Entry{b, c, a}},
		{"already last", []Entry{c}, []Entry{a, b, c}},
		{"twice same", []Entry{a, a}, []Entry{b, c, a}},
		{"last touched wins", []Entry{a, b}, []Entry{c, a, b}},
		{"unknown appended", []Entry{{Kind: mandala.KindNote, ID: "z"}}, []Entry{a, b, c, {Kind: mandala.KindNote, ID: "z"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New([]Entry{a, b, c})
			for _, e := range tt.calls {
				tr.BringToFront(e)
			}
			if got := tr.Order(); !slices.Equal(got, tt.want) {
				t.Errorf("Order() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBringToFrontIdempotent(t *testing.T) {
	for _, e := range []Entry{a, b, c} {
		once := New([]Entry{a, b, c})
		once.BringToFront(e)
		twice := New([]Entry{a, b, c})
		twice.BringToFront(e)
		twice.BringToFront(e)
		if !slices.Equal(once.Order(), twice.Order()) {
			t.Errorf("BringToFront(%v) not idempotent: %v vs %v", e, once.Order(), twice.Order())
		}
	}
}

func TestInitializeDropsDuplicates(t *testing.T) {
	tr := New([]Entry{a, b, a, c})
	if got := tr.Order(); !slices.Equal(got, []Entry{a, b, c}) {
		t.Errorf("Order() = %v", got)
	}
	if tr.Len() != 3 || tr.Index(c) != 2 || tr.Index(Entry{ID: "x"}) != -1 {
		t.Errorf("Len/Index mismatch: %d %d", tr.Len(), tr.Index(c))
	}
}

func TestOrderIsCopy(t *testing.T) {
	tr := New([]Entry{a, b})
	o := tr.Order()
	o[0] = c
	if tr.Contains(c) {
		t.Error("mutating Order() result changed the tracker")
	}
}

func TestFromMandala(t *testing.T) {
	m := &mandala.Mandala{
		Notes:      []mandala.Note{{ID: "n1", Children: []mandala.Note{{ID: "kid"}}}, {ID: "n2"}},
		Characters: []mandala.Character{{ID: "c1"}},
		Images:     []mandala.Image{{ID: "i1", Position: geometry.Point{}}},
	}
	got := FromMandala(m)
	want := []Entry{
		{Kind: mandala.KindNote, ID: "n1"},
		{Kind: mandala.KindNote, ID: "n2"},
		{Kind: mandala.KindCharacter, ID: "c1"},
		{Kind: mandala.KindImage, ID: "i1"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("FromMandala = %v, want %v", got, want)
	}
}
