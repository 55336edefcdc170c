package layout

import (
	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/render/styles"
)

// Placed is a note positioned in frame space.
type Placed struct {
	Note     mandala.Note
	Center   geometry.Point
	Scale    float64
	Depth    int
	ParentID string
	Expanded bool
}

// Diameter returns the rendered diameter of the note.
func (p Placed) Diameter() float64 {
	return styles.NoteBaseSize * p.Scale
}

// ExpandFunc reports whether a note shows its children.
type ExpandFunc func(mandala.Note) bool

// ExpandAll expands every note.
func ExpandAll(mandala.Note) bool { return true }

// ExpandNone collapses every note.
func ExpandNone(mandala.Note) bool { return false }

// isExpanded reports whether n is expanded. Notes without children never
// are.
func isExpanded(n mandala.Note, expanded ExpandFunc) bool {
	return len(n.Children) > 0 && expanded != nil && expanded(n)
}

// Walk places notes and the visible part of their subtrees. Each top-level
// note is centered at its absolute position in frame.
func Walk(notes []mandala.Note, frame Frame, expanded ExpandFunc) []Placed {
	var out []Placed
	for _, n := range notes {
		out = append(out, WalkFrom(n, frame.ToAbsolute(n.Position), expanded)...)
	}
	return out
}

// WalkFrom places root at center and its visible descendants around it, in
// pre-order. Children of an expanded note sit on an orbit around the
// parent's center at a fraction of its scale.
func WalkFrom(root mandala.Note, center geometry.Point, expanded ExpandFunc) []Placed {
	type frameItem struct {
		note   mandala.Note
		center geometry.Point
		scale  float64
		depth  int
		parent string
	}

	var out []Placed
	stack := []frameItem{{note: root, center: center, scale: root.RenderScale()}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		open := isExpanded(top.note, expanded)
		scale := top.scale
		if open {
			scale *= styles.ExpandFactor
		}
		out = append(out, Placed{
			Note:     top.note,
			Center:   top.center,
			Scale:    scale,
			Depth:    top.depth,
			ParentID: top.parent,
			Expanded: open,
		})
		if !open {
			continue
		}

		kids := top.note.Children
		centers := geometry.Orbit(top.center, len(kids), geometry.OrbitRadius(styles.NoteBaseSize, scale))
		childScale := geometry.ChildScale(scale)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frameItem{
				note:   kids[i],
				center: centers[i],
				scale:  childScale * kids[i].RenderScale(),
				depth:  top.depth + 1,
				parent: top.note.ID,
			})
		}
	}
	return out
}
