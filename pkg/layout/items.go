package layout

import (
	"slices"

	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/render/styles"
	"github.com/matzehuels/mandala/pkg/zorder"
)

type itemBuilder struct {
	cfg     mandala.Config
	frame   Frame
	opts    *options
	sources map[string]int
}

// items returns the drawables of the top-level item e, or nothing if it is
// filtered out.
func (b *itemBuilder) items(m *mandala.Mandala, e zorder.Entry) []Item {
	switch e.Kind {
	case mandala.KindNote:
		for _, n := range m.Notes {
			if n.ID == e.ID {
				return b.note(n, e)
			}
		}
	case mandala.KindCharacter:
		if c, ok := m.Character(e.ID); ok && b.opts.filter.MatchCharacter(*c) {
			return []Item{b.character(*c, e)}
		}
	case mandala.KindImage:
		if img, ok := m.Image(e.ID); ok {
			return []Item{b.image(*img, e)}
		}
	}
	return nil
}

func (b *itemBuilder) center(e zorder.Entry, p geometry.Point) geometry.Point {
	if c, ok := b.opts.overrides[e]; ok {
		return c
	}
	return b.frame.ToAbsolute(p)
}

func (b *itemBuilder) note(n mandala.Note, e zorder.Entry) []Item {
	if !b.opts.filter.MatchNote(n) {
		return nil
	}
	placed := WalkFrom(n, b.center(e, n.Position), b.opts.expanded)
	fills := map[string]string{}
	out := make([]Item, 0, len(placed))
	for _, p := range placed {
		fill := b.noteFill(p.Note, fills[p.ParentID])
		fills[p.Note.ID] = fill

		d := p.Diameter()
		textD := d
		if p.Expanded {
			orbit := geometry.OrbitRadius(styles.NoteBaseSize, p.Scale)
			child := styles.NoteBaseSize * geometry.ChildScale(p.Scale) / 2
			textD = max(0, 2*(orbit-child))
		}
		fs := styles.NoteFontSize(textD)
		out = append(out, Item{
			Kind:      mandala.KindNote,
			ID:        p.Note.ID,
			ParentID:  p.ParentID,
			Depth:     p.Depth,
			Center:    p.Center,
			Width:     d,
			Height:    d,
			Scale:     p.Scale,
			Fill:      fill,
			Text:      styles.Wrap(p.Note.Content, styles.TextBox(textD), fs, styles.MaxLines(textD, fs)),
			FontSize:  fs,
			Expanded:  p.Expanded,
			Draggable: p.Depth == 0,
			Editors:   slices.Clone(p.Note.Editors),
		})
	}
	return out
}

// noteFill colors a note by source when it has one, otherwise by its
// dimension. A child without a known dimension takes its parent's color.
func (b *itemBuilder) noteFill(n mandala.Note, parent string) string {
	if n.Source != "" {
		return styles.SourceColor(b.sources[n.Source])
	}
	i := b.cfg.DimensionIndex(n.Dimension)
	if i < 0 && parent != "" {
		return parent
	}
	col := ""
	if i >= 0 {
		col = b.cfg.Dimensions[i].Color
	}
	return styles.DimensionColor(col, i)
}

func (b *itemBuilder) character(c mandala.Character, e zorder.Entry) Item {
	return Item{
		Kind:      mandala.KindCharacter,
		ID:        c.ID,
		Center:    b.center(e, c.Position),
		Width:     styles.CharacterSize,
		Height:    styles.CharacterSize,
		Scale:     1,
		Fill:      styles.DimensionColor(c.Color, -1),
		Text:      []string{c.Name},
		FontSize:  styles.CharacterFontSize,
		Draggable: true,
	}
}

func (b *itemBuilder) image(img mandala.Image, e zorder.Entry) Item {
	sx, sy := img.RenderScale()
	return Item{
		Kind:      mandala.KindImage,
		ID:        img.ID,
		Center:    b.center(e, img.Position),
		Width:     styles.ImageBaseSize * sx,
		Height:    styles.ImageBaseSize * sy,
		Scale:     sx,
		URL:       img.URL,
		Draggable: true,
	}
}
