package mandala

import (
	"github.com/google/uuid"

	"github.com/matzehuels/mandala/pkg/geometry"
)

// Kind identifies the type of an item placed on a mandala.
type Kind string

// Item kinds.
const (
	KindNote      Kind = "note"
	KindCharacter Kind = "character"
	KindImage     Kind = "image"
)

// Dimension is one angular wedge of the mandala.
type Dimension struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Config is the ordered list of dimensions and scale names.
type Config struct {
	Dimensions []Dimension `json:"dimensions"`
	Scales     []string    `json:"scales"`
}

// DimensionNames returns the dimension names in index order.
func (c Config) DimensionNames() []string {
	out := make([]string, len(c.Dimensions))
	for i, d := range c.Dimensions {
		out[i] = d.Name
	}
	return out
}

// DimensionIndex returns the index of the named dimension, or -1.
func (c Config) DimensionIndex(name string) int {
	for i, d := range c.Dimensions {
		if d.Name == name {
			return i
		}
	}
	return -1
}

// MaxRadius returns the outer radius implied by the number of scales.
func (c Config) MaxRadius() float64 {
	return geometry.MaxRadiusFor(len(c.Scales))
}

// Empty reports whether the configuration lacks dimensions or scales.
func (c Config) Empty() bool {
	return len(c.Dimensions) == 0 || len(c.Scales) == 0
}

// DefaultConfig returns the built-in configuration used when a document
// carries an empty one.
func DefaultConfig() Config {
	return Config{
		Dimensions: []Dimension{
			{Name: "Ecology", Color: "#4caf50"},
			{Name: "Economy", Color: "#ff9800"},
			{Name: "Governance", Color: "#3f51b5"},
			{Name: "Culture", Color: "#e91e63"},
			{Name: "Infrastructure", Color: "#795548"},
			{Name: "Education", Color: "#00bcd4"},
		},
		Scales: []string{"Person", "Community", "Institution", "Society"},
	}
}

// EnsureConfig returns c, or [DefaultConfig] if c is empty.
func EnsureConfig(c Config) Config {
	if c.Empty() {
		return DefaultConfig()
	}
	return c
}

// Note is a post-it. Children orbit around it when it is expanded.
type Note struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	Dimension string         `json:"dimension"`
	Section   string         `json:"section"`
	Position  geometry.Point `json:"position"`
	Children  []Note         `json:"children,omitempty"`
	Source    string         `json:"source,omitempty"`
	Scale     float64        `json:"scale,omitempty"`
	Editors   []string       `json:"editors,omitempty"`
	Tags      []string       `json:"tags,omitempty"`
}

// RenderScale returns the visual size multiplier, defaulting to 1.
func (n Note) RenderScale() float64 {
	if n.Scale <= 0 {
		return 1
	}
	return n.Scale
}

// Character is a named token placed on the mandala.
type Character struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Color     string         `json:"color"`
	Position  geometry.Point `json:"position"`
	Dimension string         `json:"dimension,omitempty"`
	Section   string         `json:"section,omitempty"`
}

// ImageScale is a non-uniform size factor for images.
type ImageScale struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Image is a picture placed on the mandala.
type Image struct {
	ID       string         `json:"id"`
	URL      string         `json:"url"`
	Position geometry.Point `json:"position"`
	Scale    *ImageScale    `json:"scale,omitempty"`
}

// RenderScale returns the per-axis size multipliers, defaulting to 1.
func (i Image) RenderScale() (sx, sy float64) {
	sx, sy = 1, 1
	if i.Scale != nil {
		if i.Scale.X > 0 {
			sx = i.Scale.X
		}
		if i.Scale.Y > 0 {
			sy = i.Scale.Y
		}
	}
	return sx, sy
}

// Mandala is the root document. It owns its items by value.
type Mandala struct {
	ID         string      `json:"id"`
	Config     Config      `json:"configuration"`
	Notes      []Note      `json:"notes"`
	Characters []Character `json:"characters"`
	Images     []Image     `json:"images"`
}

// New returns an empty mandala with the default configuration.
func New(id string) *Mandala {
	if id == "" {
		id = uuid.NewString()
	}
	return &Mandala{ID: id, Config: DefaultConfig()}
}

// Normalize replaces an empty configuration with the default one. It is
// applied to every document read from a collaborator.
func (m *Mandala) Normalize() {
	m.Config = EnsureConfig(m.Config)
}

// Clone returns a deep copy of m.
func (m *Mandala) Clone() *Mandala {
	out := *m
	out.Config.Dimensions = append([]Dimension(nil), m.Config.Dimensions...)
	out.Config.Scales = append([]string(nil), m.Config.Scales...)
	out.Notes = cloneNotes(m.Notes)
	out.Characters = append([]Character(nil), m.Characters...)
	out.Images = make([]Image, len(m.Images))
	for i, img := range m.Images {
		if img.Scale != nil {
			s := *img.Scale
			img.Scale = &s
		}
		out.Images[i] = img
	}
	return &out
}

func cloneNotes(notes []Note) []Note {
	if notes == nil {
		return nil
	}
	out := make([]Note, len(notes))
	for i, n := range notes {
		n.Children = cloneNotes(n.Children)
		n.Editors = append([]string(nil), n.Editors...)
		n.Tags = append([]string(nil), n.Tags...)
		out[i] = n
	}
	return out
}

// Placement resolves a normalized position against the configuration.
func (m *Mandala) Placement(p geometry.Point) geometry.Placement {
	cfg := EnsureConfig(m.Config)
	return geometry.ResolveNormalized(p, cfg.DimensionNames(), cfg.Scales)
}

// Note returns a pointer to the top-level note with the given id, or to a
// nested child if no top-level note matches.
func (m *Mandala) Note(id string) (*Note, bool) {
	return findNote(m.Notes, id)
}

func findNote(notes []Note, id string) (*Note, bool) {
	for i := range notes {
		if notes[i].ID == id {
			return &notes[i], true
		}
	}
	for i := range notes {
		if n, ok := findNote(notes[i].Children, id); ok {
			return n, true
		}
	}
	return nil, false
}

// Character returns a pointer to the character with the given id.
func (m *Mandala) Character(id string) (*Character, bool) {
	for i := range m.Characters {
		if m.Characters[i].ID == id {
			return &m.Characters[i], true
		}
	}
	return nil, false
}

// Image returns a pointer to the image with the given id.
func (m *Mandala) Image(id string) (*Image, bool) {
	for i := range m.Images {
		if m.Images[i].ID == id {
			return &m.Images[i], true
		}
	}
	return nil, false
}

// AddNote appends a top-level note at position p, assigning a new id if n
// has none, and derives its placement. It returns the stored note's id.
func (m *Mandala) AddNote(n Note) string {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	place(&n.Dimension, &n.Section, m.Placement(n.Position))
	m.Notes = append(m.Notes, n)
	return n.ID
}

// Refresh re-derives the placement of every top-level note and character
// from its position. Documents written by older clients may carry stale
// dimension or section names.
func (m *Mandala) Refresh() {
	for i := range m.Notes {
		n := &m.Notes[i]
		place(&n.Dimension, &n.Section, m.Placement(n.Position))
	}
	for i := range m.Characters {
		c := &m.Characters[i]
		place(&c.Dimension, &c.Section, m.Placement(c.Position))
	}
}

// place assigns the resolved names, leaving the current ones if the
// placement is unknown.
func place(dim, section *string, p geometry.Placement) {
	if !p.Known() {
		return
	}
	*dim = p.Dimension
	*section = p.Scale
}
