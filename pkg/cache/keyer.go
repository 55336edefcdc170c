package cache

import "sort"

// Keyer generates cache keys.
type Keyer interface {
	// SceneKey identifies a laid out scene of a document.
	SceneKey(docHash string, opts SceneKeyOpts) string

	// ArtifactKey identifies a rendered artifact (svg, png, pdf, outline).
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// SceneKeyOpts holds the options that change a scene.
type SceneKeyOpts struct {
	Filter   map[string][]string `json:"filter,omitempty"`
	Order    []string            `json:"order,omitempty"`
	Expanded []string            `json:"expanded,omitempty"`
}

// ArtifactKeyOpts holds the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Scene     SceneKeyOpts `json:"scene"`
	Format    string       `json:"format"`
	Size      int          `json:"size,omitempty"`
	EmbedFont bool         `json:"embed_font,omitempty"`
	Detailed  bool         `json:"detailed,omitempty"`
}

// DefaultKeyer produces keys of the form "kind:sha256".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SceneKey implements [Keyer].
func (DefaultKeyer) SceneKey(docHash string, opts SceneKeyOpts) string {
	return hashKey("scene", docHash, canonical(opts))
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	opts.Scene = canonical(opts.Scene)
	return hashKey("artifact", docHash, opts)
}

// canonical sorts the set-valued options so equal sets hash equally.
// Order is a sequence and keeps its order.
func canonical(o SceneKeyOpts) SceneKeyOpts {
	out := SceneKeyOpts{Order: o.Order}
	if len(o.Expanded) > 0 {
		out.Expanded = append([]string(nil), o.Expanded...)
		sort.Strings(out.Expanded)
	}
	if len(o.Filter) > 0 {
		out.Filter = make(map[string][]string, len(o.Filter))
		for k, v := range o.Filter {
			vs := append([]string(nil), v...)
			sort.Strings(vs)
			out.Filter[k] = vs
		}
	}
	return out
}
