// Package pipeline runs the load → layout → render pipeline for mandala
// exports.
//
// The CLI and the HTTP server share this package so an export looks the same
// whichever entry point produced it.
//
// # Usage
//
//	runner := pipeline.NewRunner(store, cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ID:      "workshop",
//	    Formats: []string{"svg", "png"},
//	})
//	svg := result.Artifacts["svg"]
//
// Documents already in memory skip the load stage:
//
//	result, err := runner.Export(ctx, m, opts)
//
// Artifacts are cached under a hash of the document and the options that
// change the output, so any edit to the document invalidates them.
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mandala/pkg/cache"
	"github.com/matzehuels/mandala/pkg/errors"
	"github.com/matzehuels/mandala/pkg/layout"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/zorder"
)

// DefaultSize is the default export edge length in pixels.
const DefaultSize = 1024

// Format constants for output formats.
const (
	FormatSVG     = "svg"
	FormatPNG     = "png"
	FormatPDF     = "pdf"
	FormatJSON    = "json"
	FormatDOT     = "dot"
	FormatOutline = "outline"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:     true,
	FormatPNG:     true,
	FormatPDF:     true,
	FormatJSON:    true,
	FormatDOT:     true,
	FormatOutline: true,
}

// Options configures an export.
type Options struct {
	// ID names the document to load. Unused by [Runner.Export].
	ID string `json:"id,omitempty"`

	Formats []string `json:"formats,omitempty"`
	Size    int      `json:"size,omitempty"`

	Filter mandala.Filter `json:"filter,omitempty"`
	Order  []zorder.Entry `json:"order,omitempty"`

	// Expanded lists the notes whose children are shown. When nil, every
	// note with children is expanded unless Collapse is set.
	Expanded []string `json:"expanded,omitempty"`
	Collapse bool     `json:"collapse,omitempty"`

	NoFont   bool `json:"no_font,omitempty"`
	Detailed bool `json:"detailed,omitempty"`
	Refresh  bool `json:"refresh,omitempty"`

	// Logger receives the export's log output. Runners fall back to their
	// own logger when it is nil.
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Mandala   *mandala.Mandala
	DocHash   string
	Scene     *layout.Scene
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount  int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo records which formats came from the cache and whether the
// scene did.
type CacheInfo struct {
	Hits     []string
	SceneHit bool
}

// RenderHit reports whether every artifact came from the cache.
func (r *Result) RenderHit() bool {
	return len(r.CacheInfo.Hits) > 0 && len(r.CacheInfo.Hits) == len(r.Artifacts)
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot, outline)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the options and applies defaults. Formats
// are lowercased and deduplicated.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	formats := make([]string, 0, len(o.Formats))
	for _, f := range o.Formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	o.Formats = formats
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if err := errors.ValidateSize(o.Size); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// expandedIDs returns the ids passed to the exporter, or nil to expand all.
func (o *Options) expandedIDs() []string {
	if o.Collapse {
		return []string{}
	}
	return o.Expanded
}

// sceneKeyOpts returns the cache key options of the scene.
func (o *Options) sceneKeyOpts() cache.SceneKeyOpts {
	k := cache.SceneKeyOpts{Filter: o.Filter}
	for _, e := range o.Order {
		k.Order = append(k.Order, string(e.Kind)+":"+e.ID)
	}
	if ids := o.expandedIDs(); ids != nil {
		k.Expanded = append([]string{"!"}, ids...)
	}
	return k
}

// artifactKeyOpts returns the cache key options of one artifact.
func (o *Options) artifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Scene: o.sceneKeyOpts(), Format: format}
	switch format {
	case FormatSVG, FormatPNG, FormatPDF:
		k.Size = o.Size
		k.EmbedFont = !o.NoFont
	case FormatDOT, FormatOutline:
		k.Scene = cache.SceneKeyOpts{}
		k.Detailed = o.Detailed
	}
	return k
}
