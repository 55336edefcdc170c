package pipeline

import (
	"context"

	"github.com/matzehuels/mandala/pkg/layout"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/render/outline"
	"github.com/matzehuels/mandala/pkg/render/sink"
)

// sinkOptions maps the options to exporter options.
func sinkOptions(opts Options) []sink.SVGOption {
	out := []sink.SVGOption{
		sink.WithFilter(opts.Filter),
		sink.WithOrder(opts.Order),
		sink.WithFontEmbed(!opts.NoFont),
	}
	if ids := opts.expandedIDs(); ids != nil {
		out = append(out, sink.WithExpanded(ids...))
	}
	return out
}

// BuildScene lays out m as an export with opts would draw it.
func BuildScene(m *mandala.Mandala, opts Options) *layout.Scene {
	return sink.Scene(m, sinkOptions(opts)...)
}

// RenderFormat renders one format from a document and its scene.
func RenderFormat(ctx context.Context, m *mandala.Mandala, s *layout.Scene, format string, opts Options) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	sopts := sinkOptions(opts)

	switch format {
	case FormatSVG:
		return sink.RenderSceneSVG(s, opts.Size, sopts...), nil
	case FormatPNG:
		return sink.RenderScenePNG(ctx, s, opts.Size, sopts...)
	case FormatPDF:
		return sink.RenderScenePDF(ctx, s, opts.Size, sopts...)
	case FormatJSON:
		return sink.RenderJSON(s)
	case FormatDOT:
		return []byte(outline.ToDOT(m, outline.Options{Detailed: opts.Detailed})), nil
	default:
		return outline.RenderSVG(ctx, outline.ToDOT(m, outline.Options{Detailed: opts.Detailed}))
	}
}
