// Package render provides output rendering for mandalas.
//
// # Overview
//
// Both renderers draw from the same [layout.Scene]:
//
//   - [canvas]: the interactive view, rasterized with gg
//   - [sink]: the static exporter (SVG, PNG, PDF, JSON)
//   - [outline]: a Graphviz diagram of the note hierarchy
//   - [styles]: colors, sizes and text measurement shared by all of them
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(m, 1024)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [layout.Scene]: github.com/matzehuels/mandala/pkg/layout.Scene
package render
