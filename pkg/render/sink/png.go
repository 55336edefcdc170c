package sink

import (
	"context"

	"github.com/matzehuels/mandala/pkg/layout"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/render"
)

// RenderPNG exports m as a size×size PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, m *mandala.Mandala, size int, opts ...SVGOption) ([]byte, error) {
	return render.ToPNG(ctx, RenderSVG(m, size, opts...), 1)
}

// RenderPDF exports m as a single-page PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, m *mandala.Mandala, size int, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(m, size, opts...))
}

// RenderScenePNG exports an already built scene as PNG.
func RenderScenePNG(ctx context.Context, s *layout.Scene, size int, opts ...SVGOption) ([]byte, error) {
	return render.ToPNG(ctx, RenderSceneSVG(s, size, opts...), 1)
}

// RenderScenePDF exports an already built scene as PDF.
func RenderScenePDF(ctx context.Context, s *layout.Scene, size int, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(ctx, RenderSceneSVG(s, size, opts...))
}
