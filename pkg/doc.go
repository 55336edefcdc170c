// Package pkg provides the core libraries for mandala diagrams.
//
// # Overview
//
// A mandala is a circular diagram split into angular dimensions and
// concentric scales. Notes, characters and images are placed on it by
// normalized position; their dimension and section are always derived from
// that position. The pkg directory is organized into four areas:
//
//  1. Domain: [mandala], [geometry], [zorder]
//  2. Layout and rendering: [layout], [render/sink], [render/canvas], [render/outline]
//  3. Persistence: [io], [store], [cache]
//  4. Orchestration: [pipeline], [config], [observability]
//
// # Architecture
//
// The typical data flow:
//
//	JSON document or store
//	         ↓
//	    [io] / [store] (decode, validate, normalize)
//	         ↓
//	    [layout] (frame, chrome, orbit tree, items in paint order)
//	         ↓
//	    [render/sink] (SVG, PNG, PDF, scene JSON)
//
// The interactive [render/canvas] works on the same scene and writes
// dropped positions and edited text back through a [store.Store].
//
// # Quick Start
//
//	m, err := io.ImportJSON("workshop.json")
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(m, 1024)
//
// Resolve a position:
//
//	p := m.Placement(geometry.Point{X: 0.3, Y: -0.2})
//	fmt.Println(p.Dimension, p.Scale)
//
// Export through the cached pipeline:
//
//	runner := pipeline.NewRunner(st, cache.NewNullCache(), cache.NewDefaultKeyer(), logger)
//	res, err := runner.Execute(ctx, pipeline.Options{ID: "workshop", Formats: []string{"svg", "png"}})
//
// # Main Packages
//
// [geometry] - Wedges, rings, the placement resolver, orbit positions and the
// boundary constraint. Pure functions with no document types.
//
// [mandala] - The document model, filters and the position and content
// updates emitted by editors.
//
// [zorder] - Paint order of top-level items.
//
// [layout] - Turns a document into a [layout.Scene]: ring fills, borders,
// guides, labels and items with absolute frame coordinates.
//
// [render/sink] - Static exports. PNG and PDF go through rsvg-convert.
//
// [render/canvas] - Pointer-driven editing with drag, orbit toggling,
// zoom and pan.
//
// [render/outline] - Graphviz outline of the note hierarchy.
//
// [io] - JSON import and export.
//
// [store] - Document stores: file and MongoDB.
//
// [cache] - Artifact caches: null, file and Redis.
//
// [pipeline] - Load, layout and render with caching, shared by the CLI and
// the HTTP server.
//
// # Testing
//
//	go test ./pkg/...
//
// Redis and MongoDB tests run only when MANDALA_TEST_REDIS or
// MANDALA_TEST_MONGO point at a server.
//
// [mandala]: https://pkg.go.dev/github.com/matzehuels/mandala/pkg/mandala
// [geometry]: https://pkg.go.dev/github.com/matzehuels/mandala/pkg/geometry
// [zorder]: https://pkg.go.dev/github.com/matzehuels/mandala/pkg/zorder
// [layout]: https://pkg.go.dev/github.com/matzehuels/mandala/pkg/layout
// [layout.Scene]: https://pkg.go.dev/github.com/matzehuels/mandala/pkg/layout#Scene
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/mandala/pkg/render/sink
// [render/canvas]: https://pkg.go.dev/github.com/matzehuels/mandala/pkg/render/canvas
// [render/outline]: https://pkg.go.dev/github.com/matzehuels/mandala/pkg/render/outline
// [io]: https://pkg.go.dev/github.com/matzehuels/mandala/pkg/io
// [store]: https://pkg.go.dev/github.com/matzehuels/mandala/pkg/store
// [store.Store]: https://pkg.go.dev/github.com/matzehuels/mandala/pkg/store#Store
// [cache]: https://pkg.go.dev/github.com/matzehuels/mandala/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/mandala/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/mandala/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/mandala/pkg/observability
package pkg
