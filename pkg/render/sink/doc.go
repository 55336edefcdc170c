// Package sink exports mandalas as static documents.
//
// [RenderSVG] writes a self-contained SVG: styles are inline and the Go
// font is embedded as a data URI, so the file renders the same everywhere.
// The drawing is produced from the same [layout.Scene] the interactive
// canvas rasterizes; [Scene] returns it for inspection.
//
// Unlike the canvas, which starts with every note collapsed, an export
// expands every note that has children unless told otherwise with
// [WithExpanded] or [WithCollapsed]. Exporting with the canvas's expanded
// set and paint order reproduces the canvas exactly.
//
// [RenderPNG] and [RenderPDF] convert the SVG with rsvg-convert.
// [RenderJSON] dumps a scene for external tools.
package sink
