// Package styles holds the visual constants and measurement rules shared by
// the interactive canvas and the static exporter: ring color interpolation,
// dimension and comparison palettes, item sizes, and text width estimation
// and wrapping.
//
// Both renderers lay text out with [Wrap], which measures with
// [EstimateWidth] instead of a real font rasterizer, so the line breaks of
// an exported document are exactly those shown while editing.
package styles
