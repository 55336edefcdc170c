// Package layout turns a mandala document into a flat, ordered scene of
// drawables in logical pixel space.
//
// The scene is the only input of both renderers. The interactive canvas
// rasterizes it and the exporter serializes it to SVG, so any geometry or
// styling decision made here shows up identically in both.
//
// # Coordinates
//
// A [Frame] fixes the logical space: a square of side 2*(maxRadius+margin)
// with the mandala center in the middle. Items are positioned by their
// center. Renderers scale the whole frame to their output size.
//
// # Hierarchy
//
// Notes form a tree. [Walk] flattens the visible part of that tree with
// parents before children, so children of an expanded note orbit on top of
// their parent. Only depth-0 items are draggable.
package layout
