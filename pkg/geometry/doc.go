// Package geometry implements the mandala coordinate system.
//
// Every renderer and every mutation of a mandala document goes through this
// package so that the interactive canvas and the static exporter agree on
// where things are. It has no dependency on rendering or on the document
// model.
//
// # Angles
//
// Angles are in degrees, measured counter-clockwise from the positive x axis
// as seen on screen. Because screen space has y pointing down, the point at
// angle θ and radius r around center c is (c.X + r·cos θ, c.Y - r·sin θ); see
// [Polar].
//
// Dimension i of N occupies the wedge whose leading edge is
// [SectorAngle](i, N) = (360/N)·(N-i). The formula decreases with the index,
// so dimension 0 sits just counter-clockwise of the horizontal axis and the
// following dimensions proceed clockwise.
//
// # Spaces
//
// Item positions are persisted in normalized space: a [Point] with both
// components in [-1, 1], relative to the mandala center and the current
// maximum radius. [ToAbsolute] and [ToRelative] convert between normalized
// and absolute pixel space. Functions that deal with item boxes say whether
// they take the item center or its top-left corner; see [CenterToTopLeft].
//
// # Failure Modes
//
// Nothing in this package returns an error. Degenerate input (zero sectors,
// empty scale lists, non-positive radii) yields documented sentinel values
// such as a zero angle or an [Unknown] placement. NaN and Inf inputs are a
// precondition violation and are passed through unchecked.
package geometry
