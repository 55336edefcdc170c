// Package canvas implements the interactive mandala view.
//
// A [Canvas] owns a working copy of a document and turns host input events
// into layout changes and persistence writes:
//
//   - PointerDown hit-tests items in reverse paint order, brings the hit
//     item's top-level entry to the front and captures the pointer.
//   - PointerMove drags captured top-level items. The drag boundary is
//     applied on every event; only ephemeral view state changes.
//   - PointerUp and LostCapture end the drag: the item's center is mapped
//     back to normalized space, its placement is re-derived and a
//     [mandala.PositionUpdate] is written.
//
// A press released without leaving the dead zone is a click. Clicks on a
// note are held for [DoubleClickDelay]: a second click in that window starts
// text editing, otherwise the note's orbit is toggled when the host calls
// [Canvas.Tick]. The canvas runs no timers of its own.
//
// Screen points are pixels of the square output image. The viewport maps
// them to frame space, see [layout.Frame].
//
// A Canvas is not safe for concurrent use.
package canvas
