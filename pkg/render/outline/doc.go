// Package outline renders the note hierarchy of a mandala as a Graphviz
// diagram.
//
// The outline complements the spatial export: one root node for the
// mandala, one node per dimension, and each note hanging off the
// dimension it was placed in, with its children below it. Notes without a
// known dimension hang off the root.
//
//	dot := outline.ToDOT(m, outline.Options{Detailed: true})
//	svg, err := outline.RenderSVG(ctx, dot)
package outline
