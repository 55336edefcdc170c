package outline

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mandala/pkg/errors"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/render/styles"
)

// Options configures outline rendering.
type Options struct {
	// Detailed adds the section and tags to note labels.
	Detailed bool

	// MaxLabel truncates note text in labels. Zero means 40 characters.
	MaxLabel int
}

const rootID = "mandala"

// ToDOT converts the note hierarchy of m to Graphviz DOT format.
func ToDOT(m *mandala.Mandala, opts Options) string {
	cfg := mandala.EnsureConfig(m.Config)
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, shape=doublecircle];\n", rootID, m.ID)
	for i, d := range cfg.Dimensions {
		id := dimensionNode(d.Name)
		fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse, fillcolor=%q];\n", id, d.Name, styles.DimensionColor(d.Color, i))
		fmt.Fprintf(&buf, "  %q -> %q;\n", rootID, id)
	}
	buf.WriteString("\n")

	for _, n := range m.Notes {
		parent := rootID
		if cfg.DimensionIndex(n.Dimension) >= 0 {
			parent = dimensionNode(n.Dimension)
		}
		writeNote(&buf, n, parent, opts)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dimensionNode(name string) string {
	return "dim:" + name
}

func noteNode(id string) string {
	return "note:" + id
}

func writeNote(buf *bytes.Buffer, n mandala.Note, parent string, opts Options) {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, opts))}
	if n.Source != "" {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"")
	}
	fmt.Fprintf(buf, "  %q [%s];\n", noteNode(n.ID), strings.Join(attrs, ", "))
	fmt.Fprintf(buf, "  %q -> %q;\n", parent, noteNode(n.ID))
	for _, c := range n.Children {
		writeNote(buf, c, noteNode(n.ID), opts)
	}
}

func fmtLabel(n mandala.Note, opts Options) string {
	limit := opts.MaxLabel
	if limit <= 0 {
		limit = 40
	}
	text := strings.Join(strings.Fields(n.Content), " ")
	if text == "" {
		text = n.ID
	}
	if r := []rune(text); len(r) > limit {
		text = string(r[:limit-1]) + "…"
	}
	if !opts.Detailed {
		return text
	}

	var parts []string
	if n.Section != "" {
		parts = append(parts, "section: "+n.Section)
	}
	if len(n.Tags) > 0 {
		parts = append(parts, "tags: "+strings.Join(n.Tags, ", "))
	}
	if n.Source != "" {
		parts = append(parts, "source: "+n.Source)
	}
	if len(parts) == 0 {
		return text
	}
	return text + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
//
// [render.ToPDF]: github.com/matzehuels/mandala/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/mandala/pkg/render.ToPNG
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render outline")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's svg element with one whose viewBox
// starts at the origin and whose size matches it.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
