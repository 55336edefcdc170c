package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/mandala/pkg/fonts"
	"github.com/matzehuels/mandala/pkg/layout"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/render/styles"
	"github.com/matzehuels/mandala/pkg/zorder"
)

// SVGOption configures export.
type SVGOption func(*exporter)

type exporter struct {
	filter    mandala.Filter
	order     []zorder.Entry
	expanded  map[string]bool
	collapsed map[string]bool
	embedFont bool
}

// WithFilter hides notes and characters that do not match f.
func WithFilter(f mandala.Filter) SVGOption { return func(e *exporter) { e.filter = f } }

// WithOrder sets the paint order, for example a canvas's z-order.
func WithOrder(order []zorder.Entry) SVGOption { return func(e *exporter) { e.order = order } }

// WithFontEmbed controls whether the font is embedded. It is on by default.
func WithFontEmbed(on bool) SVGOption { return func(e *exporter) { e.embedFont = on } }

// WithExpanded expands only the listed notes.
func WithExpanded(ids ...string) SVGOption {
	return func(e *exporter) {
		if e.expanded == nil {
			e.expanded = make(map[string]bool, len(ids))
		}
		for _, id := range ids {
			e.expanded[id] = true
		}
	}
}

// WithCollapsed collapses the listed notes.
func WithCollapsed(ids ...string) SVGOption {
	return func(e *exporter) {
		if e.collapsed == nil {
			e.collapsed = make(map[string]bool, len(ids))
		}
		for _, id := range ids {
			e.collapsed[id] = true
		}
	}
}

func newExporter(opts ...SVGOption) *exporter {
	e := &exporter{embedFont: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *exporter) isExpanded(n mandala.Note) bool {
	if e.collapsed[n.ID] {
		return false
	}
	if e.expanded != nil {
		return e.expanded[n.ID]
	}
	return true
}

func (e *exporter) scene(m *mandala.Mandala) *layout.Scene {
	return layout.Build(m,
		layout.WithFilter(e.filter),
		layout.WithOrder(e.order),
		layout.WithExpanded(e.isExpanded),
	)
}

// Scene returns the scene an export of m draws.
func Scene(m *mandala.Mandala, opts ...SVGOption) *layout.Scene {
	return newExporter(opts...).scene(m)
}

// RenderSVG exports m as an SVG document size pixels wide and high. A size
// ≤ 0 uses the logical frame size.
func RenderSVG(m *mandala.Mandala, size int, opts ...SVGOption) []byte {
	e := newExporter(opts...)
	return e.render(e.scene(m), size)
}

// RenderSceneSVG exports an already built scene.
func RenderSceneSVG(s *layout.Scene, size int, opts ...SVGOption) []byte {
	return newExporter(opts...).render(s, size)
}

func (e *exporter) render(s *layout.Scene, size int) []byte {
	px := float64(size)
	if size <= 0 {
		px = s.Frame.Size
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f" font-family="%s">`+"\n",
		s.Frame.Size, s.Frame.Size, px, px, styles.EscapeXML(styles.FontFamily))
	if e.embedFont {
		renderFontFace(&buf)
	}
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.2f" height="%.2f" fill="#ffffff"/>`+"\n", s.Frame.Size, s.Frame.Size)

	renderChrome(&buf, s)
	buf.WriteString("  <g class=\"items\">\n")
	for _, it := range s.Items {
		renderItem(&buf, it)
	}
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderFontFace(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <defs><style>@font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }</style></defs>\n",
		fonts.FontFamily, fonts.RegularBase64())
}

func renderChrome(buf *bytes.Buffer, s *layout.Scene) {
	c := s.Frame.Center

	buf.WriteString("  <g class=\"rings\">\n")
	for _, r := range s.Rings {
		fmt.Fprintf(buf, `    <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="%.2f" data-scale="%s"/>`+"\n",
			c.X, c.Y, r.Radius, r.Fill.CSS(), styles.BorderColor, styles.BorderWidth, styles.EscapeXML(r.Name))
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(buf, "  <g class=\"borders\" stroke=\"%s\" stroke-width=\"%.2f\">\n", styles.BorderColor, styles.BorderWidth)
	for _, l := range s.Borders {
		renderLine(buf, l)
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(buf, "  <g class=\"guides\" stroke=\"%s\" stroke-width=\"1\" stroke-dasharray=\"6 4\">\n", styles.GuideColor)
	for _, l := range s.Guides {
		renderLine(buf, l)
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(buf, "  <g class=\"dots\" fill=\"%s\">\n", styles.DotColor)
	for _, d := range s.Dots {
		fmt.Fprintf(buf, `    <circle cx="%.2f" cy="%.2f" r="%.2f"/>`+"\n", d.X, d.Y, styles.DotRadius)
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(buf, "  <g class=\"labels\" fill=\"%s\" text-anchor=\"middle\" dominant-baseline=\"central\">\n", styles.LabelColor)
	for _, l := range s.Labels {
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-size="%.2f"`, l.Pos.X, l.Pos.Y, l.FontSize)
		if l.Rotation != 0 {
			fmt.Fprintf(buf, ` transform="rotate(%.2f %.2f %.2f)"`, l.Rotation, l.Pos.X, l.Pos.Y)
		}
		fmt.Fprintf(buf, ">%s</text>\n", styles.EscapeXML(l.Text))
	}
	buf.WriteString("  </g>\n")
}

func renderLine(buf *bytes.Buffer, l layout.Line) {
	fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", l.From.X, l.From.Y, l.To.X, l.To.Y)
}

func renderItem(buf *bytes.Buffer, it layout.Item) {
	fmt.Fprintf(buf, `    <g class="%s" id="%s-%s" data-id="%s" data-depth="%d"`,
		it.Kind, it.Kind, styles.EscapeXML(it.ID), styles.EscapeXML(it.ID), it.Depth)
	if it.ParentID != "" {
		fmt.Fprintf(buf, ` data-parent="%s"`, styles.EscapeXML(it.ParentID))
	}
	if it.Expanded {
		buf.WriteString(` data-expanded="true"`)
	}
	buf.WriteString(">\n")

	switch it.Kind {
	case mandala.KindNote:
		fmt.Fprintf(buf, `      <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			it.Center.X, it.Center.Y, it.Width/2, it.Fill, styles.BorderColor)
		renderLines(buf, it)
		renderBadges(buf, it)
	case mandala.KindCharacter:
		fmt.Fprintf(buf, `      <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="#ffffff" stroke-width="2"/>`+"\n",
			it.Center.X, it.Center.Y, it.Width/2, it.Fill)
		if len(it.Text) > 0 {
			fmt.Fprintf(buf, `      <text x="%.2f" y="%.2f" font-size="%.2f" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
				it.Center.X, it.Center.Y+it.Height/2+it.FontSize, it.FontSize, styles.TextColor, styles.EscapeXML(it.Text[0]))
		}
	case mandala.KindImage:
		tl := it.TopLeft()
		fmt.Fprintf(buf, `      <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="#eeeeee"/>`+"\n", tl.X, tl.Y, it.Width, it.Height)
		if it.URL != "" {
			fmt.Fprintf(buf, `      <image href="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" preserveAspectRatio="none"/>`+"\n",
				styles.EscapeXML(it.URL), tl.X, tl.Y, it.Width, it.Height)
		}
		fmt.Fprintf(buf, `      <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
			tl.X, tl.Y, it.Width, it.Height, styles.BorderColor)
	}
	buf.WriteString("    </g>\n")
}

// renderBadges draws one initialed badge per live editor of a note.
func renderBadges(buf *bytes.Buffer, it layout.Item) {
	for _, b := range it.Badges() {
		fmt.Fprintf(buf, `      <g class="editor" data-editor="%s">`, styles.EscapeXML(b.Name))
		fmt.Fprintf(buf, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="#ffffff" stroke-width="1"/>`,
			b.Center.X, b.Center.Y, b.Radius, b.Fill)
		fmt.Fprintf(buf, `<text x="%.2f" y="%.2f" font-size="%.2f" fill="#ffffff" text-anchor="middle" dominant-baseline="central">%s</text>`,
			b.Center.X, b.Center.Y, styles.BadgeFontSize, styles.EscapeXML(b.Initial))
		buf.WriteString("</g>\n")
	}
}

// renderLines centers the wrapped lines of a note on its center, one
// LineHeight apart.
func renderLines(buf *bytes.Buffer, it layout.Item) {
	if len(it.Text) == 0 {
		return
	}
	fmt.Fprintf(buf, `      <text font-size="%.2f" fill="%s" text-anchor="middle" dominant-baseline="central">`,
		it.FontSize, styles.TextColor)
	n := float64(len(it.Text))
	var sb strings.Builder
	for i, line := range it.Text {
		y := it.Center.Y + (float64(i)-(n-1)/2)*it.FontSize*styles.LineHeight
		fmt.Fprintf(&sb, `<tspan x="%.2f" y="%.2f">%s</tspan>`, it.Center.X, y, styles.EscapeXML(line))
	}
	buf.WriteString(sb.String())
	buf.WriteString("</text>\n")
}
