package canvas

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/fogleman/gg"

	"github.com/matzehuels/mandala/pkg/fonts"
	"github.com/matzehuels/mandala/pkg/layout"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/render/styles"
	"github.com/matzehuels/mandala/pkg/zorder"
)

const (
	guideDash     = 6.0
	guideGap      = 4.0
	highlightWide = 3.0
)

// Draw rasterizes the current scene through the current viewport. The note
// being edited is outlined.
func (c *Canvas) Draw() image.Image {
	var hl []zorder.Entry
	if c.editing != "" {
		hl = append(hl, zorder.Entry{Kind: mandala.KindNote, ID: c.editing})
	}
	img, err := Rasterize(c.Scene(), c.size, c.Viewport(), hl...)
	if err != nil {
		c.logger.Warn("text rendering disabled", "err", err)
	}
	return img
}

// EncodePNG writes the current view as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	var hl []zorder.Entry
	if c.editing != "" {
		hl = append(hl, zorder.Entry{Kind: mandala.KindNote, ID: c.editing})
	}
	dc, err := rasterize(c.Scene(), c.size, c.Viewport(), hl)
	if err != nil {
		c.logger.Warn("text rendering disabled", "err", err)
	}
	return dc.EncodePNG(w)
}

// Rasterize draws s into a size×size image. Stroke widths and dash lengths
// scale with the viewport like the rest of the drawing. Items listed in
// highlight get a thick outline. If the font cannot be loaded the image is
// drawn without text and the error is returned alongside it.
func Rasterize(s *layout.Scene, size int, vp Viewport, highlight ...zorder.Entry) (image.Image, error) {
	dc, err := rasterize(s, size, vp, highlight)
	return dc.Image(), err
}

type rasterizer struct {
	dc    *gg.Context
	scale float64
	text  bool
}

func rasterize(s *layout.Scene, size int, vp Viewport, highlight []zorder.Entry) (*gg.Context, error) {
	dc := gg.NewContext(size, size)
	dc.SetColor(color.White)
	dc.Clear()
	dc.Translate(vp.Offset.X, vp.Offset.Y)
	dc.Scale(vp.Scale, vp.Scale)

	_, fontErr := fonts.Face(styles.LabelFontSize)
	r := &rasterizer{dc: dc, scale: vp.Scale, text: fontErr == nil}

	r.chrome(s)
	for _, it := range s.Items {
		r.item(it)
	}
	for _, e := range highlight {
		if it, ok := s.Item(e); ok {
			r.outline(it)
		}
	}
	return dc, fontErr
}

func (r *rasterizer) lineWidth(w float64) {
	r.dc.SetLineWidth(w * r.scale)
}

func (r *rasterizer) chrome(s *layout.Scene) {
	dc := r.dc
	c := s.Frame.Center
	border := styles.MustHex(styles.BorderColor)

	for _, ring := range s.Rings {
		dc.DrawCircle(c.X, c.Y, ring.Radius)
		dc.SetColor(ring.Fill.NRGBA())
		dc.FillPreserve()
		dc.SetColor(border)
		r.lineWidth(styles.BorderWidth)
		dc.Stroke()
	}

	for _, l := range s.Borders {
		dc.DrawLine(l.From.X, l.From.Y, l.To.X, l.To.Y)
	}
	dc.SetColor(border)
	r.lineWidth(styles.BorderWidth)
	dc.Stroke()

	for _, l := range s.Guides {
		dc.DrawLine(l.From.X, l.From.Y, l.To.X, l.To.Y)
	}
	dc.SetColor(styles.MustHex(styles.GuideColor))
	r.lineWidth(1)
	dc.SetDash(guideDash*r.scale, guideGap*r.scale)
	dc.Stroke()
	dc.SetDash()

	for _, d := range s.Dots {
		dc.DrawCircle(d.X, d.Y, styles.DotRadius)
	}
	dc.SetColor(styles.MustHex(styles.DotColor))
	dc.Fill()

	dc.SetColor(styles.MustHex(styles.LabelColor))
	for _, l := range s.Labels {
		if !r.setFont(l.FontSize) {
			break
		}
		dc.Push()
		dc.RotateAbout(gg.Radians(l.Rotation), l.Pos.X, l.Pos.Y)
		dc.DrawStringAnchored(l.Text, l.Pos.X, l.Pos.Y, 0.5, 0.5)
		dc.Pop()
	}
}

func (r *rasterizer) item(it layout.Item) {
	switch it.Kind {
	case mandala.KindNote:
		r.note(it)
	case mandala.KindCharacter:
		r.character(it)
	case mandala.KindImage:
		r.image(it)
	}
}

func (r *rasterizer) note(it layout.Item) {
	dc := r.dc
	dc.DrawCircle(it.Center.X, it.Center.Y, it.Width/2)
	dc.SetColor(styles.MustHex(it.Fill))
	dc.FillPreserve()
	dc.SetColor(styles.MustHex(styles.BorderColor))
	r.lineWidth(1)
	dc.Stroke()

	if r.setFont(it.FontSize) {
		dc.SetColor(styles.MustHex(styles.TextColor))
		n := float64(len(it.Text))
		for i, line := range it.Text {
			y := it.Center.Y + (float64(i)-(n-1)/2)*it.FontSize*styles.LineHeight
			dc.DrawStringAnchored(line, it.Center.X, y, 0.5, 0.5)
		}
	}
	r.badges(it)
}

func (r *rasterizer) badges(it layout.Item) {
	dc := r.dc
	for _, b := range it.Badges() {
		dc.DrawCircle(b.Center.X, b.Center.Y, b.Radius)
		dc.SetColor(styles.MustHex(b.Fill))
		dc.FillPreserve()
		dc.SetColor(color.White)
		r.lineWidth(1)
		dc.Stroke()
		if r.setFont(styles.BadgeFontSize) {
			dc.DrawStringAnchored(b.Initial, b.Center.X, b.Center.Y, 0.5, 0.5)
		}
	}
}

func (r *rasterizer) character(it layout.Item) {
	dc := r.dc
	dc.DrawCircle(it.Center.X, it.Center.Y, it.Width/2)
	dc.SetColor(styles.MustHex(it.Fill))
	dc.FillPreserve()
	dc.SetColor(color.White)
	r.lineWidth(2)
	dc.Stroke()

	if len(it.Text) == 0 || !r.setFont(it.FontSize) {
		return
	}
	dc.SetColor(styles.MustHex(styles.TextColor))
	dc.DrawStringAnchored(it.Text[0], it.Center.X, it.Center.Y+it.Height/2+it.FontSize, 0.5, 0.5)
}

func (r *rasterizer) image(it layout.Item) {
	dc := r.dc
	tl := it.TopLeft()
	if img, ok := decodeDataURL(it.URL); ok {
		b := img.Bounds()
		dc.Push()
		dc.Translate(tl.X, tl.Y)
		dc.Scale(it.Width/float64(b.Dx()), it.Height/float64(b.Dy()))
		dc.DrawImage(img, -b.Min.X, -b.Min.Y)
		dc.Pop()
	} else {
		dc.DrawRectangle(tl.X, tl.Y, it.Width, it.Height)
		dc.SetColor(color.NRGBA{R: 238, G: 238, B: 238, A: 255})
		dc.Fill()
	}
	dc.DrawRectangle(tl.X, tl.Y, it.Width, it.Height)
	dc.SetColor(styles.MustHex(styles.BorderColor))
	r.lineWidth(1)
	dc.Stroke()
}

func (r *rasterizer) outline(it layout.Item) {
	dc := r.dc
	if it.Kind == mandala.KindImage {
		tl := it.TopLeft()
		dc.DrawRectangle(tl.X, tl.Y, it.Width, it.Height)
	} else {
		dc.DrawCircle(it.Center.X, it.Center.Y, it.Width/2)
	}
	dc.SetColor(styles.MustHex(styles.LabelColor))
	r.lineWidth(highlightWide)
	dc.Stroke()
}

func (r *rasterizer) setFont(size float64) bool {
	if !r.text || size <= 0 {
		return false
	}
	face, err := fonts.Face(size)
	if err != nil {
		return false
	}
	r.dc.SetFontFace(face)
	return true
}

// decodeDataURL decodes an inline base64 PNG or JPEG. Remote URLs are
// never fetched.
func decodeDataURL(u string) (image.Image, bool) {
	if !strings.HasPrefix(u, "data:image/") {
		return nil, false
	}
	i := strings.Index(u, ";base64,")
	if i < 0 {
		return nil, false
	}
	raw, err := base64.StdEncoding.DecodeString(u[i+len(";base64,"):])
	if err != nil {
		return nil, false
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil || img.Bounds().Empty() {
		return nil, false
	}
	return img, true
}
