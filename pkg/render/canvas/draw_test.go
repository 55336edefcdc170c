package canvas

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"

	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/render/styles"
	"github.com/matzehuels/mandala/pkg/zorder"
)

func TestDraw(t *testing.T) {
	m := mandala.New("m1")
	m.Notes = []mandala.Note{{ID: "n", Content: "a note with several words", Dimension: "Ecology"}}
	m.Characters = []mandala.Character{{ID: "c", Name: "Ada", Color: "#ff0000", Position: geometry.Point{X: 0.3}}}
	m.Images = []mandala.Image{{ID: "i", URL: "https://example.com/x.png"}}
	c := New(m, WithSize(200))

	img := c.Draw()
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("bounds = %v", b)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Error("corner outside the mandala should be white")
	}
	r, g, b, _ = img.At(100, 30).RGBA()
	if r>>8 == 255 && g>>8 == 255 && b>>8 == 255 {
		t.Error("inside the outer ring should be tinted")
	}
}

func TestDrawEditorBadge(t *testing.T) {
	m := mandala.New("m1")
	m.Notes = []mandala.Note{{ID: "n", Editors: []string{"ana"}}}
	c := New(m, WithSize(frameSize))

	it, _ := c.Scene().Item(zorder.Entry{Kind: mandala.KindNote, ID: "n"})
	b := it.Badges()[0]
	img := c.Draw()

	want := styles.MustHex(b.Fill)
	px := img.At(int(b.Center.X-b.Radius/2), int(b.Center.Y))
	r, g, bl, _ := px.RGBA()
	if diff(r>>8, want.R) > 8 || diff(g>>8, want.G) > 8 || diff(bl>>8, want.B) > 8 {
		t.Errorf("badge pixel = %v, want %v", px, want)
	}
}

func diff(a uint32, b uint8) uint32 {
	if a > uint32(b) {
		return a - uint32(b)
	}
	return uint32(b) - a
}

func TestEncodePNG(t *testing.T) {
	c := New(mandala.New("m1"), WithSize(64))
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 64 {
		t.Errorf("width = %d", img.Bounds().Dx())
	}
}

func TestDecodeDataURL(t *testing.T) {
	c := New(mandala.New("m1"), WithSize(8))
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	url := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	img, ok := decodeDataURL(url)
	if !ok || img.Bounds().Dx() != 8 {
		t.Fatalf("decodeDataURL failed: ok=%v", ok)
	}
	if _, ok := decodeDataURL("https://example.com/a.png"); ok {
		t.Error("remote URLs must not be decoded")
	}
	if _, ok := decodeDataURL("data:image/png;base64,!!!"); ok {
		t.Error("invalid base64 must fail")
	}
}

func TestRingFillUsesPalette(t *testing.T) {
	c := New(mandala.New("m1"), WithSize(int(frameSize)))
	img := c.Draw()
	inner := styles.RingInner.NRGBA()
	// A point inside the first ring, away from borders and guides.
	px := img.At(int(frameSize/2)+70, int(frameSize/2)+20)
	r, g, b, _ := px.RGBA()
	if uint8(r>>8) != inner.R || uint8(g>>8) != inner.G || uint8(b>>8) != inner.B {
		t.Errorf("inner ring pixel = %v, want %v", px, inner)
	}
}
