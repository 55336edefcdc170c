// Package fonts provides the Go Regular font for raster and SVG rendering.
//
// The font ships with golang.org/x/image, so it is compiled into the binary
// and both renderers use the same glyphs without any system fonts.
package fonts

import (
	"encoding/base64"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family name the embedded font is declared as.
const FontFamily = "Go"

// RegularTTF returns the TTF font data.
func RegularTTF() []byte {
	return goregular.TTF
}

// Cache for base64-encoded font data (computed once on first access).
var (
	ttfBase64     string
	ttfBase64Once sync.Once
)

// RegularBase64 returns the TTF font data as a base64 string.
func RegularBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return ttfBase64
}

// FaceSource hands out font faces at arbitrary sizes. Faces are cached per
// size. A FaceSource is safe for concurrent use; the faces it returns are
// not.
type FaceSource struct {
	once  sync.Once
	font  *truetype.Font
	err   error
	mu    sync.Mutex
	faces map[float64]font.Face
}

var defaultSource FaceSource

// Face returns the regular face at size points from the shared source.
func Face(size float64) (font.Face, error) {
	return defaultSource.Face(size)
}

// Face returns the regular face at size points.
func (s *FaceSource) Face(size float64) (font.Face, error) {
	s.once.Do(func() {
		s.font, s.err = truetype.Parse(goregular.TTF)
	})
	if s.err != nil {
		return nil, s.err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	if s.faces == nil {
		s.faces = make(map[float64]font.Face)
	}
	f := truetype.NewFace(s.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	s.faces[size] = f
	return f, nil
}
