package styles

import (
	"bytes"
	"encoding/xml"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	fontSizeRatio = 0.16
	fontSizeMin   = 4.0
	fontSizeMax   = 18.0

	// LineHeight is the distance between baselines as a multiple of the
	// font size.
	LineHeight = 1.2

	ellipsis = "…"
)

// FontFamily is the font stack used by both renderers. The first family is
// embedded into exported documents.
const FontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`

// Per-rune advance widths in ems.
const (
	widthNarrow  = 0.28
	widthSpace   = 0.28
	widthDigit   = 0.56
	widthLower   = 0.52
	widthUpper   = 0.66
	widthWide    = 0.86
	widthDefault = 0.58
)

// RuneWidth returns the estimated advance of r in ems.
func RuneWidth(r rune) float64 {
	switch {
	case strings.ContainsRune("iljI.,;:'!|`", r):
		return widthNarrow
	case strings.ContainsRune("mwMW@%", r):
		return widthWide
	case r == ' ':
		return widthSpace
	case unicode.IsDigit(r):
		return widthDigit
	case unicode.IsUpper(r):
		return widthUpper
	case unicode.IsLower(r):
		return widthLower
	default:
		return widthDefault
	}
}

// EstimateWidth returns the width of s rendered at fontSize.
func EstimateWidth(s string, fontSize float64) float64 {
	var em float64
	for _, r := range s {
		em += RuneWidth(r)
	}
	return em * fontSize
}

// NoteFontSize returns the font size for a note of the given diameter.
func NoteFontSize(diameter float64) float64 {
	return max(fontSizeMin, min(fontSizeMax, diameter*fontSizeRatio))
}

// MaxLines returns how many lines of text fit in a note of the given
// diameter at fontSize. At least one line is always allowed.
func MaxLines(diameter, fontSize float64) int {
	n := int(math.Floor(TextBox(diameter) / (fontSize * LineHeight)))
	return max(1, n)
}

// Wrap breaks text into lines no wider than maxWidth at fontSize. Words
// longer than a line are split between runes. Explicit newlines start a new
// line. If more than maxLines lines are needed the last kept line ends with
// an ellipsis. maxLines ≤ 0 means unlimited.
func Wrap(text string, maxWidth, fontSize float64, maxLines int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, maxWidth, fontSize)...)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = withEllipsis(lines[maxLines-1], maxWidth, fontSize)
	}
	return lines
}

func wrapParagraph(para string, maxWidth, fontSize float64) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	var cur string
	for _, w := range words {
		candidate := w
		if cur != "" {
			candidate = cur + " " + w
		}
		if EstimateWidth(candidate, fontSize) <= maxWidth {
			cur = candidate
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
			cur = ""
		}
		for EstimateWidth(w, fontSize) > maxWidth {
			head, tail := splitAt(w, maxWidth, fontSize)
			lines = append(lines, head)
			w = tail
		}
		cur = w
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// splitAt returns the longest prefix of w that fits, always at least one
// rune, and the remainder.
func splitAt(w string, maxWidth, fontSize float64) (string, string) {
	var width float64
	for i, r := range w {
		width += RuneWidth(r) * fontSize
		if width > maxWidth {
			if i == 0 {
				_, size := utf8.DecodeRuneInString(w)
				return w[:size], w[size:]
			}
			return w[:i], w[i:]
		}
	}
	return w, ""
}

func withEllipsis(line string, maxWidth, fontSize float64) string {
	for line != "" && EstimateWidth(line+ellipsis, fontSize) > maxWidth {
		_, size := utf8.DecodeLastRuneInString(line)
		line = line[:len(line)-size]
	}
	return strings.TrimRight(line, " ") + ellipsis
}

// EscapeXML escapes s for use in XML text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
