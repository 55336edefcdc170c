package styles

const (
	// NoteBaseSize is the diameter of a note at render scale 1.
	NoteBaseSize = 70.0

	// TextPadding is the fraction of a note's diameter kept free of text
	// on each side.
	TextPadding = 0.15

	// ExpandFactor multiplies the render scale of an expanded note. Its
	// children orbit inside the enlarged body and are drawn above it.
	ExpandFactor = 1.6

	// CharacterSize is the diameter of a character token.
	CharacterSize = 36.0

	// ImageBaseSize is the edge length of an image at scale 1.
	ImageBaseSize = 120.0

	// Margin is the space around the outer ring reserved for labels.
	Margin = 70.0

	// LabelOffset is the distance of sector labels outside the outer ring.
	LabelOffset = 28.0

	// LabelFontSize is the font size of sector labels.
	LabelFontSize = 16.0

	// ScaleLabelFontSize is the font size of the ring names drawn along the
	// vertical axis.
	ScaleLabelFontSize = 11.0

	// CharacterFontSize is the font size of character name tags.
	CharacterFontSize = 11.0

	// DotRadius is the radius of the dots drawn where rings and wedge
	// borders cross.
	DotRadius = 3.0

	// BorderWidth is the stroke width of ring and wedge borders.
	BorderWidth = 1.5

	// BadgeSize is the diameter of the badge shown for each live editor of
	// a note.
	BadgeSize = 14.0

	// BadgeFontSize is the font size of a badge's initial.
	BadgeFontSize = 8.0
)

// TextBox returns the width available to text inside a note of the given
// diameter.
func TextBox(diameter float64) float64 {
	return diameter * (1 - 2*TextPadding)
}
