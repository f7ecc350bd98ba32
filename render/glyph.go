package render

// Glyph dimensions in cells
const (
	GlyphColumns = 3
	GlyphRows    = 5
	GlyphCells   = GlyphColumns * GlyphRows
)

// Glyph is a row-major 3x5 bitmap, 1 = filled cell
type Glyph [GlyphCells]uint8

// glyphs holds digits 0-3, the reachable scores before a match restart
var glyphs = [...]Glyph{
	{
		1, 1, 1,
		1, 0, 1,
		1, 0, 1,
		1, 0, 1,
		1, 1, 1,
	},
	{
		1, 1, 0,
		0, 1, 0,
		0, 1, 0,
		0, 1, 0,
		1, 1, 1,
	},
	{
		1, 1, 1,
		0, 0, 1,
		1, 1, 1,
		1, 0, 0,
		1, 1, 1,
	},
	{
		1, 1, 1,
		0, 0, 1,
		0, 1, 1,
		0, 0, 1,
		1, 1, 1,
	},
}

// GlyphFor returns a copy of the digit's bitmap and whether the digit is drawable
func GlyphFor(digit int) (Glyph, bool) {
	if digit < 0 || digit >= len(glyphs) {
		return Glyph{}, false
	}
	return glyphs[digit], true
}
