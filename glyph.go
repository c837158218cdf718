package glcd

// GlyphWidth is the width of a glyph in columns.
const GlyphWidth = 5

// Glyph is a character bitmap, one vertical byte per column with the top row in
// bit 0.
type Glyph [GlyphWidth]byte

// Glyphs looks up the glyph for a rune.
type Glyphs interface {
	Glyph(rune) (Glyph, bool)
}

// GlyphMap is a glyph lookup table.
type GlyphMap map[rune]Glyph

func (m GlyphMap) Glyph(r rune) (Glyph, bool) {
	g, ok := m[r]
	return g, ok
}
