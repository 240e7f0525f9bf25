package glyphsvg

import (
	"github.com/tdewolff/font"
)

type sfntTable struct {
	sfnt *font.SFNT
}

func loadSFNT(b []byte, index int) (GlyphTable, error) {
	sfnt, err := font.ParseSFNT(b, index)
	if err != nil {
		return nil, err
	} else if !sfnt.IsTrueType && !sfnt.IsCFF {
		return nil, ErrNoOutlines
	}
	return &sfntTable{sfnt}, nil
}

func (t *sfntTable) NumGlyphs() uint16 {
	return t.sfnt.NumGlyphs()
}

func (t *sfntTable) UnitsPerEm() uint16 {
	return t.sfnt.Head.UnitsPerEm
}

func (t *sfntTable) GlyphName(glyphID uint16) string {
	if t.sfnt.Post == nil {
		return ""
	}
	return t.sfnt.GlyphName(glyphID)
}

func (t *sfntTable) ToUnicode(glyphID uint16) rune {
	if t.sfnt.Cmap == nil {
		return 0
	}
	return t.sfnt.Cmap.ToUnicode(glyphID)
}

func (t *sfntTable) GlyphPath(p Pather, glyphID uint16) error {
	return t.sfnt.GlyphPath(p, glyphID, 0, 0.0, 0.0, 1.0, font.NoHinting)
}
