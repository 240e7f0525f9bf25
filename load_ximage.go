package glyphsvg

import (
	"fmt"
	"unicode"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageTable loads glyphs at one pixel per design unit, so that 26.6 fixed-point coordinates map back to design units.
type ximageTable struct {
	font  *sfnt.Font
	buf   sfnt.Buffer
	ppem  fixed.Int26_6
	upem  uint16
	runes map[uint16]rune
}

func loadXImage(b []byte, index int) (GlyphTable, error) {
	var f *sfnt.Font
	if 4 <= len(b) && string(b[:4]) == "ttcf" {
		c, err := sfnt.ParseCollection(b)
		if err != nil {
			return nil, err
		} else if index < 0 || c.NumFonts() <= index {
			return nil, fmt.Errorf("font index %d out of range", index)
		}
		if f, err = c.Font(index); err != nil {
			return nil, err
		}
	} else if index != 0 {
		return nil, fmt.Errorf("font index %d out of range", index)
	} else {
		var err error
		if f, err = sfnt.Parse(b); err != nil {
			return nil, err
		}
	}

	upem := uint16(f.UnitsPerEm())
	return &ximageTable{
		font: f,
		ppem: fixed.I(int(upem)),
		upem: upem,
	}, nil
}

func (t *ximageTable) NumGlyphs() uint16 {
	return uint16(t.font.NumGlyphs())
}

func (t *ximageTable) UnitsPerEm() uint16 {
	return t.upem
}

func (t *ximageTable) GlyphName(glyphID uint16) string {
	name, err := t.font.GlyphName(&t.buf, sfnt.GlyphIndex(glyphID))
	if err != nil {
		return ""
	}
	return name
}

func (t *ximageTable) ToUnicode(glyphID uint16) rune {
	if t.runes == nil {
		// reverse lookup of all code points, keeping the lowest one per glyph
		t.runes = map[uint16]rune{}
		for r := rune(1); r <= unicode.MaxRune; r++ {
			if 0xD800 <= r && r <= 0xDFFF {
				continue
			}
			glyphIndex, err := t.font.GlyphIndex(&t.buf, r)
			if err != nil || glyphIndex == 0 {
				continue
			} else if _, ok := t.runes[uint16(glyphIndex)]; !ok {
				t.runes[uint16(glyphIndex)] = r
			}
		}
	}
	return t.runes[glyphID]
}

func (t *ximageTable) GlyphPath(p Pather, glyphID uint16) error {
	segments, err := t.font.LoadGlyph(&t.buf, sfnt.GlyphIndex(glyphID), t.ppem, nil)
	if err != nil {
		return err
	}

	// LoadGlyph has its Y axis pointing down and leaves contours implicitly closed
	open := false
	for _, segment := range segments {
		a := segment.Args
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(fromFixed(a[0].X), -fromFixed(a[0].Y))
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(fromFixed(a[0].X), -fromFixed(a[0].Y))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(fromFixed(a[0].X), -fromFixed(a[0].Y), fromFixed(a[1].X), -fromFixed(a[1].Y))
		case sfnt.SegmentOpCubeTo:
			p.CubeTo(fromFixed(a[0].X), -fromFixed(a[0].Y), fromFixed(a[1].X), -fromFixed(a[1].Y), fromFixed(a[2].X), -fromFixed(a[2].Y))
		}
	}
	if open {
		p.Close()
	}
	return nil
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
