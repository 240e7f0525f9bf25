package glyphsvg

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
)

type seehuhnTable struct {
	font  *sfnt.Font
	runes map[glyph.ID]rune
}

func loadSeehuhn(b []byte, index int) (GlyphTable, error) {
	if index != 0 {
		return nil, fmt.Errorf("font collections are not supported")
	}
	f, err := sfnt.Read(bytes.NewReader(b))
	if err != nil {
		return nil, err
	} else if f.Outlines == nil {
		return nil, ErrNoOutlines
	}
	return &seehuhnTable{font: f}, nil
}

func (t *seehuhnTable) NumGlyphs() uint16 {
	return uint16(t.font.NumGlyphs())
}

func (t *seehuhnTable) UnitsPerEm() uint16 {
	return t.font.UnitsPerEm
}

func (t *seehuhnTable) GlyphName(glyphID uint16) string {
	return t.font.GlyphName(glyph.ID(glyphID))
}

func (t *seehuhnTable) ToUnicode(glyphID uint16) rune {
	if t.runes == nil {
		t.runes = map[glyph.ID]rune{}
		if t.font.CMapTable != nil {
			if subtable, err := t.font.CMapTable.GetBest(); err == nil && subtable != nil {
				low, high := subtable.CodeRange()
				for r := low; r <= high; r++ {
					gid := subtable.Lookup(r)
					if _, ok := t.runes[gid]; gid != 0 && !ok {
						t.runes[gid] = r
					}
				}
			}
		}
	}
	return t.runes[glyph.ID(glyphID)]
}

func (t *seehuhnTable) GlyphPath(p Pather, glyphID uint16) error {
	if int(glyphID) >= t.font.NumGlyphs() {
		return fmt.Errorf("bad glyphID %v", glyphID)
	}
	for cmd, pts := range t.font.Outlines.Path(glyph.ID(glyphID)) {
		switch cmd {
		case path.CmdMoveTo:
			p.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			p.LineTo(pts[0].X, pts[0].Y)
		case path.CmdQuadTo:
			p.QuadTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case path.CmdCubeTo:
			p.CubeTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			p.Close()
		}
	}
	return nil
}
