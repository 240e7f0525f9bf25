// Package glyphsvg extracts the glyph outlines of TTF, OTF, WOFF, WOFF2, and EOT fonts into one SVG file per glyph.
package glyphsvg

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/tdewolff/font"
	"github.com/tdewolff/parse/v2"
)

// GlyphTable is a loaded font resource giving access to its glyph outlines. Glyph IDs run from 0 to NumGlyphs()-1.
type GlyphTable interface {
	NumGlyphs() uint16
	UnitsPerEm() uint16

	// GlyphName returns the name of the glyph. It returns an empty string when no name exists.
	GlyphName(glyphID uint16) string

	// ToUnicode returns the character the glyph is mapped to, or 0 when the glyph is unmapped.
	ToUnicode(glyphID uint16) rune

	// GlyphPath draws the glyph's contour in font design units, with the Y axis pointing up.
	GlyphPath(p Pather, glyphID uint16) error
}

// GlyphOutline records the outline of a glyph.
func GlyphOutline(t GlyphTable, glyphID uint16) (Outline, error) {
	outline := Outline{}
	if err := t.GlyphPath(&outline, glyphID); err != nil {
		return nil, err
	}
	return outline, nil
}

// Backend parses SFNT data (TTF, OTF, TTC) into a glyph table. The index selects a font from a collection.
type Backend func(b []byte, index int) (GlyphTable, error)

// DefaultBackend is used when LoadOptions.Backend is empty.
const DefaultBackend = "tdewolff"

// Backends are the registered outline decoders by name.
var Backends = map[string]Backend{
	"tdewolff": loadSFNT,
	"x/image":  loadXImage,
	"seehuhn":  loadSeehuhn,
}

// BackendNames returns the sorted names of the registered backends.
func BackendNames() []string {
	names := make([]string, 0, len(Backends))
	for name := range Backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadOptions selects how a font is decoded.
type LoadOptions struct {
	Backend string // name in Backends, defaults to DefaultBackend
	Index   int    // font index for font collections
}

// Load reads a font file (TTF, OTF, TTC, WOFF, WOFF2, or EOT) and returns its glyph table.
func Load(filename string, options LoadOptions) (GlyphTable, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, &LoadError{Path: filename, Err: err}
	}
	t, err := Decode(b, options)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) && loadErr.Path == "" {
			loadErr.Path = filename
		}
		return nil, err
	}
	return t, nil
}

// Decode decompresses a font container and returns its glyph table.
func Decode(b []byte, options LoadOptions) (GlyphTable, error) {
	name := options.Backend
	if name == "" {
		name = DefaultBackend
	}
	backend, ok := Backends[name]
	if !ok {
		return nil, &LoadError{Err: fmt.Errorf("%w: %v", ErrUnknownBackend, name)}
	}

	if _, err := Inspect(b); err != nil {
		return nil, &LoadError{Err: err}
	}
	b, err := font.ToSFNT(b)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	t, err := backend(b, options.Index)
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("%v: %w", name, err)}
	}
	return t, nil
}

// Container describes the header of a font file.
type Container struct {
	MediaType string // eg. font/woff2
	Signature string // first four bytes of the file
	Flavor    string // TrueType, CFF, or Collection
	NumTables uint16 // number of tables, or number of fonts for collections
	Length    uint32 // declared total length for WOFF and WOFF2, file size otherwise
}

func sfntFlavor(tag string) string {
	switch tag {
	case "\x00\x01\x00\x00", "true":
		return "TrueType"
	case "OTTO":
		return "CFF"
	case "ttcf":
		return "Collection"
	}
	return ""
}

// Inspect reads the container header of a font file without decompressing it.
func Inspect(b []byte) (Container, error) {
	if len(b) < 12 {
		return Container{}, ErrUnknownFormat
	}
	mimetype, err := font.MediaType(b)
	if err != nil {
		return Container{}, fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	} else if mimetype == "" {
		return Container{}, ErrUnknownFormat
	}

	c := Container{
		MediaType: mimetype,
		Length:    uint32(len(b)),
	}
	r := parse.NewBinaryReader(b)
	c.Signature = r.ReadString(4)
	switch c.Signature {
	case "wOFF", "wOF2":
		c.Flavor = sfntFlavor(r.ReadString(4))
		c.Length = r.ReadUint32()
		c.NumTables = r.ReadUint16()
	case "ttcf":
		c.Flavor = sfntFlavor(c.Signature)
		_ = r.ReadUint32() // majorVersion and minorVersion
		c.NumTables = uint16(r.ReadUint32())
	default:
		if flavor := sfntFlavor(c.Signature); flavor != "" {
			c.Flavor = flavor
			c.NumTables = r.ReadUint16()
		} else {
			// EOT starts with its little-endian size
			c.Signature = ""
			if 36 <= len(b) {
				rLE := parse.NewBinaryReaderLE(b)
				_ = rLE.ReadBytes(8) // EOTSize and FontDataSize
				if version := rLE.ReadUint32(); version == 0x00010000 || version == 0x00020001 || version == 0x00020002 {
					c.Signature = "EOT"
				}
			}
		}
	}
	return c, nil
}
