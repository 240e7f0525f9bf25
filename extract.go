package glyphsvg

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

// Options are the glyph writer options.
type Options struct {
	Margin      float64     // margin around the glyph bounds in font units
	Precision   int         // number of decimals of coordinates
	NamePattern string      // see FormatName
	SkipEmpty   bool        // do not write glyphs without outline
	KeepGoing   bool        // log failed glyphs and continue, instead of aborting
	Minify      bool        // minify the SVG documents
	Warning     *log.Logger // optional
}

// DefaultOptions are the default glyph writer options.
var DefaultOptions = Options{
	Margin:      10.0,
	Precision:   2,
	NamePattern: DefaultNamePattern,
}

func (o Options) warnf(format string, args ...any) {
	if o.Warning != nil {
		o.Warning.Printf(format, args...)
	}
}

// Result summarizes an extraction.
type Result struct {
	Files   []string // written files in glyph order
	Skipped int      // empty glyphs skipped
	Failed  int      // glyphs that failed with KeepGoing
	Bytes   int64    // total bytes written
}

// Convert loads the font file and writes one SVG file per glyph into dir. Nothing is written when the font cannot be loaded.
func Convert(input, dir string, loadOptions LoadOptions, options Options) (*Result, error) {
	t, err := Load(input, loadOptions)
	if err != nil {
		return nil, err
	}
	return Extract(t, dir, options)
}

// Extract writes one SVG file per glyph into dir, iterating over the glyphs in table order. The directory is created if it does not exist and existing files are overwritten. Unless KeepGoing is set, the first error aborts the run. Errors are of type *LoadError when a glyph outline cannot be decoded, and *WriteError when a file cannot be written.
func Extract(t GlyphTable, dir string, options Options) (*Result, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &WriteError{Path: dir, Err: err}
	}

	var m *minify.M
	if options.Minify {
		m = minify.New()
		m.AddFunc(SVGMimetype, svg.Minify)
	}

	res := &Result{}
	names := newNamer(options.NamePattern)
	var errs []error
	for i := 0; i < int(t.NumGlyphs()); i++ {
		glyphID := uint16(i)
		filename, n, err := writeGlyph(t, glyphID, dir, names, m, options)
		if err != nil {
			if !options.KeepGoing {
				return res, err
			}
			options.warnf("%v", err)
			errs = append(errs, err)
			res.Failed++
			continue
		} else if filename == "" {
			res.Skipped++
			continue
		}
		res.Files = append(res.Files, filename)
		res.Bytes += int64(n)
	}
	return res, errors.Join(errs...)
}

// writeGlyph returns an empty filename when the glyph was skipped.
func writeGlyph(t GlyphTable, glyphID uint16, dir string, names *namer, m *minify.M, options Options) (string, int, error) {
	outline, err := GlyphOutline(t, glyphID)
	if err != nil {
		return "", 0, &LoadError{Err: fmt.Errorf("glyph %d: %w", glyphID, err)}
	} else if options.SkipEmpty && outline.Empty() {
		return "", 0, nil
	}

	name, ok := names.Name(t, glyphID)
	if !ok {
		options.warnf("missing glyph name or unicode mapping for glyph %d, using %s", glyphID, name)
	}
	filename := filepath.Join(dir, name+".svg")

	b := EncodeSVG(outline, options.Margin, options.Precision)
	if m != nil {
		if b, err = m.Bytes(SVGMimetype, b); err != nil {
			return "", 0, &WriteError{Path: filename, Err: err}
		}
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return "", 0, &WriteError{Path: filename, Err: err}
	}
	return filename, len(b), nil
}
