package glyphsvg

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

type testGlyph struct {
	name    string
	r       rune
	outline Outline
	err     error
}

type testTable []testGlyph

func (t testTable) NumGlyphs() uint16 { return uint16(len(t)) }
func (t testTable) UnitsPerEm() uint16 { return 1000 }
func (t testTable) GlyphName(glyphID uint16) string { return t[glyphID].name }
func (t testTable) ToUnicode(glyphID uint16) rune { return t[glyphID].r }

func (t testTable) GlyphPath(p Pather, glyphID uint16) error {
	if int(glyphID) >= len(t) {
		return fmt.Errorf("bad glyphID %v", glyphID)
	} else if t[glyphID].err != nil {
		return t[glyphID].err
	}
	t[glyphID].outline.Replay(p)
	return nil
}

func box(x0, y0, x1, y1 float64) Outline {
	o := Outline{}
	o.MoveTo(x0, y0)
	o.LineTo(x1, y0)
	o.LineTo(x1, y1)
	o.LineTo(x0, y1)
	o.Close()
	return o
}

func triangle() Outline {
	o := Outline{}
	o.MoveTo(0, 0)
	o.LineTo(600, 0)
	o.QuadTo(300, 900, 0, 0)
	o.Close()
	return o
}

func newTestTable() testTable {
	return testTable{
		{name: ".notdef", outline: box(50, -100, 450, 700)},
		{name: "space", r: ' '},
		{name: "A", r: 'A', outline: triangle()},
		{name: "A", outline: box(0, 0, 10, 10)},  // duplicate name
		{r: 'é', outline: box(-20, -20, 20, 20)}, // unnamed
	}
}

func readDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	test.Error(t, err)
	names := []string{}
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

func TestExtract(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "glyphs")
	table := newTestTable()

	res, err := Extract(table, dir, DefaultOptions)
	test.Error(t, err)
	test.T(t, len(res.Files), len(table))
	test.T(t, res.Skipped, 0)
	test.T(t, res.Failed, 0)
	test.T(t, res.Files[0], filepath.Join(dir, ".notdef.svg"))
	test.T(t, readDir(t, dir), []string{".notdef.svg", "A.svg", "A_3.svg", "glyph00004.svg", "space.svg"})

	var total int64
	for _, filename := range res.Files {
		b, err := os.ReadFile(filename)
		test.Error(t, err)
		total += int64(len(b))

		w, h, coords := parseSVG(t, string(b))
		for i := 0; i < len(coords); i += 2 {
			test.That(t, 0.0 <= coords[i] && coords[i] <= w, filename)
			test.That(t, 0.0 <= coords[i+1] && coords[i+1] <= h, filename)
		}
	}
	test.T(t, res.Bytes, total)

	b, err := os.ReadFile(filepath.Join(dir, "space.svg"))
	test.Error(t, err)
	test.T(t, string(b), string(EncodeSVG(nil, DefaultOptions.Margin, DefaultOptions.Precision)))

	b, err = os.ReadFile(filepath.Join(dir, "A.svg"))
	test.Error(t, err)
	test.T(t, string(b), `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 620 920" width="620" height="920">
<path d="M10 910L610 910Q310 10 10 910Z"/>
</svg>
`)
}

func TestExtractIdempotent(t *testing.T) {
	dir := t.TempDir()
	table := newTestTable()

	res, err := Extract(table, dir, DefaultOptions)
	test.Error(t, err)
	first := map[string][]byte{}
	for _, filename := range res.Files {
		b, err := os.ReadFile(filename)
		test.Error(t, err)
		first[filename] = b
	}

	res2, err := Extract(table, dir, DefaultOptions)
	test.Error(t, err)
	test.T(t, res2.Files, res.Files)
	for _, filename := range res2.Files {
		b, err := os.ReadFile(filename)
		test.Error(t, err)
		test.That(t, bytes.Equal(b, first[filename]), filename)
	}
	test.T(t, len(readDir(t, dir)), len(table))
}

func TestExtractNamePattern(t *testing.T) {
	dir := t.TempDir()
	options := DefaultOptions
	options.NamePattern = "u%u"
	buf := &bytes.Buffer{}
	options.Warning = log.New(buf, "", 0)

	res, err := Extract(newTestTable(), dir, options)
	test.Error(t, err)
	test.T(t, len(res.Files), 5)
	test.T(t, readDir(t, dir), []string{"glyph00000.svg", "glyph00003.svg", "u20.svg", "u41.svg", "ue9.svg"})
	test.T(t, strings.Count(buf.String(), "missing glyph name"), 2)
}

func TestExtractSkipEmpty(t *testing.T) {
	dir := t.TempDir()
	options := DefaultOptions
	options.SkipEmpty = true

	res, err := Extract(newTestTable(), dir, options)
	test.Error(t, err)
	test.T(t, res.Skipped, 1)
	test.T(t, len(res.Files), 4)
	test.T(t, readDir(t, dir), []string{".notdef.svg", "A.svg", "A_3.svg", "glyph00004.svg"})
}

func TestExtractMinify(t *testing.T) {
	dir := t.TempDir()
	options := DefaultOptions
	options.Minify = true

	res, err := Extract(newTestTable(), dir, options)
	test.Error(t, err)
	test.T(t, len(res.Files), 5)

	b, err := os.ReadFile(filepath.Join(dir, "A.svg"))
	test.Error(t, err)
	test.That(t, bytes.HasPrefix(b, []byte("<svg")), string(b))
	test.That(t, bytes.Contains(b, []byte("<path")), string(b))
	test.That(t, len(b) <= len(EncodeSVG(triangle(), options.Margin, options.Precision)), string(b))
}

func TestExtractDirectoryError(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file")
	test.Error(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := Extract(newTestTable(), filepath.Join(file, "glyphs"), DefaultOptions)
	var writeErr *WriteError
	test.That(t, errors.As(err, &writeErr), err)
	test.T(t, writeErr.Path, filepath.Join(file, "glyphs"))
}

func TestExtractFileError(t *testing.T) {
	dir := t.TempDir()
	test.Error(t, os.Mkdir(filepath.Join(dir, "A.svg"), 0755)) // directory in the way

	res, err := Extract(newTestTable(), dir, DefaultOptions)
	var writeErr *WriteError
	test.That(t, errors.As(err, &writeErr), err)
	test.T(t, writeErr.Path, filepath.Join(dir, "A.svg"))
	test.T(t, len(res.Files), 2) // aborted

	buf := &bytes.Buffer{}
	options := DefaultOptions
	options.KeepGoing = true
	options.Warning = log.New(buf, "WARNING: ", 0)
	res, err = Extract(newTestTable(), dir, options)
	test.That(t, errors.As(err, &writeErr), err)
	test.T(t, res.Failed, 1)
	test.T(t, len(res.Files), 4)
	test.That(t, strings.Contains(buf.String(), "WARNING: write "), buf.String())
}

func TestExtractGlyphError(t *testing.T) {
	dir := t.TempDir()
	table := newTestTable()
	table[2].err = fmt.Errorf("bad contour")

	res, err := Extract(table, dir, DefaultOptions)
	var loadErr *LoadError
	test.That(t, errors.As(err, &loadErr), err)
	test.T(t, err.Error(), "load: glyph 2: bad contour")
	test.T(t, len(res.Files), 2)

	options := DefaultOptions
	options.KeepGoing = true
	res, err = Extract(table, t.TempDir(), options)
	test.That(t, errors.As(err, &loadErr), err)
	test.T(t, res.Failed, 1)
	test.T(t, len(res.Files), 4)
}
