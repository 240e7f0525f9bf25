package glyphsvg

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultNamePattern names output files after the glyph name.
const DefaultNamePattern = "%n"

// maxNameLength keeps file names below common file system limits, including the extension and a deduplication suffix.
const maxNameLength = 200

// FallbackName returns the name used for glyphs whose name pattern cannot be resolved.
func FallbackName(glyphID uint16) string {
	return fmt.Sprintf("glyph%05d", glyphID)
}

// FormatName expands a glyph name pattern. Available variables: %i glyph ID, %n glyph name, %u glyph unicode in hexadecimal, %c glyph character, %% a literal percent sign. It returns false when the glyph has no name or unicode mapping required by the pattern.
func FormatName(pattern string, t GlyphTable, glyphID uint16) (string, bool) {
	newName := &strings.Builder{}
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if i+1 < len(pattern) && c == '%' {
			i++
			switch pattern[i] {
			case '%':
				newName.WriteByte('%')
			case 'i':
				fmt.Fprintf(newName, "%d", glyphID)
			case 'n':
				glyphName := t.GlyphName(glyphID)
				if glyphName == "" {
					return "", false
				}
				newName.WriteString(glyphName)
			case 'u', 'c':
				r := t.ToUnicode(glyphID)
				if r == 0 {
					return "", false
				} else if pattern[i] == 'u' {
					fmt.Fprintf(newName, "%x", r)
				} else {
					newName.WriteRune(r)
				}
			default:
				newName.WriteByte('%')
				newName.WriteByte(pattern[i])
			}
		} else {
			newName.WriteByte(c)
		}
	}
	return newName.String(), true
}

var sanitizer = transform.Chain(norm.NFC, runes.Map(func(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_' {
		return r
	}
	return '_'
}))

// SanitizeName makes a name safe to use as a file name. It returns an empty string when nothing usable remains.
func SanitizeName(name string) string {
	name, _, err := transform.String(sanitizer, name)
	if err != nil {
		return ""
	}
	if maxNameLength < len(name) {
		n := maxNameLength
		for 0 < n && !utf8.RuneStart(name[n]) {
			n--
		}
		name = name[:n]
	}
	if name == "." || name == ".." {
		return ""
	}
	return name
}

// namer hands out unique file names within a single run. Names are compared case-folded, since A.svg and a.svg are the same file on case-insensitive file systems.
type namer struct {
	pattern string
	fold    cases.Caser
	used    map[string]bool
}

func newNamer(pattern string) *namer {
	if pattern == "" {
		pattern = DefaultNamePattern
	}
	return &namer{
		pattern: pattern,
		fold:    cases.Fold(),
		used:    map[string]bool{},
	}
}

// Name returns a unique, sanitized name for the glyph. It returns false when the pattern could not be resolved and the fallback name was used.
func (n *namer) Name(t GlyphTable, glyphID uint16) (string, bool) {
	name, ok := FormatName(n.pattern, t, glyphID)
	if ok {
		name = SanitizeName(name)
	}
	if !ok || name == "" {
		name, ok = FallbackName(glyphID), false
	}
	for n.used[n.fold.String(name)] {
		name = fmt.Sprintf("%s_%d", name, glyphID)
	}
	n.used[n.fold.String(name)] = true
	return name, ok
}
