package glyphsvg

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestFormatName(t *testing.T) {
	table := newTestTable()
	var tests = []struct {
		pattern  string
		glyphID  uint16
		expected string
		ok       bool
	}{
		{"%n", 2, "A", true},
		{"%i", 2, "2", true},
		{"%u", 2, "41", true},
		{"%c", 4, "é", true},
		{"%n-%u", 2, "A-41", true},
		{"100%%_%n", 2, "100%_A", true},
		{"%x%n%", 2, "%xA%", true},
		{"%n", 4, "", false},
		{"%u", 0, "", false},
		{"plain", 0, "plain", true},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			name, ok := FormatName(tt.pattern, table, tt.glyphID)
			test.T(t, ok, tt.ok)
			test.T(t, name, tt.expected)
		})
	}
}

func TestSanitizeName(t *testing.T) {
	var tests = []struct {
		name     string
		expected string
	}{
		{"A", "A"},
		{".notdef", ".notdef"},
		{"uni00A0", "uni00A0"},
		{"f_f_i.liga", "f_f_i.liga"},
		{"a/b\\c", "a_b_c"},
		{"sp ace", "sp_ace"},
		{"100%", "100_"},
		{"é", "é"}, // NFC
		{"ü", "ü"},
		{".", ""},
		{"..", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.T(t, SanitizeName(tt.name), tt.expected)
		})
	}

	long := SanitizeName(strings.Repeat("é", 150))
	test.That(t, len(long) <= maxNameLength)
	test.T(t, long, strings.Repeat("é", maxNameLength/2))
}

func TestNamerUnique(t *testing.T) {
	table := testTable{
		{name: "a"},
		{name: "a"},
		{name: "a_1"},
		{name: "a/"},
		{name: ".."},
		{},
	}
	n := newNamer("")
	names := []string{}
	for i := range table {
		name, _ := n.Name(table, uint16(i))
		names = append(names, name)
	}
	test.T(t, names, []string{"a", "a_1", "a_1_2", "a_", "glyph00004", "glyph00005"})

	_, ok := n.Name(table, 5)
	test.That(t, !ok)
	_, ok = n.Name(table, 0)
	test.That(t, ok)
}

func TestNamerCaseInsensitive(t *testing.T) {
	table := testTable{
		{name: "a"},
		{name: "A"},
		{name: "A_1"},
		{name: "ß"},
		{name: "SS"},
	}
	n := newNamer("")
	names := []string{}
	for i := range table {
		name, _ := n.Name(table, uint16(i))
		names = append(names, name)
	}
	test.T(t, names, []string{"a", "A_1", "A_1_2", "ß", "SS_4"})
}

func TestFallbackName(t *testing.T) {
	test.T(t, FallbackName(0), "glyph00000")
	test.T(t, FallbackName(65535), "glyph65535")
}
