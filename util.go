package glyphsvg

import (
	"fmt"
	"math"
	"strconv"
)

// ErrUnknownFormat is returned if the file is not a known font container.
var ErrUnknownFormat = fmt.Errorf("unknown font format")

// ErrUnknownBackend is returned if the requested outline backend is not registered.
var ErrUnknownBackend = fmt.Errorf("unknown backend")

// ErrNoOutlines is returned if the font has neither TrueType nor CFF glyph outlines.
var ErrNoOutlines = fmt.Errorf("font has no glyph outlines")

// LoadError is returned when a font cannot be opened, decompressed or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load: %v", e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// WriteError is returned when the output directory or an output file cannot be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// appendNum appends f rounded to prec decimals, without trailing zeros and never as -0. A negative prec rounds to integers.
func appendNum(b []byte, f float64, prec int) []byte {
	if prec < 0 {
		prec = 0
	}
	scale := math.Pow10(prec)
	f = math.Round(f*scale) / scale
	if f == 0 {
		f = 0 // drop sign of -0
	}
	return strconv.AppendFloat(b, f, 'f', -1, 64)
}
