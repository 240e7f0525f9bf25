package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/tdewolff/glyphsvg"
)

type Extract struct {
	Quiet     bool    `short:"q" desc:"Suppress output except for errors."`
	Verbose   bool    `short:"v" desc:"Print every written file."`
	Index     int     `short:"i" desc:"Index into font collection (used with TTC or OTC)."`
	Backend   string  `short:"b" desc:"Glyph outline decoder: seehuhn, tdewolff, or x/image." default:"tdewolff"`
	Name      string  `short:"n" desc:"Output file name pattern. Available variables: %i glyph ID, %n glyph name, %u glyph unicode in hexadecimal, %c glyph character." default:"%n"`
	Margin    float64 `short:"m" desc:"Margin around the glyph bounds in font units." default:"10"`
	Precision int     `short:"p" desc:"Number of decimals of coordinates." default:"2"`
	SkipEmpty bool    `name:"skip-empty" desc:"Do not write files for glyphs without outline, such as space."`
	KeepGoing bool    `short:"k" name:"keep-going" desc:"Log glyphs that fail and continue with the next one."`
	Minify    bool    `desc:"Minify SVG output."`
	Input     string  `index:"0" desc:"Input font file."`
	Output    string  `index:"1" desc:"Output directory."`
}

const usage = "usage: glyphsvg [options] <input-font> <output-directory>"

func (cmd *Extract) Run() error {
	if cmd.Quiet {
		Warning = log.New(io.Discard, "", 0)
	}

	if cmd.Input == "" || cmd.Output == "" {
		return fmt.Errorf("input file and output directory must be set\n%s", usage)
	} else if cmd.Precision < 0 {
		return fmt.Errorf("invalid precision: %v", cmd.Precision)
	} else if cmd.Margin < 0.0 {
		return fmt.Errorf("invalid margin: %v", cmd.Margin)
	}

	table, err := glyphsvg.Load(cmd.Input, glyphsvg.LoadOptions{
		Backend: cmd.Backend,
		Index:   cmd.Index,
	})
	if err != nil {
		if errors.Is(err, glyphsvg.ErrUnknownBackend) {
			return fmt.Errorf("%w, choose from: %s", err, strings.Join(glyphsvg.BackendNames(), ", "))
		}
		return err
	}

	res, err := glyphsvg.Extract(table, cmd.Output, glyphsvg.Options{
		Margin:      cmd.Margin,
		Precision:   cmd.Precision,
		NamePattern: cmd.Name,
		SkipEmpty:   cmd.SkipEmpty,
		KeepGoing:   cmd.KeepGoing,
		Minify:      cmd.Minify,
		Warning:     Warning,
	})
	if res != nil && cmd.Verbose && !cmd.Quiet {
		for _, filename := range res.Files {
			fmt.Println(filename)
		}
	}
	if err != nil {
		if cmd.KeepGoing && res != nil {
			return fmt.Errorf("%v: %d of %d glyphs failed", cmd.Input, res.Failed, table.NumGlyphs())
		}
		return err
	}

	if !cmd.Quiet {
		fmt.Printf("%v:  %v glyphs => %v files in %v (%v)", filepath.Base(cmd.Input), table.NumGlyphs(), len(res.Files), cmd.Output, formatBytes(uint64(res.Bytes)))
		if 0 < res.Skipped {
			fmt.Printf(",  %v empty glyphs skipped", res.Skipped)
		}
		fmt.Printf("\n")
	}
	return nil
}
