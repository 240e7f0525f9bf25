package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/tdewolff/glyphsvg"
)

type Info struct {
	Index   int    `short:"i" desc:"Font index for font collections"`
	Backend string `short:"b" desc:"Glyph outline decoder: seehuhn, tdewolff, or x/image." default:"tdewolff"`
	Glyphs  bool   `short:"g" desc:"List all glyphs"`
	Input   string `index:"0" desc:"Input file"`
}

func (cmd *Info) Run() error {
	if cmd.Input == "" {
		return fmt.Errorf("input file not set")
	}

	b, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}
	c, err := glyphsvg.Inspect(b)
	if err != nil {
		return fmt.Errorf("%v: %v", cmd.Input, err)
	}
	table, err := glyphsvg.Decode(b, glyphsvg.LoadOptions{
		Backend: cmd.Backend,
		Index:   cmd.Index,
	})
	if err != nil {
		return fmt.Errorf("%v: %v", cmd.Input, err)
	}

	signature := c.Signature
	if signature != "" && signature != "EOT" {
		signature = strconv.Quote(signature)
	}
	fmt.Printf("File: %s\n\n", cmd.Input)
	fmt.Printf("Media type: %s\n", c.MediaType)
	fmt.Printf("Signature:  %s\n", signature)
	if c.Flavor != "" {
		fmt.Printf("Flavor:     %s\n", c.Flavor)
		if c.Flavor == "Collection" {
			fmt.Printf("Fonts:      %d\n", c.NumTables)
		} else {
			fmt.Printf("Tables:     %d\n", c.NumTables)
		}
	}
	fmt.Printf("Size:       %s\n", formatBytes(uint64(c.Length)))
	fmt.Printf("Glyphs:     %d\n", table.NumGlyphs())
	fmt.Printf("UnitsPerEm: %d\n", table.UnitsPerEm())
	if !cmd.Glyphs {
		return nil
	}

	fmt.Printf("\n  GID | Char      | Bounds (xmin,ymin)-(xmax,ymax) | Name\n")
	fmt.Printf("------|-----------|--------------------------------|------\n")
	for i := 0; i < int(table.NumGlyphs()); i++ {
		glyphID := uint16(i)
		char := ""
		if r := table.ToUnicode(glyphID); r != 0 {
			char = printableRune(r)
		}

		bounds := ""
		if outline, err := glyphsvg.GlyphOutline(table, glyphID); err != nil {
			Error.Printf("glyph %d: %v\n", glyphID, err)
			bounds = "error"
		} else if rect, ok := outline.CurveBounds(); ok {
			bounds = fmt.Sprintf("(%.6g,%.6g)-(%.6g,%.6g)", rect.XMin, rect.YMin, rect.XMax, rect.YMax)
		}
		fmt.Printf("%5d | %-9s | %-30s | %s\n", glyphID, char, bounds, table.GlyphName(glyphID))
	}
	return nil
}
