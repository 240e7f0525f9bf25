package main

import (
	"log"
	"os"

	"github.com/tdewolff/argp"
)

var (
	Error   *log.Logger
	Warning *log.Logger
)

func main() {
	Error = log.New(os.Stderr, "ERROR: ", 0)
	Warning = log.New(os.Stderr, "WARNING: ", 0)

	cmd := argp.NewCmd(&Extract{}, "Extract glyph outlines from TTF/OTF/WOFF/WOFF2/EOT fonts into one SVG file per glyph")
	cmd.AddCmd(&Info{}, "info", "Get font container info and list glyphs")
	cmd.Parse()
}
