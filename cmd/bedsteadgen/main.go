// Copyright 2010-2017 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Command bedsteadgen renders the bedstead glyph table through the
// outline pipeline and writes it out as a Spline Font Database file that
// Fontforge (or any other .sfd consumer) can open and generate an OTF
// or TTF from.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/goki/bedstead/bedstead"
	"github.com/goki/bedstead/outline"
	"github.com/goki/bedstead/sfd"
)

var (
	outfile  = flag.String("o", "bedstead.sfd", "output .sfd filename")
	verbose  = flag.Bool("v", false, "log path-cleaner diagnostics to stderr")
	fontName = flag.String("name", "", "override the font's FontName/FullName/FamilyName")
)

func main() {
	flag.Parse()

	f, err := os.Create(*outfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bedsteadgen: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	if err := generate(w); err != nil {
		fmt.Fprintf(os.Stderr, "bedsteadgen: %v\n", err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "bedsteadgen: %v\n", err)
		os.Exit(1)
	}
}

func generate(w *bufio.Writer) error {
	numExtra := 0
	for _, g := range bedstead.Glyphs {
		if g.Rune == -1 {
			numExtra++
		}
	}

	header := sfd.DefaultHeader()
	if *fontName != "" {
		header.FontName = *fontName
		header.FullName = *fontName
		header.FamilyName = *fontName
	}

	sw := sfd.NewWriter(w)
	if err := sw.WriteHeader(header, len(bedstead.Glyphs), numExtra); err != nil {
		return err
	}

	font := bedstead.NewFont()
	if *verbose {
		font.SetEventSink(loggingSink{})
	}
	// Every glyph advances by the same width: ttxt.c's main() prints a
	// fixed "Width: 600" for every StartChar block regardless of the
	// glyph's own active-column count, so this matches that literal
	// rather than deriving one from outline.W.
	const advanceWidth = 600
	for gid, g := range bedstead.Glyphs {
		polys := font.Outline(g)
		if err := sw.WriteGlyph(g.Name, g.Rune, advanceWidth, gid, polys); err != nil {
			return err
		}
	}
	return sw.WriteFooter()
}

type loggingSink struct{}

func (loggingSink) Event(e outline.Event) {
	fmt.Fprintf(os.Stderr, "bedsteadgen: %s at %v\n", e.Kind, e.Point)
}
