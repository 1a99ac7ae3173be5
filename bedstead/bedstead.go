// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package bedstead provides the SAA5050-family glyph table (the bitmap
// shapes the Mullard Teletext character generator and its siblings draw)
// and a Font type that walks the table through package outline to
// produce vector glyph outlines.
package bedstead

import "github.com/goki/bedstead/outline"

// A Glyph is one bitmap character: its pixels, its Unicode code point (or
// -1 if it has none, and is reachable only by name), its PostScript glyph
// name, and any outline.Flags the glyph needs (row-5 joining, alternate
// routing).
type Glyph struct {
	Bitmap outline.Bitmap
	Rune   rune
	Name   string
	Flags  outline.Flags
}

// A Font drives the outline pipeline across the glyph table, reusing a
// single Pool across calls instead of allocating one per glyph.
type Font struct {
	pool *outline.Pool
	sink outline.EventSink
}

// NewFont returns a Font with a freshly allocated Pool.
func NewFont() *Font {
	return &Font{pool: outline.NewPool()}
}

// SetEventSink installs the sink that receives path-cleaner diagnostics
// for every subsequent call to Outline. A nil sink (the default)
// discards them.
func (f *Font) SetEventSink(sink outline.EventSink) {
	f.sink = sink
}

// Outline runs the outline pipeline for g and returns its polygons.
func (f *Font) Outline(g Glyph) []outline.Polygon {
	return outline.BuildGlyph(f.pool, g.Bitmap, g.Flags, f.sink)
}

// ByName looks up a glyph by its PostScript name.
func ByName(name string) (Glyph, bool) {
	for _, g := range Glyphs {
		if g.Name == name {
			return g, true
		}
	}
	return Glyph{}, false
}

// ByRune looks up a glyph by Unicode code point. Where more than one
// glyph in the table shares a code point (locale alternates), the first
// table entry wins, matching the table's own ordering of "the default
// being the glyph that looks best".
func ByRune(r rune) (Glyph, bool) {
	for _, g := range Glyphs {
		if g.Rune == r {
			return g, true
		}
	}
	return Glyph{}, false
}
