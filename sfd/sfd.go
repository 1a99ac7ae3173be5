// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package sfd writes the Spline Font Database (.sfd) text format that
// Fontforge reads: a font-level metadata preamble followed by one
// StartChar/SplineSet/EndChar block per glyph. It is a pure output-format
// collaborator; it knows nothing about bitmaps, classification, or
// merging, only about framing the polygons package outline produces.
package sfd

import (
	"fmt"
	"io"

	"github.com/goki/bedstead/outline"
)

// Header holds font-level metadata written once, before any glyph.
// A zero Header is not meaningful; use DefaultHeader as a starting point.
type Header struct {
	FontName, FullName, FamilyName string
	Weight, Copyright, Version     string
	ItalicAngle                    int
	UnderlinePosition              int
	UnderlineWidth                 int
	Ascent, Descent                int
}

// DefaultHeader returns the metadata ttxt.c, the bedstead font's original
// generator, wrote for every build: a medium-weight 700/300 em split with
// no italic slant.
func DefaultHeader() Header {
	return Header{
		FontName:          "TTXT",
		FullName:          "TTXT",
		FamilyName:        "TTXT",
		Weight:            "Medium",
		Copyright:         "Who knows?",
		Version:           "000.001",
		ItalicAngle:       0,
		UnderlinePosition: -50,
		UnderlineWidth:    50,
		Ascent:            700,
		Descent:           300,
	}
}

// A Writer frames a sequence of glyph outlines as an .sfd file. Call
// WriteHeader once, WriteGlyph once per glyph in encoding order, then
// WriteFooter.
type Writer struct {
	w          io.Writer
	err        error
	nextExtra  int32
	wroteCount int
}

// NewWriter returns a Writer that frames output onto w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// printf records the first error encountered across a sequence of writes,
// in the manner of Rob Pike's errWriter: once err is set, every further
// printf is a no-op so callers don't need to check after every line.
func (wr *Writer) printf(format string, args ...interface{}) {
	if wr.err != nil {
		return
	}
	_, wr.err = fmt.Fprintf(wr.w, format, args...)
}

// WriteHeader writes the SplineFontDB preamble. numGlyphs is the total
// number of glyphs that will follow; numExtra is how many of them have no
// Unicode assignment (outline.Flags aside, a Glyph.Rune of -1) and so
// need a Private Use Area slot, which this Writer assigns sequentially
// starting at U+10000.
func (wr *Writer) WriteHeader(h Header, numGlyphs, numExtra int) error {
	wr.printf("SplineFontDB: 3.0\n")
	wr.printf("FontName: %s\n", h.FontName)
	wr.printf("FullName: %s\n", h.FullName)
	wr.printf("FamilyName: %s\n", h.FamilyName)
	wr.printf("Weight: %s\n", h.Weight)
	wr.printf("Copyright: %s\n", h.Copyright)
	wr.printf("Version: %s\n", h.Version)
	wr.printf("ItalicAngle: %d\n", h.ItalicAngle)
	wr.printf("UnderlinePosition: %d\n", h.UnderlinePosition)
	wr.printf("UnderlineWidth: %d\n", h.UnderlineWidth)
	wr.printf("Ascent: %d\n", h.Ascent)
	wr.printf("Descent: %d\n", h.Descent)
	wr.printf("LayerCount: 2\n")
	wr.printf("Layer: 0 0 \"Back\" 1\n")
	wr.printf("Layer: 1 0 \"Fore\" 0\n")
	wr.printf("Encoding: UnicodeBmp\n")
	wr.printf("NameList: Adobe Glyph List\n")
	wr.printf("DisplaySize: -24\n")
	wr.printf("AntiAlias: 1\n")
	wr.printf("FitToEm: 1\n")
	wr.printf("BeginPrivate: 2\n")
	wr.printf(" StdHW 5 [100]\n")
	wr.printf(" StdVW 5 [100]\n")
	wr.printf("EndPrivate\n")
	wr.printf("BeginChars: %d %d\n", 65536+numExtra, numGlyphs)
	return wr.err
}

// WriteGlyph writes one glyph's StartChar..EndChar block. r is the
// glyph's Unicode code point, or -1 if it has none; gid is its index in
// the font's glyph order. width is the glyph's advance width in font
// units. polys is the glyph's outline, in the coordinate space package
// outline produces (the [0,4W] x [0,4H] lattice); WriteGlyph applies the
// reference consumer's affine map (scale by 25, shift down by 300) as it
// writes each point, per outline's documented external-interface
// contract that this mapping belongs to the caller, not the core.
func (wr *Writer) WriteGlyph(name string, r rune, width int, gid int, polys []outline.Polygon) error {
	encoded := int32(r)
	if r == -1 {
		encoded = 65536 + wr.nextExtra
		wr.nextExtra++
	}
	wr.printf("\nStartChar: %s\n", name)
	wr.printf("Encoding: %d %d %d\n", encoded, int32(r), gid)
	wr.printf("Width: %d\n", width)
	wr.printf("Flags: W\n")
	wr.printf("LayerCount: 2\n")
	if len(polys) > 0 {
		wr.printf("Fore\nSplineSet\n")
		for _, poly := range polys {
			for i, p := range poly.Points {
				marker := "l"
				if i == 0 {
					marker = "m"
				}
				wr.printf(" %d %d %s 1\n", int(p.X)*25, int(p.Y)*25-300, marker)
			}
		}
		wr.printf("EndSplineSet\n")
	}
	wr.printf("EndChar\n")
	wr.wroteCount++
	return wr.err
}

// WriteFooter closes the glyph table and the font.
func (wr *Writer) WriteFooter() error {
	wr.printf("EndChars\n")
	wr.printf("EndSplineFont\n")
	return wr.err
}
