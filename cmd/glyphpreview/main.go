// Copyright 2010-2017 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Command glyphpreview rasterises one bedstead glyph's outline at a
// handful of pixel sizes and writes each as a PNG, for eyeballing the
// roundtrip and SAA5050-smoothing properties that outline's tests check
// numerically.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/math/fixed"

	"github.com/goki/bedstead/bedstead"
)

var (
	glyphName = flag.String("glyph", "A", "PostScript name of the glyph to preview")
	outDir    = flag.String("out", ".", "directory to write PNGs into")
)

func main() {
	flag.Parse()

	if _, ok := bedstead.ByName(*glyphName); !ok {
		fmt.Fprintf(os.Stderr, "glyphpreview: no glyph named %q\n", *glyphName)
		os.Exit(1)
	}

	for _, px := range []float64{10, 20} {
		if err := renderOne(*glyphName, px); err != nil {
			fmt.Fprintf(os.Stderr, "glyphpreview: %v\n", err)
			os.Exit(1)
		}
	}
}

// renderOne renders name at a pixelsPerEm size (the glyph's native
// 10-pixel cell height maps to size == 10) and writes a PNG named
// "<name>-<size>.png" into outDir.
func renderOne(name string, size float64) error {
	g, _ := bedstead.ByName(name)
	if g.Rune == -1 {
		// font.Face only looks glyphs up by rune, and ByRune(-1) would
		// resolve to an arbitrary runeless glyph, not necessarily this
		// one: name-only glyphs aren't previewable through this path.
		return fmt.Errorf("glyph %q has no Unicode code point and can't be previewed through font.Face", name)
	}

	// Size in points at 72 DPI is numerically pixels-per-em, and one em is
	// bedstead's full 10-row cell height, so Size == size renders the
	// glyph exactly size pixels tall.
	face := bedstead.NewFace(&bedstead.Options{Size: size, DPI: 72})
	defer face.Close()

	bounds, advance, ok := face.GlyphBounds(g.Rune)
	if !ok {
		return fmt.Errorf("no outline for glyph %q", name)
	}

	w := int(advance >> 6)
	h := int((bounds.Max.Y - bounds.Min.Y) >> 6)
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(image.White), image.Point{}, draw.Src)

	dot := fixed.Point26_6{X: 0, Y: fixed.Int26_6(h << 6)}
	dr, mask, maskp, _, ok := face.Glyph(dot, g.Rune)
	if ok {
		draw.DrawMask(canvas, dr, image.NewUniform(image.Black), image.Point{}, mask, maskp, draw.Over)
	}

	outPath := fmt.Sprintf("%s/%s-%d.png", *outDir, name, int(size))
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if err := png.Encode(bw, canvas); err != nil {
		return err
	}
	return bw.Flush()
}
