// Copyright 2010-2015 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package bedstead

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/goki/bedstead/freetype/raster"
	"github.com/goki/bedstead/outline"
)

// Options configures NewFace, mirroring truetype/face.go's Options
// convention: a zero value is always meaningful, so there is no
// separate constructor for it.
type Options struct {
	// Size is the font size in points, as in "a 10 point font size".
	//
	// A zero value means to use a 12 point font size.
	Size float64

	// DPI is the dots-per-inch resolution.
	//
	// A zero value means to use 72 DPI.
	DPI float64
}

func (o *Options) size() float64 {
	if o != nil && o.Size > 0 {
		return o.Size
	}
	return 12
}

func (o *Options) dpi() float64 {
	if o != nil && o.DPI > 0 {
		return o.DPI
	}
	return 72
}

// emUnits is the number of outline lattice units (on the Y axis, which
// spans the full ascent+descent) that make up one em. It mirrors the
// 700/300 ascent/descent split sfd.DefaultHeader writes: one em is the
// full cell height, 4*outline.H lattice units tall.
const emUnits = 4 * outline.H

// cellAdvanceUnits is a glyph's advance width in lattice units: the
// full 6-column cell (4*outline.W), margin column included, matching
// ttxt.c's main(), which prints a fixed "Width: 600" for every glyph
// (600 == 24*25, the sfd package's 25-units-per-lattice affine scale
// applied to 4*outline.W lattice units) regardless of how many of
// those columns the glyph's own ink occupies. Every bedstead glyph
// shares it: the table is a fixed-pitch (monospace) design, as the
// original Teletext character cell always was.
const cellAdvanceUnits = 4 * outline.W

// NewFace returns a font.Face that renders bedstead glyphs at the given
// size and resolution. Unlike truetype/face.go's NewFace, there is no
// Hinting option: hinting exists to fit a scalable curve to a pixel
// grid, and bedstead's outlines are already built directly on an
// integer lattice, so there are no curve nodes left to quantize.
func NewFace(opts *Options) font.Face {
	scale := opts.size() * opts.dpi() / 72 / float64(emUnits) // pixels per lattice unit

	w := int(float64(4*outline.W)*scale + 1)
	h := int(float64(4*outline.H)*scale + 1)

	f := &faceImpl{
		font:  NewFont(),
		scale: scale,
		mask:  image.NewAlpha(image.Rect(0, 0, w, h)),
		r:     raster.NewRasterizer(w, h),
	}
	f.painter = raster.NewAlphaPainter(f.mask)
	return f
}

type faceImpl struct {
	font    *Font
	scale   float64 // pixels per outline lattice unit
	mask    *image.Alpha
	r       *raster.Rasterizer
	painter *raster.AlphaPainter
}

// Close satisfies font.Face.
func (f *faceImpl) Close() error { return nil }

// Kern satisfies font.Face. The bedstead table carries no per-pair
// kerning data (neither does ttxt.c), so every pair kerns to zero.
func (f *faceImpl) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Metrics satisfies font.Face.
func (f *faceImpl) Metrics() font.Metrics {
	emPx := float64(emUnits) * f.scale
	return font.Metrics{
		Height:     fixed.Int26_6(emPx * 64),
		Ascent:     fixed.Int26_6(emPx * 64 * 0.7),
		Descent:    fixed.Int26_6(emPx * 64 * 0.3),
		XHeight:    fixed.Int26_6(emPx * 64 * 0.5),
		CapHeight:  fixed.Int26_6(emPx * 64 * 0.7),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

func (f *faceImpl) toPx(x int) fixed.Int26_6 {
	return fixed.Int26_6(float64(x) * f.scale * 64)
}

// GlyphAdvance satisfies font.Face.
func (f *faceImpl) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	if _, ok := ByRune(r); !ok {
		return 0, false
	}
	return f.toPx(cellAdvanceUnits), true
}

// GlyphBounds satisfies font.Face.
func (f *faceImpl) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	g, ok := ByRune(r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	polys := f.font.Outline(g)
	minX, minY := int16(4 * outline.W), int16(4 * outline.H)
	maxX, maxY := int16(0), int16(0)
	any := false
	for _, poly := range polys {
		for _, p := range poly.Points {
			any = true
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	if !any {
		return fixed.Rectangle26_6{}, f.toPx(cellAdvanceUnits), true
	}
	// outline's Y grows upward from the descent line; font.Face bounds
	// have Y grow downward from the baseline, so flip and rebase at the
	// ascent line (the top of the em, at lattice Y == emUnits).
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: f.toPx(int(minX)), Y: f.toPx(emUnits - int(maxY))},
		Max: fixed.Point26_6{X: f.toPx(int(maxX)), Y: f.toPx(emUnits - int(minY))},
	}, f.toPx(cellAdvanceUnits), true
}

// Glyph satisfies font.Face: it rasterises r's outline into the face's
// mask and reports where to composite it relative to dot.
func (f *faceImpl) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	g, ok := ByRune(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	polys := f.font.Outline(g)

	f.r.Clear()
	for i := range f.mask.Pix {
		f.mask.Pix[i] = 0
	}
	for _, poly := range polys {
		if len(poly.Points) == 0 {
			continue
		}
		f.r.Start(f.toRasterPoint(poly.Points[0]))
		for _, p := range poly.Points[1:] {
			f.r.Add1(f.toRasterPoint(p))
		}
	}
	f.r.Rasterize(f.painter)

	ix := int(dot.X >> 6)
	iy := int(dot.Y>>6) - f.mask.Bounds().Dy()
	dr = image.Rect(ix, iy, ix+f.mask.Bounds().Dx(), iy+f.mask.Bounds().Dy())
	return dr, f.mask, image.Point{}, f.toPx(cellAdvanceUnits), true
}

// toRasterPoint maps an outline lattice point to a raster.Point (24.8
// fixed point) in the face's pixel grid, flipping Y since outline's
// lattice grows upward but raster/image rows grow downward.
func (f *faceImpl) toRasterPoint(p outline.Point) raster.Point {
	x := raster.Fixed(float64(p.X) * f.scale * 256)
	y := raster.Fixed(float64(emUnits-int(p.Y)) * f.scale * 256)
	return raster.Point{X: x, Y: y}
}
