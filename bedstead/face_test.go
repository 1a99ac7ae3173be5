// Copyright 2010-2015 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package bedstead

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestFaceGlyphAdvanceIsMonospace(t *testing.T) {
	face := NewFace(nil)
	defer face.Close()

	a1, ok := face.GlyphAdvance('A')
	if !ok {
		t.Fatal("GlyphAdvance('A') not found")
	}
	a2, ok := face.GlyphAdvance('i')
	if !ok {
		t.Fatal("GlyphAdvance('i') not found")
	}
	if a1 != a2 {
		t.Errorf("advances differ: 'A' = %v, 'i' = %v, want equal (fixed pitch)", a1, a2)
	}
	if a1 <= 0 {
		t.Errorf("advance = %v, want positive", a1)
	}
}

func TestFaceGlyphAdvanceUnknownRune(t *testing.T) {
	face := NewFace(nil)
	defer face.Close()
	if _, ok := face.GlyphAdvance(0xfffff); ok {
		t.Error("GlyphAdvance for an unassigned rune reported found")
	}
}

func TestFaceGlyphProducesNonEmptyMask(t *testing.T) {
	face := NewFace(&Options{Size: 20, DPI: 72})
	defer face.Close()

	dot := fixed.Point26_6{X: 0, Y: 20 << 6}
	dr, mask, _, advance, ok := face.Glyph(dot, 'A')
	if !ok {
		t.Fatal("Glyph('A') not found")
	}
	if advance <= 0 {
		t.Errorf("advance = %v, want positive", advance)
	}
	if dr.Dx() <= 0 || dr.Dy() <= 0 {
		t.Fatalf("destination rectangle %v is empty", dr)
	}
	opaque := false
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !opaque; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := mask.At(x, y).RGBA(); a != 0 {
				opaque = true
				break
			}
		}
	}
	if !opaque {
		t.Error("glyph 'A' rasterised to an entirely empty mask")
	}
}

func TestFaceMetricsScaleWithSize(t *testing.T) {
	small := NewFace(&Options{Size: 10, DPI: 72})
	large := NewFace(&Options{Size: 20, DPI: 72})
	defer small.Close()
	defer large.Close()

	ms, ml := small.Metrics(), large.Metrics()
	if ml.Height <= ms.Height {
		t.Errorf("Metrics().Height did not grow with size: %v vs %v", ms.Height, ml.Height)
	}
}
