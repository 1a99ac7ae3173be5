// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package bedstead

import (
	"testing"

	"github.com/goki/bedstead/outline"
)

func TestTableLookups(t *testing.T) {
	if len(Glyphs) == 0 {
		t.Fatal("Glyphs table is empty")
	}
	g, ok := ByName("space")
	if !ok || g.Rune != 0x0020 {
		t.Errorf("ByName(space) = %+v, %v", g, ok)
	}
	if _, ok := ByName("nonexistent-glyph-name"); ok {
		t.Error("ByName(nonexistent) reported found")
	}
	g, ok = ByRune('A')
	if !ok || g.Name != "A" {
		t.Errorf("ByRune('A') = %+v, %v", g, ok)
	}
}

// pointInPolygons is an even-odd (XOR) point-in-polygon test used only to
// verify the roundtrip properties below; it is not part of the package's
// public surface.
func pointInPolygons(pt outline.Point, polys []outline.Polygon) bool {
	crossings := 0
	for _, poly := range polys {
		n := len(poly.Points)
		for i := 0; i < n; i++ {
			a, b := poly.Points[i], poly.Points[(i+1)%n]
			if rayCrosses(pt, a, b) {
				crossings++
			}
		}
	}
	return crossings%2 == 1
}

func rayCrosses(pt, a, b outline.Point) bool {
	if (a.Y > pt.Y) == (b.Y > pt.Y) {
		return false
	}
	t := float64(pt.Y-a.Y) / float64(b.Y-a.Y)
	xInt := float64(a.X) + t*float64(b.X-a.X)
	return xInt > float64(pt.X)
}

// cellCenter returns the lattice coordinate of the centre of bitmap cell
// (x, y), for roundtrip sampling.
func cellCenter(x, y int) outline.Point {
	gy := outline.H - y - 1
	return outline.Point{X: int16(x*4 + 2), Y: int16(gy*4 + 2)}
}

func TestRoundtripWholeTable(t *testing.T) {
	font := NewFont()
	for _, g := range Glyphs {
		polys := font.Outline(g)
		for x := 0; x < outline.W; x++ {
			for y := 0; y < outline.H; y++ {
				want := outline.Get(g.Bitmap, g.Flags, x, y) != 0
				got := pointInPolygons(cellCenter(x, y), polys)
				if got != want {
					t.Errorf("glyph %q cell (%d,%d): rasterised %v, bitmap %v", g.Name, x, y, got, want)
				}
			}
		}
	}
}

func TestClosureAndLatticeWholeTable(t *testing.T) {
	font := NewFont()
	for _, g := range Glyphs {
		polys := font.Outline(g)
		for _, poly := range polys {
			if !poly.Closed {
				t.Errorf("glyph %q has an unclosed polygon", g.Name)
			}
			if len(poly.Points) < 3 {
				t.Errorf("glyph %q has a polygon with %d vertices", g.Name, len(poly.Points))
			}
			n := len(poly.Points)
			for i := 0; i < n; i++ {
				p := poly.Points[i]
				if p.X < 0 || p.X > 4*outline.W || p.Y < 0 || p.Y > 4*outline.H {
					t.Errorf("glyph %q vertex %v outside lattice", g.Name, p)
				}
				next := poly.Points[(i+1)%n]
				if p == next {
					t.Errorf("glyph %q has consecutive duplicate vertex %v", g.Name, p)
				}
				prev := poly.Points[(i-1+n)%n]
				if outline.Inline3(prev, p, next) {
					t.Errorf("glyph %q has collinear vertex %v surviving cleaning", g.Name, p)
				}
			}
		}
	}
}

func TestNoDiagnosticEventsOnCleanInput(t *testing.T) {
	// DESIGN NOTES: test suites should be able to assert the absence of
	// repair diagnostics on well-formed input.
	// A single pixel with no neighbour in any of the eight surrounding
	// cells never shares an edge with anything else: Clean performs no
	// merges at all, so no repair diagnostic should ever fire for it.
	var b outline.Bitmap
	b[4] = 1 << uint(outline.W-2-2) // column 2, row 4, isolated

	font := NewFont()
	var events []outline.Event
	font.SetEventSink(outline.EventSinkFunc(func(e outline.Event) { events = append(events, e) }))
	font.Outline(Glyph{Bitmap: b, Name: "isolated-pixel"})
	if len(events) != 0 {
		t.Errorf("unexpected diagnostic events for an isolated pixel: %v", events)
	}
}

func TestLetterTSingleOutline(t *testing.T) {
	font := NewFont()
	g, ok := ByName("T")
	if !ok {
		t.Fatal(`ByName("T") not found`)
	}
	polys := font.Outline(g)
	if len(polys) != 1 {
		t.Fatalf("glyph T produced %d polygons, want 1", len(polys))
	}
}

func TestArabicJoinExtendsToLeftEdge(t *testing.T) {
	// A glyph whose row 5 has no pixel in column 0, with FlagJoinLeft set,
	// must read that edge as filled and the resulting outline must reach
	// x == 0 in row 5.
	g, ok := ByName("i")
	if !ok {
		t.Fatal(`ByName("i") not found`)
	}
	if outline.Get(g.Bitmap, 0, 0, 5) != 0 {
		t.Fatalf("test glyph %q already has column 0 set at row 5; pick another", g.Name)
	}
	g.Flags |= outline.FlagJoinLeft

	font := NewFont()
	polys := font.Outline(g)

	rowGY := int16(outline.H-5-1) * 4
	found := false
	for _, poly := range polys {
		n := len(poly.Points)
		for i := 0; i < n; i++ {
			a, b := poly.Points[i], poly.Points[(i+1)%n]
			if a.X != 0 || b.X != 0 {
				continue
			}
			lo, hi := a.Y, b.Y
			if lo > hi {
				lo, hi = hi, lo
			}
			if lo <= rowGY && hi >= rowGY+4 {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("glyph %q with FlagJoinLeft has no x=0 edge spanning row 5's lattice band [%d,%d]", g.Name, rowGY, rowGY+4)
	}
}
