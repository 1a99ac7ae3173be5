// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2,
// both of which can be found in the LICENSE file.

package raster

import "sort"

// A Rasterizer converts a Path of straight line segments into Spans,
// using an even-odd fill rule, and sends them to a Painter. Unlike the
// wider rasterizer this package was once built against, it has no
// knowledge of quadratic or cubic curves: every Path fed to it is
// expected to already be flattened to line segments, which is all the
// outline package's polygons ever are.
type Rasterizer struct {
	Width, Height int
	path          Path
}

// NewRasterizer returns a Rasterizer that clips to [0, width) x [0, height).
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{Width: width, Height: height}
}

// Clear discards any accumulated path, so the Rasterizer can be reused.
func (r *Rasterizer) Clear() {
	r.path.Clear()
}

// Start starts a new closed curve at a.
func (r *Rasterizer) Start(a Point) { r.path.Start(a) }

// Add1 adds a linear segment to the current curve.
func (r *Rasterizer) Add1(b Point) { r.path.Add1(b) }

type edge struct {
	// y0 < y1; x0, x1 are the edge's x-coordinate at y0 and y1.
	y0, y1, x0, x1 Fixed
}

// edgesFor returns the x-coordinates at which the Path's edges cross the
// horizontal line y = scanY, in ascending order.
func edgesFor(edges []edge, scanY Fixed) []Fixed {
	var xs []Fixed
	for _, e := range edges {
		if scanY < e.y0 || scanY >= e.y1 {
			continue
		}
		t := float64(scanY-e.y0) / float64(e.y1-e.y0)
		xs = append(xs, e.x0+Fixed(float64(e.x1-e.x0)*t))
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	return xs
}

// edges extracts the non-horizontal edges of every closed curve in p.
func edges(p Path) []edge {
	var es []edge
	var start, prev Point
	have := false
	flush := func(cur Point) {
		if !have {
			return
		}
		a, b := prev, cur
		if a.Y != b.Y {
			if a.Y > b.Y {
				a, b = b, a
			}
			es = append(es, edge{y0: a.Y, y1: b.Y, x0: a.X, x1: b.X})
		}
	}
	for i := 0; i < len(p); {
		switch p[i] {
		case 0:
			if have {
				flush(start) // close the previous curve before starting the next
			}
			start = Point{p[i+1], p[i+2]}
			prev = start
			have = true
			i += 3
		case 1:
			cur := Point{p[i+1], p[i+2]}
			flush(cur)
			prev = cur
			i += 3
		default:
			panic("freetype/raster: Rasterizer only supports linear segments")
		}
	}
	if have {
		flush(start)
	}
	return es
}

// Rasterize walks the accumulated Path, using an even-odd scanline fill,
// and sends all the resulting Spans, in order of increasing Y, to p in a
// single Paint call with done true.
func (r *Rasterizer) Rasterize(p Painter) {
	es := edges(r.path)
	if len(es) == 0 {
		p.Paint(nil, true)
		return
	}
	var ss []Span
	for y := 0; y < r.Height; y++ {
		scanY := Fixed(y)<<8 + 1<<7 // sample at the pixel's vertical center
		xs := edgesFor(es, scanY)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(xs[i] >> 8)
			x1 := int((xs[i+1] + 1<<8 - 1) >> 8)
			if x0 < 0 {
				x0 = 0
			}
			if x1 > r.Width {
				x1 = r.Width
			}
			if x0 < x1 {
				ss = append(ss, Span{Y: y, X0: x0, X1: x1, A: 1<<32 - 1})
			}
		}
	}
	p.Paint(ss, true)
}
