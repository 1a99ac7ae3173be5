// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package outline

// BuildGlyph runs the full pipeline for one bitmap: it resets pool,
// classifies every cell, emits the per-cell polygons, merges them to a
// fixed point, and returns the resulting closed polygons on the
// [0, 4*W] x [0, 4*H] lattice.
//
// pool may be reused across glyphs; BuildGlyph resets it before use. An
// all-zero bitmap is not an error: BuildGlyph returns no polygons for it.
func BuildGlyph(pool *Pool, b Bitmap, flags Flags, sink EventSink) []Polygon {
	pool.Reset()
	grid := Classify(b, flags)
	for x := 0; x < W; x++ {
		for y := 0; y < H; y++ {
			on := Get(b, flags, x, y) != 0
			pool.EmitCell(x, y, on, grid[x][y])
		}
	}
	pool.Clean(sink)
	return pool.Emit()
}
