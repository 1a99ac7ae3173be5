// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package outline

// A Corner records which of a cell's four unit corners are filled in the
// vector output.
type Corner struct {
	TL, TR, BL, BR bool
}

// A Grid is the per-cell corner classification of an entire bitmap.
type Grid [W][H]Corner

// Classify decides, for every cell of b, which corners are filled. An
// "on" cell (bitmap pixel 1) starts with all four corners filled and has
// two diagonal-trim rules clear a pair of opposite corners to round off
// diagonal stems, subject to a gap-avoidance override that restores a
// corner against an already-filled neighbour so that stems joining other
// stems don't get chipped. An "off" cell starts with no corners filled
// and gains one wherever a diagonal neighbour needs a triangular fill to
// complete the rounding.
//
// Classify is pure and total: every Bitmap, including an all-zero one,
// produces a Grid with no error.
func Classify(b Bitmap, flags Flags) Grid {
	var g Grid
	for x := 0; x < W; x++ {
		for y := 0; y < H; y++ {
			g[x][y] = classifyCell(b, flags, x, y)
		}
	}
	return g
}

func classifyCell(b Bitmap, flags Flags, x, y int) Corner {
	left := Get(b, flags, x-1, y)
	right := Get(b, flags, x+1, y)
	above := Get(b, flags, x, y-1)
	below := Get(b, flags, x, y+1)
	aboveLeft := Get(b, flags, x-1, y-1)
	aboveRight := Get(b, flags, x+1, y-1)
	belowLeft := Get(b, flags, x-1, y+1)
	belowRight := Get(b, flags, x+1, y+1)

	if Get(b, flags, x, y) != 0 {
		c := Corner{TL: true, TR: true, BL: true, BR: true}

		// Anti-diagonal trim.
		if (left == 0 && above == 0 && aboveLeft == 1) ||
			(right == 0 && below == 0 && belowRight == 1) {
			c.TR = false
			c.BL = false
		}
		// Main-diagonal trim.
		if (right == 0 && above == 0 && aboveRight == 1) ||
			(left == 0 && below == 0 && belowLeft == 1) {
			c.TL = false
			c.BR = false
		}

		// Gap-avoidance override: restore a corner against an adjacent
		// filled cell so a diagonal stem meeting an orthogonal one
		// doesn't get chipped. This must run after both trims above,
		// not interleaved with them.
		if left == 1 || aboveLeft == 1 || above == 1 {
			c.TL = true
		}
		if right == 1 || aboveRight == 1 || above == 1 {
			c.TR = true
		}
		if left == 1 || belowLeft == 1 || below == 1 {
			c.BL = true
		}
		if right == 1 || belowRight == 1 || below == 1 {
			c.BR = true
		}
		return c
	}

	var c Corner
	if left == 1 && above == 1 && aboveLeft == 0 {
		c.TL = true
	}
	if right == 1 && above == 1 && aboveRight == 0 {
		c.TR = true
	}
	if left == 1 && below == 1 && belowLeft == 0 {
		c.BL = true
	}
	if right == 1 && below == 1 && belowRight == 0 {
		c.BR = true
	}
	return c
}
