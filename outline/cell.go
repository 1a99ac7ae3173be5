// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package outline

// EmitCell appends the polygon(s) for one bitmap cell to the pool: one
// closed octagon-like ring for an "on" cell, or up to four triangular
// rings for an "off" cell, one per set corner. Coordinates are on the
// 4x-cell lattice; cell (cellX, cellY) owns the square
// [4*cellX, 4*cellX+4] x [4*gy, 4*gy+4] where gy flips the bitmap's
// top-down row order into the font's bottom-up y axis.
func (p *Pool) EmitCell(cellX, cellY int, on bool, c Corner) {
	gy := H - cellY - 1
	x := int16(cellX * 4)
	y := int16(gy * 4)
	if on {
		p.emitBlack(x, y, c)
	} else {
		p.emitWhite(x, y, c)
	}
}

// emitBlack walks a cell's four corners bl -> tl -> tr -> br -> close. A
// set corner bit visits the exact cell corner; a clear one is chamfered
// one unit in from each of its two edges. All four corners set yields an
// axis-aligned square; all four clear yields an octagon.
func (p *Pool) emitBlack(x, y int16, c Corner) {
	pts := make([][2]int16, 0, 8)
	if c.BL {
		pts = append(pts, [2]int16{x, y})
	} else {
		pts = append(pts, [2]int16{x + 1, y}, [2]int16{x, y + 1})
	}
	if c.TL {
		pts = append(pts, [2]int16{x, y + 4})
	} else {
		pts = append(pts, [2]int16{x, y + 3}, [2]int16{x + 1, y + 4})
	}
	if c.TR {
		pts = append(pts, [2]int16{x + 4, y + 4})
	} else {
		pts = append(pts, [2]int16{x + 3, y + 4}, [2]int16{x + 4, y + 3})
	}
	if c.BR {
		pts = append(pts, [2]int16{x + 4, y})
	} else {
		pts = append(pts, [2]int16{x + 4, y + 1}, [2]int16{x + 3, y})
	}
	p.newRing(pts)
}

// emitWhite emits one right-triangle ring per set corner, rotations of
// each other by 90 degrees. Each triangle's two legs retreat further
// along an edge when the neighbouring corner in that direction is also
// set, producing a stepped boundary instead of a clean hypotenuse; this
// case is defensive and may not occur in the shipped glyph table.
func (p *Pool) emitWhite(x, y int16, c Corner) {
	if c.BL {
		pts := [][2]int16{{x, y}}
		if c.TL {
			pts = append(pts, [2]int16{x, y + 2}, [2]int16{x + 1, y + 2})
		} else {
			pts = append(pts, [2]int16{x, y + 3})
		}
		if c.BR {
			pts = append(pts, [2]int16{x + 2, y + 1}, [2]int16{x + 2, y})
		} else {
			pts = append(pts, [2]int16{x + 3, y})
		}
		p.newRing(pts)
	}
	if c.TL {
		pts := [][2]int16{{x, y + 4}}
		if c.TR {
			pts = append(pts, [2]int16{x + 2, y + 4}, [2]int16{x + 2, y + 3})
		} else {
			pts = append(pts, [2]int16{x + 3, y + 4})
		}
		if c.BL {
			pts = append(pts, [2]int16{x + 1, y + 2}, [2]int16{x, y + 2})
		} else {
			pts = append(pts, [2]int16{x, y + 1})
		}
		p.newRing(pts)
	}
	if c.TR {
		pts := [][2]int16{{x + 4, y + 4}}
		if c.BR {
			pts = append(pts, [2]int16{x + 4, y + 2}, [2]int16{x + 3, y + 2})
		} else {
			pts = append(pts, [2]int16{x + 4, y + 1})
		}
		if c.TL {
			pts = append(pts, [2]int16{x + 2, y + 3}, [2]int16{x + 2, y + 4})
		} else {
			pts = append(pts, [2]int16{x + 1, y + 4})
		}
		p.newRing(pts)
	}
	if c.BR {
		pts := [][2]int16{{x + 4, y}}
		if c.BL {
			pts = append(pts, [2]int16{x + 2, y}, [2]int16{x + 2, y + 1})
		} else {
			pts = append(pts, [2]int16{x + 1, y})
		}
		if c.TR {
			pts = append(pts, [2]int16{x + 3, y + 2}, [2]int16{x + 4, y + 2})
		} else {
			pts = append(pts, [2]int16{x + 4, y + 3})
		}
		p.newRing(pts)
	}
}
