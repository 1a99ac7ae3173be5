// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package outline

// A Polygon is one closed loop of integer lattice points, in traversal
// order.
type Polygon struct {
	Points []Point
	Closed bool
}

// Emit walks the pool in creation order and yields each surviving ring as
// a closed Polygon, starting from that ring's earliest-created surviving
// point. As each point is visited its links are severed, so a second
// call to Emit on the same pool (without an intervening Reset) yields
// nothing.
func (p *Pool) Emit() []Polygon {
	var out []Polygon
	for i := range p.points {
		idx := int32(i)
		if !p.live(idx) {
			continue
		}
		first := idx
		var poly Polygon
		poly.Closed = true
		for {
			cur := &p.points[idx]
			poly.Points = append(poly.Points, cur.Point)
			next := cur.next
			cur.prev, cur.next = noPoint, noPoint
			if next == first {
				break
			}
			idx = next
		}
		out = append(out, poly)
	}
	return out
}
