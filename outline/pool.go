// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package outline

import "errors"

// ErrCapacityExceeded is the cause of the panic raised when a Pool's
// fixed-size arena is full. A pool does not grow; sizing it correctly is
// the caller's responsibility (see NewPool).
var ErrCapacityExceeded = errors.New("outline: point pool capacity exceeded")

// noPoint marks an absent prev/next link, and also marks a dead point:
// both links cleared.
const noPoint = -1

// A Point is an integer 2-vector on the 4x-cell lattice. X and Y are
// well within the range of a signed 8-bit value for any glyph this
// package builds, but are kept as int16 to make arithmetic on them
// (subtraction producing a bearing vector) convenient without casts.
type Point struct {
	X, Y int16
}

// polyPoint is an arena-resident point: a Point plus its place in the
// doubly-linked ring it belongs to. prev and next are indices into the
// owning Pool's points slice, or noPoint.
type polyPoint struct {
	Point
	prev, next int32
}

// A Pool is a pre-sized, append-only arena of points. Each polygon is a
// closed doubly-linked ring of arena members; members of a ring need not
// be contiguous in the arena once the cleaner has merged rings together.
//
// A Pool is reused across glyphs by calling Reset, which is cheaper than
// allocating a fresh arena per glyph.
type Pool struct {
	points []polyPoint
}

// NewPool returns a Pool sized for one glyph: capacity W*H*20 points,
// matching the bound in the design's resource model. Exceeding that
// capacity is a caller error; the arena never grows.
func NewPool() *Pool {
	return &Pool{points: make([]polyPoint, 0, W*H*20)}
}

// Reset empties the pool for the next glyph without releasing its
// backing array.
func (p *Pool) Reset() {
	p.points = p.points[:0]
}

// NumPoints reports how many points (live or dead) the pool currently
// holds. It exists for tests that want to probe the cleaner's progress.
func (p *Pool) NumPoints() int {
	return len(p.points)
}

func (p *Pool) add(x, y int16) int32 {
	if len(p.points) == cap(p.points) {
		panic(ErrCapacityExceeded)
	}
	idx := int32(len(p.points))
	p.points = append(p.points, polyPoint{Point: Point{X: x, Y: y}, prev: noPoint, next: noPoint})
	return idx
}

// newRing appends a new closed ring of points, in order, to the pool. A
// ring of a single point closes on itself (both prev and next point back
// at it); Clean rejects such a ring as a degenerate edge pair and panics,
// and no emitter in this package produces one.
func (p *Pool) newRing(pts [][2]int16) {
	if len(pts) == 0 {
		return
	}
	first := p.add(pts[0][0], pts[0][1])
	prev := first
	for _, xy := range pts[1:] {
		idx := p.add(xy[0], xy[1])
		p.points[prev].next = idx
		p.points[idx].prev = prev
		prev = idx
	}
	p.points[prev].next = first
	p.points[first].prev = prev
}

func (p *Pool) live(i int32) bool {
	return p.points[i].next != noPoint
}

func (p *Pool) kill(i int32) {
	pt := &p.points[i]
	pr, nx := pt.prev, pt.next
	p.points[pr].next = nx
	p.points[nx].prev = pr
	pt.prev, pt.next = noPoint, noPoint
}
