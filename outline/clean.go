// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package outline

// NoBearing names a direction that isn't a multiple of 45 degrees
// (including the zero vector).
const NoBearing = -1

// Bearing names one of the eight compass directions a vector points in,
// at multiples of 45 degrees, or NoBearing for anything else.
func Bearing(dx, dy int16) int {
	switch {
	case dx == 0 && dy > 0:
		return 0
	case dx == dy && dx > 0:
		return 1
	case dx > 0 && dy == 0:
		return 2
	case dx == -dy && dx > 0:
		return 3
	case dx == 0 && dy < 0:
		return 4
	case dx == dy && dx < 0:
		return 5
	case dx < 0 && dy == 0:
		return 6
	case dx == -dy && dx < 0:
		return 7
	}
	return NoBearing
}

func vecBearing(a, b Point) int {
	return Bearing(b.X-a.X, b.Y-a.Y)
}

// Inline3 holds when a->b and b->c share a bearing that is a multiple of
// 45 degrees, i.e. b sits on the straight line through a and c.
func Inline3(a, b, c Point) bool {
	ab := vecBearing(a, b)
	return ab == vecBearing(b, c) && ab != NoBearing
}

func inline4(a, b, c, d Point) bool {
	return Inline3(a, b, c) && Inline3(b, c, d)
}

// fixIdentical kills p if it has the same coordinates as its successor.
func (pl *Pool) fixIdentical(sink EventSink, i int32) {
	if !pl.live(i) {
		return
	}
	n := pl.points[i].next
	if pl.points[i].Point == pl.points[n].Point {
		report(sink, Event{Kind: EventIdenticalRepair, Point: pl.points[i].Point})
		pl.kill(i)
	}
}

// fixCollinear kills p if it lies on the straight line between its
// neighbours with the same bearing on both sides.
func (pl *Pool) fixCollinear(sink EventSink, i int32) {
	if !pl.live(i) {
		return
	}
	prev, next := pl.points[i].prev, pl.points[i].next
	if Inline3(pl.points[prev].Point, pl.points[i].Point, pl.points[next].Point) {
		report(sink, Event{Kind: EventCollinearRepair, Point: pl.points[i].Point})
		pl.kill(i)
	}
}

// fixIsolated kills p if it is a self-looped singleton ring.
func (pl *Pool) fixIsolated(i int32) {
	if pl.points[i].next == i {
		pl.kill(i)
	}
}

// fixEdges tests whether the edge leaving a0 and the edge leaving b0 are
// parallel, anti-directed, and collinear-overlapping or share an
// endpoint; if so it rewires them to merge (or split) the rings a0 and
// b0 belong to, then locally cleans up the four affected points.
// Reports whether a merge happened.
func (pl *Pool) fixEdges(sink EventSink, a0, b0 int32) bool {
	a1, b1 := pl.points[a0].next, pl.points[b0].next

	if pl.points[a1].prev != a0 || pl.points[b1].prev != b0 {
		panic("outline: broken ring consistency before merge")
	}
	if a0 == a1 || a0 == b0 || a1 == b1 || b0 == b1 {
		panic("outline: degenerate edge pair in fixEdges")
	}

	pa0, pa1 := pl.points[a0].Point, pl.points[a1].Point
	pb0, pb1 := pl.points[b0].Point, pl.points[b1].Point

	if Bearing(pa0.X-pa1.X, pa0.Y-pa1.Y) != Bearing(pb1.X-pb0.X, pb1.Y-pb0.Y) {
		return false
	}
	mergeable := inline4(pa0, pb1, pa1, pb0) ||
		inline4(pa0, pb1, pb0, pa1) ||
		inline4(pb1, pa0, pb0, pa1) ||
		inline4(pb1, pa0, pa1, pb0) ||
		pa0 == pb1 || pa1 == pb0
	if !mergeable {
		return false
	}

	pl.points[a0].next, pl.points[b1].prev = b1, a0
	pl.points[b0].next, pl.points[a1].prev = a1, b0

	pl.fixIsolated(a0)
	pl.fixIdentical(sink, a0)
	pl.fixCollinear(sink, b1)
	pl.fixIsolated(b0)
	pl.fixIdentical(sink, b0)
	pl.fixCollinear(sink, a1)
	return true
}

// Clean repeatedly sweeps all ordered pairs of live points, merging any
// pair whose leaving edges are mergeable, until a sweep makes no further
// progress. Each round strictly reduces the ring count or the total
// vertex count, so the sweep terminates. Diagnostics for collinear and
// identical repairs are reported to sink, which may be nil.
//
// Clean is idempotent at its fixed point: invoking it again on an
// already-clean pool performs no merges and reports no events.
func (pl *Pool) Clean(sink EventSink) {
	for {
		dirty := false
		n := int32(len(pl.points))
		for i := int32(0); i < n; i++ {
			if !pl.live(i) {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !pl.live(i) {
					break
				}
				if !pl.live(j) {
					continue
				}
				if pl.fixEdges(sink, i, j) {
					dirty = true
				}
			}
		}
		if !dirty {
			return
		}
	}
}
