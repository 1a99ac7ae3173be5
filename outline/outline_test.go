// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package outline

import "testing"

func TestGetBasic(t *testing.T) {
	var b Bitmap
	b[0] = 0b10101 // columns 0, 2, 4 on

	tests := []struct {
		x, y, want int
	}{
		{0, 0, 1},
		{1, 0, 0},
		{2, 0, 1},
		{5, 0, 0},  // margin column, never set
		{-1, 0, 0}, // out of bounds
		{6, 0, 0},  // out of bounds
		{0, 9, 0},  // margin row, untouched
		{0, -1, 0}, // out of bounds
		{0, 10, 0}, // out of bounds
	}
	for _, tc := range tests {
		if got := Get(b, 0, tc.x, tc.y); got != tc.want {
			t.Errorf("Get(b, 0, %d, %d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestGetArabicJoin(t *testing.T) {
	var b Bitmap // all zero; row 5 has no set pixels anywhere

	if got := Get(b, FlagJoinLeft, -3, 5); got != 1 {
		t.Errorf("with FlagJoinLeft, Get(b, flags, -3, 5) = %d, want 1", got)
	}
	if got := Get(b, FlagJoinLeft, 0, 5); got != 1 {
		t.Errorf("with FlagJoinLeft, Get(b, flags, 0, 5) = %d, want 1", got)
	}
	if got := Get(b, 0, 0, 5); got != 0 {
		t.Errorf("without flags, Get(b, 0, 0, 5) = %d, want 0", got)
	}
	if got := Get(b, FlagJoinRight, W, 5); got != 1 {
		t.Errorf("with FlagJoinRight, Get(b, flags, W, 5) = %d, want 1", got)
	}
	if got := Get(b, FlagJoinRight, W+4, 5); got != 1 {
		t.Errorf("with FlagJoinRight, Get(b, flags, W+4, 5) = %d, want 1", got)
	}
	// The join flags are scoped to row 5 only.
	if got := Get(b, FlagJoinLeft, -1, 4); got != 0 {
		t.Errorf("FlagJoinLeft must not leak into row 4, got %d", got)
	}
}

func TestClassifyIsolatedPixelStaysSquare(t *testing.T) {
	// A pixel with no neighbours at all (straight or diagonal) has no
	// diagonal pattern to round off: neither trim condition's diagonal
	// neighbour is set, so all four corners stay filled. This follows
	// directly from the trim rules in ttxt.c's dochar: both conditions
	// require a *set* diagonal neighbour, which an isolated pixel lacks.
	var b Bitmap
	b[4] = 1 << uint(W-2-2) // column 2, row 4; every neighbour clear

	c := classifyCell(b, 0, 2, 4)
	want := Corner{TL: true, TR: true, BL: true, BR: true}
	if c != want {
		t.Errorf("classifyCell(isolated pixel) = %+v, want %+v", c, want)
	}
}

func TestClassifyAntiDiagonalTrim(t *testing.T) {
	// Two diagonally-adjacent pixels at (1,1) and (2,2), all else clear.
	var b Bitmap
	setPixel := func(b *Bitmap, x, y int) {
		b[y] |= 1 << uint(W-2-x)
	}
	setPixel(&b, 1, 1)
	setPixel(&b, 2, 2)

	c1 := classifyCell(b, 0, 1, 1)
	want1 := Corner{TL: true, TR: false, BL: false, BR: true}
	if c1 != want1 {
		t.Errorf("classifyCell(1,1) = %+v, want %+v", c1, want1)
	}

	c2 := classifyCell(b, 0, 2, 2)
	want2 := Corner{TL: true, TR: false, BL: false, BR: true}
	if c2 != want2 {
		t.Errorf("classifyCell(2,2) = %+v, want %+v", c2, want2)
	}

	// The off-cell diagonally between them, at (2,1), should gain a
	// triangle at its bl corner (left=1 at (1,1), above=1 at (2,0)? no:
	// bl condition is left=1, below=1, belowleft=0). Check the cell
	// directly above (2,2) and directly right of (1,1): (2,1).
	c3 := classifyCell(b, 0, 2, 1)
	if !c3.BL {
		t.Errorf("classifyCell(2,1).BL = false, want true (diagonal fill between the two on-pixels)")
	}
}

func TestClassifyGapAvoidance(t *testing.T) {
	// ". # # " row, "# . . " row below: a diagonal stem meeting a
	// horizontal stem must not get chipped at the join.
	var b Bitmap
	setPixel := func(b *Bitmap, x, y int) {
		b[y] |= 1 << uint(W-2-x)
	}
	setPixel(&b, 1, 0)
	setPixel(&b, 2, 0)
	setPixel(&b, 3, 0)
	setPixel(&b, 0, 1)

	// Cell (1,0): left=0, below=0 and belowleft=1 (the pixel at (0,1)),
	// so the main-diagonal trim clears TL and BR. The anti-diagonal trim
	// does not fire (aboveleft=0, and right=1). Gap avoidance then
	// restores BR, because the right neighbour (2,0) is set; TL stays
	// cleared, since left, aboveleft and above are all clear.
	c := classifyCell(b, 0, 1, 0)
	want := Corner{TL: false, TR: true, BL: true, BR: true}
	if c != want {
		t.Errorf("classifyCell(1,0) = %+v, want %+v", c, want)
	}
}

func TestBearing(t *testing.T) {
	tests := []struct {
		dx, dy int16
		want   int
	}{
		{0, 1, 0},
		{1, 1, 1},
		{1, 0, 2},
		{1, -1, 3},
		{0, -1, 4},
		{-1, -1, 5},
		{-1, 0, 6},
		{-1, 1, 7},
		{0, 0, NoBearing},
		{2, 1, NoBearing},
	}
	for _, tc := range tests {
		if got := Bearing(tc.dx, tc.dy); got != tc.want {
			t.Errorf("Bearing(%d, %d) = %d, want %d", tc.dx, tc.dy, got, tc.want)
		}
	}
}

func TestInline3(t *testing.T) {
	a := Point{0, 0}
	b := Point{2, 0}
	c := Point{5, 0}
	if !Inline3(a, b, c) {
		t.Errorf("Inline3(%v, %v, %v) = false, want true", a, b, c)
	}
	d := Point{2, 1}
	if Inline3(a, d, c) {
		t.Errorf("Inline3(%v, %v, %v) = true, want false", a, d, c)
	}
}

func TestPoolCapacityPanics(t *testing.T) {
	p := &Pool{points: make([]polyPoint, 0, 2)}
	defer func() {
		r := recover()
		if r != ErrCapacityExceeded {
			t.Fatalf("recovered %v, want ErrCapacityExceeded", r)
		}
	}()
	p.newRing([][2]int16{{0, 0}, {1, 0}, {1, 1}})
}

func TestBuildGlyphEmpty(t *testing.T) {
	var b Bitmap
	pool := NewPool()
	polys := BuildGlyph(pool, b, 0, nil)
	if len(polys) != 0 {
		t.Errorf("BuildGlyph(empty) produced %d polygons, want 0", len(polys))
	}
}

func fullBlockBitmap() Bitmap {
	var b Bitmap
	for y := 0; y < W+3; y++ { // rows 0..8 (the 9 active rows)
		b[y] = 0b11111
	}
	return b
}

func TestBuildGlyphFullBlock(t *testing.T) {
	pool := NewPool()
	polys := BuildGlyph(pool, fullBlockBitmap(), 0, nil)
	if len(polys) != 1 {
		t.Fatalf("BuildGlyph(full block) produced %d polygons, want 1", len(polys))
	}
	want := map[Point]bool{
		{0, 4}: true, {20, 4}: true, {20, 40}: true, {0, 40}: true,
	}
	poly := polys[0]
	if len(poly.Points) != 4 {
		t.Fatalf("full block polygon has %d vertices, want 4: %v", len(poly.Points), poly.Points)
	}
	for _, p := range poly.Points {
		if !want[p] {
			t.Errorf("unexpected vertex %v in full-block polygon %v", p, poly.Points)
		}
	}
	if !poly.Closed {
		t.Errorf("full-block polygon is not marked closed")
	}
	// The bl -> tl -> tr -> br traversal mandated for cell emission (see
	// DESIGN.md) winds outer boundaries clockwise in this package's
	// y-up lattice; what matters is that it is fixed and non-zero, not
	// its absolute sign.
	if area := shoelace(poly.Points); area >= 0 {
		t.Errorf("full-block polygon area = %d, want negative (clockwise, per the mandated corner traversal)", area)
	}
}

// shoelace returns twice the signed area of a closed polygon; positive
// for counter-clockwise vertex order in a y-up space.
func shoelace(pts []Point) int64 {
	var sum int64
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		sum += int64(a.X)*int64(b.Y) - int64(b.X)*int64(a.Y)
	}
	return sum
}

func TestCleanIdempotent(t *testing.T) {
	b := fullBlockBitmap()
	pool := NewPool()
	pool.Reset()
	grid := Classify(b, 0)
	for x := 0; x < W; x++ {
		for y := 0; y < H; y++ {
			pool.EmitCell(x, y, Get(b, 0, x, y) != 0, grid[x][y])
		}
	}
	var events []Event
	pool.Clean(EventSinkFunc(func(e Event) { events = append(events, e) }))
	before := append([]polyPoint(nil), pool.points...)

	var events2 []Event
	pool.Clean(EventSinkFunc(func(e Event) { events2 = append(events2, e) }))
	if len(events2) != 0 {
		t.Errorf("second Clean reported %d events, want 0", len(events2))
	}
	for i := range before {
		if before[i] != pool.points[i] {
			t.Errorf("point %d changed on second Clean: %+v -> %+v", i, before[i], pool.points[i])
		}
	}
}

func TestEmitSeversLinks(t *testing.T) {
	pool := NewPool()
	polys := BuildGlyph(pool, fullBlockBitmap(), 0, nil)
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	// A second Emit on the same pool (no Reset) must yield nothing: every
	// point was severed by the first walk.
	if more := pool.Emit(); len(more) != 0 {
		t.Errorf("second Emit() returned %d polygons, want 0", len(more))
	}
}

func TestLatticeInvariant(t *testing.T) {
	pool := NewPool()
	polys := BuildGlyph(pool, fullBlockBitmap(), 0, nil)
	for _, poly := range polys {
		for _, p := range poly.Points {
			if p.X < 0 || p.X > 4*W || p.Y < 0 || p.Y > 4*H {
				t.Errorf("vertex %v outside lattice [0,%d]x[0,%d]", p, 4*W, 4*H)
			}
		}
	}
}

func TestNoDegeneracies(t *testing.T) {
	pool := NewPool()
	polys := BuildGlyph(pool, fullBlockBitmap(), 0, nil)
	for _, poly := range polys {
		n := len(poly.Points)
		if n < 3 {
			t.Errorf("polygon has %d vertices, want >= 3", n)
		}
		for i := 0; i < n; i++ {
			a, b := poly.Points[i], poly.Points[(i+1)%n]
			if a == b {
				t.Errorf("consecutive duplicate vertex %v", a)
			}
		}
		for i := 0; i < n; i++ {
			a := poly.Points[(i-1+n)%n]
			b := poly.Points[i]
			c := poly.Points[(i+1)%n]
			if Inline3(a, b, c) {
				t.Errorf("collinear vertex %v survived cleaning (between %v and %v)", b, a, c)
			}
		}
	}
}
