// Package iso holds the pixel-level building blocks of the isometric block
// images: coordinate iterators over cube faces and source tiles, per-pixel
// operators and a few whole-image helpers.
//
// Every block image is a hexagon inside a 4Bx4B rectangle. Example for B = 3,
// where U marks pixels of the top face and W/S the two upright faces:
//
//	    UU
//	  UUUUUU
//	UUUUUUUUUU
//	WUUUUUUUUUUS
//	WWWUUUUUUSSS
//	WWWWWUUSSSSS
//	WWWWWWSSSSSS
//	WWWWWWSSSSSS
//	WWWWWWSSSSSS
//	 WWWWWSSSSS
//	   WWWSSS
//	     WS
package iso

// Point is one step of an iterator: the pixel coordinate plus the number of
// steps taken before it.
type Point struct {
	X, Y int
	Pos  int
}

// Column is the index of the source column this step belongs to.
func (p Point) Column(size int) int { return p.Pos / size }

// Row is the index of the step within its column.
func (p Point) Row(size int) int { return p.Pos % size }

// Iterator walks a finite sequence of exactly size*size coordinates.
// Results are only meaningful until Done reports true.
type Iterator interface {
	Done() bool
	At() Point
	Advance()
}

// FaceIter walks a size x size parallelogram column by column. The y
// coordinate is skewed by skew every two columns: +1 for the W face, -1 for
// the S face and 0 for a plain source rectangle.
type FaceIter struct {
	p    Point
	done bool
	size int
	skew int
}

// NewFaceIter starts a face walk at (x, y).
func NewFaceIter(x, y, skew, size int) *FaceIter {
	return &FaceIter{p: Point{X: x, Y: y}, size: size, skew: skew, done: size <= 0}
}

func (it *FaceIter) Done() bool { return it.done }
func (it *FaceIter) At() Point  { return it.p }

func (it *FaceIter) Advance() {
	it.p.Pos++
	if it.p.Pos >= it.size*it.size {
		it.done = true
		return
	}
	it.p.Y++
	if it.p.Pos%it.size == 0 {
		it.p.X++
		it.p.Y -= it.size
		if it.p.Pos%(2*it.size) == it.size {
			it.p.Y += it.skew
		}
	}
}

// RotatedIter walks a size x size source square in one of four rotations,
// optionally mirrored horizontally. Rotation 0 reads down then right,
// 1 left then down, 2 up then left and 3 right then up.
type RotatedIter struct {
	p        Point
	done     bool
	size     int
	dx1, dy1 int
	dx2, dy2 int
	rot      int
	flipX    bool
}

// NewRotatedIter starts a rotated walk over the square whose top-left
// corner is (x, y).
func NewRotatedIter(x, y, rot, size int, flipX bool) *RotatedIter {
	it := &RotatedIter{size: size, rot: rot & 3, flipX: flipX, done: size <= 0}
	last := size - 1
	switch it.rot {
	case 0:
		it.p = Point{X: x, Y: y}
		if flipX {
			it.p.X = x + last
		}
		it.dx1, it.dy1 = 0, 1
		it.dx2, it.dy2 = sign(!flipX), 0
	case 1:
		it.p = Point{X: x + last, Y: y}
		if flipX {
			it.p.X = x
		}
		it.dx1, it.dy1 = sign(flipX), 0
		it.dx2, it.dy2 = 0, 1
	case 2:
		it.p = Point{X: x + last, Y: y + last}
		if flipX {
			it.p.X = x
		}
		it.dx1, it.dy1 = 0, -1
		it.dx2, it.dy2 = sign(flipX), 0
	default:
		it.p = Point{X: x, Y: y + last}
		if flipX {
			it.p.X = x + last
		}
		it.dx1, it.dy1 = sign(!flipX), 0
		it.dx2, it.dy2 = 0, -1
	}
	return it
}

// NewSourceIter reads a square top to bottom, left to right.
func NewSourceIter(x, y, size int) *RotatedIter {
	return NewRotatedIter(x, y, 0, size, false)
}

func sign(positive bool) int {
	if positive {
		return 1
	}
	return -1
}

func (it *RotatedIter) Done() bool { return it.done }
func (it *RotatedIter) At() Point  { return it.p }

func (it *RotatedIter) Advance() {
	it.p.Pos++
	if it.p.Pos >= it.size*it.size {
		it.done = true
		return
	}
	it.p.X += it.dx1
	it.p.Y += it.dy1
	if it.p.Pos%it.size == 0 {
		it.p.X += it.dx2 - it.dx1*it.size
		it.p.Y += it.dy2 - it.dy1*it.size
	}
}

// TopFaceIter walks the rhombus of the top face. Columns alternate between
// two phases: even columns descend before stepping left, odd columns step
// before descending, which keeps the outline straight.
type TopFaceIter struct {
	p    Point
	done bool
	size int
}

// NewTopFaceIter starts a top-face walk at (x, y); for a block image the
// start is [2B-1, 0] relative to the slot.
func NewTopFaceIter(x, y, size int) *TopFaceIter {
	return &TopFaceIter{p: Point{X: x, Y: y}, size: size, done: size <= 0}
}

func (it *TopFaceIter) Done() bool { return it.done }
func (it *TopFaceIter) At() Point  { return it.p }

func (it *TopFaceIter) Advance() {
	m := it.p.Pos % it.size
	if (it.p.Pos/it.size)%2 == 0 {
		switch {
		case m == it.size-1:
			it.p.X += it.size - 1
			it.p.Y -= it.size / 2
		case m == it.size-2:
			it.p.Y++
		case m%2 == 0:
			it.p.X--
			it.p.Y++
		default:
			it.p.X--
		}
	} else {
		switch {
		case m == 0:
			it.p.Y++
		case m == it.size-1:
			it.p.X += it.size - 1
			it.p.Y -= it.size/2 - 1
		case m%2 == 0:
			it.p.X--
			it.p.Y++
		default:
			it.p.X--
		}
	}
	it.p.Pos++
	if it.p.Pos >= it.size*it.size {
		it.done = true
	}
}

// Walk calls fn for every step of it.
func Walk(it Iterator, fn func(p Point)) {
	for ; !it.Done(); it.Advance() {
		fn(it.At())
	}
}

// Pair drives src and dst in lockstep until either one is exhausted.
func Pair(src, dst Iterator, fn func(s, d Point)) {
	for !src.Done() && !dst.Done() {
		fn(src.At(), dst.At())
		src.Advance()
		dst.Advance()
	}
}

// Points collects the remaining steps of it.
func Points(it Iterator) []Point {
	var out []Point
	Walk(it, func(p Point) { out = append(out, p) })
	return out
}
