package paint

import (
	"image"

	"blockatlas/internal/iso"
)

// Item draws two flat copies of t crossing at the block centre, like a
// sapling. sides picks which halves of the two planes are drawn.
func (c *Canvas) Item(at image.Point, t Tile, sides Sides) {
	B, half := c.B, c.B
	if sides&East != 0 {
		c.run(pass{dst: c.face(at, B, B*3/2, -1), src: t, op: over,
			keep: func(col, _ int) bool { return col >= half }})
	}
	if sides&(North|South) != 0 {
		n, s := sides&North != 0, sides&South != 0
		c.run(pass{dst: c.face(at, B, B/2, 1), src: t, op: over,
			keep: func(col, _ int) bool { return (s && col >= half) || (n && col < half) }})
	}
	if sides&West != 0 {
		c.run(pass{dst: c.face(at, B, B*3/2, -1), src: t, op: over,
			keep: func(col, _ int) bool { return col < half }})
	}
}

// MultiItem draws four flat copies of t forming a square, like crops.
func (c *Canvas) MultiItem(at image.Point, t Tile) {
	B := c.B
	c.run(pass{dst: c.face(at, B/2, B*5/4, -1), src: t, op: over})
	c.run(pass{dst: c.face(at, 3*B/2, B*7/4, -1), src: t, op: over})
	c.run(pass{dst: c.face(at, B/2, B*3/4, 1), src: t, op: over})
	c.run(pass{dst: c.face(at, 3*B/2, B/4, 1), src: t, op: over})
}

func (c *Canvas) plane(at image.Point, p Plane) iso.Iterator {
	B := c.B
	switch p {
	case PlaneE:
		return c.face(at, 2*B, 0, 1)
	case PlaneW:
		return c.face(at, 0, B, 1)
	case PlaneS:
		return c.face(at, 2*B, 2*B, -1)
	default:
		return c.face(at, 0, B, -1)
	}
}

// SingleFace blends t onto one upright plane.
func (c *Canvas) SingleFace(at image.Point, t Tile, p Plane) {
	c.run(pass{dst: c.plane(at, p), src: t, op: over})
}

// PartialSingleFace blends the part of t left after crop onto one plane.
func (c *Canvas) PartialSingleFace(at image.Point, t Tile, p Plane, crop Crop) {
	c.run(pass{dst: c.plane(at, p), src: t, op: over, keep: crop.keep(c.TileSize())})
}

// Floor draws t flat on the bottom of the block.
func (c *Canvas) Floor(at image.Point, t Tile) {
	c.run(pass{dst: c.top(at, 2*c.B-1, 2*c.B), src: t, op: replace})
}

// AngledFloor draws t on the bottom of the block tilted upward toward up:
// 0 raises the S edge, 1 the W edge, 2 the N edge and 3 the E edge.
func (c *Canvas) AngledFloor(at image.Point, t Tile, up int) {
	if !t.Valid() {
		return
	}
	size := c.TileSize()
	iso.Pair(t.iter(size), c.top(at, 2*c.B-1, 2*c.B), func(s, d iso.Point) {
		row, col := d.Row(size), d.Column(size)
		var yoff int
		switch up {
		case 0:
			yoff = size - 1 - row
		case 1:
			yoff = col
		case 2:
			yoff = row
		case 3:
			yoff = size - 1 - col
		}
		px := t.Img.NRGBAAt(s.X, s.Y)
		c.apply(d.X, d.Y-yoff, px, over)
		c.apply(d.X, d.Y-yoff+1, px, over)
	})
}

// Ceil draws t on the top face, read with rotation rot.
func (c *Canvas) Ceil(at image.Point, t Tile, rot int) {
	c.run(pass{dst: c.uFace(at), src: t.Rotated(rot, false), op: replace})
}

func (crop Crop) keep(size int) func(col, row int) bool {
	return func(col, row int) bool {
		return row >= crop.Top && row < size-crop.Bottom && col >= crop.Left && col < size-crop.Right
	}
}

// OffsetW draws the W face pushed offset pixels into the block, cropped and
// darkened by f.
func (c *Canvas) OffsetW(at image.Point, t Tile, f float64, offset int, crop Crop) {
	size := c.TileSize()
	dy := c.B - iso.Deinterpolate(offset, 2*size, size)
	c.run(pass{dst: c.face(at, offset, dy, 1), src: T(t.Img), op: tint(f), keep: crop.keep(size)})
}

// OffsetS is OffsetW for the S face.
func (c *Canvas) OffsetS(at image.Point, t Tile, f float64, offset int, crop Crop) {
	size := c.TileSize()
	dy := 2*c.B - iso.Deinterpolate(offset, 2*size, size)
	c.run(pass{dst: c.face(at, 2*c.B-offset, dy, -1), src: T(t.Img), op: tint(f), keep: crop.keep(size)})
}

// OffsetU blends the top face lowered by offset pixels and cropped. When
// the top crop is even the row window alternates by one pixel per column
// so the cut edge stays straight on the rhombus.
func (c *Canvas) OffsetU(at image.Point, t Tile, offset int, crop Crop) {
	size := c.TileSize()
	c.run(pass{dst: c.top(at, 2*c.B-1, offset), src: T(t.Img), op: over, keep: func(col, row int) bool {
		adjust := 0
		if crop.Top%2 == 0 {
			adjust = 1
			if col%2 == 0 {
				adjust = -1
			}
		}
		return row >= crop.Top+adjust && row < size-crop.Bottom+adjust && col >= crop.Left && col < size-crop.Right
	}})
}
