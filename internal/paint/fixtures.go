package paint

import (
	"image"

	"blockatlas/internal/iso"
)

// FencePost draws a thin post: a 2x2 cap and two one-pixel columns.
func (c *Canvas) FencePost(at image.Point, t Tile) {
	if !t.Valid() {
		return
	}
	B := c.B
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			c.Img.SetNRGBA(at.X+2*B-1+x, at.Y+B-1+y, t.Img.NRGBAAt(x, y))
		}
	}
	for y := 0; y < 2*B; y++ {
		c.Img.SetNRGBA(at.X+2*B-1, at.Y+B+1+y, t.Img.NRGBAAt(0, y))
		c.Img.SetNRGBA(at.X+2*B, at.Y+B+1+y, t.Img.NRGBAAt(0, y))
	}
}

// Fence draws the post and any of the four rails. Back rails go first so
// the post covers them.
func (c *Canvas) Fence(at image.Point, t Tile, rails Sides, post bool) {
	B := c.B
	rail := func(row int) bool { return (row*2/B)%4 == 1 }
	src := T(t.Img)
	if rails&North != 0 {
		c.run(pass{dst: c.face(at, B, B/2, 1), src: src, op: replace,
			keep: func(col, row int) bool { return col < B && rail(row) }})
	}
	if rails&East != 0 {
		c.run(pass{dst: c.face(at, B, B*3/2, -1), src: src, op: replace,
			keep: func(col, row int) bool { return col >= B && rail(row) }})
	}
	if post {
		c.FencePost(at, t)
	}
	if rails&South != 0 {
		c.run(pass{dst: c.face(at, B, B/2, 1), src: src, op: replace,
			keep: func(col, row int) bool { return col >= B && rail(row) }})
	}
	if rails&West != 0 {
		c.run(pass{dst: c.face(at, B, B*3/2, -1), src: src, op: replace,
			keep: func(col, row int) bool { return col < B && rail(row) }})
	}
}

// StoneWallPost draws the square pillar of a wall.
func (c *Canvas) StoneWallPost(at image.Point, t Tile) {
	q := c.cut(4)
	c.OffsetW(at, t, 0.8, q, Crop{Left: q, Right: q})
	c.OffsetS(at, t, 0.6, q, Crop{Left: q, Right: q})
	c.OffsetU(at, t, 0, Crop{Top: q, Bottom: q, Left: q, Right: q})
}

// StoneWall draws a straight wall section without a post, running
// north-south when ns is set and east-west otherwise.
func (c *Canvas) StoneWall(at image.Point, t Tile, ns bool) {
	low, in := c.cut(3), c.cut(5)
	if ns {
		c.OffsetW(at, t, 0.8, in, Crop{Top: low})
		c.OffsetS(at, t, 0.6, 0, Crop{Top: low, Left: in, Right: in})
		c.OffsetU(at, t, low, Crop{Top: in, Bottom: in})
		return
	}
	c.OffsetW(at, t, 0.8, 0, Crop{Top: low, Left: in, Right: in})
	c.OffsetS(at, t, 0.6, in, Crop{Top: low})
	c.OffsetU(at, t, low, Crop{Bottom: -1, Left: in, Right: in})
}

// StoneWallConnected draws a wall post with any combination of rails.
func (c *Canvas) StoneWallConnected(at image.Point, t Tile, rails Sides) {
	size := c.TileSize()
	low, q, in := c.cut(3), c.cut(4), c.cut(5)
	if rails&North != 0 {
		c.OffsetW(at, t, 0.8, in, Crop{Top: low, Right: size - q})
		c.OffsetU(at, t, low, Crop{Top: in, Bottom: in, Right: size - q})
	}
	if rails&East != 0 {
		c.OffsetS(at, t, 0.6, in, Crop{Top: low, Left: size - q})
		c.OffsetU(at, t, low, Crop{Bottom: size - q, Left: in, Right: in})
	}
	c.StoneWallPost(at, t)
	if rails&South != 0 {
		c.OffsetW(at, t, 0.8, in, Crop{Top: low, Left: size - q})
		c.OffsetS(at, t, 0.6, 0, Crop{Top: low, Left: in, Right: in})
		c.OffsetU(at, t, low, Crop{Top: in, Bottom: in, Left: size - q})
	}
	if rails&West != 0 {
		c.OffsetW(at, t, 0.8, 0, Crop{Top: low, Left: in, Right: in})
		c.OffsetS(at, t, 0.6, in, Crop{Top: low, Right: size - q})
		c.OffsetU(at, t, low, Crop{Top: size - q, Bottom: -1, Left: in, Right: in})
	}
}

// Beacon draws the pedestal and heart, then alpha-blits the already drawn
// cover slot over them.
func (c *Canvas) Beacon(at image.Point, pedestal, heart Tile, cover image.Rectangle) {
	size := c.TileSize()
	e, h := c.cut(2), c.cut(3)
	c.OffsetW(at, pedestal, 0.9, e, Crop{Top: size - h, Left: e, Right: e})
	c.OffsetS(at, pedestal, 0.8, e, Crop{Top: size - h, Left: e, Right: e})
	c.OffsetU(at, pedestal, 2*c.B-h, Crop{Top: e, Bottom: e, Left: e, Right: e})

	c.OffsetW(at, heart, 0.9, h, Crop{Top: h, Bottom: h, Left: h, Right: h})
	c.OffsetS(at, heart, 0.8, h, Crop{Top: h, Bottom: h, Left: h, Right: h})
	c.OffsetU(at, heart, h, Crop{Top: h, Bottom: h, Left: h, Right: h})

	iso.AlphaBlit(c.Img, cover, c.Img, at)
}

// Anvil draws an anvil running north-south (orientation 0) or east-west.
func (c *Canvas) Anvil(at image.Point, t, face Tile, orientation int) {
	size := c.TileSize()
	c2, c3, c4, c5, c6, c10 := c.cut(2), c.cut(3), c.cut(4), c.cut(5), c.cut(6), c.cut(10)
	ns := orientation == 0

	// base
	c.OffsetU(at, t, 2*c.B-c4, Crop{c2, c2, c2, c2})
	c.OffsetW(at, t, 0.85, c2, Crop{Top: size - c4, Left: c2, Right: c2})
	c.OffsetS(at, t, 0.7, c2, Crop{Top: size - c4, Left: c2, Right: c2})

	// second base
	n, w := c5, c3
	if ns {
		n, w = c3, c5
	}
	c.OffsetU(at, t, 2*c.B-c5, Crop{Top: w, Bottom: w, Left: n, Right: n})
	c.OffsetW(at, t, 0.85, w, Crop{Top: size - c5, Bottom: c4, Left: n, Right: n})
	c.OffsetS(at, t, 0.7, n, Crop{Top: size - c5, Bottom: c4, Left: w, Right: w})

	// pillar
	n, w = c2, 0
	if ns {
		n, w = 0, c2
	}
	c.OffsetW(at, t, 0.85, c4+w, Crop{Top: c6, Bottom: c5, Left: c4 + n, Right: c4 + n})
	c.OffsetS(at, t, 0.7, c4+n, Crop{Top: c6, Bottom: c5, Left: c4 + w, Right: c4 + w})

	// face
	n, w = c3, 0
	rot := 0
	if ns {
		n, w = 0, c3
		rot = 1
	}
	c.OffsetU(at, t, 0, Crop{Top: w, Bottom: w, Left: n, Right: n})
	c.run(pass{dst: c.uFace(at), src: T(face.Img).Rotated(rot, false), op: stamp})
	c.OffsetW(at, t, 0.85, w, Crop{Bottom: c10, Left: n, Right: n})
	c.OffsetS(at, t, 0.7, n, Crop{Bottom: c10, Left: w, Right: w})
}

// Hopper draws the funnel, the rim and the inside of a hopper.
func (c *Canvas) Hopper(at image.Point, base, inside Tile) {
	c4, c6, c10 := c.cut(4), c.cut(6), c.cut(10)
	c.OffsetW(at, base, 0.85, c6, Crop{Top: 2 * c6, Left: c6, Right: c6})
	c.OffsetS(at, base, 0.7, c6, Crop{Top: 2 * c6, Left: c6, Right: c6})

	c.OffsetW(at, base, 0.85, c4, Crop{Top: c6, Bottom: c4, Left: c4, Right: c4})
	c.OffsetS(at, base, 0.7, c4, Crop{Top: c6, Bottom: c4, Left: c4, Right: c4})

	c.PartialSingleFace(at, base, PlaneN, Crop{Bottom: c10})
	c.PartialSingleFace(at, base, PlaneE, Crop{Bottom: c10})
	c.OffsetU(at, inside, c4, Crop{})
	c.OffsetW(at, base, 0.85, 0, Crop{Bottom: c10})
	c.OffsetS(at, base, 0.7, 0, Crop{Bottom: c10})
}

// PotContent selects what a flower pot holds.
type PotContent int

const (
	PotEmpty  PotContent = iota
	PotPlant             // drawn as an item cross
	PotCactus            // drawn as a small block
)

// FlowerPot draws a pot filled with filler and optionally content.
func (c *Canvas) FlowerPot(at image.Point, pot, filler, content Tile, kind PotContent) {
	c4, c5, c6, c10, c11, c12 := c.cut(4), c.cut(5), c.cut(6), c.cut(10), c.cut(11), c.cut(12)
	c.OffsetW(at, pot, 0.9, c11, Crop{Top: c10, Left: c5, Right: c5})
	c.OffsetS(at, pot, 0.8, c11, Crop{Top: c10, Left: c5, Right: c5})
	c.OffsetU(at, filler, c12, Crop{c6, c6, c6, c6})
	if kind == PotCactus {
		c.OffsetW(at, content, 0.9, c6, Crop{Bottom: c4, Left: c6, Right: c6})
		c.OffsetS(at, content, 0.8, c6, Crop{Bottom: c4, Left: c6, Right: c6})
		c.OffsetU(at, content, 0, Crop{c6, c6, c6, c6})
	}
	c.OffsetW(at, pot, 0.9, c5, Crop{Top: c10, Left: c5, Right: c5})
	c.OffsetS(at, pot, 0.8, c5, Crop{Top: c10, Left: c5, Right: c5})
	if kind == PotPlant {
		c.Item(at.Sub(image.Pt(0, c4)), content, AllSides)
	}
}

// Sign draws a post with the upper half of face in front of it.
func (c *Canvas) Sign(at image.Point, face, pole Tile) {
	c.FencePost(at, pole)
	B := c.B
	c.run(pass{dst: c.face(at, B, B, 0), src: T(face.Img), op: replace,
		keep: func(_, row int) bool { return row < B }})
}

// WallLever draws a lever mounted on plane p.
func (c *Canvas) WallLever(at image.Point, base, lever Tile, p Plane) {
	c5, c8 := c.cut(5), c.cut(8)
	c.PartialSingleFace(at, base, p, Crop{Top: c8, Left: c5, Right: c5})
	c.SingleFace(at, lever, p)
}

// FloorLeverNS draws a floor lever whose base runs north-south.
func (c *Canvas) FloorLeverNS(at image.Point, base, lever Tile) {
	c4, c5 := c.cut(4), c.cut(5)
	c.OffsetU(at, base, c.cut(16), Crop{Top: c5, Bottom: c5, Left: c4, Right: c4})
	c.Item(at, lever, AllSides)
}

// FloorLeverEW draws a floor lever whose base runs east-west.
func (c *Canvas) FloorLeverEW(at image.Point, base, lever Tile) {
	c4, c5 := c.cut(4), c.cut(5)
	c.OffsetU(at, base, c.cut(16), Crop{Top: c4, Bottom: c4, Left: c5, Right: c5})
	c.Item(at, lever, AllSides)
}

// CeilLever draws a lever hanging from the ceiling.
func (c *Canvas) CeilLever(at image.Point, lever Tile) {
	c.Item(at, lever.Rotated(2, false), AllSides)
}

// Repeater draws a rotated floor plate with a torch on it.
func (c *Canvas) Repeater(at image.Point, base, torch Tile, rot int) {
	c.Floor(at, base.Rotated(rot, false))
	c.Item(at, torch, AllSides)
}

// BrewingStand draws the base plate with the stand as an item cross.
func (c *Canvas) BrewingStand(at image.Point, base, stand Tile) {
	c.Floor(at, base)
	c.Item(at, stand, AllSides)
}

// Cauldron draws the back walls, the liquid surface cut off pixels below
// the rim, then the front walls. A zero cutoff means empty.
func (c *Canvas) Cauldron(at image.Point, side, liquid Tile, cutoff int) {
	c.SingleFace(at, side, PlaneE)
	c.SingleFace(at, side, PlaneN)
	if cutoff > 0 {
		c.PartialBlock(at, liquid, liquid, liquid, FaceU, cutoff, 0, true)
	}
	c.SingleFace(at, side, PlaneW)
	c.SingleFace(at, side, PlaneS)
}

// AnchoredFace draws t on the selected planes and, with Up, the top face.
func (c *Canvas) AnchoredFace(at image.Point, t Tile, sides Sides) {
	if sides&North != 0 {
		c.SingleFace(at, t, PlaneN)
	}
	if sides&South != 0 {
		c.SingleFace(at, t, PlaneS)
	}
	if sides&West != 0 {
		c.SingleFace(at, t, PlaneW)
	}
	if sides&East != 0 {
		c.SingleFace(at, t, PlaneE)
	}
	if sides&Up != 0 {
		c.Ceil(at, t, 0)
	}
}
