package paint

import (
	"image"

	"blockatlas/internal/iso"
)

// Stairs are drawn from two tiles: ws for both upright faces and u for the
// treads. Names give the direction the stairs ascend toward.

// topCut is the row splitting a top-face column into its upper and lower
// halves. With even B the halves alternate between B-1 and B+1 pixels.
func (c *Canvas) topCut(col int) int {
	if c.B%2 != 0 {
		return c.B
	}
	if col%2 == 0 {
		return c.B - 1
	}
	return c.B + 1
}

// leftHalf keeps the first B columns of a top face; with odd B the last
// pixel is traded for the first pixel of the next column.
func (c *Canvas) leftHalf() func(col, row int) bool {
	size := c.TileSize()
	cut, extra := size*c.B, false
	if c.B%2 == 1 {
		cut, extra = cut-1, true
	}
	return func(col, row int) bool {
		pos := col*size + row
		return pos < cut || (extra && pos == cut+1)
	}
}

func (c *Canvas) rightHalf() func(col, row int) bool {
	size := c.TileSize()
	cut, extra := size*c.B, false
	if c.B%2 == 1 {
		cut, extra = cut+1, true
	}
	return func(col, row int) bool {
		pos := col*size + row
		return pos >= cut || (extra && pos == cut-2)
	}
}

// oddNudge moves alternating columns of the inner riser down one pixel
// when B is odd; parity picks the columns.
func (c *Canvas) oddNudge(parity int) func(col, row int) int {
	return func(col, _ int) int {
		if c.B%2 == 1 && col%2 == parity {
			return 1
		}
		return 0
	}
}

func (c *Canvas) stairW(at image.Point, ws Tile, keep func(col, row int) bool) {
	c.run(pass{dst: c.wFace(at), src: T(ws.Img), op: shade(iso.ShadeW), keep: keep})
}

func (c *Canvas) stairS(at image.Point, ws Tile, keep func(col, row int) bool) {
	c.run(pass{dst: c.sFace(at), src: T(ws.Img), op: shade(iso.ShadeS), keep: keep})
}

func (c *Canvas) stairU(at image.Point, dy int, u Tile, keep func(col, row int) bool) {
	c.run(pass{dst: c.top(at, 2*c.B-1, dy), src: T(u.Img), op: replace, keep: keep})
}

// StairsE draws stairs ascending east.
func (c *Canvas) StairsE(at image.Point, ws, u Tile) {
	B := c.B
	c.stairW(at, ws, func(_, row int) bool { return row >= B })
	c.stairS(at, ws, func(col, row int) bool { return row >= B || col >= B })
	c.stairU(at, 0, u, func(col, row int) bool { return row < c.topCut(col) })
	c.run(pass{dst: c.face(at, B, B/2, 1), src: T(ws.Img), op: shade(iso.ShadeW),
		keep: func(_, row int) bool { return row < B }, dy: c.oddNudge(0)})
	c.stairU(at, B, u, func(col, row int) bool { return row >= c.topCut(col) })
}

// InvStairsE draws upside-down stairs ascending east.
func (c *Canvas) InvStairsE(at image.Point, ws, u Tile) {
	B := c.B
	c.run(pass{dst: c.face(at, B, B/2, 1), src: T(ws.Img), op: shade(iso.ShadeW),
		keep: func(_, row int) bool { return row >= B }, dy: c.oddNudge(0)})
	c.stairW(at, ws, func(_, row int) bool { return row < B })
	c.stairS(at, ws, func(col, row int) bool { return row < B || col >= B })
	c.stairU(at, 0, u, nil)
}

// StairsW draws stairs ascending west.
func (c *Canvas) StairsW(at image.Point, ws, u Tile) {
	B := c.B
	c.stairU(at, B, u, func(col, row int) bool { return row < c.topCut(col) })
	c.stairU(at, 0, u, func(col, row int) bool { return row >= c.topCut(col) })
	c.stairW(at, ws, nil)
	c.stairS(at, ws, func(col, row int) bool { return row >= B || col < B })
}

// InvStairsW draws upside-down stairs ascending west.
func (c *Canvas) InvStairsW(at image.Point, ws, u Tile) {
	B := c.B
	c.stairU(at, 0, u, nil)
	c.stairW(at, ws, nil)
	c.stairS(at, ws, func(col, row int) bool { return row < B || col < B })
}

// StairsN draws stairs ascending north.
func (c *Canvas) StairsN(at image.Point, ws, u Tile) {
	B := c.B
	c.stairW(at, ws, func(col, row int) bool { return row >= B || col < B })
	c.stairS(at, ws, func(_, row int) bool { return row >= B })
	c.stairU(at, 0, u, c.leftHalf())
	c.run(pass{dst: c.face(at, B, 3*B/2, -1), src: T(ws.Img), op: shade(iso.ShadeS),
		keep: func(_, row int) bool { return row < B }, dy: c.oddNudge(1)})
	c.stairU(at, B, u, c.rightHalf())
}

// InvStairsN draws upside-down stairs ascending north.
func (c *Canvas) InvStairsN(at image.Point, ws, u Tile) {
	B := c.B
	c.run(pass{dst: c.face(at, B, 3*B/2, -1), src: T(ws.Img), op: shade(iso.ShadeS),
		keep: func(_, row int) bool { return row >= B }, dy: c.oddNudge(1)})
	c.stairS(at, ws, func(_, row int) bool { return row < B })
	c.stairW(at, ws, func(col, row int) bool { return row < B || col < B })
	c.stairU(at, 0, u, nil)
}

// StairsS draws stairs ascending south.
func (c *Canvas) StairsS(at image.Point, ws, u Tile) {
	B := c.B
	c.stairU(at, B, u, c.leftHalf())
	c.stairU(at, 0, u, c.rightHalf())
	c.stairW(at, ws, func(col, row int) bool { return row >= B || col >= B })
	c.stairS(at, ws, nil)
}

// InvStairsS draws upside-down stairs ascending south.
func (c *Canvas) InvStairsS(at image.Point, ws, u Tile) {
	B := c.B
	c.stairU(at, 0, u, nil)
	c.stairS(at, ws, nil)
	c.stairW(at, ws, func(col, row int) bool { return row < B || col >= B })
}

// DragonEgg draws a half-size block sitting in the lower front corner.
func (c *Canvas) DragonEgg(at image.Point, t Tile) {
	B := c.B
	c.run(pass{dst: c.face(at, 0, B/2, 1), src: T(t.Img), op: shade(iso.ShadeW),
		keep: func(col, row int) bool { return row >= B && col >= B }})
	c.run(pass{dst: c.face(at, 2*B, 3*B/2, -1), src: T(t.Img), op: shade(iso.ShadeS),
		keep: func(col, row int) bool { return row >= B && col < B }})
	c.stairU(at, B/2, t, func(col, row int) bool {
		cut := c.topCut(col)
		return row >= cut && col >= cut
	})
}
