// Package paint draws isometric block images into slots of an atlas image.
//
// Every slot is a 4Bx4B rectangle. The upright W face is anchored at
// (0, B), the upright S face at (2B, 2B) and the top face at (2B-1, 0),
// all relative to the slot origin. Source tiles are 2Bx2B.
package paint

import (
	"image"
	"image/color"

	"blockatlas/internal/iso"
)

// Canvas is the destination of every primitive: the atlas image and the
// tile parameter B it was laid out with.
type Canvas struct {
	Img *image.NRGBA
	B   int
}

// NewCanvas wraps img for drawing block images of size parameter b.
func NewCanvas(img *image.NRGBA, b int) *Canvas {
	return &Canvas{Img: img, B: b}
}

// TileSize is the edge of a source tile, 2B.
func (c *Canvas) TileSize() int { return 2 * c.B }

// SlotSize is the edge of a slot, 4B.
func (c *Canvas) SlotSize() int { return 4 * c.B }

// Rect returns the rectangle of slot index slot in a 16-column atlas.
func (c *Canvas) Rect(slot int) image.Rectangle {
	s := c.SlotSize()
	o := image.Pt((slot%16)*s, (slot/16)*s)
	return image.Rectangle{Min: o, Max: o.Add(image.Pt(s, s))}
}

// cut converts sixteenths of a tile into pixels.
func (c *Canvas) cut(n int) int { return iso.Deinterpolate(n, 16, c.TileSize()) }

// Tile references a source texture together with the rotation and
// mirroring to read it with. The zero Tile means no texture.
type Tile struct {
	Img   *image.NRGBA
	Rot   int
	FlipX bool
}

// T wraps img as an unrotated tile.
func T(img *image.NRGBA) Tile { return Tile{Img: img} }

// Rotated returns t read with the given rotation and mirroring.
func (t Tile) Rotated(rot int, flipX bool) Tile {
	t.Rot, t.FlipX = rot, flipX
	return t
}

// Valid reports whether t refers to an image.
func (t Tile) Valid() bool { return t.Img != nil }

func (t Tile) iter(size int) iso.Iterator {
	return iso.NewRotatedIter(0, 0, t.Rot, size, t.FlipX)
}

// Faces selects cube faces for the partial block primitive.
type Faces uint8

const (
	FaceW Faces = 1 << iota
	FaceS
	FaceU

	AllFaces = FaceW | FaceS | FaceU
)

// Sides selects edges of crossed or anchored geometry.
type Sides uint8

const (
	North Sides = 1 << iota
	South
	West
	East
	Up

	AllSides = North | South | West | East
)

// Plane names the four upright planes a flat tile can be drawn on.
type Plane int

const (
	PlaneE Plane = iota // back right, anchored at (2B, 0)
	PlaneW              // front left, anchored at (0, B)
	PlaneS              // front right, anchored at (2B, 2B)
	PlaneN              // back left, anchored at (0, B)
)

// Crop trims a face by a number of pixels from each edge, counted on the
// 2B grid of the source tile.
type Crop struct {
	Top, Bottom, Left, Right int
}

type op func(dst, src color.NRGBA) color.NRGBA

func replace(_, src color.NRGBA) color.NRGBA { return src }

func over(dst, src color.NRGBA) color.NRGBA { return iso.Blend(dst, src) }

// stamp replaces dst wherever src is not fully transparent.
func stamp(dst, src color.NRGBA) color.NRGBA {
	if src.A == 0 {
		return dst
	}
	return src
}

func shade(s iso.Shade) op {
	return func(_, src color.NRGBA) color.NRGBA { return iso.Darken(src, s) }
}

func tint(f float64) op { return shade(iso.Uniform(f)) }

// pass pairs a source tile walk with a destination walk. keep filters
// destination steps by column and row; dy nudges the destination row and
// srcDY the sampled source row.
type pass struct {
	dst   iso.Iterator
	src   Tile
	op    op
	keep  func(col, row int) bool
	dy    func(col, row int) int
	srcDY int
}

func (c *Canvas) run(p pass) {
	if !p.src.Valid() {
		return
	}
	size := c.TileSize()
	iso.Pair(p.src.iter(size), p.dst, func(s, d iso.Point) {
		col, row := d.Column(size), d.Row(size)
		if p.keep != nil && !p.keep(col, row) {
			return
		}
		y := d.Y
		if p.dy != nil {
			y += p.dy(col, row)
		}
		c.apply(d.X, y, p.src.Img.NRGBAAt(s.X, s.Y+p.srcDY), p.op)
	})
}

func (c *Canvas) apply(x, y int, src color.NRGBA, o op) {
	c.Img.SetNRGBA(x, y, o(c.Img.NRGBAAt(x, y), src))
}

func (c *Canvas) face(at image.Point, dx, dy, skew int) iso.Iterator {
	return iso.NewFaceIter(at.X+dx, at.Y+dy, skew, c.TileSize())
}

func (c *Canvas) top(at image.Point, dx, dy int) iso.Iterator {
	return iso.NewTopFaceIter(at.X+dx, at.Y+dy, c.TileSize())
}

func (c *Canvas) wFace(at image.Point) iso.Iterator { return c.face(at, 0, c.B, 1) }
func (c *Canvas) sFace(at image.Point) iso.Iterator { return c.face(at, 2*c.B, 2*c.B, -1) }
func (c *Canvas) uFace(at image.Point) iso.Iterator { return c.top(at, 2*c.B-1, 0) }

// FaceIters returns fresh walks over the W, S and U faces of slot.
func (c *Canvas) FaceIters(slot int) [3]iso.Iterator {
	at := c.Rect(slot).Min
	return [3]iso.Iterator{c.wFace(at), c.sFace(at), c.uFace(at)}
}

// Block draws a full cube: W darkened by 0.9, S by 0.8, U unshaded.
// Invalid tiles leave their face untouched.
func (c *Canvas) Block(at image.Point, w, s, u Tile) {
	c.run(pass{dst: c.wFace(at), src: w, op: shade(iso.ShadeW)})
	c.run(pass{dst: c.sFace(at), src: s, op: shade(iso.ShadeS)})
	c.run(pass{dst: c.uFace(at), src: u, op: replace})
}

// PartialBlock draws a block that is cut short by top and bottom pixels.
// The top face sits top pixels lower and is read with u.Rot; the upright
// faces honour w.FlipX and s.FlipX. With shift the upright faces sample
// from the top of their source instead of staying aligned with it.
func (c *Canvas) PartialBlock(at image.Point, w, s, u Tile, faces Faces, top, bottom int, shift bool) {
	size := c.TileSize()
	if top+bottom >= size {
		return
	}
	end := size - bottom
	keep := func(_, row int) bool { return row >= top && row < end }
	srcDY := 0
	if shift {
		srcDY = -top
	}
	if faces&FaceW != 0 {
		c.run(pass{dst: c.wFace(at), src: w.Rotated(0, w.FlipX), op: shade(iso.ShadeW), keep: keep, srcDY: srcDY})
	}
	if faces&FaceS != 0 {
		c.run(pass{dst: c.sFace(at), src: s.Rotated(0, s.FlipX), op: shade(iso.ShadeS), keep: keep, srcDY: srcDY})
	}
	if faces&FaceU != 0 {
		c.run(pass{dst: c.top(at, 2*c.B-1, top), src: u.Rotated(u.Rot, false), op: replace})
	}
}

// SolidColor fills the three faces with a single colour.
func (c *Canvas) SolidColor(at image.Point, col color.NRGBA) {
	for _, f := range []struct {
		it iso.Iterator
		s  iso.Shade
	}{{c.wFace(at), iso.ShadeW}, {c.sFace(at), iso.ShadeS}, {c.uFace(at), iso.ShadeU}} {
		iso.Walk(f.it, func(p iso.Point) {
			c.Img.SetNRGBA(p.X, p.Y, iso.Darken(col, f.s))
		})
	}
}
