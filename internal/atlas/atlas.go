// Package atlas builds, persists and serves the block image atlas: every
// block image the map renderer draws lives in one 4Bx4B slot of a single
// image, 16 slots per row, with slot 0 left blank.
//
// An Atlas is immutable once Create returns and may be read from any
// number of goroutines.
package atlas

import (
	"image"

	"blockatlas/internal/descriptor"
	"blockatlas/internal/paint"
	"blockatlas/pkg/blockid"
)

// Atlas is a finished atlas image together with its slot table and the
// per-slot opacity flags.
type Atlas struct {
	canvas *paint.Canvas
	table  *descriptor.Table
	slots  int

	opaque      []bool
	transparent []bool
}

func newAtlas(img *image.NRGBA, b int, plan *descriptor.Plan) *Atlas {
	return &Atlas{
		canvas: paint.NewCanvas(img, b),
		table:  &plan.Table,
		slots:  plan.Slots(),
	}
}

// TileParam is the B the atlas was built for.
func (a *Atlas) TileParam() int { return a.canvas.B }

// Image returns the atlas image. Callers must not modify it.
func (a *Atlas) Image() *image.NRGBA { return a.canvas.Img }

// Slots is the number of slots in use, the blank slot 0 included. It is
// also the version recorded next to the persisted image.
func (a *Atlas) Slots() int { return a.slots }

// Offset returns the slot of (id, state). Unknown pairs resolve to the
// blank slot 0.
func (a *Atlas) Offset(id, state int) int { return a.table.Offset(id, state) }

// Keys lists the (id, state) pairs drawn with slot.
func (a *Atlas) Keys(slot int) []blockid.Key { return a.table.Keys(slot) }

// Rect returns the pixel rectangle of slot.
func (a *Atlas) Rect(slot int) image.Rectangle { return a.canvas.Rect(slot) }

// RectFor returns the pixel rectangle of the image of (id, state).
func (a *Atlas) RectFor(id, state int) image.Rectangle { return a.Rect(a.Offset(id, state)) }

// IsOpaque reports whether every face pixel of slot is fully opaque.
func (a *Atlas) IsOpaque(slot int) bool {
	return slot >= 0 && slot < len(a.opaque) && a.opaque[slot]
}

// IsOpaqueBlock is IsOpaque for the slot of (id, state).
func (a *Atlas) IsOpaqueBlock(id, state int) bool { return a.IsOpaque(a.Offset(id, state)) }

// IsTransparent reports whether every face pixel of slot is fully
// transparent.
func (a *Atlas) IsTransparent(slot int) bool {
	return slot >= 0 && slot < len(a.transparent) && a.transparent[slot]
}

// IsTransparentBlock is IsTransparent for the slot of (id, state).
func (a *Atlas) IsTransparentBlock(id, state int) bool { return a.IsTransparent(a.Offset(id, state)) }

// SlotAt returns the slot under pixel p of the atlas image.
func (a *Atlas) SlotAt(p image.Point) (int, bool) {
	if !p.In(a.canvas.Img.Rect) {
		return 0, false
	}
	s := a.canvas.SlotSize()
	slot := (p.Y/s)*16 + p.X/s
	return slot, slot < a.slots
}

// size is the pixel size of an atlas holding version slots.
func size(b, version int) image.Point {
	s := 4 * b
	return image.Pt(16*s, (version/16+1)*s)
}
