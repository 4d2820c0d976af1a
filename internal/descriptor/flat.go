package descriptor

import (
	"image"

	"blockatlas/internal/iso"
	"blockatlas/internal/paint"
	"blockatlas/internal/texture"
)

type itemShape int

const (
	itemCross  itemShape = iota // two crossing planes
	itemSquare                  // four planes in a square
)

// ItemData is a flat, plant-like block with one texture per data value.
// With Fill the textures repeat over all sixteen states.
type ItemData struct {
	Textures []string
	Shape    itemShape
	Fill     bool
}

func decodeItemData(shape itemShape, fill bool) decoder {
	return func(d Descriptor) (Variant, error) {
		if d.Size() <= 2 {
			return nil, malformed(d, "more than 2")
		}
		return ItemData{Textures: d.Fields[2:], Shape: shape, Fill: fill}, nil
	}
}

func (v ItemData) layout(l *Layout) {
	n := len(v.Textures)
	for i, name := range v.Textures {
		t := l.Tex(name)
		slot := l.Slot(func(p *Pen) {
			if v.Shape == itemSquare {
				p.MultiItem(p.At, p.T(t))
				return
			}
			p.Item(p.At, p.T(t), paint.AllSides)
		})
		if v.Fill {
			for s := i; s < 16; s += n {
				l.Set(slot, s)
			}
			continue
		}
		if i == 0 {
			l.Fill(slot)
		}
		l.Set(slot, i)
	}
}

// ItemDataOriented is a flat block attached to one of four walls, like a
// cocoa pod, with up to four textures. The data value of each attachment
// is North, South, West or East plus four times the texture index.
type ItemDataOriented struct {
	North, South, West, East int
	Textures                 []string
}

// maxOrientedGroups caps the texture groups: four groups of four
// attachments use up the data values.
const maxOrientedGroups = 4

func decodeItemDataOriented(d Descriptor) (Variant, error) {
	if d.Size() <= 6 {
		return nil, malformed(d, "more than 6")
	}
	f := d.Fields
	names := f[6:]
	if len(names) > maxOrientedGroups {
		names = names[:maxOrientedGroups]
	}
	return ItemDataOriented{
		North:    intOr(f[2], 0),
		South:    intOr(f[3], 2),
		West:     intOr(f[4], 3),
		East:     intOr(f[5], 1),
		Textures: names,
	}, nil
}

func (v ItemDataOriented) layout(l *Layout) {
	item := func(t ref, flip bool, sides paint.Sides) func(*Pen) {
		return func(p *Pen) { p.Item(p.At, p.T(t).Rotated(0, flip), sides) }
	}
	for i, name := range v.Textures {
		t := l.Soft(name)
		n := l.Slot(item(t, false, paint.South))
		if i == 0 {
			l.Fill(n)
		}
		l.Set(n, v.North+4*i)
		l.Set(l.Slot(item(t, true, paint.North)), v.South+4*i)
		l.Set(l.Slot(item(t, false, paint.East)), v.West+4*i)
		l.Set(l.Slot(item(t, true, paint.West)), v.East+4*i)
	}
}

// Stair is a staircase in the four ascending directions, upright and
// upside down.
type Stair struct {
	Side, Top string
}

func decodeStair(d Descriptor) (Variant, error) {
	if d.Size() <= 2 {
		return nil, malformed(d, "more than 2")
	}
	if d.Size() == 3 {
		return Stair{Side: d.Fields[2], Top: d.Fields[2]}, nil
	}
	return Stair{Side: d.Fields[2], Top: d.Fields[3]}, nil
}

func (v Stair) layout(l *Layout) {
	side, top := l.Tex(v.Side), l.Tex(v.Top)
	draws := []func(c *paint.Canvas, at image.Point, ws, u paint.Tile){
		(*paint.Canvas).StairsE,
		(*paint.Canvas).StairsW,
		(*paint.Canvas).StairsS,
		(*paint.Canvas).StairsN,
		(*paint.Canvas).InvStairsE,
		(*paint.Canvas).InvStairsW,
		(*paint.Canvas).InvStairsS,
		(*paint.Canvas).InvStairsN,
	}
	for state, draw := range draws {
		slot := l.Slot(func(p *Pen) { draw(p.Canvas, p.At, p.T(side), p.T(top)) })
		if state == 0 {
			l.Fill(slot)
			continue
		}
		l.Set(slot, state)
	}
}

// Torch stands on the floor or leans against one of the four walls.
type Torch struct {
	Texture string
}

func decodeTorch(d Descriptor) (Variant, error) {
	if err := atLeast(d, 3); err != nil {
		return nil, err
	}
	return Torch{Texture: d.Fields[2]}, nil
}

func (v Torch) layout(l *Layout) {
	t := l.Tex(v.Texture)
	l.Fill(l.Slot(func(p *Pen) { p.Item(p.At, p.T(t), paint.AllSides) }))
	for state, plane := range []paint.Plane{paint.PlaneW, paint.PlaneE, paint.PlaneN, paint.PlaneS} {
		l.Set(l.Slot(func(p *Pen) { p.SingleFace(p.At, p.T(t), plane) }), state+1)
	}
}

// PaneData is a thin pane, like glass panes or iron bars, with one
// texture per data value. Each texture gets the free standing image and
// the 14 partial connections.
type PaneData struct {
	Textures []string
}

func decodePaneData(d Descriptor) (Variant, error) {
	if d.Size() <= 2 {
		return nil, malformed(d, "more than 2")
	}
	return PaneData{Textures: d.Fields[2:]}, nil
}

func (v PaneData) layout(l *Layout) {
	for i, name := range v.Textures {
		t := l.Tex(name)
		base := l.Slot(func(p *Pen) { p.Item(p.At, p.T(t), paint.AllSides) })
		if i == 0 {
			l.Fill(base)
		}
		l.Set(base, i)
		for _, sides := range connections(14) {
			l.Slot(func(p *Pen) { p.Item(p.At, p.T(t), sides) })
		}
	}
}

// Door is a door in four orientations, bottom halves then top halves.
type Door struct {
	Bottom, Top string
}

func decodeDoor(d Descriptor) (Variant, error) {
	if err := atLeast(d, 4); err != nil {
		return nil, err
	}
	return Door{Bottom: d.Fields[2], Top: d.Fields[3]}, nil
}

func (v Door) layout(l *Layout) {
	planes := []paint.Plane{paint.PlaneW, paint.PlaneN, paint.PlaneE, paint.PlaneS}
	for i, half := range []ref{l.Tex(v.Bottom), l.Tex(v.Top)} {
		for j, plane := range planes {
			slot := l.Slot(func(p *Pen) { p.SingleFace(p.At, p.T(half), plane) })
			if i == 0 && j == 0 {
				l.Fill(slot)
			}
		}
	}
}

// Trapdoor lies closed at the bottom or top of the block, or stands open
// against one of the walls.
type Trapdoor struct {
	Texture string
}

func decodeTrapdoor(d Descriptor) (Variant, error) {
	if err := atLeast(d, 3); err != nil {
		return nil, err
	}
	return Trapdoor{Texture: d.Fields[2]}, nil
}

func (v Trapdoor) layout(l *Layout) {
	t := l.Tex(v.Texture)
	l.Set(l.Slot(func(p *Pen) { p.Floor(p.At, p.T(t)) }), 0, 1, 2, 3)
	l.Set(l.Slot(block(none, none, t)), 8, 9, 10, 11)
	for i, plane := range []paint.Plane{paint.PlaneS, paint.PlaneN, paint.PlaneE, paint.PlaneW} {
		l.Set(l.Slot(func(p *Pen) { p.SingleFace(p.At, p.T(t), plane) }), 4+i, 12+i)
	}
}

// OnWallPartialFill is a flat, possibly cropped face hanging on one of
// the four walls, like a ladder. Data value i of each side repeats every
// four values.
type OnWallPartialFill struct {
	Offsets [4]int // first data value of the N, S, W and E wall images
	Face    string
	Crop    [4]int // top, bottom, left, right in sixteenths
}

func decodeOnWallPartialFill(d Descriptor) (Variant, error) {
	if d.Size() != 11 {
		return nil, malformed(d, "11")
	}
	f := d.Fields
	v := OnWallPartialFill{Face: f[6]}
	for i := 0; i < 4; i++ {
		v.Offsets[i] = intOr(f[2+i], i)
		if v.Offsets[i] < 0 {
			v.Offsets[i] = i
		}
		v.Crop[i] = sixteenth(f[7+i])
	}
	return v, nil
}

func (v OnWallPartialFill) layout(l *Layout) {
	t := l.Soft(v.Face)
	planes := [4]paint.Plane{paint.PlaneN, paint.PlaneS, paint.PlaneW, paint.PlaneE}
	for i, plane := range planes {
		slot := l.Slot(func(p *Pen) {
			crop := paint.Crop{Top: p.cut(v.Crop[0]), Bottom: p.cut(v.Crop[1]), Left: p.cut(v.Crop[2]), Right: p.cut(v.Crop[3])}
			p.PartialSingleFace(p.At, p.T(t), plane, crop)
		})
		for s := v.Offsets[i]; s < 16; s += 4 {
			l.Set(slot, s)
		}
	}
}

// Wire is redstone dust: unconnected, straight and every junction. Without
// a cross texture the cross is composed from the straight wire and its
// quarter turn.
type Wire struct {
	Wire, Cross string
}

func decodeWire(d Descriptor) (Variant, error) {
	if err := atLeast(d, 3); err != nil {
		return nil, err
	}
	v := Wire{Wire: d.Fields[2]}
	if d.Size() == 4 {
		v.Cross = d.Fields[3]
	}
	return v, nil
}

// crossOf lays wire and wire turned a quarter over each other.
func crossOf(wire *image.NRGBA) *image.NRGBA {
	size := wire.Rect.Dx()
	turned := iso.NewTile(size)
	iso.Pair(iso.NewFaceIter(0, 0, 0, size), iso.NewRotatedIter(0, 0, 1, size, false), func(s, d iso.Point) {
		turned.SetNRGBA(d.X, d.Y, wire.NRGBAAt(s.X, s.Y))
	})
	cross := iso.NewTile(size)
	iso.AlphaBlit(wire, wire.Rect, cross, image.Point{})
	iso.AlphaBlit(turned, turned.Rect, cross, image.Point{})
	return cross
}

func (v Wire) layout(l *Layout) {
	wire, given := l.Soft(v.Wire), l.Soft(v.Cross)
	crossTile := func(p *Pen) paint.Tile {
		if v.Cross != "" {
			return p.T(given)
		}
		return paint.T(crossOf(p.T(wire).Img))
	}
	l.Fill(l.Slot(func(p *Pen) {
		if v.Cross == "" {
			p.Floor(p.At, p.T(wire))
			return
		}
		c5 := p.cut(5)
		p.OffsetU(p.At, crossTile(p), p.cut(16), paint.Crop{Top: c5, Bottom: c5, Left: c5, Right: c5})
	}))
	l.Slot(func(p *Pen) { p.Floor(p.At, p.T(wire)) })
	l.Slot(func(p *Pen) { p.Floor(p.At, p.T(wire).Rotated(1, false)) })
	// Junctions as top, bottom, left and right crops of the cross.
	junctions := [][4]bool{
		{false, true, false, true},   // NE
		{false, true, true, false},   // SE
		{false, true, false, false},  // NSE
		{true, false, false, true},   // NW
		{true, false, true, false},   // SW
		{true, false, false, false},  // NSW
		{false, false, false, true},  // NEW
		{false, false, true, false},  // SEW
		{false, false, false, false}, // NSEW
	}
	for _, j := range junctions {
		l.Slot(func(p *Pen) {
			c5 := p.cut(5)
			pick := func(b bool) int {
				if b {
					return c5
				}
				return 0
			}
			crop := paint.Crop{Top: pick(j[0]), Bottom: pick(j[1]), Left: pick(j[2]), Right: pick(j[3])}
			p.OffsetU(p.At, crossTile(p), p.cut(16), crop)
		})
	}
}

// BitAnchor is a face attached to any combination of walls, like vines.
// Data value 0 hangs from the ceiling; otherwise bit 0 is south, bit 1
// west, bit 2 north and bit 3 east.
type BitAnchor struct {
	Texture string
}

func decodeBitAnchor(d Descriptor) (Variant, error) {
	if err := atLeast(d, 3); err != nil {
		return nil, err
	}
	return BitAnchor{Texture: d.Fields[2]}, nil
}

func anchorSides(state int) paint.Sides {
	if state == 0 {
		return paint.Up
	}
	var s paint.Sides
	if state&1 != 0 {
		s |= paint.South
	}
	if state&2 != 0 {
		s |= paint.West
	}
	if state&4 != 0 {
		s |= paint.North
	}
	if state&8 != 0 {
		s |= paint.East
	}
	return s
}

func (v BitAnchor) layout(l *Layout) {
	t := l.Soft(v.Texture)
	for state := 0; state < 16; state++ {
		sides := anchorSides(state)
		l.Set(l.Slot(func(p *Pen) { p.AnchoredFace(p.At, p.T(t), sides) }), state)
	}
}

// Stem is a melon or pumpkin stem: eight growth stages then the grown
// stem bent toward each side. Levels and Connected name chest-style split
// sheets whose sub tiles hold the individual images.
type Stem struct {
	Levels, Connected string
}

func decodeStem(d Descriptor) (Variant, error) {
	if err := atLeast(d, 4); err != nil {
		return nil, err
	}
	return Stem{Levels: d.Fields[2], Connected: d.Fields[3]}, nil
}

func (v Stem) layout(l *Layout) {
	for i := 0; i < 8; i++ {
		t := l.Soft(texture.SubName(v.Levels, i))
		slot := l.Slot(func(p *Pen) { p.Item(p.At, p.T(t), paint.AllSides) })
		if i == 0 {
			l.Fill(slot)
		}
		l.Set(slot, i)
	}
	straight := l.Tex(texture.SubName(v.Connected, 0))
	bent := l.Tex(texture.SubName(v.Connected, 1))
	for _, c := range []struct {
		t     ref
		sides paint.Sides
	}{
		{straight, paint.North | paint.South},
		{bent, paint.North | paint.South},
		{straight, paint.West | paint.East},
		{bent, paint.West | paint.East},
	} {
		l.Slot(func(p *Pen) { p.Item(p.At, p.T(c.t), c.sides) })
	}
}
