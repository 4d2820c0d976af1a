package descriptor

import (
	"strconv"

	"blockatlas/internal/paint"
)

// Solid is a full cube with one texture, or with W, S and U textures.
type Solid struct {
	W, S, U string
}

func decodeSolid(d Descriptor) (Variant, error) {
	f := d.Fields
	switch d.Size() {
	case 3:
		return Solid{f[2], f[2], f[2]}, nil
	case 5:
		return Solid{f[2], f[3], f[4]}, nil
	}
	return nil, malformed(d, "3 or 5")
}

func (v Solid) layout(l *Layout) {
	l.Fill(l.Slot(block(l.Tex(v.W), l.Tex(v.S), l.Tex(v.U))))
}

// SolidOriented is a cube with a distinct front face, like a furnace.
// North facing is the default and shares its image with east facing.
type SolidOriented struct {
	East, South, West int // data values of each facing
	Face, Side, Top   string
}

func decodeSolidOriented(d Descriptor) (Variant, error) {
	if d.Size() != 9 {
		return nil, malformed(d, "9")
	}
	f := d.Fields
	return SolidOriented{
		East:  intOr(f[5], 5),
		South: intOr(f[3], 3),
		West:  intOr(f[4], 4),
		Face:  f[6], Side: f[7], Top: f[8],
	}, nil
}

func (v SolidOriented) layout(l *Layout) {
	face, side, top := l.Tex(v.Face), l.Tex(v.Side), l.Tex(v.Top)
	base := l.Slot(block(side, side, top))
	l.Fill(base)
	l.Set(base, v.East)
	l.Set(l.Slot(block(side, face, top)), v.South)
	l.Set(l.Slot(block(face, side, top)), v.West)
}

// SolidRotated is a cube that can face any of the six directions, like a
// piston. Bit 3 of the data value is ignored.
type SolidRotated struct {
	Top, Side, Bottom string
}

func decodeSolidRotated(d Descriptor) (Variant, error) {
	if d.Size() != 5 {
		return nil, malformed(d, "5")
	}
	return SolidRotated{d.Fields[2], d.Fields[3], d.Fields[4]}, nil
}

func (v SolidRotated) layout(l *Layout) {
	top, side, bottom := l.Tex(v.Top), l.Tex(v.Side), l.Tex(v.Bottom)
	down := l.Slot(func(p *Pen) {
		p.Block(p.At, p.T(side).Rotated(2, false), p.T(side).Rotated(2, false), p.T(bottom))
	})
	l.Fill(down)
	l.Set(down, 0, 8)
	l.Set(l.Slot(block(side, side, top)), 1, 9)
	l.Set(l.Slot(func(p *Pen) {
		p.Block(p.At, p.T(side).Rotated(1, false), p.T(bottom), p.T(side).Rotated(1, false))
	}), 2, 10)
	l.Set(l.Slot(func(p *Pen) {
		p.Block(p.At, p.T(side).Rotated(3, false), p.T(top), p.T(side).Rotated(3, false))
	}), 3, 11)
	l.Set(l.Slot(func(p *Pen) {
		p.Block(p.At, p.T(top), p.T(side).Rotated(1, false), p.T(side).Rotated(2, false))
	}), 4, 12)
	l.Set(l.Slot(func(p *Pen) {
		p.Block(p.At, p.T(bottom), p.T(side).Rotated(3, false), p.T(side))
	}), 5, 13)
}

// SolidData is a cube whose texture depends on the data value. With Fill
// the textures repeat over all sixteen states; otherwise states past the
// list keep the first image.
type SolidData struct {
	Textures []string
	Fill     bool
}

func decodeSolidData(fill bool) decoder {
	return func(d Descriptor) (Variant, error) {
		if d.Size() <= 2 {
			return nil, malformed(d, "more than 2")
		}
		return SolidData{Textures: d.Fields[2:], Fill: fill}, nil
	}
}

func (v SolidData) layout(l *Layout) {
	n := len(v.Textures)
	for i, name := range v.Textures {
		t := l.Tex(name)
		slot := l.Slot(block(t, t, t))
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

// Trunk pairs a top texture with a side texture.
type Trunk struct {
	Top, Side string
}

func trunks(f []string) []Trunk {
	out := make([]Trunk, 0, len(f)/2)
	for i := 0; i+1 < len(f); i += 2 {
		out = append(out, Trunk{Top: f[i], Side: f[i+1]})
	}
	return out
}

// SolidDataTrunk is a cube with top and side textures per data value.
type SolidDataTrunk struct {
	Trunks []Trunk
}

func decodeSolidDataTrunk(d Descriptor) (Variant, error) {
	if d.Size()%2 != 0 || d.Size() <= 3 {
		return nil, malformed(d, "an even count above 3")
	}
	return SolidDataTrunk{Trunks: trunks(d.Fields[2:])}, nil
}

func (v SolidDataTrunk) layout(l *Layout) {
	for i, tr := range v.Trunks {
		top, side := l.Tex(tr.Top), l.Tex(tr.Side)
		slot := l.Slot(block(side, side, top))
		if i == 0 {
			l.Fill(slot)
		}
		l.Set(slot, i)
	}
}

// RotatedTrunk is one wood type of a log that can lie sideways.
type RotatedTrunk struct {
	Rotates   bool
	Top, Side string
}

// SolidDataTrunkRotated is a log family. Each upright trunk may be followed
// by east-west and north-south lying variants. Ordered lists place the
// lying variants right after their trunk; otherwise they sit one and two
// group lengths further along the data values.
type SolidDataTrunkRotated struct {
	Ordered bool
	Groups  []RotatedTrunk
}

func decodeSolidDataTrunkRotated(d Descriptor) (Variant, error) {
	n := d.Size()
	if (n-3)%3 != 0 || n <= 3 {
		return nil, malformed(d, "3 plus a multiple of 3")
	}
	v := SolidDataTrunkRotated{Ordered: d.Fields[2] == "O"}
	for i := 0; i < n-3; i += 3 {
		v.Groups = append(v.Groups, RotatedTrunk{
			Rotates: intOr(d.Fields[i+3], 0) == 1,
			Top:     d.Fields[i+4],
			Side:    d.Fields[i+5],
		})
	}
	return v, nil
}

func (v SolidDataTrunkRotated) layout(l *Layout) {
	n := len(v.Groups)
	j := 0
	for i, g := range v.Groups {
		if j >= 16 {
			break
		}
		top, side := l.Tex(g.Top), l.Tex(g.Side)
		slot := l.Slot(block(side, side, top))
		if i == 0 {
			l.Fill(slot)
		}
		l.Set(slot, j)
		if g.Rotates {
			ew := l.Slot(func(p *Pen) {
				p.Block(p.At, p.T(top), p.T(side).Rotated(3, false), p.T(side))
			})
			ns := l.Slot(func(p *Pen) {
				p.Block(p.At, p.T(side).Rotated(1, false), p.T(top), p.T(side).Rotated(1, false))
			})
			if v.Ordered {
				l.Set(ew, j+1)
				l.Set(ns, j+2)
				j += 2
			} else {
				l.Set(ew, j+n)
				l.Set(ns, j+2*n)
			}
		}
		j++
	}
}

// SolidObstructed is a cube that also gets images with the faces toward
// the viewer missing, used where a neighbour of the same kind hides them.
type SolidObstructed struct {
	W, S, U  string
	Separate bool
}

func decodeSolidObstructed(d Descriptor) (Variant, error) {
	f := d.Fields
	switch d.Size() {
	case 3:
		return SolidObstructed{W: f[2], S: f[2], U: f[2]}, nil
	case 5:
		return SolidObstructed{W: f[2], S: f[3], U: f[4], Separate: true}, nil
	}
	return nil, malformed(d, "3 or 5")
}

func (v SolidObstructed) layout(l *Layout) {
	w, s, u := l.Tex(v.W), l.Tex(v.S), l.Tex(v.U)
	l.Fill(l.Slot(block(w, s, u)))
	if v.Separate {
		l.Slot(block(none, s, u))
		l.Slot(block(w, none, u))
		l.Slot(block(none, none, u))
		return
	}
	l.Slot(block(none, none, u))
	l.Slot(block(none, s, u))
	l.Slot(block(w, none, u))
}

// SolidPartial is a cube cut short at the top and bottom, in sixteenths.
type SolidPartial struct {
	Top, Bottom int
	W, S, U     string
}

func decodeSolidPartial(d Descriptor) (Variant, error) {
	if d.Size() != 7 {
		return nil, malformed(d, "7")
	}
	f := d.Fields
	top, errT := strconv.Atoi(f[2])
	bottom, errB := strconv.Atoi(f[3])
	if errT != nil || errB != nil {
		return nil, malformed(d, "integer cutoffs")
	}
	return SolidPartial{
		Top:    min(max(top, 0), 16),
		Bottom: min(max(bottom, 0), 16),
		W:      f[4], S: f[5], U: f[6],
	}, nil
}

func (v SolidPartial) layout(l *Layout) {
	w, s, u := l.Tex(v.W), l.Tex(v.S), l.Tex(v.U)
	l.Fill(l.Slot(func(p *Pen) {
		p.PartialBlock(p.At, p.T(w), p.T(s), p.T(u), paint.AllFaces, p.cut(v.Top), p.cut(v.Bottom), false)
	}))
}

// Cutoff is a top and bottom cut in sixteenths.
type Cutoff struct {
	Top, Bottom int
}

// SolidDataPartialFill is a partial cube whose height depends on the data
// value, like snow layers. Cutoff i is used for data values i, i+2n, ...
// where n is the number of cutoffs.
type SolidDataPartialFill struct {
	W, S, U string
	Cutoffs []Cutoff
}

func decodeSolidDataPartialFill(d Descriptor) (Variant, error) {
	n := d.Size() - 5
	if n < 2 || n%2 != 0 {
		return nil, malformed(d, "5 plus a positive even count")
	}
	f := d.Fields
	v := SolidDataPartialFill{W: f[2], S: f[3], U: f[4]}
	for i := 5; i+1 < d.Size(); i += 2 {
		v.Cutoffs = append(v.Cutoffs, Cutoff{Top: sixteenth(f[i]), Bottom: sixteenth(f[i+1])})
	}
	return v, nil
}

func (v SolidDataPartialFill) layout(l *Layout) {
	w, s, u := l.Tex(v.W), l.Tex(v.S), l.Tex(v.U)
	step := 2 * len(v.Cutoffs)
	for i, c := range v.Cutoffs {
		slot := l.Slot(func(p *Pen) {
			p.PartialBlock(p.At, p.T(w), p.T(s), p.T(u), paint.AllFaces, p.cut(c.Top), p.cut(c.Bottom), false)
		})
		for st := i; st < 16; st += step {
			l.Set(slot, st)
		}
	}
}

// SolidTransparent is a see-through cube with all six faces drawn, back
// faces first.
type SolidTransparent struct {
	D, N, E, W, S, U string
}

func decodeSolidTransparent(d Descriptor) (Variant, error) {
	if d.Size() != 8 {
		return nil, malformed(d, "8")
	}
	f := d.Fields
	return SolidTransparent{f[2], f[3], f[4], f[5], f[6], f[7]}, nil
}

func (v SolidTransparent) layout(l *Layout) {
	dn, n, e := l.Tex(v.D), l.Tex(v.N), l.Tex(v.E)
	w, s, u := l.Tex(v.W), l.Tex(v.S), l.Tex(v.U)
	l.Fill(l.Slot(func(p *Pen) {
		p.Floor(p.At, p.T(dn))
		p.SingleFace(p.At, p.T(n), paint.PlaneN)
		p.SingleFace(p.At, p.T(e), paint.PlaneE)
		p.SingleFace(p.At, p.T(w), paint.PlaneW)
		p.SingleFace(p.At, p.T(s), paint.PlaneS)
		p.OffsetU(p.At, p.T(u), 0, paint.Crop{})
	}))
}

// SlabData is a set of half blocks, bottom halves at data values 0..7 and
// upside-down halves at 8..15.
type SlabData struct {
	Textures []string
}

func decodeSlabData(d Descriptor) (Variant, error) {
	if d.Size() <= 2 {
		return nil, malformed(d, "more than 2")
	}
	return SlabData{Textures: d.Fields[2:]}, nil
}

func (v SlabData) layout(l *Layout) {
	for i, name := range v.Textures {
		t := l.Tex(name)
		bottom, upper := slabs(l, t, t, t)
		l.Set(bottom, i)
		l.Set(upper, i+8)
	}
}

// slabs lays out a bottom slab and an upside-down slab.
func slabs(l *Layout, w, s, u ref) (bottom, upper int) {
	bottom = l.Slot(func(p *Pen) {
		p.PartialBlock(p.At, p.T(w), p.T(s), p.T(u), paint.AllFaces, p.cut(8), 0, true)
	})
	upper = l.Slot(func(p *Pen) {
		p.PartialBlock(p.At, p.T(w), p.T(s), p.T(u), paint.AllFaces, 0, p.cut(8), false)
	})
	return bottom, upper
}

// SlabDataTrunk is SlabData with separate top and side textures.
type SlabDataTrunk struct {
	Trunks []Trunk
}

func decodeSlabDataTrunk(d Descriptor) (Variant, error) {
	if d.Size()%2 != 0 || d.Size() <= 3 {
		return nil, malformed(d, "an even count above 3")
	}
	return SlabDataTrunk{Trunks: trunks(d.Fields[2:])}, nil
}

func (v SlabDataTrunk) layout(l *Layout) {
	for i, tr := range v.Trunks {
		top, side := l.Tex(tr.Top), l.Tex(tr.Side)
		bottom, upper := slabs(l, side, side, top)
		if i == 0 {
			l.Fill(bottom)
		}
		l.Set(bottom, i)
		l.Set(upper, i+8)
	}
}
