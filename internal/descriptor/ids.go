package descriptor

import (
	"blockatlas/internal/paint"
	"blockatlas/pkg/blockid"
)

func init() {
	registerID(blockid.Water, decodeWater)
	registerID(blockid.Lava, decodeLava)
	registerID(blockid.Bed, decodeBed)
	registerID(blockid.BrewingStand, decodeBrewingStand)
	registerID(blockid.Cauldron, decodeCauldron)
	registerID(blockid.DragonEgg, decodeDragonEgg)
	registerID(blockid.Beacon, decodeBeacon)
	registerID(blockid.FlowerPot, decodeFlowerPot)
	registerID(blockid.Anvil, decodeAnvil)
	registerID(blockid.Hopper, decodeHopper)
}

// Water covers flowing and stationary water: the full block, the surface
// alone, the block with its W or S face hidden, then seven levels.
type Water struct {
	Texture string
}

func decodeWater(d Descriptor) (Variant, error) {
	if err := atLeast(d, 3); err != nil {
		return nil, err
	}
	return Water{Texture: d.Fields[2]}, nil
}

func (v Water) layout(l *Layout) {
	t := l.Soft(v.Texture)
	full := l.Slot(block(t, t, t))
	l.FillID(blockid.Water, full)
	l.FillID(blockid.StationaryWater, full)
	l.Slot(block(none, none, t))
	l.Slot(block(none, t, t))
	l.Slot(block(t, none, t))
	for level := 1; level <= 7; level++ {
		slot := l.Slot(func(p *Pen) {
			p.PartialBlock(p.At, p.T(t), p.T(t), p.T(t), paint.AllFaces, p.cut(2*level), 0, true)
		})
		l.SetID(blockid.Water, slot, level)
		l.SetID(blockid.StationaryWater, slot, level)
	}
}

// Lava covers flowing and stationary lava: the full block and three
// levels.
type Lava struct {
	Texture string
}

func decodeLava(d Descriptor) (Variant, error) {
	if err := atLeast(d, 3); err != nil {
		return nil, err
	}
	return Lava{Texture: d.Fields[2]}, nil
}

func (v Lava) layout(l *Layout) {
	t := l.Soft(v.Texture)
	full := l.Slot(block(t, t, t))
	l.FillID(blockid.Lava, full)
	l.FillID(blockid.StationaryLava, full)
	for i := 1; i <= 3; i++ {
		slot := l.Slot(func(p *Pen) {
			p.PartialBlock(p.At, p.T(t), p.T(t), p.T(t), paint.AllFaces, p.cut(4*i), 0, true)
		})
		l.SetID(blockid.Lava, slot, 2*i)
		l.SetID(blockid.StationaryLava, slot, 2*i)
	}
}

// Bed is a half-height bed, foot and head, pointing four ways.
type Bed struct {
	FootFront, FootSide, FootTop string
	HeadFront, HeadSide, HeadTop string
}

func decodeBed(d Descriptor) (Variant, error) {
	if err := atLeast(d, 8); err != nil {
		return nil, err
	}
	f := d.Fields
	return Bed{f[2], f[3], f[4], f[5], f[6], f[7]}, nil
}

// bedPart is one bed image: which textures go on the W and S faces, the
// visible faces, the top rotation and which upright face is mirrored.
type bedPart struct {
	frontOnW bool
	faces    paint.Faces
	rot      int
	flipW    bool
	flipS    bool
}

var bedParts = [4]struct{ foot, head bedPart }{
	{ // pointing S
		foot: bedPart{faces: paint.FaceW | paint.FaceU},
		head: bedPart{faces: paint.AllFaces},
	},
	{ // pointing W
		foot: bedPart{frontOnW: true, faces: paint.FaceS | paint.FaceU, rot: 3, flipS: true},
		head: bedPart{frontOnW: true, faces: paint.AllFaces, rot: 3, flipS: true},
	},
	{ // pointing N
		foot: bedPart{faces: paint.AllFaces, rot: 2, flipW: true},
		head: bedPart{faces: paint.FaceW | paint.FaceU, rot: 2, flipW: true},
	},
	{ // pointing E
		foot: bedPart{frontOnW: true, faces: paint.AllFaces, rot: 1},
		head: bedPart{frontOnW: true, faces: paint.FaceS | paint.FaceU, rot: 1},
	},
}

func (v Bed) layout(l *Layout) {
	foot := [3]ref{l.Tex(v.FootFront), l.Tex(v.FootSide), l.Tex(v.FootTop)}
	head := [3]ref{l.Tex(v.HeadFront), l.Tex(v.HeadSide), l.Tex(v.HeadTop)}
	part := func(tex [3]ref, bp bedPart) func(*Pen) {
		return func(p *Pen) {
			w, s := p.T(tex[1]), p.T(tex[0])
			if bp.frontOnW {
				w, s = s, w
			}
			w, s = w.Rotated(0, bp.flipW), s.Rotated(0, bp.flipS)
			p.PartialBlock(p.At, w, s, p.T(tex[2]).Rotated(bp.rot, false), bp.faces, p.cut(8), 0, false)
		}
	}
	for i, bp := range bedParts {
		l.Set(l.Slot(part(foot, bp.foot)), i, i+4)
	}
	for i, bp := range bedParts {
		l.Set(l.Slot(part(head, bp.head)), i+8, i+12)
	}
}

// BrewingStand is a base plate with the stand on it.
type BrewingStand struct {
	Base, Stand string
}

func decodeBrewingStand(d Descriptor) (Variant, error) {
	if err := atLeast(d, 4); err != nil {
		return nil, err
	}
	return BrewingStand{Base: d.Fields[2], Stand: d.Fields[3]}, nil
}

func (v BrewingStand) layout(l *Layout) {
	base, stand := l.Tex(v.Base), l.Tex(v.Stand)
	l.Fill(l.Slot(func(p *Pen) { p.BrewingStand(p.At, p.T(base), p.T(stand)) }))
}

// Cauldron is empty at data value 0 and a third, two thirds and fully
// filled at 1..3.
type Cauldron struct {
	Side, Water string
}

func decodeCauldron(d Descriptor) (Variant, error) {
	if err := atLeast(d, 4); err != nil {
		return nil, err
	}
	return Cauldron{Side: d.Fields[2], Water: d.Fields[3]}, nil
}

func (v Cauldron) layout(l *Layout) {
	side, water := l.Tex(v.Side), l.Tex(v.Water)
	for level, sixteenths := range []int{0, 10, 6, 2} {
		slot := l.Slot(func(p *Pen) {
			cutoff := 0
			if sixteenths > 0 {
				cutoff = p.cut(sixteenths)
			}
			p.Cauldron(p.At, p.T(side), p.T(water), cutoff)
		})
		if level == 0 {
			l.Fill(slot)
			continue
		}
		l.Set(slot, level)
	}
}

// DragonEgg is drawn as a half size block.
type DragonEgg struct {
	Texture string
}

func decodeDragonEgg(d Descriptor) (Variant, error) {
	if err := atLeast(d, 3); err != nil {
		return nil, err
	}
	return DragonEgg{Texture: d.Fields[2]}, nil
}

func (v DragonEgg) layout(l *Layout) {
	t := l.Tex(v.Texture)
	l.Fill(l.Slot(func(p *Pen) { p.DragonEgg(p.At, p.T(t)) }))
}

// Beacon is a pedestal and heart inside the image of a cover block, glass
// unless a cover id is given.
type Beacon struct {
	Heart, Pedestal string
	Cover           int
}

func decodeBeacon(d Descriptor) (Variant, error) {
	if err := atLeast(d, 4); err != nil {
		return nil, err
	}
	return Beacon{Heart: d.Fields[2], Pedestal: d.Fields[3], Cover: intOr(d.Field(4), blockid.Glass)}, nil
}

func (v Beacon) layout(l *Layout) {
	heart, pedestal := l.Tex(v.Heart), l.Tex(v.Pedestal)
	l.Fill(l.Slot(func(p *Pen) { p.Beacon(p.At, p.T(pedestal), p.T(heart), p.slotOf(v.Cover)) }))
}

// FlowerPot is an empty pot at the default data value and one image per
// content texture at data values 0.. in list order. The ninth content is
// drawn as a cactus, the rest as plants.
type FlowerPot struct {
	Pot, Filler string
	Contents    []string
}

const potCactusIndex = 8

func decodeFlowerPot(d Descriptor) (Variant, error) {
	if err := atLeast(d, 4); err != nil {
		return nil, err
	}
	return FlowerPot{Pot: d.Fields[2], Filler: d.Fields[3], Contents: d.Fields[4:]}, nil
}

func (v FlowerPot) layout(l *Layout) {
	pot, filler := l.Tex(v.Pot), l.Tex(v.Filler)
	l.Fill(l.Slot(func(p *Pen) { p.FlowerPot(p.At, p.T(pot), p.T(filler), p.T(filler), paint.PotEmpty) }))
	for i, name := range v.Contents {
		content := l.Tex(name)
		kind := paint.PotPlant
		if i == potCactusIndex {
			kind = paint.PotCactus
		}
		l.Set(l.Slot(func(p *Pen) { p.FlowerPot(p.At, p.T(pot), p.T(filler), p.T(content), kind) }), i)
	}
}

// Anvil is an anvil in two orientations and three damage levels.
type Anvil struct {
	Base   string
	Damage [3]string
}

func decodeAnvil(d Descriptor) (Variant, error) {
	if err := atLeast(d, 6); err != nil {
		return nil, err
	}
	f := d.Fields
	return Anvil{Base: f[2], Damage: [3]string{f[3], f[4], f[5]}}, nil
}

func (v Anvil) layout(l *Layout) {
	base := l.Tex(v.Base)
	for i, name := range v.Damage {
		face := l.Tex(name)
		for o := 0; o < 2; o++ {
			slot := l.Slot(func(p *Pen) { p.Anvil(p.At, p.T(base), p.T(face), o) })
			switch {
			case i == 0 && o == 0:
				l.Fill(slot)
			default:
				s := 4*i + o
				l.Set(slot, s, s+2)
			}
		}
	}
}

// Hopper is a funnel with its inside visible from the top.
type Hopper struct {
	Base, Inside string
}

func decodeHopper(d Descriptor) (Variant, error) {
	if err := atLeast(d, 4); err != nil {
		return nil, err
	}
	return Hopper{Base: d.Fields[2], Inside: d.Fields[3]}, nil
}

func (v Hopper) layout(l *Layout) {
	base, inside := l.Tex(v.Base), l.Tex(v.Inside)
	l.Fill(l.Slot(func(p *Pen) { p.Hopper(p.At, p.T(base), p.T(inside)) }))
}
