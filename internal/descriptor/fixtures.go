package descriptor

import (
	"blockatlas/internal/paint"
	"blockatlas/internal/texture"
)

// Fence is a fence post followed by its 15 rail combinations.
type Fence struct {
	Texture string
}

func decodeFence(d Descriptor) (Variant, error) {
	if err := atLeast(d, 3); err != nil {
		return nil, err
	}
	return Fence{Texture: d.Fields[2]}, nil
}

func (v Fence) layout(l *Layout) {
	t := l.Tex(v.Texture)
	l.Fill(l.Slot(func(p *Pen) { p.FencePost(p.At, p.T(t)) }))
	for _, rails := range connections(15) {
		l.Slot(func(p *Pen) { p.Fence(p.At, p.T(t), rails, true) })
	}
}

// WallData is a stone wall per data value: the post, its 15 connected
// forms and the two straight sections without a post.
type WallData struct {
	Textures []string
}

func decodeWallData(d Descriptor) (Variant, error) {
	if d.Size() <= 2 {
		return nil, malformed(d, "more than 2")
	}
	return WallData{Textures: d.Fields[2:]}, nil
}

func (v WallData) layout(l *Layout) {
	for i, name := range v.Textures {
		t := l.Tex(name)
		post := l.Slot(func(p *Pen) { p.StoneWallPost(p.At, p.T(t)) })
		if i == 0 {
			l.Fill(post)
		}
		l.Set(post, i)
		for _, rails := range connections(15) {
			l.Slot(func(p *Pen) { p.StoneWallConnected(p.At, p.T(t), rails) })
		}
		l.Slot(func(p *Pen) { p.StoneWall(p.At, p.T(t), true) })
		l.Slot(func(p *Pen) { p.StoneWall(p.At, p.T(t), false) })
	}
}

// FenceGate is a closed gate running east-west or north-south.
type FenceGate struct {
	Texture string
}

func decodeFenceGate(d Descriptor) (Variant, error) {
	if err := atLeast(d, 3); err != nil {
		return nil, err
	}
	return FenceGate{Texture: d.Fields[2]}, nil
}

func (v FenceGate) layout(l *Layout) {
	t := l.Tex(v.Texture)
	gate := func(s bool) func(*Pen) {
		return func(p *Pen) {
			c4, c8 := p.cut(4), p.cut(8)
			crop := paint.Crop{Top: c4, Bottom: c4}
			if s {
				p.OffsetS(p.At, p.T(t), 0.8, c8, crop)
				return
			}
			p.OffsetW(p.At, p.T(t), 0.9, c8, crop)
		}
	}
	l.Fill(l.Slot(gate(true)))
	l.Set(l.Slot(gate(false)), 1, 3, 5, 7)
}

// Mushroom is a huge mushroom block with pore, stem and cap textures.
type Mushroom struct {
	Pore, Stem, Cap string
}

func decodeMushroom(d Descriptor) (Variant, error) {
	if err := atLeast(d, 5); err != nil {
		return nil, err
	}
	return Mushroom{Pore: d.Fields[2], Stem: d.Fields[3], Cap: d.Fields[4]}, nil
}

func (v Mushroom) layout(l *Layout) {
	pore, stem, hood := l.Tex(v.Pore), l.Tex(v.Stem), l.Tex(v.Cap)
	l.Fill(l.Slot(block(pore, pore, pore)))
	l.Set(l.Slot(block(stem, stem, stem)), 15)
	l.Set(l.Slot(block(hood, hood, hood)), 7, 14)
	l.Set(l.Slot(block(hood, pore, hood)), 1, 4)
	l.Set(l.Slot(block(pore, pore, hood)), 2, 3, 5, 6)
	l.Set(l.Slot(block(pore, hood, hood)), 8, 9)
	l.Set(l.Slot(block(stem, stem, pore)), 10)
}

// Chest is a single chest facing three ways and, with Large set, the
// eight halves of a double chest. The names refer to split chest sheets.
type Chest struct {
	Small, Large string
}

func decodeChest(d Descriptor) (Variant, error) {
	if err := atLeast(d, 3); err != nil {
		return nil, err
	}
	v := Chest{Small: d.Fields[2]}
	if d.Size() == 4 {
		v.Large = d.Fields[3]
	}
	return v, nil
}

func (v Chest) layout(l *Layout) {
	top := l.Tex(texture.SubName(v.Small, 0))
	front := l.Tex(texture.SubName(v.Small, 1))
	side := l.Tex(texture.SubName(v.Small, 2))

	base := l.Slot(block(side, side, top))
	l.Fill(base)
	l.Set(base, 2, 5)
	l.Set(l.Slot(block(side, front, top)), 3)
	l.Set(l.Slot(block(front, side, top)), 4)
	if v.Large == "" {
		return
	}

	var lt [7]ref
	for i := range lt {
		lt[i] = l.Tex(texture.SubName(v.Large, i))
	}
	// Halves of chests facing north or south read their top turned a
	// quarter.
	for _, h := range [][2]int{{4, 0}, {5, 1}, {2, 0}, {3, 1}} {
		s, u := lt[h[0]], lt[h[1]]
		l.Slot(func(p *Pen) { p.Block(p.At, p.T(lt[6]), p.T(s), p.T(u).Rotated(1, false)) })
	}
	for _, h := range [][2]int{{2, 0}, {3, 1}, {4, 0}, {5, 1}} {
		l.Slot(block(lt[h[0]], lt[6], lt[h[1]]))
	}
}

// Rail is a track: flat, ascending in four directions and, with a corner
// texture, the four curves.
type Rail struct {
	Rail, Corner string
}

func decodeRail(d Descriptor) (Variant, error) {
	if err := atLeast(d, 3); err != nil {
		return nil, err
	}
	v := Rail{Rail: d.Fields[2]}
	if d.Size() == 4 {
		v.Corner = d.Fields[3]
	}
	return v, nil
}

// track lays out the six straight track images of t, mapping them to
// first..first+5.
func track(l *Layout, t ref, first int, fill bool) {
	draws := []func(*Pen){
		func(p *Pen) { p.Floor(p.At, p.T(t).Rotated(1, false)) },
		func(p *Pen) { p.Floor(p.At, p.T(t)) },
		func(p *Pen) { p.AngledFloor(p.At, p.T(t), 0) },
		func(p *Pen) { p.AngledFloor(p.At, p.T(t), 2) },
		func(p *Pen) { p.AngledFloor(p.At, p.T(t).Rotated(1, false), 3) },
		func(p *Pen) { p.AngledFloor(p.At, p.T(t).Rotated(1, false), 1) },
	}
	for i, draw := range draws {
		slot := l.Slot(draw)
		if i == 0 && fill {
			l.Fill(slot)
			continue
		}
		l.Set(slot, first+i)
	}
}

func (v Rail) layout(l *Layout) {
	track(l, l.Tex(v.Rail), 0, true)
	if v.Corner == "" {
		return
	}
	c := l.Tex(v.Corner)
	for i, rot := range []int{1, 0, 3, 2} {
		l.Set(l.Slot(func(p *Pen) { p.Floor(p.At, p.T(c).Rotated(rot, false)) }), 6+i)
	}
}

// RailPowered is a powered track, unpowered at data values 0..5 and
// powered at 8..13.
type RailPowered struct {
	Rail, Powered string
}

func decodeRailPowered(d Descriptor) (Variant, error) {
	if err := atLeast(d, 4); err != nil {
		return nil, err
	}
	return RailPowered{Rail: d.Fields[2], Powered: d.Fields[3]}, nil
}

func (v RailPowered) layout(l *Layout) {
	track(l, l.Tex(v.Rail), 0, true)
	track(l, l.Tex(v.Powered), 8, false)
}

// Repeater is a redstone repeater facing one of four ways; the delay bits
// share the image.
type Repeater struct {
	Base, Torch string
}

func decodeRepeater(d Descriptor) (Variant, error) {
	if err := atLeast(d, 4); err != nil {
		return nil, err
	}
	return Repeater{Base: d.Fields[2], Torch: d.Fields[3]}, nil
}

func (v Repeater) layout(l *Layout) {
	base, torch := l.Tex(v.Base), l.Tex(v.Torch)
	for facing, rot := range []int{1, 0, 3, 2} {
		slot := l.Slot(func(p *Pen) { p.Repeater(p.At, p.T(base), p.T(torch), rot) })
		l.Set(slot, facing, facing+4, facing+8, facing+12)
	}
}

// Lever is a lever on a wall, the floor or the ceiling. Bit 3 of the
// data value is the powered state and shares the image.
type Lever struct {
	Base, Lever string
}

func decodeLever(d Descriptor) (Variant, error) {
	if err := atLeast(d, 4); err != nil {
		return nil, err
	}
	return Lever{Base: d.Fields[2], Lever: d.Fields[3]}, nil
}

func (v Lever) layout(l *Layout) {
	base, lever := l.Tex(v.Base), l.Tex(v.Lever)
	for i, plane := range []paint.Plane{paint.PlaneW, paint.PlaneE, paint.PlaneN, paint.PlaneS} {
		slot := l.Slot(func(p *Pen) { p.WallLever(p.At, p.T(base), p.T(lever), plane) })
		l.Set(slot, i+1, i+9)
	}
	l.Set(l.Slot(func(p *Pen) { p.FloorLeverNS(p.At, p.T(base), p.T(lever)) }), 5, 13)
	l.Set(l.Slot(func(p *Pen) { p.FloorLeverEW(p.At, p.T(base), p.T(lever)) }), 6, 14)
	l.Set(l.Slot(func(p *Pen) { p.CeilLever(p.At, p.T(lever)) }), 0, 7, 8, 15)
}

// SignPost is a standing sign.
type SignPost struct {
	Face, Pole string
}

func decodeSignPost(d Descriptor) (Variant, error) {
	if err := atLeast(d, 4); err != nil {
		return nil, err
	}
	return SignPost{Face: d.Fields[2], Pole: d.Fields[3]}, nil
}

func (v SignPost) layout(l *Layout) {
	face, pole := l.Tex(v.Face), l.Tex(v.Pole)
	l.Fill(l.Slot(func(p *Pen) { p.Sign(p.At, p.T(face), p.T(pole)) }))
}
