package descriptor

import (
	"fmt"
	"image"
	"strings"

	"blockatlas/internal/iso"
	"blockatlas/internal/logging"
	"blockatlas/internal/paint"
)

// Textures resolves logical texture names into source tiles.
type Textures interface {
	Lookup(name string) (*image.NRGBA, bool)
	Empty() *image.NRGBA
}

// ref is a texture reference recorded at layout time and resolved at draw
// time. A lenient reference falls back to the empty tile.
type ref struct {
	name    string
	lenient bool
}

// none is the absent face.
var none ref

// Ref is a texture name a descriptor line depends on.
type Ref struct {
	Line int
	ID   int
	Name string
}

// MissingTextureError lists descriptor texture references that no loaded
// texture satisfies.
type MissingTextureError struct {
	Refs []Ref
}

func (e *MissingTextureError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d descriptor texture reference(s) unresolved", len(e.Refs))
	for _, r := range e.Refs {
		fmt.Fprintf(&b, "\n[descriptor list] %d - block %d needs %s", r.Line, r.ID, r.Name)
	}
	return b.String()
}

// Pen is handed to every slot painter: the canvas, the slot origin and the
// texture set.
type Pen struct {
	*paint.Canvas
	At    image.Point
	tex   Textures
	table *Table
}

// T resolves r. Missing strict references come back as the zero tile,
// which every primitive skips.
func (p *Pen) T(r ref) paint.Tile {
	if r.name == "" {
		return paint.Tile{}
	}
	if img, ok := p.tex.Lookup(r.name); ok {
		return paint.T(img)
	}
	if r.lenient {
		return paint.T(p.tex.Empty())
	}
	return paint.Tile{}
}

// cut converts sixteenths of a tile into pixels.
func (p *Pen) cut(n int) int { return iso.Deinterpolate(n, 16, p.TileSize()) }

// slotOf returns the rectangle of the slot state 0 of id is drawn in.
func (p *Pen) slotOf(id int) image.Rectangle { return p.Rect(p.table.Offset(id, 0)) }

// Plan is the result of laying out a descriptor list.
type Plan struct {
	Table      Table
	FieldCount int

	painters []func(*Pen)
	refs     []Ref
}

// Build decodes and lays out every descriptor of list in order. Lines that
// do not decode are logged and take no slot.
func Build(list *List) *Plan {
	p := &Plan{FieldCount: list.FieldCount, painters: []func(*Pen){nil}}
	for _, d := range list.Descriptors {
		v, err := Decode(d)
		if err != nil {
			logging.Logger().Warn("skipping descriptor", "line", d.Line, "id", d.ID, "kind", d.Kind, "err", err)
			continue
		}
		first := len(p.painters)
		v.layout(&Layout{plan: p, d: d})
		logging.Logger().Debug("descriptor laid out", "line", d.Line, "id", d.ID, "kind", d.Kind,
			"first", first, "slots", len(p.painters)-first)
	}
	return p
}

// Slots is the number of slots including the dummy slot 0. It doubles as
// the version of the descriptor list.
func (p *Plan) Slots() int { return len(p.painters) }

// Refs returns the strict texture references of the plan.
func (p *Plan) Refs() []Ref { return p.refs }

// Validate reports every strict texture reference tx cannot resolve.
func (p *Plan) Validate(tx Textures) error {
	seen := make(map[Ref]bool)
	var missing []Ref
	for _, r := range p.refs {
		if seen[r] {
			continue
		}
		seen[r] = true
		if _, ok := tx.Lookup(r.Name); !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return &MissingTextureError{Refs: missing}
	}
	return nil
}

// Draw paints every slot into c in slot order.
func (p *Plan) Draw(c *paint.Canvas, tx Textures) {
	pen := &Pen{Canvas: c, tex: tx, table: &p.Table}
	for slot, paintFn := range p.painters {
		if paintFn == nil {
			continue
		}
		pen.At = c.Rect(slot).Min
		paintFn(pen)
	}
}

// Layout is the allocation cursor a variant lays itself out through.
type Layout struct {
	plan *Plan
	d    Descriptor
}

// Slot allocates the next slot, painted by fn, and returns its index.
func (l *Layout) Slot(fn func(*Pen)) int {
	l.plan.painters = append(l.plan.painters, fn)
	return len(l.plan.painters) - 1
}

// Fill points every state of the current id at slot.
func (l *Layout) Fill(slot int) { l.plan.Table.fill(l.d.ID, slot) }

// FillID points every state of id at slot.
func (l *Layout) FillID(id, slot int) { l.plan.Table.fill(id, slot) }

// Set points the given states of the current id at slot.
func (l *Layout) Set(slot int, states ...int) { l.SetID(l.d.ID, slot, states...) }

// SetID points the given states of id at slot. States outside the table
// are dropped.
func (l *Layout) SetID(id, slot int, states ...int) {
	for _, s := range states {
		if !l.plan.Table.set(id, s, slot) {
			logging.Logger().Debug("state outside table", "line", l.d.Line, "id", id, "state", s)
		}
	}
}

// Tex records a strict texture reference.
func (l *Layout) Tex(name string) ref {
	l.plan.refs = append(l.plan.refs, Ref{Line: l.d.Line, ID: l.d.ID, Name: name})
	return ref{name: name}
}

// Soft records a reference that may be missing.
func (l *Layout) Soft(name string) ref { return ref{name: name, lenient: true} }
