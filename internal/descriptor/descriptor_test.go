package descriptor

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"blockatlas/internal/iso"
	"blockatlas/internal/paint"
	"blockatlas/internal/texture"
	"blockatlas/pkg/blockid"
)

func plan(t *testing.T, lines ...string) *Plan {
	t.Helper()
	list, err := Parse(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return Build(list)
}

func TestParse(t *testing.T) {
	src := `# header
1 SOLID stone   # trailing

2  SOLID  a b c
x SOLID nope
3
4 SOLID #comment`
	list, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(list.Descriptors) != 3 {
		t.Fatalf("got %d descriptors, want 3: %+v", len(list.Descriptors), list.Descriptors)
	}
	want := []struct {
		line, id, size int
	}{{2, 1, 3}, {4, 2, 5}, {7, 4, 2}}
	for i, w := range want {
		d := list.Descriptors[i]
		if d.Line != w.line || d.ID != w.id || d.Size() != w.size || d.Kind != "SOLID" {
			t.Errorf("descriptor %d = %+v, want line %d id %d size %d", i, d, w.line, w.id, w.size)
		}
	}
	if list.FieldCount != 11 {
		t.Errorf("FieldCount = %d, want 11", list.FieldCount)
	}
	if got := list.Descriptors[0].Field(9); got != "" {
		t.Errorf("Field past the end = %q", got)
	}
}

func TestSlotCounts(t *testing.T) {
	cases := []struct {
		line  string
		slots int
	}{
		{"1 SOLID stone", 1},
		{"1 SOLID w s u", 1},
		{"61 SOLIDORIENTED 2 3 4 5 face side top", 3},
		{"29 SOLIDROTATED top side bottom", 6},
		{"35 SOLIDDATA a b c", 3},
		{"35 SOLIDDATAFILL a b", 2},
		{"17 SOLIDDATATRUNK t1 s1 t2 s2", 2},
		{"17 SOLIDDATATRUNKROTATED O 1 t1 s1 0 t2 s2", 4},
		{"18 SOLIDOBSTRUCTED leaves", 4},
		{"18 SOLIDOBSTRUCTED w s u", 4},
		{"78 SOLIDPARTIAL w s u 12 0", 1},
		{"78 SOLIDDATAPARTIALFILL w s u 14 0 12 0", 2},
		{"20 SOLIDTRANSPARENT n s e w u d", 1},
		{"44 SLABDATA a b", 4},
		{"126 SLABDATATRUNK t s", 2},
		{"31 ITEMDATA a b", 2},
		{"31 MULTIITEMDATA a", 1},
		{"31 ITEMDATAFILL a b", 2},
		{"127 ITEMDATAORIENTED 0 2 3 1 a b", 8},
		{"127 ITEMDATAORIENTED 0 2 3 1 a b c d e", 16},
		{"53 STAIR planks", 8},
		{"85 FENCE planks", 16},
		{"139 WALLDATA a b", 36},
		{"107 FENCEGATE planks", 2},
		{"99 MUSHROOM pore stem cap", 7},
		{"54 CHEST chest", 3},
		{"54 CHEST chest large", 11},
		{"66 RAIL rail", 6},
		{"66 RAIL rail corner", 10},
		{"27 RAILPOWERED off on", 12},
		{"102 PANEDATA glass", 15},
		{"64 DOOR bottom top", 8},
		{"96 TRAPDOOR hatch", 6},
		{"50 TORCH torch", 5},
		{"65 ONWALLPARTIALFILL 2 3 4 5 ladder 0 0 0 0", 4},
		{"55 WIRE wire", 12},
		{"55 WIRE wire cross", 12},
		{"106 BITANCHOR vine", 16},
		{"104 STEM levels connected", 12},
		{"93 REPEATER base torch", 4},
		{"69 LEVER base lever", 7},
		{"63 SIGNPOST face pole", 1},
		{"8 SPECIAL water", 11},
		{"10 SPECIAL lava", 4},
		{"26 SPECIAL ff fs ft hf hs ht", 8},
		{"117 SPECIAL base stand", 1},
		{"118 SPECIAL side water", 4},
		{"122 SPECIAL egg", 1},
		{"138 SPECIAL heart pedestal", 1},
		{"140 SPECIAL pot dirt a b c", 4},
		{"145 SPECIAL base d0 d1 d2", 6},
		{"154 SPECIAL base inside", 1},
	}
	for _, c := range cases {
		p := plan(t, c.line)
		if got := p.Slots() - 1; got != c.slots {
			t.Errorf("%q: %d slots, want %d", c.line, got, c.slots)
		}
	}
}

func TestSlotsAreSequential(t *testing.T) {
	p := plan(t,
		"1 SOLID stone",
		"53 STAIR planks",
		"2 SOLID w s u",
	)
	if got := p.Table.Offset(1, 0); got != 1 {
		t.Errorf("stone at %d, want 1", got)
	}
	if got := p.Table.Offset(53, 0); got != 2 {
		t.Errorf("stair E at %d, want 2", got)
	}
	if got := p.Table.Offset(2, 15); got != 10 {
		t.Errorf("grass at %d, want 10", got)
	}
	if p.Slots() != 11 {
		t.Errorf("Slots = %d, want 11", p.Slots())
	}
}

func TestStateAliasing(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		id    int
		same  [][]int // groups of states sharing one slot
		apart [2]int  // two states on different slots
	}{
		{"lever powered bit", "69 LEVER base lever", 69, [][]int{{1, 9}, {5, 13}, {0, 7, 8, 15}}, [2]int{1, 2}},
		{"trapdoor", "96 TRAPDOOR hatch", 96, [][]int{{0, 1, 2, 3}, {8, 9, 10, 11}, {4, 12}, {7, 15}}, [2]int{4, 5}},
		{"repeater delay", "93 REPEATER base torch", 93, [][]int{{0, 4, 8, 12}, {3, 7, 11, 15}}, [2]int{0, 1}},
		{"oriented east like north", "61 SOLIDORIENTED 2 3 4 5 face side top", 61, [][]int{{0, 2, 5}}, [2]int{3, 4}},
		{"rotated bit 3", "29 SOLIDROTATED top side bottom", 29, [][]int{{0, 8}, {5, 13}}, [2]int{0, 1}},
		{"data fill repeats", "35 SOLIDDATAFILL a b", 35, [][]int{{0, 2, 14}, {1, 3, 15}}, [2]int{0, 1}},
		{"data defaults to first", "35 SOLIDDATA a b", 35, [][]int{{0, 2, 15}}, [2]int{0, 1}},
		{"bed", "26 SPECIAL ff fs ft hf hs ht", 26, [][]int{{0, 4}, {3, 7}, {8, 12}, {11, 15}}, [2]int{0, 8}},
		{"anvil", "145 SPECIAL base d0 d1 d2", 145, [][]int{{1, 3}, {4, 6}, {9, 11}}, [2]int{0, 1}},
		{"cauldron", "118 SPECIAL side water", 118, [][]int{{0, 4, 15}}, [2]int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := plan(t, tt.line)
			for _, group := range tt.same {
				want := p.Table.Offset(tt.id, group[0])
				if want == 0 {
					t.Fatalf("state %d unmapped", group[0])
				}
				for _, s := range group[1:] {
					if got := p.Table.Offset(tt.id, s); got != want {
						t.Errorf("state %d at %d, state %d at %d", s, got, group[0], want)
					}
				}
			}
			if a, b := p.Table.Offset(tt.id, tt.apart[0]), p.Table.Offset(tt.id, tt.apart[1]); a == b {
				t.Errorf("states %d and %d share slot %d", tt.apart[0], tt.apart[1], a)
			}
		})
	}
}

func TestLiquidsCoverBothIDs(t *testing.T) {
	p := plan(t, "8 SPECIAL water", "10 SPECIAL lava")
	for s := 0; s < 16; s++ {
		if a, b := p.Table.Offset(blockid.Water, s), p.Table.Offset(blockid.StationaryWater, s); a != b || a == 0 {
			t.Errorf("water state %d: %d vs %d", s, a, b)
		}
		if a, b := p.Table.Offset(blockid.Lava, s), p.Table.Offset(blockid.StationaryLava, s); a != b || a == 0 {
			t.Errorf("lava state %d: %d vs %d", s, a, b)
		}
	}
	if got := p.Table.Offset(blockid.Water, 0); got != 1 {
		t.Errorf("full water at %d, want 1", got)
	}
	if got := p.Table.Offset(blockid.Water, 7); got != 11 {
		t.Errorf("lowest water at %d, want 11", got)
	}
	if got := p.Table.Offset(blockid.Lava, 1); got != 12 {
		t.Errorf("odd lava level at %d, want the full block 12", got)
	}
	if got := p.Table.Offset(blockid.Lava, 6); got != 15 {
		t.Errorf("lava level 6 at %d, want 15", got)
	}
}

func TestSkippedLines(t *testing.T) {
	p := plan(t,
		"1 SOLID a b",                  // wrong arity
		"5 BOGUS x",                    // unknown kind
		"5000 SOLID x",                 // id out of range
		"78 SOLIDPARTIAL w s u high 0", // cutoff not an integer
		"2 SOLID grass",
	)
	if p.Slots() != 2 {
		t.Fatalf("Slots = %d, want 2", p.Slots())
	}
	if got := p.Table.Offset(2, 0); got != 1 {
		t.Errorf("grass at %d, want 1", got)
	}
	if got := p.Table.Offset(1, 0); got != 0 {
		t.Errorf("malformed line mapped to %d", got)
	}
}

func TestKeywordBeatsID(t *testing.T) {
	p := plan(t, "8 SOLID water")
	if p.Slots() != 2 {
		t.Fatalf("Slots = %d, want 2", p.Slots())
	}
	if got := p.Table.Offset(blockid.StationaryWater, 0); got != 0 {
		t.Errorf("stationary water mapped to %d by a SOLID line", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(Descriptor{ID: 1, Kind: "NOPE", Fields: []string{"1", "NOPE"}})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("unknown kind: %v", err)
	}
	_, err = Decode(Descriptor{ID: -1, Kind: "SOLID", Fields: []string{"-1", "SOLID", "x"}})
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("negative id: %v", err)
	}
	_, err = Decode(Descriptor{ID: 26, Kind: "SPECIAL", Fields: []string{"26", "SPECIAL", "a"}})
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("short bed: %v", err)
	}
}

func TestTableBounds(t *testing.T) {
	p := plan(t, "4095 SOLID x")
	if got := p.Table.Offset(4095, 15); got != 1 {
		t.Errorf("last key at %d, want 1", got)
	}
	for _, k := range []blockid.Key{{-1, 0}, {4096, 0}, {1, -1}, {1, 16}} {
		if got := p.Table.Offset(k.ID, k.State); got != 0 {
			t.Errorf("Offset(%d, %d) = %d, want 0", k.ID, k.State, got)
		}
	}
	keys := p.Table.Keys(1)
	if len(keys) != 16 || keys[0] != (blockid.Key{ID: 4095}) {
		t.Errorf("Keys(1) = %v", keys)
	}
}

func TestValidate(t *testing.T) {
	p := plan(t,
		"1 SOLID stone",
		"4 SOLID stone",
		"8 SPECIAL water",
		"106 BITANCHOR vine",
		"3 SOLID dirt",
	)
	set := texture.NewSet(4)
	set.Add("dirt", iso.NewTile(4))

	err := p.Validate(set)
	var missing *MissingTextureError
	if !errors.As(err, &missing) {
		t.Fatalf("Validate = %v, want *MissingTextureError", err)
	}
	if len(missing.Refs) != 2 {
		t.Fatalf("missing %+v, want stone twice", missing.Refs)
	}
	if missing.Refs[0] != (Ref{Line: 1, ID: 1, Name: "stone"}) || missing.Refs[1] != (Ref{Line: 2, ID: 4, Name: "stone"}) {
		t.Errorf("missing %+v", missing.Refs)
	}
	if !strings.Contains(err.Error(), "[descriptor list] 2 - block 4 needs stone") {
		t.Errorf("message %q", err.Error())
	}

	set.Add("stone", iso.NewTile(4))
	if err := p.Validate(set); err != nil {
		t.Errorf("Validate with all textures: %v", err)
	}
}

var red = color.NRGBA{220, 30, 30, 255}

func solidTile(size int, c color.NRGBA) *image.NRGBA {
	img := iso.NewTile(size)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestDraw(t *testing.T) {
	const B = 4
	lines := []string{
		"20 SOLIDTRANSPARENT glass glass glass glass glass glass",
		"1 SOLID stone",
		"138 SPECIAL heart stone",
		"26 SPECIAL stone stone stone stone stone stone",
		"140 SPECIAL stone stone stone stone stone stone stone stone stone stone stone stone",
		"55 WIRE stone",
		"54 CHEST chest large",
		"8 SPECIAL missing",
	}
	p := plan(t, lines...)
	set := texture.NewSet(2 * B)
	for _, n := range []string{"stone", "glass", "heart"} {
		set.Add(n, solidTile(2*B, red))
	}
	for i := 0; i < 7; i++ {
		set.Add(texture.SubName("chest", i), solidTile(2*B, red))
		set.Add(texture.SubName("large", i), solidTile(2*B, red))
	}

	s := 4 * B
	c := paint.NewCanvas(image.NewNRGBA(image.Rect(0, 0, 16*s, (p.Slots()/16+1)*s)), B)
	p.Draw(c, set)

	stone := c.Rect(p.Table.Offset(1, 0))
	if got := c.Img.NRGBAAt(stone.Min.X+2*B-1, stone.Min.Y); got != red {
		t.Errorf("stone top pixel %v, want %v", got, red)
	}
	if c.Img.NRGBAAt(stone.Min.X, stone.Min.Y).A != 0 {
		t.Error("stone slot corner painted")
	}
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			if c.Img.NRGBAAt(x, y).A != 0 {
				t.Fatalf("dummy slot painted at %d,%d", x, y)
			}
		}
	}
	water := c.Rect(p.Table.Offset(blockid.Water, 0))
	for y := water.Min.Y; y < water.Max.Y; y++ {
		for x := water.Min.X; x < water.Max.X; x++ {
			if c.Img.NRGBAAt(x, y).A != 0 {
				t.Fatalf("water without texture painted at %d,%d", x, y)
			}
		}
	}
}

func TestConnections(t *testing.T) {
	c := connections(15)
	if len(c) != 15 {
		t.Fatalf("%d combinations", len(c))
	}
	if c[0] != paint.North || c[1] != paint.South || c[3] != paint.East || c[7] != paint.West {
		t.Errorf("order %v", c)
	}
	if c[14] != paint.North|paint.South|paint.East|paint.West {
		t.Errorf("last %v", c[14])
	}
}

func drawWire(p *Plan, b int) *image.NRGBA {
	size := 2 * b
	wire := iso.NewTile(size)
	for y := 0; y < size; y++ {
		wire.SetNRGBA(size/2, y, red)
	}
	set := texture.NewSet(size)
	set.Add("wire", wire)
	s := 4 * b
	c := paint.NewCanvas(image.NewNRGBA(image.Rect(0, 0, 16*s, (p.Slots()/16+1)*s)), b)
	p.Draw(c, set)
	return c.Img
}

func TestPlanRedrawsAtAnotherTileSize(t *testing.T) {
	p := plan(t, "55 WIRE wire")
	drawWire(p, 3)
	again := drawWire(p, 6)
	fresh := drawWire(plan(t, "55 WIRE wire"), 6)

	diff := 0
	for i := range fresh.Pix {
		if again.Pix[i] != fresh.Pix[i] {
			diff++
		}
	}
	if diff != 0 {
		t.Errorf("second draw of one plan differs from a fresh plan in %d bytes", diff)
	}
}
