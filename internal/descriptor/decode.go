package descriptor

import (
	"errors"
	"fmt"
	"strconv"

	"blockatlas/internal/paint"
	"blockatlas/pkg/blockid"
)

var (
	ErrUnknownKind = errors.New("unknown descriptor kind")
	ErrMalformed   = errors.New("malformed descriptor")
)

// Variant is a decoded descriptor. The set of variants is closed.
type Variant interface {
	layout(l *Layout)
}

type decoder func(d Descriptor) (Variant, error)

// kinds holds the decoder of every descriptor keyword.
var kinds = map[string]decoder{
	"SOLID":                 decodeSolid,
	"SOLIDORIENTED":         decodeSolidOriented,
	"SOLIDROTATED":          decodeSolidRotated,
	"SOLIDDATA":             decodeSolidData(false),
	"SOLIDDATAFILL":         decodeSolidData(true),
	"SOLIDDATATRUNK":        decodeSolidDataTrunk,
	"SOLIDDATATRUNKROTATED": decodeSolidDataTrunkRotated,
	"SOLIDOBSTRUCTED":       decodeSolidObstructed,
	"SOLIDPARTIAL":          decodeSolidPartial,
	"SOLIDDATAPARTIALFILL":  decodeSolidDataPartialFill,
	"SOLIDTRANSPARENT":      decodeSolidTransparent,
	"SLABDATA":              decodeSlabData,
	"SLABDATATRUNK":         decodeSlabDataTrunk,
	"ITEMDATA":              decodeItemData(itemCross, false),
	"MULTIITEMDATA":         decodeItemData(itemSquare, false),
	"ITEMDATAFILL":          decodeItemData(itemCross, true),
	"ITEMDATAORIENTED":      decodeItemDataOriented,
	"STAIR":                 decodeStair,
	"FENCE":                 decodeFence,
	"WALLDATA":              decodeWallData,
	"FENCEGATE":             decodeFenceGate,
	"MUSHROOM":              decodeMushroom,
	"CHEST":                 decodeChest,
	"RAIL":                  decodeRail,
	"RAILPOWERED":           decodeRailPowered,
	"PANEDATA":              decodePaneData,
	"DOOR":                  decodeDoor,
	"TRAPDOOR":              decodeTrapdoor,
	"TORCH":                 decodeTorch,
	"ONWALLPARTIALFILL":     decodeOnWallPartialFill,
	"WIRE":                  decodeWire,
	"BITANCHOR":             decodeBitAnchor,
	"STEM":                  decodeStem,
	"REPEATER":              decodeRepeater,
	"LEVER":                 decodeLever,
	"SIGNPOST":              decodeSignPost,
}

// idHandlers decode blocks that are drawn by id rather than by keyword.
// They are consulted only when the keyword is unknown.
var idHandlers = map[int]decoder{}

func registerID(id int, dec decoder) {
	if _, dup := idHandlers[id]; dup {
		panic(fmt.Sprintf("descriptor: id handler %d registered twice", id))
	}
	idHandlers[id] = dec
}

// Decode turns d into its variant. The keyword wins over the id.
func Decode(d Descriptor) (Variant, error) {
	if d.ID < 0 || d.ID >= blockid.Count {
		return nil, fmt.Errorf("%w: block id %d out of range", ErrMalformed, d.ID)
	}
	if dec, ok := kinds[d.Kind]; ok {
		return dec(d)
	}
	if dec, ok := idHandlers[d.ID]; ok {
		return dec(d)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownKind, d.Kind)
}

func malformed(d Descriptor, want string) error {
	return fmt.Errorf("%w: %s has %d fields, want %s", ErrMalformed, d.Kind, d.Size(), want)
}

// atLeast checks that d carries n fields.
func atLeast(d Descriptor, n int) error {
	if d.Size() < n {
		return malformed(d, "at least "+strconv.Itoa(n))
	}
	return nil
}

// intOr parses s, returning def when s is not an integer.
func intOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// sixteenth parses a cutoff in sixteenths, clamped to [0, 16]. Garbage
// reads as 0.
func sixteenth(s string) int {
	return min(max(intOr(s, 0), 0), 16)
}

// connections enumerates the 15 non-empty side sets in the order the
// connected variants of fences, walls and panes are laid out: bit 0 north,
// bit 1 south, bit 2 east, bit 3 west.
func connections(n int) []paint.Sides {
	out := make([]paint.Sides, 0, n)
	for m := 1; m <= n; m++ {
		var s paint.Sides
		if m&1 != 0 {
			s |= paint.North
		}
		if m&2 != 0 {
			s |= paint.South
		}
		if m&4 != 0 {
			s |= paint.East
		}
		if m&8 != 0 {
			s |= paint.West
		}
		out = append(out, s)
	}
	return out
}

// block paints a full cube.
func block(w, s, u ref) func(*Pen) {
	return func(p *Pen) { p.Block(p.At, p.T(w), p.T(s), p.T(u)) }
}
