// Package blockid names the block type ids the atlas treats specially and
// the bounds of the id and state space.
package blockid

import (
	"strconv"
	"strings"
)

// Count is the number of block type ids. Valid ids are 0..Count-1.
const Count = 4096

// States is the number of data values per block type.
const States = 16

// Well known ids.
const (
	Air             = 0
	Water           = 8
	StationaryWater = 9
	Lava            = 10
	StationaryLava  = 11
	Glass           = 20
	Bed             = 26
	BrewingStand    = 117
	Cauldron        = 118
	DragonEgg       = 122
	Beacon          = 138
	FlowerPot       = 140
	Anvil           = 145
	Hopper          = 154
)

// Key identifies one block type and data value.
type Key struct {
	ID    int
	State int
}

// Valid reports whether k lies inside the id and state space.
func (k Key) Valid() bool {
	return k.ID >= 0 && k.ID < Count && k.State >= 0 && k.State < States
}

// Describe formats keys as "id:states" groups, collapsing runs of
// consecutive states of one id into ranges, for example "35:0-15 43:2,5".
// Keys are expected sorted by id then state.
func Describe(keys []Key) string {
	var b strings.Builder
	for i := 0; i < len(keys); {
		id := keys[i].ID
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(id))
		b.WriteByte(':')
		first := true
		for i < len(keys) && keys[i].ID == id {
			lo := keys[i].State
			hi := lo
			i++
			for i < len(keys) && keys[i].ID == id && keys[i].State == hi+1 {
				hi++
				i++
			}
			if !first {
				b.WriteByte(',')
			}
			first = false
			b.WriteString(strconv.Itoa(lo))
			if hi > lo {
				b.WriteByte('-')
				b.WriteString(strconv.Itoa(hi))
			}
		}
	}
	return b.String()
}
