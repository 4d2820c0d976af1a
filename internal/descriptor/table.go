package descriptor

import "blockatlas/pkg/blockid"

// Table maps every (id, state) pair to a slot. Unmapped pairs point at
// slot 0, the blank dummy slot.
type Table struct {
	offsets [blockid.Count * blockid.States]int32
}

// Offset returns the slot of (id, state), or 0 when either is out of range.
func (t *Table) Offset(id, state int) int {
	k := blockid.Key{ID: id, State: state}
	if !k.Valid() {
		return 0
	}
	return int(t.offsets[id*blockid.States+state])
}

// Keys lists every (id, state) pair that points at slot, in id order.
func (t *Table) Keys(slot int) []blockid.Key {
	var out []blockid.Key
	for i, o := range t.offsets {
		if int(o) == slot {
			out = append(out, blockid.Key{ID: i / blockid.States, State: i % blockid.States})
		}
	}
	return out
}

func (t *Table) set(id, state, slot int) bool {
	k := blockid.Key{ID: id, State: state}
	if !k.Valid() {
		return false
	}
	t.offsets[id*blockid.States+state] = int32(slot)
	return true
}

func (t *Table) fill(id, slot int) {
	for s := 0; s < blockid.States; s++ {
		t.set(id, s, slot)
	}
}
