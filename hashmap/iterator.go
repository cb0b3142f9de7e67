package hashmap

import (
	"fmt"
	"math"
)

// Iterator - An iterator over the entries of a Map, supporting removal of the
// entry last returned without disturbing the rest of the iteration.
//
// The iterator returns the zero-key entry first when present, then scans the
// regular slots from high to low. Removing an entry mid-iteration shifts later
// entries back over the freed slot; any entry that such a shift moves from the
// not-yet-visited region into the already-visited region is remembered in a
// side list and handed out at the end, so every entry is returned exactly once.
type Iterator[K comparable, V any] struct {
	m *Map[K, V]
	// pos is the next slot to inspect going down; when negative, -pos-1
	// indexes the wrapped list instead
	pos int
	// last is the slot of the entry last returned, -1 when none is
	// removable, math.MinInt when it came from the wrapped list
	last int
	// c is the number of entries still to be returned
	c                 int
	mustReturnZeroKey bool
	wrapped           []K
}

// Iterator - Returns an iterator positioned before the first entry
func (M *Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{
		m:                 M,
		pos:               M.n,
		last:              -1,
		c:                 M.size,
		mustReturnZeroKey: M.containsZeroKey,
	}
}

// HasNext - Reports whether the iteration has more entries
func (I *Iterator[K, V]) HasNext() bool {
	return I.c != 0
}

// nextSlot advances the iteration and returns the slot holding the next entry.
// Entries from the wrapped list are located by re-probing for their key, since
// further removals may have moved them.
func (I *Iterator[K, V]) nextSlot() int {
	I.c--
	if I.mustReturnZeroKey {
		I.mustReturnZeroKey = false
		I.last = I.m.n
		return I.last
	}

	var zero K
	key := I.m.key
	for {
		I.pos--
		if I.pos < 0 {
			I.last = math.MinInt
			k := I.wrapped[-I.pos-1]
			p := I.m.slotFor(k)
			for !I.m.strategy.Equals(k, key[p]) {
				p = (p + 1) & I.m.mask
			}
			return p
		}
		if key[I.pos] != zero {
			I.last = I.pos
			return I.pos
		}
	}
}

// Next - Returns the next entry, with ok false when the iteration is exhausted
func (I *Iterator[K, V]) Next() (k K, v V, ok bool) {
	if I.c == 0 {
		return
	}

	p := I.nextSlot()
	return I.m.key[p], I.m.value[p], true
}

// Remove - Removes the entry last returned by Next from the underlying map
func (I *Iterator[K, V]) Remove() error {
	if I.last == -1 {
		return fmt.Errorf("no entry to remove, Next has not been called or the entry is already removed")
	}

	m := I.m
	switch {
	case I.last == m.n:
		var zeroK K
		var zeroV V
		m.containsZeroKey = false
		m.key[m.n] = zeroK
		m.value[m.n] = zeroV
	case I.pos >= 0:
		m.shiftKeys(I.last, func(k K) {
			I.wrapped = append(I.wrapped, k)
		})
	default:
		// Removing a wrapped entry: it sits at an arbitrary slot, so let the
		// map remove it by key. Remove decrements size itself.
		var zeroK K
		k := I.wrapped[-I.pos-1]
		I.wrapped[-I.pos-1] = zeroK
		m.Remove(k)
		I.last = -1
		return nil
	}

	m.size--
	I.last = -1
	return nil
}
