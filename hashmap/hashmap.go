// Package hashmap implements an open-addressing hash map and set with linear
// probing and backward-shift deletion. The table size is always a power of two
// and entries never move except when the table is resized or a deletion shifts
// a probe sequence back over the freed slot, so there are no tombstones and
// lookups never scan dead entries.
package hashmap

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/gostonefire/fastcoll/hashfunc"
	"github.com/gostonefire/fastcoll/internal/conf"
	"github.com/gostonefire/fastcoll/internal/mathx"
)

// Map - An open-addressing hash map with linear probing.
//
// The table has n slots plus one extra slot reserved for the zero value of K,
// which doubles as the empty-slot marker. Whether the zero key is present is
// tracked in a separate flag, so the zero key is a fully supported key.
//
// The table doubles when the number of entries reaches the maximum fill for
// the configured load factor, and halves when deletions leave it emptier than
// maxFill divided by the shrink divisor, never below its construction-time
// size. A Map must be created through one of the constructors.
type Map[K comparable, V any] struct {
	// key holds n+1 slots, slot n is reserved for the zero key
	key   []K
	value []V
	// mask is n-1, used to wrap probe positions
	mask            int
	containsZeroKey bool
	// n is the number of regular slots in the table
	n int
	// maxFill is the number of entries that triggers a doubling
	maxFill int
	// minN is the table size at construction, shrinking never goes below it
	minN      int
	size      int
	f         float64
	shrinkDiv int
	strategy  hashfunc.Strategy[K]
	defRet    V
	logger    *zap.Logger
}

// Config - Configuration parameters for a new Map or Set
//   - Expected is the number of entries the table is pre-sized for (0 for default)
//   - LoadFactor is the fill ratio that triggers a resize, 0 < LoadFactor < 1 (0 for default 0.75)
//   - ShrinkDivisor tunes when deletions halve the table: it shrinks when size < maxFill/ShrinkDivisor (0 for default 4)
//   - Strategy supplies custom hashing and equality (nil for a per-instance seeded default)
//   - Logger receives debug events on resize operations (nil for no logging)
type Config[K comparable] struct {
	Expected      int
	LoadFactor    float64
	ShrinkDivisor int
	Strategy      hashfunc.Strategy[K]
	Logger        *zap.Logger
}

// New - Returns a Map with default initial size and load factor
func New[K comparable, V any]() *Map[K, V] {
	m, _ := NewWithConfig[K, V](Config[K]{})
	return m
}

// NewWithExpected - Returns a Map pre-sized for an expected number of entries
//   - expected is the number of entries the map will hold without resizing
//   - loadFactor is the fill ratio that triggers a resize, 0 < loadFactor < 1
func NewWithExpected[K comparable, V any](expected int, loadFactor float64) (m *Map[K, V], err error) {
	return NewWithConfig[K, V](Config[K]{Expected: expected, LoadFactor: loadFactor})
}

// NewWithConfig - Returns a Map configured according to conf
//   - conf holds configuration parameters, zero values select defaults
func NewWithConfig[K comparable, V any](c Config[K]) (m *Map[K, V], err error) {
	if c.Expected < 0 {
		err = fmt.Errorf("expected number of entries cannot be negative, got %d", c.Expected)
		return
	}
	if c.LoadFactor == 0 {
		c.LoadFactor = conf.DefaultLoadFactor
	}
	if c.LoadFactor <= 0 || c.LoadFactor >= 1 {
		err = fmt.Errorf("load factor must be greater than 0 and smaller than 1, got %f", c.LoadFactor)
		return
	}
	if c.ShrinkDivisor == 0 {
		c.ShrinkDivisor = conf.DefaultShrinkDivisor
	}
	if c.ShrinkDivisor < 2 {
		err = fmt.Errorf("shrink divisor must be at least 2, got %d", c.ShrinkDivisor)
		return
	}
	if c.Expected == 0 {
		c.Expected = conf.DefaultInitialSize
	}
	if c.Strategy == nil {
		c.Strategy = hashfunc.NewComparableStrategy[K]()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	n, err := mathx.ArraySize(c.Expected, c.LoadFactor)
	if err != nil {
		return
	}

	m = &Map[K, V]{
		key:       make([]K, n+1),
		value:     make([]V, n+1),
		mask:      n - 1,
		n:         n,
		maxFill:   mathx.MaxFill(n, c.LoadFactor),
		minN:      n,
		f:         c.LoadFactor,
		shrinkDiv: c.ShrinkDivisor,
		strategy:  c.Strategy,
		logger:    c.Logger,
	}
	return
}

// SetDefaultReturnValue - Sets the value that Get returns for an absent key
func (M *Map[K, V]) SetDefaultReturnValue(v V) {
	M.defRet = v
}

// Size - Returns the number of entries in the map
func (M *Map[K, V]) Size() int {
	return M.size
}

// IsEmpty - Reports whether the map has no entries
func (M *Map[K, V]) IsEmpty() bool {
	return M.size == 0
}

// Capacity - Returns the current number of regular slots in the table
func (M *Map[K, V]) Capacity() int {
	return M.n
}

// LoadFactor - Returns the configured load factor
func (M *Map[K, V]) LoadFactor() float64 {
	return M.f
}

// slotFor returns the first slot of the probe sequence for k.
func (M *Map[K, V]) slotFor(k K) int {
	return int(hashfunc.Mix(M.strategy.Hash(k)) & uint64(M.mask))
}

// find - Locates a key, returning its slot and true when present, otherwise
// the free slot where it would be inserted and false. The zero key maps to the
// reserved slot n.
func (M *Map[K, V]) find(k K) (pos int, found bool) {
	var zero K
	if k == zero {
		return M.n, M.containsZeroKey
	}

	key := M.key
	pos = M.slotFor(k)
	for {
		curr := key[pos]
		if curr == zero {
			return pos, false
		}
		if M.strategy.Equals(curr, k) {
			return pos, true
		}
		pos = (pos + 1) & M.mask
	}
}

// insert places a new entry in the free slot pos and grows the table when the
// new size has reached maxFill.
func (M *Map[K, V]) insert(pos int, k K, v V) {
	if pos == M.n {
		M.containsZeroKey = true
	}
	M.key[pos] = k
	M.value[pos] = v
	M.size++
	if M.size-1 >= M.maxFill {
		n, err := mathx.ArraySize(M.size+1, M.f)
		if err != nil {
			panic(err)
		}
		M.rehash(n)
	}
}

// Put - Inserts or replaces the value for a key
//   - k is the key
//   - v is the value to associate with k
//
// Returns the previous value and whether the key was already present. When it
// was not, old is the default return value.
func (M *Map[K, V]) Put(k K, v V) (old V, existed bool) {
	pos, found := M.find(k)
	if !found {
		M.insert(pos, k, v)
		old = M.defRet
		return
	}

	old = M.value[pos]
	M.value[pos] = v
	existed = true
	return
}

// PutIfAbsent - Inserts the value for a key only if the key is absent.
// Returns the value that is in the map after the call and whether an insert happened.
func (M *Map[K, V]) PutIfAbsent(k K, v V) (current V, inserted bool) {
	pos, found := M.find(k)
	if found {
		current = M.value[pos]
		return
	}

	M.insert(pos, k, v)
	current = v
	inserted = true
	return
}

// Replace - Replaces the value for a key only if the key is present.
// Returns the previous value and whether a replacement happened.
func (M *Map[K, V]) Replace(k K, v V) (old V, replaced bool) {
	pos, found := M.find(k)
	if !found {
		old = M.defRet
		return
	}

	old = M.value[pos]
	M.value[pos] = v
	replaced = true
	return
}

// Get - Returns the value for a key, or the default return value when absent
func (M *Map[K, V]) Get(k K) V {
	pos, found := M.find(k)
	if !found {
		return M.defRet
	}
	return M.value[pos]
}

// GetOk - Returns the value for a key and whether the key is present
func (M *Map[K, V]) GetOk(k K) (v V, ok bool) {
	pos, found := M.find(k)
	if !found {
		v = M.defRet
		return
	}
	return M.value[pos], true
}

// GetOrDefault - Returns the value for a key, or def when the key is absent
func (M *Map[K, V]) GetOrDefault(k K, def V) V {
	pos, found := M.find(k)
	if !found {
		return def
	}
	return M.value[pos]
}

// GetOrCompute - Returns the value for a key, computing and storing it first
// when the key is absent
//   - k is the key
//   - compute produces the value to store for an absent key
func (M *Map[K, V]) GetOrCompute(k K, compute func(k K) V) V {
	pos, found := M.find(k)
	if found {
		return M.value[pos]
	}

	v := compute(k)
	M.insert(pos, k, v)
	return v
}

// ContainsKey - Reports whether a key is present
func (M *Map[K, V]) ContainsKey(k K) bool {
	_, found := M.find(k)
	return found
}

// Remove - Removes a key and its value.
// Returns the removed value and whether the key was present.
func (M *Map[K, V]) Remove(k K) (old V, removed bool) {
	var zero K
	if k == zero {
		if !M.containsZeroKey {
			old = M.defRet
			return
		}
		return M.removeZeroEntry(), true
	}

	key := M.key
	pos := M.slotFor(k)
	for {
		curr := key[pos]
		if curr == zero {
			old = M.defRet
			return
		}
		if M.strategy.Equals(curr, k) {
			return M.removeEntry(pos), true
		}
		pos = (pos + 1) & M.mask
	}
}

// removeEntry removes the entry at pos, closes the probe sequence over the
// freed slot and shrinks the table when it has become sparse enough.
func (M *Map[K, V]) removeEntry(pos int) V {
	old := M.value[pos]
	M.size--
	M.shiftKeys(pos, nil)
	M.shrinkIfSparse()
	return old
}

func (M *Map[K, V]) removeZeroEntry() V {
	var zeroK K
	var zeroV V
	M.containsZeroKey = false
	M.key[M.n] = zeroK
	old := M.value[M.n]
	M.value[M.n] = zeroV
	M.size--
	M.shrinkIfSparse()
	return old
}

func (M *Map[K, V]) shrinkIfSparse() {
	if M.n > M.minN && M.size < M.maxFill/M.shrinkDiv && M.n > conf.DefaultInitialSize {
		M.rehash(M.n / 2)
	}
}

// shiftKeys - Shifts left entries with the same hash over the freed slot pos,
// leaving the probe invariant intact without tombstones. An entry only moves
// when the freed slot lies between its preferred slot and its current slot in
// cyclic order. onWrap, when non-nil, is called for every moved entry whose
// source slot wrapped below the destination slot.
func (M *Map[K, V]) shiftKeys(pos int, onWrap func(k K)) {
	var zero K
	var zeroV V
	key := M.key

	for {
		last := pos
		pos = (last + 1) & M.mask

		var curr K
		for {
			curr = key[pos]
			if curr == zero {
				key[last] = zero
				M.value[last] = zeroV
				return
			}
			slot := M.slotFor(curr)
			if last <= pos {
				if last >= slot || slot > pos {
					break
				}
			} else if last >= slot && slot > pos {
				break
			}
			pos = (pos + 1) & M.mask
		}

		if onWrap != nil && pos < last {
			onWrap(key[pos])
		}
		key[last] = curr
		M.value[last] = M.value[pos]
	}
}

// rehash moves all entries into a fresh table of newN slots.
func (M *Map[K, V]) rehash(newN int) {
	var zero K
	key := M.key
	value := M.value
	mask := newN - 1
	newKey := make([]K, newN+1)
	newValue := make([]V, newN+1)

	i := M.n
	realSize := M.size
	if M.containsZeroKey {
		realSize--
	}
	for j := realSize; j != 0; j-- {
		i--
		for key[i] == zero {
			i--
		}
		pos := int(hashfunc.Mix(M.strategy.Hash(key[i])) & uint64(mask))
		for newKey[pos] != zero {
			pos = (pos + 1) & mask
		}
		newKey[pos] = key[i]
		newValue[pos] = value[i]
	}
	newValue[newN] = value[M.n]

	M.logger.Debug("rehash",
		zap.Int("oldCapacity", M.n),
		zap.Int("newCapacity", newN),
		zap.Int("size", M.size),
	)

	M.n = newN
	M.mask = mask
	M.maxFill = mathx.MaxFill(newN, M.f)
	M.key = newKey
	M.value = newValue
}

// Trim - Rehashes the map, making the table as small as the current number of
// entries allows. Returns false when nothing could be done, true otherwise.
func (M *Map[K, V]) Trim() bool {
	return M.TrimTo(M.size)
}

// TrimTo - Rehashes the map to the smallest table that can hold n entries at
// the configured load factor. Useful to reclaim memory after a map has been
// bulk-loaded through a temporarily oversized table and then partially
// emptied. Returns true when the table already satisfies the bound or was
// trimmed, false when n entries cannot fit in the target size.
func (M *Map[K, V]) TrimTo(n int) bool {
	l := int(mathx.NextPowerOfTwo(int64(math.Ceil(float64(n) / M.f))))
	if l < 2 {
		l = 2
	}
	if l >= M.n {
		return true
	}
	if M.size > mathx.MaxFill(l, M.f) {
		return false
	}

	M.rehash(l)
	return true
}

// Clear - Removes all entries. The table keeps its current capacity.
func (M *Map[K, V]) Clear() {
	if M.size == 0 {
		return
	}
	M.size = 0
	M.containsZeroKey = false
	clear(M.key)
	clear(M.value)
}

// ForEach - Calls fn for every entry, in table order (zero key first, then
// regular slots from high to low). The map must not be modified during the
// call; use an Iterator for removal during traversal.
func (M *Map[K, V]) ForEach(fn func(k K, v V)) {
	if M.containsZeroKey {
		fn(M.key[M.n], M.value[M.n])
	}

	var zero K
	for pos := M.n; pos > 0; {
		pos--
		if M.key[pos] != zero {
			fn(M.key[pos], M.value[pos])
		}
	}
}

// Keys - Returns all keys in table order
func (M *Map[K, V]) Keys() []K {
	keys := make([]K, 0, M.size)
	M.ForEach(func(k K, _ V) {
		keys = append(keys, k)
	})
	return keys
}

// Clone - Returns a copy of the map sharing no state with the original.
// The strategy and logger instances are shared.
func (M *Map[K, V]) Clone() *Map[K, V] {
	c := *M
	c.key = make([]K, len(M.key))
	c.value = make([]V, len(M.value))
	copy(c.key, M.key)
	copy(c.value, M.value)
	return &c
}
