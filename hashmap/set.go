package hashmap

// Set - An open-addressing hash set backed by the Map engine with an empty
// value type, so it shares the probing, resize and deletion behaviour with
// Map at no per-entry value cost.
type Set[K comparable] struct {
	m Map[K, struct{}]
}

// NewSet - Returns a Set with default initial size and load factor
func NewSet[K comparable]() *Set[K] {
	s, _ := NewSetWithConfig(Config[K]{})
	return s
}

// NewSetWithExpected - Returns a Set pre-sized for an expected number of keys
//   - expected is the number of keys the set will hold without resizing
//   - loadFactor is the fill ratio that triggers a resize, 0 < loadFactor < 1
func NewSetWithExpected[K comparable](expected int, loadFactor float64) (s *Set[K], err error) {
	return NewSetWithConfig(Config[K]{Expected: expected, LoadFactor: loadFactor})
}

// NewSetWithConfig - Returns a Set configured according to conf
//   - conf holds configuration parameters, zero values select defaults
func NewSetWithConfig[K comparable](c Config[K]) (s *Set[K], err error) {
	m, err := NewWithConfig[K, struct{}](c)
	if err != nil {
		return
	}

	s = &Set[K]{m: *m}
	return
}

// Add - Adds a key, reporting whether it was not already present
func (S *Set[K]) Add(k K) bool {
	_, existed := S.m.Put(k, struct{}{})
	return !existed
}

// Contains - Reports whether a key is present
func (S *Set[K]) Contains(k K) bool {
	return S.m.ContainsKey(k)
}

// Remove - Removes a key, reporting whether it was present
func (S *Set[K]) Remove(k K) bool {
	_, removed := S.m.Remove(k)
	return removed
}

// Size - Returns the number of keys in the set
func (S *Set[K]) Size() int {
	return S.m.Size()
}

// IsEmpty - Reports whether the set has no keys
func (S *Set[K]) IsEmpty() bool {
	return S.m.IsEmpty()
}

// Capacity - Returns the current number of regular slots in the table
func (S *Set[K]) Capacity() int {
	return S.m.Capacity()
}

// Clear - Removes all keys, keeping the current capacity
func (S *Set[K]) Clear() {
	S.m.Clear()
}

// Trim - Rehashes the set to the smallest table the current size allows
func (S *Set[K]) Trim() bool {
	return S.m.Trim()
}

// TrimTo - Rehashes the set to the smallest table that can hold n keys
func (S *Set[K]) TrimTo(n int) bool {
	return S.m.TrimTo(n)
}

// ForEach - Calls fn for every key in table order
func (S *Set[K]) ForEach(fn func(k K)) {
	S.m.ForEach(func(k K, _ struct{}) {
		fn(k)
	})
}

// Keys - Returns all keys in table order
func (S *Set[K]) Keys() []K {
	return S.m.Keys()
}

// Iterator - Returns an iterator over the keys, supporting mid-iteration removal
func (S *Set[K]) Iterator() *SetIterator[K] {
	return &SetIterator[K]{it: S.m.Iterator()}
}

// Clone - Returns a copy of the set sharing no state with the original
func (S *Set[K]) Clone() *Set[K] {
	return &Set[K]{m: *S.m.Clone()}
}

// SetIterator - An iterator over the keys of a Set, with the same removal
// guarantees as the map Iterator.
type SetIterator[K comparable] struct {
	it *Iterator[K, struct{}]
}

// HasNext - Reports whether the iteration has more keys
func (I *SetIterator[K]) HasNext() bool {
	return I.it.HasNext()
}

// Next - Returns the next key, with ok false when the iteration is exhausted
func (I *SetIterator[K]) Next() (k K, ok bool) {
	k, _, ok = I.it.Next()
	return
}

// Remove - Removes the key last returned by Next from the underlying set
func (I *SetIterator[K]) Remove() error {
	return I.it.Remove()
}
