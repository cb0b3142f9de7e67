package rbtree

import "cmp"

// TreeSet - A sorted set backed by the TreeMap engine with an empty value
// type, so it shares the threaded structure and balancing with TreeMap.
type TreeSet[K any] struct {
	t *TreeMap[K, struct{}]
}

// NewSet - Returns a TreeSet ordered by the natural order of K
func NewSet[K cmp.Ordered]() *TreeSet[K] {
	return NewSetWithComparator[K](cmp.Compare[K])
}

// NewSetWithComparator - Returns a TreeSet ordered by the given comparator
func NewSetWithComparator[K any](compare func(a, b K) int) *TreeSet[K] {
	return &TreeSet[K]{t: NewWithComparator[K, struct{}](compare)}
}

// Add - Adds a key, reporting whether it was not already present
func (S *TreeSet[K]) Add(k K) bool {
	_, existed := S.t.Put(k, struct{}{})
	return !existed
}

// Contains - Reports whether a key is present
func (S *TreeSet[K]) Contains(k K) bool {
	return S.t.ContainsKey(k)
}

// Remove - Removes a key, reporting whether it was present
func (S *TreeSet[K]) Remove(k K) bool {
	_, removed := S.t.Remove(k)
	return removed
}

// Size - Returns the number of keys in the set
func (S *TreeSet[K]) Size() int {
	return S.t.Size()
}

// IsEmpty - Reports whether the set has no keys
func (S *TreeSet[K]) IsEmpty() bool {
	return S.t.IsEmpty()
}

// Clear - Removes all keys
func (S *TreeSet[K]) Clear() {
	S.t.Clear()
}

// First - Returns the smallest key, or NoSuchElement on an empty set
func (S *TreeSet[K]) First() (K, error) {
	return S.t.FirstKey()
}

// Last - Returns the largest key, or NoSuchElement on an empty set
func (S *TreeSet[K]) Last() (K, error) {
	return S.t.LastKey()
}

// ForEach - Calls fn for every key in ascending order
func (S *TreeSet[K]) ForEach(fn func(k K)) {
	S.t.ForEach(func(k K, _ struct{}) {
		fn(k)
	})
}

// Keys - Returns all keys in ascending order
func (S *TreeSet[K]) Keys() []K {
	return S.t.Keys()
}

// Iterator - Returns a bidirectional iterator over the keys
func (S *TreeSet[K]) Iterator() *SetIterator[K] {
	return &SetIterator[K]{it: S.t.Iterator()}
}

// IteratorFrom - Returns an iterator positioned between the keys that would
// precede and follow k
func (S *TreeSet[K]) IteratorFrom(k K) *SetIterator[K] {
	return &SetIterator[K]{it: S.t.IteratorFrom(k)}
}

// Clone - Returns a deep copy of the set
func (S *TreeSet[K]) Clone() *TreeSet[K] {
	return &TreeSet[K]{t: S.t.Clone()}
}

// SetIterator - A bidirectional iterator over the keys of a TreeSet
type SetIterator[K any] struct {
	it *Iterator[K, struct{}]
}

// HasNext - Reports whether a following Next will return a key
func (I *SetIterator[K]) HasNext() bool {
	return I.it.HasNext()
}

// HasPrev - Reports whether a following Prev will return a key
func (I *SetIterator[K]) HasPrev() bool {
	return I.it.HasPrev()
}

// Next - Moves forward over the next key and returns it
func (I *SetIterator[K]) Next() (k K, ok bool) {
	k, _, ok = I.it.Next()
	return
}

// Prev - Moves backward over the previous key and returns it
func (I *SetIterator[K]) Prev() (k K, ok bool) {
	k, _, ok = I.it.Prev()
	return
}

// Remove - Removes the key last returned by Next or Prev
func (I *SetIterator[K]) Remove() error {
	return I.it.Remove()
}
