package rbtree

import "fmt"

// Iterator - A bidirectional iterator over a TreeMap or one of its range
// views. The iterator sits between two entries; Next and Prev move it and
// return the entry crossed, so alternating calls return the same entry.
// Remove deletes the entry last returned and leaves the iterator positioned
// where that entry was.
type Iterator[K any, V any] struct {
	t    *TreeMap[K, V]
	sub  *SubMap[K, V]
	prev *node[K, V]
	next *node[K, V]
	curr *node[K, V]
}

// Iterator - Returns an iterator positioned before the first entry
func (T *TreeMap[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{t: T, next: T.first}
}

// IteratorFrom - Returns an iterator positioned between the entries that
// would precede and follow k, whether or not k is present. A following call
// to Next returns the smallest key greater than k; Prev returns the largest
// key less than or equal to k.
func (T *TreeMap[K, V]) IteratorFrom(k K) *Iterator[K, V] {
	i := &Iterator[K, V]{t: T}
	if i.next = T.locateKey(k); i.next != nil {
		if T.compare(i.next.key, k) <= 0 {
			i.prev = i.next
			i.next = i.next.next()
		} else {
			i.prev = i.next.prev()
		}
	}
	return i
}

// HasNext - Reports whether a following Next will return an entry
func (I *Iterator[K, V]) HasNext() bool {
	return I.next != nil
}

// HasPrev - Reports whether a following Prev will return an entry
func (I *Iterator[K, V]) HasPrev() bool {
	return I.prev != nil
}

func (I *Iterator[K, V]) updateNext() {
	I.next = I.next.next()
	if I.sub != nil && I.next != nil && !I.sub.top && I.t.compare(I.next.key, I.sub.to) >= 0 {
		I.next = nil
	}
}

func (I *Iterator[K, V]) updatePrev() {
	I.prev = I.prev.prev()
	if I.sub != nil && I.prev != nil && !I.sub.bottom && I.t.compare(I.prev.key, I.sub.from) < 0 {
		I.prev = nil
	}
}

// Next - Moves forward over the next entry and returns it, with ok false when
// the iteration has reached the end
func (I *Iterator[K, V]) Next() (k K, v V, ok bool) {
	if I.next == nil {
		return
	}

	I.curr = I.next
	I.prev = I.next
	I.updateNext()
	return I.curr.key, I.curr.value, true
}

// Prev - Moves backward over the previous entry and returns it, with ok false
// when the iteration has reached the beginning
func (I *Iterator[K, V]) Prev() (k K, v V, ok bool) {
	if I.prev == nil {
		return
	}

	I.curr = I.prev
	I.next = I.prev
	I.updatePrev()
	return I.curr.key, I.curr.value, true
}

// SetValue - Replaces the value of the entry last returned
func (I *Iterator[K, V]) SetValue(v V) error {
	if I.curr == nil {
		return fmt.Errorf("no entry to set, Next or Prev has not been called or the entry is removed")
	}

	I.curr.value = v
	return nil
}

// Remove - Removes the entry last returned by Next or Prev from the
// underlying map
func (I *Iterator[K, V]) Remove() error {
	if I.curr == nil {
		return fmt.Errorf("no entry to remove, Next or Prev has not been called or the entry is already removed")
	}

	I.next = I.curr
	I.prev = I.curr
	I.updatePrev()
	I.updateNext()
	I.t.removeKey(I.curr.key)
	I.curr = nil
	return nil
}

// Entry - A handle to a live tree entry, giving constant-time in-order
// traversal from any position. A handle becomes invalid when its entry is
// removed from the map.
type Entry[K any, V any] struct {
	e *node[K, V]
}

// FirstEntry - Returns a handle to the entry with the smallest key, nil when
// the map is empty
func (T *TreeMap[K, V]) FirstEntry() *Entry[K, V] {
	if T.root == nil {
		return nil
	}
	return &Entry[K, V]{e: T.first}
}

// LastEntry - Returns a handle to the entry with the largest key, nil when
// the map is empty
func (T *TreeMap[K, V]) LastEntry() *Entry[K, V] {
	if T.root == nil {
		return nil
	}
	return &Entry[K, V]{e: T.last}
}

// FindEntry - Returns a handle to the entry with key k, nil when absent
func (T *TreeMap[K, V]) FindEntry(k K) *Entry[K, V] {
	e := T.locate(k)
	if e == nil {
		return nil
	}
	return &Entry[K, V]{e: e}
}

// Key - Returns the entry key
func (E *Entry[K, V]) Key() K {
	return E.e.key
}

// Value - Returns the entry value
func (E *Entry[K, V]) Value() V {
	return E.e.value
}

// SetValue - Replaces the entry value, returning the previous one
func (E *Entry[K, V]) SetValue(v V) (old V) {
	old = E.e.value
	E.e.value = v
	return
}

// Next - Returns a handle to the entry with the next larger key, nil when
// this entry holds the largest key
func (E *Entry[K, V]) Next() *Entry[K, V] {
	n := E.e.next()
	if n == nil {
		return nil
	}
	return &Entry[K, V]{e: n}
}

// Prev - Returns a handle to the entry with the next smaller key, nil when
// this entry holds the smallest key
func (E *Entry[K, V]) Prev() *Entry[K, V] {
	p := E.e.prev()
	if p == nil {
		return nil
	}
	return &Entry[K, V]{e: p}
}
