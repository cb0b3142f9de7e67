package rbtree

import "fmt"

// SubMap - A live range view of a TreeMap, bounded below by from (inclusive)
// and above by to (exclusive). A bound can also be absent, making the view
// open on that side. The view holds no entries of its own: reads consult the
// backing map filtered by the bounds, writes go straight to it, and changes
// to the backing map are visible through the view.
type SubMap[K any, V any] struct {
	t        *TreeMap[K, V]
	from, to K
	// bottom and top mark an absent lower respectively upper bound
	bottom, top bool
}

// SubMap - Returns a view of the entries with from <= key < to
func (T *TreeMap[K, V]) SubMap(from, to K) (s *SubMap[K, V], err error) {
	if T.compare(from, to) > 0 {
		err = fmt.Errorf("start key must not be greater than end key")
		return
	}

	s = &SubMap[K, V]{t: T, from: from, to: to}
	return
}

// HeadMap - Returns a view of the entries with key < to
func (T *TreeMap[K, V]) HeadMap(to K) *SubMap[K, V] {
	return &SubMap[K, V]{t: T, to: to, bottom: true}
}

// TailMap - Returns a view of the entries with key >= from
func (T *TreeMap[K, V]) TailMap(from K) *SubMap[K, V] {
	return &SubMap[K, V]{t: T, from: from, top: true}
}

// SubMap - Returns a narrower view; the given bounds are clamped to this view's
func (S *SubMap[K, V]) SubMap(from, to K) (s *SubMap[K, V], err error) {
	if !S.top && S.t.compare(to, S.to) > 0 {
		to = S.to
	}
	if !S.bottom && S.t.compare(from, S.from) < 0 {
		from = S.from
	}
	return S.t.SubMap(from, to)
}

// HeadMap - Returns a view of this view's entries with key < to
func (S *SubMap[K, V]) HeadMap(to K) (s *SubMap[K, V], err error) {
	if !S.top && S.t.compare(to, S.to) > 0 {
		to = S.to
	}
	if S.bottom {
		s = &SubMap[K, V]{t: S.t, to: to, bottom: true}
		return
	}
	return S.t.SubMap(S.from, to)
}

// TailMap - Returns a view of this view's entries with key >= from
func (S *SubMap[K, V]) TailMap(from K) (s *SubMap[K, V], err error) {
	if !S.bottom && S.t.compare(from, S.from) < 0 {
		from = S.from
	}
	if S.top {
		s = &SubMap[K, V]{t: S.t, from: from, top: true}
		return
	}
	return S.t.SubMap(from, S.to)
}

// in reports whether k falls inside the view bounds.
func (S *SubMap[K, V]) in(k K) bool {
	return (S.bottom || S.t.compare(k, S.from) >= 0) &&
		(S.top || S.t.compare(k, S.to) < 0)
}

// ContainsKey - Reports whether a key inside the bounds is present
func (S *SubMap[K, V]) ContainsKey(k K) bool {
	return S.in(k) && S.t.ContainsKey(k)
}

// Get - Returns the value for a key, or the default return value when the key
// is absent or outside the bounds
func (S *SubMap[K, V]) Get(k K) V {
	v, _ := S.GetOk(k)
	return v
}

// GetOk - Returns the value for a key and whether the key is present inside
// the bounds
func (S *SubMap[K, V]) GetOk(k K) (v V, ok bool) {
	if !S.in(k) {
		v = S.t.defRet
		return
	}
	return S.t.GetOk(k)
}

// Put - Inserts or replaces the value for a key through the view.
// A key outside the bounds is rejected with KeyOutOfRange.
func (S *SubMap[K, V]) Put(k K, v V) (old V, existed bool, err error) {
	if !S.in(k) {
		old = S.t.defRet
		err = KeyOutOfRange{}
		return
	}

	old, existed = S.t.Put(k, v)
	return
}

// Remove - Removes a key through the view. A key outside the bounds is left
// alone even when present in the backing map.
func (S *SubMap[K, V]) Remove(k K) (old V, removed bool) {
	if !S.in(k) {
		old = S.t.defRet
		return
	}
	return S.t.Remove(k)
}

// firstNode returns the in-bounds node with the smallest key, or nil.
func (S *SubMap[K, V]) firstNode() *node[K, V] {
	if S.t.root == nil {
		return nil
	}

	var e *node[K, V]
	if S.bottom {
		e = S.t.first
	} else {
		e = S.t.locateKey(S.from)
		// Either the bound itself or the next greater key.
		if S.t.compare(e.key, S.from) < 0 {
			e = e.next()
		}
	}
	if e == nil || !S.top && S.t.compare(e.key, S.to) >= 0 {
		return nil
	}
	return e
}

// lastNode returns the in-bounds node with the largest key, or nil.
func (S *SubMap[K, V]) lastNode() *node[K, V] {
	if S.t.root == nil {
		return nil
	}

	var e *node[K, V]
	if S.top {
		e = S.t.last
	} else {
		e = S.t.locateKey(S.to)
		// The upper bound is exclusive, so step below it.
		if S.t.compare(e.key, S.to) >= 0 {
			e = e.prev()
		}
	}
	if e == nil || !S.bottom && S.t.compare(e.key, S.from) < 0 {
		return nil
	}
	return e
}

// FirstKey - Returns the smallest key inside the bounds, or NoSuchElement
// when the view is empty
func (S *SubMap[K, V]) FirstKey() (k K, err error) {
	e := S.firstNode()
	if e == nil {
		err = NoSuchElement{Op: "FirstKey"}
		return
	}
	return e.key, nil
}

// LastKey - Returns the largest key inside the bounds, or NoSuchElement when
// the view is empty
func (S *SubMap[K, V]) LastKey() (k K, err error) {
	e := S.lastNode()
	if e == nil {
		err = NoSuchElement{Op: "LastKey"}
		return
	}
	return e.key, nil
}

// Size - Returns the number of entries inside the bounds.
// The count is not cached, so this walks the view.
func (S *SubMap[K, V]) Size() int {
	n := 0
	for e := S.firstNode(); e != nil; {
		n++
		e = e.next()
		if e != nil && !S.top && S.t.compare(e.key, S.to) >= 0 {
			e = nil
		}
	}
	return n
}

// IsEmpty - Reports whether the view holds no entries
func (S *SubMap[K, V]) IsEmpty() bool {
	return S.firstNode() == nil
}

// Clear - Removes every entry inside the bounds from the backing map
func (S *SubMap[K, V]) Clear() {
	it := S.Iterator()
	for {
		if _, _, ok := it.Next(); !ok {
			return
		}
		_ = it.Remove()
	}
}

// ForEach - Calls fn for every in-bounds entry in ascending key order
func (S *SubMap[K, V]) ForEach(fn func(k K, v V)) {
	it := S.Iterator()
	for {
		k, v, ok := it.Next()
		if !ok {
			return
		}
		fn(k, v)
	}
}

// Keys - Returns all in-bounds keys in ascending order
func (S *SubMap[K, V]) Keys() []K {
	var keys []K
	S.ForEach(func(k K, _ V) {
		keys = append(keys, k)
	})
	return keys
}

// Iterator - Returns an iterator positioned before the first in-bounds entry
func (S *SubMap[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{t: S.t, sub: S, next: S.firstNode()}
}

// IteratorFrom - Returns an iterator positioned between the in-bounds entries
// that would precede and follow k
func (S *SubMap[K, V]) IteratorFrom(k K) *Iterator[K, V] {
	i := S.Iterator()
	if i.next == nil {
		return i
	}

	switch {
	case !S.bottom && S.t.compare(k, i.next.key) < 0:
		i.prev = nil
	case !S.top && S.t.compare(k, S.lastNode().key) >= 0:
		i.prev = S.lastNode()
		i.next = nil
	default:
		i.next = S.t.locateKey(k)
		if S.t.compare(i.next.key, k) <= 0 {
			i.prev = i.next
			i.next = i.next.next()
		} else {
			i.prev = i.next.prev()
		}
	}
	return i
}
