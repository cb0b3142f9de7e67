// Package rbtree implements a threaded red-black tree map and set. Every node
// link that would be nil in a plain binary tree is a thread to the node's
// in-order neighbour instead, so the tree supports bidirectional traversal
// from any node in amortized constant time without parent pointers, at the
// cost of two flag bits per node. Derived from the libavl tree shapes.
package rbtree

import "cmp"

// maxPathDepth bounds the insert/delete fixup paths. A red-black tree of
// depth 64 would hold more nodes than fit in memory.
const maxPathDepth = 64

// TreeMap - A sorted map backed by a threaded red-black tree.
// Keys are ordered by the comparator given at construction. A TreeMap must be
// created through one of the constructors and is not safe for concurrent use;
// see SyncTreeMap for a locked decorator.
type TreeMap[K any, V any] struct {
	root  *node[K, V]
	count int
	// first and last are cached so FirstKey/LastKey and iterator creation
	// need no descent
	first   *node[K, V]
	last    *node[K, V]
	compare func(a, b K) int
	// modified is set by add/removeKey when the last operation changed the
	// tree, which range views use to tell an insert from a replace
	modified bool
	// scratch paths for the insert and delete fixups
	dirPath  [maxPathDepth]bool
	nodePath [maxPathDepth]*node[K, V]
	defRet   V
}

// New - Returns a TreeMap ordered by the natural order of K
func New[K cmp.Ordered, V any]() *TreeMap[K, V] {
	return NewWithComparator[K, V](cmp.Compare[K])
}

// NewWithComparator - Returns a TreeMap ordered by the given comparator
//   - compare returns a negative number when a sorts before b, zero when they
//     are the same key and a positive number when a sorts after b
func NewWithComparator[K any, V any](compare func(a, b K) int) *TreeMap[K, V] {
	return &TreeMap[K, V]{compare: compare}
}

// SetDefaultReturnValue - Sets the value that Get returns for an absent key
func (T *TreeMap[K, V]) SetDefaultReturnValue(v V) {
	T.defRet = v
}

// Size - Returns the number of entries in the map
func (T *TreeMap[K, V]) Size() int {
	return T.count
}

// IsEmpty - Reports whether the map has no entries
func (T *TreeMap[K, V]) IsEmpty() bool {
	return T.count == 0
}

// Clear - Removes all entries
func (T *TreeMap[K, V]) Clear() {
	T.count = 0
	T.root = nil
	T.first = nil
	T.last = nil
}

// locate returns the node with key k, or nil.
func (T *TreeMap[K, V]) locate(k K) *node[K, V] {
	p := T.root
	for p != nil {
		cmp := T.compare(k, p.key)
		if cmp == 0 {
			return p
		}
		if cmp < 0 {
			p = p.leftChild()
		} else {
			p = p.rightChild()
		}
	}
	return nil
}

// locateKey returns the node with key k when present, otherwise the last node
// compared on the search path (nil only for an empty tree). Range views use
// the returned node as the starting point for ceiling/floor steps.
func (T *TreeMap[K, V]) locateKey(k K) *node[K, V] {
	p := T.root
	last := T.root
	for p != nil {
		last = p
		cmp := T.compare(k, p.key)
		if cmp == 0 {
			return p
		}
		if cmp < 0 {
			p = p.leftChild()
		} else {
			p = p.rightChild()
		}
	}
	return last
}

// Get - Returns the value for a key, or the default return value when absent
func (T *TreeMap[K, V]) Get(k K) V {
	e := T.locate(k)
	if e == nil {
		return T.defRet
	}
	return e.value
}

// GetOk - Returns the value for a key and whether the key is present
func (T *TreeMap[K, V]) GetOk(k K) (v V, ok bool) {
	e := T.locate(k)
	if e == nil {
		v = T.defRet
		return
	}
	return e.value, true
}

// GetOrDefault - Returns the value for a key, or def when the key is absent
func (T *TreeMap[K, V]) GetOrDefault(k K, def V) V {
	e := T.locate(k)
	if e == nil {
		return def
	}
	return e.value
}

// ContainsKey - Reports whether a key is present
func (T *TreeMap[K, V]) ContainsKey(k K) bool {
	return T.locate(k) != nil
}

// Put - Inserts or replaces the value for a key.
// Returns the previous value and whether the key was already present; when it
// was not, old is the default return value.
func (T *TreeMap[K, V]) Put(k K, v V) (old V, existed bool) {
	e := T.add(k)
	old = e.value
	e.value = v
	existed = !T.modified
	return
}

// PutIfAbsent - Inserts the value for a key only if the key is absent.
// Returns the value that is in the map after the call and whether an insert happened.
func (T *TreeMap[K, V]) PutIfAbsent(k K, v V) (current V, inserted bool) {
	e := T.add(k)
	if T.modified {
		e.value = v
	}
	current = e.value
	inserted = T.modified
	return
}

// Remove - Removes a key and its value.
// Returns the removed value and whether the key was present.
func (T *TreeMap[K, V]) Remove(k K) (old V, removed bool) {
	old = T.removeKey(k)
	removed = T.modified
	return
}

// FirstKey - Returns the smallest key, or NoSuchElement on an empty map
func (T *TreeMap[K, V]) FirstKey() (k K, err error) {
	if T.root == nil {
		err = NoSuchElement{Op: "FirstKey"}
		return
	}
	return T.first.key, nil
}

// LastKey - Returns the largest key, or NoSuchElement on an empty map
func (T *TreeMap[K, V]) LastKey() (k K, err error) {
	if T.root == nil {
		err = NoSuchElement{Op: "LastKey"}
		return
	}
	return T.last.key, nil
}

// ForEach - Calls fn for every entry in ascending key order.
// The map must not be modified during the call; use an Iterator for removal
// during traversal.
func (T *TreeMap[K, V]) ForEach(fn func(k K, v V)) {
	for e := T.first; e != nil; e = e.next() {
		fn(e.key, e.value)
	}
}

// Keys - Returns all keys in ascending order
func (T *TreeMap[K, V]) Keys() []K {
	keys := make([]K, 0, T.count)
	T.ForEach(func(k K, _ V) {
		keys = append(keys, k)
	})
	return keys
}

// add returns the node with key k, creating one holding the default return
// value if necessary and rebalancing the tree around it. After the call,
// modified reports whether a node was created. The fixup walks the recorded
// search path bottom-up, recoloring or rotating; rotations repair the thread
// flags of the nodes they move (a rotated-up node absorbs its child link,
// turning the orphaned link into a thread between the two nodes).
func (T *TreeMap[K, V]) add(k K) *node[K, V] {
	T.modified = false
	maxDepth := 0
	var e *node[K, V]

	if T.root == nil {
		// The case of the empty tree is treated separately.
		T.count++
		e = &node[K, V]{key: k, value: T.defRet, pred: true, succ: true}
		T.root = e
		T.first = e
		T.last = e
		T.modified = true
		T.root.black = true
		return e
	}

	p := T.root
	i := 0
	for {
		cmp := T.compare(k, p.key)
		if cmp == 0 {
			// Clean up the node path, or we could have stale references later.
			for i != 0 {
				i--
				T.nodePath[i] = nil
			}
			return p
		}
		T.nodePath[i] = p
		T.dirPath[i] = cmp > 0
		i++
		if cmp > 0 {
			if p.succ {
				T.count++
				e = &node[K, V]{key: k, value: T.defRet, pred: true, succ: true}
				if p.right == nil {
					T.last = e
				}
				e.left = p
				e.right = p.right
				p.setRight(e)
				break
			}
			p = p.right
		} else {
			if p.pred {
				T.count++
				e = &node[K, V]{key: k, value: T.defRet, pred: true, succ: true}
				if p.left == nil {
					T.first = e
				}
				e.right = p
				e.left = p.left
				p.setLeft(e)
				break
			}
			p = p.left
		}
	}
	T.modified = true
	maxDepth = i
	i--

	for i > 0 && !T.nodePath[i].black {
		if !T.dirPath[i-1] {
			y := T.nodePath[i-1].right
			if !T.nodePath[i-1].succ && !y.black {
				T.nodePath[i].black = true
				y.black = true
				T.nodePath[i-1].black = false
				i -= 2
			} else {
				var x *node[K, V]
				if !T.dirPath[i] {
					y = T.nodePath[i]
				} else {
					x = T.nodePath[i]
					y = x.right
					x.right = y.left
					y.left = x
					T.nodePath[i-1].left = y
					if y.pred {
						y.pred = false
						x.setSucc(y)
					}
				}
				x = T.nodePath[i-1]
				x.black = false
				y.black = true
				x.left = y.right
				y.right = x
				if i < 2 {
					T.root = y
				} else if T.dirPath[i-2] {
					T.nodePath[i-2].right = y
				} else {
					T.nodePath[i-2].left = y
				}
				if y.succ {
					y.succ = false
					x.setPred(y)
				}
				break
			}
		} else {
			y := T.nodePath[i-1].left
			if !T.nodePath[i-1].pred && !y.black {
				T.nodePath[i].black = true
				y.black = true
				T.nodePath[i-1].black = false
				i -= 2
			} else {
				var x *node[K, V]
				if T.dirPath[i] {
					y = T.nodePath[i]
				} else {
					x = T.nodePath[i]
					y = x.left
					x.left = y.right
					y.right = x
					T.nodePath[i-1].right = y
					if y.succ {
						y.succ = false
						x.setPred(y)
					}
				}
				x = T.nodePath[i-1]
				x.black = false
				y.black = true
				x.right = y.left
				y.left = x
				if i < 2 {
					T.root = y
				} else if T.dirPath[i-2] {
					T.nodePath[i-2].right = y
				} else {
					T.nodePath[i-2].left = y
				}
				if y.pred {
					y.pred = false
					x.setSucc(y)
				}
				break
			}
		}
	}

	T.root.black = true
	// Clean up the node path, or we could have stale references later.
	for maxDepth != 0 {
		maxDepth--
		T.nodePath[maxDepth] = nil
	}
	return e
}

// removeKey removes the node with key k and returns its value, or the default
// return value when absent. After the call, modified reports whether a node
// was removed. Deletion distinguishes three shapes: a leaf-like node is
// unlinked by turning its parent link into a thread, a node whose right child
// has no left subtree is replaced by that child, and otherwise the in-order
// successor is unspliced and swapped into the node's place, taking over its
// color. When the removed position was black, the fixup walks the recorded
// path bottom-up restoring the black height.
func (T *TreeMap[K, V]) removeKey(k K) V {
	T.modified = false
	if T.root == nil {
		return T.defRet
	}

	p := T.root
	i := 0
	for {
		cmp := T.compare(k, p.key)
		if cmp == 0 {
			break
		}
		T.dirPath[i] = cmp > 0
		T.nodePath[i] = p
		i++
		if cmp > 0 {
			if p = p.rightChild(); p == nil {
				// Clean up the node path, or we could have stale references later.
				for i != 0 {
					i--
					T.nodePath[i] = nil
				}
				return T.defRet
			}
		} else {
			if p = p.leftChild(); p == nil {
				for i != 0 {
					i--
					T.nodePath[i] = nil
				}
				return T.defRet
			}
		}
	}

	if p.left == nil {
		T.first = p.next()
	}
	if p.right == nil {
		T.last = p.prev()
	}

	if p.succ {
		if p.pred {
			// No subtrees: detach p, its parent link becomes a thread.
			if i == 0 {
				T.root = nil
			} else if T.dirPath[i-1] {
				T.nodePath[i-1].setSucc(p.right)
			} else {
				T.nodePath[i-1].setPred(p.left)
			}
		} else {
			// Only a left subtree: hoist it, rethreading its last node.
			p.prev().right = p.right
			if i == 0 {
				T.root = p.left
			} else if T.dirPath[i-1] {
				T.nodePath[i-1].right = p.left
			} else {
				T.nodePath[i-1].left = p.left
			}
		}
	} else {
		r := p.right
		if r.pred {
			// The right child has no left subtree: it replaces p directly.
			r.left = p.left
			r.pred = p.pred
			if !r.pred {
				r.prev().right = r
			}
			if i == 0 {
				T.root = r
			} else if T.dirPath[i-1] {
				T.nodePath[i-1].right = r
			} else {
				T.nodePath[i-1].left = r
			}
			r.black, p.black = p.black, r.black
			T.dirPath[i] = true
			T.nodePath[i] = r
			i++
		} else {
			// Swap in the in-order successor s, recording the path down to it.
			var s *node[K, V]
			j := i
			i++
			for {
				T.dirPath[i] = false
				T.nodePath[i] = r
				i++
				s = r.left
				if s.pred {
					break
				}
				r = s
			}
			T.dirPath[j] = true
			T.nodePath[j] = s
			if s.succ {
				r.setPred(s)
			} else {
				r.left = s.right
			}
			s.left = p.left
			if !p.pred {
				p.prev().right = s
				s.pred = false
			}
			s.setRight(p.right)
			s.black, p.black = p.black, s.black
			if j == 0 {
				T.root = s
			} else if T.dirPath[j-1] {
				T.nodePath[j-1].right = s
			} else {
				T.nodePath[j-1].left = s
			}
		}
	}

	maxDepth := i
	if p.black {
		for ; i > 0; i-- {
			if T.dirPath[i-1] && !T.nodePath[i-1].succ ||
				!T.dirPath[i-1] && !T.nodePath[i-1].pred {
				var x *node[K, V]
				if T.dirPath[i-1] {
					x = T.nodePath[i-1].right
				} else {
					x = T.nodePath[i-1].left
				}
				if !x.black {
					x.black = true
					break
				}
			}
			if !T.dirPath[i-1] {
				w := T.nodePath[i-1].right
				if !w.black {
					w.black = true
					T.nodePath[i-1].black = false
					T.nodePath[i-1].right = w.left
					w.left = T.nodePath[i-1]
					if i < 2 {
						T.root = w
					} else if T.dirPath[i-2] {
						T.nodePath[i-2].right = w
					} else {
						T.nodePath[i-2].left = w
					}
					T.nodePath[i] = T.nodePath[i-1]
					T.dirPath[i] = false
					T.nodePath[i-1] = w
					if maxDepth == i {
						maxDepth++
					}
					i++
					w = T.nodePath[i-1].right
				}
				if (w.pred || w.left.black) && (w.succ || w.right.black) {
					w.black = false
				} else {
					if w.succ || w.right.black {
						y := w.left
						y.black = true
						w.black = false
						w.left = y.right
						y.right = w
						w = y
						T.nodePath[i-1].right = y
						if w.succ {
							w.succ = false
							w.right.setPred(w)
						}
					}
					w.black = T.nodePath[i-1].black
					T.nodePath[i-1].black = true
					w.right.black = true
					T.nodePath[i-1].right = w.left
					w.left = T.nodePath[i-1]
					if i < 2 {
						T.root = w
					} else if T.dirPath[i-2] {
						T.nodePath[i-2].right = w
					} else {
						T.nodePath[i-2].left = w
					}
					if w.pred {
						w.pred = false
						T.nodePath[i-1].setSucc(w)
					}
					break
				}
			} else {
				w := T.nodePath[i-1].left
				if !w.black {
					w.black = true
					T.nodePath[i-1].black = false
					T.nodePath[i-1].left = w.right
					w.right = T.nodePath[i-1]
					if i < 2 {
						T.root = w
					} else if T.dirPath[i-2] {
						T.nodePath[i-2].right = w
					} else {
						T.nodePath[i-2].left = w
					}
					T.nodePath[i] = T.nodePath[i-1]
					T.dirPath[i] = true
					T.nodePath[i-1] = w
					if maxDepth == i {
						maxDepth++
					}
					i++
					w = T.nodePath[i-1].left
				}
				if (w.pred || w.left.black) && (w.succ || w.right.black) {
					w.black = false
				} else {
					if w.pred || w.left.black {
						y := w.right
						y.black = true
						w.black = false
						w.right = y.left
						y.left = w
						w = y
						T.nodePath[i-1].left = y
						if w.pred {
							w.pred = false
							w.left.setSucc(w)
						}
					}
					w.black = T.nodePath[i-1].black
					T.nodePath[i-1].black = true
					w.left.black = true
					T.nodePath[i-1].left = w.right
					w.right = T.nodePath[i-1]
					if i < 2 {
						T.root = w
					} else if T.dirPath[i-2] {
						T.nodePath[i-2].right = w
					} else {
						T.nodePath[i-2].left = w
					}
					if w.succ {
						w.succ = false
						T.nodePath[i-1].setPred(w)
					}
					break
				}
			}
		}
		if T.root != nil {
			T.root.black = true
		}
	}

	T.modified = true
	T.count--
	// Clean up the node path, or we could have stale references later.
	for maxDepth != 0 {
		maxDepth--
		T.nodePath[maxDepth] = nil
	}
	return p.value
}

// Clone - Returns a deep copy of the map, rebuilding the threaded structure
// with a single non-recursive walk. The comparator is shared with the
// original; keys and values are copied by assignment.
func (T *TreeMap[K, V]) Clone() *TreeMap[K, V] {
	c := NewWithComparator[K, V](T.compare)
	c.count = T.count
	c.defRet = T.defRet
	if T.count == 0 {
		return c
	}

	// The walk tracks p over the original and q over the copy through two
	// sentinel roots, cloning a node the first time its subtree is entered.
	rp := &node[K, V]{}
	rq := &node[K, V]{}
	p := rp
	rp.setLeft(T.root)
	q := rq
	rq.setPred(nil)

	for {
		if !p.pred {
			e := p.left.cloneNode()
			e.setPred(q.left)
			e.setSucc(q)
			q.setLeft(e)
			p = p.left
			q = q.left
		} else {
			for p.succ {
				p = p.right
				if p == nil {
					q.right = nil
					c.root = rq.left
					c.first = c.root
					for c.first.left != nil {
						c.first = c.first.left
					}
					c.last = c.root
					for c.last.right != nil {
						c.last = c.last.right
					}
					return c
				}
				q = q.right
			}
			p = p.right
			q = q.right
		}
		if !p.succ {
			e := p.right.cloneNode()
			e.setSucc(q.right)
			e.setPred(q)
			q.setRight(e)
		}
	}
}
