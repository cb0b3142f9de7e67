package rbtree

// node is a threaded red-black tree node. When pred is true, left points to
// the in-order predecessor (nil for the first node) instead of a subtree, and
// likewise succ/right for the successor. A fresh node starts with both
// threads set, i.e. as a leaf.
type node[K any, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
	pred  bool
	succ  bool
	black bool
}

// leftChild returns the left subtree, nil when left is a thread.
func (e *node[K, V]) leftChild() *node[K, V] {
	if e.pred {
		return nil
	}
	return e.left
}

// rightChild returns the right subtree, nil when right is a thread.
func (e *node[K, V]) rightChild() *node[K, V] {
	if e.succ {
		return nil
	}
	return e.right
}

func (e *node[K, V]) setLeft(left *node[K, V]) {
	e.pred = false
	e.left = left
}

func (e *node[K, V]) setRight(right *node[K, V]) {
	e.succ = false
	e.right = right
}

func (e *node[K, V]) setPred(pred *node[K, V]) {
	e.pred = true
	e.left = pred
}

func (e *node[K, V]) setSucc(succ *node[K, V]) {
	e.succ = true
	e.right = succ
}

// next returns the in-order successor, nil when this is the last node.
// When right is a thread this is one hop; otherwise it descends to the
// leftmost node of the right subtree, whose pred thread terminates the walk.
func (e *node[K, V]) next() *node[K, V] {
	next := e.right
	if !e.succ {
		for !next.pred {
			next = next.left
		}
	}
	return next
}

// prev returns the in-order predecessor, nil when this is the first node.
func (e *node[K, V]) prev() *node[K, V] {
	prev := e.left
	if !e.pred {
		for !prev.succ {
			prev = prev.right
		}
	}
	return prev
}

func (e *node[K, V]) cloneNode() *node[K, V] {
	c := *e
	return &c
}
