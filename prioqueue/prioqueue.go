// Package prioqueue implements an array-backed binary heap priority queue.
package prioqueue

import "cmp"

// EmptyQueue - Custom error to inform that Dequeue or First was called on an
// empty queue
type EmptyQueue struct{}

// Error - Returns the error text
func (E EmptyQueue) Error() string {
	return "the priority queue is empty"
}

// HeapPriorityQueue - A priority queue backed by a binary heap laid out in a
// slice. Dequeue returns the smallest element according to the comparator.
// The queue is not safe for concurrent use.
type HeapPriorityQueue[T any] struct {
	heap    []T
	compare func(a, b T) int
}

// New - Returns a queue ordered by the natural order of T
func New[T cmp.Ordered]() *HeapPriorityQueue[T] {
	return NewWithComparator[T](cmp.Compare[T])
}

// NewWithComparator - Returns a queue ordered by the given comparator
//   - compare returns a negative number when a has higher priority than b
func NewWithComparator[T any](compare func(a, b T) int) *HeapPriorityQueue[T] {
	return &HeapPriorityQueue[T]{compare: compare}
}

// Size - Returns the number of elements in the queue
func (Q *HeapPriorityQueue[T]) Size() int {
	return len(Q.heap)
}

// IsEmpty - Reports whether the queue has no elements
func (Q *HeapPriorityQueue[T]) IsEmpty() bool {
	return len(Q.heap) == 0
}

// Clear - Removes all elements
func (Q *HeapPriorityQueue[T]) Clear() {
	Q.heap = Q.heap[:0]
}

// Enqueue - Adds an element to the queue
func (Q *HeapPriorityQueue[T]) Enqueue(x T) {
	Q.heap = append(Q.heap, x)
	Q.upHeap(len(Q.heap) - 1)
}

// First - Returns the highest-priority element without removing it, or
// EmptyQueue when the queue is empty
func (Q *HeapPriorityQueue[T]) First() (x T, err error) {
	if len(Q.heap) == 0 {
		err = EmptyQueue{}
		return
	}
	return Q.heap[0], nil
}

// Dequeue - Removes and returns the highest-priority element, or EmptyQueue
// when the queue is empty
func (Q *HeapPriorityQueue[T]) Dequeue() (x T, err error) {
	if len(Q.heap) == 0 {
		err = EmptyQueue{}
		return
	}

	x = Q.heap[0]
	last := len(Q.heap) - 1
	Q.heap[0] = Q.heap[last]
	var zero T
	Q.heap[last] = zero
	Q.heap = Q.heap[:last]
	if last != 0 {
		Q.downHeap(0)
	}
	return
}

// upHeap moves the element at i towards the root until its parent has equal
// or higher priority.
func (Q *HeapPriorityQueue[T]) upHeap(i int) {
	e := Q.heap[i]
	for i != 0 {
		parent := (i - 1) / 2
		t := Q.heap[parent]
		if Q.compare(t, e) <= 0 {
			break
		}
		Q.heap[i] = t
		i = parent
	}
	Q.heap[i] = e
}

// downHeap moves the element at i towards the leaves, always descending into
// the higher-priority child.
func (Q *HeapPriorityQueue[T]) downHeap(i int) {
	e := Q.heap[i]
	size := len(Q.heap)
	for {
		child := 2*i + 1
		if child >= size {
			break
		}
		t := Q.heap[child]
		if right := child + 1; right < size && Q.compare(Q.heap[right], t) < 0 {
			child = right
			t = Q.heap[child]
		}
		if Q.compare(e, t) <= 0 {
			break
		}
		Q.heap[i] = t
		i = child
	}
	Q.heap[i] = e
}
