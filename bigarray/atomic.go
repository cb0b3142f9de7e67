package bigarray

import "sync/atomic"

// AtomicInt64Array - A big array of int64 whose slots are read and written
// atomically. Operations on different slots never interfere; operations on
// the same slot are linearizable. The array itself has a fixed length.
type AtomicInt64Array struct {
	segments [][]int64
}

// NewAtomicInt64 - Returns an atomic big array of the given length, all slots zero
func NewAtomicInt64(length int64) (a *AtomicInt64Array, err error) {
	segments, err := New[int64](length)
	if err != nil {
		return
	}

	a = &AtomicInt64Array{segments: segments}
	return
}

// Length - Returns the length of the array
func (A *AtomicInt64Array) Length() int64 {
	return Length(BigArray[int64](A.segments))
}

// Load - Atomically returns the value at a position
func (A *AtomicInt64Array) Load(index int64) int64 {
	return atomic.LoadInt64(&A.segments[index>>SegmentShift][index&SegmentMask])
}

// Store - Atomically replaces the value at a position
func (A *AtomicInt64Array) Store(index int64, v int64) {
	atomic.StoreInt64(&A.segments[index>>SegmentShift][index&SegmentMask], v)
}

// Swap - Atomically replaces the value at a position, returning the old value
func (A *AtomicInt64Array) Swap(index int64, v int64) int64 {
	return atomic.SwapInt64(&A.segments[index>>SegmentShift][index&SegmentMask], v)
}

// CompareAndSwap - Atomically replaces the value at a position only when it
// still holds old, reporting whether the swap happened
func (A *AtomicInt64Array) CompareAndSwap(index int64, old, new int64) bool {
	return atomic.CompareAndSwapInt64(&A.segments[index>>SegmentShift][index&SegmentMask], old, new)
}

// Add - Atomically adds delta to the value at a position, returning the new value
func (A *AtomicInt64Array) Add(index int64, delta int64) int64 {
	return atomic.AddInt64(&A.segments[index>>SegmentShift][index&SegmentMask], delta)
}
