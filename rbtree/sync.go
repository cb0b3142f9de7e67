package rbtree

import "sync"

// SyncTreeMap - A TreeMap decorator serializing every operation behind one
// RWMutex. Iterators and range views are not wrapped; take a snapshot with
// Keys or ForEach instead when traversal under concurrency is needed.
type SyncTreeMap[K any, V any] struct {
	mu sync.RWMutex
	t  *TreeMap[K, V]
}

// Synchronize - Wraps a TreeMap in a SyncTreeMap. The caller must not use the
// wrapped map directly afterwards.
func Synchronize[K any, V any](t *TreeMap[K, V]) *SyncTreeMap[K, V] {
	return &SyncTreeMap[K, V]{t: t}
}

// Size - Returns the number of entries in the map
func (T *SyncTreeMap[K, V]) Size() int {
	T.mu.RLock()
	defer T.mu.RUnlock()
	return T.t.Size()
}

// IsEmpty - Reports whether the map has no entries
func (T *SyncTreeMap[K, V]) IsEmpty() bool {
	T.mu.RLock()
	defer T.mu.RUnlock()
	return T.t.IsEmpty()
}

// Put - Inserts or replaces the value for a key
func (T *SyncTreeMap[K, V]) Put(k K, v V) (old V, existed bool) {
	T.mu.Lock()
	defer T.mu.Unlock()
	return T.t.Put(k, v)
}

// PutIfAbsent - Inserts the value for a key only if the key is absent
func (T *SyncTreeMap[K, V]) PutIfAbsent(k K, v V) (current V, inserted bool) {
	T.mu.Lock()
	defer T.mu.Unlock()
	return T.t.PutIfAbsent(k, v)
}

// Get - Returns the value for a key, or the default return value when absent
func (T *SyncTreeMap[K, V]) Get(k K) V {
	T.mu.RLock()
	defer T.mu.RUnlock()
	return T.t.Get(k)
}

// GetOk - Returns the value for a key and whether the key is present
func (T *SyncTreeMap[K, V]) GetOk(k K) (V, bool) {
	T.mu.RLock()
	defer T.mu.RUnlock()
	return T.t.GetOk(k)
}

// ContainsKey - Reports whether a key is present
func (T *SyncTreeMap[K, V]) ContainsKey(k K) bool {
	T.mu.RLock()
	defer T.mu.RUnlock()
	return T.t.ContainsKey(k)
}

// Remove - Removes a key and its value
func (T *SyncTreeMap[K, V]) Remove(k K) (old V, removed bool) {
	T.mu.Lock()
	defer T.mu.Unlock()
	return T.t.Remove(k)
}

// FirstKey - Returns the smallest key, or NoSuchElement on an empty map
func (T *SyncTreeMap[K, V]) FirstKey() (K, error) {
	T.mu.RLock()
	defer T.mu.RUnlock()
	return T.t.FirstKey()
}

// LastKey - Returns the largest key, or NoSuchElement on an empty map
func (T *SyncTreeMap[K, V]) LastKey() (K, error) {
	T.mu.RLock()
	defer T.mu.RUnlock()
	return T.t.LastKey()
}

// Clear - Removes all entries
func (T *SyncTreeMap[K, V]) Clear() {
	T.mu.Lock()
	defer T.mu.Unlock()
	T.t.Clear()
}

// ForEach - Calls fn for every entry in ascending key order under the read
// lock. fn must not call back into the SyncTreeMap.
func (T *SyncTreeMap[K, V]) ForEach(fn func(k K, v V)) {
	T.mu.RLock()
	defer T.mu.RUnlock()
	T.t.ForEach(fn)
}

// Keys - Returns all keys in ascending order
func (T *SyncTreeMap[K, V]) Keys() []K {
	T.mu.RLock()
	defer T.mu.RUnlock()
	return T.t.Keys()
}

// MarshalSnapshot - Returns the map as a JSON document under the read lock
func (T *SyncTreeMap[K, V]) MarshalSnapshot() ([]byte, error) {
	T.mu.RLock()
	defer T.mu.RUnlock()
	return T.t.MarshalSnapshot()
}
