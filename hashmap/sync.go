package hashmap

import "sync"

// SyncMap - A Map decorator serializing every operation behind one RWMutex.
// Compound operations such as GetOrCompute hold the write lock for the whole
// call, so the compute function runs at most once per absent key.
type SyncMap[K comparable, V any] struct {
	mu sync.RWMutex
	m  *Map[K, V]
}

// Synchronize - Wraps a Map in a SyncMap. The caller must not use the wrapped
// map directly afterwards.
func Synchronize[K comparable, V any](m *Map[K, V]) *SyncMap[K, V] {
	return &SyncMap[K, V]{m: m}
}

// Size - Returns the number of entries in the map
func (M *SyncMap[K, V]) Size() int {
	M.mu.RLock()
	defer M.mu.RUnlock()
	return M.m.Size()
}

// IsEmpty - Reports whether the map has no entries
func (M *SyncMap[K, V]) IsEmpty() bool {
	M.mu.RLock()
	defer M.mu.RUnlock()
	return M.m.IsEmpty()
}

// Put - Inserts or replaces the value for a key
func (M *SyncMap[K, V]) Put(k K, v V) (old V, existed bool) {
	M.mu.Lock()
	defer M.mu.Unlock()
	return M.m.Put(k, v)
}

// PutIfAbsent - Inserts the value for a key only if the key is absent
func (M *SyncMap[K, V]) PutIfAbsent(k K, v V) (current V, inserted bool) {
	M.mu.Lock()
	defer M.mu.Unlock()
	return M.m.PutIfAbsent(k, v)
}

// Replace - Replaces the value for a key only if the key is present
func (M *SyncMap[K, V]) Replace(k K, v V) (old V, replaced bool) {
	M.mu.Lock()
	defer M.mu.Unlock()
	return M.m.Replace(k, v)
}

// Get - Returns the value for a key, or the default return value when absent
func (M *SyncMap[K, V]) Get(k K) V {
	M.mu.RLock()
	defer M.mu.RUnlock()
	return M.m.Get(k)
}

// GetOk - Returns the value for a key and whether the key is present
func (M *SyncMap[K, V]) GetOk(k K) (V, bool) {
	M.mu.RLock()
	defer M.mu.RUnlock()
	return M.m.GetOk(k)
}

// GetOrDefault - Returns the value for a key, or def when the key is absent
func (M *SyncMap[K, V]) GetOrDefault(k K, def V) V {
	M.mu.RLock()
	defer M.mu.RUnlock()
	return M.m.GetOrDefault(k, def)
}

// GetOrCompute - Returns the value for a key, computing and storing it first
// when the key is absent. The lock is held across the compute call.
func (M *SyncMap[K, V]) GetOrCompute(k K, compute func(k K) V) V {
	M.mu.Lock()
	defer M.mu.Unlock()
	return M.m.GetOrCompute(k, compute)
}

// ContainsKey - Reports whether a key is present
func (M *SyncMap[K, V]) ContainsKey(k K) bool {
	M.mu.RLock()
	defer M.mu.RUnlock()
	return M.m.ContainsKey(k)
}

// Remove - Removes a key and its value
func (M *SyncMap[K, V]) Remove(k K) (old V, removed bool) {
	M.mu.Lock()
	defer M.mu.Unlock()
	return M.m.Remove(k)
}

// Clear - Removes all entries, keeping the current capacity
func (M *SyncMap[K, V]) Clear() {
	M.mu.Lock()
	defer M.mu.Unlock()
	M.m.Clear()
}

// Trim - Rehashes the map to the smallest table the current size allows
func (M *SyncMap[K, V]) Trim() bool {
	M.mu.Lock()
	defer M.mu.Unlock()
	return M.m.Trim()
}

// TrimTo - Rehashes the map to the smallest table that can hold n entries
func (M *SyncMap[K, V]) TrimTo(n int) bool {
	M.mu.Lock()
	defer M.mu.Unlock()
	return M.m.TrimTo(n)
}

// ForEach - Calls fn for every entry under the read lock.
// fn must not call back into the SyncMap.
func (M *SyncMap[K, V]) ForEach(fn func(k K, v V)) {
	M.mu.RLock()
	defer M.mu.RUnlock()
	M.m.ForEach(fn)
}

// MarshalSnapshot - Returns the map as a JSON document under the read lock
func (M *SyncMap[K, V]) MarshalSnapshot() ([]byte, error) {
	M.mu.RLock()
	defer M.mu.RUnlock()
	return M.m.MarshalSnapshot()
}
