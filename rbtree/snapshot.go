package rbtree

import (
	"fmt"

	"github.com/sugawarayuuta/sonnet"
)

// snapshot is the persisted form of a TreeMap: the key and value streams in
// ascending key order. The comparator is code, not data, so it is supplied
// again on restore.
type snapshot[K any, V any] struct {
	Keys   []K `json:"keys"`
	Values []V `json:"values"`
}

// MarshalSnapshot - Returns the map as a JSON document holding all entries in
// ascending key order, suitable for UnmarshalSnapshot
func (T *TreeMap[K, V]) MarshalSnapshot() (data []byte, err error) {
	s := snapshot[K, V]{
		Keys:   make([]K, 0, T.count),
		Values: make([]V, 0, T.count),
	}
	T.ForEach(func(k K, v V) {
		s.Keys = append(s.Keys, k)
		s.Values = append(s.Values, v)
	})

	data, err = sonnet.Marshal(s)
	if err != nil {
		err = fmt.Errorf("error while encoding tree snapshot: %s", err)
	}
	return
}

// UnmarshalSnapshot - Restores a TreeMap from data produced by MarshalSnapshot
//   - data is the JSON document
//   - compare is the comparator to order the restored map by; it must order
//     keys the way the writing map's comparator did
func UnmarshalSnapshot[K any, V any](data []byte, compare func(a, b K) int) (t *TreeMap[K, V], err error) {
	var s snapshot[K, V]
	if err = sonnet.Unmarshal(data, &s); err != nil {
		err = fmt.Errorf("error while decoding tree snapshot: %s", err)
		return
	}
	if len(s.Keys) != len(s.Values) {
		err = fmt.Errorf("corrupt tree snapshot: %d keys but %d values", len(s.Keys), len(s.Values))
		return
	}

	t = NewWithComparator[K, V](compare)
	for i, k := range s.Keys {
		t.Put(k, s.Values[i])
	}
	return
}
