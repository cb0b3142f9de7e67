package hashmap

import (
	"fmt"

	"github.com/sugawarayuuta/sonnet"

	"github.com/gostonefire/fastcoll/hashfunc"
)

// snapshot is the persisted form of a Map: the resize configuration plus the
// key and value streams in table order. The hash strategy is not persisted;
// restoring re-probes every key, so the restored table layout may differ from
// the original while holding the same entries.
type snapshot[K comparable, V any] struct {
	LoadFactor    float64 `json:"loadFactor"`
	ShrinkDivisor int     `json:"shrinkDivisor"`
	Keys          []K     `json:"keys"`
	Values        []V     `json:"values"`
}

// MarshalSnapshot - Returns the map as a JSON document holding its
// configuration and all entries, suitable for UnmarshalSnapshot
func (M *Map[K, V]) MarshalSnapshot() (data []byte, err error) {
	s := snapshot[K, V]{
		LoadFactor:    M.f,
		ShrinkDivisor: M.shrinkDiv,
		Keys:          make([]K, 0, M.size),
		Values:        make([]V, 0, M.size),
	}
	M.ForEach(func(k K, v V) {
		s.Keys = append(s.Keys, k)
		s.Values = append(s.Values, v)
	})

	data, err = sonnet.Marshal(s)
	if err != nil {
		err = fmt.Errorf("error while encoding map snapshot: %s", err)
	}
	return
}

// UnmarshalSnapshot - Restores a Map from data produced by MarshalSnapshot
//   - data is the JSON document
//   - strategy is the hash strategy to use, nil for the default (a map written
//     with a custom strategy must be restored with an equivalent one)
func UnmarshalSnapshot[K comparable, V any](data []byte, strategy hashfunc.Strategy[K]) (m *Map[K, V], err error) {
	var s snapshot[K, V]
	if err = sonnet.Unmarshal(data, &s); err != nil {
		err = fmt.Errorf("error while decoding map snapshot: %s", err)
		return
	}
	if len(s.Keys) != len(s.Values) {
		err = fmt.Errorf("corrupt map snapshot: %d keys but %d values", len(s.Keys), len(s.Values))
		return
	}

	m, err = NewWithConfig[K, V](Config[K]{
		Expected:      len(s.Keys),
		LoadFactor:    s.LoadFactor,
		ShrinkDivisor: s.ShrinkDivisor,
		Strategy:      strategy,
	})
	if err != nil {
		return
	}

	for i, k := range s.Keys {
		m.Put(k, s.Values[i])
	}
	return
}
