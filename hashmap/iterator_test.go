package hashmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostonefire/fastcoll/hashfunc"
)

func TestIterator_VisitsEveryEntryOnce(t *testing.T) {
	t.Run("covers all entries including the zero key", func(t *testing.T) {
		// Prepare
		m := New[int, int]()
		for i := 0; i < 100; i++ {
			m.Put(i, i*2)
		}

		// Execute
		seen := make(map[int]int)
		it := m.Iterator()
		for it.HasNext() {
			k, v, ok := it.Next()
			require.True(t, ok)
			seen[k] = v
		}

		// Check
		assert.Len(t, seen, 100)
		for i := 0; i < 100; i++ {
			require.Equal(t, i*2, seen[i])
		}
	})

	t.Run("returns not ok when exhausted", func(t *testing.T) {
		// Prepare
		m := New[int, int]()
		m.Put(1, 1)
		it := m.Iterator()

		// Execute
		_, _, ok1 := it.Next()
		_, _, ok2 := it.Next()

		// Check
		assert.True(t, ok1)
		assert.False(t, ok2)
		assert.False(t, it.HasNext())
	})
}

func TestIterator_Remove(t *testing.T) {
	t.Run("returns error before Next is called", func(t *testing.T) {
		// Prepare
		m := New[int, int]()
		m.Put(1, 1)

		// Execute
		err := m.Iterator().Remove()

		// Check
		assert.Error(t, err)
	})

	t.Run("removes the zero key entry", func(t *testing.T) {
		// Prepare
		m := New[int, string]()
		m.Put(0, "zero")
		m.Put(1, "one")
		it := m.Iterator()

		// Execute: the zero key is returned first by construction
		k, _, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, 0, k)
		err := it.Remove()

		// Check
		assert.NoError(t, err)
		assert.False(t, m.ContainsKey(0))
		assert.Equal(t, 1, m.Size())

		k, _, ok = it.Next()
		assert.True(t, ok)
		assert.Equal(t, 1, k)
	})

	t.Run("removal during iteration neither skips nor repeats entries", func(t *testing.T) {
		// Prepare: a dense table with identity hashing provokes long probe
		// chains that wrap around the table end, exercising the bookkeeping
		// for entries shifted past the cursor.
		r := rand.New(rand.NewSource(7))
		m, err := NewWithConfig[int, int](Config[int]{Expected: 4, Strategy: hashfunc.IntStrategy[int]{}})
		require.NoError(t, err)

		inserted := make(map[int]bool)
		for len(inserted) < 300 {
			k := r.Intn(10000)
			if !inserted[k] {
				inserted[k] = true
				m.Put(k, k)
			}
		}

		// Execute: remove every other visited entry
		visited := make(map[int]int)
		removed := make(map[int]bool)
		odd := false
		it := m.Iterator()
		for it.HasNext() {
			k, v, ok := it.Next()
			require.True(t, ok)
			visited[k]++
			require.Equal(t, k, v)
			if odd {
				require.NoError(t, it.Remove())
				removed[k] = true
			}
			odd = !odd
		}

		// Check: every inserted key was visited exactly once
		require.Len(t, visited, len(inserted))
		for k, count := range visited {
			require.True(t, inserted[k], "visited key %d was never inserted", k)
			require.Equal(t, 1, count, "key %d visited %d times", k, count)
		}

		// Check: the map holds exactly the survivors
		require.Equal(t, len(inserted)-len(removed), m.Size())
		for k := range inserted {
			if removed[k] {
				require.False(t, m.ContainsKey(k), "removed key %d still present", k)
			} else {
				require.Equal(t, k, m.Get(k), "surviving key %d", k)
			}
		}
		checkProbeInvariant(t, m)
	})

	t.Run("removing every entry empties the map", func(t *testing.T) {
		// Prepare
		m, err := NewWithConfig[int, int](Config[int]{Expected: 4, Strategy: hashfunc.IntStrategy[int]{}})
		require.NoError(t, err)
		for i := 0; i < 200; i++ {
			m.Put(i, i)
		}

		// Execute
		it := m.Iterator()
		for it.HasNext() {
			_, _, ok := it.Next()
			require.True(t, ok)
			require.NoError(t, it.Remove())
		}

		// Check
		assert.Equal(t, 0, m.Size())
		assert.True(t, m.IsEmpty())
	})
}
