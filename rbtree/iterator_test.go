package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_Traversal(t *testing.T) {
	t.Run("walks forward in ascending order", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()
		for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
			tr.Put(k, k*10)
		}

		// Execute
		var keys []int
		it := tr.Iterator()
		for it.HasNext() {
			k, v, ok := it.Next()
			require.True(t, ok)
			require.Equal(t, k*10, v)
			keys = append(keys, k)
		}

		// Check
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, keys)
	})

	t.Run("walks backward from the end", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()
		for i := 1; i <= 5; i++ {
			tr.Put(i, i)
		}
		it := tr.Iterator()
		for it.HasNext() {
			it.Next()
		}

		// Execute
		var keys []int
		for it.HasPrev() {
			k, _, ok := it.Prev()
			require.True(t, ok)
			keys = append(keys, k)
		}

		// Check
		assert.Equal(t, []int{5, 4, 3, 2, 1}, keys)
	})

	t.Run("alternating Next and Prev return the same entry", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()
		tr.Put(1, 1)
		tr.Put(2, 2)
		it := tr.Iterator()

		// Execute
		k1, _, _ := it.Next()
		k2, _, _ := it.Prev()
		k3, _, _ := it.Next()

		// Check
		assert.Equal(t, 1, k1)
		assert.Equal(t, 1, k2)
		assert.Equal(t, 1, k3)
	})
}

func TestIteratorFrom(t *testing.T) {
	t.Run("positions between floor and ceiling of the key", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()
		for _, k := range []int{10, 20, 30, 40} {
			tr.Put(k, k)
		}

		// Execute: key present
		it := tr.IteratorFrom(20)
		next, _, _ := it.Next()
		it = tr.IteratorFrom(20)
		prev, _, _ := it.Prev()

		// Check
		assert.Equal(t, 30, next)
		assert.Equal(t, 20, prev)

		// Execute: key absent
		it = tr.IteratorFrom(25)
		next, _, _ = it.Next()
		it = tr.IteratorFrom(25)
		prev, _, _ = it.Prev()

		// Check
		assert.Equal(t, 30, next)
		assert.Equal(t, 20, prev)
	})

	t.Run("positions before the first key", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()
		tr.Put(10, 10)

		// Execute
		it := tr.IteratorFrom(5)

		// Check
		assert.False(t, it.HasPrev())
		k, _, ok := it.Next()
		assert.True(t, ok)
		assert.Equal(t, 10, k)
	})
}

func TestIterator_Remove(t *testing.T) {
	t.Run("returns error before any movement", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()
		tr.Put(1, 1)

		// Execute
		err := tr.Iterator().Remove()

		// Check
		assert.Error(t, err)
	})

	t.Run("removes entries mid-iteration without breaking traversal", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()
		for i := 1; i <= 20; i++ {
			tr.Put(i, i)
		}

		// Execute: remove the even keys while walking
		var visited []int
		it := tr.Iterator()
		for it.HasNext() {
			k, _, ok := it.Next()
			require.True(t, ok)
			visited = append(visited, k)
			if k%2 == 0 {
				require.NoError(t, it.Remove())
			}
		}

		// Check
		assert.Len(t, visited, 20)
		assert.Equal(t, 10, tr.Size())
		assert.Equal(t, []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}, tr.Keys())
		checkTree(t, tr)
	})

	t.Run("SetValue updates the current entry", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()
		tr.Put(1, 1)
		it := tr.Iterator()
		it.Next()

		// Execute
		err := it.SetValue(99)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, 99, tr.Get(1))
	})
}

func TestEntry_Traversal(t *testing.T) {
	t.Run("walks in both directions from a located entry", func(t *testing.T) {
		// Prepare
		tr := New[int, string]()
		for _, k := range []int{10, 20, 30} {
			tr.Put(k, "v")
		}

		// Execute
		e := tr.FindEntry(20)

		// Check
		require.NotNil(t, e)
		assert.Equal(t, 20, e.Key())
		assert.Equal(t, 30, e.Next().Key())
		assert.Equal(t, 10, e.Prev().Key())
		assert.Nil(t, e.Next().Next())
		assert.Nil(t, e.Prev().Prev())
	})

	t.Run("first and last entries bound the tree", func(t *testing.T) {
		// Prepare
		tr := New[int, string]()
		tr.Put(2, "b")
		tr.Put(1, "a")
		tr.Put(3, "c")

		// Execute and Check
		assert.Equal(t, 1, tr.FirstEntry().Key())
		assert.Equal(t, 3, tr.LastEntry().Key())
		assert.Nil(t, New[int, string]().FirstEntry())
	})

	t.Run("SetValue writes through to the map", func(t *testing.T) {
		// Prepare
		tr := New[int, string]()
		tr.Put(1, "a")

		// Execute
		old := tr.FindEntry(1).SetValue("z")

		// Check
		assert.Equal(t, "a", old)
		assert.Equal(t, "z", tr.Get(1))
	})
}
