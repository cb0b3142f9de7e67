package rbtree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkTree verifies the full set of structural invariants: in-order keys are
// sorted, every thread points at the true in-order neighbour, first/last are
// cached correctly, the root is black, no red node has a red child and all
// root-to-leaf paths carry the same number of black nodes.
func checkTree[K any, V any](t *testing.T, tr *TreeMap[K, V]) {
	t.Helper()

	if tr.root == nil {
		require.Equal(t, 0, tr.count)
		require.Nil(t, tr.first)
		require.Nil(t, tr.last)
		return
	}
	require.True(t, tr.root.black, "root must be black")

	var nodes []*node[K, V]
	var walk func(e *node[K, V])
	walk = func(e *node[K, V]) {
		if l := e.leftChild(); l != nil {
			walk(l)
		}
		nodes = append(nodes, e)
		if r := e.rightChild(); r != nil {
			walk(r)
		}
	}
	walk(tr.root)

	require.Equal(t, tr.count, len(nodes), "count disagrees with node walk")
	for i := 1; i < len(nodes); i++ {
		require.Negative(t, tr.compare(nodes[i-1].key, nodes[i].key), "keys out of order")
	}

	require.Same(t, nodes[0], tr.first, "stale first entry")
	require.Same(t, nodes[len(nodes)-1], tr.last, "stale last entry")
	for i, e := range nodes {
		if i+1 < len(nodes) {
			require.Same(t, nodes[i+1], e.next(), "broken successor thread at %v", e.key)
		} else {
			require.Nil(t, e.next())
		}
		if i > 0 {
			require.Same(t, nodes[i-1], e.prev(), "broken predecessor thread at %v", e.key)
		} else {
			require.Nil(t, e.prev())
		}
	}

	var blackHeight func(e *node[K, V]) int
	blackHeight = func(e *node[K, V]) int {
		lh, rh := 1, 1
		if l := e.leftChild(); l != nil {
			if !e.black {
				require.True(t, l.black, "red node %v has red left child", e.key)
			}
			lh = blackHeight(l)
		}
		if r := e.rightChild(); r != nil {
			if !e.black {
				require.True(t, r.black, "red node %v has red right child", e.key)
			}
			rh = blackHeight(r)
		}
		require.Equal(t, lh, rh, "black height mismatch at %v", e.key)
		if e.black {
			return lh + 1
		}
		return lh
	}
	blackHeight(tr.root)
}

func TestTreeMap_PutGet(t *testing.T) {
	t.Run("stores and retrieves values", func(t *testing.T) {
		// Prepare
		tr := New[int, string]()

		// Execute
		old, existed := tr.Put(5, "five")
		tr.Put(3, "three")
		tr.Put(8, "eight")

		// Check
		assert.False(t, existed)
		assert.Equal(t, "", old)
		assert.Equal(t, "five", tr.Get(5))
		assert.Equal(t, "three", tr.Get(3))
		assert.Equal(t, "eight", tr.Get(8))
		assert.Equal(t, 3, tr.Size())
		checkTree(t, tr)
	})

	t.Run("replaces existing value and returns the old one", func(t *testing.T) {
		// Prepare
		tr := New[int, string]()
		tr.Put(5, "five")

		// Execute
		old, existed := tr.Put(5, "FIVE")

		// Check
		assert.True(t, existed)
		assert.Equal(t, "five", old)
		assert.Equal(t, "FIVE", tr.Get(5))
		assert.Equal(t, 1, tr.Size())
	})

	t.Run("returns default return value for absent key", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()
		tr.SetDefaultReturnValue(-1)

		// Execute and Check
		assert.Equal(t, -1, tr.Get(99))
		_, ok := tr.GetOk(99)
		assert.False(t, ok)
		assert.Equal(t, 7, tr.GetOrDefault(99, 7))
	})

	t.Run("PutIfAbsent only inserts once", func(t *testing.T) {
		// Prepare
		tr := New[int, string]()

		// Execute
		v1, ins1 := tr.PutIfAbsent(1, "a")
		v2, ins2 := tr.PutIfAbsent(1, "b")

		// Check
		assert.True(t, ins1)
		assert.Equal(t, "a", v1)
		assert.False(t, ins2)
		assert.Equal(t, "a", v2)
	})
}

func TestTreeMap_Remove(t *testing.T) {
	t.Run("keeps structure valid after removing an inner node", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()
		for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
			tr.Put(k, k*10)
		}
		checkTree(t, tr)

		// Execute
		old, removed := tr.Remove(5)

		// Check
		assert.True(t, removed)
		assert.Equal(t, 50, old)
		assert.Equal(t, 8, tr.Size())
		assert.False(t, tr.ContainsKey(5))
		assert.Equal(t, []int{1, 2, 3, 4, 6, 7, 8, 9}, tr.Keys())
		checkTree(t, tr)
	})

	t.Run("removing an absent key is a no-op", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()
		tr.Put(1, 1)

		// Execute
		_, removed := tr.Remove(99)

		// Check
		assert.False(t, removed)
		assert.Equal(t, 1, tr.Size())
	})

	t.Run("removing the only entry empties the tree", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()
		tr.Put(1, 1)

		// Execute
		_, removed := tr.Remove(1)

		// Check
		assert.True(t, removed)
		assert.True(t, tr.IsEmpty())
		checkTree(t, tr)

		_, err := tr.FirstKey()
		assert.ErrorAs(t, err, &NoSuchElement{})
	})
}

func TestTreeMap_FirstLast(t *testing.T) {
	t.Run("tracks smallest and largest key", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()
		for _, k := range []int{50, 20, 80, 10, 90} {
			tr.Put(k, k)
		}

		// Execute
		first, err1 := tr.FirstKey()
		last, err2 := tr.LastKey()

		// Check
		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.Equal(t, 10, first)
		assert.Equal(t, 90, last)

		// Execute: removing the extremes moves the cached entries
		tr.Remove(10)
		tr.Remove(90)
		first, _ = tr.FirstKey()
		last, _ = tr.LastKey()

		// Check
		assert.Equal(t, 20, first)
		assert.Equal(t, 80, last)
		checkTree(t, tr)
	})

	t.Run("returns NoSuchElement on empty tree", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()

		// Execute
		_, errFirst := tr.FirstKey()
		_, errLast := tr.LastKey()

		// Check
		assert.ErrorAs(t, errFirst, &NoSuchElement{})
		assert.ErrorAs(t, errLast, &NoSuchElement{})
	})
}

func TestTreeMap_CustomComparator(t *testing.T) {
	t.Run("orders by the supplied comparator", func(t *testing.T) {
		// Prepare: descending order
		tr := NewWithComparator[int, int](func(a, b int) int { return b - a })

		// Execute
		for _, k := range []int{1, 5, 3, 2, 4} {
			tr.Put(k, k)
		}

		// Check
		assert.Equal(t, []int{5, 4, 3, 2, 1}, tr.Keys())
		first, _ := tr.FirstKey()
		assert.Equal(t, 5, first)
		checkTree(t, tr)
	})
}

func TestTreeMap_Clone(t *testing.T) {
	t.Run("clone rebuilds a valid independent tree", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()
		for i := 1; i <= 100; i++ {
			tr.Put(i, i*10)
		}

		// Execute
		c := tr.Clone()
		tr.Remove(50)
		c.Put(200, 2000)

		// Check
		assert.Equal(t, 101, c.Size())
		assert.Equal(t, 99, tr.Size())
		assert.Equal(t, 500, c.Get(50))
		assert.False(t, tr.ContainsKey(200))
		checkTree(t, c)
		checkTree(t, tr)
	})

	t.Run("clone of an empty tree is empty", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()

		// Execute
		c := tr.Clone()

		// Check
		assert.True(t, c.IsEmpty())
		checkTree(t, c)
	})
}

func TestTreeMap_RandomizedAgainstReference(t *testing.T) {
	t.Run("matches sorted reference over random operations", func(t *testing.T) {
		// Prepare
		r := rand.New(rand.NewSource(42))
		tr := New[int, int]()
		ref := make(map[int]int)

		// Execute
		for op := 0; op < 5000; op++ {
			k := r.Intn(400)
			switch r.Intn(3) {
			case 0, 1:
				v := r.Intn(100000)
				_, existed := tr.Put(k, v)
				_, refExisted := ref[k]
				require.Equal(t, refExisted, existed, "op %d put %d", op, k)
				ref[k] = v
			case 2:
				old, removed := tr.Remove(k)
				refOld, refExisted := ref[k]
				require.Equal(t, refExisted, removed, "op %d remove %d", op, k)
				if removed {
					require.Equal(t, refOld, old)
				}
				delete(ref, k)
			}
			if op%500 == 0 {
				checkTree(t, tr)
			}
		}

		// Check
		checkTree(t, tr)
		require.Equal(t, len(ref), tr.Size())
		expected := make([]int, 0, len(ref))
		for k := range ref {
			expected = append(expected, k)
		}
		sort.Ints(expected)
		require.Equal(t, expected, tr.Keys())
		for k, v := range ref {
			require.Equal(t, v, tr.Get(k), "key %d", k)
		}
	})

	t.Run("sequential insert then delete stays balanced", func(t *testing.T) {
		// Prepare
		tr := New[int, int]()

		// Execute
		for i := 0; i < 1000; i++ {
			tr.Put(i, i)
		}
		checkTree(t, tr)
		for i := 0; i < 1000; i += 2 {
			tr.Remove(i)
		}

		// Check
		assert.Equal(t, 500, tr.Size())
		checkTree(t, tr)
	})
}
