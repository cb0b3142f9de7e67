package hashfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMix(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		// Execute
		a := Mix(12345)
		b := Mix(12345)

		// Check
		assert.Equal(t, a, b)
	})

	t.Run("spreads consecutive values over low bits", func(t *testing.T) {
		// Prepare
		seen := make(map[uint64]bool)

		// Execute
		for i := uint64(0); i < 1024; i++ {
			seen[Mix(i)&1023] = true
		}

		// Check
		assert.Greater(t, len(seen), 512, "mixed low bits should not collapse")
	})
}

func TestStringStrategy(t *testing.T) {
	t.Run("equal strings hash equal", func(t *testing.T) {
		// Prepare
		s := StringStrategy{}

		// Execute and Check
		assert.Equal(t, s.Hash("hello"), s.Hash("hello"))
		assert.NotEqual(t, s.Hash("hello"), s.Hash("world"))
		assert.True(t, s.Equals("hello", "hello"))
		assert.False(t, s.Equals("hello", "world"))
	})
}

func TestBytesStrategy(t *testing.T) {
	t.Run("hashes and compares by content", func(t *testing.T) {
		// Prepare
		s := BytesStrategy{}
		a := []byte{1, 2, 3}
		b := []byte{1, 2, 3}

		// Execute and Check
		assert.Equal(t, s.Hash(a), s.Hash(b))
		assert.True(t, s.Equals(a, b))
		assert.False(t, s.Equals(a, []byte{1, 2}))
	})
}

func TestIntStrategy(t *testing.T) {
	t.Run("uses the key value as hash", func(t *testing.T) {
		// Prepare
		s := IntStrategy[int]{}

		// Execute and Check
		assert.Equal(t, uint64(42), s.Hash(42))
		assert.True(t, s.Equals(7, 7))
		assert.False(t, s.Equals(7, 8))
	})
}

func TestComparableStrategy(t *testing.T) {
	t.Run("is stable within one instance", func(t *testing.T) {
		// Prepare
		type point struct{ x, y int }
		s := NewComparableStrategy[point]()

		// Execute and Check
		assert.Equal(t, s.Hash(point{1, 2}), s.Hash(point{1, 2}))
		assert.True(t, s.Equals(point{1, 2}, point{1, 2}))
		assert.False(t, s.Equals(point{1, 2}, point{2, 1}))
	})
}
