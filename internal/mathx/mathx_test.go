package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPowerOfTwo(t *testing.T) {
	t.Run("returns next power of two", func(t *testing.T) {
		// Prepare
		cases := []struct {
			in  int64
			out int64
		}{
			{0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8}, {1000, 1024}, {1024, 1024}, {1025, 2048},
		}

		for _, c := range cases {
			// Execute
			got := NextPowerOfTwo(c.in)

			// Check
			assert.Equal(t, c.out, got, "NextPowerOfTwo(%d)", c.in)
		}
	})
}

func TestMaxFill(t *testing.T) {
	t.Run("caps fill below table size", func(t *testing.T) {
		// Execute
		got := MaxFill(16, 0.75)

		// Check
		assert.Equal(t, 12, got)
	})

	t.Run("always leaves one slot free", func(t *testing.T) {
		// Execute
		got := MaxFill(2, 0.99)

		// Check
		assert.Equal(t, 1, got)
	})
}

func TestArraySize(t *testing.T) {
	t.Run("sizes table for expected entries", func(t *testing.T) {
		// Execute
		n, err := ArraySize(16, 0.75)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, 32, n)
	})

	t.Run("returns minimum size of two", func(t *testing.T) {
		// Execute
		n, err := ArraySize(0, 0.75)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("returns error when table would be too large", func(t *testing.T) {
		// Execute
		_, err := ArraySize(1<<30+1, 0.5)

		// Check
		assert.Error(t, err)
	})

	t.Run("holds expected entries within load factor", func(t *testing.T) {
		for _, expected := range []int{1, 7, 100, 1000, 12345} {
			// Execute
			n, err := ArraySize(expected, 0.75)

			// Check
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, MaxFill(n, 0.75), expected)
		}
	})
}
