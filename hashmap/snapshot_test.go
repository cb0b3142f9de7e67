package hashmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	t.Run("restores entries and configuration", func(t *testing.T) {
		// Prepare
		m, err := NewWithConfig[string, int](Config[string]{Expected: 100, LoadFactor: 0.5})
		require.NoError(t, err)
		m.Put("a", 1)
		m.Put("b", 2)
		m.Put("", 3)

		// Execute
		data, err := m.MarshalSnapshot()
		require.NoError(t, err)
		restored, err := UnmarshalSnapshot[string, int](data, nil)
		require.NoError(t, err)

		// Check
		assert.Equal(t, 3, restored.Size())
		assert.Equal(t, 1, restored.Get("a"))
		assert.Equal(t, 2, restored.Get("b"))
		assert.Equal(t, 3, restored.Get(""))
		assert.Equal(t, 0.5, restored.LoadFactor())
	})

	t.Run("empty map round trips", func(t *testing.T) {
		// Prepare
		m := New[string, int]()

		// Execute
		data, err := m.MarshalSnapshot()
		require.NoError(t, err)
		restored, err := UnmarshalSnapshot[string, int](data, nil)
		require.NoError(t, err)

		// Check
		assert.Equal(t, 0, restored.Size())
	})

	t.Run("returns error on corrupt data", func(t *testing.T) {
		// Execute
		_, err := UnmarshalSnapshot[string, int]([]byte("{not json"), nil)

		// Check
		assert.Error(t, err)
	})

	t.Run("returns error on mismatched streams", func(t *testing.T) {
		// Prepare
		data := []byte(`{"loadFactor":0.75,"shrinkDivisor":4,"keys":["a","b"],"values":[1]}`)

		// Execute
		_, err := UnmarshalSnapshot[string, int](data, nil)

		// Check
		assert.Error(t, err)
	})
}
