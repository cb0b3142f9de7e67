// Package mathx holds the sizing arithmetic shared by the hash structures.
package mathx

import (
	"fmt"
	"math"
	"math/bits"
)

// MaxTableSize - Largest number of slots a hash table can have (the extra
// sentinel slot comes on top of this).
const MaxTableSize = 1 << 30

// NextPowerOfTwo - Returns the least power of two greater than or equal to x.
func NextPowerOfTwo(x int64) int64 {
	if x <= 1 {
		return 1
	}
	return int64(1) << bits.Len64(uint64(x-1))
}

// MaxFill - Returns the maximum number of entries that can be stored in a
// table of n slots with load factor f before a resize is due.
// The result is always strictly smaller than n so at least one slot stays free.
func MaxFill(n int, f float64) int {
	m := int(math.Ceil(float64(n) * f))
	if m > n-1 {
		m = n - 1
	}
	return m
}

// ArraySize - Returns the least power-of-two number of slots that can hold
// expected entries without exceeding load factor f.
//   - expected is the expected number of entries
//   - f is the load factor, 0 < f < 1
func ArraySize(expected int, f float64) (n int, err error) {
	s := NextPowerOfTwo(int64(math.Ceil(float64(expected) / f)))
	if s < 2 {
		s = 2
	}
	if s > MaxTableSize {
		err = fmt.Errorf("table too large: %d expected entries with load factor %f", expected, f)
		return
	}

	n = int(s)
	return
}
