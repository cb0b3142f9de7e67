package hashfunc

import (
	"bytes"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Strategy - Interface that permits an implementation using the hash structures to supply a custom hash
// and equality suited for its particular distribution of keys.
//
// The hash value returned by Hash is scrambled with Mix before it is used to pick a slot, so a Strategy
// only has to produce a well-spread 64-bit value, not one whose low bits are of hash quality.
// Equals must be consistent with Hash: equal keys produce equal hash values.
type Strategy[K any] interface {
	// Hash - Given key it generates a 64-bit hash value
	Hash(key K) uint64

	// Equals - Reports whether two keys are to be treated as the same key
	Equals(a, b K) bool
}

// phi64 is 2^64 / golden ratio, the usual multiplicative scrambling constant.
const phi64 uint64 = 0x9E3779B97F4A7C15

// Mix - Scrambles a 64-bit value, spreading entropy into the low bits that the
// power-of-two slot mask keeps. Applied by the hash structures on top of the
// Strategy hash, so strategies can return raw values such as the key itself.
func Mix(x uint64) uint64 {
	h := x * phi64
	h ^= h >> 32
	return h ^ (h >> 16)
}

// StringStrategy - Content hash and equality for string keys
type StringStrategy struct{}

// Hash - Implements Strategy.Hash using xxHash over the string bytes
func (S StringStrategy) Hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Equals - Implements Strategy.Equals as plain string equality
func (S StringStrategy) Equals(a, b string) bool {
	return a == b
}

// BytesStrategy - Content hash and equality for byte slice keys.
// Two slices with the same contents are the same key regardless of identity.
type BytesStrategy struct{}

// Hash - Implements Strategy.Hash using xxHash over the slice contents
func (S BytesStrategy) Hash(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// Equals - Implements Strategy.Equals as byte-wise comparison
func (S BytesStrategy) Equals(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Integer - Type set of the built-in integer kinds
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntStrategy - Identity hash for integer keys.
// The value itself is the hash; the Mix pass done by the structures is what
// spreads consecutive keys over the table.
type IntStrategy[K Integer] struct{}

// Hash - Implements Strategy.Hash as the widened key value
func (S IntStrategy[K]) Hash(key K) uint64 {
	return uint64(key)
}

// Equals - Implements Strategy.Equals
func (S IntStrategy[K]) Equals(a, b K) bool {
	return a == b
}

// ComparableStrategy - Hash and equality for any comparable key type, backed by
// hash/maphash with a per-instance random seed. Hash values are stable within
// one instance but differ between instances and processes.
type ComparableStrategy[K comparable] struct {
	seed maphash.Seed
}

// NewComparableStrategy - Returns a ComparableStrategy with a fresh random seed
func NewComparableStrategy[K comparable]() ComparableStrategy[K] {
	return ComparableStrategy[K]{seed: maphash.MakeSeed()}
}

// Hash - Implements Strategy.Hash over the key's comparable representation
func (S ComparableStrategy[K]) Hash(key K) uint64 {
	return maphash.Comparable(S.seed, key)
}

// Equals - Implements Strategy.Equals
func (S ComparableStrategy[K]) Equals(a, b K) bool {
	return a == b
}
