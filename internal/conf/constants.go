package conf

// DefaultInitialSize - Default number of slots a hash table starts out with
// when no expected number of entries is given
const DefaultInitialSize int = 16

// DefaultLoadFactor - Default load factor, a reasonable trade-off between
// memory footprint and probe sequence length
const DefaultLoadFactor float64 = 0.75

// FastLoadFactor - Load factor for faster access at the cost of memory
const FastLoadFactor float64 = 0.5

// VeryFastLoadFactor - Load factor for very fast access, memory hungry
const VeryFastLoadFactor float64 = 0.25

// DefaultShrinkDivisor - A table is halved when its size drops below
// maxFill divided by this number (and the table is above its initial size)
const DefaultShrinkDivisor int = 4
