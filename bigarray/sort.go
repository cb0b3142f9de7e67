package bigarray

// IntComparator - Compares the elements at two positions of some sequence,
// returning a negative number, zero or a positive number as the element at a
// sorts before, the same as or after the element at b
type IntComparator func(a, b int64) int

// Swapper - Exchanges the elements at two positions of some sequence
type Swapper func(a, b int64)

const (
	// below this size quicksort and mergesort fall back to insertion sort
	sortNoRec = 7
	// above this size quicksort picks its pivot as a pseudomedian of nine
	quickSortMedianOf9 = 40
)

// med3 returns the position holding the median of the elements at a, b and c.
func med3(a, b, c int64, comp IntComparator) int64 {
	ab := comp(a, b)
	ac := comp(a, c)
	bc := comp(b, c)
	if ab < 0 {
		if bc < 0 {
			return b
		}
		if ac < 0 {
			return c
		}
		return a
	}
	if bc > 0 {
		return b
	}
	if ac > 0 {
		return c
	}
	return a
}

func insertionSort(from, to int64, comp IntComparator, swap Swapper) {
	for i := from; i < to; i++ {
		for j := i; j > from && comp(j-1, j) > 0; j-- {
			swap(j, j-1)
		}
	}
}

func vecSwap(swap Swapper, from, l, s int64) {
	for i := int64(0); i < s; i++ {
		swap(from+i, l+i)
	}
}

// QuickSort - Sorts the elements at positions [from, to) of some sequence
// given only a position comparator and a position swapper, so the sequence
// itself can live anywhere (a big array, parallel arrays, a file).
//
// The sort is an introspection-free three-way quicksort in the style of
// Bentley and McIlroy: small ranges are insertion sorted, the pivot is the
// median of three (or a pseudomedian of nine for large ranges), and elements
// equal to the pivot are swept to the ends of the range and swapped back into
// the middle before recursing on the strictly-smaller and strictly-greater
// parts. Because the pivot is a position, not a value, the partition tracks
// the pivot position across swaps. The sort is not stable.
func QuickSort(from, to int64, comp IntComparator, swap Swapper) {
	length := to - from
	if length < sortNoRec {
		insertionSort(from, to, comp, swap)
		return
	}

	// Choose a partitioning element, m.
	m := from + length/2
	l := from
	n := to - 1
	if length > quickSortMedianOf9 {
		s := length / 8
		l = med3(l, l+s, l+2*s, comp)
		m = med3(m-s, m, m+s, comp)
		n = med3(n-2*s, n-s, n, comp)
	}
	m = med3(l, m, n, comp)

	// Establish the invariant =m, <m, unexamined, >m, =m.
	a, b, c, d := from, from, to-1, to-1
	for {
		var comparison int
		for b <= c {
			if comparison = comp(b, m); comparison > 0 {
				break
			}
			if comparison == 0 {
				if a == m {
					m = b
				} else if b == m {
					m = a
				}
				swap(a, b)
				a++
			}
			b++
		}
		for c >= b {
			if comparison = comp(c, m); comparison < 0 {
				break
			}
			if comparison == 0 {
				if c == m {
					m = d
				} else if d == m {
					m = c
				}
				swap(c, d)
				d--
			}
			c--
		}
		if b > c {
			break
		}
		if b == m {
			m = d
		} else if c == m {
			m = c
		}
		swap(b, c)
		b++
		c--
	}

	// Swap the equal partitions back to the middle.
	s := a - from
	if b-a < s {
		s = b - a
	}
	vecSwap(swap, from, b-s, s)
	s = d - c
	if to-d-1 < s {
		s = to - d - 1
	}
	vecSwap(swap, b, to-s, s)

	if s = b - a; s > 1 {
		QuickSort(from, from+s, comp, swap)
	}
	if s = d - c; s > 1 {
		QuickSort(to-s, to, comp, swap)
	}
}

// lowerBound returns the leftmost position in [from, to) whose element does
// not sort before the element at pos, assuming [from, to) is sorted.
func lowerBound(from, to, pos int64, comp IntComparator) int64 {
	length := to - from
	for length > 0 {
		half := length / 2
		middle := from + half
		if comp(middle, pos) < 0 {
			from = middle + 1
			length -= half + 1
		} else {
			length = half
		}
	}
	return from
}

// upperBound returns the leftmost position in [from, to) whose element sorts
// after the element at pos, assuming [from, to) is sorted.
func upperBound(from, to, pos int64, comp IntComparator) int64 {
	length := to - from
	for length > 0 {
		half := length / 2
		middle := from + half
		if comp(pos, middle) < 0 {
			length = half
		} else {
			from = middle + 1
			length -= half + 1
		}
	}
	return from
}

func reverse(from, to int64, swap Swapper) {
	to--
	for from < to {
		swap(from, to)
		from++
		to--
	}
}

// inPlaceMerge merges the two consecutive sorted ranges [from, mid) and
// [mid, to) using no extra space: it cuts both ranges around corresponding
// bounds, rotates the middle block with three reversals and recurses on the
// two halves. Ties keep the left range's elements first, so the merge is
// stable.
func inPlaceMerge(from, mid, to int64, comp IntComparator, swap Swapper) {
	if from >= mid || mid >= to {
		return
	}
	if to-from == 2 {
		if comp(mid, from) < 0 {
			swap(from, mid)
		}
		return
	}

	var firstCut, secondCut int64
	if mid-from > to-mid {
		firstCut = from + (mid-from)/2
		secondCut = lowerBound(mid, to, firstCut, comp)
	} else {
		secondCut = mid + (to-mid)/2
		firstCut = upperBound(from, mid, secondCut, comp)
	}

	if mid != firstCut && mid != secondCut {
		reverse(firstCut, mid, swap)
		reverse(mid, secondCut, swap)
		reverse(firstCut, secondCut, swap)
	}

	mid = firstCut + (secondCut - mid)
	inPlaceMerge(from, firstCut, mid, comp, swap)
	inPlaceMerge(mid, secondCut, to, comp, swap)
}

// MergeSort - Sorts the elements at positions [from, to) of some sequence
// given only a position comparator and a position swapper.
//
// The sort is a stable in-place mergesort: equal elements keep their relative
// order. Using no scratch space costs an extra logarithmic factor, so the
// running time is O(n log² n); prefer QuickSort when stability is not needed.
func MergeSort(from, to int64, comp IntComparator, swap Swapper) {
	length := to - from
	if length < sortNoRec {
		insertionSort(from, to, comp, swap)
		return
	}

	mid := from + length/2
	MergeSort(from, mid, comp, swap)
	MergeSort(mid, to, comp, swap)

	// Already in order, a common case for nearly sorted input.
	if comp(mid-1, mid) <= 0 {
		return
	}
	inPlaceMerge(from, mid, to, comp, swap)
}

// Sort - Sorts a big array in place with QuickSort using the given element
// comparator
func Sort[T any](a BigArray[T], compare func(x, y T) int) {
	QuickSort(0, Length(a),
		func(i, j int64) int { return compare(Get(a, i), Get(a, j)) },
		func(i, j int64) { Swap(a, i, j) },
	)
}

// StableSort - Sorts a big array in place with MergeSort using the given
// element comparator, keeping equal elements in their original order
func StableSort[T any](a BigArray[T], compare func(x, y T) int) {
	MergeSort(0, Length(a),
		func(i, j int64) int { return compare(Get(a, i), Get(a, j)) },
		func(i, j int64) { Swap(a, i, j) },
	)
}
