// Package bigarray provides arrays addressed by 64-bit indices, stored as a
// sequence of fixed-size segments so no single allocation exceeds the segment
// size. A BigArray is an ordinary slice-of-slices value manipulated through
// free functions, and the package also provides position-based sorting of any
// sequence through comparator and swapper functions.
package bigarray

import "fmt"

const (
	// SegmentShift - Number of index bits addressing inside a segment
	SegmentShift = 27

	// SegmentSize - Number of elements in a full segment
	SegmentSize = 1 << SegmentShift

	// SegmentMask - Mask extracting the displacement inside a segment
	SegmentMask = SegmentSize - 1
)

// MaxLength - Largest length a big array can have
const MaxLength int64 = (1 << 31) << SegmentShift

// BigArray - A 64-bit addressable array of T split into segments. All
// segments are full except possibly the last one, whose length is the
// residual of the array length.
type BigArray[T any] [][]T

// Segment - Returns the segment a position belongs to
func Segment(index int64) int {
	return int(index >> SegmentShift)
}

// Displacement - Returns the position inside its segment
func Displacement(index int64) int {
	return int(index & SegmentMask)
}

// Start - Returns the position where a segment starts
func Start(segment int) int64 {
	return int64(segment) << SegmentShift
}

// Index - Returns the position of a displacement inside a segment
func Index(segment, displacement int) int64 {
	return Start(segment) + int64(displacement)
}

// NearestSegmentStart - Returns the segment boundary closest to pos that lies
// within [min, max), or pos itself when no boundary does. Splitting work at
// the returned position keeps each half inside whole segments.
func NearestSegmentStart(pos, min, max int64) int64 {
	lower := Start(Segment(pos))
	upper := lower + SegmentSize
	lowerIn := lower >= min
	upperIn := upper < max

	switch {
	case lowerIn && upperIn:
		if pos-lower <= upper-pos {
			return lower
		}
		return upper
	case lowerIn:
		return lower
	case upperIn:
		return upper
	}
	return pos
}

// EnsureLength - Returns an error unless length is a valid big-array length
func EnsureLength(length int64) error {
	if length < 0 {
		return fmt.Errorf("negative big-array size: %d", length)
	}
	if length > MaxLength {
		return fmt.Errorf("big-array size too big: %d", length)
	}
	return nil
}

// EnsureFromTo - Returns an error unless [from, to) is a valid index range in
// a big array of the given length
func EnsureFromTo(length, from, to int64) error {
	if from < 0 {
		return fmt.Errorf("start index (%d) is negative", from)
	}
	if from > to {
		return fmt.Errorf("start index (%d) is greater than end index (%d)", from, to)
	}
	if to > length {
		return fmt.Errorf("end index (%d) is greater than big-array length (%d)", to, length)
	}
	return nil
}

// EnsureOffsetLength - Returns an error unless the range starting at offset
// with the given number of elements fits in a big array of the given length
func EnsureOffsetLength(arrayLength, offset, length int64) error {
	if offset < 0 {
		return fmt.Errorf("offset (%d) is negative", offset)
	}
	if length < 0 {
		return fmt.Errorf("length (%d) is negative", length)
	}
	if offset+length > arrayLength {
		return fmt.Errorf("last index (%d) is greater than big-array length (%d)", offset+length, arrayLength)
	}
	return nil
}

// New - Returns a big array of the given length, all segments allocated
func New[T any](length int64) (a BigArray[T], err error) {
	if err = EnsureLength(length); err != nil {
		return
	}
	if length == 0 {
		a = BigArray[T]{}
		return
	}

	baseLength := int((length + SegmentMask) >> SegmentShift)
	a = make(BigArray[T], baseLength)
	residual := int(length & SegmentMask)
	if residual != 0 {
		for i := 0; i < baseLength-1; i++ {
			a[i] = make([]T, SegmentSize)
		}
		a[baseLength-1] = make([]T, residual)
	} else {
		for i := 0; i < baseLength; i++ {
			a[i] = make([]T, SegmentSize)
		}
	}
	return
}

// Wrap - Returns a big array holding a copy of the elements of s
func Wrap[T any](s []T) BigArray[T] {
	a, _ := New[T](int64(len(s)))
	for i := 0; i < len(s); i += SegmentSize {
		end := i + SegmentSize
		if end > len(s) {
			end = len(s)
		}
		copy(a[Segment(int64(i))], s[i:end])
	}
	return a
}

// Length - Returns the length of a big array
func Length[T any](a BigArray[T]) int64 {
	if len(a) == 0 {
		return 0
	}
	return Start(len(a)-1) + int64(len(a[len(a)-1]))
}

// Get - Returns the element at a position
func Get[T any](a BigArray[T], index int64) T {
	return a[index>>SegmentShift][index&SegmentMask]
}

// Set - Replaces the element at a position
func Set[T any](a BigArray[T], index int64, v T) {
	a[index>>SegmentShift][index&SegmentMask] = v
}

// Swap - Exchanges the elements at two positions
func Swap[T any](a BigArray[T], first, second int64) {
	a[first>>SegmentShift][first&SegmentMask], a[second>>SegmentShift][second&SegmentMask] =
		a[second>>SegmentShift][second&SegmentMask], a[first>>SegmentShift][first&SegmentMask]
}

// Fill - Sets every element to v
func Fill[T any](a BigArray[T], v T) {
	for _, segment := range a {
		for i := range segment {
			segment[i] = v
		}
	}
}

// Copy - Copies length elements from src starting at srcPos into dest
// starting at destPos. The ranges may overlap, also when src and dest are the
// same array; copying proceeds in the non-clobbering direction.
func Copy[T any](src BigArray[T], srcPos int64, dest BigArray[T], destPos, length int64) error {
	if err := EnsureOffsetLength(Length(src), srcPos, length); err != nil {
		return err
	}
	if err := EnsureOffsetLength(Length(dest), destPos, length); err != nil {
		return err
	}

	if destPos <= srcPos {
		srcSegment := Segment(srcPos)
		destSegment := Segment(destPos)
		srcDispl := Displacement(srcPos)
		destDispl := Displacement(destPos)
		for length > 0 {
			l := length
			if m := int64(len(src[srcSegment]) - srcDispl); m < l {
				l = m
			}
			if m := int64(len(dest[destSegment]) - destDispl); m < l {
				l = m
			}
			copy(dest[destSegment][destDispl:destDispl+int(l)], src[srcSegment][srcDispl:srcDispl+int(l)])
			if srcDispl += int(l); srcDispl == SegmentSize {
				srcDispl = 0
				srcSegment++
			}
			if destDispl += int(l); destDispl == SegmentSize {
				destDispl = 0
				destSegment++
			}
			length -= l
		}
	} else {
		srcSegment := Segment(srcPos + length)
		destSegment := Segment(destPos + length)
		srcDispl := Displacement(srcPos + length)
		destDispl := Displacement(destPos + length)
		for length > 0 {
			if srcDispl == 0 {
				srcDispl = SegmentSize
				srcSegment--
			}
			if destDispl == 0 {
				destDispl = SegmentSize
				destSegment--
			}
			l := length
			if int64(srcDispl) < l {
				l = int64(srcDispl)
			}
			if int64(destDispl) < l {
				l = int64(destDispl)
			}
			srcDispl -= int(l)
			destDispl -= int(l)
			copy(dest[destSegment][destDispl:destDispl+int(l)], src[srcSegment][srcDispl:srcDispl+int(l)])
			length -= l
		}
	}
	return nil
}

// CopyOf - Returns a copy of a big array
func CopyOf[T any](a BigArray[T]) BigArray[T] {
	c := make(BigArray[T], len(a))
	for i, segment := range a {
		c[i] = make([]T, len(segment))
		copy(c[i], segment)
	}
	return c
}

// ForceCapacity - Returns a big array of exactly the given length holding the
// first preserve elements of a. Full segments of a are reused, not copied.
func ForceCapacity[T any](a BigArray[T], length, preserve int64) (b BigArray[T], err error) {
	if err = EnsureLength(length); err != nil {
		return
	}

	// Number of leading segments of a that are full and can be kept as is.
	valid := len(a)
	if valid > 0 && len(a[valid-1]) != SegmentSize {
		valid--
	}

	baseLength := int((length + SegmentMask) >> SegmentShift)
	b = make(BigArray[T], baseLength)
	copy(b, a[:min(valid, baseLength)])
	residual := int(length & SegmentMask)
	if residual != 0 {
		for i := valid; i < baseLength-1; i++ {
			b[i] = make([]T, SegmentSize)
		}
		b[baseLength-1] = make([]T, residual)
	} else {
		for i := valid; i < baseLength; i++ {
			b[i] = make([]T, SegmentSize)
		}
	}

	if tail := preserve - Start(valid); tail > 0 {
		err = Copy(a, Start(valid), b, Start(valid), tail)
	}
	return
}

// EnsureCapacity - Returns a big array of at least the given length holding
// all elements of a; a itself when it is already long enough
func EnsureCapacity[T any](a BigArray[T], length int64) (BigArray[T], error) {
	if length <= Length(a) {
		return a, nil
	}
	return ForceCapacity(a, length, Length(a))
}

// Grow - Returns a big array of at least the given length holding all
// elements of a. When growth is needed the capacity at least halves again,
// so repeated appends are amortized constant per element.
func Grow[T any](a BigArray[T], length int64) (BigArray[T], error) {
	oldLength := Length(a)
	if length <= oldLength {
		return a, nil
	}

	target := oldLength + oldLength>>1
	if target < length {
		target = length
	}
	if target > MaxLength {
		target = MaxLength
	}
	return ForceCapacity(a, target, oldLength)
}

// Trim - Returns a big array of at most the given length holding the first
// length elements of a; a itself when it is already short enough
func Trim[T any](a BigArray[T], length int64) (b BigArray[T], err error) {
	if err = EnsureLength(length); err != nil {
		return
	}
	if length >= Length(a) {
		b = a
		return
	}

	baseLength := int((length + SegmentMask) >> SegmentShift)
	b = make(BigArray[T], baseLength)
	copy(b, a[:baseLength])
	residual := int(length & SegmentMask)
	if residual != 0 {
		trimmed := make([]T, residual)
		copy(trimmed, b[baseLength-1])
		b[baseLength-1] = trimmed
	}
	return
}

// Equal - Reports whether two big arrays have the same length and elements
func Equal[T comparable](a, b BigArray[T]) bool {
	if Length(a) != Length(b) {
		return false
	}
	for i, segment := range a {
		for j, v := range segment {
			if v != b[i][j] {
				return false
			}
		}
	}
	return true
}
