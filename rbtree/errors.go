package rbtree

import "fmt"

// NoSuchElement - Custom error to inform that the requested element does not
// exist, for instance FirstKey on an empty tree
type NoSuchElement struct {
	Op string
}

// Error - Returns the error text
func (N NoSuchElement) Error() string {
	if N.Op == "" {
		return "no such element"
	}
	return fmt.Sprintf("no such element in call to %s", N.Op)
}

// KeyOutOfRange - Custom error to inform that a key falls outside the bounds
// of the range view it was used on
type KeyOutOfRange struct{}

// Error - Returns the error text
func (K KeyOutOfRange) Error() string {
	return "key out of range"
}
