// Package fastcoll provides compact, allocation-lean collection engines for Go:
// open-addressing hash maps and sets with backward-shift deletion (package
// hashmap), threaded red-black tree maps and sets with range views (package
// rbtree), segmented big arrays with swapper-driven sorting (package bigarray),
// and heap-based priority queues (package prioqueue).
//
// Each engine is implemented once, parameterized over its key and value types,
// with hashing and ordering supplied as injectable capabilities. None of the
// engines lock internally; synchronized decorators are available where a shared
// instance is needed.
package fastcoll
