package dynarray

import (
	"errors"
	"sync"
)

// Sentinel errors for array operations.
var (
	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrNotSorted indicates TernarySearch was called on an array that is
	// not sorted ascending by average grade.
	ErrNotSorted = errors.New("dynarray: array is not sorted by average grade")
)

// Record is the payload constraint: three projection keys plus == for
// full-field equality.
type Record interface {
	comparable
	FullName() string
	AvgGrade() float64
	Course() int
}

// SearchResult reports the outcome of a search.
// When Found is false, Value is the zero T and Index is -1.
type SearchResult[T any] struct {
	Value T
	Index int
	Found bool
}

// Array is a growable array of records.
//
// Invariant: len(buf) is the live length and cap(buf) the capacity;
// 0 ≤ len(buf) ≤ cap(buf) and cap(buf) > 0.
type Array[T Record] struct {
	mu     sync.RWMutex // guards buf
	buf    []T
	growth int
}

// New returns an empty array with the given capacity.
// It panics if capacity ≤ 0 or an option is invalid.
// Complexity: O(capacity).
func New[T Record](capacity int, opts ...Option) *Array[T] {
	if capacity <= 0 {
		panic(panicCapacityInvalid)
	}
	o := gatherOptions(opts)

	return &Array[T]{buf: make([]T, 0, capacity), growth: o.growth}
}

// FromSlice returns an array holding items in order, with capacity
// max(len(items), 1).
func FromSlice[T Record](items []T, opts ...Option) *Array[T] {
	a := New[T](max(len(items), 1), opts...)
	a.buf = append(a.buf, items...)

	return a
}
