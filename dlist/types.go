package dlist

import (
	"errors"
	"sync"
)

// Sentinel errors for list operations.
var (
	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("dlist: index out of range")

	// ErrNotSorted indicates FibSearch was called on a list that is not
	// sorted ascending by page count.
	ErrNotSorted = errors.New("dlist: list is not sorted by page count")
)

// Record is the payload constraint: a page-count key for the keyed
// algorithms and a total order over all fields for Min, Max and Equal.
// Compare must return 0 iff the two records are equal.
type Record[T any] interface {
	PageCount() int
	Compare(other T) int
}

// SearchResult reports the outcome of a search.
// When Found is false, Value is the zero T and Index is -1.
type SearchResult[T any] struct {
	Value T
	Index int
	Found bool
}

// node holds one payload. next owns the rest of the chain; prev is a
// back reference for traversal only.
type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// List is a doubly linked list of records.
//
// Invariant: length == 0 iff head == nil and tail == nil; otherwise
// head.prev == nil, tail.next == nil and length forward steps from head
// reach nil, passing tail last.
type List[T Record[T]] struct {
	mu     sync.RWMutex // guards head, tail, length and node payloads
	head   *node[T]
	tail   *node[T]
	length int
}

// New returns an empty list.
func New[T Record[T]]() *List[T] {
	return &List[T]{}
}

// FromSlice returns a list holding items in order.
// Complexity: O(len(items)).
func FromSlice[T Record[T]](items []T) *List[T] {
	l := New[T]()
	for _, v := range items {
		l.append(v)
	}

	return l
}
