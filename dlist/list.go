package dlist

import (
	"fmt"
	"strings"
)

// Len returns the number of elements.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.length
}

// Size is Len under the name used by gods containers.
func (l *List[T]) Size() int { return l.Len() }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.Len() == 0 }

// Append adds value after the tail.
// Complexity: O(1).
func (l *List[T]) Append(value T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.append(value)
}

// PushHead adds value before the head.
// Complexity: O(1).
func (l *List[T]) PushHead(value T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pushHead(value)
}

// Insert places value at index, index ∈ [0, Len()).
//
// Behavior:
//   - index 0 delegates to PushHead.
//   - index Len()-1 delegates to Append, so the value lands after the
//     current tail, not before it.
//   - any other index splices a new node before the node at index.
//
// Returns ErrIndexOutOfRange otherwise, including index == Len().
// Complexity: O(index).
func (l *List[T]) Insert(index int, value T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.checkRange(index); err != nil {
		return err
	}

	switch index {
	case 0:
		l.pushHead(value)
	case l.length - 1:
		l.append(value)
	default:
		at := l.nodeAt(index)
		n := &node[T]{value: value, next: at, prev: at.prev}
		at.prev.next = n
		at.prev = n
		l.length++
	}

	return nil
}

// Get returns the value at index.
// Returns ErrIndexOutOfRange when index ∉ [0, Len()).
// Complexity: O(index), O(1) at either end.
func (l *List[T]) Get(index int) (T, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if err := l.checkRange(index); err != nil {
		var zero T
		return zero, err
	}

	return l.nodeAt(index).value, nil
}

// Set replaces the value at index.
// Returns ErrIndexOutOfRange when index ∉ [0, Len()).
// Complexity: O(index), O(1) at either end.
func (l *List[T]) Set(index int, value T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.checkRange(index); err != nil {
		return err
	}
	l.nodeAt(index).value = value

	return nil
}

// Remove deletes the element at index and reports whether it did.
// Unlike Get, an out-of-range index is not an error: Remove returns false
// and leaves the list untouched.
// Complexity: O(1) at either end, O(index) otherwise.
func (l *List[T]) Remove(index int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.checkRange(index) != nil {
		return false
	}
	l.unlink(l.nodeAt(index))

	return true
}

// Clear drops every element.
func (l *List[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.head, l.tail, l.length = nil, nil, 0
}

// Copy returns a new list with fresh nodes holding the same payloads.
// Mutating either list never affects the other.
// Complexity: O(n).
func (l *List[T]) Copy() *List[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c := New[T]()
	for n := l.head; n != nil; n = n.next {
		c.append(n.value)
	}

	return c
}

// Equal reports whether both lists have the same length and pairwise
// equal payloads (Compare == 0).
func (l *List[T]) Equal(other *List[T]) bool {
	if other == nil {
		return false
	}
	if l == other {
		return true
	}
	// Snapshot one list at a time so two lists are never locked together.
	return equalValues(l.Items(), other.Items())
}

// Items returns the payloads from head to tail in a new slice.
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.items()
}

// Values returns the payloads boxed as interface{}, for gods containers.
func (l *List[T]) Values() []interface{} {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]interface{}, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// String renders the list as "[v0 v1 ...]" using fmt's %v for each payload.
func (l *List[T]) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	parts := make([]string, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		parts = append(parts, fmt.Sprint(n.value))
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// ---- unlocked helpers; callers hold l.mu ----

func (l *List[T]) checkRange(index int) error {
	if index < 0 || index >= l.length {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, l.length)
	}

	return nil
}

func (l *List[T]) append(value T) {
	n := &node[T]{value: value, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
}

func (l *List[T]) pushHead(value T) {
	n := &node[T]{value: value, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.length++
}

// nodeAt assumes index is in range.
func (l *List[T]) nodeAt(index int) *node[T] {
	if index == l.length-1 {
		return l.tail
	}
	n := l.head
	for ; index > 0; index-- {
		n = n.next
	}

	return n
}

func (l *List[T]) unlink(n *node[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.next, n.prev = nil, nil
	l.length--
}

func (l *List[T]) items() []T {
	out := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// store writes values back into the nodes from head to tail.
// len(values) must equal l.length.
func (l *List[T]) store(values []T) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		n.value = values[i]
		i++
	}
}

func equalValues[T Record[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Compare(b[i]) != 0 {
			return false
		}
	}

	return true
}
