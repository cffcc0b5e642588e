package dynarray

import (
	"fmt"
	"strings"
)

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.buf)
}

// Cap returns the current buffer capacity.
func (a *Array[T]) Cap() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return cap(a.buf)
}

// Size is Len under the name used by gods containers.
func (a *Array[T]) Size() int { return a.Len() }

// Empty reports whether the array has no live elements.
func (a *Array[T]) Empty() bool { return a.Len() == 0 }

// Add appends value, first growing the buffer by the growth factor when it
// is full.
// Complexity: amortized O(1); O(n) on a resize.
func (a *Array[T]) Add(value T) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.buf) == cap(a.buf) {
		a.resize(cap(a.buf) * a.growth)
	}
	a.buf = append(a.buf, value)
}

// Get returns the element at index.
// Returns ErrIndexOutOfRange when index ∉ [0, Len()).
// Complexity: O(1).
func (a *Array[T]) Get(index int) (T, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if index < 0 || index >= len(a.buf) {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(a.buf))
	}

	return a.buf[index], nil
}

// Put replaces the element at index and reports whether it did.
// An out-of-range index returns false instead of an error.
// Complexity: O(1).
func (a *Array[T]) Put(index int, value T) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if index < 0 || index >= len(a.buf) {
		return false
	}
	a.buf[index] = value

	return true
}

// Remove deletes the element at index, shifting later elements left by one,
// and reports whether it did. An out-of-range index returns false.
// Capacity is unchanged.
// Complexity: O(n − index).
func (a *Array[T]) Remove(index int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := len(a.buf)
	if index < 0 || index >= n {
		return false
	}
	copy(a.buf[index:], a.buf[index+1:])
	var zero T
	a.buf[n-1] = zero
	a.buf = a.buf[:n-1]

	return true
}

// Clear drops every element and keeps the capacity.
func (a *Array[T]) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	clear(a.buf)
	a.buf = a.buf[:0]
}

// Copy returns an array with its own buffer of the same capacity, the same
// elements and the same growth factor.
// Complexity: O(capacity).
func (a *Array[T]) Copy() *Array[T] {
	a.mu.RLock()
	defer a.mu.RUnlock()
	buf := make([]T, len(a.buf), cap(a.buf))
	copy(buf, a.buf)

	return &Array[T]{buf: buf, growth: a.growth}
}

// Equal reports whether both arrays hold the same elements in the same order.
// Capacity is not compared.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if other == nil {
		return false
	}
	if a == other {
		return true
	}

	return equalItems(a.Items(), other.Items())
}

// Items returns the live elements in a new slice.
func (a *Array[T]) Items() []T {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]T, len(a.buf))
	copy(out, a.buf)

	return out
}

// Values returns the live elements boxed as interface{}, for gods containers.
func (a *Array[T]) Values() []interface{} {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]interface{}, len(a.buf))
	for i, v := range a.buf {
		out[i] = v
	}

	return out
}

// String renders the array as "[v0 v1 ...]".
func (a *Array[T]) String() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	parts := make([]string, len(a.buf))
	for i, v := range a.buf {
		parts[i] = fmt.Sprint(v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// resize moves the live elements into a fresh buffer; caller holds a.mu.
func (a *Array[T]) resize(capacity int) {
	buf := make([]T, len(a.buf), capacity)
	copy(buf, a.buf)
	a.buf = buf
}

func equalItems[T comparable](x, y []T) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}
