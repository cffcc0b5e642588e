package dlist

import "github.com/emirpasic/gods/utils"

// comparePages orders two records by page count.
func comparePages[T Record[T]](a, b T) int {
	return utils.IntComparator(a.PageCount(), b.PageCount())
}

// GnomeSort sorts the list ascending by page count in place and returns
// the same list for chaining. Equal keys are never swapped.
//
// Algorithm:
//  1. Compare positions i and i+1. In order → jump to the farthest position
//     reached so far.
//  2. Out of order → swap payloads and step back one; stepping past the
//     head also jumps forward.
//
// Complexity: O(n²) worst case, O(n) on sorted input.
func (l *List[T]) GnomeSort() *List[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	values := l.items()
	gnomeSort(values)
	l.store(values)

	return l
}

func gnomeSort[T Record[T]](a []T) {
	i, next := 0, 1
	for i < len(a)-1 {
		if comparePages(a[i], a[i+1]) <= 0 {
			i, next = next, next+1
			continue
		}
		a[i], a[i+1] = a[i+1], a[i]
		i--
		if i < 0 {
			i, next = next, next+1
		}
	}
}

// CountingSort orders the list by page count DESCENDING using a frequency
// table over [min, max] of the keys. Records with equal keys keep their
// original relative order. An empty list is left as is; all-equal keys
// give a single-slot table and an unchanged list.
//
// The table has max−min+1 slots, so keys must span a bounded range.
// Complexity: O(n + k), Memory: O(n + k), k = max − min + 1.
func (l *List[T]) CountingSort() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.length == 0 {
		return
	}
	values := l.items()

	lo, hi := values[0].PageCount(), values[0].PageCount()
	for _, v := range values[1:] {
		lo = min(lo, v.PageCount())
		hi = max(hi, v.PageCount())
	}

	counts := make([]int, hi-lo+1)
	for _, v := range values {
		counts[v.PageCount()-lo]++
	}
	// Turn counts into start offsets, largest key first.
	offset := 0
	for k := len(counts) - 1; k >= 0; k-- {
		c := counts[k]
		counts[k] = offset
		offset += c
	}

	sorted := make([]T, len(values))
	for _, v := range values {
		slot := v.PageCount() - lo
		sorted[counts[slot]] = v
		counts[slot]++
	}
	l.store(sorted)
}
