package dynarray

import "github.com/emirpasic/gods/utils"

// field pairs a projection with the gods comparator for its key type.
type field[T Record] struct {
	key func(T) interface{}
	cmp utils.Comparator
}

func (f field[T]) compare(x, y T) int {
	return f.cmp(f.key(x), f.key(y))
}

func byName[T Record]() field[T] {
	return field[T]{key: func(v T) interface{} { return v.FullName() }, cmp: utils.StringComparator}
}

func byAvgGrade[T Record]() field[T] {
	return field[T]{key: func(v T) interface{} { return v.AvgGrade() }, cmp: utils.Float64Comparator}
}

func byCourse[T Record]() field[T] {
	return field[T]{key: func(v T) interface{} { return v.Course() }, cmp: utils.IntComparator}
}

// SortByName sorts ascending by FullName with cocktail-shaker sort.
func (a *Array[T]) SortByName() {
	a.mu.Lock()
	defer a.mu.Unlock()
	cocktailSort(a.buf, byName[T]())
}

// SortByAvgGrade sorts ascending by AvgGrade with cocktail-shaker sort.
func (a *Array[T]) SortByAvgGrade() {
	a.mu.Lock()
	defer a.mu.Unlock()
	cocktailSort(a.buf, byAvgGrade[T]())
}

// SortByCourse heap-sorts by Course. The sift-down promotes the smaller
// child, so the array ends in NON-INCREASING course order.
// Complexity: O(n log n).
func (a *Array[T]) SortByCourse() {
	a.mu.Lock()
	defer a.mu.Unlock()
	heapSort(a.buf, byCourse[T]())
}

// cocktailSort alternates forward and backward bubble passes over
// [left, right]. control remembers the last swap position; each pass
// moves one edge of the window to it, and the sort ends when the edges
// meet. Equal keys are never swapped.
func cocktailSort[T Record](s []T, f field[T]) {
	left, right := 0, len(s)-1
	control := right
	for left < right {
		for i := left; i < right; i++ {
			if f.compare(s[i], s[i+1]) > 0 {
				s[i], s[i+1] = s[i+1], s[i]
				control = i
			}
		}
		right = control
		for i := right; i > left; i-- {
			if f.compare(s[i], s[i-1]) < 0 {
				s[i], s[i-1] = s[i-1], s[i]
				control = i
			}
		}
		left = control
	}
}

// heapSort builds the heap bottom-up, then repeatedly swaps the root to the
// end of the shrinking heap.
func heapSort[T Record](s []T, f field[T]) {
	n := len(s)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, n, i, f)
	}
	for i := n - 1; i > 0; i-- {
		s[0], s[i] = s[i], s[0]
		siftDown(s, i, 0, f)
	}
}

// siftDown moves s[root] down while a child compares smaller.
func siftDown[T Record](s []T, size, root int, f field[T]) {
	pick := root
	left, right := 2*root+1, 2*root+2
	if left < size && f.compare(s[left], s[pick]) < 0 {
		pick = left
	}
	if right < size && f.compare(s[right], s[pick]) < 0 {
		pick = right
	}
	if pick != root {
		s[root], s[pick] = s[pick], s[root]
		siftDown(s, size, pick, f)
	}
}
