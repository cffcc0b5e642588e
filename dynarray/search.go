package dynarray

// TernarySearch looks up an element whose AvgGrade equals target.
//
// Precondition: the array is sorted ascending by AvgGrade, checked by
// sorting a copy with SortByAvgGrade's algorithm and comparing; a mismatch
// returns ErrNotSorted. An absent key gives Found=false and no error.
//
// Each step splits [l, r] at m1 = l + (r−l)/3 and m2 = r − (r−l)/3,
// returns a match at m1 or m2 directly, and otherwise narrows to the third
// that can hold target.
//
// Complexity: O(n) sortedness check, then O(log n) probes.
func (a *Array[T]) TernarySearch(target float64) (SearchResult[T], error) {
	items := a.Items()

	sorted := make([]T, len(items))
	copy(sorted, items)
	cocktailSort(sorted, byAvgGrade[T]())
	if !equalItems(items, sorted) {
		return SearchResult[T]{Index: -1}, ErrNotSorted
	}

	l, r := 0, len(items)-1
	for l <= r {
		third := (r - l) / 3
		m1, m2 := l+third, r-third
		k1, k2 := items[m1].AvgGrade(), items[m2].AvgGrade()
		switch {
		case k1 == target:
			return SearchResult[T]{Value: items[m1], Index: m1, Found: true}, nil
		case k2 == target:
			return SearchResult[T]{Value: items[m2], Index: m2, Found: true}, nil
		case k1 < target && target < k2:
			l, r = m1+1, m2-1
		case target < k1:
			r = m1 - 1
		default:
			l = m2 + 1
		}
	}

	return SearchResult[T]{Index: -1}, nil
}
