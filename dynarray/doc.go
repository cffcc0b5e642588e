// Package dynarray provides a generic growable array of student-like
// records with cocktail-shaker sort, heap sort and ternary search.
//
// What:
//
//   - Array[T] keeps its elements in one contiguous buffer of explicit
//     capacity. Add grows the buffer by a constant factor (2 by default)
//     when it is full, so Add is amortized O(1).
//   - SortByName and SortByAvgGrade run one cocktail-shaker sort
//     parametrized by the projection key.
//   - SortByCourse is a heap sort whose sift-down promotes the SMALLER
//     child. Extracting the root to the back therefore leaves the array in
//     non-increasing course order.
//   - TernarySearch looks up an average grade in an array sorted by
//     average grade.
//
// Error styles:
//
//	  • Get returns ErrIndexOutOfRange.
//	  • Put and Remove return false for an out-of-range index.
//	  • TernarySearch returns ErrNotSorted when the array is not sorted by
//	    average grade, and a SearchResult with Found=false for an absent key.
//
// Options:
//
//	arr := dynarray.New[records.Student](4, dynarray.WithGrowthFactor(3))
//
// Concurrency:
//
//	Each Array has its own sync.RWMutex. Mutations and sorts take the
//	write lock; Get, Copy, Equal and TernarySearch take the read lock.
//
// Complexity:
//
//   - Add: amortized O(1); Get/Put: O(1); Remove: O(n); Copy: O(n).
//   - SortByName / SortByAvgGrade: O(n²) worst case, O(n) on sorted input.
//   - SortByCourse: O(n log n).
//   - TernarySearch: O(n) sortedness check, then O(log n) probes.
package dynarray
