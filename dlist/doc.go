// Package dlist provides a generic doubly linked list with page-count keyed
// sorting and searching.
//
// What:
//
//   - List[T] owns a chain of nodes from head to tail. Each node holds one
//     payload, a forward link and a back link used only for traversal.
//   - Positional access (Get/Set/Insert/Remove) walks from the head and is
//     fast-pathed at both ends.
//   - GnomeSort and CountingSort reorder payloads by T.PageCount().
//   - FibSearch runs Fibonacci search over a list already sorted by page count.
//   - Min/Max use T.Compare; MinBy/MaxBy take a key extractor.
//
// Error styles:
//
//	Two failure styles coexist on purpose and callers rely on which is used:
//	  • Get, Set, Insert return ErrIndexOutOfRange (programmer error).
//	  • Remove returns false (expected, recoverable condition).
//	  • FibSearch returns ErrNotSorted when the list is not sorted by key,
//	    and a SearchResult with Found=false when the key is absent.
//
// Concurrency:
//
//	Every List carries its own sync.RWMutex. Mutations and sorts take the
//	write lock; reads, copies and searches take the read lock. Search state
//	is local to each call, so concurrent FibSearch calls are safe.
//
// Complexity:
//
//   - Append, PushHead, Remove at either end: O(1).
//   - Get, Set, Insert, Remove at index i:    O(i).
//   - GnomeSort:    O(n²) worst case, O(n) on sorted input.
//   - CountingSort: O(n + k), k = max(key) − min(key) + 1.
//   - FibSearch:    O(n) for the sortedness check, O(log n) probes.
package dlist
