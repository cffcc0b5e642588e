// Package lvlseq is a small playground of sequential containers with the
// classic sorting and searching algorithms layered on top of them.
//
// 🚀 What is lvlseq?
//
//	Two independent generic containers, each paired with record-keyed
//	algorithms:
//		• dlist    — doubly linked list: gnome sort, counting sort,
//		             Fibonacci search, Min/Max with optional key
//		• dynarray — growable array: cocktail-shaker sort, heap sort,
//		             ternary search
//		• records  — Book and Student payloads + YAML/TOML fixtures
//
// ✨ Why choose lvlseq?
//
//   - Exact algorithms – every boundary and tie-break rule is pinned by tests
//   - Safe to share – each container guards itself with a sync.RWMutex
//   - Plays well with gods – both containers satisfy containers.Container
//
// Under the hood:
//
//	dlist/    — List[T], node chain with head/tail ownership
//	dynarray/ — Array[T], contiguous buffer with growth-factor resizing
//	records/  — payload types, fixture decoding
//
// Quick example:
//
//	shelf := dlist.FromSlice(books).GnomeSort()
//	res, err := shelf.FibSearch(320)
//
//	go get github.com/katalvlaran/lvlseq
package lvlseq
