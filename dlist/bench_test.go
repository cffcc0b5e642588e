package dlist_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlseq/dlist"
	"github.com/katalvlaran/lvlseq/records"
)

// randomList builds n books with page counts in [0, 1000) from a fixed seed.
func randomList(n int) *dlist.List[records.Book] {
	rng := rand.New(rand.NewSource(42))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rng.Intn(1000)
	}

	return listOf(keys...)
}

// BenchmarkAppend measures O(1) tail insertion.
func BenchmarkAppend(b *testing.B) {
	l := dlist.New[records.Book]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Append(records.Book{Pages: i})
	}
}

// BenchmarkGnomeSort sorts a fresh copy of 500 random books per iteration.
func BenchmarkGnomeSort(b *testing.B) {
	src := randomList(500)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src.Copy().GnomeSort()
	}
}

// BenchmarkCountingSort sorts a fresh copy of 10k random books per iteration.
func BenchmarkCountingSort(b *testing.B) {
	src := randomList(10_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src.Copy().CountingSort()
	}
}

// BenchmarkFibSearch searches a sorted list of 10k books.
func BenchmarkFibSearch(b *testing.B) {
	l := randomList(10_000)
	l.CountingSort()
	items := l.Items()
	sorted := make([]records.Book, len(items))
	for i := range items {
		sorted[len(items)-1-i] = items[i]
	}
	l = dlist.FromSlice(sorted)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.FibSearch(i % 1000)
	}
}
