package dynarray_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlseq/dynarray"
	"github.com/katalvlaran/lvlseq/records"
)

func randomArray(n int) *dynarray.Array[records.Student] {
	rng := rand.New(rand.NewSource(42))
	a := dynarray.New[records.Student](n)
	for i := 0; i < n; i++ {
		a.Add(student("s", rng.Intn(6)+1, float64(rng.Intn(50))/10))
	}

	return a
}

// BenchmarkAdd measures amortized growth from capacity 1.
func BenchmarkAdd(b *testing.B) {
	a := dynarray.New[records.Student](1)
	s := student("s", 1, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Add(s)
	}
}

// BenchmarkSortByAvgGrade cocktail-sorts a fresh copy of 500 students.
func BenchmarkSortByAvgGrade(b *testing.B) {
	src := randomArray(500)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src.Copy().SortByAvgGrade()
	}
}

// BenchmarkSortByCourse heap-sorts a fresh copy of 10k students.
func BenchmarkSortByCourse(b *testing.B) {
	src := randomArray(10_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src.Copy().SortByCourse()
	}
}

// BenchmarkTernarySearch searches a sorted array of 10k students.
func BenchmarkTernarySearch(b *testing.B) {
	a := randomArray(10_000)
	a.SortByAvgGrade()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.TernarySearch(float64(i%50) / 10)
	}
}
