package dlist_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlseq/dlist"
	"github.com/katalvlaran/lvlseq/records"
	"github.com/stretchr/testify/require"
)

// book builds a distinguishable record keyed by pages.
func book(author string, pages int) records.Book {
	return records.Book{Author: author, Publisher: "P", Pages: pages, ISBN: fmt.Sprintf("isbn-%s", author)}
}

// listOf builds a list whose i-th record has author "B<i>" and the i-th page count.
func listOf(pages ...int) *dlist.List[records.Book] {
	items := make([]records.Book, len(pages))
	for i, p := range pages {
		items[i] = book(fmt.Sprintf("B%d", i), p)
	}

	return dlist.FromSlice(items)
}

// pagesOf reads the page counts head to tail.
func pagesOf(l *dlist.List[records.Book]) []int {
	items := l.Items()
	out := make([]int, len(items))
	for i, b := range items {
		out[i] = b.PageCount()
	}

	return out
}

// mustLoadBooks decodes testdata/books.yaml or fails the test.
func mustLoadBooks(t testing.TB) []records.Book {
	t.Helper()
	books, err := records.LoadBooks("testdata/books.yaml")
	require.NoError(t, err)

	return books
}
