package records

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for fixture decoding.
var (
	// ErrUnknownFormat indicates the fixture format could not be determined.
	ErrUnknownFormat = errors.New("records: unknown fixture format")

	// ErrUnknownField indicates the fixture holds a key that no field accepts.
	ErrUnknownField = errors.New("records: unknown field in fixture")
)

// Book is the record stored by dlist.List.
//
// Pages is the projection used by gnome sort, counting sort and Fibonacci
// search; Compare gives the total order used by unkeyed Min/Max.
type Book struct {
	Author    string  `yaml:"author" toml:"author"`
	Publisher string  `yaml:"publisher" toml:"publisher"`
	Pages     int     `yaml:"pages" toml:"pages"`
	Price     float64 `yaml:"price" toml:"price"`
	ISBN      string  `yaml:"isbn" toml:"isbn"`
}

// PageCount returns the page-count key.
func (b Book) PageCount() int { return b.Pages }

// Compare orders books lexicographically by Author, Publisher, Pages,
// Price and ISBN. It returns 0 iff all fields are equal.
func (b Book) Compare(other Book) int {
	return cmp.Or(
		cmp.Compare(b.Author, other.Author),
		cmp.Compare(b.Publisher, other.Publisher),
		cmp.Compare(b.Pages, other.Pages),
		cmp.Compare(b.Price, other.Price),
		cmp.Compare(b.ISBN, other.ISBN),
	)
}

// String renders the book as "(author, publisher, pages, price, isbn)".
func (b Book) String() string {
	return fmt.Sprintf("(%s, %s, %d, %g, %s)", b.Author, b.Publisher, b.Pages, b.Price, b.ISBN)
}

// Student is the record stored by dynarray.Array.
// Equality is Go == over every field.
type Student struct {
	Name  string  `yaml:"name" toml:"name"`
	Group string  `yaml:"group" toml:"group"`
	Year  int     `yaml:"course" toml:"course"`
	Age   int     `yaml:"age" toml:"age"`
	Grade float64 `yaml:"avg_grade" toml:"avg_grade"`
}

// FullName returns the name key used by the name sort.
func (s Student) FullName() string { return s.Name }

// AvgGrade returns the average-grade key used by the grade sort and
// ternary search.
func (s Student) AvgGrade() float64 { return s.Grade }

// Course returns the course key used by the heap sort.
func (s Student) Course() int { return s.Year }

// String renders the student as "(name course group age grade)".
func (s Student) String() string {
	return fmt.Sprintf("(%s %d %s %d %g)", s.Name, s.Year, s.Group, s.Age, s.Grade)
}
