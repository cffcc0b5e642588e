package dynarray_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/lvlseq/dynarray"
	"github.com/katalvlaran/lvlseq/records"
	"github.com/stretchr/testify/assert"
)

// TestSortByAvgGrade_Scenario sorts the three-student fixture.
func TestSortByAvgGrade_Scenario(t *testing.T) {
	a := dynarray.New[records.Student](2)
	for _, s := range mustLoadStudents(t) {
		a.Add(s)
	}
	a.SortByAvgGrade()
	assert.Equal(t, []float64{2.0, 3.5, 4.0}, gradesOf(a))
}

// TestSortByAvgGrade_Cases covers edge shapes and idempotence.
func TestSortByAvgGrade_Cases(t *testing.T) {
	cases := []struct {
		name   string
		grades []float64
	}{
		{"empty", nil},
		{"single", []float64{3}},
		{"sorted", []float64{1, 2, 3}},
		{"reversed", []float64{5, 4, 3, 2, 1}},
		{"duplicates", []float64{3, 1, 3, 2, 1}},
		{"pair", []float64{4.5, 2.5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := gradesArray(tc.grades...)
			a.SortByAvgGrade()

			want := append([]float64{}, tc.grades...)
			sort.Float64s(want)
			assert.Equal(t, want, gradesOf(a))

			once := a.Items()
			a.SortByAvgGrade()
			assert.Equal(t, once, a.Items(), "sorting twice must equal sorting once")
		})
	}
}

// TestSortByAvgGrade_Random compares with sort.SliceStable on random input.
func TestSortByAvgGrade_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		grades := make([]float64, rng.Intn(40))
		for i := range grades {
			grades[i] = float64(rng.Intn(10)) / 2
		}
		a := gradesArray(grades...)
		want := a.Items()
		sort.SliceStable(want, func(i, j int) bool { return want[i].AvgGrade() < want[j].AvgGrade() })

		a.SortByAvgGrade()
		assert.Equal(t, want, a.Items(), "round %d", round)
	}
}

// TestSortByName orders by full name and keeps ties stable.
func TestSortByName(t *testing.T) {
	a := dynarray.FromSlice([]records.Student{
		student("Sidorov", 1, 1),
		student("Ivanov", 2, 2),
		student("Petrov", 3, 3),
		student("Ivanov", 4, 4),
	})
	a.SortByName()
	assert.Equal(t, []string{"Ivanov", "Ivanov", "Petrov", "Sidorov"}, namesOf(a))
	assert.Equal(t, []int{2, 4, 3, 1}, coursesOf(a))
}

// TestSortByCourse checks the non-increasing order left by the min-rooted heap.
func TestSortByCourse(t *testing.T) {
	cases := []struct {
		name    string
		courses []int
		want    []int
	}{
		{"empty", nil, []int{}},
		{"single", []int{2}, []int{2}},
		{"mixed", []int{2, 4, 1, 3}, []int{4, 3, 2, 1}},
		{"duplicates", []int{1, 3, 1, 2, 3}, []int{3, 3, 2, 1, 1}},
		{"ascending", []int{1, 2, 3, 4, 5, 6}, []int{6, 5, 4, 3, 2, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := dynarray.New[records.Student](1)
			for _, c := range tc.courses {
				a.Add(student("s", c, 0))
			}
			a.SortByCourse()
			assert.Equal(t, tc.want, coursesOf(a))

			a.SortByCourse()
			assert.Equal(t, tc.want, coursesOf(a), "idempotent")
		})
	}
}
