package dynarray_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlseq/dynarray"
	"github.com/katalvlaran/lvlseq/records"
	"github.com/stretchr/testify/require"
)

// student builds a record distinguished by name.
func student(name string, course int, grade float64) records.Student {
	return records.Student{Name: name, Group: "G", Year: course, Age: 18 + course, Grade: grade}
}

// gradesArray builds an array whose i-th student is "S<i>" with the i-th grade.
func gradesArray(grades ...float64) *dynarray.Array[records.Student] {
	a := dynarray.New[records.Student](1)
	for i, g := range grades {
		a.Add(student(fmt.Sprintf("S%d", i), 1, g))
	}

	return a
}

func gradesOf(a *dynarray.Array[records.Student]) []float64 {
	items := a.Items()
	out := make([]float64, len(items))
	for i, s := range items {
		out[i] = s.AvgGrade()
	}

	return out
}

func coursesOf(a *dynarray.Array[records.Student]) []int {
	items := a.Items()
	out := make([]int, len(items))
	for i, s := range items {
		out[i] = s.Course()
	}

	return out
}

func namesOf(a *dynarray.Array[records.Student]) []string {
	items := a.Items()
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = s.FullName()
	}

	return out
}

// mustLoadStudents decodes testdata/students.toml or fails the test.
func mustLoadStudents(t testing.TB) []records.Student {
	t.Helper()
	students, err := records.LoadStudents("testdata/students.toml")
	require.NoError(t, err)

	return students
}
