// Package records defines the payload types stored by the dlist and
// dynarray containers, together with fixture decoding from YAML and TOML.
//
// What:
//
//   - Book: page-count keyed record consumed by dlist.List.
//   - Student: name, average-grade and course keyed record consumed by
//     dynarray.Array.
//
// Both are plain value types: copying a record copies all of its fields,
// so containers may hand them out freely.
//
// Fixtures:
//
//	books, err := records.LoadBooks("testdata/books.yaml")
//	students, err := records.LoadStudents("testdata/students.toml")
//
// The file format is picked from the extension (.yaml, .yml, .toml).
// Unknown keys are rejected so that typos in fixtures surface as errors
// instead of silently zeroed fields.
//
// Errors:
//
//   - ErrUnknownFormat: extension or Format value is not supported.
//   - ErrUnknownField:  the document carries a key no record field maps to.
package records
