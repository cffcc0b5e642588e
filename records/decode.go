package records

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the fixture encoding.
type Format int

const (
	// FormatYAML decodes a document with a top-level sequence key.
	FormatYAML Format = iota

	// FormatTOML decodes a document with an array of tables.
	FormatTOML
)

// String returns the conventional file extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the Format from the file extension.
// Returns ErrUnknownFormat for anything other than .yaml, .yml or .toml.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

type bookDoc struct {
	Books []Book `yaml:"books" toml:"books"`
}

type studentDoc struct {
	Students []Student `yaml:"students" toml:"students"`
}

// DecodeBooks reads books from r in the given format.
//
//	books:                        [[books]]
//	  - author: Knuth             author = "Knuth"
//	    pages: 672                pages = 672
func DecodeBooks(r io.Reader, f Format) ([]Book, error) {
	var doc bookDoc
	if err := decode(r, f, &doc); err != nil {
		return nil, err
	}

	return doc.Books, nil
}

// DecodeStudents reads students from r in the given format.
func DecodeStudents(r io.Reader, f Format) ([]Student, error) {
	var doc studentDoc
	if err := decode(r, f, &doc); err != nil {
		return nil, err
	}

	return doc.Students, nil
}

// LoadBooks opens path and decodes it with the format implied by its extension.
func LoadBooks(path string) ([]Book, error) {
	var books []Book
	err := load(path, func(r io.Reader, f Format) (err error) {
		books, err = DecodeBooks(r, f)
		return err
	})

	return books, err
}

// LoadStudents opens path and decodes it with the format implied by its extension.
func LoadStudents(path string) ([]Student, error) {
	var students []Student
	err := load(path, func(r io.Reader, f Format) (err error) {
		students, err = DecodeStudents(r, f)
		return err
	})

	return students, err
}

func load(path string, fn func(io.Reader, Format) error) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("records: open fixture: %w", err)
	}
	defer file.Close()

	if err = fn(file, f); err != nil {
		return fmt.Errorf("records: %s: %w", filepath.Base(path), err)
	}

	return nil
}

// decode fills doc from r, rejecting keys that do not map to a field.
// An empty YAML stream decodes to an empty document.
func decode(r io.Reader, f Format, doc any) error {
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(doc)
		if errors.Is(err, io.EOF) {
			return nil
		}
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) && unknownYAMLField(typeErr) {
			return fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(typeErr.Errors, "; "))
		}

		return err
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(doc)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}

			return fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(keys, ", "))
		}

		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// unknownYAMLField reports whether the type error came from KnownFields.
func unknownYAMLField(err *yaml.TypeError) bool {
	for _, msg := range err.Errors {
		if strings.Contains(msg, "not found in type") {
			return true
		}
	}

	return false
}
