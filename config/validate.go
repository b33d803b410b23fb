package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MissingCredential is reported for a bookmark with neither key nor pass.
const MissingCredential = "key or password"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their settings key, not the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("pathsegment", pathSegment); err != nil {
		panic(err)
	}
	return v
}

// pathSegment accepts names usable as a single directory under the mount
// root: no separators, no "." or "..".
func pathSegment(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return false
	}
	return filepath.Base(name) == name
}

// Entry is the validation result for one bookmark.
type Entry struct {
	// Index is 1-based, in settings order.
	Index   int      `json:"index" yaml:"index"`
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Missing []string `json:"missing" yaml:"missing"`
}

// Valid reports whether nothing is missing.
func (e Entry) Valid() bool {
	return len(e.Missing) == 0
}

// Report is the outcome of Validate.
type Report struct {
	HasError bool `json:"has_error" yaml:"has_error"`
	// Problem explains a document-level failure, e.g. no bookmarks list.
	Problem string  `json:"problem,omitempty" yaml:"problem,omitempty"`
	Entries []Entry `json:"entries" yaml:"entries"`
	// Duplicates lists names used by more than one bookmark. Lookups pick
	// the first match, so this is a warning, not an error.
	Duplicates []string `json:"duplicates,omitempty" yaml:"duplicates,omitempty"`
}

// Invalid returns the entries that have missing fields.
func (r Report) Invalid() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if !e.Valid() {
			out = append(out, e)
		}
	}
	return out
}

// Err returns nil for a passing report, otherwise an error wrapping ErrInvalidSettings.
func (r Report) Err() error {
	if !r.HasError {
		return nil
	}
	if r.Problem != "" {
		return fmt.Errorf("%w: %s", ErrInvalidSettings, r.Problem)
	}
	return fmt.Errorf("%w: %d bookmark(s) incomplete", ErrInvalidSettings, len(r.Invalid()))
}

// Validate checks every bookmark for the required fields name, host, port,
// user and path, and for at least one of key or pass.
func Validate(s *Settings) Report {
	if s == nil {
		return Report{HasError: true, Problem: "no settings loaded"}
	}
	if s.Err != nil {
		return Report{HasError: true, Problem: s.Err.Error()}
	}
	if !s.HasBookmarks {
		return Report{HasError: true, Problem: fmt.Sprintf("no bookmarks list in %s", s.Source)}
	}

	r := Report{Entries: make([]Entry, 0, len(s.Bookmarks))}
	seen := make(map[string]int)
	for i, b := range s.Bookmarks {
		e := Entry{Index: i + 1, Name: b.Name, Missing: missingFields(b)}
		if !e.Valid() {
			r.HasError = true
		}
		r.Entries = append(r.Entries, e)

		if b.Name != "" {
			seen[b.Name]++
			if seen[b.Name] == 2 {
				r.Duplicates = append(r.Duplicates, b.Name)
			}
		}
	}
	return r
}

// missingFields lists the failing fields in declaration order, which puts
// the credential check last.
func missingFields(b Bookmark) []string {
	missing := []string{}
	err := validate.Struct(b)
	if err == nil {
		return missing
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return append(missing, err.Error())
	}
	for _, fe := range verrs {
		if fe.Field() == "key" {
			missing = append(missing, MissingCredential)
			continue
		}
		missing = append(missing, fe.Field())
	}
	return missing
}
