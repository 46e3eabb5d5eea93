package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists every structural problem found in a catalog.
type ValidationError struct {
	Catalog  string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog %q validation failed:\n  %s", e.Catalog, strings.Join(e.Problems, "\n  "))
}

var (
	structValidatorOnce sync.Once
	structValidator     *validator.Validate
)

func structValidate() *validator.Validate {
	structValidatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return structValidator
}

// validateCatalog runs struct-tag validation followed by the reference checks
// the tags cannot express. All problems are collected into one error.
func validateCatalog(c *Catalog) error {
	var errs []string

	if err := structValidate().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, fmt.Sprintf("%s: failed %q constraint", fe.Namespace(), fe.Tag()))
			}
		} else {
			errs = append(errs, err.Error())
		}
	}

	dims := make(map[string]Dimension, len(c.Dimensions))
	for _, d := range c.Dimensions {
		if _, dup := dims[d.ID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate dimension ID: %q", d.ID))
		}
		dims[d.ID] = d
	}

	// Section and question IDs share one namespace.
	ids := make(map[string]string)
	claim := func(id, kind string) {
		if prev, dup := ids[id]; dup {
			errs = append(errs, fmt.Sprintf("duplicate ID %q (%s, already used by a %s)", id, kind, prev))
			return
		}
		ids[id] = kind
	}

	for _, s := range c.Sections {
		claim(s.ID, "section")
		for _, q := range s.Questions {
			claim(q.ID, "question")
			errs = append(errs, validateQuestion(q, dims)...)
		}
	}

	for _, dimID := range slices.Sorted(maps.Keys(c.Interpretations)) {
		errs = append(errs, checkTable("interpretations", dimID, c.Interpretations[dimID], dims)...)
	}

	con := c.Constitution
	for _, dimID := range con.Dimensions {
		if _, ok := dims[dimID]; !ok {
			errs = append(errs, fmt.Sprintf("constitution references unknown dimension %q", dimID))
		}
	}
	for _, dimID := range slices.Sorted(maps.Keys(con.Phrases)) {
		errs = append(errs, checkTable("constitution phrases", dimID, con.Phrases[dimID], dims)...)
	}

	rec := c.Recommendations
	for _, dimID := range []string{rec.Primary, rec.Secondary} {
		if _, ok := dims[dimID]; dimID != "" && !ok {
			errs = append(errs, fmt.Sprintf("recommendations reference unknown dimension %q", dimID))
		}
	}
	kinds := make(map[string]bool, len(rec.Kinds))
	for _, k := range rec.Kinds {
		kinds[k] = true
	}
	for _, dimID := range slices.Sorted(maps.Keys(rec.Entries)) {
		byCategory := rec.Entries[dimID]
		d, ok := dims[dimID]
		if !ok {
			errs = append(errs, fmt.Sprintf("recommendation entries reference unknown dimension %q", dimID))
			continue
		}
		for _, cat := range slices.Sorted(maps.Keys(byCategory)) {
			byKind := byCategory[cat]
			if !d.HasCategory(cat) {
				errs = append(errs, fmt.Sprintf("recommendation entries reference unknown category %q in dimension %q", cat, dimID))
			}
			for _, kind := range slices.Sorted(maps.Keys(byKind)) {
				if !kinds[kind] {
					errs = append(errs, fmt.Sprintf("recommendation entries for %s/%s use undeclared kind %q", dimID, cat, kind))
				}
			}
		}
	}
	for _, kind := range slices.Sorted(maps.Keys(rec.Fallback)) {
		if !kinds[kind] {
			errs = append(errs, fmt.Sprintf("recommendation fallback uses undeclared kind %q", kind))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Catalog: c.ID, Problems: errs}
	}
	return nil
}

func validateQuestion(q Question, dims map[string]Dimension) []string {
	var errs []string
	prefix := fmt.Sprintf("question %q", q.ID)

	d, ok := dims[q.Dimension]
	if !ok {
		return append(errs, fmt.Sprintf("%s references unknown dimension %q", prefix, q.Dimension))
	}

	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if seen[o.Category] {
			errs = append(errs, fmt.Sprintf("%s has duplicate option category %q", prefix, o.Category))
		}
		seen[o.Category] = true
		if !d.HasCategory(o.Category) {
			errs = append(errs, fmt.Sprintf("%s option %q is not a category of dimension %q", prefix, o.Category, d.ID))
		}
		for _, dimID := range slices.Sorted(maps.Keys(o.Also)) {
			cat := o.Also[dimID]
			if dimID == q.Dimension {
				errs = append(errs, fmt.Sprintf("%s option %q repeats its own dimension in also", prefix, o.Category))
				continue
			}
			other, ok := dims[dimID]
			if !ok {
				errs = append(errs, fmt.Sprintf("%s option %q contributes to unknown dimension %q", prefix, o.Category, dimID))
				continue
			}
			if !other.HasCategory(cat) {
				errs = append(errs, fmt.Sprintf("%s option %q contributes unknown category %q to dimension %q", prefix, o.Category, cat, dimID))
			}
		}
	}
	return errs
}

func checkTable(name, dimID string, table map[string]string, dims map[string]Dimension) []string {
	d, ok := dims[dimID]
	if !ok {
		return []string{fmt.Sprintf("%s reference unknown dimension %q", name, dimID)}
	}
	var errs []string
	for _, cat := range slices.Sorted(maps.Keys(table)) {
		if !d.HasCategory(cat) {
			errs = append(errs, fmt.Sprintf("%s reference unknown category %q in dimension %q", name, cat, dimID))
		}
	}
	return errs
}
