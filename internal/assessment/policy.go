package assessment

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abhisek/wellcheck/internal/catalog"
)

// Interpreter turns derived scores into human-readable results. It is kept
// apart from scoring so the labelling rules can change without touching the
// tallies.
type Interpreter interface {
	// Interpret returns the text for a dimension's dominant category.
	Interpret(dimension, dominant string) string

	// Constitution combines the dominant categories of several dimensions.
	Constitution(results []DimensionResult) Constitution

	// Recommend returns one list per recommendation kind.
	Recommend(results []DimensionResult) []Recommendation
}

// TablePolicy is the default Interpreter, driven entirely by a catalog's
// lookup tables.
type TablePolicy struct {
	interpretations map[string]map[string]string
	constitution    catalog.Constitution
	recommendations catalog.Recommendations
}

// NewTablePolicy builds a policy from the catalog's tables.
func NewTablePolicy(c *catalog.Catalog) *TablePolicy {
	return &TablePolicy{
		interpretations: c.Interpretations,
		constitution:    c.Constitution,
		recommendations: c.Recommendations,
	}
}

// Interpret looks up dimension x dominant. Missing entries yield "".
func (p *TablePolicy) Interpret(dimension, dominant string) string {
	if dominant == "" {
		return ""
	}
	return p.interpretations[dimension][dominant]
}

// Constitution joins the dominant categories of the configured dimensions
// with the separator. If any of them has no dominant category the result is
// undetermined.
func (p *TablePolicy) Constitution(results []DimensionResult) Constitution {
	undetermined := Constitution{Description: p.constitution.Undetermined}

	labels := make([]string, 0, len(p.constitution.Dimensions))
	phrases := make([]string, 0, len(p.constitution.Dimensions))
	for _, dimID := range p.constitution.Dimensions {
		r, ok := findResult(results, dimID)
		if !ok || r.Dominant == "" {
			return undetermined
		}
		labels = append(labels, r.Dominant)
		phrase := p.constitution.Phrases[dimID][r.Dominant]
		if phrase == "" {
			phrase = r.Dominant
		}
		phrases = append(phrases, phrase)
	}

	return Constitution{
		Type:        strings.Join(labels, p.constitution.Separator),
		Description: capitalize(strings.Join(phrases, " with ")) + ".",
		Determined:  true,
	}
}

// Recommend concatenates, per kind, the entries for the primary dimension's
// dominant category and then the secondary's. A dimension only contributes
// when its dominant category reaches the threshold percentage. Kinds left
// empty use the fallback list.
func (p *TablePolicy) Recommend(results []DimensionResult) []Recommendation {
	rec := p.recommendations

	var sources []map[string][]string
	for _, dimID := range []string{rec.Primary, rec.Secondary} {
		r, ok := findResult(results, dimID)
		if !ok || r.Dominant == "" || r.Percent(r.Dominant) < rec.Threshold {
			continue
		}
		if byKind, ok := rec.Entries[dimID][r.Dominant]; ok {
			sources = append(sources, byKind)
		}
	}

	out := make([]Recommendation, 0, len(rec.Kinds))
	for _, kind := range rec.Kinds {
		var items []string
		for _, byKind := range sources {
			items = append(items, byKind[kind]...)
		}
		if len(items) == 0 {
			items = append(items, rec.Fallback[kind]...)
		}
		out = append(out, Recommendation{Kind: kind, Items: items})
	}
	return out
}

func findResult(results []DimensionResult, id string) (DimensionResult, bool) {
	for _, r := range results {
		if r.ID == id {
			return r, true
		}
	}
	return DimensionResult{}, false
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
