package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDoc = `
id: mini
title: Mini
dimensions:
  - id: d
    title: D
    categories: [x, y, z]
  - id: e
    title: E
    categories: [lo, hi]
sections:
  - id: s1
    title: One
    questions:
      - id: q1
        prompt: First?
        dimension: d
        options:
          - {category: x, text: X, also: {e: hi}}
          - {category: y, text: Y, also: {e: lo}}
          - {category: z, text: Z}
      - id: q2
        prompt: Second?
        dimension: d
        options:
          - {category: x, text: X}
          - {category: y, text: Y}
  - id: s2
    title: Two
    questions:
      - id: q3
        prompt: Third?
        dimension: e
        options:
          - {category: lo, text: Low}
          - {category: hi, text: High}
interpretations:
  d: {x: Mostly x.}
constitution:
  dimensions: [d, e]
  separator: "-"
  undetermined: Not enough answers.
recommendations:
  primary: d
  secondary: e
  threshold: 40
  kinds: [diet]
  fallback:
    diet: [Eat well]
`

func TestParse_Minimal(t *testing.T) {
	c, err := Parse([]byte(minimalDoc))
	require.NoError(t, err)

	assert.Equal(t, "mini", c.ID)
	assert.Equal(t, 3, c.QuestionCount())
	assert.Equal(t, []string{"d", "e"}, c.DimensionIDs())

	q, ok := c.Question("q3")
	require.True(t, ok)
	assert.Equal(t, "s2", q.SectionID)

	var ids []string
	for _, q := range c.Questions() {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"q1", "q2", "q3"}, ids)
	assert.Equal(t, 1, c.IndexOf("q2"))
	assert.Equal(t, -1, c.IndexOf("nope"))

	_, err = c.QuestionAt(3)
	assert.Error(t, err)
}

func TestContributions(t *testing.T) {
	c, err := Parse([]byte(minimalDoc))
	require.NoError(t, err)

	q1, _ := c.Question("q1")
	assert.Equal(t, []Score{{"d", "x"}, {"e", "hi"}}, c.Contributions(q1, "x"))
	assert.Equal(t, []Score{{"d", "z"}}, c.Contributions(q1, "z"))
	assert.Nil(t, c.Contributions(q1, "bogus"))
	assert.Equal(t, []string{"d", "e"}, c.ContributesTo(q1))

	q2, _ := c.Question("q2")
	assert.Equal(t, []string{"d"}, c.ContributesTo(q2))
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		new     string
		wantMsg string
	}{
		{
			name:    "duplicate question id",
			old:     "id: q2",
			new:     "id: q1",
			wantMsg: `duplicate ID "q1"`,
		},
		{
			name:    "question id collides with section",
			old:     "id: q3",
			new:     "id: s1",
			wantMsg: `duplicate ID "s1"`,
		},
		{
			name:    "unknown dimension",
			old:     "prompt: Second?\n        dimension: d",
			new:     "prompt: Second?\n        dimension: nope",
			wantMsg: `unknown dimension "nope"`,
		},
		{
			name:    "option outside dimension",
			old:     "{category: z, text: Z}",
			new:     "{category: w, text: W}",
			wantMsg: `option "w" is not a category of dimension "d"`,
		},
		{
			name:    "duplicate option category",
			old:     "{category: y, text: Y}\n  - id: s2",
			new:     "{category: x, text: Y}\n  - id: s2",
			wantMsg: `duplicate option category "x"`,
		},
		{
			name:    "also references unknown category",
			old:     "also: {e: lo}",
			new:     "also: {e: mid}",
			wantMsg: `unknown category "mid" to dimension "e"`,
		},
		{
			name:    "interpretation references unknown category",
			old:     "d: {x: Mostly x.}",
			new:     "d: {q: Mostly q.}",
			wantMsg: `unknown category "q"`,
		},
		{
			name:    "constitution unknown dimension",
			old:     "dimensions: [d, e]",
			new:     "dimensions: [d, f]",
			wantMsg: `constitution references unknown dimension "f"`,
		},
		{
			name:    "fallback undeclared kind",
			old:     "diet: [Eat well]",
			new:     "sleep: [Sleep well]",
			wantMsg: `undeclared kind "sleep"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(minimalDoc, tt.old, tt.new, 1)
			require.NotEqual(t, minimalDoc, doc, "test mutation did not apply")

			_, err := Parse([]byte(doc))
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "want *ValidationError, got %T: %v", err, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "id: [unclosed"},
		{"single option", strings.Replace(minimalDoc, "          - {category: y, text: Y}\n  - id: s2", "  - id: s2", 1)},
		{"threshold out of range", strings.Replace(minimalDoc, "threshold: 40", "threshold: 140", 1)},
		{"unknown field", strings.Replace(minimalDoc, "title: Mini", "title: Mini\ncolour: red", 1)},
		{"single category", strings.Replace(minimalDoc, "categories: [lo, hi]", "categories: [lo]", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestBuiltin(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len())

	ayur, err := reg.Get("ayurveda")
	require.NoError(t, err)
	assert.Equal(t, 12, ayur.QuestionCount())
	assert.Len(t, ayur.Sections, 3)

	tcm, err := reg.Get("tcm")
	require.NoError(t, err)
	assert.Equal(t, 14, tcm.QuestionCount())

	// Element questions feed their own element tally first, then the global
	// balance and the element focus.
	q, ok := tcm.Question("wood-anger")
	require.True(t, ok)
	assert.Equal(t, []Score{
		{"wood", "dominant"},
		{"balance", "yang"},
		{"element", "wood"},
	}, tcm.Contributions(q, "dominant"))

	_, err = reg.Get("unani")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRegistry_LoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mini.yaml"), []byte(minimalDoc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	reg, err := Builtin()
	require.NoError(t, err)
	require.NoError(t, reg.LoadDir(dir))
	assert.Equal(t, 3, reg.Len())

	// Loading the same directory twice collides on the catalog ID.
	err = reg.LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate catalog ID: "mini"`)
}
