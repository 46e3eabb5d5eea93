package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/wellcheck/internal/catalog"
)

func testPolicy() *TablePolicy {
	return NewTablePolicy(&catalog.Catalog{
		Interpretations: map[string]map[string]string{
			"balance": {"yin": "Cool and quiet."},
		},
		Constitution: catalog.Constitution{
			Dimensions: []string{"balance", "element"},
			Separator:  "-",
			Phrases: map[string]map[string]string{
				"balance": {"yin": "a yin-leaning constitution"},
				"element": {"water": "a water imbalance"},
			},
			Undetermined: "Keep answering.",
		},
		Recommendations: catalog.Recommendations{
			Primary:   "balance",
			Secondary: "element",
			Threshold: 40,
			Kinds:     []string{"diet", "exercise"},
			Entries: map[string]map[string]map[string][]string{
				"balance": {"yin": {"diet": {"warm soups"}, "exercise": {"gentle walks"}}},
				"element": {"water": {"diet": {"black beans"}}},
			},
			Fallback: map[string][]string{
				"diet":     {"eat regularly"},
				"exercise": {"move daily"},
			},
		},
	})
}

func result(id, dominant string, percent int) DimensionResult {
	r := DimensionResult{ID: id, Dominant: dominant}
	if dominant != "" {
		r.Scores = []CategoryScore{{Category: dominant, Count: 1, Percent: percent}}
	}
	return r
}

func TestTablePolicy_Interpret(t *testing.T) {
	p := testPolicy()
	assert.Equal(t, "Cool and quiet.", p.Interpret("balance", "yin"))
	assert.Equal(t, "", p.Interpret("balance", "yang"))
	assert.Equal(t, "", p.Interpret("balance", ""))
}

func TestTablePolicy_Constitution(t *testing.T) {
	p := testPolicy()

	got := p.Constitution([]DimensionResult{result("balance", "yin", 60), result("element", "water", 50)})
	assert.Equal(t, Constitution{
		Type:        "yin-water",
		Description: "A yin-leaning constitution with a water imbalance.",
		Determined:  true,
	}, got)

	// Missing phrases fall back to the category key.
	got = p.Constitution([]DimensionResult{result("balance", "yin", 60), result("element", "fire", 50)})
	assert.Equal(t, "A yin-leaning constitution with fire.", got.Description)

	got = p.Constitution([]DimensionResult{result("balance", "yin", 60), result("element", "", 0)})
	assert.Equal(t, Constitution{Description: "Keep answering."}, got)
}

func TestTablePolicy_Recommend(t *testing.T) {
	p := testPolicy()

	tests := []struct {
		name    string
		results []DimensionResult
		want    []Recommendation
	}{
		{
			name:    "both dimensions clear the threshold",
			results: []DimensionResult{result("balance", "yin", 60), result("element", "water", 40)},
			want: []Recommendation{
				{Kind: "diet", Items: []string{"warm soups", "black beans"}},
				{Kind: "exercise", Items: []string{"gentle walks"}},
			},
		},
		{
			name:    "secondary below threshold",
			results: []DimensionResult{result("balance", "yin", 60), result("element", "water", 39)},
			want: []Recommendation{
				{Kind: "diet", Items: []string{"warm soups"}},
				{Kind: "exercise", Items: []string{"gentle walks"}},
			},
		},
		{
			name:    "only secondary clears",
			results: []DimensionResult{result("balance", "yin", 34), result("element", "water", 50)},
			want: []Recommendation{
				{Kind: "diet", Items: []string{"black beans"}},
				{Kind: "exercise", Items: []string{"move daily"}},
			},
		},
		{
			name:    "nothing answered",
			results: []DimensionResult{result("balance", "", 0), result("element", "", 0)},
			want: []Recommendation{
				{Kind: "diet", Items: []string{"eat regularly"}},
				{Kind: "exercise", Items: []string{"move daily"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Recommend(tt.results))
		})
	}
}
