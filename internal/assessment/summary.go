package assessment

// ResultSummary is the immutable snapshot produced by Finalize.
type ResultSummary struct {
	CatalogID       string             `json:"catalog_id"`
	Title           string             `json:"title"`
	Answered        int                `json:"answered"`
	Total           int                `json:"total"`
	Complete        bool               `json:"complete"`
	Dimensions      []DimensionResult  `json:"dimensions"`
	Constitution    Constitution       `json:"constitution"`
	Recommendations []Recommendation   `json:"recommendations"`
	Answers         []AnsweredQuestion `json:"answers"`
}

// DimensionResult holds the derived scores of one dimension. Scores follow
// the dimension's declared category order.
type DimensionResult struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Answered       int             `json:"answered"`
	Scores         []CategoryScore `json:"scores"`
	Dominant       string          `json:"dominant,omitempty"`
	Interpretation string          `json:"interpretation,omitempty"`
}

// CategoryScore is one category's count and rounded percentage.
type CategoryScore struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Percent  int    `json:"percent"`
}

// Constitution is the composite type label built from several dimensions.
type Constitution struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description"`
	Determined  bool   `json:"determined"`
}

// Recommendation is the list of items for one kind (diet, lifestyle, ...).
type Recommendation struct {
	Kind  string   `json:"kind"`
	Items []string `json:"items"`
}

// AnsweredQuestion records one answer in catalog order.
type AnsweredQuestion struct {
	QuestionID string `json:"question_id"`
	SectionID  string `json:"section_id"`
	Prompt     string `json:"prompt"`
	Category   string `json:"category"`
	Choice     string `json:"choice"`
}

// Dimension returns the result for a dimension ID.
func (r *ResultSummary) Dimension(id string) (DimensionResult, bool) {
	for _, d := range r.Dimensions {
		if d.ID == id {
			return d, true
		}
	}
	return DimensionResult{}, false
}

// Percent returns the rounded percentage of a category.
func (d DimensionResult) Percent(category string) int {
	for _, s := range d.Scores {
		if s.Category == category {
			return s.Percent
		}
	}
	return 0
}

// Count returns the raw count of a category.
func (d DimensionResult) Count(category string) int {
	for _, s := range d.Scores {
		if s.Category == category {
			return s.Count
		}
	}
	return 0
}
