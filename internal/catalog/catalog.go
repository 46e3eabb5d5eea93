package catalog

import (
	"fmt"
	"slices"
)

// index builds the lookup tables and stamps each question with its section.
// Callers must validate the catalog first; index assumes unique ids.
func (c *Catalog) index() {
	c.questionIndex = make(map[string]*Question)
	c.sectionIndex = make(map[string]*Section, len(c.Sections))
	c.dimensionIndex = make(map[string]int, len(c.Dimensions))
	c.order = c.order[:0]

	for i := range c.Dimensions {
		c.dimensionIndex[c.Dimensions[i].ID] = i
	}
	for i := range c.Sections {
		s := &c.Sections[i]
		c.sectionIndex[s.ID] = s
		for j := range s.Questions {
			q := &s.Questions[j]
			q.SectionID = s.ID
			c.questionIndex[q.ID] = q
			c.order = append(c.order, q)
		}
	}
}

// Question returns a question by ID.
func (c *Catalog) Question(id string) (Question, bool) {
	q, ok := c.questionIndex[id]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// Questions returns all questions in traversal order (section order, then
// question order within the section).
func (c *Catalog) Questions() []Question {
	out := make([]Question, 0, len(c.order))
	for _, q := range c.order {
		out = append(out, *q)
	}
	return out
}

// QuestionAt returns the question at position i of the traversal order.
func (c *Catalog) QuestionAt(i int) (Question, error) {
	if i < 0 || i >= len(c.order) {
		return Question{}, fmt.Errorf("question index %d out of range [0, %d)", i, len(c.order))
	}
	return *c.order[i], nil
}

// IndexOf returns the traversal position of a question, or -1.
func (c *Catalog) IndexOf(questionID string) int {
	for i, q := range c.order {
		if q.ID == questionID {
			return i
		}
	}
	return -1
}

// QuestionCount returns the total number of questions.
func (c *Catalog) QuestionCount() int {
	return len(c.order)
}

// Section returns a section by ID.
func (c *Catalog) Section(id string) (Section, bool) {
	s, ok := c.sectionIndex[id]
	if !ok {
		return Section{}, false
	}
	return *s, true
}

// Dimension returns a dimension by ID.
func (c *Catalog) Dimension(id string) (Dimension, bool) {
	i, ok := c.dimensionIndex[id]
	if !ok {
		return Dimension{}, false
	}
	return c.Dimensions[i], true
}

// DimensionIDs returns dimension IDs in declared order.
func (c *Catalog) DimensionIDs() []string {
	ids := make([]string, 0, len(c.Dimensions))
	for _, d := range c.Dimensions {
		ids = append(ids, d.ID)
	}
	return ids
}

// Contributions returns the tally cells that choosing category on the given
// question increments: the question's own dimension first, then the extra
// dimensions in declared dimension order.
func (c *Catalog) Contributions(q Question, category string) []Score {
	opt, ok := q.Option(category)
	if !ok {
		return nil
	}
	scores := []Score{{Dimension: q.Dimension, Category: opt.Category}}
	if len(opt.Also) == 0 {
		return scores
	}
	extra := make([]string, 0, len(opt.Also))
	for dim := range opt.Also {
		extra = append(extra, dim)
	}
	slices.SortFunc(extra, func(a, b string) int {
		return c.dimensionIndex[a] - c.dimensionIndex[b]
	})
	for _, dim := range extra {
		scores = append(scores, Score{Dimension: dim, Category: opt.Also[dim]})
	}
	return scores
}

// ContributesTo returns the dimensions a question can feed, in declared
// dimension order.
func (c *Catalog) ContributesTo(q Question) []string {
	seen := map[string]bool{q.Dimension: true}
	for _, o := range q.Options {
		for dim := range o.Also {
			seen[dim] = true
		}
	}
	var dims []string
	for _, d := range c.Dimensions {
		if seen[d.ID] {
			dims = append(dims, d.ID)
		}
	}
	return dims
}
