package assessment

import "github.com/abhisek/wellcheck/internal/catalog"

// Progress is the answered/total count overall and per section.
type Progress struct {
	Answered int
	Total    int
	Sections []SectionProgress
}

// SectionProgress is the answered/total count of one section.
type SectionProgress struct {
	ID       string
	Title    string
	Answered int
	Total    int
}

// Fraction returns Answered/Total in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Answered) / float64(p.Total)
}

// Progress reports how many questions have been answered.
func (e *Engine) Progress() Progress {
	if e.catalog == nil {
		return Progress{}
	}
	p := Progress{
		Answered: len(e.answers),
		Total:    e.catalog.QuestionCount(),
		Sections: make([]SectionProgress, 0, len(e.catalog.Sections)),
	}
	for _, s := range e.catalog.Sections {
		sp := SectionProgress{ID: s.ID, Title: s.Title, Total: len(s.Questions)}
		for _, q := range s.Questions {
			if _, ok := e.answers[q.ID]; ok {
				sp.Answered++
			}
		}
		p.Sections = append(p.Sections, sp)
	}
	return p
}

// NextUnanswered returns the first unanswered question in traversal order.
func (e *Engine) NextUnanswered() (catalog.Question, bool) {
	if e.catalog == nil {
		return catalog.Question{}, false
	}
	for _, q := range e.catalog.Questions() {
		if _, ok := e.answers[q.ID]; !ok {
			return q, true
		}
	}
	return catalog.Question{}, false
}
