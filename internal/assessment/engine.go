// Package assessment implements the scoring engine: it records answers
// against a catalog, keeps one tally per dimension, and derives live scores
// and the final result summary.
package assessment

import (
	"maps"

	"github.com/abhisek/wellcheck/internal/catalog"
)

// Option configures an Engine.
type Option func(*Engine)

// WithInterpreter replaces the catalog-table interpretation policy.
func WithInterpreter(i Interpreter) Option {
	return func(e *Engine) {
		e.custom = i
	}
}

// Engine owns the answer set and tallies of one assessment. It is not safe
// for concurrent use; each session or request gets its own engine.
type Engine struct {
	catalog     *catalog.Catalog
	custom      Interpreter
	interpreter Interpreter
	answers     map[string]string
	tallies     map[string]*Tally
	state       State
}

// NewEngine returns an uninitialized engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{state: StateUninitialized}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize loads a catalog and zeroes the answer set and every dimension's
// tally. A nil catalog leaves the engine uninitialized.
func (e *Engine) Initialize(c *catalog.Catalog) {
	e.catalog = c
	e.answers = make(map[string]string)
	e.tallies = nil
	e.interpreter = nil
	if c == nil {
		e.state = StateUninitialized
		return
	}

	e.tallies = make(map[string]*Tally, len(c.Dimensions))
	for _, d := range c.Dimensions {
		e.tallies[d.ID] = newTally(d)
	}
	e.interpreter = e.custom
	if e.interpreter == nil {
		e.interpreter = NewTablePolicy(c)
	}
	e.state = StateReady
}

// RecordAnswer sets the answer for a question. A previous answer's
// contributions are retracted before the new ones are applied; selecting the
// same category again changes nothing. Unknown question IDs or categories
// fail with ErrInvalidReference and leave the engine untouched.
func (e *Engine) RecordAnswer(questionID, category string) error {
	if e.catalog == nil {
		return &InvalidReferenceError{QuestionID: questionID, Category: category, Reason: "no catalog loaded"}
	}
	q, ok := e.catalog.Question(questionID)
	if !ok {
		return &InvalidReferenceError{QuestionID: questionID, Reason: "unknown question"}
	}
	if _, ok := q.Option(category); !ok {
		return &InvalidReferenceError{QuestionID: questionID, Category: category, Reason: "not an option of this question"}
	}

	prev, answered := e.answers[questionID]
	if answered && prev == category {
		return nil
	}
	if answered {
		for _, s := range e.catalog.Contributions(q, prev) {
			e.tallies[s.Dimension].remove(s.Category)
		}
	}
	for _, s := range e.catalog.Contributions(q, category) {
		e.tallies[s.Dimension].add(s.Category)
	}
	e.answers[questionID] = category

	if e.state == StateReady {
		e.state = StateInProgress
	}
	return nil
}

// LiveScores returns the rounded percentage distribution of every dimension.
func (e *Engine) LiveScores() map[string]map[string]int {
	out := make(map[string]map[string]int, len(e.tallies))
	for id, t := range e.tallies {
		out[id] = t.Percentages()
	}
	return out
}

// IsComplete reports whether every catalog question has an answer.
func (e *Engine) IsComplete() bool {
	if e.catalog == nil {
		return false
	}
	return len(e.answers) == e.catalog.QuestionCount()
}

// Finalize derives the result summary from the current answers. It may be
// called at any time; once every question is answered the engine moves to
// StateComplete.
func (e *Engine) Finalize() *ResultSummary {
	if e.catalog == nil {
		return &ResultSummary{}
	}
	c := e.catalog

	results := make([]DimensionResult, 0, len(c.Dimensions))
	for _, d := range c.Dimensions {
		t := e.tallies[d.ID]
		pct := t.Percentages()
		r := DimensionResult{
			ID:       d.ID,
			Title:    d.Title,
			Answered: t.Total(),
			Scores:   make([]CategoryScore, 0, len(d.Categories)),
		}
		for _, cat := range d.Categories {
			r.Scores = append(r.Scores, CategoryScore{Category: cat, Count: t.Count(cat), Percent: pct[cat]})
		}
		if dom, ok := t.Dominant(); ok {
			r.Dominant = dom
			r.Interpretation = e.interpreter.Interpret(d.ID, dom)
		}
		results = append(results, r)
	}

	var answers []AnsweredQuestion
	for _, q := range c.Questions() {
		cat, ok := e.answers[q.ID]
		if !ok {
			continue
		}
		opt, _ := q.Option(cat)
		answers = append(answers, AnsweredQuestion{
			QuestionID: q.ID,
			SectionID:  q.SectionID,
			Prompt:     q.Prompt,
			Category:   cat,
			Choice:     opt.Text,
		})
	}

	complete := e.IsComplete()
	if complete {
		e.state = StateComplete
	}

	return &ResultSummary{
		CatalogID:       c.ID,
		Title:           c.Title,
		Answered:        len(e.answers),
		Total:           c.QuestionCount(),
		Complete:        complete,
		Dimensions:      results,
		Constitution:    e.interpreter.Constitution(results),
		Recommendations: e.interpreter.Recommend(results),
		Answers:         answers,
	}
}

// Reset clears answers and tallies but keeps the catalog.
func (e *Engine) Reset() {
	if e.catalog == nil {
		return
	}
	clear(e.answers)
	for _, t := range e.tallies {
		t.zero()
	}
	e.state = StateReady
}

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Catalog returns the loaded catalog, or nil.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Answer returns the recorded category for a question.
func (e *Engine) Answer(questionID string) (string, bool) {
	cat, ok := e.answers[questionID]
	return cat, ok
}

// Answers returns a copy of the answer set.
func (e *Engine) Answers() map[string]string {
	return maps.Clone(e.answers)
}

// Counts returns a copy of the raw tally counts.
func (e *Engine) Counts() map[string]map[string]int {
	out := make(map[string]map[string]int, len(e.tallies))
	for id, t := range e.tallies {
		out[id] = maps.Clone(t.counts)
	}
	return out
}
