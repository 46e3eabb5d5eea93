// Package questionnaire is the screen that walks through a catalog's
// questions and records answers on an assessment engine.
package questionnaire

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wellcheck/internal/assessment"
	"github.com/abhisek/wellcheck/internal/catalog"
	"github.com/abhisek/wellcheck/internal/router"
	"github.com/abhisek/wellcheck/internal/screen"
	"github.com/abhisek/wellcheck/internal/screens/results"
	"github.com/abhisek/wellcheck/internal/ui/components"
	"github.com/abhisek/wellcheck/internal/ui/layout"
)

// Screen shows one question at a time with live scores beside it.
type Screen struct {
	engine     *assessment.Engine
	logger     *slog.Logger
	index      int
	choice     components.Choice
	showScores bool
	errMsg     string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)

// New creates a questionnaire over an initialized engine. It opens on the
// first unanswered question.
func New(engine *assessment.Engine, logger *slog.Logger) *Screen {
	s := &Screen{
		engine:     engine,
		logger:     logger,
		showScores: true,
	}
	if q, ok := engine.NextUnanswered(); ok {
		s.index = engine.Catalog().IndexOf(q.ID)
	}
	s.load()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return s.engine.Catalog().Title
}

func (s *Screen) Status() string {
	p := s.engine.Progress()
	return fmt.Sprintf("%d/%d answered", p.Answered, p.Total)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓ 1-9", Description: "Choose"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "s", Description: "Scores"},
		{Key: "f", Description: "Finish"},
		{Key: "r", Description: "Restart"},
		{Key: "Esc", Description: "Back"},
	}
}

// Question returns the question currently shown.
func (s *Screen) Question() catalog.Question {
	q, _ := s.engine.Catalog().QuestionAt(s.index)
	return q
}

// load rebuilds the choice component for the current question.
func (s *Screen) load() {
	q := s.Question()
	opts := make([]components.ChoiceOption, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, components.ChoiceOption{Key: o.Category, Text: o.Text})
	}
	chosen, _ := s.engine.Answer(q.ID)
	s.choice = components.NewChoice(q.Prompt, opts, chosen)
}

func (s *Screen) move(delta int) {
	next := s.index + delta
	if next < 0 || next >= s.engine.Catalog().QuestionCount() {
		return
	}
	s.index = next
	s.errMsg = ""
	s.load()
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ChosenMsg:
		return s.record(msg.Key)

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			s.move(-1)
			return s, nil
		case "right", "l":
			s.move(1)
			return s, nil
		case "s":
			s.showScores = !s.showScores
			return s, nil
		case "f":
			return s, s.finish()
		case "r":
			s.engine.Reset()
			s.logger.Info("assessment restarted", "catalog", s.engine.Catalog().ID)
			s.index = 0
			s.errMsg = ""
			s.load()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

// record stores the answer, then advances to the next unanswered question
// after it or to the results once everything is answered.
func (s *Screen) record(category string) (screen.Screen, tea.Cmd) {
	q := s.Question()
	if err := s.engine.RecordAnswer(q.ID, category); err != nil {
		s.logger.Error("record answer failed", "question", q.ID, "category", category, "error", err)
		s.errMsg = "Something went wrong recording that answer."
		return s, nil
	}
	s.errMsg = ""
	s.logger.Debug("answer recorded", "question", q.ID, "category", category)

	if s.engine.IsComplete() {
		return s, s.finish()
	}
	s.index = s.nextUnanswered()
	s.load()
	return s, nil
}

// nextUnanswered returns the first unanswered question after the current
// one, wrapping to the start of the catalog.
func (s *Screen) nextUnanswered() int {
	c := s.engine.Catalog()
	n := c.QuestionCount()
	for step := 1; step <= n; step++ {
		i := (s.index + step) % n
		q, _ := c.QuestionAt(i)
		if _, answered := s.engine.Answer(q.ID); !answered {
			return i
		}
	}
	return s.index
}

func (s *Screen) finish() tea.Cmd {
	summary := s.engine.Finalize()
	s.logger.Info("assessment finalized",
		"catalog", summary.CatalogID,
		"answered", summary.Answered,
		"total", summary.Total,
		"constitution", summary.Constitution.Type,
	)
	next := results.New(s.engine, summary, s.logger, func() screen.Screen {
		return New(s.engine, s.logger)
	})
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}
