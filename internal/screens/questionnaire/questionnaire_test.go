package questionnaire

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wellcheck/internal/assessment"
	"github.com/abhisek/wellcheck/internal/catalog"
	"github.com/abhisek/wellcheck/internal/logging"
	"github.com/abhisek/wellcheck/internal/router"
	"github.com/abhisek/wellcheck/internal/screens/results"
)

func newTestScreen(t *testing.T) (*Screen, *assessment.Engine) {
	t.Helper()
	reg, err := catalog.Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	c, err := reg.Get("ayurveda")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	e := assessment.NewEngine()
	e.Initialize(c)
	return New(e, logging.Discard()), e
}

// press sends a key and feeds any resulting ChosenMsg back into the screen,
// the way the program loop would.
func press(s *Screen, r rune) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); ok {
		return cmd
	}
	_, cmd = s.Update(msg)
	return cmd
}

func TestNumberKeyRecordsAndAdvances(t *testing.T) {
	s, e := newTestScreen(t)

	if got := s.Question().ID; got != "phys-frame" {
		t.Fatalf("first question = %q, want phys-frame", got)
	}
	press(s, '2')

	if got, _ := e.Answer("phys-frame"); got != "pitta" {
		t.Errorf("answer = %q, want pitta", got)
	}
	if got := s.Question().ID; got != "phys-skin" {
		t.Errorf("current question = %q, want phys-skin", got)
	}
	if s.Status() != "1/12 answered" {
		t.Errorf("Status = %q", s.Status())
	}
}

func TestChangingAnswerDoesNotDoubleCount(t *testing.T) {
	s, e := newTestScreen(t)

	press(s, '1')
	press(s, 'h')
	press(s, '3')

	if got, _ := e.Answer("phys-frame"); got != "kapha" {
		t.Errorf("answer = %q, want kapha", got)
	}
	if got := e.LiveScores()["dosha"]["kapha"]; got != 100 {
		t.Errorf("kapha = %d%%, want 100", got)
	}
}

func TestCompletingReplacesWithResults(t *testing.T) {
	s, e := newTestScreen(t)

	var cmd tea.Cmd
	for i := 0; i < e.Catalog().QuestionCount(); i++ {
		cmd = press(s, '1')
	}
	if !e.IsComplete() {
		t.Fatal("expected engine to be complete")
	}
	if cmd == nil {
		t.Fatal("expected a command after the last answer")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*results.Screen); !ok {
		t.Errorf("expected results screen, got %T", msg.Screen)
	}
	if e.State() != assessment.StateComplete {
		t.Errorf("State = %q, want %q", e.State(), assessment.StateComplete)
	}
}

func TestFinishEarly(t *testing.T) {
	s, e := newTestScreen(t)
	press(s, '1')

	cmd := press(s, 'f')
	if cmd == nil {
		t.Fatal("expected a command on f")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if e.IsComplete() {
		t.Error("finishing early should not complete the assessment")
	}
}

func TestAnswerAdvancesPastSkippedQuestion(t *testing.T) {
	s, e := newTestScreen(t)

	// Skip the first two questions, answer the third.
	press(s, 'l')
	press(s, 'l')
	press(s, '1')

	if got := s.index; got != 3 {
		t.Errorf("index = %d, want 3 (the question after the answered one)", got)
	}
	if len(e.Answers()) != 1 {
		t.Errorf("answers = %v, want one", e.Answers())
	}
}

func TestAnswerWrapsToFirstGap(t *testing.T) {
	s, e := newTestScreen(t)
	last := e.Catalog().QuestionCount() - 1
	for i := 0; i < last; i++ {
		press(s, 'l')
	}
	press(s, '1')

	if s.index != 0 {
		t.Errorf("index = %d, want 0 after answering the last question", s.index)
	}
}

func TestNavigationBounds(t *testing.T) {
	s, _ := newTestScreen(t)

	press(s, 'h')
	if s.index != 0 {
		t.Errorf("index = %d, want 0 after moving before the first question", s.index)
	}
	press(s, 'l')
	press(s, 'l')
	if s.index != 2 {
		t.Errorf("index = %d, want 2", s.index)
	}
}

func TestRestart(t *testing.T) {
	s, e := newTestScreen(t)
	press(s, '1')
	press(s, '2')

	press(s, 'r')
	if len(e.Answers()) != 0 {
		t.Errorf("answers = %v, want none after restart", e.Answers())
	}
	if s.index != 0 {
		t.Errorf("index = %d, want 0", s.index)
	}
	if e.State() != assessment.StateReady {
		t.Errorf("State = %q, want %q", e.State(), assessment.StateReady)
	}
}

func TestView(t *testing.T) {
	s, _ := newTestScreen(t)
	press(s, '1')

	view := s.View(100, 30)
	for _, want := range []string{"Physical Characteristics", "question 2 of 12", "Progress"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	press(s, 's')
	if strings.Contains(s.View(100, 30), "Progress") {
		t.Error("scores panel should be hidden after toggling")
	}
}
