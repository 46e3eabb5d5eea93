package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wellcheck/internal/catalog"
	"github.com/abhisek/wellcheck/internal/logging"
	"github.com/abhisek/wellcheck/internal/router"
	"github.com/abhisek/wellcheck/internal/screens/home"
	"github.com/abhisek/wellcheck/internal/screens/questionnaire"
	"github.com/abhisek/wellcheck/internal/screens/welcome"
)

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg, err := catalog.Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	return reg
}

// apply runs cmd and feeds its message back through the model.
func apply(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	next, _ := m.Update(cmd())
	return next.(AppModel)
}

func TestNewAppModel_StartsOnWelcome(t *testing.T) {
	m, err := newAppModel(Options{Registry: testRegistry(t)})
	if err != nil {
		t.Fatalf("newAppModel: %v", err)
	}
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("active = %T, want welcome screen", m.router.Active())
	}
}

func TestNewAppModel_DirectCatalog(t *testing.T) {
	m, err := newAppModel(Options{Registry: testRegistry(t), CatalogID: "tcm"})
	if err != nil {
		t.Fatalf("newAppModel: %v", err)
	}
	m = apply(t, m, m.Init())

	if m.router.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", m.router.Depth())
	}
	q, ok := m.router.Active().(*questionnaire.Screen)
	if !ok {
		t.Fatalf("active = %T, want questionnaire", m.router.Active())
	}
	if q.Title() != "TCM Constitution Pattern Assessment" {
		t.Errorf("Title = %q", q.Title())
	}

	// Esc goes back to the catalog picker.
	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = apply(t, next.(AppModel), cmd)
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("active = %T after Esc, want home", m.router.Active())
	}
}

func TestNewAppModel_Errors(t *testing.T) {
	if _, err := newAppModel(Options{}); err == nil {
		t.Error("expected error without a registry")
	}
	if _, err := newAppModel(Options{Registry: testRegistry(t), CatalogID: "nope"}); err == nil {
		t.Error("expected error for unknown catalog")
	}
}

func TestView_HeaderShowsStatus(t *testing.T) {
	m, err := newAppModel(Options{Registry: testRegistry(t), CatalogID: "ayurveda"})
	if err != nil {
		t.Fatalf("newAppModel: %v", err)
	}
	m = apply(t, m, m.Init())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(AppModel)

	content := m.render()
	for _, want := range []string{"wellcheck", "0/12 answered", "Finish", "Quit"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_TooSmall(t *testing.T) {
	m, _ := newAppModel(Options{Registry: testRegistry(t)})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(next.(AppModel).render(), "too small") {
		t.Error("expected min-size message")
	}
}

func TestEscWithRootScreenIsNoop(t *testing.T) {
	m, _ := newAppModel(Options{Registry: testRegistry(t)})
	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("Esc on the root screen should not pop")
	}
	if next.(AppModel).router.Depth() != 1 {
		t.Error("stack should be unchanged")
	}
}

func TestRouterMessagesPassThrough(t *testing.T) {
	m, _ := newAppModel(Options{Registry: testRegistry(t)})
	next, _ := m.Update(router.ReplaceScreenMsg{Screen: home.New(testRegistry(t), logging.Discard())})
	if _, ok := next.(AppModel).router.Active().(*home.HomeScreen); !ok {
		t.Error("expected home after replace")
	}
}
