// Package welcome is the splash screen shown before the catalog picker.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellcheck/internal/router"
	"github.com/abhisek/wellcheck/internal/screen"
	"github.com/abhisek/wellcheck/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	leafEnd      = 600 * time.Millisecond
	totalDur     = 1800 * time.Millisecond
)

// The leaf grows one row per tick until it is whole.
var leafArt = []string{
	`     ╱╲     `,
	`    ╱  ╲    `,
	`   ╱ ╲╱ ╲   `,
	`   ╲ ╱╲ ╱   `,
	`    ╲  ╱    `,
	`     ╲╱     `,
	`     ││     `,
}

const tagline = "Know your constitution."

type tickMsg time.Time

// WelcomeScreen animates a leaf and the banner, then hands over to the
// screen produced by next on the first key press.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with next().
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

// Done reports whether the animation has finished.
func (w *WelcomeScreen) Done() bool {
	return w.elapsed >= totalDur
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	s := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	rows := len(leafArt)
	if w.elapsed < leafEnd {
		rows = int(w.elapsed * time.Duration(len(leafArt)) / leafEnd)
	}
	leaf := lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(strings.Join(leafArt[:rows], "\n"))

	sections := []string{leaf}
	if w.elapsed >= leafEnd {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
		)
	}
	if w.Done() {
		sections = append(sections, "", theme.Hint.Italic(true).Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
