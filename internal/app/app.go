// Package app wires the screens into the root Bubble Tea program.
package app

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellcheck/internal/catalog"
	"github.com/abhisek/wellcheck/internal/logging"
	"github.com/abhisek/wellcheck/internal/router"
	"github.com/abhisek/wellcheck/internal/screen"
	"github.com/abhisek/wellcheck/internal/screens/home"
	"github.com/abhisek/wellcheck/internal/screens/welcome"
	"github.com/abhisek/wellcheck/internal/ui/layout"
)

// Options configures the interactive program.
type Options struct {
	Registry *catalog.Registry
	Logger   *slog.Logger

	// CatalogID, when set, skips the splash and opens that catalog's
	// questionnaire directly on top of the home screen.
	CatalogID string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	start  tea.Cmd
	width  int
	height int
}

// newAppModel builds the initial screen stack from opts.
func newAppModel(opts Options) (AppModel, error) {
	if opts.Registry == nil {
		return AppModel{}, fmt.Errorf("app: no catalog registry")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	homeScreen := func() screen.Screen { return home.New(opts.Registry, logger) }

	if opts.CatalogID == "" {
		return AppModel{router: router.New(welcome.New(homeScreen))}, nil
	}

	c, err := opts.Registry.Get(opts.CatalogID)
	if err != nil {
		return AppModel{}, err
	}
	first := home.Start(c, logger)
	return AppModel{
		router: router.New(homeScreen()),
		start:  func() tea.Msg { return router.PushScreenMsg{Screen: first} },
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	if m.start != nil {
		return m.start
	}
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.capturing() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// capturing reports whether the active screen wants every key.
func (m AppModel) capturing() bool {
	ic, ok := m.router.Active().(screen.InputCapturer)
	return ok && ic.CapturingInput()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.keyHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// keyHints prefers the active screen's own hints and always offers quit.
func (m AppModel) keyHints(active screen.Screen) []layout.KeyHint {
	quit := layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return append(kp.KeyHints(), quit)
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}, quit}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		quit,
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m, err := newAppModel(opts)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
