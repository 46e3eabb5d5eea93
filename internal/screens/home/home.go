// Package home is the catalog picker shown at startup.
package home

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellcheck/internal/assessment"
	"github.com/abhisek/wellcheck/internal/catalog"
	"github.com/abhisek/wellcheck/internal/router"
	"github.com/abhisek/wellcheck/internal/screen"
	"github.com/abhisek/wellcheck/internal/screens/questionnaire"
	"github.com/abhisek/wellcheck/internal/screens/welcome"
	"github.com/abhisek/wellcheck/internal/ui/components"
	"github.com/abhisek/wellcheck/internal/ui/theme"
)

// HomeScreen lists the registered catalogs.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen with one entry per catalog plus Quit.
func New(reg *catalog.Registry, logger *slog.Logger) *HomeScreen {
	var items []components.MenuItem
	for _, c := range reg.All() {
		items = append(items, components.MenuItem{
			Label:  c.Title,
			Detail: fmt.Sprintf("%d questions in %d sections", c.QuestionCount(), len(c.Sections)),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: Start(c, logger)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &HomeScreen{menu: components.NewMenu(items)}
}

// Start creates a fresh engine for c and returns its questionnaire.
func Start(c *catalog.Catalog, logger *slog.Logger) screen.Screen {
	engine := assessment.NewEngine()
	engine.Initialize(c)
	logger.Info("assessment started", "catalog", c.ID)
	return questionnaire.New(engine, logger)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	sections := []string{
		center.Render(welcome.RenderBanner(width)),
		center.Render(theme.Hint.Render("Constitution self-assessments for Ayurveda, TCM and more")),
		center.Render(theme.Card.Render(strings.TrimRight(h.menu.View(), "\n"))),
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
