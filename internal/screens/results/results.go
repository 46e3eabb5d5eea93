// Package results is the screen that shows a finalized assessment and
// exports it as a report file.
package results

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wellcheck/internal/assessment"
	"github.com/abhisek/wellcheck/internal/report"
	"github.com/abhisek/wellcheck/internal/router"
	"github.com/abhisek/wellcheck/internal/screen"
	"github.com/abhisek/wellcheck/internal/ui/components"
	"github.com/abhisek/wellcheck/internal/ui/layout"
)

// exportDoneMsg reports the outcome of writing a report file.
type exportDoneMsg struct {
	path string
	err  error
}

// Screen displays a result summary.
type Screen struct {
	engine    *assessment.Engine
	summary   *assessment.ResultSummary
	logger    *slog.Logger
	retake    func() screen.Screen
	scroll    int
	exporting bool
	input     components.TextInput
	status    string
	failed    bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.InputCapturer = (*Screen)(nil)

// New creates a results screen. retake builds the screen shown after the
// engine is reset; nil disables retaking.
func New(engine *assessment.Engine, summary *assessment.ResultSummary, logger *slog.Logger, retake func() screen.Screen) *Screen {
	return &Screen{
		engine:  engine,
		summary: summary,
		logger:  logger,
		retake:  retake,
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Results"
}

func (s *Screen) Status() string {
	if s.summary.Complete {
		return "complete"
	}
	return fmt.Sprintf("%d/%d answered", s.summary.Answered, s.summary.Total)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.exporting {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "e", Description: "Export"},
	}
	if s.retake != nil {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Retake"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
}

func (s *Screen) CapturingInput() bool {
	return s.exporting
}

// DefaultExportPath is the suggested file name for a text export.
func (s *Screen) DefaultExportPath() string {
	return fmt.Sprintf("wellcheck-%s.%s", s.summary.CatalogID, report.FormatText.Extension())
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if done, ok := msg.(exportDoneMsg); ok {
		if done.err != nil {
			s.logger.Error("export failed", "path", done.path, "error", done.err)
			s.input.SetStatus(done.err.Error(), true)
			return s, nil
		}
		s.logger.Info("report exported", "path", done.path)
		s.exporting = false
		s.status, s.failed = "Saved "+done.path, false
		return s, nil
	}

	if s.exporting {
		return s.updateExport(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		s.scroll = max(s.scroll-1, 0)
	case "down", "j":
		s.scroll++
	case "e":
		s.exporting = true
		s.status = ""
		s.input = components.NewTextInput(s.DefaultExportPath(), 120)
		return s, s.input.Init()
	case "r":
		if s.retake == nil {
			return s, nil
		}
		s.engine.Reset()
		s.logger.Info("assessment restarted", "catalog", s.summary.CatalogID)
		next := s.retake()
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *Screen) updateExport(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.exporting = false
			return s, nil
		case "enter":
			path := s.input.Value()
			if path == "" {
				path = s.DefaultExportPath()
			}
			return s, exportCmd(path, s.summary)
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// exportCmd writes the summary to path in the format its extension names.
func exportCmd(path string, summary *assessment.ResultSummary) tea.Cmd {
	return func() tea.Msg {
		return exportDoneMsg{path: path, err: Export(path, summary)}
	}
}

// Export renders summary to a file, picking the format from the extension.
func Export(path string, summary *assessment.ResultSummary) error {
	format, err := report.FormatFromPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.Render(f, format, report.NewDocument(summary)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
