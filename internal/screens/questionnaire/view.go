package questionnaire

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellcheck/internal/report"
	"github.com/abhisek/wellcheck/internal/ui/components"
	"github.com/abhisek/wellcheck/internal/ui/layout"
	"github.com/abhisek/wellcheck/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	c := s.engine.Catalog()
	q := s.Question()
	sec, _ := c.Section(q.SectionID)

	leftWidth := width - 4
	if s.showScores && !layout.IsCompactWidth(width) {
		leftWidth = width * 3 / 5
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  %s", sec.Title)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("   question %d of %d", s.index+1, c.QuestionCount())))
	b.WriteString("\n")
	if sec.Description != "" {
		b.WriteString(theme.Hint.Render("  " + sec.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	s.choice.Width = leftWidth - 2
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.choice.View()))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorText.Render("  " + s.errMsg))
		b.WriteString("\n")
	}
	if s.engine.IsComplete() {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  All questions answered. Press f to see your results."))
		b.WriteString("\n")
	}

	var right string
	if s.showScores {
		right = s.renderScores(width - leftWidth - 2)
	}
	return layout.SplitColumns(b.String(), right, leftWidth, width)
}

// renderScores renders overall progress, per-section progress and the
// live percentage of every dimension the current question feeds.
func (s *Screen) renderScores(width int) string {
	c := s.engine.Catalog()
	p := s.engine.Progress()
	barWidth := max(width-8, 16)

	var b strings.Builder
	b.WriteString(theme.Selected.Render("Progress"))
	b.WriteString("\n")
	for _, sp := range p.Sections {
		b.WriteString(components.Progress(fmt.Sprintf("%-14s", truncate(sp.Title, 14)), sp.Answered, sp.Total, barWidth))
		b.WriteString("\n")
	}

	scores := s.engine.LiveScores()
	for _, dimID := range c.ContributesTo(s.Question()) {
		d, _ := c.Dimension(dimID)
		b.WriteString("\n")
		b.WriteString(theme.Selected.Render(d.Title))
		b.WriteString("\n")

		labelWidth := 0
		for _, cat := range d.Categories {
			labelWidth = max(labelWidth, len(cat))
		}
		for _, cat := range d.Categories {
			bar := components.NewBar(report.Title(cat), scores[dimID][cat], barWidth)
			bar.LabelWidth = labelWidth
			b.WriteString(bar.View())
			b.WriteString("\n")
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
