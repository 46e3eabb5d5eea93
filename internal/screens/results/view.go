package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellcheck/internal/report"
	"github.com/abhisek/wellcheck/internal/ui/components"
	"github.com/abhisek/wellcheck/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	lines := strings.Split(s.render(min(width-4, 90)), "\n")

	footer := s.renderFooter()
	avail := max(height-lipgloss.Height(footer)-1, 1)
	maxScroll := max(len(lines)-avail, 0)
	s.scroll = min(s.scroll, maxScroll)
	visible := lines[s.scroll:min(s.scroll+avail, len(lines))]

	body := lipgloss.NewStyle().PaddingLeft(2).Render(strings.Join(visible, "\n"))
	if footer == "" {
		return body
	}
	return body + "\n" + footer
}

func (s *Screen) renderFooter() string {
	switch {
	case s.exporting:
		return "  " + theme.Hint.Render("Export to (.txt, .json, .html or .xlsx):") + "\n  " + s.input.View()
	case s.status != "":
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if s.failed {
			style = theme.ErrorText
		}
		return "  " + style.Render(s.status)
	}
	return ""
}

func (s *Screen) render(width int) string {
	sum := s.summary
	var b strings.Builder

	heading := "Your results"
	if !sum.Complete {
		heading = fmt.Sprintf("Partial results (%d of %d answered)", sum.Answered, sum.Total)
	}
	b.WriteString(theme.Selected.Render(heading))
	b.WriteString("\n\n")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1).
		Width(width)
	title := "Constitution"
	if sum.Constitution.Determined {
		title += ": " + report.Title(sum.Constitution.Type)
	}
	b.WriteString(card.Render(theme.Dominant.Render(title) + "\n" + sum.Constitution.Description))
	b.WriteString("\n")

	for _, d := range sum.Dimensions {
		b.WriteString("\n")
		b.WriteString(theme.Selected.Render(d.Title))
		b.WriteString("\n")
		labelWidth := 0
		for _, sc := range d.Scores {
			labelWidth = max(labelWidth, len(sc.Category))
		}
		for _, sc := range d.Scores {
			bar := components.NewBar(report.Title(sc.Category), sc.Percent, min(width, 60))
			bar.LabelWidth = labelWidth
			bar.Highlight = sc.Category == d.Dominant
			b.WriteString(bar.View())
			b.WriteString("\n")
		}
		if d.Interpretation != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(width).Render(d.Interpretation))
			b.WriteString("\n")
		}
	}

	if len(sum.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Selected.Render("Recommendations"))
		b.WriteString("\n")
		for _, r := range sum.Recommendations {
			b.WriteString(theme.Answered.Render(report.Title(r.Kind)))
			b.WriteString("\n")
			for _, item := range r.Items {
				b.WriteString(theme.Body.Width(width).Render("  • " + item))
				b.WriteString("\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
