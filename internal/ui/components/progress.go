package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellcheck/internal/ui/theme"
)

// Bar is a horizontal percentage bar with a fixed-width label column.
type Bar struct {
	Label      string
	LabelWidth int
	Percent    int // 0-100
	Width      int // total width including label and percentage
	Highlight  bool
}

// NewBar creates a bar.
func NewBar(label string, percent, width int) Bar {
	return Bar{Label: label, LabelWidth: lipgloss.Width(label), Percent: percent, Width: width}
}

// View renders the bar.
func (b Bar) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(b.LabelWidth)
	fill := theme.Secondary
	if b.Highlight {
		labelStyle = labelStyle.Foreground(theme.Accent).Bold(true)
		fill = theme.Accent
	}

	label := ""
	if b.Label != "" {
		label = labelStyle.Render(b.Label) + "  "
	}
	const percentWidth = 6 // "  100%"

	barWidth := max(b.Width-lipgloss.Width(label)-percentWidth, 4)
	filled := min(max(barWidth*b.Percent/100, 0), barWidth)

	return label +
		lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%5d%%", b.Percent))
}

// Progress renders "answered/total" with a thin bar, used for overall and
// per-section progress.
func Progress(label string, answered, total, width int) string {
	pct := 0
	if total > 0 {
		pct = answered * 100 / total
	}
	bar := NewBar(label, pct, width)
	if total > 0 && answered == total {
		bar.Highlight = true
	}
	return bar.View() + lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %d/%d", answered, total))
}
