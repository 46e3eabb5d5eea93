package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellcheck/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with wellcheck styling and a status
// line for the result of submitting it.
type TextInput struct {
	Model    textinput.Model
	MaxWidth int
	status   string
	failed   bool
}

// NewTextInput creates a focused text input.
func NewTextInput(placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input followed by the status line, if any.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.status != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		mark := "✓ "
		if t.failed {
			style = lipgloss.NewStyle().Foreground(theme.Error)
			mark = "✗ "
		}
		view += "\n" + style.Render(mark+t.status)
	}
	return view
}

// Value returns the trimmed input value.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// SetStatus shows the outcome of a submission under the input.
func (t *TextInput) SetStatus(msg string, failed bool) {
	t.status = msg
	t.failed = failed
}
