package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellcheck/internal/ui/theme"
)

// ChoiceOption is one selectable answer.
type ChoiceOption struct {
	Key  string
	Text string
}

// Choice is a single-choice selector. The cursor moves with arrows or j/k;
// Enter or a number key chooses. Unlike a quiz, a choice can be changed any
// number of times.
type Choice struct {
	Prompt  string
	Options []ChoiceOption
	Cursor  int
	Chosen  string // key of the recorded answer, "" if none
	Width   int
}

// ChosenMsg is emitted when the user picks an option.
type ChosenMsg struct {
	Key string
}

// NewChoice creates a selector with the cursor on the current answer, if any.
func NewChoice(prompt string, options []ChoiceOption, chosen string) Choice {
	c := Choice{Prompt: prompt, Options: options, Chosen: chosen}
	for i, o := range options {
		if o.Key == chosen {
			c.Cursor = i
			break
		}
	}
	return c
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
		return c, nil
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
		return c, nil
	case "enter", "space":
		return c.choose(c.Cursor)
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(c.Options) {
		c.Cursor = n - 1
		return c.choose(c.Cursor)
	}
	return c, nil
}

func (c Choice) choose(i int) (Choice, tea.Cmd) {
	if i < 0 || i >= len(c.Options) {
		return c, nil
	}
	c.Chosen = c.Options[i].Key
	key := c.Chosen
	return c, func() tea.Msg { return ChosenMsg{Key: key} }
}

// View renders the prompt and options.
func (c Choice) View() string {
	var b strings.Builder

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if c.Width > 0 {
		prompt = prompt.Width(c.Width)
	}
	b.WriteString(prompt.Render(c.Prompt))
	b.WriteString("\n\n")

	for i, opt := range c.Options {
		cursor := "  "
		if i == c.Cursor {
			cursor = "▸ "
		}
		mark := " "
		if opt.Key == c.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%d) %s %s", cursor, i+1, mark, opt.Text)

		style := theme.Unselected
		switch {
		case i == c.Cursor:
			style = theme.Selected
		case opt.Key == c.Chosen:
			style = theme.Answered
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
