package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervet/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// ChoiceList is an answer selector for one multiple-choice question.
// Unlike a reveal-style quiz widget it never shows correctness; it only
// tracks which option the candidate has picked, and the pick can be
// changed any number of times.
type ChoiceList struct {
	Options []string
	Cursor  int
	Chosen  int // -1 when nothing picked yet
}

// NewChoiceList creates a choice list with no option picked.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{
		Options: options,
		Cursor:  0,
		Chosen:  -1,
	}
}

// SetChosen restores a previous pick by option text. Used when
// navigating back to an already answered question.
func (c *ChoiceList) SetChosen(option string) {
	c.Chosen = -1
	for i, opt := range c.Options {
		if opt == option {
			c.Chosen = i
			c.Cursor = i
			return
		}
	}
}

// Update handles keyboard navigation and selection. It returns true
// when the pick changed this update.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", " ":
		if len(c.Options) > 0 {
			c.Chosen = c.Cursor
			return c, true
		}
	default:
		// Direct letter keys jump and pick in one stroke.
		key := kmsg.String()
		if len(key) == 1 {
			idx := -1
			if key[0] >= 'a' && key[0] <= 'f' {
				idx = int(key[0] - 'a')
			} else if key[0] >= '1' && key[0] <= '9' {
				idx = int(key[0] - '1')
			}
			if idx >= 0 && idx < len(c.Options) {
				c.Cursor = idx
				c.Chosen = idx
				return c, true
			}
		}
	}

	return c, false
}

// ChosenOption returns the picked option text, empty when none.
func (c ChoiceList) ChosenOption() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen]
}

// View renders the option list.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		marker := " "
		if i == c.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
