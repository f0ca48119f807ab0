package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"charm.land/bubbles/v2/key"

	"github.com/abhisek/mathquiz/internal/ui/theme"
)

// ChoiceList is a numbered answer list. Number keys pick directly, arrows
// move the cursor and Enter picks the highlighted choice. Once picked it
// ignores input until Reveal or a new list.
type ChoiceList struct {
	Options []string
	Cursor  int

	// Picked is the picked option index, or -1.
	Picked int

	revealed bool
	correct  string
}

// NewChoiceList creates a list over options.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{Options: options, Picked: -1}
}

// Update handles keyboard navigation and picking.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Picked >= 0 || c.revealed {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(kmsg, KeyUp):
		if c.Cursor > 0 {
			c.Cursor--
		}
	case key.Matches(kmsg, KeyDown):
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case key.Matches(kmsg, KeyEnter):
		if len(c.Options) > 0 {
			c.Picked = c.Cursor
		}
	default:
		s := kmsg.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < len(c.Options) {
				c.Cursor = i
				c.Picked = i
			}
		}
	}
	return c, nil
}

// PickedOption returns the picked answer text.
func (c ChoiceList) PickedOption() (string, bool) {
	if c.Picked < 0 || c.Picked >= len(c.Options) {
		return "", false
	}
	return c.Options[c.Picked], true
}

// Reveal marks the list answered. The correct option is highlighted and a
// wrong pick is marked.
func (c *ChoiceList) Reveal(chosen, correct string) {
	c.revealed = true
	c.correct = correct
	c.Picked = -1
	for i, opt := range c.Options {
		if opt == chosen {
			c.Picked = i
			break
		}
	}
}

// Revealed reports whether Reveal was called.
func (c ChoiceList) Revealed() bool { return c.revealed }

// View renders the choices.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor && !c.revealed {
			prefix = "▸ "
		}

		style := theme.Unselected
		mark := ""
		switch {
		case c.revealed && opt == c.correct:
			style = theme.Correct
			mark = "  ✓"
		case c.revealed && i == c.Picked:
			style = theme.Incorrect
			mark = "  ✗"
		case c.revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == c.Cursor:
			style = theme.Selected
		}

		b.WriteString(style.Render(fmt.Sprintf("%s%d)  ", prefix, i+1)))
		b.WriteString(RenderMath(opt, style))
		b.WriteString(style.Render(mark))
		b.WriteString("\n")
	}
	return b.String()
}
