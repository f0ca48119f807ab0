package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/bubbles/v2/key"

	"github.com/abhisek/mathquiz/internal/ui/theme"
)

// CheckState is the check mark shown next to an item.
type CheckState int

const (
	Unchecked CheckState = iota
	Partial
	Checked
)

// ChecklistItem is one row of a Checklist.
type ChecklistItem struct {
	ID     string
	Label  string
	Detail string
	Depth  int
	State  CheckState
}

// Checklist is a cursor over a list of checkable rows. Toggling is left to
// the owner, which reads Current and rebuilds Items.
type Checklist struct {
	Items  []ChecklistItem
	Cursor int
}

// Toggle binding used by the checklist owner.
var KeyToggle = key.NewBinding(
	key.WithKeys("space", " "),
	key.WithHelp("Space", "Toggle"),
)

// Update moves the cursor.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
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
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	}
	return c, nil
}

// Current returns the item under the cursor.
func (c Checklist) Current() (ChecklistItem, bool) {
	if c.Cursor < 0 || c.Cursor >= len(c.Items) {
		return ChecklistItem{}, false
	}
	return c.Items[c.Cursor], true
}

// View renders the list. When focused is false no cursor is drawn.
func (c Checklist) View(focused bool) string {
	var b strings.Builder
	for i, item := range c.Items {
		prefix := "  "
		style := theme.Unselected
		if focused && i == c.Cursor {
			prefix = "▸ "
			style = theme.Selected
		}

		box := "[ ]"
		switch item.State {
		case Checked:
			box = "[x]"
		case Partial:
			box = "[-]"
		}

		line := prefix + strings.Repeat("  ", item.Depth) + box + " " + item.Label
		b.WriteString(style.Render(line))
		if item.Detail != "" {
			b.WriteString(theme.Hint.Render("  " + item.Detail))
		}
		b.WriteString("\n")
	}
	return b.String()
}
