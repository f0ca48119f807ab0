// Package categories implements the category selection screen.
package categories

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"charm.land/bubbles/v2/key"

	"github.com/abhisek/mathquiz/internal/config"
	"github.com/abhisek/mathquiz/internal/locale"
	"github.com/abhisek/mathquiz/internal/quiz"
	"github.com/abhisek/mathquiz/internal/screen"
	"github.com/abhisek/mathquiz/internal/ui/components"
	"github.com/abhisek/mathquiz/internal/ui/layout"
	"github.com/abhisek/mathquiz/internal/ui/theme"
)

// CategoriesScreen lets the player pick categories and start a quiz.
type CategoriesScreen struct {
	machine   *quiz.Machine
	strings   *locale.Strings
	hierarchy config.Hierarchy
	keys      keyMap

	list     components.Checklist
	onButton bool
}

var _ screen.Screen = (*CategoriesScreen)(nil)
var _ screen.KeyHintProvider = (*CategoriesScreen)(nil)

// New creates a CategoriesScreen over the machine's current selection.
func New(m *quiz.Machine, s *locale.Strings, hierarchy config.Hierarchy) *CategoriesScreen {
	c := &CategoriesScreen{
		machine:   m,
		strings:   s,
		hierarchy: hierarchy,
		keys:      newKeyMap(s),
	}
	c.rebuild()
	return c
}

func (c *CategoriesScreen) Init() tea.Cmd {
	return nil
}

func (c *CategoriesScreen) Title() string {
	return c.strings.SelectCategories
}

func (c *CategoriesScreen) KeyHints() []layout.KeyHint {
	toggle, start := c.keys.Toggle, c.keys.Start
	toggle.SetEnabled(!c.onButton)
	start.SetEnabled(c.onButton && c.machine.CanStart())
	return layout.HintsFor(c.keys.Navigate, toggle, c.keys.All, c.keys.Focus, start, c.keys.Quit)
}

// nested reports whether groups are shown as a tree.
func (c *CategoriesScreen) nested() bool {
	return c.hierarchy == config.HierarchyNested && c.machine.Bank().Nested()
}

// rebuild refreshes the checklist rows from the machine selection,
// keeping the cursor position.
func (c *CategoriesScreen) rebuild() {
	b := c.machine.Bank()
	var items []components.ChecklistItem

	leaf := func(id, name string, depth int) components.ChecklistItem {
		state := components.Unchecked
		if c.machine.IsSelected(id) {
			state = components.Checked
		}
		return components.ChecklistItem{
			ID:     id,
			Label:  name,
			Detail: fmt.Sprintf("(%d)", b.CountIn(id)),
			Depth:  depth,
			State:  state,
		}
	}

	if c.nested() {
		for _, cat := range b.Categories() {
			if !cat.IsGroup() {
				items = append(items, leaf(cat.ID, cat.Name, 0))
				continue
			}
			sel, total := c.machine.GroupState(cat.ID)
			state := components.Partial
			switch sel {
			case 0:
				state = components.Unchecked
			case total:
				state = components.Checked
			}
			items = append(items, components.ChecklistItem{
				ID:     cat.ID,
				Label:  cat.Name,
				Detail: fmt.Sprintf("(%d)", b.CountIn(cat.ID)),
				State:  state,
			})
			for _, sub := range cat.Subcategories {
				items = append(items, leaf(sub.ID, sub.Name, 1))
			}
		}
	} else {
		for _, cat := range b.Leaves() {
			item := leaf(cat.ID, cat.Name, 0)
			// Flat rows name their group so split leaves stay recognizable.
			if group, ok := b.Category(b.Parent(cat.ID)); ok {
				item.Detail = group.Name + " " + item.Detail
			}
			items = append(items, item)
		}
	}

	cursor := c.list.Cursor
	c.list = components.Checklist{Items: items, Cursor: min(cursor, max(len(items)-1, 0))}
}

func (c *CategoriesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(kmsg, c.keys.Quit):
		return c, tea.Quit

	case key.Matches(kmsg, c.keys.All):
		c.machine.SelectAll()
		c.rebuild()

	case key.Matches(kmsg, c.keys.Focus):
		c.onButton = !c.onButton

	case c.onButton:
		if key.Matches(kmsg, components.KeyUp) {
			c.onButton = false
			break
		}
		_, cmd := c.startButton().Update(kmsg)
		return c, cmd

	case key.Matches(kmsg, components.KeyToggle), key.Matches(kmsg, c.keys.Start):
		c.toggleCurrent()

	case key.Matches(kmsg, components.KeyDown) && c.list.Cursor == len(c.list.Items)-1:
		c.onButton = true

	default:
		c.list, _ = c.list.Update(kmsg)
	}
	return c, nil
}

func (c *CategoriesScreen) toggleCurrent() {
	item, ok := c.list.Current()
	if !ok {
		return
	}
	if c.machine.Bank().IsLeaf(item.ID) {
		c.machine.Toggle(item.ID)
	} else {
		c.machine.ToggleGroup(item.ID)
	}
	c.rebuild()
}

func (c *CategoriesScreen) startButton() components.Button {
	count := c.machine.AvailableCount()
	btn := components.NewButton(fmt.Sprintf(c.strings.StartQuiz, count), c.start)
	btn.Focused = c.onButton
	btn.Disabled = count == 0
	return btn
}

// start begins a session over the current selection. The app notices the
// phase change and swaps screens.
func (c *CategoriesScreen) start() tea.Cmd {
	c.machine.StartSelected()
	return nil
}

func (c *CategoriesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(c.strings.SelectCategories))
	b.WriteString("\n\n")
	b.WriteString(c.list.View(!c.onButton))
	b.WriteString("\n")

	btn := c.startButton()
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, btn.View()))
	if btn.Disabled {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, theme.Hint.Render(c.strings.NoQuestions)))
	}

	return components.Center(components.Card(b.String(), cw), width, height)
}
