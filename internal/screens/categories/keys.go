package categories

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/mathquiz/internal/locale"
	"github.com/abhisek/mathquiz/internal/ui/components"
)

type keyMap struct {
	Navigate key.Binding
	Toggle   key.Binding
	All      key.Binding
	Focus    key.Binding
	Start    key.Binding
	Quit     key.Binding
}

func newKeyMap(s *locale.Strings) keyMap {
	return keyMap{
		Navigate: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑↓", s.KeyNavigate),
		),
		Toggle: key.NewBinding(
			key.WithKeys(components.KeyToggle.Keys()...),
			key.WithHelp("Space", s.KeyToggle),
		),
		All: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("A", s.SelectAll),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("Tab", s.KeyStart),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", s.KeySelect),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("Q", s.KeyQuit),
		),
	}
}
