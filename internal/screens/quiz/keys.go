package quiz

import (
	"strconv"

	"charm.land/bubbles/v2/key"

	"github.com/abhisek/mathquiz/internal/locale"
)

type keyMap struct {
	Answer   key.Binding
	Navigate key.Binding
	Continue key.Binding
	Back     key.Binding
}

func newKeyMap(s *locale.Strings) keyMap {
	return keyMap{
		Answer: answerBinding(4, s.KeyAnswer),
		Navigate: key.NewBinding(
			key.WithKeys("up", "down", "enter"),
			key.WithHelp("↑↓ Enter", s.KeySelect),
		),
		Continue: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("any key", s.KeyContinue),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", s.KeyBack),
		),
	}
}

// answerBinding covers the number keys for n choices. Only 1-9 are
// reachable by key.
func answerBinding(n int, help string) key.Binding {
	n = min(max(n, 1), 9)
	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(i + 1)
	}
	label := "1"
	if n > 1 {
		label = "1-" + strconv.Itoa(n)
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, help))
}
