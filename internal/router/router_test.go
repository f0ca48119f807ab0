package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquiz/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
	next    screen.Screen
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	if s.next != nil {
		return s.next, nil
	}
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
	if s1.initRan {
		t.Error("New should not run Init() on the initial screen")
	}
}

func TestReplaceNil(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	if cmd := r.Replace(nil); cmd != nil {
		t.Error("expected nil cmd")
	}
	if r.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) != nil {
		t.Error("expected nil cmd with no active screen")
	}
	if got := r.View(10, 10); got != "" {
		t.Errorf("View = %q, want empty", got)
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	old := &stubScreen{title: "old"}
	cur := &stubScreen{title: "current"}
	r := New(old)
	r.Replace(cur)

	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if cur.updates != 1 || old.updates != 0 {
		t.Errorf("updates current=%d old=%d, want 1 and 0", cur.updates, old.updates)
	}
	if got := r.View(10, 10); got != "current" {
		t.Errorf("View = %q, want current", got)
	}
}

func TestUpdateKeepsReturnedScreen(t *testing.T) {
	next := &stubScreen{title: "next"}
	r := New(&stubScreen{title: "first", next: next})

	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if r.Active() != next {
		t.Errorf("expected the screen returned by Update to become active, got %q", r.Active().Title())
	}
}
