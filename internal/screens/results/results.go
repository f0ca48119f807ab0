// Package results implements the end-of-quiz screen.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquiz/internal/locale"
	"github.com/abhisek/mathquiz/internal/quiz"
	"github.com/abhisek/mathquiz/internal/screen"
	"github.com/abhisek/mathquiz/internal/ui/components"
	"github.com/abhisek/mathquiz/internal/ui/layout"
	"github.com/abhisek/mathquiz/internal/ui/theme"
)

// ResultsScreen displays the final score and offers a new round.
type ResultsScreen struct {
	machine *quiz.Machine
	strings *locale.Strings
	summary quiz.Summary
	menu    components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for the machine's finished session.
func New(m *quiz.Machine, s *locale.Strings) *ResultsScreen {
	r := &ResultsScreen{
		machine: m,
		strings: s,
		summary: m.Summary(),
	}
	r.menu = components.NewMenu([]components.MenuItem{
		{Label: s.ReturnToMenu, Action: func() tea.Cmd { m.Reset(); return nil }},
		{Label: s.Restart, Action: func() tea.Cmd { m.Restart(); return nil }},
	})
	return r
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return r.strings.QuizComplete
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: r.strings.KeyNavigate},
		{Key: "Enter", Description: r.strings.KeySelect},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

// Verdict returns the localized verdict line.
func Verdict(s *locale.Strings, v quiz.Verdict) string {
	switch v {
	case quiz.VerdictPerfect:
		return s.Perfect
	case quiz.VerdictExcellent:
		return s.Excellent
	case quiz.VerdictGood:
		return s.Good
	default:
		return s.KeepPracticing
	}
}

func (r *ResultsScreen) View(width, height int) string {
	sum := r.summary
	cw := components.ContentWidth(width)
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(cw, lipgloss.Center, s)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(r.strings.QuizComplete))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%d/%d", sum.Score, sum.Total))))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(fmt.Sprintf("%.1f%%", sum.Percent))))
	b.WriteString("\n\n")

	verdictStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	if sum.Verdict == quiz.VerdictPerfect {
		verdictStyle = theme.Correct
	}
	b.WriteString(center(verdictStyle.Render(Verdict(r.strings, sum.Verdict))))
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(theme.Hint.Render(fmt.Sprintf("%d:%02d", mins, secs))))
	b.WriteString("\n\n")

	b.WriteString(r.menu.View())

	return components.Center(components.Card(b.String(), cw), width, height)
}
