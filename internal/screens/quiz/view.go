package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquiz/internal/quiz"
	"github.com/abhisek/mathquiz/internal/ui/components"
	"github.com/abhisek/mathquiz/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	s := q.machine.Session()
	if s == nil {
		return ""
	}
	current, ok := s.Current()
	if !ok {
		return ""
	}

	cw := components.ContentWidth(width)
	var b strings.Builder

	// Position and score line.
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf(q.strings.QuestionOf, s.Index()+1, s.Len()))
	right := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf(q.strings.Score, s.Score()))
	gap := max(cw-lipgloss.Width(left)-lipgloss.Width(right), 1)
	b.WriteString(left + strings.Repeat(" ", gap) + right)
	b.WriteString("\n")

	b.WriteString(components.NewProgressBar("", s.Index(), s.Len(), cw).View())
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	b.WriteString(lipgloss.NewStyle().Width(cw).Render(components.RenderMath(current.Text, question)))
	b.WriteString("\n\n")

	b.WriteString(q.choices.View())

	if q.machine.Phase() == quiz.PhaseRevealed {
		b.WriteString("\n")
		b.WriteString(q.renderFeedback(s, current.Correct))
	}

	return components.Center(components.Card(b.String(), cw), width, height)
}

func (q *QuizScreen) renderFeedback(s *quiz.Session, correct string) string {
	var b strings.Builder
	if s.LastCorrect() {
		b.WriteString(theme.Correct.Render(q.strings.Correct))
	} else {
		b.WriteString(theme.Incorrect.Render(q.strings.Incorrect))
		b.WriteString("\n")
		b.WriteString(components.RenderMath(fmt.Sprintf(q.strings.CorrectWas, correct), theme.Body))
	}
	b.WriteString("\n\n")

	hint := q.strings.ContinueHint
	if q.cfg.AutoAdvance() {
		hint = q.strings.AutoAdvanceHint
	}
	b.WriteString(theme.Hint.Render(hint))
	return b.String()
}
