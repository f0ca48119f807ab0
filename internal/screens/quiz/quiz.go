// Package quiz implements the question screen.
package quiz

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/bubbles/v2/key"

	"github.com/abhisek/mathquiz/internal/config"
	"github.com/abhisek/mathquiz/internal/locale"
	"github.com/abhisek/mathquiz/internal/quiz"
	"github.com/abhisek/mathquiz/internal/screen"
	"github.com/abhisek/mathquiz/internal/ui/components"
	"github.com/abhisek/mathquiz/internal/ui/layout"
)

// QuizScreen shows the current question of the active session.
type QuizScreen struct {
	machine *quiz.Machine
	strings *locale.Strings
	cfg     config.Config
	keys    keyMap

	choices components.ChoiceList
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the machine's active session.
func New(m *quiz.Machine, s *locale.Strings, cfg config.Config) *QuizScreen {
	q := &QuizScreen{
		machine: m,
		strings: s,
		cfg:     cfg,
		keys:    newKeyMap(s),
	}
	q.refresh()
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	s := q.machine.Session()
	if s == nil || s.Finished() {
		return ""
	}
	return fmt.Sprintf(q.strings.QuestionOf, s.Index()+1, s.Len())
}

func (q *QuizScreen) Status() string {
	s := q.machine.Session()
	if s == nil {
		return ""
	}
	return fmt.Sprintf(q.strings.Score, s.Score())
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.machine.Phase() == quiz.PhaseRevealed {
		if q.cfg.AutoAdvance() {
			return layout.HintsFor(q.keys.Back)
		}
		return layout.HintsFor(q.keys.Continue, q.keys.Back)
	}
	return layout.HintsFor(q.keys.Answer, q.keys.Navigate, q.keys.Back)
}

// refresh rebuilds the choice list for the current question.
func (q *QuizScreen) refresh() {
	s := q.machine.Session()
	if s == nil {
		q.choices = components.NewChoiceList(nil)
		return
	}
	q.choices = components.NewChoiceList(s.Choices())
	q.keys.Answer = answerBinding(len(s.Choices()), q.strings.KeyAnswer)
	if q.machine.Phase() == quiz.PhaseRevealed {
		current, _ := s.Current()
		answer, _ := s.Answer()
		q.choices.Reveal(answer, current.Correct)
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case autoAdvanceMsg:
		if q.machine.AdvanceIfCurrent(msg.generation) {
			q.refresh()
		}
		return q, nil

	case tea.KeyPressMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if key.Matches(msg, q.keys.Back) {
		q.machine.Reset()
		return q, nil
	}

	switch q.machine.Phase() {
	case quiz.PhaseRevealed:
		if q.cfg.AutoAdvance() {
			return q, nil
		}
		if q.machine.Advance() {
			q.refresh()
		}
		return q, nil

	case quiz.PhaseAwaitingAnswer:
		q.choices, _ = q.choices.Update(msg)
		choice, ok := q.choices.PickedOption()
		if !ok || !q.machine.SelectAnswer(choice) {
			return q, nil
		}
		current, _ := q.machine.Session().Current()
		q.choices.Reveal(choice, current.Correct)
		if q.cfg.AutoAdvance() {
			return q, autoAdvance(q.cfg.AdvanceDelay, q.machine.Generation())
		}
	}
	return q, nil
}

// autoAdvance schedules an advance for generation gen after delay.
func autoAdvance(delay time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return autoAdvanceMsg{generation: gen}
	})
}
