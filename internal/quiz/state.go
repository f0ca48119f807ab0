package quiz

import (
	"slices"
	"time"

	"github.com/abhisek/mathquiz/internal/bank"
)

// Phase represents the current phase of the quiz.
type Phase int

const (
	PhaseSelecting      Phase = iota // Choosing categories, no session
	PhaseAwaitingAnswer              // Question shown, no answer yet
	PhaseRevealed                    // Answer recorded, feedback shown
	PhaseFinished                    // Pool exhausted, results shown
)

func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "selecting"
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseRevealed:
		return "revealed"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// InProgress returns true for the two question phases.
func (p Phase) InProgress() bool {
	return p == PhaseAwaitingAnswer || p == PhaseRevealed
}

// Session is one attempt at the quiz. It is mutated only by the Machine;
// callers get read-only access through its methods.
type Session struct {
	id         string
	categories []string
	pool       []bank.Question
	index      int
	score      int
	choices    []string
	answer     string
	answered   bool
	startedAt  time.Time
	finishedAt time.Time
}

// ID returns the session UUID.
func (s *Session) ID() string { return s.id }

// Categories returns the category IDs the pool was built from.
func (s *Session) Categories() []string { return slices.Clone(s.categories) }

// Pool returns the shuffled questions in play.
func (s *Session) Pool() []bank.Question { return slices.Clone(s.pool) }

// Len returns the pool length.
func (s *Session) Len() int { return len(s.pool) }

// Index returns the current position. It equals Len once finished.
func (s *Session) Index() int { return s.index }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Answered returns the number of questions with a recorded answer.
func (s *Session) Answered() int {
	if s.answered {
		return s.index + 1
	}
	return s.index
}

// Finished returns true once the pool is exhausted.
func (s *Session) Finished() bool { return s.index >= len(s.pool) }

// Current returns the question at the current position.
func (s *Session) Current() (bank.Question, bool) {
	if s.Finished() {
		return bank.Question{}, false
	}
	return s.pool[s.index], true
}

// Choices returns the current question's shuffled answer choices. The
// order is fixed until the session advances.
func (s *Session) Choices() []string { return slices.Clone(s.choices) }

// Answer returns the recorded answer for the current question.
func (s *Session) Answer() (string, bool) { return s.answer, s.answered }

// LastCorrect returns true if the recorded answer matches the current
// question's correct answer.
func (s *Session) LastCorrect() bool {
	q, ok := s.Current()
	return ok && s.answered && s.answer == q.Correct
}

// StartedAt returns when the session began.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Duration returns the elapsed time, frozen once finished.
func (s *Session) Duration(now time.Time) time.Duration {
	if !s.finishedAt.IsZero() {
		return s.finishedAt.Sub(s.startedAt)
	}
	return now.Sub(s.startedAt)
}
