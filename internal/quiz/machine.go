// Package quiz implements the quiz session state machine: category
// selection, pool building, scoring and advancing. It renders nothing and
// is driven by a single goroutine.
package quiz

import (
	"context"
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/abhisek/mathquiz/internal/bank"
)

// SelectionStore persists the selected category IDs.
type SelectionStore interface {
	// Load returns the saved selection, or nil with no error when nothing
	// has been saved.
	Load(ctx context.Context) ([]string, error)

	// Save replaces the saved selection.
	Save(ctx context.Context, ids []string) error
}

// Option configures a Machine.
type Option func(*Machine)

// WithRand sets the random source used for shuffling.
func WithRand(r *rand.Rand) Option {
	return func(m *Machine) { m.rng = r }
}

// WithLogger sets the logger for storage warnings and session events.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// Machine owns the category selection and the active session.
// It is not safe for concurrent use.
type Machine struct {
	bank   *bank.Bank
	store  SelectionStore
	rng    *rand.Rand
	logger *log.Logger
	now    func() time.Time

	selected   []string
	session    *Session
	phase      Phase
	last       []string
	generation uint64
}

// New creates a Machine and loads the saved selection. A missing,
// unreadable or empty saved selection defaults to every category.
func New(ctx context.Context, b *bank.Bank, store SelectionStore, opts ...Option) *Machine {
	m := &Machine{
		bank:   b,
		store:  store,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger: log.New(io.Discard),
		now:    time.Now,
		phase:  PhaseSelecting,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.selected = b.LeafIDs()
	if store == nil {
		return m
	}

	saved, err := store.Load(ctx)
	if err != nil {
		m.logger.Warn("load category selection", "err", err)
		return m
	}
	if ids := m.known(saved); len(ids) > 0 {
		m.selected = ids
	}
	return m
}

// Bank returns the question bank.
func (m *Machine) Bank() *bank.Bank { return m.bank }

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Session returns the active session, or nil while selecting.
func (m *Machine) Session() *Session { return m.session }

// Generation changes on every Start, Advance and Reset. A delayed advance
// captured at one generation is void at any other.
func (m *Machine) Generation() uint64 { return m.generation }

// Selected returns the selected category IDs in bank order.
func (m *Machine) Selected() []string { return slices.Clone(m.selected) }

// IsSelected returns true if the category is selected.
func (m *Machine) IsSelected(id string) bool {
	return slices.Contains(m.selected, id)
}

// SetSelectedCategories replaces the selection. Unknown IDs are dropped.
// A non-empty selection is saved. An in-progress session is unaffected.
func (m *Machine) SetSelectedCategories(ids []string) {
	m.selected = m.known(ids)
	if len(m.selected) == 0 || m.store == nil {
		return
	}
	if err := m.store.Save(context.Background(), m.selected); err != nil {
		m.logger.Warn("save category selection", "err", err)
	}
}

// Toggle flips a single category.
func (m *Machine) Toggle(id string) {
	if !m.bank.IsLeaf(id) {
		return
	}
	if m.IsSelected(id) {
		m.SetSelectedCategories(slices.DeleteFunc(m.Selected(), func(s string) bool { return s == id }))
		return
	}
	m.SetSelectedCategories(append(m.Selected(), id))
}

// ToggleGroup selects every leaf of a group, or deselects them all if
// they are already all selected. On a leaf it behaves like Toggle.
func (m *Machine) ToggleGroup(id string) {
	children := m.bank.Children(id)
	if len(children) == 0 {
		return
	}
	all := true
	for _, c := range children {
		if !m.IsSelected(c) {
			all = false
			break
		}
	}
	next := m.Selected()
	if all {
		next = slices.DeleteFunc(next, func(s string) bool { return slices.Contains(children, s) })
	} else {
		next = append(next, children...)
	}
	m.SetSelectedCategories(next)
}

// GroupState reports how many of a group's leaves are selected.
func (m *Machine) GroupState(id string) (selected, total int) {
	children := m.bank.Children(id)
	for _, c := range children {
		if m.IsSelected(c) {
			selected++
		}
	}
	return selected, len(children)
}

// SelectAll selects every category.
func (m *Machine) SelectAll() {
	m.SetSelectedCategories(m.bank.LeafIDs())
}

// AvailableCount returns the pool size for the current selection.
func (m *Machine) AvailableCount() int {
	return m.bank.Count(m.selected)
}

// CanStart returns true if the current selection yields any questions.
func (m *Machine) CanStart() bool {
	return m.AvailableCount() > 0
}

// Start begins a session with every question in the given categories, in
// uniformly random order. Returns false and changes nothing if no question
// matches.
func (m *Machine) Start(categories []string) bool {
	cats := m.known(categories)
	pool := m.bank.Filter(cats)
	if len(pool) == 0 {
		return false
	}
	m.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	m.session = &Session{
		id:         uuid.NewString(),
		categories: cats,
		pool:       pool,
		startedAt:  m.now(),
	}
	m.last = cats
	m.phase = PhaseAwaitingAnswer
	m.generation++
	m.shuffleChoices()

	m.logger.Info("session started", "session", m.session.id, "questions", len(pool), "categories", cats)
	return true
}

// StartSelected starts a session with the current selection.
func (m *Machine) StartSelected() bool {
	return m.Start(m.selected)
}

// Restart starts a new session with the categories of the previous one,
// or with the current selection if there was none.
func (m *Machine) Restart() bool {
	if len(m.last) == 0 {
		return m.StartSelected()
	}
	return m.Start(m.last)
}

// SelectAnswer records the answer to the current question and scores it
// by exact text equality. Only the first call per question counts; later
// calls return false and change nothing.
func (m *Machine) SelectAnswer(choice string) bool {
	if m.phase != PhaseAwaitingAnswer {
		return false
	}
	s := m.session
	q, _ := s.Current()

	s.answer = choice
	s.answered = true
	if choice == q.Correct {
		s.score++
	}
	m.phase = PhaseRevealed
	return true
}

// Advance moves past a revealed answer to the next question, or finishes
// the session after the last one. Returns false outside PhaseRevealed.
func (m *Machine) Advance() bool {
	if m.phase != PhaseRevealed {
		return false
	}
	s := m.session
	s.index++
	s.answer = ""
	s.answered = false
	m.generation++

	if s.index < len(s.pool) {
		m.phase = PhaseAwaitingAnswer
		m.shuffleChoices()
		return true
	}

	s.index = len(s.pool)
	s.choices = nil
	s.finishedAt = m.now()
	m.phase = PhaseFinished
	m.logger.Info("session finished", "session", s.id, "score", s.score, "total", len(s.pool))
	return true
}

// AdvanceIfCurrent advances only if the machine is still at generation
// gen. Delayed advances use it so they cannot touch a later question or
// a replaced session.
func (m *Machine) AdvanceIfCurrent(gen uint64) bool {
	if gen != m.generation {
		return false
	}
	return m.Advance()
}

// Reset discards the session and returns to category selection. The
// selection itself is kept.
func (m *Machine) Reset() {
	if m.session == nil && m.phase == PhaseSelecting {
		return
	}
	m.session = nil
	m.phase = PhaseSelecting
	m.generation++
}

// Summary returns the score summary of the active session.
func (m *Machine) Summary() Summary {
	return BuildSummary(m.session, m.now())
}

// shuffleChoices builds a fresh uniformly shuffled choice list for the
// current question.
func (m *Machine) shuffleChoices() {
	q, ok := m.session.Current()
	if !ok {
		m.session.choices = nil
		return
	}
	choices := q.Answers()
	m.rng.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })
	m.session.choices = choices
}

// known filters ids to selectable categories, deduplicated, in bank order.
func (m *Machine) known(ids []string) []string {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []string
	for _, id := range m.bank.LeafIDs() {
		if want[id] {
			out = append(out, id)
		}
	}
	return out
}
