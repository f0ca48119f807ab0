// Package app wires the quiz machine to the Bubble Tea screens.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquiz/internal/config"
	"github.com/abhisek/mathquiz/internal/locale"
	"github.com/abhisek/mathquiz/internal/quiz"
	"github.com/abhisek/mathquiz/internal/router"
	"github.com/abhisek/mathquiz/internal/screen"
	"github.com/abhisek/mathquiz/internal/screens/categories"
	quizscreen "github.com/abhisek/mathquiz/internal/screens/quiz"
	"github.com/abhisek/mathquiz/internal/screens/results"
	"github.com/abhisek/mathquiz/internal/ui/layout"
)

// view identifies which screen matches a machine phase.
type view int

const (
	viewCategories view = iota
	viewQuiz
	viewResults
)

func viewFor(p quiz.Phase) view {
	switch p {
	case quiz.PhaseAwaitingAnswer, quiz.PhaseRevealed:
		return viewQuiz
	case quiz.PhaseFinished:
		return viewResults
	default:
		return viewCategories
	}
}

// AppModel is the root Bubble Tea model. The active screen always follows
// the machine phase.
type AppModel struct {
	machine *quiz.Machine
	strings *locale.Strings
	cfg     config.Config

	router  *router.Router
	view    view
	session string
	width   int
	height  int
}

// New creates an AppModel over m. The first screen matches the current
// phase.
func New(m *quiz.Machine, cfg config.Config, s *locale.Strings) AppModel {
	a := AppModel{
		machine: m,
		strings: s,
		cfg:     cfg,
		view:    viewFor(m.Phase()),
	}
	a.session = a.sessionID()
	a.router = router.New(a.screenFor(a.view))
	return a
}

func (m AppModel) sessionID() string {
	if s := m.machine.Session(); s != nil {
		return s.ID()
	}
	return ""
}

func (m AppModel) screenFor(v view) screen.Screen {
	switch v {
	case viewQuiz:
		return quizscreen.New(m.machine, m.strings, m.cfg)
	case viewResults:
		return results.New(m.machine, m.strings)
	default:
		return categories.New(m.machine, m.strings, m.cfg.Hierarchy)
	}
}

// sync swaps the active screen when the phase or session changed.
func (m *AppModel) sync() tea.Cmd {
	v := viewFor(m.machine.Phase())
	id := m.sessionID()
	if v == m.view && id == m.session {
		return nil
	}
	m.view = v
	m.session = id
	return m.router.Replace(m.screenFor(v))
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	syncCmd := m.sync()
	return m, tea.Batch(cmd, syncCmd)
}

// Active returns the active screen.
func (m AppModel) Active() screen.Screen {
	return m.router.Active()
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}

	header := layout.RenderHeader(m.strings.AppName, title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: m.strings.KeyQuit})

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(m *quiz.Machine, cfg config.Config, s *locale.Strings) error {
	p := tea.NewProgram(New(m, cfg, s))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
