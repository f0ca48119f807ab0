package cmd

import (
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/abhisek/mathquiz/internal/app"
	"github.com/abhisek/mathquiz/internal/bank"
	"github.com/abhisek/mathquiz/internal/config"
	"github.com/abhisek/mathquiz/internal/locale"
	"github.com/abhisek/mathquiz/internal/quiz"
	"github.com/abhisek/mathquiz/internal/store"
	"github.com/spf13/cobra"
)

const debugLogFile = "mathquiz-debug.log"

// addPlayFlags registers the quiz variant flags on cmd.
func addPlayFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("advance", "", "Advance policy after an answer: continue or auto (overrides MATHQUIZ_ADVANCE)")
	f.Duration("delay", 0, "Reveal duration before auto-advance, e.g. 1.5s (overrides MATHQUIZ_ADVANCE_DELAY)")
	f.String("hierarchy", "", "Category display: flat or nested (overrides MATHQUIZ_HIERARCHY)")
	f.Bool("no-save", false, "Do not read or write the saved category selection")
}

// configFlags maps config keys to the flag names that override them.
var configFlags = map[string]string{
	config.KeyAdvance:      "advance",
	config.KeyAdvanceDelay: "delay",
	config.KeyHierarchy:    "hierarchy",
	config.KeyLang:         "lang",
	config.KeyBank:         "bank",
}

// loadConfig layers the flags set on cmd over env vars and defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := config.NewViper()
	for key, name := range configFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return config.Config{}, fmt.Errorf("bind --%s: %w", name, err)
		}
	}

	cfg := config.FromViper(v)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadBank returns the configured bank, or the embedded one.
func loadBank(cfg config.Config) (*bank.Bank, error) {
	if cfg.BankPath == "" {
		return bank.Default(), nil
	}
	b, err := bank.Load(cfg.BankPath)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	return b, nil
}

// selectionStore returns the persistent selection store, falling back to
// an in-memory one when saving is disabled or the database is unavailable.
// The returned close func is never nil.
func selectionStore(cmd *cobra.Command) (quiz.SelectionStore, func()) {
	if noSave, _ := cmd.Flags().GetBool("no-save"); noSave {
		return &store.MemorySelectionStore{}, func() {}
	}
	st, err := openStore(cmd)
	if err != nil {
		stderrLogger(cmd).Warn("category selection will not be saved", "err", err)
		return &store.MemorySelectionStore{}, func() {}
	}
	return st.SelectionStore(), func() { st.Close() }
}

// runApp resolves configuration, builds the machine, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	b, err := loadBank(cfg)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard)
	if cfg.Debug {
		logger = log.NewWithOptions(io.Discard, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
		})
		f, err := tea.LogToFileWith(debugLogFile, "mathquiz", logger)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	}

	sel, closeStore := selectionStore(cmd)
	defer closeStore()

	machine := quiz.New(cmd.Context(), b, sel, quiz.WithLogger(logger))
	ui := locale.Match(cfg.Lang)
	logger.Debug("starting",
		"lang", ui.Tag, "advance", cfg.Advance, "hierarchy", cfg.Hierarchy, "categories", machine.Selected())

	return app.Run(machine, cfg, ui)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// stderrLogger reports problems the quiz can recover from before the TUI
// takes over the terminal.
func stderrLogger(cmd *cobra.Command) *log.Logger {
	return log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "mathquiz"})
}

func init() {
	addPlayFlags(playCmd)
}
