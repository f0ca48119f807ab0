package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathquiz/internal/locale"
	"github.com/abhisek/mathquiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "mathquiz",
	Short:        "Multiple-choice math quiz for the terminal",
	Long:         "mathquiz: pick categories, answer shuffled multiple-choice questions and see how you scored.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Question bank file, YAML or JSON (overrides MATHQUIZ_BANK env var)")
	rootCmd.PersistentFlags().String("lang", "", "UI language, one of "+supportedLangs()+" (overrides MATHQUIZ_LANG and LANG)")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// supportedLangs lists the locales with a string table, e.g. "en, es".
func supportedLangs() string {
	tags := locale.Supported()
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the preference store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
