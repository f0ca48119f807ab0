package cmd

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/mathquiz/internal/bank"
	"github.com/abhisek/mathquiz/internal/mathtext"
	"github.com/abhisek/mathquiz/internal/quiz"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with question counts and the saved selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		b, err := loadBank(cfg)
		if err != nil {
			return err
		}

		sel, closeStore := selectionStore(cmd)
		defer closeStore()
		m := quiz.New(cmd.Context(), b, sel)

		return printCategories(cmd.OutOrStdout(), b, m)
	},
}

// printCategories writes one row per category. Selected leaves are
// marked with "*"; groups show how many of their leaves are selected.
func printCategories(out io.Writer, b *bank.Bank, m *quiz.Machine) error {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		Headers("", "ID", "NAME", "QUESTIONS", "DESCRIPTION")

	row := func(indent string, c bank.Category) {
		mark := ""
		if m.IsSelected(c.ID) {
			mark = "*"
		} else if !b.IsLeaf(c.ID) {
			if sel, total := m.GroupState(c.ID); sel == total {
				mark = "*"
			} else if sel > 0 {
				mark = "-"
			}
		}
		t.Row(mark, indent+c.ID, c.Name, strconv.Itoa(b.CountIn(c.ID)), mathtext.Strip(c.Description))
	}

	for _, c := range b.Categories() {
		row("", c)
		for _, sub := range c.Subcategories {
			row("  ", sub)
		}
	}
	t.Row("", "", "selected", strconv.Itoa(m.AvailableCount()), "")

	_, err := fmt.Fprintln(out, t.Render())
	return err
}

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Question bank tools",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a question bank file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d categories, %d questions)\n",
			args[0], len(b.Leaves()), len(b.Questions()))
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankValidateCmd)
	categoriesCmd.Flags().Bool("no-save", false, "Ignore the saved category selection")
}

