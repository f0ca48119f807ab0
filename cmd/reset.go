package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved category selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SelectionStore().Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear selection: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved category selection cleared.")
		return nil
	},
}
