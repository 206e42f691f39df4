package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"focusdo/internal/display"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Show only high-priority tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _ := openStore()

		tasks := s.Focus()
		if len(tasks) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No high-priority tasks.")
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), display.FocusList(tasks))
		return nil
	},
}
