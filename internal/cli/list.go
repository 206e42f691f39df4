package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"focusdo/internal/display"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _ := openStore()

		tasks := s.All()
		if len(tasks) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), display.TaskList(tasks))
		return nil
	},
}
