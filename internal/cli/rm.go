package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"focusdo/internal/store"
)

var rmCmd = &cobra.Command{
	Use:   "rm <number>",
	Short: "Delete a task by its list number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("task number must be an integer, got %q", args[0])
		}

		s, _ := openStore()

		removed, err := s.Delete(n)
		if err != nil {
			if errors.Is(err, store.ErrInvalidIndex) {
				if s.Len() == 0 {
					return fmt.Errorf("no tasks to delete")
				}
				return fmt.Errorf("task number %d out of range (1-%d)", n, s.Len())
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", removed.RawText)
		return nil
	},
}
