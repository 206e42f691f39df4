package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"focusdo/internal/display"
	"focusdo/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a task described in plain language",
	Long:  `Add a task. Deadline phrases ("tomorrow", "within 3 days", "by friday") and priority cues ("urgent", "asap", "not important") are picked up from the text.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _ := openStore()

		added, err := s.Add(strings.Join(args, " "))
		if err != nil {
			if errors.Is(err, store.ErrEmptyTask) {
				return fmt.Errorf("task cannot be empty")
			}
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), display.Added(added))
		return nil
	},
}
