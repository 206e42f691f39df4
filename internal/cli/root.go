// Package cli implements the scriptable command surface. Every command maps
// to exactly one store operation.
package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"focusdo/internal/config"
	"focusdo/internal/store"
	"focusdo/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "focusdo",
	Short:   "Personal task tracker that reads deadlines and priorities from plain text",
	Long:    `Focusdo turns free-form task descriptions like "submit report within 3 days, urgent" into structured tasks with a deadline and a priority, and keeps them in a local JSON file. Run without arguments for the interactive menu.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(focusCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the console logger used by the CLI commands.
func newLogger(level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: false,
		Prefix:          "focusdo",
	})
}

// openStore loads configuration and opens the task store, surfacing load
// anomalies as warnings rather than failures.
func openStore() (*store.Store, *log.Logger) {
	cfg, err := config.Load()
	logger := newLogger(cfg.LogLevel)
	if err != nil {
		logger.Warn("ignoring config file", "err", err)
	}

	s, info := store.Open(cfg.DataFile)
	if info.Corrupt {
		logger.Warn("data file unreadable, starting with an empty list", "path", cfg.DataFile)
	}
	if info.Skipped > 0 {
		logger.Warn("dropped records with unknown schema", "count", info.Skipped)
	}
	return s, logger
}
