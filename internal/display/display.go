// Package display renders task lists for the terminal. It is shared by the
// CLI commands and the interactive views so both surfaces look the same.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"focusdo/internal/task"
)

var (
	highColor   = lipgloss.Color("#FF6B6B")
	mediumColor = lipgloss.Color("#F5D573")
	lowColor    = lipgloss.Color("#6C6C6C")

	numberStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))

	highStyle   = lipgloss.NewStyle().Bold(true).Foreground(highColor)
	mediumStyle = lipgloss.NewStyle().Foreground(mediumColor)
	lowStyle    = lipgloss.NewStyle().Foreground(lowColor)
)

const divider = "────────────────────────────────────────────────────────────"

// PriorityBadge returns the upper-cased priority, colored by level.
func PriorityBadge(priority string) string {
	label := strings.ToUpper(priority)
	switch priority {
	case task.PriorityHigh:
		return highStyle.Render(label)
	case task.PriorityLow:
		return lowStyle.Render(label)
	default:
		return mediumStyle.Render(label)
	}
}

// TaskList renders tasks as a numbered list with deadline and priority lines.
// Numbering starts at 1 and follows the order given.
func TaskList(tasks []task.Task) string {
	var b strings.Builder
	b.WriteString(divider + "\n")
	for i, t := range tasks {
		b.WriteString(fmt.Sprintf("%s %s\n", numberStyle.Render(fmt.Sprintf("%d.", i+1)), t.RawText))
		b.WriteString(fmt.Sprintf("   %s %s\n", labelStyle.Render("Deadline :"), t.Deadline))
		b.WriteString(fmt.Sprintf("   %s %s\n", labelStyle.Render("Priority :"), PriorityBadge(t.Priority)))
		b.WriteString(divider + "\n")
	}
	return b.String()
}

// FocusList renders only the essentials for heads-down work: number, text,
// deadline. Priority is implied, every entry is high.
func FocusList(tasks []task.Task) string {
	var b strings.Builder
	b.WriteString(divider + "\n")
	for i, t := range tasks {
		b.WriteString(fmt.Sprintf("%s %s\n", numberStyle.Render(fmt.Sprintf("%d.", i+1)), t.RawText))
		b.WriteString(fmt.Sprintf("   %s %s\n", labelStyle.Render("Deadline :"), t.Deadline))
		b.WriteString(divider + "\n")
	}
	return b.String()
}

// Added formats the confirmation line for a newly added task, echoing what
// the parser inferred.
func Added(t task.Task) string {
	return fmt.Sprintf("Added: %s (deadline: %s, priority: %s)", t.RawText, t.Deadline, t.Priority)
}
