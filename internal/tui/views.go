package tui

import (
	"strings"

	"focusdo/internal/display"
)

// View implements tea.Model.
func (m Model) View() string {
	switch m.currentView {
	case viewAdd:
		return m.viewAdd()
	case viewList:
		return m.viewList()
	case viewFocus:
		return m.viewFocus()
	case viewDelete:
		return m.viewDelete()
	default:
		return m.viewMenu()
	}
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("FOCUSDO") + "\n")

	for i, item := range menuItems {
		line := "  " + item.label
		if i == m.cursor {
			line = selectedStyle.Render("> " + item.label)
		}
		b.WriteString(line + subtleStyle.Render("  ("+item.shortcut+")") + "\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status) + "\n")
		} else {
			b.WriteString(successStyle.Render(m.status) + "\n")
		}
	}

	b.WriteString("\n" + subtleStyle.Render("up/down to move, enter to select, q to quit"))
	return b.String()
}

func (m Model) viewAdd() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ADD TASK") + "\n")
	b.WriteString("Describe the task; deadline and priority are read from the text.\n\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(m.statusLine())
	b.WriteString(subtleStyle.Render("enter to add, esc to cancel"))
	return b.String()
}

// statusLine renders the transient status message, or nothing when unset.
func (m Model) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorStyle.Render(m.status) + "\n\n"
	}
	return successStyle.Render(m.status) + "\n\n"
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TASKS") + "\n")

	tasks := m.store.All()
	if len(tasks) == 0 {
		b.WriteString("No tasks.\n")
	} else {
		b.WriteString(display.TaskList(tasks))
	}

	b.WriteString("\n" + subtleStyle.Render("esc to go back"))
	return b.String()
}

func (m Model) viewFocus() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("FOCUS MODE") + "\n")

	tasks := m.store.Focus()
	if len(tasks) == 0 {
		b.WriteString("No high-priority tasks.\n")
	} else {
		b.WriteString(display.FocusList(tasks))
	}

	b.WriteString("\n" + subtleStyle.Render("esc to go back"))
	return b.String()
}

func (m Model) viewDelete() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("DELETE TASK") + "\n")
	b.WriteString(display.TaskList(m.store.All()))
	b.WriteString("\n" + m.input.View() + "\n\n")
	b.WriteString(m.statusLine())
	b.WriteString(subtleStyle.Render("enter to delete, esc to cancel"))
	return b.String()
}
