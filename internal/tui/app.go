// Package tui implements the interactive menu. One screen per store
// operation, all state in a single Bubble Tea model.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"focusdo/internal/config"
	"focusdo/internal/display"
	"focusdo/internal/store"
)

// view represents the different screens in the TUI.
type view int

const (
	viewMenu view = iota
	viewAdd
	viewList
	viewFocus
	viewDelete
)

// menuItem is one entry on the main menu.
type menuItem struct {
	label    string
	shortcut string
}

var menuItems = []menuItem{
	{label: "Add Task", shortcut: "a"},
	{label: "View Tasks", shortcut: "v"},
	{label: "Delete Task", shortcut: "d"},
	{label: "Focus Mode", shortcut: "f"},
	{label: "Quit", shortcut: "q"},
}

// Model is the Bubble Tea model for the whole application.
type Model struct {
	store *store.Store

	currentView view
	cursor      int
	input       textinput.Model

	// status is a transient confirmation or error line shown on the menu.
	status    string
	statusErr bool

	// saveErr aborts the program; the store and the file may disagree.
	saveErr error

	width  int
	height int
}

// NewModel builds the model for an opened store. Load anomalies surface as a
// status line instead of log output, since the TUI owns the terminal.
func NewModel(s *store.Store, info store.LoadInfo) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 60

	m := Model{store: s, currentView: viewMenu, input: ti}
	if info.Corrupt {
		m.status = "Could not read the data file; starting with an empty list."
		m.statusErr = true
	} else if info.Skipped > 0 {
		m.status = fmt.Sprintf("Dropped %d unrecognized record(s) from the data file.", info.Skipped)
		m.statusErr = true
	}
	return m
}

// Run starts the interactive application.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	s, info := store.Open(cfg.DataFile)

	p := tea.NewProgram(NewModel(s, info), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.saveErr != nil {
		return m.saveErr
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.currentView {
		case viewMenu:
			return m.updateMenu(msg)
		case viewAdd:
			return m.updateAdd(msg)
		case viewDelete:
			return m.updateDelete(msg)
		case viewList, viewFocus:
			return m.updateReadOnly(msg)
		}
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter":
		return m.selectItem(m.cursor)
	case "a", "1":
		return m.selectItem(0)
	case "v", "2":
		return m.selectItem(1)
	case "d", "3":
		return m.selectItem(2)
	case "f", "4":
		return m.selectItem(3)
	case "q", "5":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) selectItem(i int) (tea.Model, tea.Cmd) {
	m.cursor = i
	m.status = ""
	m.statusErr = false

	switch i {
	case 0:
		m.currentView = viewAdd
		m.input.Placeholder = "e.g. submit report within 3 days, urgent"
		m.input.SetValue("")
		return m, m.input.Focus()
	case 1:
		m.currentView = viewList
	case 2:
		if m.store.Len() == 0 {
			m.status = "No tasks to delete."
			m.statusErr = true
			return m, nil
		}
		m.currentView = viewDelete
		m.input.Placeholder = fmt.Sprintf("task number (1-%d)", m.store.Len())
		m.input.SetValue("")
		return m, m.input.Focus()
	case 3:
		m.currentView = viewFocus
	case 4:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.currentView = viewMenu
		m.input.Blur()
		return m, nil
	case "enter":
		added, err := m.store.Add(m.input.Value())
		switch {
		case errors.Is(err, store.ErrEmptyTask):
			m.status = "Task cannot be empty."
			m.statusErr = true
		case err != nil:
			m.saveErr = err
			return m, tea.Quit
		default:
			m.status = display.Added(added)
			m.statusErr = false
		}
		m.currentView = viewMenu
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.currentView = viewMenu
		m.input.Blur()
		return m, nil
	case "enter":
		n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
		if err != nil {
			m.status = "Enter a task number."
			m.statusErr = true
			m.input.SetValue("")
			return m, nil
		}
		removed, err := m.store.Delete(n)
		switch {
		case errors.Is(err, store.ErrInvalidIndex):
			m.status = fmt.Sprintf("No task number %d.", n)
			m.statusErr = true
			m.input.SetValue("")
			return m, nil
		case err != nil:
			m.saveErr = err
			return m, tea.Quit
		}
		m.status = fmt.Sprintf("Deleted: %s", removed.RawText)
		m.statusErr = false
		m.currentView = viewMenu
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateReadOnly(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.currentView = viewMenu
	}
	return m, nil
}
