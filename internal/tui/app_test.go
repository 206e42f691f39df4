package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"focusdo/internal/store"
)

func newTestModel(t *testing.T, inputs ...string) Model {
	t.Helper()
	s, _ := store.Open(filepath.Join(t.TempDir(), "tasks.json"))
	for _, in := range inputs {
		if _, err := s.Add(in); err != nil {
			t.Fatalf("Add(%q): %v", in, err)
		}
	}
	return NewModel(s, store.LoadInfo{})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(key(k))
		var ok bool
		m, ok = updated.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", updated)
		}
	}
	return m
}

func TestMenuNavigation(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "up")
	if m.cursor != 0 {
		t.Errorf("cursor moved above first item: %d", m.cursor)
	}

	m = press(t, m, "down", "down")
	if m.cursor != 2 {
		t.Errorf("cursor = %d after two downs, want 2", m.cursor)
	}

	for i := 0; i < 10; i++ {
		m = press(t, m, "down")
	}
	if m.cursor != len(menuItems)-1 {
		t.Errorf("cursor = %d, want clamped to %d", m.cursor, len(menuItems)-1)
	}
}

func TestMenuShortcuts(t *testing.T) {
	tests := []struct {
		key  string
		want view
	}{
		{"a", viewAdd},
		{"v", viewList},
		{"f", viewFocus},
		{"1", viewAdd},
		{"2", viewList},
		{"4", viewFocus},
	}
	for _, tt := range tests {
		m := press(t, newTestModel(t), tt.key)
		if m.currentView != tt.want {
			t.Errorf("key %q: view = %d, want %d", tt.key, m.currentView, tt.want)
		}
	}
}

func TestUnknownMenuKeyIgnored(t *testing.T) {
	m := press(t, newTestModel(t), "x", "9")
	if m.currentView != viewMenu {
		t.Errorf("unknown key changed view to %d", m.currentView)
	}
}

func TestAddFlow(t *testing.T) {
	m := press(t, newTestModel(t), "a")
	m.input.SetValue("call mom tomorrow, urgent")

	m = press(t, m, "enter")
	if m.currentView != viewMenu {
		t.Errorf("view = %d after add, want menu", m.currentView)
	}
	if m.store.Len() != 1 {
		t.Fatalf("store has %d tasks, want 1", m.store.Len())
	}
	if m.statusErr || !strings.Contains(m.status, "call mom tomorrow, urgent") {
		t.Errorf("status = %q, want add confirmation", m.status)
	}
}

func TestAddEmptyRejected(t *testing.T) {
	m := press(t, newTestModel(t), "a")
	m.input.SetValue("   ")

	m = press(t, m, "enter")
	if m.store.Len() != 0 {
		t.Error("empty input was added")
	}
	if !m.statusErr || m.status == "" {
		t.Errorf("status = %q, want an error message", m.status)
	}
	if !strings.Contains(m.View(), "Task cannot be empty.") {
		t.Errorf("error not visible after rejected add:\n%s", m.View())
	}
}

func TestAddEscCancels(t *testing.T) {
	m := press(t, newTestModel(t), "a", "esc")
	if m.currentView != viewMenu {
		t.Errorf("esc did not return to menu, view = %d", m.currentView)
	}
	if m.store.Len() != 0 {
		t.Error("cancelled add mutated the store")
	}
}

func TestDeleteWithNoTasks(t *testing.T) {
	m := press(t, newTestModel(t), "d")
	if m.currentView != viewMenu {
		t.Errorf("delete with empty store left the menu, view = %d", m.currentView)
	}
	if !m.statusErr {
		t.Errorf("status = %q, want error about nothing to delete", m.status)
	}
}

func TestDeleteFlow(t *testing.T) {
	m := press(t, newTestModel(t, "first", "second"), "d")
	if m.currentView != viewDelete {
		t.Fatalf("view = %d, want delete", m.currentView)
	}

	m.input.SetValue("1")
	m = press(t, m, "enter")
	if m.store.Len() != 1 {
		t.Fatalf("store has %d tasks, want 1", m.store.Len())
	}
	if m.store.All()[0].RawText != "second" {
		t.Errorf("wrong task deleted, remaining: %+v", m.store.All())
	}
	if !strings.Contains(m.status, "Deleted: first") {
		t.Errorf("status = %q, want deletion confirmation", m.status)
	}
}

func TestDeleteOutOfRangeKeepsStore(t *testing.T) {
	m := press(t, newTestModel(t, "only"), "d")
	m.input.SetValue("7")

	m = press(t, m, "enter")
	if m.store.Len() != 1 {
		t.Error("out-of-range delete mutated the store")
	}
	if m.currentView != viewDelete {
		t.Errorf("view = %d, want to stay on delete for retry", m.currentView)
	}
	if !m.statusErr {
		t.Errorf("status = %q, want error", m.status)
	}
	if !strings.Contains(m.View(), "No task number 7.") {
		t.Errorf("delete view does not show the error:\n%s", m.View())
	}
}

func TestDeleteNonNumericShowsError(t *testing.T) {
	m := press(t, newTestModel(t, "only"), "d")
	m.input.SetValue("seven")

	m = press(t, m, "enter")
	if m.store.Len() != 1 {
		t.Error("non-numeric delete mutated the store")
	}
	if !strings.Contains(m.View(), "Enter a task number.") {
		t.Errorf("delete view does not show the error:\n%s", m.View())
	}
}

func TestMenuViewRenders(t *testing.T) {
	out := newTestModel(t).View()
	for _, item := range menuItems {
		if !strings.Contains(out, item.label) {
			t.Errorf("menu missing %q:\n%s", item.label, out)
		}
	}
}

func TestListViewRenders(t *testing.T) {
	m := press(t, newTestModel(t, "write report today"), "v")
	out := m.View()
	if !strings.Contains(out, "write report today") {
		t.Errorf("list view missing task:\n%s", out)
	}
	if !strings.Contains(out, "HIGH") {
		t.Errorf("list view missing priority badge:\n%s", out)
	}
}

func TestFocusViewFilters(t *testing.T) {
	m := press(t, newTestModel(t, "buy milk", "fix prod asap"), "f")
	out := m.View()
	if !strings.Contains(out, "fix prod asap") {
		t.Errorf("focus view missing high-priority task:\n%s", out)
	}
	if strings.Contains(out, "buy milk") {
		t.Errorf("focus view shows medium-priority task:\n%s", out)
	}
}

func TestLoadWarningsSurfaceInStatus(t *testing.T) {
	s, _ := store.Open(filepath.Join(t.TempDir(), "tasks.json"))

	m := NewModel(s, store.LoadInfo{Corrupt: true})
	if !m.statusErr || m.status == "" {
		t.Error("corrupt load produced no status message")
	}

	m = NewModel(s, store.LoadInfo{Skipped: 2})
	if !strings.Contains(m.status, "2") {
		t.Errorf("status = %q, want skipped count", m.status)
	}
}
