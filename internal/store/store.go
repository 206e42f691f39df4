// Package store holds the in-memory task list and keeps it in sync with the
// data file. Every mutation rewrites the file in full before returning.
package store

import (
	"errors"
	"fmt"

	"focusdo/internal/task"
)

// ErrEmptyTask is returned when adding empty or whitespace-only input.
var ErrEmptyTask = errors.New("task text is empty")

// ErrInvalidIndex is returned when deleting with an out-of-range task number.
var ErrInvalidIndex = errors.New("invalid task number")

// LoadInfo reports what happened while reading the data file at open time.
type LoadInfo struct {
	// Skipped counts records that matched neither the current nor the
	// legacy schema and were dropped.
	Skipped int
	// Corrupt is true when the file existed but could not be parsed and
	// the store started empty instead.
	Corrupt bool
}

// Store is an ordered task list backed by a single JSON file.
type Store struct {
	path  string
	tasks []task.Task
}

// Open loads the store from path. A missing file yields an empty store
// (first run); an unreadable or malformed file also yields an empty store,
// with LoadInfo.Corrupt set, so bad state on disk never prevents startup.
func Open(path string) (*Store, LoadInfo) {
	s := &Store{path: path}
	tasks, skipped, err := loadTasks(path)
	if err != nil {
		return s, LoadInfo{Corrupt: true}
	}
	s.tasks = tasks
	return s, LoadInfo{Skipped: skipped}
}

// Add parses raw input into a task, appends it, and flushes the store.
// Empty or whitespace-only input is rejected without touching disk.
func (s *Store) Add(raw string) (task.Task, error) {
	t := task.Parse(raw)
	if t.RawText == "" {
		return task.Task{}, ErrEmptyTask
	}
	s.tasks = append(s.tasks, t)
	if err := saveTasks(s.path, s.tasks); err != nil {
		return task.Task{}, fmt.Errorf("save tasks: %w", err)
	}
	return t, nil
}

// Delete removes the task at the given 1-based position and flushes the
// store. Out-of-range numbers leave the store and the file untouched.
func (s *Store) Delete(n int) (task.Task, error) {
	if n < 1 || n > len(s.tasks) {
		return task.Task{}, ErrInvalidIndex
	}
	removed := s.tasks[n-1]
	s.tasks = append(s.tasks[:n-1], s.tasks[n:]...)
	if err := saveTasks(s.path, s.tasks); err != nil {
		return task.Task{}, fmt.Errorf("save tasks: %w", err)
	}
	return removed, nil
}

// All returns every task in insertion order.
func (s *Store) All() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Focus returns the high-priority tasks, preserving insertion order.
func (s *Store) Focus() []task.Task {
	var out []task.Task
	for _, t := range s.tasks {
		if t.Priority == task.PriorityHigh {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}
