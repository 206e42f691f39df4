package store

import (
	"encoding/json"
	"fmt"
	"os"

	"focusdo/internal/task"
)

// record is the on-disk shape of a task. Pointers distinguish a missing key
// from an empty value so the two schema variants can be told apart.
type record struct {
	RawText     *string `json:"raw_text"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline"`
	Priority    *string `json:"priority"`
}

// decodeTasks parses the data file contents. Records in the current schema
// need all three fields; records in the legacy schema ("description") get
// defaults for missing deadline and priority. Records matching neither schema
// are skipped and counted. A structurally malformed document returns an error.
func decodeTasks(data []byte) ([]task.Task, int, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, 0, fmt.Errorf("parse data file: %w", err)
	}

	var tasks []task.Task
	skipped := 0
	for i, r := range records {
		switch {
		case r.RawText != nil:
			if r.Deadline == nil || r.Priority == nil {
				return nil, 0, fmt.Errorf("record %d: incomplete task", i)
			}
			tasks = append(tasks, task.Task{
				RawText:  *r.RawText,
				Deadline: *r.Deadline,
				Priority: *r.Priority,
			})
		case r.Description != nil:
			// Old schema, migrated on read. The file keeps the old shape
			// until the next save rewrites it.
			t := task.Task{
				RawText:  *r.Description,
				Deadline: task.DeadlineUnspecified,
				Priority: task.PriorityMedium,
			}
			if r.Deadline != nil {
				t.Deadline = *r.Deadline
			}
			if r.Priority != nil {
				t.Priority = *r.Priority
			}
			tasks = append(tasks, t)
		default:
			skipped++
		}
	}
	return tasks, skipped, nil
}

// loadTasks reads and decodes the data file. A missing file is the first-run
// condition and yields an empty list with no error.
func loadTasks(path string) ([]task.Task, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("read data file: %w", err)
	}
	return decodeTasks(data)
}

// saveTasks atomically rewrites the data file with the full task list.
// Writes to a temp file and renames into place so a crash mid-write leaves
// either the old or the new content, never a truncated hybrid.
func saveTasks(path string, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
