package task

import (
	"encoding/json"
	"fmt"

	"taskpulse/internal/model"
)

// ExportFileName is the conventional name for the exported document.
const ExportFileName = "task-progress.json"

// Export serializes the collection in the persisted document shape: a
// JSON array of tasks, ISO-8601 timestamps, plain numbers and literal
// booleans. Re-importing the output reproduces the collection field for
// field.
func Export(r Repo) ([]byte, error) {
	tasks, err := r.Snapshot()
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return json.MarshalIndent(tasks, "", "  ")
}

// ParseSnapshot validates an imported document. Every element needs at
// least an id and a title; deeper per-field validation is deliberately
// not performed.
func ParseSnapshot(data []byte) ([]model.Task, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("import: not a JSON task array: %w", err)
	}

	tasks := make([]model.Task, 0, len(raw))
	for i, msg := range raw {
		var probe struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		}
		if err := json.Unmarshal(msg, &probe); err != nil {
			return nil, fmt.Errorf("import: element %d is not a task object: %w", i, err)
		}
		if probe.ID == "" || probe.Title == "" {
			return nil, fmt.Errorf("import: element %d is missing id or title", i)
		}
		var t model.Task
		if err := json.Unmarshal(msg, &t); err != nil {
			return nil, fmt.Errorf("import: element %d: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Import replaces the whole collection with the parsed document. On any
// parse or shape error the current collection is left untouched; there
// is no partial import.
func Import(r Repo, data []byte) error {
	tasks, err := ParseSnapshot(data)
	if err != nil {
		return err
	}
	return r.Replace(tasks)
}
