package model

import (
	"encoding/json"
	"time"
)

// taskJSON is the flat persisted shape of a Task. Recurrence is written
// as the isRecurring/recurringInterval/recurringIntervalUnit/repetitions
// quartet so the stored document matches the exported one field for
// field.
type taskJSON struct {
	ID          TaskID     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Type        TaskType   `json:"type"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	StartTime   string     `json:"startTime,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Subtasks    []Subtask  `json:"subtasks"`

	IsRecurring           bool         `json:"isRecurring"`
	RecurringInterval     int          `json:"recurringInterval,omitempty"`
	RecurringIntervalUnit IntervalUnit `json:"recurringIntervalUnit,omitempty"`
	Repetitions           int          `json:"repetitions,omitempty"`
}

func (t Task) MarshalJSON() ([]byte, error) {
	w := taskJSON{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Type:        t.Type,
		DueDate:     t.DueDate,
		StartTime:   t.StartTime,
		ImageURL:    t.ImageURL,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		Subtasks:    t.Subtasks,
	}
	if w.Subtasks == nil {
		w.Subtasks = []Subtask{}
	}
	if t.Recurrence != nil {
		w.IsRecurring = true
		w.RecurringInterval = t.Recurrence.Interval
		w.RecurringIntervalUnit = t.Recurrence.Unit
		w.Repetitions = t.Recurrence.Repetitions
	}
	return json.Marshal(w)
}

func (t *Task) UnmarshalJSON(data []byte) error {
	var w taskJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*t = Task{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Type:        w.Type,
		DueDate:     w.DueDate,
		StartTime:   w.StartTime,
		ImageURL:    w.ImageURL,
		Completed:   w.Completed,
		CompletedAt: w.CompletedAt,
		Subtasks:    w.Subtasks,
	}
	if t.Subtasks == nil {
		t.Subtasks = []Subtask{}
	}
	if w.IsRecurring {
		t.Recurrence = &Recurrence{
			Interval:    w.RecurringInterval,
			Unit:        w.RecurringIntervalUnit,
			Repetitions: w.Repetitions,
		}
	}
	return nil
}
