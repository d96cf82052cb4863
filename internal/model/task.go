package model

import (
	"time"
)

type TaskID string

type SubtaskID string

type TaskType string

const (
	TypeDaily     TaskType = "daily"
	TypeScheduled TaskType = "scheduled"
)

type IntervalUnit string

const (
	UnitMinutes IntervalUnit = "minutes"
	UnitHours   IntervalUnit = "hours"
	UnitDays    IntervalUnit = "days"
)

// Recurrence is the recurring-task configuration. A nil *Recurrence on a
// Task means the task does not recur. Interval and Unit describe the
// cadence the user chose; successors are only ever spawned by an explicit
// completion, never by elapsed time.
type Recurrence struct {
	Interval    int          `json:"interval"`
	Unit        IntervalUnit `json:"unit"`
	Repetitions int          `json:"repetitions"`
}

func (r *Recurrence) Clone() *Recurrence {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// Subtask is a checklist item owned by exactly one Task. It has no
// lifecycle of its own outside its parent.
type Subtask struct {
	ID        SubtaskID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
}

type Task struct {
	ID          TaskID
	Title       string
	Description string
	Type        TaskType
	// DueDate is set for scheduled tasks and absent for daily tasks.
	DueDate   *time.Time
	StartTime string
	ImageURL  string
	Completed bool
	// CompletedAt is set exactly while Completed is true.
	CompletedAt *time.Time
	// Subtasks keeps insertion order; order matters for display only.
	Subtasks   []Subtask
	Recurrence *Recurrence
}

func (t *Task) IsRecurring() bool {
	return t.Recurrence != nil
}

// AllSubtasksDone reports whether every subtask is complete. False when
// the task has no subtasks.
func (t *Task) AllSubtasksDone() bool {
	if len(t.Subtasks) == 0 {
		return false
	}
	for _, st := range t.Subtasks {
		if !st.Completed {
			return false
		}
	}
	return true
}

// CloneSubtasks returns a copy of the subtask slice so callers can hand
// out task values without aliasing repo state.
func CloneSubtasks(subtasks []Subtask) []Subtask {
	if subtasks == nil {
		return nil
	}
	out := make([]Subtask, len(subtasks))
	copy(out, subtasks)
	return out
}

func (t Task) Clone() Task {
	c := t
	c.Subtasks = CloneSubtasks(t.Subtasks)
	c.Recurrence = t.Recurrence.Clone()
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	if t.CompletedAt != nil {
		d := *t.CompletedAt
		c.CompletedAt = &d
	}
	return c
}
