package model

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError points at the offending draft field so the caller can
// surface a field-level message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// TaskDraft is the validated input for creating a task. It carries no
// identity or completion state; the lifecycle engine assigns those.
type TaskDraft struct {
	Title       string
	Description string
	Type        TaskType
	DueDate     *time.Time
	// StartTime is an optional "HH:MM" time of day folded into DueDate
	// at creation.
	StartTime  string
	ImageURL   string
	Subtasks   []string
	Recurrence *Recurrence
}

// Validate enforces the creation-time validity predicate. The lifecycle
// engine assumes drafts that passed here and does not re-check.
func (d TaskDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	switch d.Type {
	case TypeDaily, TypeScheduled:
	default:
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown task type %q", d.Type)}
	}
	if d.Type == TypeScheduled && d.DueDate == nil {
		return &ValidationError{Field: "dueDate", Reason: "required for scheduled tasks"}
	}
	if d.StartTime != "" {
		if _, err := time.Parse("15:04", d.StartTime); err != nil {
			return &ValidationError{Field: "startTime", Reason: "must be HH:MM"}
		}
	}
	for i, title := range d.Subtasks {
		if strings.TrimSpace(title) == "" {
			return &ValidationError{Field: fmt.Sprintf("subtasks[%d]", i), Reason: "must not be empty"}
		}
	}
	if r := d.Recurrence; r != nil {
		if r.Interval <= 0 {
			return &ValidationError{Field: "recurringInterval", Reason: "must be positive"}
		}
		switch r.Unit {
		case UnitMinutes, UnitHours, UnitDays:
		default:
			return &ValidationError{Field: "recurringIntervalUnit", Reason: fmt.Sprintf("unknown unit %q", r.Unit)}
		}
		if r.Repetitions <= 0 {
			return &ValidationError{Field: "repetitions", Reason: "must be positive"}
		}
	}
	return nil
}

// EffectiveDueDate combines the draft's due date with its optional start
// time of day. Daily tasks have no due date regardless of input.
func (d TaskDraft) EffectiveDueDate() *time.Time {
	if d.Type != TypeScheduled || d.DueDate == nil {
		return nil
	}
	due := *d.DueDate
	if d.StartTime != "" {
		if tod, err := time.Parse("15:04", d.StartTime); err == nil {
			due = time.Date(due.Year(), due.Month(), due.Day(),
				tod.Hour(), tod.Minute(), 0, 0, due.Location())
		}
	}
	return &due
}
