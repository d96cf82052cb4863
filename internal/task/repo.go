package task

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"taskpulse/internal/model"
)

var ErrNotFound = errors.New("task not found")

// Patch represents a partial update.
// nil pointer => "no change"
type Patch struct {
	Title       *string           `json:"title,omitempty"`
	Description *string           `json:"description,omitempty"`
	ImageURL    *string           `json:"imageUrl,omitempty"`
	DueDate     *time.Time        `json:"dueDate,omitempty"`
	Completed   *bool             `json:"completed,omitempty"`
	Subtasks    *[]model.Subtask  `json:"subtasks,omitempty"`
	Subtask     *SubtaskPatch     `json:"subtask,omitempty"`
	Recurrence  *model.Recurrence `json:"recurrence,omitempty"`
}

// SubtaskPatch sets completion on a single subtask by id. Unknown
// subtask ids are ignored.
type SubtaskPatch struct {
	ID        model.SubtaskID `json:"id"`
	Completed bool            `json:"completed"`
}

type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterActive    StatusFilter = "active"
	FilterCompleted StatusFilter = "completed"
	FilterOverdue   StatusFilter = "overdue"
)

type ListFilter struct {
	// Status: "" | "all" | "active" | "completed" | "overdue"
	Status StatusFilter
}

type Repo interface {
	Create(d model.TaskDraft) (model.Task, error)
	Get(id model.TaskID) (model.Task, error)
	Update(id model.TaskID, p Patch) (model.Task, error)
	Delete(id model.TaskID) error
	List(filter ListFilter) ([]model.Task, error)
	Snapshot() ([]model.Task, error)
	Replace(tasks []model.Task) error
}

func newTaskID() model.TaskID {
	return model.TaskID(uuid.NewString())
}

func newSubtaskID() model.SubtaskID {
	return model.SubtaskID(uuid.NewString())
}
