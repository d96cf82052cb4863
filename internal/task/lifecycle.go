package task

import (
	"time"

	"taskpulse/internal/model"
)

// newTask materializes a validated draft into a task with fresh
// identity. Drafts are assumed to have passed model.TaskDraft.Validate;
// no re-validation happens here.
func newTask(d model.TaskDraft) model.Task {
	t := model.Task{
		ID:          newTaskID(),
		Title:       d.Title,
		Description: d.Description,
		Type:        d.Type,
		DueDate:     d.EffectiveDueDate(),
		StartTime:   d.StartTime,
		ImageURL:    d.ImageURL,
		Subtasks:    make([]model.Subtask, 0, len(d.Subtasks)),
		Recurrence:  d.Recurrence.Clone(),
	}
	for _, title := range d.Subtasks {
		t.Subtasks = append(t.Subtasks, model.Subtask{ID: newSubtaskID(), Title: title})
	}
	return t
}

// applyPatch shallow-merges p onto t. Derived state (parent completion,
// completedAt, recurrence spawning) is applied afterwards by applyUpdate.
func applyPatch(t *model.Task, p Patch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.ImageURL != nil {
		t.ImageURL = *p.ImageURL
	}
	if p.DueDate != nil {
		d := *p.DueDate
		t.DueDate = &d
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Subtasks != nil {
		t.Subtasks = model.CloneSubtasks(*p.Subtasks)
		if t.Subtasks == nil {
			t.Subtasks = []model.Subtask{}
		}
	}
	if p.Subtask != nil {
		for i := range t.Subtasks {
			if t.Subtasks[i].ID == p.Subtask.ID {
				t.Subtasks[i].Completed = p.Subtask.Completed
				break
			}
		}
	}
	if p.Recurrence != nil {
		t.Recurrence = p.Recurrence.Clone()
	}
}

// applyUpdate is the update reducer: direct merge, then the completion
// cascade, then the recurrence spawn, in that fixed order. Unknown ids
// leave the collection unchanged and return index -1.
func applyUpdate(tasks []model.Task, id model.TaskID, p Patch, now time.Time) ([]model.Task, int) {
	idx := -1
	for i := range tasks {
		if tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return tasks, -1
	}

	t := tasks[idx].Clone()
	wasCompleted := t.Completed
	prevRepetitions := 0
	if t.Recurrence != nil {
		prevRepetitions = t.Recurrence.Repetitions
	}

	applyPatch(&t, p)

	// Completion cascade: once a task has subtasks its completion is
	// derived from them and cannot be set independently.
	if len(t.Subtasks) > 0 {
		t.Completed = t.AllSubtasksDone()
	}
	switch {
	case t.Completed && !wasCompleted:
		at := now
		t.CompletedAt = &at
	case !t.Completed:
		t.CompletedAt = nil
	}

	tasks[idx] = t

	// Recurrence spawn: edge-triggered on the incomplete -> complete
	// transition, so re-sending completed=true cannot spawn twice.
	if t.Completed && !wasCompleted && t.Recurrence != nil && prevRepetitions > 0 {
		remaining := prevRepetitions - 1
		tasks[idx].Recurrence.Repetitions = remaining
		if remaining > 0 {
			tasks = append(tasks, successor(tasks[idx]))
		}
	}

	return tasks, idx
}

// successor builds the next instance of a recurring task: fresh task and
// subtask identity, completion cleared, everything else copied. The new
// task carries no link back to its predecessor.
func successor(prev model.Task) model.Task {
	next := prev.Clone()
	next.ID = newTaskID()
	next.Completed = false
	next.CompletedAt = nil
	for i := range next.Subtasks {
		next.Subtasks[i].ID = newSubtaskID()
		next.Subtasks[i].Completed = false
	}
	return next
}

// removeTask deletes the task with the given id. Subtasks go with it by
// composition. Unknown ids are a no-op.
func removeTask(tasks []model.Task, id model.TaskID) []model.Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return append(tasks[:i:i], tasks[i+1:]...)
		}
	}
	return tasks
}
