package task

import (
	"sort"
	"time"

	"taskpulse/internal/model"
)

func (f StatusFilter) matches(t model.Task, now time.Time) bool {
	switch f {
	case "", FilterAll:
		return true
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	case FilterOverdue:
		return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
	default:
		// unknown => treat as "all"
		return true
	}
}

// listTasks projects the collection into its display form: filtered,
// then sorted. The input is never mutated.
func listTasks(tasks []model.Task, filter ListFilter, now time.Time) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.Status.matches(t, now) {
			out = append(out, t.Clone())
		}
	}
	sortForDisplay(out)
	return out
}

// sortForDisplay orders incomplete tasks before completed ones, then by
// due date descending within each group. Tasks without a due date sort
// as epoch zero, i.e. last among their group. Equal keys keep insertion
// order.
func sortForDisplay(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		return dueKey(a).After(dueKey(b))
	})
}

func dueKey(t model.Task) time.Time {
	if t.DueDate == nil {
		return time.Unix(0, 0)
	}
	return *t.DueDate
}
