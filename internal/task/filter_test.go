package task

import (
	"testing"
	"time"

	"taskpulse/internal/model"
)

func scheduled(title string, due time.Time, completed bool) model.Task {
	t := newTask(model.TaskDraft{Title: title, Type: model.TypeScheduled, DueDate: &due})
	if completed {
		at := due
		t.Completed = true
		t.CompletedAt = &at
	}
	return t
}

func TestStatusFilters(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	a := scheduled("A", yesterday, false)
	b := scheduled("B", tomorrow, false)
	c := scheduled("C", yesterday, true)
	tasks := []model.Task{a, b, c}

	titles := func(filter StatusFilter) []string {
		out := []string{}
		for _, t := range listTasks(tasks, ListFilter{Status: filter}, now) {
			out = append(out, t.Title)
		}
		return out
	}

	if got := titles(FilterOverdue); len(got) != 1 || got[0] != "A" {
		t.Fatalf("overdue: want [A], got %v", got)
	}
	if got := titles(FilterActive); len(got) != 2 {
		t.Fatalf("active: want [A B] in some order, got %v", got)
	}
	if got := titles(FilterCompleted); len(got) != 1 || got[0] != "C" {
		t.Fatalf("completed: want [C], got %v", got)
	}
	if got := titles(FilterAll); len(got) != 3 {
		t.Fatalf("all: want 3 tasks, got %v", got)
	}
	if got := titles(""); len(got) != 3 {
		t.Fatalf("empty filter should behave like all, got %v", got)
	}
}

func TestSort_IncompleteFirstThenDueDesc(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)

	doneTask := scheduled("done", now.AddDate(0, 0, 5), true)
	early := scheduled("early", now.AddDate(0, 0, 1), false)
	late := scheduled("late", now.AddDate(0, 0, 3), false)
	noDue := newTask(model.TaskDraft{Title: "no due", Type: model.TypeDaily})

	got := listTasks([]model.Task{doneTask, early, late, noDue}, ListFilter{}, now)

	want := []string{"late", "early", "no due", "done"}
	for i, title := range want {
		if got[i].Title != title {
			t.Fatalf("position %d: want %q, got %q (full: %v)", i, title, got[i].Title, titlesOf(got))
		}
	}
}

func TestSort_StableForEqualKeys(t *testing.T) {
	now := time.Now()
	due := now.AddDate(0, 0, 2)

	first := scheduled("first", due, false)
	second := scheduled("second", due, false)

	got := listTasks([]model.Task{first, second}, ListFilter{}, now)
	if got[0].Title != "first" || got[1].Title != "second" {
		t.Fatalf("equal due dates must keep insertion order, got %v", titlesOf(got))
	}
}

func titlesOf(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}
