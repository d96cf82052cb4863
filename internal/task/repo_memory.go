package task

import (
	"sync"
	"time"

	"taskpulse/internal/model"
)

// MemoryRepo keeps the collection in memory only (tests and ephemeral
// use). The collection is an ordered slice: creation appends, and the
// stored order is what display sorting starts from.
type MemoryRepo struct {
	mu    sync.RWMutex
	tasks []model.Task
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Create(d model.TaskDraft) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := newTask(d)
	r.tasks = append(r.tasks, t)
	return t.Clone(), nil
}

func (r *MemoryRepo) Get(id model.TaskID) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return r.tasks[i].Clone(), nil
		}
	}
	return model.Task{}, ErrNotFound
}

func (r *MemoryRepo) Update(id model.TaskID, p Patch) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, idx := applyUpdate(r.tasks, id, p, time.Now())
	if idx < 0 {
		return model.Task{}, ErrNotFound
	}
	r.tasks = tasks
	return r.tasks[idx].Clone(), nil
}

func (r *MemoryRepo) Delete(id model.TaskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = removeTask(r.tasks, id)
	return nil
}

func (r *MemoryRepo) List(filter ListFilter) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return listTasks(r.tasks, filter, time.Now()), nil
}

func (r *MemoryRepo) Snapshot() ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneTasks(r.tasks), nil
}

func (r *MemoryRepo) Replace(tasks []model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = cloneTasks(tasks)
	return nil
}

func cloneTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Clone())
	}
	return out
}
