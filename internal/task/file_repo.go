package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"taskpulse/internal/model"
)

const storeFileName = "tasks.json"

// FileRepo is the durable task repository: the whole collection lives in
// one JSON document that is read once at startup and rewritten after
// every mutation.
type FileRepo struct {
	mu    sync.RWMutex
	path  string
	tasks []model.Task
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{path: filepath.Join(dataDir, storeFileName)}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) load() error {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.tasks = nil
			return nil
		}
		return err
	}

	var tasks []model.Task
	if err := json.Unmarshal(b, &tasks); err != nil {
		return fmt.Errorf("load %s: %w", r.path, err)
	}
	r.tasks = tasks
	return nil
}

func (r *FileRepo) saveLocked() error {
	tasks := r.tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

func (r *FileRepo) Create(d model.TaskDraft) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := newTask(d)
	r.tasks = append(r.tasks, t)
	if err := r.saveLocked(); err != nil {
		return model.Task{}, err
	}
	return t.Clone(), nil
}

func (r *FileRepo) Get(id model.TaskID) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return r.tasks[i].Clone(), nil
		}
	}
	return model.Task{}, ErrNotFound
}

func (r *FileRepo) Update(id model.TaskID, p Patch) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, idx := applyUpdate(r.tasks, id, p, time.Now())
	if idx < 0 {
		return model.Task{}, ErrNotFound
	}
	r.tasks = tasks
	if err := r.saveLocked(); err != nil {
		return model.Task{}, err
	}
	return r.tasks[idx].Clone(), nil
}

func (r *FileRepo) Delete(id model.TaskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = removeTask(r.tasks, id)
	return r.saveLocked()
}

func (r *FileRepo) List(filter ListFilter) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return listTasks(r.tasks, filter, time.Now()), nil
}

func (r *FileRepo) Snapshot() ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneTasks(r.tasks), nil
}

func (r *FileRepo) Replace(tasks []model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.tasks
	r.tasks = cloneTasks(tasks)
	if err := r.saveLocked(); err != nil {
		r.tasks = prev
		return err
	}
	return nil
}
