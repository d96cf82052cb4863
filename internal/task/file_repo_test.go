package task

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpulse/internal/model"
)

func TestFileRepo_StartsEmptyWithoutFile(t *testing.T) {
	repo, err := NewFileRepo(t.TempDir())
	require.NoError(t, err)

	snap, err := repo.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestFileRepo_WriteThroughAndReload(t *testing.T) {
	dir := t.TempDir()

	repo, err := NewFileRepo(dir)
	require.NoError(t, err)

	created, err := repo.Create(model.TaskDraft{
		Title:    "persisted",
		Type:     model.TypeDaily,
		Subtasks: []string{"one"},
	})
	require.NoError(t, err)

	done := true
	_, err = repo.Update(created.ID, Patch{
		Subtask: &SubtaskPatch{ID: created.Subtasks[0].ID, Completed: done},
	})
	require.NoError(t, err)

	// a fresh repo over the same directory sees the mutated state
	reloaded, err := NewFileRepo(dir)
	require.NoError(t, err)

	got, err := reloaded.Get(created.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.Subtasks[0].Completed)
}

func TestFileRepo_DeletePersists(t *testing.T) {
	dir := t.TempDir()

	repo, err := NewFileRepo(dir)
	require.NoError(t, err)
	created, err := repo.Create(model.TaskDraft{Title: "gone soon", Type: model.TypeDaily})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(created.ID))

	reloaded, err := NewFileRepo(dir)
	require.NoError(t, err)
	snap, err := reloaded.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestFileRepo_RejectsCorruptStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, storeFileName), []byte("{not json"), 0o644))

	_, err := NewFileRepo(dir)
	assert.Error(t, err)
}
