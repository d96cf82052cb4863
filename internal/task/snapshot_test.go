package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpulse/internal/model"
)

func seedRepo(t *testing.T) *MemoryRepo {
	t.Helper()
	repo := NewMemoryRepo()

	due := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	_, err := repo.Create(model.TaskDraft{
		Title:    "ship release",
		Type:     model.TypeScheduled,
		DueDate:  &due,
		Subtasks: []string{"changelog", "tag"},
	})
	require.NoError(t, err)
	_, err = repo.Create(model.TaskDraft{
		Title: "stretch",
		Type:  model.TypeDaily,
		Recurrence: &model.Recurrence{
			Interval: 30, Unit: model.UnitMinutes, Repetitions: 8,
		},
	})
	require.NoError(t, err)
	return repo
}

func TestExportImport_RoundTrip(t *testing.T) {
	repo := seedRepo(t)

	exported, err := Export(repo)
	require.NoError(t, err)

	other := NewMemoryRepo()
	require.NoError(t, Import(other, exported))

	reExported, err := Export(other)
	require.NoError(t, err)
	assert.Equal(t, string(exported), string(reExported))
}

func TestImport_ReplacesEntireCollection(t *testing.T) {
	repo := seedRepo(t)

	require.NoError(t, Import(repo, []byte(`[{"id":"t-9","title":"only me","type":"daily","completed":false,"subtasks":[],"isRecurring":false}]`)))

	snap, err := repo.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap, 1)
	assert.Equal(t, model.TaskID("t-9"), snap[0].ID)
}

func TestImport_MalformedLeavesCollectionUntouched(t *testing.T) {
	repo := seedRepo(t)
	before, err := Export(repo)
	require.NoError(t, err)

	cases := map[string]string{
		"not json":      `{nope`,
		"not an array":  `{"id":"x","title":"y"}`,
		"missing title": `[{"id":"t-1"}]`,
		"missing id":    `[{"title":"orphan"}]`,
		"not an object": `[42]`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, Import(repo, []byte(doc)))

			after, err := Export(repo)
			require.NoError(t, err)
			assert.Equal(t, string(before), string(after), "collection changed by failed import")
		})
	}
}

func TestImport_ShallowShapeCheckOnly(t *testing.T) {
	// extra unknown fields and missing optional ones are fine
	doc := `[{"id":"t-1","title":"minimal"},{"id":"t-2","title":"extra","color":"teal"}]`
	repo := NewMemoryRepo()

	require.NoError(t, Import(repo, []byte(doc)))
	snap, err := repo.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap, 2)
}
