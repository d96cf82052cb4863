package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskJSON_RoundTrip(t *testing.T) {
	due := time.Date(2026, 9, 12, 14, 30, 0, 0, time.UTC)
	done := time.Date(2026, 9, 11, 8, 15, 42, 0, time.UTC)

	orig := Task{
		ID:          "t-1",
		Title:       "prepare talk",
		Description: "slides and a demo",
		Type:        TypeScheduled,
		DueDate:     &due,
		StartTime:   "14:30",
		ImageURL:    "data:image/png;base64,AAAA",
		Completed:   true,
		CompletedAt: &done,
		Subtasks: []Subtask{
			{ID: "s-1", Title: "outline", Completed: true},
			{ID: "s-2", Title: "slides", Completed: true},
		},
		Recurrence: &Recurrence{Interval: 2, Unit: UnitDays, Repetitions: 4},
	}

	b, err := json.Marshal(orig)
	require.NoError(t, err)

	var got Task
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, orig, got)

	// serializing again must produce identical bytes
	b2, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, b, b2)
}

func TestTaskJSON_FlatRecurrenceFields(t *testing.T) {
	orig := Task{
		ID:         "t-2",
		Title:      "stretch",
		Type:       TypeDaily,
		Recurrence: &Recurrence{Interval: 30, Unit: UnitMinutes, Repetitions: 10},
	}

	b, err := json.Marshal(orig)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(b, &flat))
	assert.Equal(t, true, flat["isRecurring"])
	assert.Equal(t, float64(30), flat["recurringInterval"])
	assert.Equal(t, "minutes", flat["recurringIntervalUnit"])
	assert.Equal(t, float64(10), flat["repetitions"])
	assert.NotContains(t, flat, "recurrence")
}

func TestTaskJSON_NonRecurring(t *testing.T) {
	b, err := json.Marshal(Task{ID: "t-3", Title: "once", Type: TypeDaily})
	require.NoError(t, err)

	var got Task
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Nil(t, got.Recurrence)
	assert.NotNil(t, got.Subtasks)
	assert.Empty(t, got.Subtasks)
}
