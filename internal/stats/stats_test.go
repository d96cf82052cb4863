package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpulse/internal/model"
)

func completedOn(title string, at time.Time) model.Task {
	return model.Task{
		ID:          model.TaskID("t-" + title),
		Title:       title,
		Type:        model.TypeDaily,
		Completed:   true,
		CompletedAt: &at,
	}
}

func TestSummarize_WindowBuckets(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.Local)

	tasks := []model.Task{
		completedOn("yesterday", now.AddDate(0, 0, -1)),
		completedOn("six days ago", now.AddDate(0, 0, -6)),
		completedOn("outside window", now.AddDate(0, 0, -8)),
		{ID: "t-open", Title: "open", Type: model.TypeDaily},
	}

	s := Summarize(tasks, now, 7)
	require.Len(t, s.Daily, 7)

	// window is today-6 .. today inclusive, oldest first
	assert.Equal(t, now.AddDate(0, 0, -6).Format("2006-01-02"), s.Daily[0].Date)
	assert.Equal(t, now.Format("2006-01-02"), s.Daily[6].Date)

	wantCounts := []int{1, 0, 0, 0, 0, 1, 0}
	for i, want := range wantCounts {
		assert.Equal(t, want, s.Daily[i].Count, "bucket %d (%s)", i, s.Daily[i].Date)
	}
}

func TestSummarize_Totals(t *testing.T) {
	now := time.Now()
	tasks := []model.Task{
		completedOn("a", now),
		{ID: "t-b", Title: "b", Type: model.TypeDaily},
		{ID: "t-c", Title: "c", Type: model.TypeDaily},
	}

	s := Summarize(tasks, now, 7)
	assert.Equal(t, 3, s.TotalTasks)
	assert.Equal(t, 1, s.CompletedTasks)
	assert.InDelta(t, 33.3, s.CompletionRate, 0.001)
}

func TestSummarize_EmptyCollection(t *testing.T) {
	s := Summarize(nil, time.Now(), 7)
	assert.Equal(t, 0, s.TotalTasks)
	assert.Equal(t, 0.0, s.CompletionRate)
	assert.Len(t, s.Daily, 7)
}

func TestSummarize_DefaultsWindow(t *testing.T) {
	s := Summarize(nil, time.Now(), 0)
	assert.Len(t, s.Daily, DefaultWindowDays)
}
