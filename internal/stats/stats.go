package stats

import (
	"math"
	"time"

	"taskpulse/internal/model"
)

// DefaultWindowDays is the trailing window for the daily completion
// buckets, ending today inclusive.
const DefaultWindowDays = 7

type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

type Summary struct {
	TotalTasks     int        `json:"totalTasks"`
	CompletedTasks int        `json:"completedTasks"`
	// CompletionRate is a percentage rounded to one decimal place.
	CompletionRate float64    `json:"completionRate"`
	Daily          []DayCount `json:"daily"`
}

// Summarize aggregates the collection for display. Daily buckets cover
// the windowDays calendar days ending on now's day, oldest first; only
// completed tasks with a completion timestamp inside the window count.
func Summarize(tasks []model.Task, now time.Time, windowDays int) Summary {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	s := Summary{Daily: make([]DayCount, windowDays)}

	start := dayStart(now).AddDate(0, 0, -(windowDays - 1))
	index := make(map[string]int, windowDays)
	for i := 0; i < windowDays; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		s.Daily[i] = DayCount{Date: date}
		index[date] = i
	}

	for _, t := range tasks {
		s.TotalTasks++
		if !t.Completed {
			continue
		}
		s.CompletedTasks++
		if t.CompletedAt == nil {
			continue
		}
		day := t.CompletedAt.In(now.Location()).Format("2006-01-02")
		if i, ok := index[day]; ok {
			s.Daily[i].Count++
		}
	}

	if s.TotalTasks > 0 {
		rate := float64(s.CompletedTasks) / float64(s.TotalTasks) * 100
		s.CompletionRate = math.Round(rate*10) / 10
	}
	return s
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
