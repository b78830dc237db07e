package services

import (
	"math"
	"time"

	"taskdeck/internal/models"
	"taskdeck/internal/view"
)

// TaskStats summarizes a task collection for the dashboard header.
// Overdue and dueToday count pending tasks only.
type TaskStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	HighPriority   int `json:"highPriority"`
	Overdue        int `json:"overdue"`
	DueToday       int `json:"dueToday"`
	CompletionRate int `json:"completionRate"`
}

// ComputeStats derives the dashboard counters, classifying due dates
// through the shared bucket logic.
func ComputeStats(tasks []models.Task, now time.Time) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
			continue
		}
		stats.Pending++
		if t.Priority == models.PriorityHigh {
			stats.HighPriority++
		}
		switch view.Classify(t.DueDate, now) {
		case view.BucketOverdue:
			stats.Overdue++
		case view.BucketToday:
			stats.DueToday++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	return stats
}
