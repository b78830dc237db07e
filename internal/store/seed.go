package store

import (
	"time"

	"taskdeck/internal/models"
)

// SeedCategories is the fixture both backends start from.
func SeedCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Work", Color: "#3B82F6", Order: 0},
		{ID: 2, Name: "Personal", Color: "#10B981", Order: 1},
		{ID: 3, Name: "Shopping", Color: "#F59E0B", Order: 2},
	}
}

// SeedTasks builds the task fixture relative to now so the due-date
// buckets stay meaningful whenever the process starts.
func SeedTasks(now time.Time) []models.Task {
	day := func(offset int) *time.Time {
		d := now.AddDate(0, 0, offset)
		return &d
	}
	cat := func(id int64) *int64 { return &id }

	return []models.Task{
		{
			ID: 1, Title: "Prepare quarterly review",
			Description: "Slides and **metrics summary** for the Q review",
			CategoryID:  cat(1), Priority: models.PriorityHigh,
			DueDate: day(0), CreatedAt: now.Add(-96 * time.Hour), Order: 0,
		},
		{
			ID: 2, Title: "Book dentist appointment",
			CategoryID: cat(2), Priority: models.PriorityMedium,
			DueDate: day(3), CreatedAt: now.Add(-72 * time.Hour), Order: 1,
		},
		{
			ID: 3, Title: "Buy groceries",
			Description: "Milk, eggs, coffee",
			CategoryID:  cat(3), Priority: models.PriorityLow,
			DueDate: day(1), CreatedAt: now.Add(-48 * time.Hour), Order: 2,
		},
		{
			ID: 4, Title: "Submit expense report",
			CategoryID: cat(1), Priority: models.PriorityHigh,
			DueDate: day(-2), CreatedAt: now.Add(-24 * time.Hour), Order: 3,
		},
		{
			ID: 5, Title: "Read design proposal",
			Description: "Leave comments before the sync",
			CategoryID:  cat(1), Priority: models.PriorityMedium,
			CreatedAt: now.Add(-12 * time.Hour), Order: 4,
		},
		{
			ID: 6, Title: "Water the plants",
			CategoryID: cat(2), Priority: models.PriorityLow,
			Completed:  true,
			CreatedAt:  now.Add(-6 * time.Hour), Order: 5,
		},
	}
}
