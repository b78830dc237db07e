package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskdeck/internal/models"
)

func seedPair(now time.Time) []models.Task {
	return []models.Task{
		{ID: 1, Title: "Buy milk", Priority: models.PriorityHigh, CreatedAt: now.Add(-time.Hour)},
		{ID: 2, Title: "Walk dog", Priority: models.PriorityLow, CreatedAt: now},
	}
}

func TestMemoryTaskStore_GetAllSortsCreatedAtDesc(t *testing.T) {
	now := time.Now()
	s := NewMemoryTaskStore(seedPair(now), 0)

	tasks, err := s.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(tasks) != 2 || tasks[0].ID != 2 || tasks[1].ID != 1 {
		t.Errorf("expected [2 1] by createdAt desc, got %v", tasks)
	}
}

func TestMemoryTaskStore_CreateAssignsSequentialIDs(t *testing.T) {
	now := time.Now()
	s := NewMemoryTaskStore(seedPair(now), 0)

	task, err := s.Create(context.Background(), TaskDraft{Title: "New task"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if task.ID != 3 {
		t.Errorf("expected counter seeded past max id, got id %d", task.ID)
	}
	if task.Priority != models.PriorityMedium {
		t.Errorf("expected priority to default to medium, got %s", task.Priority)
	}
	if task.Completed {
		t.Error("expected new task to start pending")
	}
	if task.CreatedAt.IsZero() {
		t.Error("expected createdAt to be stamped")
	}
}

func TestMemoryTaskStore_CreateRejectsEmptyTitle(t *testing.T) {
	s := NewMemoryTaskStore(nil, 0)

	_, err := s.Create(context.Background(), TaskDraft{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "title" {
		t.Errorf("expected title field error, got %s", verr.Field)
	}
}

func TestMemoryTaskStore_UpdateMergesPartial(t *testing.T) {
	now := time.Now()
	s := NewMemoryTaskStore(seedPair(now), 0)

	title := "Buy oat milk"
	completed := true
	task, err := s.Update(context.Background(), 1, TaskUpdate{Title: &title, Completed: &completed})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if task.Title != "Buy oat milk" || !task.Completed {
		t.Errorf("partial update not applied: %+v", task)
	}
	if task.Priority != models.PriorityHigh {
		t.Errorf("untouched field changed: %s", task.Priority)
	}
	if task.ID != 1 {
		t.Errorf("id must be immutable, got %d", task.ID)
	}
}

func TestMemoryTaskStore_UpdateClearsNullableFields(t *testing.T) {
	now := time.Now()
	due := now.AddDate(0, 0, 3)
	cat := int64(7)
	s := NewMemoryTaskStore([]models.Task{
		{ID: 1, Title: "Buy milk", CategoryID: &cat, DueDate: &due, CreatedAt: now},
	}, 0)
	ctx := context.Background()

	// An empty update leaves the nullable fields alone.
	task, err := s.Update(ctx, 1, TaskUpdate{})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if task.DueDate == nil || task.CategoryID == nil {
		t.Fatalf("untouched fields changed: %+v", task)
	}

	task, err = s.Update(ctx, 1, TaskUpdate{ClearDueDate: true, ClearCategory: true})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if task.DueDate != nil {
		t.Errorf("expected due date cleared, got %v", *task.DueDate)
	}
	if task.CategoryID != nil {
		t.Errorf("expected category cleared, got %v", *task.CategoryID)
	}
}

func TestMemoryTaskStore_NotFound(t *testing.T) {
	s := NewMemoryTaskStore(nil, 0)
	ctx := context.Background()

	if _, err := s.GetByID(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID: expected ErrNotFound, got %v", err)
	}
	if _, err := s.Update(ctx, 99, TaskUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
	if err := s.Delete(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
}

func TestMemoryTaskStore_BulkComplete(t *testing.T) {
	now := time.Now()
	s := NewMemoryTaskStore(seedPair(now), 0)
	ctx := context.Background()

	// Zero matches fail as a unit.
	if _, err := s.BulkComplete(ctx, []int64{999}, true); !errors.Is(err, ErrBulkNoMatch) {
		t.Errorf("expected ErrBulkNoMatch, got %v", err)
	}

	// Partial matches succeed and silently skip the missing id.
	updated, err := s.BulkComplete(ctx, []int64{1, 999}, true)
	if err != nil {
		t.Fatalf("BulkComplete failed: %v", err)
	}
	if len(updated) != 1 || updated[0].ID != 1 || !updated[0].Completed {
		t.Errorf("expected exactly task 1 completed, got %v", updated)
	}
}

func TestMemoryTaskStore_BulkDelete(t *testing.T) {
	now := time.Now()
	s := NewMemoryTaskStore(seedPair(now), 0)
	ctx := context.Background()

	count, err := s.BulkDelete(ctx, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("BulkDelete failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 deletions, got %d", count)
	}

	if _, err := s.BulkDelete(ctx, []int64{1}); !errors.Is(err, ErrBulkNoMatch) {
		t.Errorf("expected ErrBulkNoMatch on empty store, got %v", err)
	}
}

func TestMemoryTaskStore_BulkUpdateCategory(t *testing.T) {
	now := time.Now()
	s := NewMemoryTaskStore(seedPair(now), 0)
	ctx := context.Background()

	cat := int64(7)
	updated, err := s.BulkUpdateCategory(ctx, []int64{1, 2}, &cat)
	if err != nil {
		t.Fatalf("BulkUpdateCategory failed: %v", err)
	}
	for _, task := range updated {
		if task.CategoryID == nil || *task.CategoryID != 7 {
			t.Errorf("task %d not moved to category 7: %v", task.ID, task.CategoryID)
		}
	}

	// nil clears the category.
	updated, err = s.BulkUpdateCategory(ctx, []int64{1}, nil)
	if err != nil {
		t.Fatalf("BulkUpdateCategory(nil) failed: %v", err)
	}
	if updated[0].CategoryID != nil {
		t.Errorf("expected category cleared, got %v", *updated[0].CategoryID)
	}
}

func TestMemoryTaskStore_LatencyHonorsContext(t *testing.T) {
	s := NewMemoryTaskStore(nil, 500*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := s.GetAll(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context deadline during simulated latency, got %v", err)
	}
}
