package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskdeck/internal/models"
)

func setupSQLiteStores(t *testing.T) (*GormTaskStore, *GormCategoryStore) {
	t.Helper()
	db, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	now := time.Now()
	if err := SeedDB(db, SeedTasks(now), SeedCategories()); err != nil {
		t.Fatalf("failed to seed db: %v", err)
	}
	return NewGormTaskStore(db), NewGormCategoryStore(db)
}

func TestGormTaskStore_RoundTrip(t *testing.T) {
	tasks, _ := setupSQLiteStores(t)
	ctx := context.Background()

	all, err := tasks.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("expected 6 seeded tasks, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Errorf("GetAll not sorted createdAt desc at index %d", i)
		}
	}

	created, err := tasks.Create(ctx, TaskDraft{Title: "Ship release"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected assigned id")
	}
	if created.Priority != models.PriorityMedium {
		t.Errorf("expected default priority, got %s", created.Priority)
	}

	title := "Ship the release"
	updated, err := tasks.Update(ctx, created.ID, TaskUpdate{Title: &title})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != title {
		t.Errorf("update not applied: %+v", updated)
	}

	if err := tasks.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := tasks.GetByID(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestGormTaskStore_UpdateClearsNullableFields(t *testing.T) {
	tasks, _ := setupSQLiteStores(t)
	ctx := context.Background()

	// Seed task 1 carries both a category and a due date.
	seeded, err := tasks.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if seeded.DueDate == nil || seeded.CategoryID == nil {
		t.Fatalf("seed task 1 should have due date and category: %+v", seeded)
	}

	updated, err := tasks.Update(ctx, 1, TaskUpdate{ClearDueDate: true, ClearCategory: true})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.DueDate != nil || updated.CategoryID != nil {
		t.Errorf("expected nullable fields cleared, got %+v", updated)
	}

	// The clear survives a fresh read.
	reloaded, err := tasks.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if reloaded.DueDate != nil || reloaded.CategoryID != nil {
		t.Errorf("clear not persisted: %+v", reloaded)
	}
}

func TestGormTaskStore_BulkOperations(t *testing.T) {
	tasks, _ := setupSQLiteStores(t)
	ctx := context.Background()

	if _, err := tasks.BulkComplete(ctx, []int64{999}, true); !errors.Is(err, ErrBulkNoMatch) {
		t.Errorf("expected ErrBulkNoMatch, got %v", err)
	}

	updated, err := tasks.BulkComplete(ctx, []int64{1, 999}, true)
	if err != nil {
		t.Fatalf("BulkComplete failed: %v", err)
	}
	if len(updated) != 1 || !updated[0].Completed {
		t.Errorf("expected exactly one completed task, got %v", updated)
	}

	moved, err := tasks.BulkUpdateCategory(ctx, []int64{1, 2}, nil)
	if err != nil {
		t.Fatalf("BulkUpdateCategory failed: %v", err)
	}
	for _, task := range moved {
		if task.CategoryID != nil {
			t.Errorf("task %d category not cleared", task.ID)
		}
	}

	count, err := tasks.BulkDelete(ctx, []int64{1, 2, 999})
	if err != nil {
		t.Fatalf("BulkDelete failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 deletions, got %d", count)
	}
}

func TestGormCategoryStore_RoundTrip(t *testing.T) {
	_, categories := setupSQLiteStores(t)
	ctx := context.Background()

	all, err := categories.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 seeded categories, got %d", len(all))
	}

	created, err := categories.Create(ctx, CategoryDraft{Name: "Fitness"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Color != models.DefaultCategoryColor {
		t.Errorf("expected default color, got %s", created.Color)
	}
	if created.Order != 3 {
		t.Errorf("expected appended order 3, got %d", created.Order)
	}

	if _, err := categories.Create(ctx, CategoryDraft{Name: " x "}); err == nil {
		t.Error("expected validation error for short name")
	}

	short := " x "
	if _, err := categories.Update(ctx, created.ID, CategoryUpdate{Name: &short}); err == nil {
		t.Error("expected validation error for short name on update")
	}

	if err := categories.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := categories.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}
