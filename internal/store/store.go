// Package store owns the task and category collections behind explicit
// store types constructed once at startup and passed to consumers. Two
// interchangeable backends exist: an in-memory one that simulates network
// latency, and a GORM/SQLite one.
package store

import (
	"context"
	"time"

	"taskdeck/internal/models"
)

// TaskDraft carries the caller-supplied fields for a new task. The store
// assigns id, createdAt, the order hint, and defaults priority to medium
// and completed to false.
type TaskDraft struct {
	Title       string
	Description string
	CategoryID  *int64
	Priority    models.Priority
	DueDate     *time.Time
}

// TaskUpdate is a partial merge; nil fields are left untouched. The id is
// immutable. Nullable fields use a separate clear flag so that removing a
// due date or category is distinguishable from not mentioning it.
type TaskUpdate struct {
	Title         *string
	Description   *string
	CategoryID    *int64
	ClearCategory bool
	Priority      *models.Priority
	DueDate       *time.Time
	ClearDueDate  bool
	Completed     *bool
}

type CategoryDraft struct {
	Name  string
	Color string
}

type CategoryUpdate struct {
	Name  *string
	Color *string
}

// TaskStore is the asynchronous task collaborator consumed by the view
// pipeline's callers. Bulk operations skip missing ids and fail only when
// zero ids resolve.
type TaskStore interface {
	GetAll(ctx context.Context) ([]models.Task, error)
	GetByID(ctx context.Context, id int64) (models.Task, error)
	Create(ctx context.Context, draft TaskDraft) (models.Task, error)
	Update(ctx context.Context, id int64, upd TaskUpdate) (models.Task, error)
	Delete(ctx context.Context, id int64) error
	BulkComplete(ctx context.Context, ids []int64, completed bool) ([]models.Task, error)
	BulkDelete(ctx context.Context, ids []int64) (int, error)
	// BulkUpdateCategory moves tasks into categoryID; nil clears the
	// category.
	BulkUpdateCategory(ctx context.Context, ids []int64, categoryID *int64) ([]models.Task, error)
}

// CategoryStore does not enforce the no-delete-while-referenced rule;
// that check belongs to the caller.
type CategoryStore interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int64) (models.Category, error)
	Create(ctx context.Context, draft CategoryDraft) (models.Category, error)
	Update(ctx context.Context, id int64, upd CategoryUpdate) (models.Category, error)
	Delete(ctx context.Context, id int64) error
}
