package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taskdeck/internal/models"
)

// GormTaskStore implements TaskStore over a SQLite database. Same
// contract as the memory backend, selected by STORE_BACKEND=sqlite.
type GormTaskStore struct {
	db    *gorm.DB
	nowFn func() time.Time
}

func NewGormTaskStore(db *gorm.DB) *GormTaskStore {
	return &GormTaskStore{db: db, nowFn: time.Now}
}

func (s *GormTaskStore) GetAll(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *GormTaskStore) GetByID(ctx context.Context, id int64) (models.Task, error) {
	var task models.Task
	err := s.db.WithContext(ctx).First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Task{}, ErrNotFound
	}
	return task, err
}

func (s *GormTaskStore) Create(ctx context.Context, draft TaskDraft) (models.Task, error) {
	if draft.Title == "" {
		return models.Task{}, invalid("title", "title is required")
	}
	priority := draft.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Task{}).Count(&count).Error; err != nil {
		return models.Task{}, err
	}
	task := models.Task{
		Title:       draft.Title,
		Description: draft.Description,
		CategoryID:  draft.CategoryID,
		Priority:    priority,
		DueDate:     draft.DueDate,
		Completed:   false,
		CreatedAt:   s.nowFn(),
		Order:       int(count),
	}
	if err := s.db.WithContext(ctx).Create(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (s *GormTaskStore) Update(ctx context.Context, id int64, upd TaskUpdate) (models.Task, error) {
	task, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Task{}, err
	}
	applyTaskUpdate(&task, upd)
	task.ID = id
	if err := s.db.WithContext(ctx).Save(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (s *GormTaskStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&models.Task{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormTaskStore) BulkComplete(ctx context.Context, ids []int64, completed bool) ([]models.Task, error) {
	res := s.db.WithContext(ctx).Model(&models.Task{}).
		Where("id IN ?", ids).
		Update("completed", completed)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrBulkNoMatch
	}
	var updated []models.Task
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&updated).Error; err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *GormTaskStore) BulkDelete(ctx context.Context, ids []int64) (int, error) {
	res := s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Task{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrBulkNoMatch
	}
	return int(res.RowsAffected), nil
}

func (s *GormTaskStore) BulkUpdateCategory(ctx context.Context, ids []int64, categoryID *int64) ([]models.Task, error) {
	res := s.db.WithContext(ctx).Model(&models.Task{}).
		Where("id IN ?", ids).
		Update("category_id", categoryID)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrBulkNoMatch
	}
	var updated []models.Task
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&updated).Error; err != nil {
		return nil, err
	}
	return updated, nil
}
