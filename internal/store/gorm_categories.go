package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"taskdeck/internal/models"
)

type GormCategoryStore struct {
	db *gorm.DB
}

func NewGormCategoryStore(db *gorm.DB) *GormCategoryStore {
	return &GormCategoryStore{db: db}
}

func (s *GormCategoryStore) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).Order("sort_order ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *GormCategoryStore) GetByID(ctx context.Context, id int64) (models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, ErrNotFound
	}
	return category, err
}

func (s *GormCategoryStore) Create(ctx context.Context, draft CategoryDraft) (models.Category, error) {
	if len(strings.TrimSpace(draft.Name)) < 2 {
		return models.Category{}, invalid("name", "name must be at least 2 characters")
	}
	color := draft.Color
	if color == "" {
		color = models.DefaultCategoryColor
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return models.Category{}, err
	}
	category := models.Category{
		Name:  draft.Name,
		Color: color,
		Order: int(count),
	}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *GormCategoryStore) Update(ctx context.Context, id int64, upd CategoryUpdate) (models.Category, error) {
	if upd.Name != nil && len(strings.TrimSpace(*upd.Name)) < 2 {
		return models.Category{}, invalid("name", "name must be at least 2 characters")
	}
	category, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Category{}, err
	}
	if upd.Name != nil {
		category.Name = *upd.Name
	}
	if upd.Color != nil {
		category.Color = *upd.Color
	}
	category.ID = id
	if err := s.db.WithContext(ctx).Save(&category).Error; err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *GormCategoryStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
