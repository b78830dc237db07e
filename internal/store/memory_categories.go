package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"taskdeck/internal/models"
)

type MemoryCategoryStore struct {
	mu         sync.Mutex
	categories []models.Category
	nextID     int64
	latency    time.Duration
}

func NewMemoryCategoryStore(seed []models.Category, latency time.Duration) *MemoryCategoryStore {
	s := &MemoryCategoryStore{
		categories: append([]models.Category(nil), seed...),
		nextID:     1,
		latency:    latency,
	}
	for _, c := range seed {
		if c.ID >= s.nextID {
			s.nextID = c.ID + 1
		}
	}
	return s
}

func (s *MemoryCategoryStore) delay(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *MemoryCategoryStore) GetAll(ctx context.Context) ([]models.Category, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]models.Category(nil), s.categories...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out, nil
}

func (s *MemoryCategoryStore) GetByID(ctx context.Context, id int64) (models.Category, error) {
	if err := s.delay(ctx); err != nil {
		return models.Category{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Category{}, ErrNotFound
	}
	return s.categories[i], nil
}

func (s *MemoryCategoryStore) Create(ctx context.Context, draft CategoryDraft) (models.Category, error) {
	if err := s.delay(ctx); err != nil {
		return models.Category{}, err
	}
	if len(strings.TrimSpace(draft.Name)) < 2 {
		return models.Category{}, invalid("name", "name must be at least 2 characters")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	color := draft.Color
	if color == "" {
		color = models.DefaultCategoryColor
	}
	category := models.Category{
		ID:    s.nextID,
		Name:  draft.Name,
		Color: color,
		Order: len(s.categories),
	}
	s.nextID++
	s.categories = append(s.categories, category)
	return category, nil
}

func (s *MemoryCategoryStore) Update(ctx context.Context, id int64, upd CategoryUpdate) (models.Category, error) {
	if err := s.delay(ctx); err != nil {
		return models.Category{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Category{}, ErrNotFound
	}
	if upd.Name != nil {
		if len(strings.TrimSpace(*upd.Name)) < 2 {
			return models.Category{}, invalid("name", "name must be at least 2 characters")
		}
		s.categories[i].Name = *upd.Name
	}
	if upd.Color != nil {
		s.categories[i].Color = *upd.Color
	}
	return s.categories[i], nil
}

func (s *MemoryCategoryStore) Delete(ctx context.Context, id int64) error {
	if err := s.delay(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.categories = append(s.categories[:i], s.categories[i+1:]...)
	return nil
}

func (s *MemoryCategoryStore) indexOf(id int64) int {
	for i, c := range s.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}
