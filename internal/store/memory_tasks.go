package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"taskdeck/internal/models"
)

// MemoryTaskStore keeps the collection in a slice guarded by a mutex,
// with a monotonically increasing id counter seeded from the largest
// existing id. A fixed artificial latency can be configured to mimic a
// remote API.
type MemoryTaskStore struct {
	mu      sync.Mutex
	tasks   []models.Task
	nextID  int64
	latency time.Duration
	nowFn   func() time.Time
}

func NewMemoryTaskStore(seed []models.Task, latency time.Duration) *MemoryTaskStore {
	s := &MemoryTaskStore{
		tasks:   append([]models.Task(nil), seed...),
		nextID:  1,
		latency: latency,
		nowFn:   time.Now,
	}
	for _, t := range seed {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

// SetNow overrides the clock used for createdAt stamps. Test hook.
func (s *MemoryTaskStore) SetNow(now func() time.Time) {
	s.nowFn = now
}

func (s *MemoryTaskStore) delay(ctx context.Context) error {
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

func (s *MemoryTaskStore) GetAll(ctx context.Context) ([]models.Task, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]models.Task(nil), s.tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryTaskStore) GetByID(ctx context.Context, id int64) (models.Task, error) {
	if err := s.delay(ctx); err != nil {
		return models.Task{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, ErrNotFound
	}
	return s.tasks[i], nil
}

func (s *MemoryTaskStore) Create(ctx context.Context, draft TaskDraft) (models.Task, error) {
	if err := s.delay(ctx); err != nil {
		return models.Task{}, err
	}
	if draft.Title == "" {
		return models.Task{}, invalid("title", "title is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	priority := draft.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	task := models.Task{
		ID:          s.nextID,
		Title:       draft.Title,
		Description: draft.Description,
		CategoryID:  draft.CategoryID,
		Priority:    priority,
		DueDate:     draft.DueDate,
		Completed:   false,
		CreatedAt:   s.nowFn(),
		Order:       len(s.tasks),
	}
	s.nextID++
	s.tasks = append([]models.Task{task}, s.tasks...)
	return task, nil
}

func (s *MemoryTaskStore) Update(ctx context.Context, id int64, upd TaskUpdate) (models.Task, error) {
	if err := s.delay(ctx); err != nil {
		return models.Task{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, ErrNotFound
	}
	applyTaskUpdate(&s.tasks[i], upd)
	return s.tasks[i], nil
}

func (s *MemoryTaskStore) Delete(ctx context.Context, id int64) error {
	if err := s.delay(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

func (s *MemoryTaskStore) BulkComplete(ctx context.Context, ids []int64, completed bool) ([]models.Task, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated []models.Task
	for _, id := range ids {
		if i := s.indexOf(id); i >= 0 {
			s.tasks[i].Completed = completed
			updated = append(updated, s.tasks[i])
		}
	}
	if len(updated) == 0 {
		return nil, ErrBulkNoMatch
	}
	return updated, nil
}

func (s *MemoryTaskStore) BulkDelete(ctx context.Context, ids []int64) (int, error) {
	if err := s.delay(ctx); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for _, id := range ids {
		if i := s.indexOf(id); i >= 0 {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			deleted++
		}
	}
	if deleted == 0 {
		return 0, ErrBulkNoMatch
	}
	return deleted, nil
}

func (s *MemoryTaskStore) BulkUpdateCategory(ctx context.Context, ids []int64, categoryID *int64) ([]models.Task, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated []models.Task
	for _, id := range ids {
		if i := s.indexOf(id); i >= 0 {
			s.tasks[i].CategoryID = categoryID
			updated = append(updated, s.tasks[i])
		}
	}
	if len(updated) == 0 {
		return nil, ErrBulkNoMatch
	}
	return updated, nil
}

// indexOf must be called with the mutex held.
func (s *MemoryTaskStore) indexOf(id int64) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func applyTaskUpdate(t *models.Task, upd TaskUpdate) {
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	switch {
	case upd.ClearCategory:
		t.CategoryID = nil
	case upd.CategoryID != nil:
		t.CategoryID = upd.CategoryID
	}
	if upd.Priority != nil {
		t.Priority = *upd.Priority
	}
	switch {
	case upd.ClearDueDate:
		t.DueDate = nil
	case upd.DueDate != nil:
		t.DueDate = upd.DueDate
	}
	if upd.Completed != nil {
		t.Completed = *upd.Completed
	}
}
