// Package services composes stores with caching and derived read models.
package services

import (
	"context"
	"fmt"
	"time"

	"taskdeck/internal/cache"
	"taskdeck/internal/models"
	"taskdeck/internal/store"
)

const (
	listCacheKey = "tasks:all"
	taskCacheTTL = 30 * time.Minute
	listCacheTTL = 10 * time.Minute
)

// CachedTaskStore decorates a TaskStore with read-side caching. Every
// write invalidates the list key and the touched per-task keys; cache
// failures never fail the underlying operation.
type CachedTaskStore struct {
	inner store.TaskStore
	cache cache.Cache
}

func NewCachedTaskStore(inner store.TaskStore, c cache.Cache) *CachedTaskStore {
	return &CachedTaskStore{inner: inner, cache: c}
}

func taskKey(id int64) string {
	return fmt.Sprintf("task:%d", id)
}

func (s *CachedTaskStore) GetAll(ctx context.Context) ([]models.Task, error) {
	var cached []models.Task
	if err := s.cache.Get(listCacheKey, &cached); err == nil {
		return cached, nil
	}

	tasks, err := s.inner.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(listCacheKey, tasks, listCacheTTL)
	return tasks, nil
}

func (s *CachedTaskStore) GetByID(ctx context.Context, id int64) (models.Task, error) {
	var cached models.Task
	if err := s.cache.Get(taskKey(id), &cached); err == nil {
		return cached, nil
	}

	task, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return task, err
	}
	s.cache.Set(taskKey(id), task, taskCacheTTL)
	return task, nil
}

func (s *CachedTaskStore) Create(ctx context.Context, draft store.TaskDraft) (models.Task, error) {
	task, err := s.inner.Create(ctx, draft)
	if err != nil {
		return task, err
	}
	s.cache.Set(taskKey(task.ID), task, taskCacheTTL)
	s.cache.Delete(listCacheKey)
	return task, nil
}

func (s *CachedTaskStore) Update(ctx context.Context, id int64, upd store.TaskUpdate) (models.Task, error) {
	task, err := s.inner.Update(ctx, id, upd)
	if err != nil {
		return task, err
	}
	s.cache.Set(taskKey(id), task, taskCacheTTL)
	s.cache.Delete(listCacheKey)
	return task, nil
}

func (s *CachedTaskStore) Delete(ctx context.Context, id int64) error {
	if err := s.inner.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(taskKey(id))
	s.cache.Delete(listCacheKey)
	return nil
}

func (s *CachedTaskStore) BulkComplete(ctx context.Context, ids []int64, completed bool) ([]models.Task, error) {
	updated, err := s.inner.BulkComplete(ctx, ids, completed)
	if err != nil {
		return nil, err
	}
	s.invalidateBulk(updated)
	return updated, nil
}

func (s *CachedTaskStore) BulkDelete(ctx context.Context, ids []int64) (int, error) {
	count, err := s.inner.BulkDelete(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.cache.DeletePattern("task:*")
	s.cache.Delete(listCacheKey)
	return count, nil
}

func (s *CachedTaskStore) BulkUpdateCategory(ctx context.Context, ids []int64, categoryID *int64) ([]models.Task, error) {
	updated, err := s.inner.BulkUpdateCategory(ctx, ids, categoryID)
	if err != nil {
		return nil, err
	}
	s.invalidateBulk(updated)
	return updated, nil
}

func (s *CachedTaskStore) invalidateBulk(updated []models.Task) {
	for _, task := range updated {
		s.cache.Delete(taskKey(task.ID))
	}
	s.cache.Delete(listCacheKey)
}
