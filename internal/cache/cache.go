// Package cache provides the read-side cache for store results: an
// in-process L1 with TTLs, an optional Redis L2, and a multi-level
// composite that fronts one with the other.
package cache

import (
	"errors"
	"time"
)

var (
	ErrCacheMiss = errors.New("cache miss")
	ErrCacheDown = errors.New("cache unavailable")
)

type Cache interface {
	Set(key string, value interface{}, ttl time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	DeletePattern(pattern string) error
	Health() error
	Close() error
}
