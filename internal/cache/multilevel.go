package cache

import "time"

// l1RefillTTL bounds how long an L2 hit lives in L1 before re-checking.
const l1RefillTTL = 5 * time.Minute

// MultiLevelCache checks the in-process L1 first and falls back to the
// Redis L2. A nil L2 degrades to memory-only caching, which keeps the
// cache usable without a Redis deployment.
type MultiLevelCache struct {
	l1 *MemoryCache
	l2 *RedisCache
}

func NewMultiLevelCache(redisCache *RedisCache) *MultiLevelCache {
	return &MultiLevelCache{
		l1: NewMemoryCache(),
		l2: redisCache,
	}
}

func (c *MultiLevelCache) Set(key string, value interface{}, ttl time.Duration) error {
	if err := c.l1.Set(key, value, ttl); err != nil {
		return err
	}
	if c.l2 != nil {
		return c.l2.Set(key, value, ttl)
	}
	return nil
}

func (c *MultiLevelCache) Get(key string, dest interface{}) error {
	if err := c.l1.Get(key, dest); err == nil {
		return nil
	}
	if c.l2 == nil {
		return ErrCacheMiss
	}
	if err := c.l2.Get(key, dest); err != nil {
		return err
	}
	// Promote the L2 hit into L1 for subsequent reads. L1 marshals the
	// value, so no live pointer is retained.
	return c.l1.Set(key, dest, l1RefillTTL)
}

func (c *MultiLevelCache) Delete(key string) error {
	if err := c.l1.Delete(key); err != nil {
		return err
	}
	if c.l2 != nil {
		return c.l2.Delete(key)
	}
	return nil
}

func (c *MultiLevelCache) DeletePattern(pattern string) error {
	if err := c.l1.DeletePattern(pattern); err != nil {
		return err
	}
	if c.l2 != nil {
		return c.l2.DeletePattern(pattern)
	}
	return nil
}

func (c *MultiLevelCache) Health() error {
	if c.l2 != nil {
		return c.l2.Health()
	}
	return nil
}

func (c *MultiLevelCache) Close() error {
	c.l1.Close()
	if c.l2 != nil {
		return c.l2.Close()
	}
	return nil
}
