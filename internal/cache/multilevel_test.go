package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache()

	if err := c.Set("k", "v", 10*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var dest string
	if err := c.Get("k", &dest); err != nil || dest != "v" {
		t.Fatalf("expected fresh hit, got %q err %v", dest, err)
	}

	time.Sleep(20 * time.Millisecond)
	if err := c.Get("k", &dest); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected miss after expiry, got %v", err)
	}
}

func TestMemoryCache_DeletePattern(t *testing.T) {
	c := NewMemoryCache()
	c.Set("task:1", 1, time.Minute)
	c.Set("task:2", 2, time.Minute)
	c.Set("other", 3, time.Minute)

	if err := c.DeletePattern("task:*"); err != nil {
		t.Fatalf("DeletePattern failed: %v", err)
	}

	var n int
	if err := c.Get("task:1", &n); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected task:1 evicted, got %v", err)
	}
	if err := c.Get("other", &n); err != nil || n != 3 {
		t.Errorf("other should survive, got %d err %v", n, err)
	}
}

func TestMultiLevelCache_MemoryOnly(t *testing.T) {
	c := NewMultiLevelCache(nil)

	if err := c.Set("k", "v", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	var dest string
	if err := c.Get("k", &dest); err != nil || dest != "v" {
		t.Errorf("expected L1 hit without L2, got %q err %v", dest, err)
	}
	if err := c.Health(); err != nil {
		t.Errorf("memory-only cache should report healthy, got %v", err)
	}
}

func TestMultiLevelCache_PromotesL2Hits(t *testing.T) {
	mr := miniredis.RunT(t)
	config := DefaultRedisConfig()
	config.Addr = mr.Addr()

	l2 := NewRedisCache(config)
	c := NewMultiLevelCache(l2)

	// Populate only L2, bypassing the composite.
	if err := l2.Set("k", "from-l2", time.Minute); err != nil {
		t.Fatalf("L2 Set failed: %v", err)
	}

	var dest string
	if err := c.Get("k", &dest); err != nil || dest != "from-l2" {
		t.Fatalf("expected L2 fallback hit, got %q err %v", dest, err)
	}

	// The hit is promoted: a second read succeeds even with L2 down.
	mr.Close()
	dest = ""
	if err := c.Get("k", &dest); err != nil || dest != "from-l2" {
		t.Errorf("expected promoted L1 hit after L2 shutdown, got %q err %v", dest, err)
	}
}

func TestMultiLevelCache_DeleteClearsBothLevels(t *testing.T) {
	mr := miniredis.RunT(t)
	config := DefaultRedisConfig()
	config.Addr = mr.Addr()

	c := NewMultiLevelCache(NewRedisCache(config))
	c.Set("k", "v", time.Minute)

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var dest string
	if err := c.Get("k", &dest); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected miss after delete, got %v", err)
	}
}
