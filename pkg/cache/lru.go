package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// LRU is an in-process cache bounded by entry count; expiry is checked on read.
type LRU struct {
	entries *lru.Cache[string, entry]
	ttl     time.Duration
	now     func() time.Time
}

func NewLRU(size int, ttl time.Duration) (*LRU, error) {
	entries, err := lru.New[string, entry](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &LRU{entries: entries, ttl: ttl, now: time.Now}, nil
}

func (c *LRU) Get(_ context.Context, key string) (string, bool) {
	e, ok := c.entries.Get(key)
	if !ok {
		return "", false
	}
	if c.ttl > 0 && !c.now().Before(e.expiresAt) {
		c.entries.Remove(key)
		return "", false
	}
	return e.value, true
}

func (c *LRU) Set(_ context.Context, key, value string) {
	c.entries.Add(key, entry{value: value, expiresAt: c.now().Add(c.ttl)})
}
