package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// cacheStore is the slice of the Redis client the list cache needs.
type cacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
	CacheKey(parts ...string) string
	CounterKey(parts ...string) string
}

// ListCache caches list pages under a version-stamped key. Every mutation bumps
// the version counter, which orphans all previously written pages at once; the
// orphans age out via TTL. Reads and writes are best effort: any store error
// falls through to the database.
type ListCache struct {
	store cacheStore
	ttl   time.Duration
}

// NewListCache builds a list cache over the provided store.
func NewListCache(store cacheStore, ttl time.Duration) *ListCache {
	return &ListCache{store: store, ttl: ttl}
}

// Get returns the cached page for the given inputs, if present.
func (c *ListCache) Get(ctx context.Context, input ListInput) (*ProductListResult, bool) {
	raw, err := c.store.Get(ctx, c.pageKey(ctx, input))
	if err != nil {
		return nil, false
	}
	var result ProductListResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, false
	}
	return &result, true
}

// Put stores the page under the current version.
func (c *ListCache) Put(ctx context.Context, input ListInput, result *ProductListResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	_ = c.store.Set(ctx, c.pageKey(ctx, input), payload, c.ttl)
}

// Invalidate bumps the version counter so no existing page key matches again.
func (c *ListCache) Invalidate(ctx context.Context) {
	_, _ = c.store.Incr(ctx, c.versionKey())
}

func (c *ListCache) versionKey() string {
	return c.store.CounterKey("products", "version")
}

func (c *ListCache) pageKey(ctx context.Context, input ListInput) string {
	version, err := c.store.Get(ctx, c.versionKey())
	if err != nil || version == "" {
		version = "0"
	}
	query := fmt.Sprintf("page=%d&limit=%d&search=%s",
		input.Page, input.Limit, url.QueryEscape(input.Search))
	return c.store.CacheKey("products", "v"+version, query)
}
