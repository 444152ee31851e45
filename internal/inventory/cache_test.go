package inventory

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeCacheStore struct {
	data    map[string]string
	getErr  error
	setErr  error
	incrErr error
}

func newFakeCacheStore() *fakeCacheStore {
	return &fakeCacheStore{data: map[string]string{}}
}

func (f *fakeCacheStore) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	value, ok := f.data[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return value, nil
}

func (f *fakeCacheStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	switch v := value.(type) {
	case string:
		f.data[key] = v
	case []byte:
		f.data[key] = string(v)
	default:
		return errors.New("unexpected value type")
	}
	return nil
}

func (f *fakeCacheStore) Incr(_ context.Context, key string) (int64, error) {
	if f.incrErr != nil {
		return 0, f.incrErr
	}
	current, _ := strconv.ParseInt(f.data[key], 10, 64)
	current++
	f.data[key] = strconv.FormatInt(current, 10)
	return current, nil
}

func (f *fakeCacheStore) CacheKey(parts ...string) string {
	return "ss:cache:" + strings.Join(parts, ":")
}

func (f *fakeCacheStore) CounterKey(parts ...string) string {
	return "ss:counter:" + strings.Join(parts, ":")
}

func TestListCacheRoundTrip(t *testing.T) {
	store := newFakeCacheStore()
	cache := NewListCache(store, time.Minute)
	ctx := context.Background()
	input := ListInput{Page: 1, Limit: 10, Search: "jordan"}

	_, ok := cache.Get(ctx, input)
	require.False(t, ok, "empty cache should miss")

	result := &ProductListResult{
		Items: []FullProductView{{ProductID: 7, BrandName: "Nike"}},
		Total: 1,
	}
	cache.Put(ctx, input, result)

	got, ok := cache.Get(ctx, input)
	require.True(t, ok)
	require.Equal(t, int64(1), got.Total)
	require.Len(t, got.Items, 1)
	require.Equal(t, "Nike", got.Items[0].BrandName)
}

func TestListCacheInvalidateOrphansOldPages(t *testing.T) {
	store := newFakeCacheStore()
	cache := NewListCache(store, time.Minute)
	ctx := context.Background()
	input := ListInput{Page: 1, Limit: 10}

	cache.Put(ctx, input, &ProductListResult{Total: 3})
	_, ok := cache.Get(ctx, input)
	require.True(t, ok)

	cache.Invalidate(ctx)

	_, ok = cache.Get(ctx, input)
	require.False(t, ok, "version bump should orphan previously cached pages")

	cache.Put(ctx, input, &ProductListResult{Total: 4})
	got, ok := cache.Get(ctx, input)
	require.True(t, ok)
	require.Equal(t, int64(4), got.Total)
}

func TestListCacheKeyIncludesSearchAndVersion(t *testing.T) {
	store := newFakeCacheStore()
	cache := NewListCache(store, time.Minute)
	ctx := context.Background()

	cache.Put(ctx, ListInput{Page: 2, Limit: 25, Search: "air max"}, &ProductListResult{})

	require.Contains(t, store.data, "ss:cache:products:v0:page=2&limit=25&search=air+max")
}

func TestListCacheStoreErrorsFallThrough(t *testing.T) {
	store := newFakeCacheStore()
	store.getErr = errors.New("connection refused")
	store.incrErr = errors.New("connection refused")
	cache := NewListCache(store, time.Minute)
	ctx := context.Background()

	_, ok := cache.Get(ctx, ListInput{Page: 1, Limit: 10})
	require.False(t, ok)

	// Must not panic when the store is unavailable.
	cache.Invalidate(ctx)
	cache.Put(ctx, ListInput{Page: 1, Limit: 10}, &ProductListResult{})
}
