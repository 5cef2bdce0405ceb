package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

type cachedValue struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestAsideCachesFetchResult(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedValue) func() error {
		return func() error {
			fetches++
			*dest = cachedValue{Name: "guitar", Count: 3}
			return nil
		}
	}

	var first cachedValue
	require.NoError(t, Aside(ctx, "test:aside", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "guitar", first.Name)

	var second cachedValue
	require.NoError(t, Aside(ctx, "test:aside", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, fetches, "second read should come from cache")
	assert.Equal(t, first, second)
}

func TestAsideRefetchesAfterInvalidate(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var v cachedValue
	fetch := func() error {
		fetches++
		v = cachedValue{Name: "python", Count: fetches}
		return nil
	}

	require.NoError(t, Aside(ctx, "test:inv", &v, time.Minute, fetch))
	Invalidate(ctx, "test:inv")
	require.NoError(t, Aside(ctx, "test:inv", &v, time.Minute, fetch))
	assert.Equal(t, 2, fetches)
}

func TestAsideWithoutRedis(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	fetches := 0
	var v cachedValue
	fetch := func() error {
		fetches++
		v = cachedValue{Name: "design"}
		return nil
	}

	require.NoError(t, Aside(ctx, "test:degraded", &v, time.Minute, fetch))
	require.NoError(t, Aside(ctx, "test:degraded", &v, time.Minute, fetch))
	assert.Equal(t, 2, fetches, "every read hits the fetch when redis is down")
	assert.Equal(t, "design", v.Name)
}

func TestInvalidateUserDropsAllKeys(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	for _, key := range []string{UserKey(7), UserStatsKey(7), UnreadCountKey(7)} {
		require.NoError(t, SetJSON(ctx, key, cachedValue{Name: "x"}, time.Minute))
	}
	require.True(t, mr.Exists("user:7"))
	require.True(t, mr.Exists("user:7:stats"))
	require.True(t, mr.Exists("user:7:unread"))

	InvalidateUser(ctx, 7)

	assert.False(t, mr.Exists("user:7"))
	assert.False(t, mr.Exists("user:7:stats"))
	assert.False(t, mr.Exists("user:7:unread"))
}

func TestGetJSONMiss(t *testing.T) {
	withMiniredis(t)

	var v cachedValue
	found, err := GetJSON(context.Background(), "test:missing", &v)
	require.NoError(t, err)
	assert.False(t, found)
}
