package ratelimit

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetIfAbsent(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Second)

	set, err := cache.SetIfAbsent(ctx, "dup:abc", "1", time.Minute)
	require.NoError(t, err)
	assert.True(t, set)

	set, err = cache.SetIfAbsent(ctx, "dup:abc", "1", time.Minute)
	require.NoError(t, err)
	assert.False(t, set, "second claim of the same key must lose")

	val, ok, err := cache.Get(ctx, "dup:abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", val)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Second)

	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	cache.SetClock(func() time.Time { return now })

	set, err := cache.SetIfAbsent(ctx, "dup:abc", "1", 120*time.Second)
	require.NoError(t, err)
	require.True(t, set)

	now = now.Add(119 * time.Second)
	_, ok, err := cache.Get(ctx, "dup:abc")
	require.NoError(t, err)
	assert.True(t, ok, "entry must survive inside its window")

	now = now.Add(2 * time.Second)
	_, ok, err = cache.Get(ctx, "dup:abc")
	require.NoError(t, err)
	assert.False(t, ok, "entry must expire after its window")

	// Key is claimable again once expired.
	set, err = cache.SetIfAbsent(ctx, "dup:abc", "1", 120*time.Second)
	require.NoError(t, err)
	assert.True(t, set)
}

func TestMemoryCacheIncrement(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Second)

	for want := int64(1); want <= 3; want++ {
		count, err := cache.Increment(ctx, "rl:x", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}
}

func TestMemoryCacheIncrementTTLOnlyOnCreate(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Second)

	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	cache.SetClock(func() time.Time { return now })

	_, err := cache.Increment(ctx, "rl:x", 60*time.Second)
	require.NoError(t, err)

	// A later increment must not push the expiry out.
	now = now.Add(30 * time.Second)
	_, err = cache.Increment(ctx, "rl:x", 60*time.Second)
	require.NoError(t, err)

	now = now.Add(31 * time.Second)
	count, err := cache.Increment(ctx, "rl:x", 60*time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "counter must restart after the creation TTL")
}

func TestMemoryCacheLockTimeout(t *testing.T) {
	cache := NewMemoryCache(20 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, cache.acquire(ctx, "rl:x"))
	defer cache.release("rl:x")

	_, err := cache.Increment(ctx, "rl:x", time.Minute)
	assert.ErrorIs(t, err, ErrLockTimeout)
}

func TestMemoryCacheLockRespectsContext(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, cache.acquire(ctx, "rl:x"))
	defer cache.release("rl:x")

	cancel()
	_, err := cache.Increment(ctx, "rl:x", time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryCacheEvictsExpiredEntries(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Second)

	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	cache.SetClock(func() time.Time { return now })

	// Bucket-style keys that nothing ever reads again after their window.
	for i := 0; i < 50; i++ {
		key := "rl:global:" + string(rune('a'+i%26)) + strconv.Itoa(i)
		_, err := cache.Increment(ctx, key, 60*time.Second)
		require.NoError(t, err)
	}
	_, err := cache.SetIfAbsent(ctx, "dup:abc", "1", 120*time.Second)
	require.NoError(t, err)

	entries, locks := cache.size()
	assert.Equal(t, 51, entries)
	assert.Zero(t, locks, "released locks must not linger")

	// Inside every window nothing is evicted.
	now = now.Add(59 * time.Second)
	cache.evictExpired()
	entries, _ = cache.size()
	assert.Equal(t, 51, entries)

	// Past the counter windows the sweep reclaims them without any reads.
	now = now.Add(2 * time.Second)
	cache.evictExpired()
	entries, _ = cache.size()
	assert.Equal(t, 1, entries, "only the unexpired dup flag survives")

	now = now.Add(60 * time.Second)
	cache.evictExpired()
	entries, _ = cache.size()
	assert.Zero(t, entries)
}

func TestMemoryCacheLockMapDrainsAfterTimeout(t *testing.T) {
	cache := NewMemoryCache(20 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, cache.acquire(ctx, "rl:x"))

	_, err := cache.Increment(ctx, "rl:x", time.Minute)
	assert.ErrorIs(t, err, ErrLockTimeout)

	cache.release("rl:x")
	_, locks := cache.size()
	assert.Zero(t, locks, "timed-out waiters and released holders must drop their lock entry")
}

func TestMemoryCacheConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Second)

	const workers = 20
	done := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			_, err := cache.Increment(ctx, "rl:x", time.Minute)
			done <- err
		}()
	}
	for i := 0; i < workers; i++ {
		require.NoError(t, <-done)
	}

	count, err := cache.Increment(ctx, "rl:x", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(workers+1), count, "no increment may be lost under contention")
}
