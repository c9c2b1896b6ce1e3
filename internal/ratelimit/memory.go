package ratelimit

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// MemoryCache is an in-process SharedCache for single-node deployments and
// tests. Counter read-modify-writes are guarded by a per-key lock with a
// bounded wait. Entries expire lazily on access, and a background sweep
// evicts the rest: minute-bucket counters and dup fingerprints are never
// read again after their window, so lazy expiry alone would grow the map
// forever. Lock channels are refcounted and dropped with their last user.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	locks   map[string]*keyLock

	lockWait time.Duration
	now      func() time.Time
}

type memoryEntry struct {
	value   string
	expires time.Time
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

// NewMemoryCache creates an in-memory cache. lockWait bounds how long a
// caller blocks for a counter lock before failing with ErrLockTimeout.
func NewMemoryCache(lockWait time.Duration) *MemoryCache {
	if lockWait <= 0 {
		lockWait = 5 * time.Second
	}
	c := &MemoryCache{
		entries:  make(map[string]memoryEntry),
		locks:    make(map[string]*keyLock),
		lockWait: lockWait,
		now:      time.Now,
	}
	go c.janitor()
	return c
}

// SetClock replaces the cache's notion of now. Test use only.
func (c *MemoryCache) SetClock(now func() time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// Get returns the value for key and whether it was present and unexpired.
func (c *MemoryCache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.liveEntry(key)
	if !ok {
		return "", false, nil
	}
	return e.value, true, nil
}

// SetIfAbsent stores value under key with the given TTL only when absent.
func (c *MemoryCache) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.liveEntry(key); ok {
		return false, nil
	}
	c.entries[key] = memoryEntry{value: value, expires: c.now().Add(ttl)}
	return true, nil
}

// Increment adds one to the counter at key under its per-key lock, creating
// it at 1 with the given TTL when absent. The lock wait is bounded; on
// timeout the increment does not happen and ErrLockTimeout is returned.
func (c *MemoryCache) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	if err := c.acquire(ctx, key); err != nil {
		return 0, err
	}
	defer c.release(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	count := int64(1)
	if e, ok := c.liveEntry(key); ok {
		prev, err := strconv.ParseInt(e.value, 10, 64)
		if err != nil {
			prev = 0
		}
		count = prev + 1
		// TTL set at creation stays; only the value changes.
		c.entries[key] = memoryEntry{value: strconv.FormatInt(count, 10), expires: e.expires}
		return count, nil
	}
	c.entries[key] = memoryEntry{value: "1", expires: c.now().Add(ttl)}
	return count, nil
}

// liveEntry returns the entry for key, dropping it first if expired.
// Caller holds c.mu.
func (c *MemoryCache) liveEntry(key string) (memoryEntry, bool) {
	e, ok := c.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if c.now().After(e.expires) {
		delete(c.entries, key)
		return memoryEntry{}, false
	}
	return e, true
}

// janitor periodically evicts expired entries that nothing will read again.
func (c *MemoryCache) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		c.evictExpired()
	}
}

func (c *MemoryCache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, key)
		}
	}
}

// size returns the live entry and lock map sizes. Test use only.
func (c *MemoryCache) size() (entries, locks int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries), len(c.locks)
}

func (c *MemoryCache) acquire(ctx context.Context, key string) error {
	c.mu.Lock()
	l, ok := c.locks[key]
	if !ok {
		l = &keyLock{ch: make(chan struct{}, 1)}
		c.locks[key] = l
	}
	l.refs++
	c.mu.Unlock()

	timer := time.NewTimer(c.lockWait)
	defer timer.Stop()
	select {
	case l.ch <- struct{}{}:
		return nil
	case <-timer.C:
		c.unref(key)
		return ErrLockTimeout
	case <-ctx.Done():
		c.unref(key)
		return ctx.Err()
	}
}

func (c *MemoryCache) release(key string) {
	c.mu.Lock()
	l := c.locks[key]
	c.mu.Unlock()
	if l == nil {
		return
	}
	<-l.ch
	c.unref(key)
}

// unref drops one reference to key's lock, removing it with the last user so
// the map does not accumulate a channel per bucket key ever seen.
func (c *MemoryCache) unref(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if l, ok := c.locks[key]; ok {
		l.refs--
		if l.refs <= 0 {
			delete(c.locks, key)
		}
	}
}
