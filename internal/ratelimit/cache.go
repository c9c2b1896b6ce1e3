// Package ratelimit implements the shared abuse-control state behind the
// lead intake pipeline: content-fingerprint deduplication plus per-sender and
// global counters in fixed one-minute buckets.
package ratelimit

import (
	"context"
	"errors"
	"time"
)

// SharedCache is the keyed counter/flag store the limiter runs against.
// Implementations must make Increment atomic with respect to concurrent
// callers on the same key, and SetIfAbsent must be a single check-and-set
// step so near-simultaneous duplicates cannot both pass.
type SharedCache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// SetIfAbsent stores value under key with the given TTL only when the
	// key does not already exist. It reports whether the set happened.
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)

	// Increment adds one to the counter at key, creating it at 1 with the
	// given TTL when absent, and returns the post-increment value. The TTL
	// is applied only on creation.
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// ErrLockTimeout is returned when the bounded wait for a counter lock
// expires. Callers must treat it as a hard failure, never as permission to
// skip the limit check.
var ErrLockTimeout = errors.New("ratelimit: timed out waiting for cache lock")
