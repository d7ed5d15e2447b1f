// Package cache stores serialized responses for a bounded time.
package cache

import (
	"context"
	"net/url"
	"slices"
	"time"
)

// Store keeps payloads until their TTL elapses. Implementations must be safe
// for concurrent use.
type Store interface {
	// Get returns the payload for key when a live entry exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// Entry is a cached payload with its storage time and lifetime.
type Entry struct {
	Payload  []byte
	StoredAt time.Time
	TTL      time.Duration
}

// Valid reports whether the entry is still live at now.
func (e Entry) Valid(now time.Time) bool {
	return now.Sub(e.StoredAt) < e.TTL
}

// Key builds a cache key from an operation name and its parameters. Parameter
// names and values are sorted so equal queries map to the same key.
func Key(op string, params url.Values) string {
	if len(params) == 0 {
		return op
	}
	sorted := make(url.Values, len(params))
	for k, vs := range params {
		if len(vs) == 0 {
			continue
		}
		vs = slices.Clone(vs)
		slices.Sort(vs)
		sorted[k] = vs
	}
	if len(sorted) == 0 {
		return op
	}
	return op + ":" + sorted.Encode()
}
