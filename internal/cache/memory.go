package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-local map of entries. Expired entries are removed
// lazily on lookup; nothing sweeps in the background.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
	now     func() time.Time
}

type MemoryOption func(*MemoryStore)

// WithClock overrides the time source.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *MemoryStore) {
		m.now = now
	}
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	m := &MemoryStore{
		entries: make(map[string]Entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if !entry.Valid(m.now()) {
		m.mu.Lock()
		// another caller may have stored a fresh entry in between
		if current, ok := m.entries[key]; ok && !current.Valid(m.now()) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}

	return clone(entry.Payload), true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	m.entries[key] = Entry{
		Payload:  clone(payload),
		StoredAt: m.now(),
		TTL:      ttl,
	}
	m.mu.Unlock()
	return nil
}

// Len reports the number of stored entries, live or not.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Clear drops every entry.
func (m *MemoryStore) Clear() {
	m.mu.Lock()
	m.entries = make(map[string]Entry)
	m.mu.Unlock()
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
