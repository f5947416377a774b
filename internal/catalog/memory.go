package catalog

import (
	"sync"
	"time"
)

type memoryEntry struct {
	value     any
	fetchedAt time.Time
}

// memoryTier is the in-process copy of the last value seen per key. Values are never mutated
// after they are stored.
type memoryTier struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func newMemoryTier() *memoryTier {
	return &memoryTier{entries: make(map[string]memoryEntry)}
}

func (m *memoryTier) get(key string, now time.Time) (any, time.Duration, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, 0, false
	}

	age := now.Sub(entry.fetchedAt)
	if age < 0 {
		age = 0
	}
	return entry.value, age, true
}

func (m *memoryTier) put(key string, value any, fetchedAt time.Time) {
	m.mu.Lock()
	m.entries[key] = memoryEntry{value: value, fetchedAt: fetchedAt}
	m.mu.Unlock()
}

func (m *memoryTier) delete(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

func (m *memoryTier) reset() {
	m.mu.Lock()
	m.entries = make(map[string]memoryEntry)
	m.mu.Unlock()
}
