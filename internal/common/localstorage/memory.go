package localstorage

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// memoryStorage keeps encoded values in process memory.
// It is used when persistence is disabled and as a test double.
type memoryStorage[T any] struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

func NewMemoryStorage[T any]() LocalStorage[T] {
	return &memoryStorage[T]{data: make(map[string][]byte)}
}

func (m *memoryStorage[T]) Get(_ context.Context, key string) (result T, err error) {
	m.mu.RLock()
	raw, found := m.data[key]
	closed := m.closed
	m.mu.RUnlock()

	if closed {
		return result, ErrClosed
	}
	if !found {
		return result, nil
	}

	if err = Unmarshal(raw, &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal value from localstorage: %w", err)
	}
	return result, nil
}

func (m *memoryStorage[T]) Set(_ context.Context, key string, value T) error {
	raw, err := Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.data[key] = raw
	return nil
}

func (m *memoryStorage[T]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	delete(m.data, key)
	return nil
}

func (m *memoryStorage[T]) ForEach(ctx context.Context, f func(key string, value T) error) error {
	m.mu.RLock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	m.mu.RUnlock()
	sort.Strings(keys)

	for _, k := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		val, err := m.Get(ctx, k)
		if err != nil {
			return err
		}
		if err = f(k, val); err != nil {
			return err
		}
	}
	return nil
}

func (m *memoryStorage[T]) Clean(_ context.Context) error {
	m.mu.Lock()
	m.data = make(map[string][]byte)
	m.mu.Unlock()
	return nil
}

func (m *memoryStorage[T]) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}
