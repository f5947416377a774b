package persistentcache

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/punyakios/go-kios-client/internal/common/localstorage"
	xlog "github.com/punyakios/go-kios-client/internal/common/log"
	"github.com/punyakios/go-kios-client/internal/models"
)

var logMessage = "[PERSISTENT-CACHE]"

// Lookup is a decoded cache entry. Age is measured when the lookup is made.
type Lookup[T any] struct {
	Value T
	Age   time.Duration
	State State
}

type options struct {
	now func() time.Time
}

type Option func(*options)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Cache stores timestamped values in a LocalStorage bucket.
// Read failures and corrupt entries count as a miss, write failures are logged and the value
// is kept in process so the current session still sees it.
type Cache[T any] struct {
	storage localstorage.LocalStorage[models.CacheEnvelope]
	policy  StalenessPolicy
	now     func() time.Time

	mu      sync.RWMutex
	overlay map[string]entry[T]
}

// entry is a decoded value with its write time in unix milliseconds.
type entry[T any] struct {
	value     T
	timestamp int64
}

func New[T any](storage localstorage.LocalStorage[models.CacheEnvelope], policy StalenessPolicy, opts ...Option) *Cache[T] {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	return &Cache[T]{
		storage: storage,
		policy:  policy,
		now:     o.now,
		overlay: make(map[string]entry[T]),
	}
}

func (c *Cache[T]) Policy() StalenessPolicy {
	return c.policy
}

// Get returns the entry when it is present, decodable and younger than the cache duration.
// Expired and corrupt entries are removed from storage.
func (c *Cache[T]) Get(ctx context.Context, key string) (Lookup[T], bool) {
	now := c.now()

	e, found, err := c.read(ctx, key)
	if err != nil {
		xlog.Warn(ctx, logMessage,
			xlog.String("key", key),
			xlog.String("message", "discarding corrupt entry"),
			xlog.Err(err))
		c.evict(ctx, key)
		return Lookup[T]{}, false
	}
	if !found {
		return Lookup[T]{}, false
	}

	lookup := c.lookupOf(e, now)
	if lookup.State == Expired {
		c.evict(ctx, key)
		return Lookup[T]{}, false
	}
	return lookup, true
}

// Set replaces the entry with value stamped with the current time.
func (c *Cache[T]) Set(ctx context.Context, key string, value T) {
	e := entry[T]{value: value, timestamp: c.now().UnixMilli()}

	raw, err := json.Marshal(value)
	if err != nil {
		xlog.Warn(ctx, logMessage,
			xlog.String("key", key),
			xlog.String("message", "keeping value in process, encode failed"),
			xlog.Err(err))
		c.keep(key, e)
		return
	}

	env := models.CacheEnvelope{
		SchemaVersion: models.CacheSchemaVersion,
		Timestamp:     e.timestamp,
		Value:         raw,
	}
	if err = c.storage.Set(ctx, key, env); err != nil {
		xlog.Warn(ctx, logMessage,
			xlog.String("key", key),
			xlog.String("message", "keeping value in process, persist failed"),
			xlog.Err(err))
		c.keep(key, e)
		return
	}

	c.mu.Lock()
	delete(c.overlay, key)
	c.mu.Unlock()
}

func (c *Cache[T]) Clear(ctx context.Context, key string) {
	c.mu.Lock()
	delete(c.overlay, key)
	c.mu.Unlock()

	if err := c.storage.Delete(ctx, key); err != nil {
		xlog.Warn(ctx, logMessage, xlog.String("key", key), xlog.Err(err))
	}
}

// Peek returns any decodable entry regardless of age without evicting it.
func (c *Cache[T]) Peek(ctx context.Context, key string) (Lookup[T], bool) {
	now := c.now()

	e, found, err := c.read(ctx, key)
	if err != nil || !found {
		return Lookup[T]{}, false
	}
	return c.lookupOf(e, now), true
}

// Purge drops every entry of the underlying storage bucket.
func (c *Cache[T]) Purge(ctx context.Context) error {
	c.mu.Lock()
	c.overlay = make(map[string]entry[T])
	c.mu.Unlock()

	return c.storage.Clean(ctx)
}

// IsExpired is true for a missing entry and for an entry aged duration or more.
func (c *Cache[T]) IsExpired(ctx context.Context, key string, duration time.Duration) bool {
	age, ok := c.peekAge(ctx, key)
	if !ok {
		return true
	}
	return age >= duration
}

// NeedsBackgroundRefresh is true when threshold <= age < duration, false for a missing entry.
func (c *Cache[T]) NeedsBackgroundRefresh(ctx context.Context, key string, duration, threshold time.Duration) bool {
	age, ok := c.peekAge(ctx, key)
	if !ok {
		return false
	}
	return age >= threshold && age < duration
}

func (c *Cache[T]) peekAge(ctx context.Context, key string) (time.Duration, bool) {
	now := c.now()

	e, found, err := c.read(ctx, key)
	if err != nil || !found {
		return 0, false
	}
	return ageOf(e.timestamp, now), true
}

func (c *Cache[T]) lookupOf(e entry[T], now time.Time) Lookup[T] {
	age := ageOf(e.timestamp, now)
	return Lookup[T]{Value: e.value, Age: age, State: c.policy.StateOf(age)}
}

func (c *Cache[T]) keep(key string, e entry[T]) {
	c.mu.Lock()
	c.overlay[key] = e
	c.mu.Unlock()
}

// read prefers the in-process overlay. A storage failure is a miss, an undecodable entry is
// reported as an error.
func (c *Cache[T]) read(ctx context.Context, key string) (entry[T], bool, error) {
	c.mu.RLock()
	e, found := c.overlay[key]
	c.mu.RUnlock()
	if found {
		return e, true, nil
	}

	env, err := c.storage.Get(ctx, key)
	if err != nil {
		xlog.Warn(ctx, logMessage,
			xlog.String("key", key),
			xlog.String("message", "read failed, treating as miss"),
			xlog.Err(err))
		return e, false, nil
	}
	if env.IsZero() {
		return e, false, nil
	}

	value, err := decode[T](env)
	if err != nil {
		return e, false, err
	}
	return entry[T]{value: value, timestamp: env.Timestamp}, true, nil
}

func decode[T any](env models.CacheEnvelope) (T, error) {
	var value T
	if env.SchemaVersion != models.CacheSchemaVersion {
		return value, &SchemaMismatchError{Got: env.SchemaVersion}
	}
	raw := bytes.TrimSpace(env.Value)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return value, ErrEmptyValue
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, err
	}
	return value, nil
}

func (c *Cache[T]) evict(ctx context.Context, key string) {
	c.mu.Lock()
	delete(c.overlay, key)
	c.mu.Unlock()

	if err := c.storage.Delete(ctx, key); err != nil {
		xlog.Warn(ctx, logMessage, xlog.String("key", key), xlog.Err(err))
	}
}

// ageOf never reports a negative age, a timestamp ahead of the local clock counts as just written.
func ageOf(timestamp int64, now time.Time) time.Duration {
	age := time.Duration(now.UnixMilli()-timestamp) * time.Millisecond
	if age < 0 {
		return 0
	}
	return age
}
